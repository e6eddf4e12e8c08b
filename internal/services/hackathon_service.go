package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/yukikurage/hackathon-hub/internal/models"
	"github.com/yukikurage/hackathon-hub/internal/repository"
	"github.com/yukikurage/hackathon-hub/internal/utils"
)

var (
	ErrHackathonNotFound    = errors.New("hackathon not found")
	ErrHostOnly             = errors.New("only hosts can manage hackathons")
	ErrNotHackathonHost     = errors.New("only the host of this hackathon can perform this action")
	ErrInvalidHackathon     = errors.New("invalid hackathon")
	ErrIDGenerationFailed   = errors.New("failed to generate id")
	ErrAuthenticationNeeded = errors.New("authentication required")
)

// HackathonService provides business logic for hackathon operations.
type HackathonService struct {
	hackathonRepo repository.HackathonRepository
	now           func() time.Time
}

// NewHackathonService creates a new HackathonService.
func NewHackathonService(hackathonRepo repository.HackathonRepository) *HackathonService {
	return &HackathonService{
		hackathonRepo: hackathonRepo,
		now:           time.Now,
	}
}

// HackathonInput holds the host-editable fields of a hackathon.
type HackathonInput struct {
	Title       string
	Description string
	Category    string
	BannerURL   string
	FormLink    string
}

// HackathonFilter narrows List. Empty fields match everything.
type HackathonFilter struct {
	HostID   string
	Category string
}

// List returns hackathons matching the filter in insertion order.
func (s *HackathonService) List(filter HackathonFilter) ([]models.Hackathon, error) {
	hackathons, err := s.hackathonRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}

	matched := make([]models.Hackathon, 0, len(hackathons))
	for _, h := range hackathons {
		if filter.HostID != "" && h.HostID != filter.HostID {
			continue
		}
		if filter.Category != "" && h.Category != filter.Category {
			continue
		}
		matched = append(matched, h)
	}
	return matched, nil
}

// Get returns a single hackathon.
func (s *HackathonService) Get(id string) (*models.Hackathon, error) {
	hackathon, err := s.hackathonRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to find hackathon: %w", err)
	}
	if hackathon == nil {
		return nil, ErrHackathonNotFound
	}
	return hackathon, nil
}

// Create creates a hackathon hosted by actor.
func (s *HackathonService) Create(actor *models.User, input HackathonInput) (*models.Hackathon, error) {
	if err := requireHost(actor); err != nil {
		return nil, err
	}
	input, err := normalizeHackathonInput(input)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrIDGenerationFailed
	}

	bannerURL := input.BannerURL
	if bannerURL == "" {
		bannerURL = utils.PlaceholderBannerURL(id, input.Title)
	}
	category := input.Category
	if category == "" {
		category = models.CategoryWebDevelopment
	}

	hackathon := &models.Hackathon{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Category:    category,
		BannerURL:   bannerURL,
		FormLink:    input.FormLink,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
		HostID:      actor.ID,
	}

	if err := s.hackathonRepo.Create(hackathon); err != nil {
		return nil, fmt.Errorf("failed to create hackathon: %w", err)
	}

	return hackathon, nil
}

// Update edits a hackathon owned by actor. ID, creation time, host and
// participants are kept; an empty category or banner keeps the current one.
func (s *HackathonService) Update(actor *models.User, id string, input HackathonInput) (*models.Hackathon, error) {
	hackathon, err := s.ownedHackathon(actor, id)
	if err != nil {
		return nil, err
	}
	input, err = normalizeHackathonInput(input)
	if err != nil {
		return nil, err
	}

	hackathon.Title = input.Title
	hackathon.Description = input.Description
	hackathon.FormLink = input.FormLink
	if input.Category != "" {
		hackathon.Category = input.Category
	}
	if input.BannerURL != "" {
		hackathon.BannerURL = input.BannerURL
	}

	if err := s.hackathonRepo.Update(hackathon); err != nil {
		return nil, fmt.Errorf("failed to update hackathon: %w", err)
	}

	return hackathon, nil
}

// Delete removes a hackathon owned by actor.
func (s *HackathonService) Delete(actor *models.User, id string) error {
	if _, err := s.ownedHackathon(actor, id); err != nil {
		return err
	}

	if err := s.hackathonRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete hackathon: %w", err)
	}

	return nil
}

func (s *HackathonService) ownedHackathon(actor *models.User, id string) (*models.Hackathon, error) {
	if err := requireHost(actor); err != nil {
		return nil, err
	}

	hackathon, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if hackathon.HostID != actor.ID {
		return nil, ErrNotHackathonHost
	}
	return hackathon, nil
}

func requireHost(actor *models.User) error {
	if actor == nil {
		return ErrAuthenticationNeeded
	}
	if !actor.IsHost() {
		return ErrHostOnly
	}
	return nil
}

func normalizeHackathonInput(input HackathonInput) (HackathonInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	input.BannerURL = strings.TrimSpace(input.BannerURL)
	input.FormLink = strings.TrimSpace(input.FormLink)

	switch {
	case input.Title == "":
		return input, fmt.Errorf("%w: title is required", ErrInvalidHackathon)
	case input.Description == "":
		return input, fmt.Errorf("%w: description is required", ErrInvalidHackathon)
	case input.FormLink == "":
		return input, fmt.Errorf("%w: form link is required", ErrInvalidHackathon)
	}

	link, err := url.Parse(input.FormLink)
	if err != nil || (link.Scheme != "http" && link.Scheme != "https") || link.Host == "" {
		return input, fmt.Errorf("%w: form link must be an http(s) URL", ErrInvalidHackathon)
	}

	return input, nil
}
