package services

import (
	"fmt"

	"github.com/yukikurage/hackathon-hub/internal/models"
	"github.com/yukikurage/hackathon-hub/internal/repository"
)

// ParticipationService handles joining and leaving hackathons.
type ParticipationService struct {
	hackathonRepo     repository.HackathonRepository
	participationRepo repository.ParticipationRepository
}

// NewParticipationService creates a new ParticipationService.
func NewParticipationService(hackathonRepo repository.HackathonRepository, participationRepo repository.ParticipationRepository) *ParticipationService {
	return &ParticipationService{
		hackathonRepo:     hackathonRepo,
		participationRepo: participationRepo,
	}
}

// Status reports whether actor has joined the hackathon.
func (s *ParticipationService) Status(actor *models.User, hackathonID string) (bool, error) {
	if actor == nil {
		return false, nil
	}
	joined, err := s.participationRepo.Has(actor.ID, hackathonID)
	if err != nil {
		return false, fmt.Errorf("failed to check participation: %w", err)
	}
	return joined, nil
}

// Join marks the hackathon as joined by actor.
func (s *ParticipationService) Join(actor *models.User, hackathonID string) error {
	if actor == nil {
		return ErrAuthenticationNeeded
	}

	hackathon, err := s.hackathonRepo.FindByID(hackathonID)
	if err != nil {
		return fmt.Errorf("failed to find hackathon: %w", err)
	}
	if hackathon == nil {
		return ErrHackathonNotFound
	}

	if err := s.participationRepo.Add(actor.ID, hackathonID); err != nil {
		return fmt.Errorf("failed to join hackathon: %w", err)
	}
	return nil
}

// Leave removes actor from the hackathon. Leaving a hackathon that was never
// joined is not an error.
func (s *ParticipationService) Leave(actor *models.User, hackathonID string) error {
	if actor == nil {
		return ErrAuthenticationNeeded
	}

	if err := s.participationRepo.Remove(actor.ID, hackathonID); err != nil {
		return fmt.Errorf("failed to leave hackathon: %w", err)
	}
	return nil
}

// Toggle joins or leaves the hackathon and returns the resulting state.
func (s *ParticipationService) Toggle(actor *models.User, hackathonID string) (bool, error) {
	if actor == nil {
		return false, ErrAuthenticationNeeded
	}

	joined, err := s.Status(actor, hackathonID)
	if err != nil {
		return false, err
	}
	if joined {
		return false, s.Leave(actor, hackathonID)
	}
	if err := s.Join(actor, hackathonID); err != nil {
		return false, err
	}
	return true, nil
}

// ListJoined returns the hackathons actor has joined in collection order.
// Index entries whose hackathon no longer exists are skipped.
func (s *ParticipationService) ListJoined(actor *models.User) ([]models.Hackathon, error) {
	if actor == nil {
		return nil, ErrAuthenticationNeeded
	}

	ids, err := s.participationRepo.ListHackathonIDs(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations: %w", err)
	}
	joined := make(map[string]bool, len(ids))
	for _, id := range ids {
		joined[id] = true
	}

	hackathons, err := s.hackathonRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}

	result := make([]models.Hackathon, 0, len(ids))
	for _, h := range hackathons {
		if joined[h.ID] {
			result = append(result, h)
		}
	}
	return result, nil
}
