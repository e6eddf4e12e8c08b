package services

import (
	"fmt"
	"time"

	"github.com/yukikurage/hackathon-hub/internal/constants"
	"github.com/yukikurage/hackathon-hub/internal/models"
	"github.com/yukikurage/hackathon-hub/internal/repository"
	"github.com/yukikurage/hackathon-hub/internal/storage"
)

// SeedService fills a fresh client storage with sample hackathons.
type SeedService struct {
	store         *storage.LocalStorage
	hackathonRepo repository.HackathonRepository
	now           func() time.Time
}

// NewSeedService creates a new SeedService.
func NewSeedService(store *storage.LocalStorage, hackathonRepo repository.HackathonRepository) *SeedService {
	return &SeedService{
		store:         store,
		hackathonRepo: hackathonRepo,
		now:           time.Now,
	}
}

// SampleHackathons returns the hackathons shown to a client with no data yet.
func SampleHackathons(createdAt time.Time) []models.Hackathon {
	ts := createdAt.UTC().Format(time.RFC3339)
	return []models.Hackathon{
		{
			ID:          "1",
			Title:       "AI Innovation Challenge",
			Description: "Build the next generation of AI applications",
			Category:    "Artificial Intelligence",
			BannerURL:   "https://images.unsplash.com/photo-1677442136019-21780ecad995",
			FormLink:    "https://forms.google.com/sample1",
			CreatedAt:   ts,
			HostID:      "host_1",
		},
		{
			ID:          "2",
			Title:       "Web3 Development Hackathon",
			Description: "Create decentralized applications for the future",
			Category:    models.CategoryBlockchain,
			BannerURL:   "https://images.unsplash.com/photo-1620321023374-d1a68fbc720d",
			FormLink:    "https://forms.google.com/sample2",
			CreatedAt:   ts,
			HostID:      "host_2",
		},
		{
			ID:          "3",
			Title:       "Sustainable Tech Solutions",
			Description: "Develop eco-friendly technology solutions",
			Category:    "Sustainability",
			BannerURL:   "https://images.unsplash.com/photo-1497435334941-8c899ee9e8e9",
			FormLink:    "https://forms.google.com/sample3",
			CreatedAt:   ts,
			HostID:      "host_3",
		},
	}
}

// SeedSamples stores the sample hackathons when the collection has never been
// written. It reports whether anything was stored.
func (s *SeedService) SeedSamples() (bool, error) {
	if !s.store.Available() {
		return false, nil
	}

	raw, ok, err := s.store.GetItem(constants.StorageKeyHackathons)
	if err != nil {
		return false, fmt.Errorf("failed to read hackathons: %w", err)
	}
	if ok && raw != "" {
		return false, nil
	}

	for _, h := range SampleHackathons(s.now()) {
		if err := s.hackathonRepo.Create(&h); err != nil {
			return false, fmt.Errorf("failed to seed hackathon %s: %w", h.ID, err)
		}
	}
	return true, nil
}
