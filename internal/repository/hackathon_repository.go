package repository

import (
	"fmt"

	"github.com/yukikurage/hackathon-hub/internal/codec"
	"github.com/yukikurage/hackathon-hub/internal/constants"
	"github.com/yukikurage/hackathon-hub/internal/models"
	"github.com/yukikurage/hackathon-hub/internal/storage"
)

// LocalHackathonRepository keeps the whole hackathon collection under a single
// storage key and rewrites it on every mutation.
type LocalHackathonRepository struct {
	store *storage.LocalStorage
}

// NewHackathonRepository creates a new HackathonRepository
func NewHackathonRepository(store *storage.LocalStorage) HackathonRepository {
	return &LocalHackathonRepository{store: store}
}

// List returns all hackathons in insertion order
func (r *LocalHackathonRepository) List() ([]models.Hackathon, error) {
	raw, _, err := r.store.GetItem(constants.StorageKeyHackathons)
	if err != nil {
		return nil, err
	}
	hackathons, err := codec.DecodeHackathons(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constants.StorageKeyHackathons, err)
	}
	return hackathons, nil
}

// FindByID finds a hackathon by ID
func (r *LocalHackathonRepository) FindByID(id string) (*models.Hackathon, error) {
	hackathons, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range hackathons {
		if hackathons[i].ID == id {
			return &hackathons[i], nil
		}
	}
	return nil, nil
}

// Create appends a hackathon without checking its ID for uniqueness
func (r *LocalHackathonRepository) Create(hackathon *models.Hackathon) error {
	if !r.store.Available() {
		return nil
	}
	hackathons, err := r.List()
	if err != nil {
		return err
	}
	return r.save(append(hackathons, *hackathon))
}

// Update replaces the first hackathon with a matching ID
func (r *LocalHackathonRepository) Update(hackathon *models.Hackathon) error {
	if !r.store.Available() {
		return nil
	}
	hackathons, err := r.List()
	if err != nil {
		return err
	}
	for i := range hackathons {
		if hackathons[i].ID == hackathon.ID {
			hackathons[i] = *hackathon
			return r.save(hackathons)
		}
	}
	return nil
}

// Delete removes all hackathons with a matching ID
func (r *LocalHackathonRepository) Delete(id string) error {
	if !r.store.Available() {
		return nil
	}
	hackathons, err := r.List()
	if err != nil {
		return err
	}
	kept := hackathons[:0]
	for _, h := range hackathons {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(hackathons) {
		return nil
	}
	return r.save(kept)
}

func (r *LocalHackathonRepository) save(hackathons []models.Hackathon) error {
	raw, err := codec.EncodeHackathons(hackathons)
	if err != nil {
		return err
	}
	return r.store.SetItem(constants.StorageKeyHackathons, raw)
}
