package repository

import (
	"fmt"

	"github.com/yukikurage/hackathon-hub/internal/codec"
	"github.com/yukikurage/hackathon-hub/internal/constants"
	"github.com/yukikurage/hackathon-hub/internal/models"
	"github.com/yukikurage/hackathon-hub/internal/storage"
)

// LocalParticipationRepository keeps the participation index under its own
// storage key and mirrors changes into each hackathon's participant list.
//
// The index is authoritative. The mirror step runs after the index is
// written and is best-effort: a missing hackathon or session user skips it
// without undoing the index change. Nothing is locked, so two concurrent
// read-modify-write sequences on the same client can lose one update.
type LocalParticipationRepository struct {
	store      *storage.LocalStorage
	hackathons HackathonRepository
	session    SessionRepository
}

// NewParticipationRepository creates a new ParticipationRepository
func NewParticipationRepository(store *storage.LocalStorage, hackathons HackathonRepository, session SessionRepository) ParticipationRepository {
	return &LocalParticipationRepository{
		store:      store,
		hackathons: hackathons,
		session:    session,
	}
}

// ListHackathonIDs returns the IDs of the hackathons the user has joined
func (r *LocalParticipationRepository) ListHackathonIDs(userID string) ([]string, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	ids := all[userID]
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// Has reports whether the user has joined the hackathon
func (r *LocalParticipationRepository) Has(userID, hackathonID string) (bool, error) {
	ids, err := r.ListHackathonIDs(userID)
	if err != nil {
		return false, err
	}
	return indexOf(ids, hackathonID) != -1, nil
}

// Add records the participation, then appends the session user to the hackathon
func (r *LocalParticipationRepository) Add(userID, hackathonID string) error {
	if !r.store.Available() {
		return nil
	}

	all, err := r.load()
	if err != nil {
		return err
	}
	ids := all[userID]
	if indexOf(ids, hackathonID) == -1 {
		all[userID] = append(ids, hackathonID)
		if err := r.save(all); err != nil {
			return err
		}
	}

	hackathon, err := r.hackathons.FindByID(hackathonID)
	if err != nil {
		return fmt.Errorf("mirror participant: %w", err)
	}
	if hackathon == nil {
		return nil
	}
	user, err := r.session.Get()
	if err != nil {
		return fmt.Errorf("mirror participant: %w", err)
	}
	if user == nil || hackathon.HasParticipant(user.ID) {
		return nil
	}

	hackathon.Participants = append(hackathon.Participants, *user)
	if err := r.hackathons.Update(hackathon); err != nil {
		return fmt.Errorf("mirror participant: %w", err)
	}
	return nil
}

// Remove drops the participation from the index and from the hackathon
func (r *LocalParticipationRepository) Remove(userID, hackathonID string) error {
	if !r.store.Available() {
		return nil
	}

	all, err := r.load()
	if err != nil {
		return err
	}
	ids := all[userID]
	if i := indexOf(ids, hackathonID); i != -1 {
		all[userID] = append(ids[:i], ids[i+1:]...)
		if err := r.save(all); err != nil {
			return err
		}
	}

	hackathon, err := r.hackathons.FindByID(hackathonID)
	if err != nil {
		return fmt.Errorf("mirror participant: %w", err)
	}
	if hackathon == nil {
		return nil
	}

	remaining := make([]models.User, 0, len(hackathon.Participants))
	for _, p := range hackathon.Participants {
		if p.ID != userID {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(hackathon.Participants) {
		return nil
	}
	hackathon.Participants = remaining
	if err := r.hackathons.Update(hackathon); err != nil {
		return fmt.Errorf("mirror participant: %w", err)
	}
	return nil
}

func (r *LocalParticipationRepository) load() (codec.Participations, error) {
	raw, _, err := r.store.GetItem(constants.StorageKeyParticipations)
	if err != nil {
		return nil, err
	}
	all, err := codec.DecodeParticipations(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constants.StorageKeyParticipations, err)
	}
	return all, nil
}

func (r *LocalParticipationRepository) save(all codec.Participations) error {
	raw, err := codec.EncodeParticipations(all)
	if err != nil {
		return err
	}
	return r.store.SetItem(constants.StorageKeyParticipations, raw)
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
