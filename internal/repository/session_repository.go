package repository

import (
	"fmt"

	"github.com/yukikurage/hackathon-hub/internal/codec"
	"github.com/yukikurage/hackathon-hub/internal/constants"
	"github.com/yukikurage/hackathon-hub/internal/models"
	"github.com/yukikurage/hackathon-hub/internal/storage"
)

// LocalSessionRepository stores the session user under the currentUser key.
type LocalSessionRepository struct {
	store *storage.LocalStorage
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(store *storage.LocalStorage) SessionRepository {
	return &LocalSessionRepository{store: store}
}

// Get returns the session user
func (r *LocalSessionRepository) Get() (*models.User, error) {
	raw, _, err := r.store.GetItem(constants.StorageKeyCurrentUser)
	if err != nil {
		return nil, err
	}
	user, err := codec.DecodeUser(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constants.StorageKeyCurrentUser, err)
	}
	return user, nil
}

// Set stores user as the session user, or clears the slot when user is nil
func (r *LocalSessionRepository) Set(user *models.User) error {
	if user == nil {
		return r.store.RemoveItem(constants.StorageKeyCurrentUser)
	}
	raw, err := codec.EncodeUser(*user)
	if err != nil {
		return err
	}
	return r.store.SetItem(constants.StorageKeyCurrentUser, raw)
}
