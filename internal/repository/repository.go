package repository

import (
	"github.com/yukikurage/hackathon-hub/internal/models"
)

// HackathonRepository defines the interface for hackathon data access.
// A missing record is never an error: lookups return nil and mutations
// targeting an unknown ID do nothing.
type HackathonRepository interface {
	// List returns every hackathon in insertion order
	List() ([]models.Hackathon, error)

	// FindByID returns the hackathon with the given ID, or nil
	FindByID(id string) (*models.Hackathon, error)

	// Create appends a hackathon to the collection
	Create(hackathon *models.Hackathon) error

	// Update replaces the stored hackathon with the same ID
	Update(hackathon *models.Hackathon) error

	// Delete removes every hackathon with the given ID
	Delete(id string) error
}

// ParticipationRepository defines the interface for the user -> hackathon
// participation index.
type ParticipationRepository interface {
	// ListHackathonIDs returns the hackathon IDs the user has joined
	ListHackathonIDs(userID string) ([]string, error)

	// Has reports whether the user has joined the hackathon
	Has(userID, hackathonID string) (bool, error)

	// Add records the participation and mirrors the session user into the
	// hackathon's participant list
	Add(userID, hackathonID string) error

	// Remove drops the participation from the index and the participant list
	Remove(userID, hackathonID string) error
}

// SessionRepository holds the single signed-in user.
type SessionRepository interface {
	// Get returns the session user, or nil when nobody is signed in
	Get() (*models.User, error)

	// Set replaces the session user; nil signs out
	Set(user *models.User) error
}

// AccountRepository defines the interface for registered accounts.
type AccountRepository interface {
	// FindByEmail returns the account registered under email, or nil
	FindByEmail(email string) (*models.Account, error)

	// Save inserts or replaces the account keyed by its user's email
	Save(account *models.Account) error
}
