package services

import (
	"github.com/yukikurage/hackathon-hub/internal/constants"
	"github.com/yukikurage/hackathon-hub/internal/repository"
	"github.com/yukikurage/hackathon-hub/internal/storage"
)

// Workspace bundles the services operating on one client's storage.
type Workspace struct {
	Storage       *storage.LocalStorage
	Hackathons    *HackathonService
	Participation *ParticipationService
	Auth          *AuthService
	Seed          *SeedService
}

// NewWorkspace wires repositories and services over store.
func NewWorkspace(store *storage.LocalStorage) *Workspace {
	hackathonRepo := repository.NewHackathonRepository(store)
	sessionRepo := repository.NewSessionRepository(store)
	participationRepo := repository.NewParticipationRepository(store, hackathonRepo, sessionRepo)
	accountRepo := repository.NewAccountRepository(store)

	return &Workspace{
		Storage:       store,
		Hackathons:    NewHackathonService(hackathonRepo),
		Participation: NewParticipationService(hackathonRepo, participationRepo),
		Auth:          NewAuthService(accountRepo, sessionRepo),
		Seed:          NewSeedService(store, hackathonRepo),
	}
}

// StorageKeys lists every key a client's storage may hold.
func StorageKeys() []string {
	return []string{
		constants.StorageKeyHackathons,
		constants.StorageKeyCurrentUser,
		constants.StorageKeyParticipations,
		constants.StorageKeyAccounts,
	}
}

// Reset removes all of the client's stored data.
func (w *Workspace) Reset() error {
	return w.Storage.Clear(StorageKeys()...)
}
