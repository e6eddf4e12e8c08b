package repository

import (
	"fmt"
	"strings"

	"github.com/yukikurage/hackathon-hub/internal/codec"
	"github.com/yukikurage/hackathon-hub/internal/constants"
	"github.com/yukikurage/hackathon-hub/internal/models"
	"github.com/yukikurage/hackathon-hub/internal/storage"
)

// LocalAccountRepository keeps every account in one map keyed by email.
type LocalAccountRepository struct {
	store *storage.LocalStorage
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(store *storage.LocalStorage) AccountRepository {
	return &LocalAccountRepository{store: store}
}

// NormalizeEmail returns the lookup form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail finds an account by email, ignoring case and surrounding spaces
func (r *LocalAccountRepository) FindByEmail(email string) (*models.Account, error) {
	accounts, err := r.load()
	if err != nil {
		return nil, err
	}
	account, ok := accounts[NormalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

// Save inserts or replaces an account
func (r *LocalAccountRepository) Save(account *models.Account) error {
	if !r.store.Available() {
		return nil
	}
	accounts, err := r.load()
	if err != nil {
		return err
	}
	accounts[NormalizeEmail(account.User.Email)] = *account

	raw, err := codec.EncodeAccounts(accounts)
	if err != nil {
		return err
	}
	return r.store.SetItem(constants.StorageKeyAccounts, raw)
}

func (r *LocalAccountRepository) load() (codec.Accounts, error) {
	raw, _, err := r.store.GetItem(constants.StorageKeyAccounts)
	if err != nil {
		return nil, err
	}
	accounts, err := codec.DecodeAccounts(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", constants.StorageKeyAccounts, err)
	}
	return accounts, nil
}
