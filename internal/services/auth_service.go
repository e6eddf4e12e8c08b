package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/hackathon-hub/internal/constants"
	"github.com/yukikurage/hackathon-hub/internal/models"
	"github.com/yukikurage/hackathon-hub/internal/repository"
	"github.com/yukikurage/hackathon-hub/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrNameRequired         = errors.New("name is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrInvalidRole          = errors.New("role must be host or participant")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles sign-up, sign-in and the session user.
type AuthService struct {
	accountRepo repository.AccountRepository
	sessionRepo repository.SessionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(accountRepo repository.AccountRepository, sessionRepo repository.SessionRepository) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
	}
}

// SignUpInput represents the required information to create a new user.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     models.UserRole
}

// SignUp registers an account and signs it in.
func (s *AuthService) SignUp(input SignUpInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	role := input.Role
	if role == "" {
		role = models.RoleParticipant
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	existing, err := s.accountRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, ErrIDGenerationFailed
	}

	account := &models.Account{
		User: models.User{
			ID:    id,
			Name:  name,
			Email: email,
			Role:  role,
		},
		PasswordHash: string(hashedPassword),
	}

	if err := s.accountRepo.Save(account); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	if err := s.sessionRepo.Set(&account.User); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return &account.User, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// SignIn verifies credentials and makes the account's user the session user.
func (s *AuthService) SignIn(input LoginInput) (*models.User, error) {
	account, err := s.accountRepo.FindByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.sessionRepo.Set(&account.User); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return &account.User, nil
}

// SignOut clears the session user.
func (s *AuthService) SignOut() error {
	if err := s.sessionRepo.Set(nil); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the session user, or nil.
func (s *AuthService) CurrentUser() (*models.User, error) {
	user, err := s.sessionRepo.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return user, nil
}
