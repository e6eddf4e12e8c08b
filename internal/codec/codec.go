// Package codec converts stored records to and from their JSON text form.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/yukikurage/hackathon-hub/internal/models"
)

// ErrMalformedRecord is returned when a stored value cannot be decoded.
var ErrMalformedRecord = errors.New("malformed stored record")

// Participations maps a user ID to the hackathon IDs the user has joined.
type Participations map[string][]string

// Accounts maps a normalized email to its account.
type Accounts map[string]models.Account

func EncodeHackathons(hackathons []models.Hackathon) (string, error) {
	if hackathons == nil {
		hackathons = []models.Hackathon{}
	}
	return encode(hackathons)
}

// DecodeHackathons decodes a hackathon collection. An empty value or JSON null
// yields an empty, non-nil slice.
func DecodeHackathons(raw string) ([]models.Hackathon, error) {
	var hackathons []models.Hackathon
	if err := decode(raw, &hackathons); err != nil {
		return nil, err
	}
	if hackathons == nil {
		hackathons = []models.Hackathon{}
	}
	return hackathons, nil
}

func EncodeUser(user models.User) (string, error) {
	return encode(user)
}

// DecodeUser decodes a single user. It returns nil for an empty value or JSON null.
func DecodeUser(raw string) (*models.User, error) {
	var user *models.User
	if err := decode(raw, &user); err != nil {
		return nil, err
	}
	return user, nil
}

func EncodeParticipations(p Participations) (string, error) {
	if p == nil {
		p = Participations{}
	}
	return encode(p)
}

func DecodeParticipations(raw string) (Participations, error) {
	var p Participations
	if err := decode(raw, &p); err != nil {
		return nil, err
	}
	if p == nil {
		p = Participations{}
	}
	return p, nil
}

func EncodeAccounts(a Accounts) (string, error) {
	if a == nil {
		a = Accounts{}
	}
	return encode(a)
}

func DecodeAccounts(raw string) (Accounts, error) {
	var a Accounts
	if err := decode(raw, &a); err != nil {
		return nil, err
	}
	if a == nil {
		a = Accounts{}
	}
	return a, nil
}

func encode(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return string(data), nil
}

func decode(raw string, v interface{}) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return nil
}
