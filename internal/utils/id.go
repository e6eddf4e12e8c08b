package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateID generates a random UUIDv4 identifier
func GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id.String(), nil
}
