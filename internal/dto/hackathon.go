package dto

import (
	"github.com/yukikurage/hackathon-hub/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// HackathonDTO represents a hackathon in API responses
type HackathonDTO struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	BannerURL        string    `json:"bannerUrl"`
	FormLink         string    `json:"formLink"`
	CreatedAt        string    `json:"createdAt"`
	HostID           string    `json:"hostId"`
	Participants     []UserDTO `json:"participants"`
	ParticipantCount int       `json:"participantCount"`
}

// HackathonDetailDTO adds the caller's participation state
type HackathonDetailDTO struct {
	HackathonDTO
	Joined bool `json:"joined"`
}

// HackathonListResponse represents a list of hackathons
type HackathonListResponse struct {
	Hackathons []HackathonDTO `json:"hackathons"`
}

// ParticipationDTO reports whether the caller has joined a hackathon
type ParticipationDTO struct {
	HackathonID string `json:"hackathonId"`
	Joined      bool   `json:"joined"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// ToHackathonDTO converts a Hackathon model to HackathonDTO. An unset
// participant list becomes an empty array.
func ToHackathonDTO(h models.Hackathon) HackathonDTO {
	participants := make([]UserDTO, len(h.Participants))
	for i, p := range h.Participants {
		participants[i] = ToUserDTO(p)
	}

	return HackathonDTO{
		ID:               h.ID,
		Title:            h.Title,
		Description:      h.Description,
		Category:         h.Category,
		BannerURL:        h.BannerURL,
		FormLink:         h.FormLink,
		CreatedAt:        h.CreatedAt,
		HostID:           h.HostID,
		Participants:     participants,
		ParticipantCount: len(participants),
	}
}

// ToHackathonListResponse converts a slice of hackathons
func ToHackathonListResponse(hackathons []models.Hackathon) HackathonListResponse {
	items := make([]HackathonDTO, len(hackathons))
	for i, h := range hackathons {
		items[i] = ToHackathonDTO(h)
	}
	return HackathonListResponse{Hackathons: items}
}
