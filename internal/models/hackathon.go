package models

type Hackathon struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	BannerURL   string `json:"bannerUrl"`
	FormLink    string `json:"formLink"`
	CreatedAt   string `json:"createdAt"`
	HostID      string `json:"hostId"`

	// Participants holds snapshots of users taken when they joined.
	// They are not refreshed when the user record changes later.
	Participants []User `json:"participants,omitempty"`
}

// HasParticipant reports whether a snapshot with the given user ID is present.
// An unset participant list counts as empty.
func (h Hackathon) HasParticipant(userID string) bool {
	for _, p := range h.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// Suggested hackathon categories. Category is free-form; these are offered to
// hosts but not enforced.
const (
	CategoryWebDevelopment  = "Web Development"
	CategoryMobileApp       = "Mobile App Development"
	CategoryAIML            = "AI/ML"
	CategoryBlockchain      = "Blockchain"
	CategoryGameDevelopment = "Game Development"
	CategoryIoT             = "IoT"
	CategoryOpenInnovation  = "Open Innovation"
	CategorySocialGood      = "Social Good"
)

// Categories returns the suggested categories in display order.
func Categories() []string {
	return []string{
		CategoryWebDevelopment,
		CategoryMobileApp,
		CategoryAIML,
		CategoryBlockchain,
		CategoryGameDevelopment,
		CategoryIoT,
		CategoryOpenInnovation,
		CategorySocialGood,
	}
}
