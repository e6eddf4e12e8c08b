package models

type UserRole string

const (
	RoleHost        UserRole = "host"
	RoleParticipant UserRole = "participant"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == RoleHost || r == RoleParticipant
}

type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// IsHost reports whether the user may manage hackathons.
func (u User) IsHost() bool {
	return u.Role == RoleHost
}

// Account is a registered user together with its credentials.
type Account struct {
	User         User   `json:"user"`
	PasswordHash string `json:"passwordHash"`
}
