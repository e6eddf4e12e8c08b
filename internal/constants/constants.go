package constants

// Session and context keys
const (
	SessionCookieName  = "hackathon_session"
	SessionKeyClientID = "client_id"

	ContextKeyWorkspace = "workspace"
	ContextKeyUser      = "current_user"
)

// Storage keys inside a client's key space
const (
	StorageKeyHackathons     = "hackathons"
	StorageKeyCurrentUser    = "currentUser"
	StorageKeyParticipations = "userParticipations"
	StorageKeyAccounts       = "accounts"
)

// ClientKeyPrefix namespaces one client's keys in a shared backend.
const ClientKeyPrefix = "client"

// Validation
const (
	MinPasswordLength = 6
)
