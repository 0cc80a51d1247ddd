package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Validation limits
const (
	MinPasswordLength = 8
)

// Pagination
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)
