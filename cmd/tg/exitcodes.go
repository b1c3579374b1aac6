package main

// Exit codes for the tg binary.
const (
	ExitSuccess   = 0 // Success
	ExitError     = 1 // General error, unsupported platform
	ExitEnvAccess = 2 // User environment block unavailable
	ExitEnvWrite  = 3 // Persisting an environment variable failed
	ExitBadNumber = 4 // Invalid phone number
	ExitBadAPIID  = 5 // Invalid API ID
	ExitBadHash   = 6 // Invalid API hash
	ExitNoSession = 7 // No active session
)
