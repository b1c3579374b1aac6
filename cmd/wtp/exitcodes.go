package main

// Exit codes for the wtp binary.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, no matching profile)
	ExitConfigError = 2 // Settings file could not be resolved
	ExitDataError   = 3 // Settings document is malformed
)
