package telegram

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidNumber is returned for phone numbers that are not 12
	// digits behind a plus sign.
	ErrInvalidNumber = errors.New("not a valid phone number")
	// ErrInvalidAPIID is returned for API IDs that are not 8 digits.
	ErrInvalidAPIID = errors.New("not a valid API ID")
	// ErrInvalidAPIHash is returned for API hashes that are not 16 bytes
	// of hex.
	ErrInvalidAPIHash = errors.New("not a valid API Hash")
)

// ValidateNumber normalizes a phone number, defaulting to the +91 region
// prefix when none is given.
func ValidateNumber(value string) (string, error) {
	if !strings.HasPrefix(value, "+91") {
		value = "+91" + value
	}
	if len(value) == 13 && isDigits(value[1:]) {
		return value, nil
	}
	return "", fmt.Errorf("%q: %w", value, ErrInvalidNumber)
}

// ValidateAPIID parses an 8-digit Telegram API ID.
func ValidateAPIID(value string) (int, error) {
	if len(value) != 8 || !isDigits(value) {
		return 0, fmt.Errorf("%q: %w", value, ErrInvalidAPIID)
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", value, ErrInvalidAPIID)
	}
	return id, nil
}

// ValidateAPIHash checks that value is a hex string of exactly 16 bytes.
func ValidateAPIHash(value string) (string, error) {
	b, err := hex.DecodeString(value)
	if err != nil || len(b) != 16 {
		return "", fmt.Errorf("%q: %w", value, ErrInvalidAPIHash)
	}
	return value, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
