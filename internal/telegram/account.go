// Package telegram manages a Telegram login session whose credentials and
// session string live in the user's environment variables.
package telegram

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"winkit/internal/userenv"
)

// Environment variable names holding the account state.
const (
	EnvNumber  = "TELEGRAM_NUMBER"
	EnvAPIID   = "TELEGRAM_API_ID"
	EnvAPIHash = "TELEGRAM_API_HASH"
	EnvSession = "TELEGRAM_SESSION"
)

var (
	// ErrNoSession is returned when an operation needs an active session
	// and none is stored.
	ErrNoSession = errors.New("no active session")
	// ErrPersist wraps failures writing a credential back to the
	// environment.
	ErrPersist = errors.New("persisting environment variable")
)

// EnvStore persists key/value pairs across sessions. The real
// implementation writes the user environment block; tests substitute a map.
type EnvStore interface {
	Get(name string) (string, error)
	Set(name, value string) error
}

// UserEnv is the EnvStore backed by the user environment block. Reads
// prefer the current process environment; writes are mirrored into it so
// later reads in the same run see them.
type UserEnv struct{}

func (UserEnv) Get(name string) (string, error) {
	if v, ok := os.LookupEnv(name); ok {
		return v, nil
	}
	v, _, err := userenv.Get(name)
	if err != nil {
		if errors.Is(err, userenv.ErrUnsupported) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}

func (UserEnv) Set(name, value string) error {
	if err := userenv.Set(name, value, userenv.String); err != nil {
		return err
	}
	return os.Setenv(name, value)
}

// PromptFunc asks the user for a value, typically on the terminal.
type PromptFunc func(label string) (string, error)

// Account holds the Telegram credentials read from the environment.
type Account struct {
	Number  string
	APIID   int
	APIHash string

	session string
	env     EnvStore
}

// Load reads the account from env. Missing API credentials are requested
// through prompt, validated and persisted before the account is returned.
func Load(env EnvStore, prompt PromptFunc) (*Account, error) {
	a := &Account{env: env}

	var err error
	if a.Number, err = env.Get(EnvNumber); err != nil {
		return nil, fmt.Errorf("reading %s: %w", EnvNumber, err)
	}
	rawID, err := env.Get(EnvAPIID)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", EnvAPIID, err)
	}
	a.APIID, _ = strconv.Atoi(rawID)
	if a.APIHash, err = env.Get(EnvAPIHash); err != nil {
		return nil, fmt.Errorf("reading %s: %w", EnvAPIHash, err)
	}
	if a.session, err = env.Get(EnvSession); err != nil {
		return nil, fmt.Errorf("reading %s: %w", EnvSession, err)
	}

	if a.APIID == 0 {
		value, err := prompt("Enter a valid Telegram API-ID: ")
		if err != nil {
			return nil, err
		}
		if a.APIID, err = ValidateAPIID(value); err != nil {
			return nil, err
		}
		if err := env.Set(EnvAPIID, strconv.Itoa(a.APIID)); err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrPersist, EnvAPIID, err)
		}
	}

	if a.APIHash == "" {
		value, err := prompt("Enter a valid Telegram API Hash: ")
		if err != nil {
			return nil, err
		}
		if a.APIHash, err = ValidateAPIHash(value); err != nil {
			return nil, err
		}
		if err := env.Set(EnvAPIHash, a.APIHash); err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrPersist, EnvAPIHash, err)
		}
	}

	return a, nil
}

// HasSession reports whether a session string is stored. It says nothing
// about whether Telegram still honors it; see Verify.
func (a *Account) HasSession() bool {
	return a.session != ""
}

// SetNumber validates and persists the login phone number.
func (a *Account) SetNumber(value string) error {
	number, err := ValidateNumber(value)
	if err != nil {
		return err
	}
	if err := a.env.Set(EnvNumber, number); err != nil {
		return fmt.Errorf("%w %s: %v", ErrPersist, EnvNumber, err)
	}
	a.Number = number
	return nil
}

// ClearSession drops the stored session string.
func (a *Account) ClearSession() error {
	if err := a.env.Set(EnvSession, ""); err != nil {
		return fmt.Errorf("%w %s: %v", ErrPersist, EnvSession, err)
	}
	a.session = ""
	return nil
}

// Reset clears the stored API credentials.
func (a *Account) Reset() error {
	for _, key := range []string{EnvAPIID, EnvAPIHash} {
		if err := a.env.Set(key, ""); err != nil {
			return fmt.Errorf("%w %s: %v", ErrPersist, key, err)
		}
	}
	a.APIID = 0
	a.APIHash = ""
	return nil
}
