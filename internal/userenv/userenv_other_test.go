//go:build !windows

package userenv

import (
	"errors"
	"testing"
)

func TestUnsupportedPlatform(t *testing.T) {
	if err := Available(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Available() error = %v, want ErrUnsupported", err)
	}
	if _, _, err := Get("Path"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Get() error = %v, want ErrUnsupported", err)
	}
	if err := Set("Path", "", String); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Set() error = %v, want ErrUnsupported", err)
	}
}
