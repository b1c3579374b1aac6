package telegram

import (
	"errors"
	"testing"
)

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"bare number gets prefix", "9876543210", "+919876543210", false},
		{"already prefixed", "+919876543210", "+919876543210", false},
		{"too short", "98765", "", true},
		{"too long", "+9198765432109", "", true},
		{"letters", "98765abcde", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateNumber(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNumber) {
					t.Errorf("ValidateNumber(%q) error = %v, want ErrInvalidNumber", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateNumber(%q) error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ValidateNumber(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateAPIID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"valid", "12345678", 12345678, false},
		{"too short", "1234567", 0, true},
		{"too long", "123456789", 0, true},
		{"not digits", "1234567a", 0, true},
		{"empty", "", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAPIID(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAPIID) {
					t.Errorf("ValidateAPIID(%q) error = %v, want ErrInvalidAPIID", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateAPIID(%q) error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("ValidateAPIID(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateAPIHash(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "0123456789abcdef0123456789abcdef", false},
		{"too short", "0123456789abcdef", true},
		{"not hex", "0123456789abcdefg123456789abcdef", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAPIHash(tt.value)
			if tt.wantErr && !errors.Is(err, ErrInvalidAPIHash) {
				t.Errorf("ValidateAPIHash(%q) error = %v, want ErrInvalidAPIHash", tt.value, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAPIHash(%q) error: %v", tt.value, err)
			}
		})
	}
}
