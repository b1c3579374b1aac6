package userenv

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", nil},
		{"single", `C:\tools`, []string{`C:\tools`}},
		{"two", `C:\tools;C:\bin`, []string{`C:\tools`, `C:\bin`}},
		{"blank entries dropped", `C:\tools;;  ;C:\bin;`, []string{`C:\tools`, `C:\bin`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitList(tt.value); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestContainsPath(t *testing.T) {
	tests := []struct {
		name  string
		value string
		dir   string
		want  bool
	}{
		{"present", `C:\tools;C:\bin`, `C:\bin`, true},
		{"absent", `C:\tools;C:\bin`, `C:\other`, false},
		{"case insensitive", `C:\Tools`, `c:\tools`, true},
		{"empty value", "", `C:\tools`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsPath(tt.value, tt.dir); got != tt.want {
				t.Errorf("ContainsPath(%q, %q) = %v, want %v", tt.value, tt.dir, got, tt.want)
			}
		})
	}
}

func TestAppendPath(t *testing.T) {
	tests := []struct {
		name  string
		value string
		dir   string
		want  string
	}{
		{"empty value", "", `C:\tools`, `C:\tools`},
		{"append", `C:\bin`, `C:\tools`, `C:\bin;C:\tools`},
		{"trailing semicolon trimmed", `C:\bin;;`, `C:\tools`, `C:\bin;C:\tools`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AppendPath(tt.value, tt.dir); got != tt.want {
				t.Errorf("AppendPath(%q, %q) = %q, want %q", tt.value, tt.dir, got, tt.want)
			}
		})
	}
}
