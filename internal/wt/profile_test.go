package wt

import (
	"encoding/json"
	"regexp"
	"testing"
)

var guidPattern = regexp.MustCompile(`^\{[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\}$`)

func TestNewProfile(t *testing.T) {
	p := NewProfile("shell", `C:\tools\shell.exe`, "")

	if !guidPattern.MatchString(p.GUID) {
		t.Errorf("NewProfile() guid = %q, want brace-delimited UUID", p.GUID)
	}
	if p.Hidden {
		t.Error("NewProfile() hidden = true, want false")
	}

	other := NewProfile("shell", `C:\tools\shell.exe`, "")
	if other.GUID == p.GUID {
		t.Error("NewProfile() generated the same guid twice")
	}
}

func TestProfileJSONOmitsEmptyIcon(t *testing.T) {
	data, err := json.Marshal(NewProfile("a", "/x", ""))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if _, ok := m["icon"]; ok {
		t.Error("empty icon was serialized")
	}

	data, err = json.Marshal(NewProfile("a", "/x", "/icons/a.png"))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if m["icon"] != "/icons/a.png" {
		t.Errorf("icon = %v, want /icons/a.png", m["icon"])
	}
}

func TestProfileJSONPreservesFieldPresence(t *testing.T) {
	// Source-based dynamic profiles carry no commandline or hidden key; a
	// rewrite must not invent them, and an explicit empty icon must survive.
	in := `{"name":"WSL","guid":"{9}","source":"Windows.Terminal.Wsl","icon":""}`

	var p Profile
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	for _, key := range []string{"commandline", "hidden"} {
		if _, ok := m[key]; ok {
			t.Errorf("%s injected into an entry that never had it", key)
		}
	}
	icon, ok := m["icon"]
	if !ok || icon != "" {
		t.Errorf("icon = %v (present %v), want explicit empty string", icon, ok)
	}
	if m["source"] != "Windows.Terminal.Wsl" {
		t.Errorf("source = %v, want retained", m["source"])
	}
	if len(m) != 4 {
		t.Errorf("rewritten entry has keys %v, want exactly the original four", m)
	}
}

func TestProfileJSONRetainsUnknownFields(t *testing.T) {
	in := `{"name":"a","guid":"{1}","commandline":"/x","hidden":true,"colorScheme":"One Half Dark","fontSize":12}`

	var p Profile
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !p.Hidden {
		t.Error("hidden = false, want true")
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if m["colorScheme"] != "One Half Dark" {
		t.Errorf("colorScheme = %v, want retained", m["colorScheme"])
	}
	if m["fontSize"] != float64(12) {
		t.Errorf("fontSize = %v, want retained", m["fontSize"])
	}
}
