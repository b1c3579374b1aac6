// Package wt manages Windows Terminal profiles stored in the terminal's
// settings.json file.
package wt

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Field selects which profile attribute a lookup matches on.
type Field string

const (
	ByGUID        Field = "guid"
	ByName        Field = "name"
	ByCommandline Field = "commandline"
)

// Profile is one entry in the terminal's profile list.
//
// Name is a display string and is not required to be unique; Commandline is
// the de-duplication key. GUID is a brace-delimited UUID and acts as the
// primary identifier.
type Profile struct {
	Name        string
	GUID        string
	Commandline string
	Hidden      bool
	Icon        string

	// extra holds fields this tool does not manage (colorScheme, font, ...).
	// They are written back untouched.
	extra map[string]json.RawMessage
	// present records which managed keys the decoded entry carried, so a
	// rewrite does not inject keys into entries that never had them (for
	// example source-based dynamic profiles without a commandline). A nil
	// map marks a profile built by this tool.
	present map[string]bool
}

// NewProfile builds a profile for the given executable. The GUID is
// generated and Hidden is always false; icon may be empty.
func NewProfile(name, commandline, icon string) Profile {
	return Profile{
		Name:        name,
		GUID:        fmt.Sprintf("{%s}", uuid.New()),
		Commandline: commandline,
		Icon:        icon,
	}
}

// field returns the value of the attribute selected by f.
func (p Profile) field(f Field) string {
	switch f {
	case ByGUID:
		return p.GUID
	case ByName:
		return p.Name
	default:
		return p.Commandline
	}
}

// UnmarshalJSON decodes the fields the tool manages and retains everything
// else as raw JSON so a rewrite does not drop it.
func (p *Profile) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.present = make(map[string]bool)
	for key, dst := range map[string]any{
		"name":        &p.Name,
		"guid":        &p.GUID,
		"commandline": &p.Commandline,
		"hidden":      &p.Hidden,
		"icon":        &p.Icon,
	} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("profile field %q: %w", key, err)
		}
		p.present[key] = true
		delete(raw, key)
	}
	if len(raw) > 0 {
		p.extra = raw
	}
	return nil
}

// has reports whether the managed key should be emitted on a rewrite. For
// tool-built profiles every managed key is emitted, with icon only when set;
// for decoded entries only the keys that were already there come back.
func (p Profile) has(key string) bool {
	if p.present == nil {
		return key != "icon" || p.Icon != ""
	}
	return p.present[key]
}

// MarshalJSON merges the managed fields back over the retained raw fields.
// Managed keys the entry never carried stay absent.
func (p Profile) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.extra)+5)
	for k, v := range p.extra {
		out[k] = v
	}
	set := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("profile field %q: %w", key, err)
		}
		out[key] = b
		return nil
	}
	for key, v := range map[string]any{
		"name":        p.Name,
		"guid":        p.GUID,
		"commandline": p.Commandline,
		"hidden":      p.Hidden,
		"icon":        p.Icon,
	} {
		if !p.has(key) {
			continue
		}
		if err := set(key, v); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// MarshalYAML emits the managed fields in a stable order for list output.
func (p Profile) MarshalYAML() (any, error) {
	type profileYAML struct {
		Name        string `yaml:"name"`
		GUID        string `yaml:"guid"`
		Commandline string `yaml:"commandline"`
		Hidden      bool   `yaml:"hidden"`
		Icon        string `yaml:"icon,omitempty"`
	}
	return profileYAML{
		Name:        p.Name,
		GUID:        p.GUID,
		Commandline: p.Commandline,
		Hidden:      p.Hidden,
		Icon:        p.Icon,
	}, nil
}
