package wt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

var (
	// ErrNoLocalAppData is returned when %LOCALAPPDATA% is not set.
	ErrNoLocalAppData = errors.New("LOCALAPPDATA is not set")
	// ErrSettingsNotFound is returned when no settings.json matches the
	// Windows Terminal package pattern.
	ErrSettingsNotFound = errors.New("windows terminal settings.json not found")
	// ErrMalformedSettings is returned when the settings document is not
	// valid JSON or lacks profiles.list.
	ErrMalformedSettings = errors.New("malformed settings document")
	// ErrProfileNotFound is returned by lookups that match nothing.
	ErrProfileNotFound = errors.New("profile not found")
)

// settingsGlob locates settings.json under the per-user package directory.
const settingsGlob = "Packages/Microsoft.WindowsTerminal_*/LocalState/settings.json"

// Store provides add/remove/query operations over the profile list embedded
// in the terminal's settings document. It holds only the resolved file path;
// every operation reads the document fresh and mutations rewrite it in full.
type Store struct {
	path string
}

// Open resolves the settings file under %LOCALAPPDATA%. When several package
// directories match, the lexicographically first is chosen.
func Open() (*Store, error) {
	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		return nil, ErrNoLocalAppData
	}
	matches, err := filepath.Glob(filepath.Join(localAppData, filepath.FromSlash(settingsGlob)))
	if err != nil {
		return nil, fmt.Errorf("locating settings: %w", err)
	}
	if len(matches) == 0 {
		return nil, ErrSettingsNotFound
	}
	sort.Strings(matches)
	return &Store{path: matches[0]}, nil
}

// OpenAt returns a store over an explicit settings file path.
func OpenAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the resolved settings file path.
func (s *Store) Path() string {
	return s.path
}

// document is the parsed settings file with only the parts the store
// understands decoded. Unrelated keys ride along as raw JSON and are
// written back verbatim.
type document struct {
	root     map[string]json.RawMessage
	profiles map[string]json.RawMessage
	list     []Profile
}

func (s *Store) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, &doc.root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSettings, err)
	}
	rawProfiles, ok := doc.root["profiles"]
	if !ok {
		return nil, fmt.Errorf("%w: missing profiles", ErrMalformedSettings)
	}
	if err := json.Unmarshal(rawProfiles, &doc.profiles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSettings, err)
	}
	rawList, ok := doc.profiles["list"]
	if !ok {
		return nil, fmt.Errorf("%w: missing profiles.list", ErrMalformedSettings)
	}
	if err := json.Unmarshal(rawList, &doc.list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSettings, err)
	}
	return doc, nil
}

// save rewrites the full document, pretty-printed with 4-space indentation.
// The write goes to a temp file in the same directory and is renamed over
// settings.json so a failure mid-write cannot leave a truncated file.
func (s *Store) save(doc *document) error {
	if doc.list == nil {
		doc.list = []Profile{}
	}
	rawList, err := json.Marshal(doc.list)
	if err != nil {
		return fmt.Errorf("encoding profiles: %w", err)
	}
	doc.profiles["list"] = rawList
	rawProfiles, err := json.Marshal(doc.profiles)
	if err != nil {
		return fmt.Errorf("encoding profiles: %w", err)
	}
	doc.root["profiles"] = rawProfiles

	data, err := json.MarshalIndent(doc.root, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".settings-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing settings: %w", err)
	}
	return nil
}

// indexOf returns the position of the first profile whose field equals
// value, or -1 when none matches. Position 0 is a valid result.
func indexOf(list []Profile, value string, field Field) int {
	for i, p := range list {
		if p.field(field) == value {
			return i
		}
	}
	return -1
}

// List returns the profiles in document order.
func (s *Store) List() ([]Profile, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.list, nil
}

// Query returns the first profile whose field equals value, or
// ErrProfileNotFound. It never writes.
func (s *Store) Query(value string, field Field) (*Profile, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	i := indexOf(doc.list, value, field)
	if i < 0 {
		return nil, ErrProfileNotFound
	}
	p := doc.list[i]
	return &p, nil
}

// Add appends profile to the list. Commandline is treated as unique: an
// existing profile with the same commandline is removed first, so the new
// entry always lands at the end of the list.
func (s *Store) Add(profile Profile) error {
	doc, err := s.load()
	if err != nil {
		return err
	}
	if i := indexOf(doc.list, profile.Commandline, ByCommandline); i >= 0 {
		doc.list = append(doc.list[:i], doc.list[i+1:]...)
	}
	doc.list = append(doc.list, profile)
	return s.save(doc)
}

// Remove deletes the first profile whose field equals value and returns it.
// When nothing matches it returns ErrProfileNotFound without writing.
func (s *Store) Remove(value string, field Field) (*Profile, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	i := indexOf(doc.list, value, field)
	if i < 0 {
		return nil, ErrProfileNotFound
	}
	removed := doc.list[i]
	doc.list = append(doc.list[:i], doc.list[i+1:]...)
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return &removed, nil
}
