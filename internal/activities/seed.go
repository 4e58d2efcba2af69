package activities

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed seed.toml
var defaultSeed []byte

type seedFile struct {
	Activities []Activity `toml:"activity"`
}

// DefaultSeed returns the built-in activity set.
func DefaultSeed() []Activity {
	seed, err := ParseSeed(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded seed: %v", err))
	}
	return seed
}

// LoadSeed reads a seed file from path, or returns DefaultSeed when path is empty.
func LoadSeed(path string) ([]Activity, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a TOML seed document and validates it.
func ParseSeed(data []byte) ([]Activity, error) {
	var f seedFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := ValidateSeed(f.Activities); err != nil {
		return nil, err
	}
	return f.Activities, nil
}

// ValidateSeed checks registry invariants: unique non-empty names, non-empty
// description and schedule, positive capacity, and no repeated participant
// within an activity.
func ValidateSeed(seed []Activity) error {
	var errs []error
	names := make(map[string]struct{}, len(seed))

	for i, a := range seed {
		if strings.TrimSpace(a.Name) == "" {
			errs = append(errs, fmt.Errorf("activity %d: name required", i))
			continue
		}
		if _, dup := names[a.Name]; dup {
			errs = append(errs, fmt.Errorf("activity %q: duplicate name", a.Name))
		}
		names[a.Name] = struct{}{}

		if a.Description == "" {
			errs = append(errs, fmt.Errorf("activity %q: description required", a.Name))
		}
		if a.Schedule == "" {
			errs = append(errs, fmt.Errorf("activity %q: schedule required", a.Name))
		}
		if a.MaxParticipants <= 0 {
			errs = append(errs, fmt.Errorf("activity %q: max_participants must be positive", a.Name))
		}

		seen := make(map[string]struct{}, len(a.Participants))
		for _, p := range a.Participants {
			if _, dup := seen[p]; dup {
				errs = append(errs, fmt.Errorf("activity %q: duplicate participant %s", a.Name, p))
			}
			seen[p] = struct{}{}
		}
	}

	return errors.Join(errs...)
}
