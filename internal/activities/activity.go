// Package activities provides the extracurricular activity registry: a fixed
// set of named activities, each with an ordered list of participant emails
// that clients can sign up to or unregister from.
package activities

import "slices"

// Activity is a single extracurricular offering.
// The name is the registry key and is not repeated in the JSON record.
type Activity struct {
	Name            string   `json:"-" toml:"name"`
	Description     string   `json:"description" toml:"description"`
	Schedule        string   `json:"schedule" toml:"schedule"`
	MaxParticipants int      `json:"max_participants" toml:"max_participants"`
	Participants    []string `json:"participants" toml:"participants"`
}

// Has reports whether email is a participant.
func (a *Activity) Has(email string) bool {
	return slices.Contains(a.Participants, email)
}

// clone returns a deep copy so callers never share the participant slice with the registry.
func (a *Activity) clone() Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	if c.Participants == nil {
		c.Participants = []string{}
	}
	return c
}
