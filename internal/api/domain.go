package api

import (
	"fmt"

	"github.com/JaimeStill/activity-signup/internal/activities"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Activities activities.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) (*Domain, error) {
	seed, err := activities.LoadSeed(runtime.Registry.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("activities seed: %w", err)
	}

	activitiesSys := activities.New(
		seed,
		runtime.Logger,
		activities.NewMetrics(runtime.Metrics),
	)

	return &Domain{
		Activities: activitiesSys,
	}, nil
}
