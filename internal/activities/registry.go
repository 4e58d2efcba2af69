package activities

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

type registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
	logger     *slog.Logger
	metrics    *Metrics
}

// New creates a registry holding copies of seed. Names must be unique;
// validate untrusted input with ValidateSeed first. metrics may be nil.
func New(seed []Activity, logger *slog.Logger, metrics *Metrics) System {
	r := &registry{
		activities: make(map[string]*Activity, len(seed)),
		logger:     logger.With("system", "activities"),
		metrics:    metrics,
	}

	for _, a := range seed {
		c := a.clone()
		r.activities[c.Name] = &c
		r.metrics.setParticipants(c.Name, len(c.Participants))
	}

	r.logger.Info("registry initialized", "activities", len(r.activities))
	return r
}

func (r *registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]Activity, len(r.activities))
	for name, a := range r.activities {
		result[name] = a.clone()
	}
	return result
}

func (r *registry) Find(name string) (*Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	c := a.clone()
	return &c, nil
}

func (r *registry) Signup(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrNotFound, name)
		r.metrics.signup(name, err)
		return "", err
	}

	email, err := normalizeEmail(email)
	if err != nil {
		r.metrics.signup(name, err)
		return "", err
	}

	if a.Has(email) {
		err := fmt.Errorf("%s is %w for %s", email, ErrAlreadySignedUp, name)
		r.metrics.signup(name, err)
		return "", err
	}

	a.Participants = append(a.Participants, email)
	r.metrics.signup(name, nil)
	r.metrics.setParticipants(name, len(a.Participants))

	if len(a.Participants) > a.MaxParticipants {
		r.logger.Warn("activity over capacity",
			"activity", name,
			"participants", len(a.Participants),
			"max_participants", a.MaxParticipants,
		)
	}

	r.logger.Info("participant signed up", "activity", name, "email", email)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

func (r *registry) Unregister(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		err := fmt.Errorf("%w: %s", ErrNotFound, name)
		r.metrics.unregister(name, err)
		return "", err
	}

	email, err := normalizeEmail(email)
	if err != nil {
		r.metrics.unregister(name, err)
		return "", err
	}

	i := slices.Index(a.Participants, email)
	if i < 0 {
		err := fmt.Errorf("%s is %w for %s", email, ErrNotSignedUp, name)
		r.metrics.unregister(name, err)
		return "", err
	}

	a.Participants = slices.Delete(a.Participants, i, i+1)
	r.metrics.unregister(name, nil)
	r.metrics.setParticipants(name, len(a.Participants))

	r.logger.Info("participant unregistered", "activity", name, "email", email)
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}
	return email, nil
}
