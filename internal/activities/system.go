package activities

// System defines the interface for activity registry operations.
type System interface {
	// List returns a snapshot of every activity keyed by name.
	List() map[string]Activity

	// Find returns a snapshot of a single activity.
	Find(name string) (*Activity, error)

	// Signup appends email to the named activity's participants.
	Signup(name, email string) (string, error)

	// Unregister removes email from the named activity's participants.
	Unregister(name, email string) (string, error)
}
