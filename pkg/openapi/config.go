package openapi

import "os"

const (
	defaultTitle       = "Mergington High School API"
	defaultDescription = "View and sign up for extracurricular activities."
)

// Config sets the document's info block.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// ConfigEnv names the environment variables that override Config.
type ConfigEnv struct {
	Title       string
	Description string
}

// Finalize fills empty fields with defaults, then applies env overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	setDefault(&c.Title, defaultTitle)
	setDefault(&c.Description, defaultDescription)
	if env != nil {
		setFromEnv(&c.Title, env.Title)
		setFromEnv(&c.Description, env.Description)
	}
	return nil
}

// Merge copies non-empty overlay fields onto c.
func (c *Config) Merge(overlay *Config) {
	override(&c.Title, overlay.Title)
	override(&c.Description, overlay.Description)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}

func setFromEnv(field *string, key string) {
	if key != "" {
		override(field, os.Getenv(key))
	}
}
