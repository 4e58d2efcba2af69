package config

import (
	"fmt"
	"os"
)

// EnvRegistrySeedFile overrides the path of the activity seed file.
const EnvRegistrySeedFile = "REGISTRY_SEED_FILE"

// RegistryConfig controls how the activity registry is populated at startup.
type RegistryConfig struct {
	// SeedFile is a TOML file of activities. Empty means the built-in seed.
	SeedFile string `toml:"seed_file"`
}

// Finalize loads environment overrides and validates the registry configuration.
func (c *RegistryConfig) Finalize() error {
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *RegistryConfig) Merge(overlay *RegistryConfig) {
	if overlay.SeedFile != "" {
		c.SeedFile = overlay.SeedFile
	}
}

func (c *RegistryConfig) loadEnv() {
	if v := os.Getenv(EnvRegistrySeedFile); v != "" {
		c.SeedFile = v
	}
}

func (c *RegistryConfig) validate() error {
	if c.SeedFile == "" {
		return nil
	}
	info, err := os.Stat(c.SeedFile)
	if err != nil {
		return fmt.Errorf("seed_file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("seed_file %s is a directory", c.SeedFile)
	}
	return nil
}
