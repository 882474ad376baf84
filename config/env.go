package config

import (
	"os"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment
func GetEnvironment() Environment {
	// CI environment is automatically detected
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsDevelopment reports whether the config was loaded for development
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction reports whether the config was loaded for production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
