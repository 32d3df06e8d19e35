// Package config provides configuration loading and validation for the
// resume screener.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// AppConfig holds the server-level configuration read from the environment.
type AppConfig struct {
	Port        int     // HTTP listen port
	DatabaseURL string  // PostgreSQL connection URL
	SkillsFile  string  // optional path to a JSON skill list
	MaxInputKB  int     // per-document character cap (in thousands) for scan inputs
	MaxFileMB   float64 // request body size guard
}

// NewAppConfig builds an AppConfig from environment variables. DATABASE_URL
// is required; everything else has a default.
func NewAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{
		Port:        8080,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SkillsFile:  os.Getenv("SKILLS_FILE"),
		MaxInputKB:  100,
		MaxFileMB:   10,
	}

	if kbStr := os.Getenv("MAX_INPUT_KB"); kbStr != "" {
		kb, err := strconv.Atoi(kbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_INPUT_KB: %v", err)
		}
		cfg.MaxInputKB = kb
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if mbStr := os.Getenv("MAX_FILE_MB"); mbStr != "" {
		mb, err := strconv.ParseFloat(mbStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_FILE_MB: %v", err)
		}
		cfg.MaxFileMB = mb
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *AppConfig) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.MaxFileMB <= 0 {
		return fmt.Errorf("MAX_FILE_MB must be positive, got: %v", c.MaxFileMB)
	}
	if c.MaxInputKB < 0 {
		return fmt.Errorf("MAX_INPUT_KB must not be negative, got: %d", c.MaxInputKB)
	}
	return nil
}

// MaxInputChars returns the character cap applied to each submitted resume
// or job-description document. Zero disables the cap.
func (c *AppConfig) MaxInputChars() int {
	return c.MaxInputKB * 1000
}
