package config

import (
	"fmt"
	"runtime"

	"github.com/Netflix/go-env"

	"github.com/information-sharing-networks/oaps-proof/internal/crypto"
	"github.com/information-sharing-networks/oaps-proof/internal/logger"
)

// Environment variables with defaults
type Environment struct {
	Environment string `env:"ENVIRONMENT,default=dev"`
	LogLevel    string `env:"LOG_LEVEL,default=warn"`

	// canonicalization settings
	CanonicalProfile string `env:"CANONICAL_PROFILE,default=oaps"`
	MaxDocumentSize  int64  `env:"MAX_DOCUMENT_SIZE,default=10485760"`

	// batch settings - 0 uses one worker per CPU
	BatchWorkers int `env:"BATCH_WORKERS,default=0"`
}

const maxBatchWorkers = 256

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"none":  true,
}

// NewConfig loads environment variables and returns an Environment struct that contains the values
func NewConfig() (*Environment, error) {
	var cfg Environment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Profile returns the configured canonicalization profile
func (c *Environment) Profile() crypto.Profile {
	p, _ := crypto.ParseProfile(c.CanonicalProfile)
	return p
}

// Workers returns the number of batch workers to use
func (c *Environment) Workers() int {
	if c.BatchWorkers == 0 {
		return runtime.NumCPU()
	}
	return c.BatchWorkers
}

// validateConfig checks the env variables
func validateConfig(cfg *Environment) error {
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}
	if !validLogLevels[cfg.LogLevel] && logger.ParseLogLevel(cfg.LogLevel).String() != cfg.LogLevel {
		return fmt.Errorf("invalid LOG_LEVEL: %s", cfg.LogLevel)
	}
	if _, err := crypto.ParseProfile(cfg.CanonicalProfile); err != nil {
		return fmt.Errorf("invalid CANONICAL_PROFILE: %w", err)
	}
	if cfg.MaxDocumentSize < 1 {
		return fmt.Errorf("MAX_DOCUMENT_SIZE must be at least 1, got %d", cfg.MaxDocumentSize)
	}
	if cfg.BatchWorkers < 0 || cfg.BatchWorkers > maxBatchWorkers {
		return fmt.Errorf("BATCH_WORKERS must be between 0 and %d, got %d", maxBatchWorkers, cfg.BatchWorkers)
	}
	return nil
}
