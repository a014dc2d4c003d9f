package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Shivenrastogi59/hackathon-evaluation/internal/evaluation"
)

// EnvToken is the environment variable consulted for the judge credential
// when the config file does not set one.
const EnvToken = "JUDGE_API_TOKEN"

// DefaultConfig returns a Config with sensible default values. The API token
// defaults to the JUDGE_API_TOKEN environment variable; validation rejects
// the config when neither the file nor the environment provides one.
func DefaultConfig() *Config {
	homeDir := DefaultHomeDir()

	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Token:   os.Getenv(EnvToken),
			Timeout: 30 * time.Second,
		},
		Judging: JudgingConfig{
			Round: evaluation.DefaultRound,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   filepath.Join(homeDir, "judge.log"),
		},
	}
}

// DefaultHomeDir returns the default judge home directory, ~/.judge, falling
// back to a temporary directory if the user home cannot be determined.
func DefaultHomeDir() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".judge")
	}
	return filepath.Join(userHome, ".judge")
}

// DefaultConfigPath returns the config file path under the given home dir.
func DefaultConfigPath(homeDir string) string {
	return filepath.Join(homeDir, "config.yaml")
}
