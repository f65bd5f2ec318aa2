package config

import (
	"os"
	"path/filepath"
)

// EnvConfig overrides the config file location.
const EnvConfig = "FOLIO_CONFIG"

// GetConfigPath returns FOLIO_CONFIG when set, otherwise ~/.folio/config.
func GetConfigPath() (string, error) {
	if configPath := os.Getenv(EnvConfig); configPath != "" {
		return configPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".folio", "config"), nil
}

// GetProfilePath returns the default location `folio init` writes the
// sample profile to: profile.yaml next to the config file.
func GetProfilePath() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(configPath), "profile.yaml"), nil
}

// EnsureConfigDir ensures that the configuration directory exists.
func EnsureConfigDir() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return os.MkdirAll(filepath.Dir(configPath), 0o755)
}
