package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrSettingsNotFound is returned when the settings file does not exist.
var ErrSettingsNotFound = errors.New("settings file not found")

// LoadSettingsFile reads a YAML settings file. Fields absent from the file
// keep their defaults, so a file only needs to name the thresholds it
// overrides.
func LoadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
