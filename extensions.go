package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ExtensionOverrides adjusts the classifier's allow-list at runtime.
// Loaded from extensions.yml in the config search path:
//
//	include: [vue, svelte]
//	exclude: [sql]
type ExtensionOverrides struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// loadExtensionOverrides looks for extensions.yml in the standard config
// locations and parses it. A missing file is not an error; overrides are
// simply empty.
func loadExtensionOverrides() (ExtensionOverrides, error) {
	var overrides ExtensionOverrides

	configPaths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(home, ".config", "vsingest"))
	}
	configPaths = append(configPaths, ".")

	var overridePath string
	for _, p := range configPaths {
		testPath := filepath.Join(p, "extensions.yml")
		if _, err := os.Stat(testPath); err == nil {
			overridePath = testPath
			break
		}
	}
	if overridePath == "" {
		return overrides, nil
	}

	data, err := os.ReadFile(overridePath)
	if err != nil {
		return overrides, fmt.Errorf("error reading extension overrides %s: %w", overridePath, err)
	}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return overrides, fmt.Errorf("error parsing extension overrides %s: %w", overridePath, err)
	}
	return overrides, nil
}
