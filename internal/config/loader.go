package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the archery configuration and validates it.
// Search order: customPath -> ~/.archery/configs/archery.yaml ->
// ./configs/archery.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the
// fallback locations are skipped silently when unusable.
func Load(customPath string) (ArcheryConfig, error) {
	var cfg ArcheryConfig

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if userPath := userConfigPath("archery.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				if err := cfg.Validate(); err != nil {
					return cfg, fmt.Errorf("config: %s: %w", userPath, err)
				}
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile("configs/archery.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			if err := cfg.Validate(); err != nil {
				return cfg, fmt.Errorf("config: configs/archery.yaml: %w", err)
			}
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultArcheryYAML, &cfg); err != nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: embedded default invalid: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".archery", "configs", filename)
}
