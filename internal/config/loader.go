package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads Sea Battle configuration.
// Search order: customPath -> ~/.seabattle/config.yaml -> ./configs/seabattle.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = DefaultConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/seabattle.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = DefaultConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seabattle", filename)
}
