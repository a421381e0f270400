package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.pondhop/config.yaml -> ./configs/pondhop.yaml -> built-in default.
// Only an explicit customPath failure is an error; the fallback chain
// otherwise degrades silently to the default.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", customPath, err)
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", customPath, err)
		}
		return cfg.normalize(), nil
	}

	if userPath := userConfigPath(); userPath != "" {
		if cfg, ok := tryLoad(userPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryLoad(filepath.Join("configs", "pondhop.yaml")); ok {
		return cfg, nil
	}

	return Default(), nil
}

func tryLoad(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg.normalize(), true
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pondhop", "config.yaml")
}
