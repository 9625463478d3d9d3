package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// envOverrides are read from the environment after the YAML file.
// Unset variables stay nil and leave the file's setting untouched.
type envOverrides struct {
	Mode           *string        `env:"COLORBOT_MODE"`
	WordsPerMinute *int           `env:"COLORBOT_WORDS_PER_MINUTE"`
	SearchTimeout  *time.Duration `env:"COLORBOT_SEARCH_TIMEOUT"`
}

// Load loads colorbot configuration and validates it.
// Search order: customPath -> ~/.colorbot/config.yaml -> ./configs/colorbot.yaml -> embedded default.
// Settings missing from the chosen file keep their defaults. Environment
// overrides are applied last.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile decodes the first configuration file found over the defaults.
func loadFile(customPath string) (Config, error) {
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
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "colorbot.yaml")); err == nil {
		candidate := DefaultConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	candidate := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &candidate); err != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return candidate, nil
}

// applyEnv overlays COLORBOT_* environment variables onto cfg.
func applyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}

	if o.Mode != nil {
		cfg.Mode = *o.Mode
	}
	if o.WordsPerMinute != nil {
		cfg.Speech.WordsPerMinute = *o.WordsPerMinute
	}
	if o.SearchTimeout != nil {
		cfg.Search.Timeout = *o.SearchTimeout
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colorbot", filename)
}
