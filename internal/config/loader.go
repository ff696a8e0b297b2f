package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported by LoadBreakout.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadBreakout loads Breakout configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read, parsed or validated is an error; the
// implicit locations are skipped silently when broken.
func LoadBreakout(customPath string) (BreakoutConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), SourceBuiltin, err
		}
		return cfg, customPath, nil
	}

	candidates := []string{"configs/breakout.yaml"}
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	var cfg BreakoutConfig
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBreakoutConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads, decodes and validates a single config file.
func loadFile(path string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
