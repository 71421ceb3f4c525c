package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source labels for configurations that did not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// localConfigPath is the project-local configuration file.
const localConfigPath = "configs/snake.yaml"

// Load loads the snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are overlaid on the embedded defaults, so a file may set only the
// values it changes. A custom path that cannot be read, parsed or validated is
// an error; discovered files that fail are skipped.
func Load(customPath string) (Config, error) {
	return load(customPath, searchPaths())
}

func load(customPath string, candidates []string) (Config, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	return embedded(), nil
}

// loadFile reads one YAML file on top of the embedded defaults and validates it.
func loadFile(path string) (Config, error) {
	cfg := embedded()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// embedded parses the embedded default YAML, falling back to the hardcoded
// defaults if it cannot be parsed.
func embedded() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default()
	}
	cfg.Source = SourceEmbedded
	return cfg
}

// searchPaths returns the discovered config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, localConfigPath)
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "config.yaml")
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
