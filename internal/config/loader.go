package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a rules configuration came from.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Origin describes how LoadTetraWithOrigin found its rules.
type Origin struct {
	Source  string  // file path, SourceEmbedded or SourceBuiltin
	Skipped []error // search path files that exist but could not be used
}

// LoadTetra loads the rules configuration. See LoadTetraWithOrigin.
func LoadTetra(customPath string) (TetraConfig, error) {
	cfg, _, err := LoadTetraWithOrigin(customPath)
	return cfg, err
}

// LoadTetraWithOrigin loads the rules configuration and reports where it
// came from. An explicit customPath must be usable; otherwise the search
// order is ~/.tetra/configs/tetra.yaml, ./configs/tetra.yaml, then the
// embedded defaults. Files are decoded over the defaults, so a partial file
// only overrides what it names.
func LoadTetraWithOrigin(customPath string) (TetraConfig, Origin, error) {
	if customPath != "" {
		cfg, err := readTetra(customPath)
		if err != nil {
			return DefaultTetraConfig(), Origin{Source: SourceBuiltin}, err
		}
		return cfg, Origin{Source: customPath}, nil
	}

	var origin Origin
	for _, path := range searchPaths() {
		cfg, err := readTetra(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			origin.Skipped = append(origin.Skipped, err)
			continue
		}
		origin.Source = path
		return cfg, origin, nil
	}

	if cfg, err := parseTetra(defaultTetraYAML); err == nil {
		origin.Source = SourceEmbedded
		return cfg, origin, nil
	}
	origin.Source = SourceBuiltin
	return DefaultTetraConfig(), origin, nil
}

// readTetra reads, decodes and validates one rules file.
func readTetra(path string) (TetraConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetraConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parseTetra(data)
	if err != nil {
		return TetraConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return TetraConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// parseTetra decodes YAML over the built-in defaults.
func parseTetra(data []byte) (TetraConfig, error) {
	cfg := DefaultTetraConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func searchPaths() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".tetra", "configs", "tetra.yaml"))
	}
	return append(paths, filepath.Join("configs", "tetra.yaml"))
}
