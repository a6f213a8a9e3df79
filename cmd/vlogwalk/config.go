package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".vlogwalk.yml"

// config holds the tool's file-configurable settings. Flag values are
// merged on top by mergeFlags.
type config struct {
	Skip     []string `yaml:"skip"`
	MaxDepth int      `yaml:"max-depth"`
}

// loadConfig reads the config at path when given; otherwise it discovers
// one starting from startDir. A missing config is not an error, the tool
// then runs with defaults.
func loadConfig(path, startDir string) (*config, error) {
	if path == "" {
		discovered, err := discoverConfig(startDir)
		if err != nil {
			return nil, err
		}
		if discovered == "" {
			return &config{}, nil
		}
		path = discovered
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("config %s: max-depth must not be negative, got %d", path, cfg.MaxDepth)
	}

	return &cfg, nil
}

// discoverConfig walks up the directory tree from startDir looking for a
// .vlogwalk.yml. It stops at a .git directory (the repository root) or the
// filesystem root. Returns "" if none was found.
func discoverConfig(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// A .git directory marks the repository root; do not search
		// above it.
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// mergeFlags applies command-line values on top of the file config: skip
// patterns accumulate, a positive max-depth flag wins.
func (c *config) mergeFlags(skip []string, maxDepth int) *config {
	merged := &config{
		Skip:     append(append([]string(nil), c.Skip...), skip...),
		MaxDepth: c.MaxDepth,
	}
	if maxDepth > 0 {
		merged.MaxDepth = maxDepth
	}
	return merged
}
