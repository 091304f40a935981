package config

import (
	"os"
	"path/filepath"
)

const defaultDebounceMs = 300

// DefaultConfig returns the configuration used when no .unjucks.yaml
// is found.
func DefaultConfig() *Config {
	return &Config{
		Generation: GenerationConfig{
			Dest:           ".",
			IgnorePatterns: DefaultIgnorePatterns(),
		},
		Watch: WatchConfig{
			DebounceMs: defaultDebounceMs,
		},
	}
}

// DefaultIgnorePatterns returns glob patterns excluded from every
// template directory scan.
func DefaultIgnorePatterns() []string {
	return []string{
		".DS_Store",
		"Thumbs.db",
		"*.swp",
		"*.swo",
		"*~",
	}
}

// DefaultPacksDir returns where remote packs install when the config
// does not say otherwise.
func DefaultPacksDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".unjucks", "packs")
}
