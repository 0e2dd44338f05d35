package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/TorgrimRL/Git-Internals/pkg/object"
)

// ConfigFileName is the optional display config looked up next to the
// repository root.
const ConfigFileName = ".git-internals.toml"

// DisplayConfig controls presentation only; it never changes which
// objects are read or how they are decoded.
type DisplayConfig struct {
	// TimeLayout is a Go reference-time layout for commit timestamps.
	// The recorded ±HH:MM zone is appended after formatting.
	TimeLayout string `toml:"time_layout"`

	// ShortIDLen is the number of id characters shown in log headers.
	ShortIDLen int `toml:"short_id_len"`
}

// DefaultDisplayConfig returns the settings used when no config file
// exists.
func DefaultDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		TimeLayout: object.DefaultTimeLayout,
		ShortIDLen: 8,
	}
}

// LoadDisplayConfig reads a TOML display config from path. A missing
// file yields the defaults; a present but unparsable file is an error.
func LoadDisplayConfig(path string) (*DisplayConfig, error) {
	cfg := DefaultDisplayConfig()

	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load display config %s: %w", path, err)
	}

	if cfg.TimeLayout == "" {
		cfg.TimeLayout = object.DefaultTimeLayout
	}
	if cfg.ShortIDLen <= 0 {
		cfg.ShortIDLen = 8
	}
	return cfg, nil
}

// DisplayConfig loads the repository's display config, falling back to
// defaults when the file is absent.
func (r *Repo) DisplayConfig() (*DisplayConfig, error) {
	return LoadDisplayConfig(filepath.Join(r.RootDir, ConfigFileName))
}
