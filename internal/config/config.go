// Package config loads optional user configuration from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/docxwrap/config.toml (falling back to
// ~/.config/docxwrap/config.toml). A missing file is not an error; defaults
// apply. Command-line flags override anything set here.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const appName = "docxwrap"

// Config holds user-tunable settings.
type Config struct {
	// Extractor is the page-extraction binary to invoke. Defaults to "inkscape".
	Extractor string `toml:"extractor"`

	// CacheDir overrides the render cache location. Empty means the XDG default.
	CacheDir string `toml:"cache_dir"`

	// NoCache disables the render cache entirely.
	NoCache bool `toml:"no_cache"`

	// CacheTTLDays is how long rendered pages stay cached. Zero means the
	// built-in default.
	CacheTTLDays int `toml:"cache_ttl_days"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Extractor: "inkscape"}
}

// Path returns the location of the config file following the XDG standard.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file if it exists and overlays it on Default.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads a specific config file. A missing file yields defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	if cfg.Extractor == "" {
		cfg.Extractor = Default().Extractor
	}
	return cfg, nil
}
