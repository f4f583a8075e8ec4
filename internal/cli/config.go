package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pagesmith/pagesmith/pkg/pipeline"
)

// configFile is the default site config filename, looked up in the
// working directory when --config is not given.
const configFile = "pagesmith.toml"

// Config is the site configuration shared by render and preview.
// Flags override config values, which override the defaults here.
type Config struct {
	// ContentDir is the directory holding page JSON files.
	ContentDir string `toml:"content_dir"`

	// Addr is the preview server listen address.
	Addr string `toml:"addr"`

	// Redis is the Redis address or URL for the preview server cache.
	// Empty means the file cache is used.
	Redis string `toml:"redis"`

	// Formats are the default render output formats.
	Formats []string `toml:"formats"`

	// Keys emits stable child keys as data-key attributes in HTML.
	Keys bool `toml:"keys"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		ContentDir: "content",
		Addr:       ":8080",
		Formats:    []string{pipeline.DefaultFormat},
	}
}

// loadConfig reads the site config from path. An empty path falls back
// to pagesmith.toml in the working directory; a missing default file is
// not an error, the defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = configFile
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return cfg, fmt.Errorf("config file not found: %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{pipeline.DefaultFormat}
	}
	return cfg, nil
}
