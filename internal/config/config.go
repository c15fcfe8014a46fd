package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/kyaoi/chronoline/internal/timeline"
)

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = ".chronoline.yml"

// EnvPrefix prefixes environment overrides, e.g. CHRONOLINE_THEME=dark or
// CHRONOLINE_SERVER__ADDR=:9000.
const EnvPrefix = "CHRONOLINE_"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme: timeline.PreferSystem,
		Watch: true,
		Server: ServerConfig{
			Addr: ":8080",
		},
		Export: ExportConfig{
			Format: FormatHTML,
			Width:  1280,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// CHRONOLINE_SERVER__ADDR -> server.addr
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validFormats = map[ExportFormat]bool{
	FormatHTML: true,
	FormatPNG:  true,
	FormatJPG:  true,
	FormatJPEG: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "", timeline.PreferSystem, string(timeline.Light), string(timeline.Dark):
	default:
		return fmt.Errorf("invalid theme %q: must be one of system, light, dark", c.Theme)
	}
	if c.Export.Format != "" && !validFormats[ExportFormat(strings.ToLower(string(c.Export.Format)))] {
		return fmt.Errorf("invalid export format %q: must be one of html, png, jpg, jpeg", c.Export.Format)
	}
	if c.Export.Width < 0 {
		return fmt.Errorf("export width must be non-negative")
	}
	return nil
}
