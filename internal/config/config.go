package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"shooter/internal/assets"
)

const (
	BackendEbiten   = "ebiten"
	BackendTerminal = "terminal"
)

type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type Log struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"`
	Development bool   `yaml:"development"`
	File        string `yaml:"file"`
}

// Config is the process configuration. It is read once at startup and not
// mutated afterwards.
type Config struct {
	Backend  string `yaml:"backend"`
	Seed     int64  `yaml:"seed"`
	TickRate int    `yaml:"tick_rate"`
	Audio    bool   `yaml:"audio"`
	Debug    bool   `yaml:"debug"`
	Window   Window `yaml:"window"`
	Log      Log    `yaml:"log"`
}

// Default decodes the embedded default document.
func Default() (*Config, error) {
	data, err := assets.DefaultConfig()
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := decode(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid default config: %w", err)
	}
	return cfg, nil
}

// Load returns the defaults overlaid with the document at path. An empty
// path yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := decode(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	err := yaml.Unmarshal(data, cfg)
	if err == nil {
		return nil
	}
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		for _, msg := range typeErr.Errors {
			if strings.HasPrefix(msg, "line") {
				return errors.New(msg)
			}
		}
	}
	return err
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendEbiten, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}
