package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional trellis.yaml application configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	UI     UIConfig     `yaml:"ui"`
	Debug  bool         `yaml:"debug"`
}

// WindowConfig holds the host window settings.
type WindowConfig struct {
	Width     int    `yaml:"width,omitempty"`
	Height    int    `yaml:"height,omitempty"`
	Title     string `yaml:"title,omitempty"`
	Resizable *bool  `yaml:"resizable,omitempty"`
}

// UIConfig holds widget defaults.
type UIConfig struct {
	FontSize float64 `yaml:"font_size,omitempty"`
	Padding  *int    `yaml:"padding,omitempty"`
	Margin   *int    `yaml:"margin,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	resizable := true
	padding, margin := 3, 5
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "Trellis",
			Resizable: &resizable,
		},
		UI: UIConfig{
			FontSize: 16,
			Padding:  &padding,
			Margin:   &margin,
		},
	}
}

// Load reads the YAML file at path. A missing file yields Default, and
// fields left out of the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.merge(&file)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Window.Width != 0 {
		c.Window.Width = o.Window.Width
	}
	if o.Window.Height != 0 {
		c.Window.Height = o.Window.Height
	}
	if o.Window.Title != "" {
		c.Window.Title = o.Window.Title
	}
	if o.Window.Resizable != nil {
		c.Window.Resizable = o.Window.Resizable
	}
	if o.UI.FontSize != 0 {
		c.UI.FontSize = o.UI.FontSize
	}
	if o.UI.Padding != nil {
		c.UI.Padding = o.UI.Padding
	}
	if o.UI.Margin != nil {
		c.UI.Margin = o.UI.Margin
	}
	c.Debug = c.Debug || o.Debug
}

func (c *Config) validate() error {
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size %dx%d is negative", c.Window.Width, c.Window.Height)
	}
	if c.UI.FontSize < 0 {
		return fmt.Errorf("font_size %v is negative", c.UI.FontSize)
	}
	if *c.UI.Padding < 0 || *c.UI.Margin < 0 {
		return errors.New("padding and margin must not be negative")
	}
	return nil
}
