// Package config loads lightbox settings from defaults, a YAML file and
// LIGHTBOX_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/phanxgames/lightbox"
	"github.com/phanxgames/lightbox/internal/gallery"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// sections: LIGHTBOX_VIEWER__MAX_SCALE sets viewer.max_scale.
const EnvPrefix = "LIGHTBOX_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

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

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
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

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	v := c.Viewer
	if v.MaxScale < 1 {
		return fmt.Errorf("viewer.max_scale must be at least 1, got %v", v.MaxScale)
	}
	if v.WheelStep <= 0 || v.WheelStep >= 1 {
		return fmt.Errorf("viewer.wheel_step must be between 0 and 1, got %v", v.WheelStep)
	}
	if v.DoubleClickScale < 1 || v.DoubleClickScale > v.MaxScale {
		return fmt.Errorf("viewer.double_click_scale must be between 1 and max_scale, got %v", v.DoubleClickScale)
	}
	if v.DoubleTapFactor <= 0 {
		return fmt.Errorf("viewer.double_tap_factor must be positive")
	}
	if v.DoubleTapWindowMS <= 0 || v.SwipeMaxDurationMS <= 0 {
		return fmt.Errorf("viewer durations must be positive")
	}
	if v.DoubleTapRadius < 0 || v.SwipeMinDistance < 0 {
		return fmt.Errorf("viewer distances must be non-negative")
	}

	if c.Display.Padding < 0 {
		return fmt.Errorf("display.padding must be non-negative")
	}
	if c.Display.TransitionMS < 0 {
		return fmt.Errorf("display.transition_ms must be non-negative")
	}

	if c.Gallery.Path == "" {
		return fmt.Errorf("gallery.path is required")
	}
	if c.Gallery.Start < 0 {
		return fmt.Errorf("gallery.start must be non-negative")
	}
	for _, p := range append(append([]string(nil), c.Gallery.Include...), c.Gallery.Exclude...) {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid gallery pattern %q", p)
		}
	}

	return nil
}

// EngineOptions maps the viewer section to engine tunables.
func (c *Config) EngineOptions() lightbox.Options {
	o := lightbox.DefaultOptions()
	o.MaxScale = c.Viewer.MaxScale
	o.WheelStep = c.Viewer.WheelStep
	o.DoubleClickScale = c.Viewer.DoubleClickScale
	o.DoubleTapFactor = c.Viewer.DoubleTapFactor
	o.DoubleTapWindow = time.Duration(c.Viewer.DoubleTapWindowMS) * time.Millisecond
	o.DoubleTapRadius = c.Viewer.DoubleTapRadius
	o.SwipeMinDistance = c.Viewer.SwipeMinDistance
	o.SwipeMaxDuration = time.Duration(c.Viewer.SwipeMaxDurationMS) * time.Millisecond
	return o
}

// ScanConfig returns the directory scan settings for the gallery section.
func (c *Config) ScanConfig() gallery.ScanConfig {
	return gallery.ScanConfig{
		RootDir: c.Gallery.Path,
		Include: c.Gallery.Include,
		Exclude: c.Gallery.Exclude,
	}
}

// Transition returns the display transition duration.
func (c *Config) Transition() time.Duration {
	return time.Duration(c.Display.TransitionMS) * time.Millisecond
}
