package config

import (
	"sort"
	"time"
)

// Presets adjust the defaults for common call sites. Each entry mutates a
// fresh DefaultConfig.
var Presets = map[string]func(*Config){
	"startup": func(c *Config) {
		c.Party.Duration = 8 * time.Second
		c.Spinner.Label = "Starting up"
	},
	"inline": func(c *Config) {
		c.Party.Duration = 2 * time.Second
		c.Spinner.Steps = 16
		c.Spinner.StartupDelay = c.Spinner.InlineDelay
		c.Spinner.Label = "Loading menu"
		c.Credits.Hold = 500 * time.Millisecond
	},
	"quick": func(c *Config) {
		c.Party.Duration = time.Second
		c.Party.FrameDelay = 40 * time.Millisecond
		c.Spinner.Steps = 8
		c.Credits.Steps = 8
		c.Credits.Hold = 250 * time.Millisecond
		c.Goodbye.Frames = 60
		c.Goodbye.FrameDelay = 30 * time.Millisecond
	},
	"compact": func(c *Config) {
		c.Width = 64
		c.Height = 32
		c.Sphere.Radius = 18
		c.Sphere.CenterY = 11
		c.Sphere.SpinnerRadius = 9
		c.Sphere.SpinnerCenterY = 12
	},
}

// GetPreset returns the default configuration with the named preset applied,
// or nil when no such preset exists.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
