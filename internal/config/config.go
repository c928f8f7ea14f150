package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 50
	DefaultAspect = 0.5

	DefaultRadius         = 30.0
	DefaultCenterY        = 18.0
	DefaultSpinnerRadius  = 14.0
	DefaultSpinnerCenterY = 20.0

	DefaultDeltaA = 0.04
	DefaultDeltaB = 0.08
	DefaultDeltaC = -0.05

	DefaultPartyDuration   = 6 * time.Second
	DefaultPartyFrameDelay = 80 * time.Millisecond

	DefaultSpinnerSteps   = 32
	DefaultStartupDelay   = 120 * time.Millisecond
	DefaultInlineDelay    = 30 * time.Millisecond
	DefaultSpinnerLabel   = "Loading"
	DefaultCreditSteps    = 20
	DefaultCreditDelay    = 40 * time.Millisecond
	DefaultCreditHold     = 2 * time.Second
	DefaultGoodbyeFrames  = 80
	DefaultGoodbyeDelay   = 60 * time.Millisecond
	DefaultFarewell       = "Thanks for stopping by. Goodbye!"
	DefaultTheme          = "disco"
	DefaultIntroTitle     = "D I S C O B A L L"
	DefaultIntroPrompt    = "press enter to continue"
	DefaultRestartPrompt  = "type r to restart the party, enter to continue"
	DefaultCreditsHeading = "~ credits ~"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Width  int     `yaml:"width" env:"DISCOBALL_WIDTH"`
	Height int     `yaml:"height" env:"DISCOBALL_HEIGHT"`
	Aspect float64 `yaml:"aspect" env:"DISCOBALL_ASPECT"`
	Color  bool    `yaml:"color" env:"DISCOBALL_COLOR"`
	Theme  string  `yaml:"theme" env:"DISCOBALL_THEME"`

	Sphere  SphereConfig  `yaml:"sphere" envPrefix:"DISCOBALL_SPHERE_"`
	Delta   DeltaConfig   `yaml:"delta" envPrefix:"DISCOBALL_DELTA_"`
	Intro   IntroConfig   `yaml:"intro" envPrefix:"DISCOBALL_INTRO_"`
	Party   PartyConfig   `yaml:"party" envPrefix:"DISCOBALL_PARTY_"`
	Spinner SpinnerConfig `yaml:"spinner" envPrefix:"DISCOBALL_SPINNER_"`
	Credits CreditsConfig `yaml:"credits" envPrefix:"DISCOBALL_CREDITS_"`
	Goodbye GoodbyeConfig `yaml:"goodbye" envPrefix:"DISCOBALL_GOODBYE_"`
}

type SphereConfig struct {
	Radius         float64 `yaml:"radius" env:"RADIUS"`
	CenterY        float64 `yaml:"center_y" env:"CENTER_Y"`
	SpinnerRadius  float64 `yaml:"spinner_radius" env:"SPINNER_RADIUS"`
	SpinnerCenterY float64 `yaml:"spinner_center_y" env:"SPINNER_CENTER_Y"`
}

// DeltaConfig holds the per-tick rotation increments.
type DeltaConfig struct {
	A float64 `yaml:"a" env:"A"`
	B float64 `yaml:"b" env:"B"`
	C float64 `yaml:"c" env:"C"`
}

type IntroConfig struct {
	Title         string `yaml:"title" env:"TITLE"`
	Prompt        string `yaml:"prompt" env:"PROMPT"`
	RestartPrompt string `yaml:"restart_prompt" env:"RESTART_PROMPT"`
}

type PartyConfig struct {
	Duration   time.Duration `yaml:"duration" env:"DURATION"`
	FrameDelay time.Duration `yaml:"frame_delay" env:"FRAME_DELAY"`
}

type SpinnerConfig struct {
	Steps        int           `yaml:"steps" env:"STEPS"`
	Label        string        `yaml:"label" env:"LABEL"`
	StartupDelay time.Duration `yaml:"startup_delay" env:"STARTUP_DELAY"`
	InlineDelay  time.Duration `yaml:"inline_delay" env:"INLINE_DELAY"`
}

type CreditsConfig struct {
	Heading    string        `yaml:"heading" env:"HEADING"`
	Names      []string      `yaml:"names" env:"NAMES" envSeparator:","`
	Steps      int           `yaml:"steps" env:"STEPS"`
	FrameDelay time.Duration `yaml:"frame_delay" env:"FRAME_DELAY"`
	Hold       time.Duration `yaml:"hold" env:"HOLD"`
}

type GoodbyeConfig struct {
	Frames     int           `yaml:"frames" env:"FRAMES"`
	FrameDelay time.Duration `yaml:"frame_delay" env:"FRAME_DELAY"`
	Farewell   string        `yaml:"farewell" env:"FAREWELL"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Aspect: DefaultAspect,
		Theme:  DefaultTheme,
		Sphere: SphereConfig{
			Radius:         DefaultRadius,
			CenterY:        DefaultCenterY,
			SpinnerRadius:  DefaultSpinnerRadius,
			SpinnerCenterY: DefaultSpinnerCenterY,
		},
		Delta: DeltaConfig{
			A: DefaultDeltaA,
			B: DefaultDeltaB,
			C: DefaultDeltaC,
		},
		Intro: IntroConfig{
			Title:         DefaultIntroTitle,
			Prompt:        DefaultIntroPrompt,
			RestartPrompt: DefaultRestartPrompt,
		},
		Party: PartyConfig{
			Duration:   DefaultPartyDuration,
			FrameDelay: DefaultPartyFrameDelay,
		},
		Spinner: SpinnerConfig{
			Steps:        DefaultSpinnerSteps,
			Label:        DefaultSpinnerLabel,
			StartupDelay: DefaultStartupDelay,
			InlineDelay:  DefaultInlineDelay,
		},
		Credits: CreditsConfig{
			Heading:    DefaultCreditsHeading,
			Names:      []string{"Lighting by the Sphere", "Choreography by the Dancers", "Floor by Tiles & Co.", "And You"},
			Steps:      DefaultCreditSteps,
			FrameDelay: DefaultCreditDelay,
			Hold:       DefaultCreditHold,
		},
		Goodbye: GoodbyeConfig{
			Frames:     DefaultGoodbyeFrames,
			FrameDelay: DefaultGoodbyeDelay,
			Farewell:   DefaultFarewell,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that the configuration can drive a scene.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Aspect <= 0:
		return fmt.Errorf("%w: aspect must be positive, got %f", ErrInvalidConfig, c.Aspect)
	case c.Sphere.Radius <= 0 || c.Sphere.SpinnerRadius <= 0:
		return fmt.Errorf("%w: sphere radius must be positive", ErrInvalidConfig)
	case c.Party.FrameDelay < 0 || c.Spinner.StartupDelay < 0 || c.Spinner.InlineDelay < 0 ||
		c.Credits.FrameDelay < 0 || c.Credits.Hold < 0 || c.Goodbye.FrameDelay < 0:
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	case c.Credits.Steps <= 0:
		return fmt.Errorf("%w: credit steps must be positive, got %d", ErrInvalidConfig, c.Credits.Steps)
	case c.Goodbye.Frames < 0:
		return fmt.Errorf("%w: goodbye frames must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SpinnerDelay returns the step delay for a startup or inline transition.
func (c *Config) SpinnerDelay(inline bool) time.Duration {
	if inline {
		return c.Spinner.InlineDelay
	}
	return c.Spinner.StartupDelay
}
