// Package script runs shows described in YAML: a list of scenes with
// per-step overrides.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/discoball/internal/scene"
	"gopkg.in/yaml.v3"
)

var ErrUnknownScene = errors.New("unknown scene")

// Script is a named sequence of scenes.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one scene with optional overrides. Zero fields fall back to the
// director's configuration.
type Step struct {
	Scene    string        `yaml:"scene"`
	Duration time.Duration `yaml:"duration"`
	Steps    int           `yaml:"steps"`
	Label    string        `yaml:"label"`
	Delay    time.Duration `yaml:"delay"`
	Names    []string      `yaml:"names"`
}

// Load reads a script from a YAML file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML show script. Call Validate before running it.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return &s, nil
}

// Validate checks every step against reg.
func (s *Script) Validate(reg *Registry) error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("script %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		if _, err := reg.Get(step.Scene); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if step.Duration < 0 || step.Delay < 0 || step.Steps < 0 {
			return fmt.Errorf("step %d (%s): negative duration, delay or steps", i+1, step.Scene)
		}
	}
	return nil
}

// Run validates s and then plays its steps in order on d. An interrupt stops
// the script between or during steps without error.
func Run(ctx context.Context, s *Script, d *scene.Director, reg *Registry) error {
	if err := s.Validate(reg); err != nil {
		return err
	}

	log := scene.Logger()
	for i, step := range s.Steps {
		if ctx.Err() != nil {
			log.Info("script interrupted", "script", s.Name, "step", i+1)
			return nil
		}
		run, _ := reg.Get(step.Scene)
		log.Info("script step", "script", s.Name, "step", i+1, "of", len(s.Steps), "scene", step.Scene)
		if err := run(ctx, d, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Scene, err)
		}
	}
	return nil
}
