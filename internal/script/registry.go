package script

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/discoball/internal/scene"
)

// Runner plays one step on a director.
type Runner func(ctx context.Context, d *scene.Director, step Step) error

type Registry struct {
	runners map[string]Runner
}

// NewRegistry returns a registry holding the built-in scenes. gate answers
// the "show" step; it may be nil.
func NewRegistry(gate scene.Gate) *Registry {
	r := &Registry{runners: make(map[string]Runner)}

	r.runners[scene.SceneIntro] = func(ctx context.Context, d *scene.Director, step Step) error {
		if err := d.Intro(ctx); err != nil {
			return err
		}
		d.Hold(ctx, step.Duration)
		return nil
	}
	r.runners[scene.SceneParty] = func(ctx context.Context, d *scene.Director, step Step) error {
		dur := step.Duration
		if dur == 0 {
			dur = d.Stage().Config().Party.Duration
		}
		return d.Party(ctx, dur)
	}
	r.runners[scene.SceneCredits] = func(ctx context.Context, d *scene.Director, step Step) error {
		names := step.Names
		if len(names) == 0 {
			names = d.Stage().Config().Credits.Names
		}
		return d.Credits(ctx, names)
	}
	r.runners[scene.SceneSpinner] = func(ctx context.Context, d *scene.Director, step Step) error {
		cfg := d.Stage().Config().Spinner
		n, label, delay := step.Steps, step.Label, step.Delay
		if n == 0 {
			n = cfg.Steps
		}
		if label == "" {
			label = cfg.Label
		}
		if delay == 0 {
			delay = cfg.StartupDelay
		}
		return d.Spinner(ctx, n, label, delay)
	}
	r.runners[scene.SceneGoodbye] = func(ctx context.Context, d *scene.Director, _ Step) error {
		return d.Goodbye(ctx)
	}
	r.runners["show"] = func(ctx context.Context, d *scene.Director, _ Step) error {
		return d.Show(ctx, gate)
	}

	return r
}

// Register adds or replaces the runner for name.
func (r *Registry) Register(name string, run Runner) {
	r.runners[name] = run
}

func (r *Registry) Get(name string) (Runner, error) {
	run, ok := r.runners[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return run, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.runners))
	for name := range r.runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
