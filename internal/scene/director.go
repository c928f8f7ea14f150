package scene

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/discoball/internal/config"
)

// Scene names, as used in logs and show scripts.
const (
	SceneIntro   = "intro"
	SceneParty   = "party"
	SceneCredits = "credits"
	SceneSpinner = "spinner"
	SceneGoodbye = "goodbye"
)

// Sink receives rendered frames and status text.
type Sink interface {
	Clear() error
	Present(frame string) error
	Message(text string) error
}

// Phase is a state of the show sequence.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseParty
	PhaseCredits
	PhaseSpinner
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return SceneIntro
	case PhaseParty:
		return SceneParty
	case PhaseCredits:
		return SceneCredits
	case PhaseSpinner:
		return SceneSpinner
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Next returns the phase following p. restart is only consulted after the
// spinner, where it loops back to the party.
func Next(p Phase, restart bool) Phase {
	switch p {
	case PhaseIntro:
		return PhaseParty
	case PhaseParty:
		return PhaseCredits
	case PhaseCredits:
		return PhaseSpinner
	case PhaseSpinner:
		if restart {
			return PhaseParty
		}
	}
	return PhaseDone
}

// Director runs scenes on a Stage and writes every frame to a Sink.
type Director struct {
	stage *Stage
	sink  Sink
	pacer Pacer
}

// Option configures a Director.
type Option func(*Director)

// WithPacer replaces the wall clock, mainly for tests.
func WithPacer(p Pacer) Option {
	return func(d *Director) { d.pacer = p }
}

// WithStage runs the director on an existing stage.
func WithStage(s *Stage) Option {
	return func(d *Director) { d.stage = s }
}

// New returns a Director drawing to sink. Unless an option supplies a Stage,
// a new one is built from cfg.
func New(cfg *config.Config, sink Sink, opts ...Option) *Director {
	d := &Director{sink: sink, pacer: WallClock()}
	for _, opt := range opts {
		opt(d)
	}
	if d.stage == nil {
		d.stage = NewStage(cfg)
	}
	return d
}

func (d *Director) Stage() *Stage { return d.stage }

func (d *Director) present(frame string) error {
	if err := d.sink.Present(frame); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// begin clears the sink for a new scene. It reports false when the context
// is already done.
func (d *Director) begin(ctx context.Context, scene string) (bool, error) {
	if ctx.Err() != nil {
		return false, nil
	}
	Logger().Info("scene start", "scene", scene)
	if err := d.sink.Clear(); err != nil {
		return false, fmt.Errorf("clear screen: %w", err)
	}
	return true, nil
}

// wait pauses between frames and reports false when interrupted.
func (d *Director) wait(ctx context.Context, delay time.Duration, scene string, frame int) bool {
	if d.pacer.Sleep(ctx, delay) {
		return true
	}
	Logger().Info("scene interrupted", "scene", scene, "frame", frame)
	return false
}

// Intro presents the static title card.
func (d *Director) Intro(ctx context.Context) error {
	if ok, err := d.begin(ctx, SceneIntro); !ok {
		return err
	}
	return d.present(d.stage.IntroFrame())
}

// Hold keeps the current frame on screen for dur and reports false when
// interrupted.
func (d *Director) Hold(ctx context.Context, dur time.Duration) bool {
	if dur <= 0 {
		return ctx.Err() == nil
	}
	return d.wait(ctx, dur, "hold", 0)
}

// Party runs the rotating party scene for the wall-clock duration dur.
func (d *Director) Party(ctx context.Context, dur time.Duration) error {
	if ok, err := d.begin(ctx, SceneParty); !ok {
		return err
	}
	delay := d.stage.cfg.Party.FrameDelay
	start := d.pacer.Now()
	frames := 0
	for d.pacer.Now().Sub(start) < dur {
		if err := d.present(d.stage.PartyFrame()); err != nil {
			return err
		}
		frames++
		if !d.wait(ctx, delay, SceneParty, frames) {
			return nil
		}
	}
	Logger().Debug("scene done", "scene", SceneParty, "frames", frames)
	return nil
}

// Spinner runs steps 0..n of the loading spinner with label, pausing delay
// after each step. n <= 0 shows a single completed frame.
func (d *Director) Spinner(ctx context.Context, n int, label string, delay time.Duration) error {
	if ok, err := d.begin(ctx, SceneSpinner); !ok {
		return err
	}
	if n <= 0 {
		return d.present(d.stage.SpinnerFrame(0, 0, label))
	}
	for s := 0; s <= n; s++ {
		if err := d.present(d.stage.SpinnerFrame(s, n, label)); err != nil {
			return err
		}
		if !d.wait(ctx, delay, SceneSpinner, s) {
			return nil
		}
	}
	Logger().Debug("scene done", "scene", SceneSpinner, "steps", n, "label", label)
	return nil
}

// Credits slides each name into place below the previous ones, then holds
// the full list.
func (d *Director) Credits(ctx context.Context, names []string) error {
	if ok, err := d.begin(ctx, SceneCredits); !ok {
		return err
	}
	cfg := d.stage.cfg
	done := make([]string, 0, len(names))
	frames := 0
	for _, name := range names {
		for _, col := range CreditColumns(name, cfg.Width, cfg.Credits.Steps) {
			if err := d.present(d.stage.CreditsFrame(done, name, col)); err != nil {
				return err
			}
			frames++
			if !d.wait(ctx, cfg.Credits.FrameDelay, SceneCredits, frames) {
				return nil
			}
		}
		done = append(done, name)
	}
	if err := d.present(d.stage.CreditsFrame(done, "", 0)); err != nil {
		return err
	}
	d.wait(ctx, cfg.Credits.Hold, SceneCredits, frames)
	return nil
}

// Goodbye plays the closing sequence and then prints the farewell line once.
func (d *Director) Goodbye(ctx context.Context) error {
	if ok, err := d.begin(ctx, SceneGoodbye); !ok {
		return err
	}
	cfg := d.stage.cfg
	for i := 0; i < cfg.Goodbye.Frames; i++ {
		if err := d.present(d.stage.GoodbyeFrame(i)); err != nil {
			return err
		}
		if !d.wait(ctx, cfg.Goodbye.FrameDelay, SceneGoodbye, i) {
			break
		}
	}
	if err := d.sink.Message(cfg.Goodbye.Farewell); err != nil {
		return fmt.Errorf("farewell: %w", err)
	}
	return nil
}

// Show runs intro, party, credits and spinner in order. After the spinner
// the gate decides between restarting the party and returning. A nil gate
// never waits and never restarts.
func (d *Director) Show(ctx context.Context, gate Gate) error {
	cfg := d.stage.cfg
	phase := PhaseIntro
	round := 1
	for phase != PhaseDone {
		if ctx.Err() != nil {
			Logger().Info("show interrupted", "phase", phase.String())
			return nil
		}

		var err error
		restart := false
		switch phase {
		case PhaseIntro:
			if err = d.Intro(ctx); err == nil {
				d.await(ctx, gate)
			}
		case PhaseParty:
			err = d.Party(ctx, cfg.Party.Duration)
		case PhaseCredits:
			err = d.Credits(ctx, cfg.Credits.Names)
		case PhaseSpinner:
			err = d.Spinner(ctx, cfg.Spinner.Steps, cfg.Spinner.Label, cfg.Spinner.StartupDelay)
			if err == nil && gate != nil && ctx.Err() == nil {
				if err = d.sink.Message(cfg.Intro.RestartPrompt); err != nil {
					err = fmt.Errorf("prompt: %w", err)
				} else {
					restart = wantsRestart(d.await(ctx, gate))
				}
			}
		}
		if err != nil {
			return err
		}

		next := Next(phase, restart)
		if phase == PhaseSpinner && next == PhaseParty {
			round++
			Logger().Info("restarting party", "round", round)
		}
		phase = next
	}
	return nil
}

// await blocks on the gate and returns the answer. Input errors count as an
// empty answer.
func (d *Director) await(ctx context.Context, gate Gate) string {
	if gate == nil {
		return ""
	}
	line, err := gate.Wait(ctx)
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
			Logger().Warn("gate read failed", "err", err)
		}
		return ""
	}
	return line
}
