package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/san-kum/discoball/internal/config"
	"github.com/san-kum/discoball/internal/scene"
	"github.com/san-kum/discoball/internal/sink"
	"github.com/san-kum/discoball/internal/viz"
	"golang.org/x/term"
)

// loadConfig builds the effective configuration: preset or file, then
// DISCOBALL_* environment overrides, then flags.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	default:
		cfg = config.DefaultConfig()
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if theme != "" {
		cfg.Theme = theme
	}

	tty := isTerminal(os.Stdout)
	switch colorMode {
	case "always":
		cfg.Color = true
	case "never":
		cfg.Color = false
	case "auto":
		cfg.Color = cfg.Color || (tty && sinkName != "plain")
	default:
		return nil, fmt.Errorf("unknown color mode: %s", colorMode)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// warnSmallTerminal reports when stdout cannot fit a whole frame.
func warnSmallTerminal(cfg *config.Config) {
	if !isTerminal(os.Stdout) {
		return
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if w < cfg.Width || h < cfg.Height+1 {
		fmt.Fprintf(os.Stderr, "warning: terminal is %dx%d, frames need %dx%d\n", w, h, cfg.Width, cfg.Height+1)
	}
}

// session is one run of scenes on an output, with the input gate matching
// that output.
type session struct {
	ctx    context.Context
	cfg    *config.Config
	out    scene.Sink
	gate   scene.Gate
	cancel context.CancelFunc
	close  func()
}

func openSession(ctx context.Context, cfg *config.Config) (*session, error) {
	ctx, cancel := context.WithCancel(ctx)
	s := &session{ctx: ctx, cfg: cfg, cancel: cancel, close: func() {}}

	switch sinkName {
	case "ansi", "plain":
		var a *sink.ANSI
		if sinkName == "plain" || !isTerminal(os.Stdout) {
			a = sink.NewPlain(os.Stdout)
		} else {
			warnSmallTerminal(cfg)
			a = sink.NewANSI(os.Stdout)
		}
		if err := a.Begin(); err != nil {
			cancel()
			return nil, err
		}
		s.out = a
		s.close = func() { _ = a.End() }
		if !auto {
			s.gate = scene.NewLineGate(os.Stdin)
		}
	case "screen":
		screen, err := tcell.NewScreen()
		if err != nil {
			cancel()
			return nil, fmt.Errorf("open screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			cancel()
			return nil, fmt.Errorf("init screen: %w", err)
		}
		keys := sink.NewKeys(screen, cancel)
		go keys.Run()
		out := sink.NewScreen(screen)
		s.out = out
		s.close = func() {
			screen.Fini()
			if m := out.LastMessage(); m != "" {
				fmt.Println(m)
			}
		}
		if !auto {
			s.gate = keys
		}
	default:
		cancel()
		return nil, fmt.Errorf("unknown sink: %s", sinkName)
	}
	return s, nil
}

func (s *session) director(out scene.Sink) *scene.Director {
	if out == nil {
		out = s.out
	}
	d := scene.New(s.cfg, out)
	forceStyles(d.Stage())
	return d
}

// forceStyles swaps in fixed ANSI highlights when colour is forced on a
// stream lipgloss would render without colour.
func forceStyles(st *scene.Stage) {
	if colorMode == "always" && !isTerminal(os.Stdout) {
		st.SetStyles(viz.SparkleStyle, viz.BannerStyle)
	}
}

func (s *session) Close() {
	s.close()
	s.cancel()
}

// withSession loads the configuration, opens the output and runs fn.
func withSession(ctx context.Context, fn func(s *session) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := openSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}
