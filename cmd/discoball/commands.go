package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/discoball/internal/config"
	"github.com/san-kum/discoball/internal/record"
	"github.com/san-kum/discoball/internal/scene"
	"github.com/san-kum/discoball/internal/script"
	"github.com/san-kum/discoball/internal/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func recordingsDir() string {
	return filepath.Join(dataDir, "recordings")
}

// runShow plays the full show and then the goodbye sequence.
func runShow(cmd *cobra.Command, args []string) error {
	return withSession(cmd.Context(), func(s *session) error {
		d := s.director(nil)
		if err := d.Show(s.ctx, s.gate); err != nil {
			return err
		}
		return d.Goodbye(s.ctx)
	})
}

func runParty(cmd *cobra.Command, args []string) error {
	return withSession(cmd.Context(), func(s *session) error {
		dur := s.cfg.Party.Duration
		if partyDuration != "" {
			d, err := time.ParseDuration(partyDuration)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			dur = d
		}
		return s.director(nil).Party(s.ctx, dur)
	})
}

func runSpinner(cmd *cobra.Command, args []string) error {
	return withSession(cmd.Context(), func(s *session) error {
		steps, label := s.cfg.Spinner.Steps, s.cfg.Spinner.Label
		if spinnerSteps > 0 {
			steps = spinnerSteps
		}
		if spinnerLabel != "" {
			label = spinnerLabel
		}
		return s.director(nil).Spinner(s.ctx, steps, label, s.cfg.SpinnerDelay(inline))
	})
}

func runCredits(cmd *cobra.Command, args []string) error {
	return withSession(cmd.Context(), func(s *session) error {
		names := s.cfg.Credits.Names
		if len(creditNames) > 0 {
			names = creditNames
		}
		return s.director(nil).Credits(s.ctx, names)
	})
}

func runGoodbye(cmd *cobra.Command, args []string) error {
	return withSession(cmd.Context(), func(s *session) error {
		return s.director(nil).Goodbye(s.ctx)
	})
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), scene.NewStage(cfg))
}

func runScript(cmd *cobra.Command, args []string) error {
	sc, err := script.Load(args[0])
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}
	return withSession(cmd.Context(), func(s *session) error {
		return script.Run(s.ctx, sc, s.director(nil), script.NewRegistry(s.gate))
	})
}

// frameDelay is the pace a recording of sceneName is replayed at.
func frameDelay(cfg *config.Config, sceneName string) time.Duration {
	switch sceneName {
	case scene.SceneSpinner:
		return cfg.Spinner.StartupDelay
	case scene.SceneCredits:
		return cfg.Credits.FrameDelay
	case scene.SceneGoodbye:
		return cfg.Goodbye.FrameDelay
	}
	return cfg.Party.FrameDelay
}

func runRecord(cmd *cobra.Command, args []string) error {
	name := args[0]
	if _, err := script.NewRegistry(nil).Get(name); err != nil {
		return err
	}
	one := &script.Script{Name: "record " + name, Steps: []script.Step{{Scene: name}}}

	var (
		cfg *config.Config
		rec *record.Recorder
	)
	if quiet {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = c
		rec = record.NewRecorder(nil)
		d := scene.New(cfg, rec)
		forceStyles(d.Stage())
		if err := script.Run(cmd.Context(), one, d, script.NewRegistry(nil)); err != nil {
			return err
		}
	} else {
		err := withSession(cmd.Context(), func(s *session) error {
			cfg = s.cfg
			rec = record.NewRecorder(s.out)
			return script.Run(s.ctx, one, s.director(rec), script.NewRegistry(s.gate))
		})
		if err != nil {
			return err
		}
	}

	st := record.New(recordingsDir())
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(name, cfg.Width, cfg.Height, frameDelay(cfg, name), rec)
	if err != nil {
		return err
	}
	fmt.Printf("saved %s (%d frames)\n", id, len(rec.Frames()))
	return nil
}

func runReplay(cmd *cobra.Command, args []string) error {
	st := record.New(recordingsDir())
	id := args[0]
	return withSession(cmd.Context(), func(s *session) error {
		if replayDelay == "" {
			return st.ReplayRun(s.ctx, id, s.out, nil)
		}
		delay, err := time.ParseDuration(replayDelay)
		if err != nil {
			return fmt.Errorf("invalid delay: %w", err)
		}
		frames, err := st.LoadFrames(id)
		if err != nil {
			return err
		}
		return record.Replay(s.ctx, s.out, frames, delay, nil)
	})
}

func listRecordings(cmd *cobra.Command, args []string) error {
	runs, err := record.New(recordingsDir()).List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no recordings found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tSIZE\tFRAMES\tDELAY")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Width, run.Height,
			run.Frames,
			run.Delay(),
		)
	}
	return w.Flush()
}

type benchSize struct {
	name string
	cfg  *config.Config
}

// renderTimes renders n party frames and returns each frame's render time in
// microseconds.
func renderTimes(ctx context.Context, cfg *config.Config, n int) []float64 {
	stage := scene.NewStage(cfg)
	times := make([]float64, 0, n)
	for i := 0; i < n && ctx.Err() == nil; i++ {
		start := time.Now()
		stage.PartyFrame()
		times = append(times, float64(time.Since(start).Microseconds()))
	}
	return times
}

func benchRender(cmd *cobra.Command, args []string) error {
	if benchFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", benchFrames)
	}
	base, err := loadConfig()
	if err != nil {
		return err
	}
	wide := *base
	wide.Width, wide.Height = base.Width*3/2, base.Height*6/5

	sizes := []benchSize{{"current", base}, {"wide", &wide}}
	if c := config.GetPreset("compact"); c != nil {
		c.Color = base.Color
		sizes = append(sizes, benchSize{"compact", c})
	}

	fmt.Printf("benchmarking %d party frames per size\n\n", benchFrames)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tDIMS\tFRAMES\tMEAN\tMAX\tFRAMES/SEC")

	var first []float64
	for _, sz := range sizes {
		times := renderTimes(cmd.Context(), sz.cfg, benchFrames)
		if len(times) == 0 {
			break
		}
		if first == nil {
			first = times
		}
		total, peak := 0.0, 0.0
		for _, us := range times {
			total += us
			peak = max(peak, us)
		}
		mean := total / float64(len(times))
		fps := 0.0
		if total > 0 {
			fps = float64(len(times)) / (total / 1e6)
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%.0fµs\t%.0fµs\t%.0f\n",
			sz.name, sz.cfg.Width, sz.cfg.Height, len(times), mean, peak, fps)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(first) > 1 {
		graph := asciigraph.Plot(first,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("render time per frame (µs), current size"),
		)
		fmt.Printf("\n%s\n", graph)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSIZE\tPARTY\tSPINNER\tLABEL")
	for _, name := range config.ListPresets() {
		c := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%d @ %s\t%s\n",
			name, c.Width, c.Height, c.Party.Duration, c.Spinner.Steps, c.Spinner.StartupDelay, c.Spinner.Label)
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
