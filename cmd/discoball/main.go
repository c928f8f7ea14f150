package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	sinkName   string
	colorMode  string
	theme      string
	debug      bool
	auto       bool
	inline     bool

	partyDuration string
	spinnerSteps  int
	spinnerLabel  string
	creditNames   []string

	replayDelay string
	benchFrames int
	quiet       bool
)

func main() {
	rootCmd := newRootCmd()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "discoball",
		Short:         "ascii disco ball, dancers and loading spinners for the terminal",
		Long:          "discoball renders a rotating 3D disco ball with dancing sprites, credits and a loading spinner as ASCII frames.\nWith no subcommand it plays the full show.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runShow,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logFile = setupLogging(dataDir, debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".discoball", "data directory for recordings and logs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&sinkName, "sink", "ansi", "output: ansi, plain or screen")
	pf.StringVar(&colorMode, "color", "auto", "highlight colours: auto, always or never")
	pf.StringVar(&theme, "theme", "", "colour theme")
	pf.BoolVar(&debug, "debug", false, "write debug logs to <data>/logs")
	pf.BoolVar(&auto, "auto", false, "never wait for input between scenes")

	partyCmd := &cobra.Command{
		Use:   "party",
		Short: "rotating disco ball with dancers",
		Args:  cobra.NoArgs,
		RunE:  runParty,
	}
	partyCmd.Flags().StringVar(&partyDuration, "duration", "", "party length, e.g. 6s")

	spinnerCmd := &cobra.Command{
		Use:   "spinner",
		Short: "loading spinner with progress bar",
		Args:  cobra.NoArgs,
		RunE:  runSpinner,
	}
	spinnerCmd.Flags().IntVar(&spinnerSteps, "steps", 0, "number of steps")
	spinnerCmd.Flags().StringVar(&spinnerLabel, "label", "", "status label")
	spinnerCmd.Flags().BoolVar(&inline, "inline", false, "use the short inline step delay")

	creditsCmd := &cobra.Command{
		Use:   "credits",
		Short: "slide in the credits",
		Args:  cobra.NoArgs,
		RunE:  runCredits,
	}
	creditsCmd.Flags().StringSliceVar(&creditNames, "names", nil, "credit entries")

	goodbyeCmd := &cobra.Command{
		Use:   "goodbye",
		Short: "closing sequence",
		Args:  cobra.NoArgs,
		RunE:  runGoodbye,
	}

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "interactive party player",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "run a yaml show script",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	recordCmd := &cobra.Command{
		Use:   "record [scene]",
		Short: "run a scene and store its frames",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecord,
	}
	recordCmd.Flags().BoolVar(&quiet, "quiet", false, "record without drawing")

	replayCmd := &cobra.Command{
		Use:   "replay [id]",
		Short: "replay a stored recording",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplay,
	}
	replayCmd.Flags().StringVar(&replayDelay, "delay", "", "override the recorded frame delay")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		Args:  cobra.NoArgs,
		RunE:  listRecordings,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark frame rendering",
		Args:  cobra.NoArgs,
		RunE:  benchRender,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 200, "frames per size")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list configuration presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  printConfig,
	}

	rootCmd.AddCommand(partyCmd, spinnerCmd, creditsCmd, goodbyeCmd, playCmd,
		scriptCmd, recordCmd, replayCmd, listCmd, benchCmd, presetsCmd, configCmd)
	return rootCmd
}
