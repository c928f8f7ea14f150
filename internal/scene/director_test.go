package scene_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/discoball/internal/config"
	"github.com/san-kum/discoball/internal/scene"
	"github.com/san-kum/discoball/internal/viz"
)

var _ = Describe("Next", func() {
	DescribeTable("phase transitions",
		func(p scene.Phase, restart bool, want scene.Phase) {
			Expect(scene.Next(p, restart)).To(Equal(want))
		},
		Entry("intro", scene.PhaseIntro, false, scene.PhaseParty),
		Entry("party", scene.PhaseParty, false, scene.PhaseCredits),
		Entry("credits", scene.PhaseCredits, true, scene.PhaseSpinner),
		Entry("spinner proceeds", scene.PhaseSpinner, false, scene.PhaseDone),
		Entry("spinner restarts", scene.PhaseSpinner, true, scene.PhaseParty),
		Entry("done stays done", scene.PhaseDone, true, scene.PhaseDone),
	)

	It("names phases after their scenes", func() {
		Expect(scene.PhaseCredits.String()).To(Equal(scene.SceneCredits))
		Expect(scene.Phase(42).String()).To(Equal("phase(42)"))
	})
})

var _ = Describe("Director", func() {
	var (
		cfg   *config.Config
		sink  *fakeSink
		clock *fakeClock
		dir   *scene.Director
		ctx   context.Context
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		cfg.Credits.Names = []string{"Ada"}
		sink = &fakeSink{}
		clock = newFakeClock()
		ctx = context.Background()
	})

	JustBeforeEach(func() {
		dir = scene.New(cfg, sink, scene.WithPacer(clock))
	})

	Describe("Party", func() {
		It("renders frames until the duration elapses", func() {
			Expect(dir.Party(ctx, 800*time.Millisecond)).To(Succeed())
			Expect(sink.clears).To(Equal(1))
			Expect(sink.frames).To(HaveLen(10))
			Expect(clock.sleeps).To(HaveEach(80 * time.Millisecond))
			Expect(dir.Stage().Tick()).To(Equal(10))
		})

		It("stops cleanly when interrupted", func() {
			cctx, cancel := context.WithCancel(ctx)
			defer cancel()
			clock.onSleep = func(n int) {
				if n == 3 {
					cancel()
				}
			}
			Expect(dir.Party(cctx, time.Minute)).To(Succeed())
			Expect(sink.frames).To(HaveLen(3))
		})

		It("wraps sink failures", func() {
			sink.err = errBoom
			err := dir.Party(ctx, time.Second)
			Expect(err).To(MatchError(errBoom))
			Expect(err.Error()).To(HavePrefix("present frame:"))
		})
	})

	Describe("Spinner", func() {
		It("renders steps 0 through n", func() {
			Expect(dir.Spinner(ctx, 32, "Loading", 120*time.Millisecond)).To(Succeed())
			Expect(sink.frames).To(HaveLen(33))
			Expect(clock.sleeps).To(HaveLen(33))
			Expect(sink.frames[0]).To(ContainSubstring("| Loading 0%"))
			Expect(sink.frames[32]).To(ContainSubstring("| Loading 100%"))
		})

		It("shows a single completed frame for zero steps", func() {
			Expect(dir.Spinner(ctx, 0, "Syncing", 30*time.Millisecond)).To(Succeed())
			Expect(sink.frames).To(HaveLen(1))
			Expect(sink.frames[0]).To(ContainSubstring("Syncing 100%"))
		})
	})

	Describe("Credits", func() {
		It("slides each entry in and holds the list", func() {
			Expect(dir.Credits(ctx, []string{"Ada"})).To(Succeed())
			Expect(sink.frames).To(HaveLen(cfg.Credits.Steps + 2))

			seen := map[string]bool{}
			for _, f := range sink.frames[:cfg.Credits.Steps+1] {
				seen[f] = true
			}
			Expect(seen).To(HaveLen(cfg.Credits.Steps + 1))

			last := sink.frames[len(sink.frames)-1]
			Expect(last).To(Equal(sink.frames[len(sink.frames)-2]))
			Expect(clock.sleeps[len(clock.sleeps)-1]).To(Equal(cfg.Credits.Hold))
		})

		It("freezes earlier entries while the next one slides", func() {
			Expect(dir.Credits(ctx, []string{"Ada", "Grace"})).To(Succeed())
			row := dir.Stage().CreditRow(0)
			centred := strings.Repeat(" ", 38) + "Ada" + strings.Repeat(" ", 39)
			for _, f := range sink.frames[cfg.Credits.Steps+1:] {
				Expect(viz.Lines(f)[row]).To(Equal(centred))
			}
		})
	})

	Describe("Goodbye", func() {
		It("plays every frame then prints the farewell once", func() {
			Expect(dir.Goodbye(ctx)).To(Succeed())
			Expect(sink.frames).To(HaveLen(cfg.Goodbye.Frames))
			Expect(sink.messages).To(Equal([]string{cfg.Goodbye.Farewell}))
			Expect(dir.Stage().Rotation().A).To(BeNumerically("~", 0.42, 1e-9))
		})

		It("still says goodbye after an interrupt", func() {
			cctx, cancel := context.WithCancel(ctx)
			defer cancel()
			clock.onSleep = func(n int) {
				if n == 5 {
					cancel()
				}
			}
			Expect(dir.Goodbye(cctx)).To(Succeed())
			Expect(sink.frames).To(HaveLen(5))
			Expect(sink.messages).To(HaveLen(1))
		})
	})

	Describe("Show", func() {
		It("runs each phase once without a gate", func() {
			Expect(dir.Show(ctx, nil)).To(Succeed())
			Expect(sink.clears).To(Equal(4))
			Expect(sink.messages).To(BeEmpty())
		})

		It("restarts the party when asked", func() {
			gate := &scene.AutoGate{Lines: []string{"", "r", ""}}
			Expect(dir.Show(ctx, gate)).To(Succeed())
			Expect(sink.clears).To(Equal(7))
			Expect(sink.messages).To(Equal([]string{cfg.Intro.RestartPrompt, cfg.Intro.RestartPrompt}))
			Expect(gate.Lines).To(BeEmpty())
		})

		It("treats exhausted input as proceed", func() {
			Expect(dir.Show(ctx, &scene.AutoGate{})).To(Succeed())
			Expect(sink.clears).To(Equal(4))
			Expect(sink.messages).To(HaveLen(1))
		})

		It("does nothing once cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			Expect(dir.Show(cctx, nil)).To(Succeed())
			Expect(sink.clears).To(BeZero())
			Expect(sink.frames).To(BeEmpty())
		})

		It("stops between phases after an interrupt", func() {
			cctx, cancel := context.WithCancel(ctx)
			defer cancel()
			clock.onSleep = func(n int) {
				if n == 2 {
					cancel()
				}
			}
			Expect(dir.Show(cctx, nil)).To(Succeed())
			Expect(sink.clears).To(Equal(2))
		})

		It("returns sink errors", func() {
			sink.err = errBoom
			Expect(dir.Show(ctx, nil)).To(MatchError(errBoom))
		})
	})

	Describe("logging", func() {
		AfterEach(func() { scene.SetLogger(nil) })

		It("reports scene transitions through the package logger", func() {
			var buf bytes.Buffer
			scene.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
			Expect(dir.Intro(ctx)).To(Succeed())
			Expect(buf.String()).To(ContainSubstring("scene=intro"))
		})

		It("is silent by default", func() {
			scene.SetLogger(nil)
			Expect(scene.Logger().Enabled(ctx, slog.LevelError)).To(BeFalse())
		})
	})
})

var _ = Describe("LineGate", func() {
	It("returns trimmed lines then EOF", func() {
		g := scene.NewLineGate(strings.NewReader(" r \nhello"))
		ctx := context.Background()

		line, err := g.Wait(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("r"))

		line, err = g.Wait(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("hello"))

		_, err = g.Wait(ctx)
		Expect(err).To(MatchError(io.EOF))
	})

	It("gives up on cancel and keeps the pending read", func() {
		pr, pw := io.Pipe()
		defer pr.Close()
		g := scene.NewLineGate(pr)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := g.Wait(ctx)
		Expect(err).To(MatchError(context.Canceled))

		go func() {
			defer GinkgoRecover()
			_, werr := pw.Write([]byte("later\n"))
			Expect(werr).NotTo(HaveOccurred())
		}()
		line, err := g.Wait(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(line).To(Equal("later"))
	})
})
