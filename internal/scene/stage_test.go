package scene_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/discoball/internal/config"
	"github.com/san-kum/discoball/internal/scene"
	"github.com/san-kum/discoball/internal/viz"
)

var marker = viz.ANSIStyle{Start: "<<", Reset: ">>"}

func expectShape(frame string, w, h int) {
	lines := viz.Lines(frame)
	ExpectWithOffset(1, lines).To(HaveLen(h))
	for _, l := range lines {
		ExpectWithOffset(1, []rune(l)).To(HaveLen(w))
	}
}

var _ = Describe("Stage", func() {
	var (
		cfg   *config.Config
		stage *scene.Stage
	)

	BeforeEach(func() {
		cfg = config.DefaultConfig()
		stage = scene.NewStage(cfg)
	})

	Describe("PartyFrame", func() {
		It("advances the rotation and rhythm tick by one step", func() {
			stage.PartyFrame()
			stage.PartyFrame()

			r := stage.Rotation()
			Expect(r.A).To(BeNumerically("~", 0.08, 1e-12))
			Expect(r.B).To(BeNumerically("~", 0.16, 1e-12))
			Expect(r.C).To(BeNumerically("~", -0.10, 1e-12))
			Expect(stage.Tick()).To(Equal(2))
		})

		It("emits exactly height lines of width glyphs", func() {
			expectShape(stage.PartyFrame(), cfg.Width, cfg.Height)
		})

		It("is deterministic across stages", func() {
			other := scene.NewStage(cfg)
			for i := 0; i < 5; i++ {
				Expect(stage.PartyFrame()).To(Equal(other.PartyFrame()))
			}
		})

		It("composites floor, beams, sphere and dancers", func() {
			out := stage.PartyFrame()
			Expect(out).To(ContainSubstring("="))
			Expect(out).To(ContainSubstring("'"))
			Expect(out).To(ContainSubstring("8"))
			Expect(out).To(ContainSubstring("o"))
		})

		It("highlights sparkles only when a style is set", func() {
			Expect(stage.PartyFrame()).NotTo(ContainSubstring("<<"))
			stage.SetStyles(marker, nil)
			Expect(stage.PartyFrame()).To(ContainSubstring("<<8"))
		})

		It("cycles sprite groups out of step with each other", func() {
			prev := stage.Poses()
			desync := false
			for i := 0; i < 30 && !desync; i++ {
				stage.PartyFrame()
				cur := stage.Poses()
				if (cur["left"] != prev["left"]) != (cur["right"] != prev["right"]) {
					desync = true
				}
				prev = cur
			}
			Expect(desync).To(BeTrue())
		})
	})

	Describe("Group", func() {
		It("selects poses by tick / divisor % cycle length", func() {
			g := scene.Group{Poses: make([]scene.Pose, 4), Divisor: 3}
			Expect(g.PoseIndex(0)).To(Equal(0))
			Expect(g.PoseIndex(2)).To(Equal(0))
			Expect(g.PoseIndex(3)).To(Equal(1))
			Expect(g.PoseIndex(11)).To(Equal(3))
			Expect(g.PoseIndex(12)).To(Equal(0))
		})

		It("places mirrored dancers on the right", func() {
			var right scene.Group
			for _, g := range stage.Groups() {
				if g.Name == "right" {
					right = g
				}
			}
			Expect(right.Mirror).To(BeTrue())
			Expect(right.Anchors).NotTo(BeEmpty())
			for _, a := range right.Anchors {
				Expect(a.X).To(BeNumerically(">", cfg.Width/2))
			}
		})
	})

	Describe("SpinnerFrame", func() {
		const n = 32

		rows := func(frame string) (string, string) {
			bar, status := stage.SpinnerRows()
			lines := viz.Lines(frame)
			return lines[bar], strings.TrimSpace(lines[status])
		}

		It("shows an empty bar and 0% at step 0", func() {
			bar, status := rows(stage.SpinnerFrame(0, n, "Loading"))
			Expect(strings.Count(bar, "#")).To(Equal(0))
			Expect(strings.Count(bar, "-")).To(Equal(n))
			Expect(status).To(Equal("| Loading 0%"))
		})

		It("shows a full bar and 100% at the last step", func() {
			bar, status := rows(stage.SpinnerFrame(n, n, "Loading"))
			Expect(strings.Count(bar, "#")).To(Equal(n))
			Expect(status).To(Equal("| Loading 100%"))
		})

		It("rounds the percentage and cycles the spinner glyph", func() {
			_, status := rows(stage.SpinnerFrame(5, n, "Syncing"))
			Expect(status).To(Equal("/ Syncing 16%"))
			Expect(scene.SpinnerStatus(7, n, "x")).To(Equal(`\ x 22%`))
		})

		It("keeps the sphere turning", func() {
			stage.SpinnerFrame(0, n, "")
			stage.SpinnerFrame(1, n, "")
			Expect(stage.Rotation().A).To(BeNumerically("~", 0.08, 1e-12))
		})
	})

	Describe("Credits", func() {
		It("slides a name over steps+1 non-decreasing columns", func() {
			cols := scene.CreditColumns("Ada Lovelace", 80, 20)
			Expect(cols).To(HaveLen(21))
			Expect(cols[0]).To(Equal(-12))
			Expect(cols[20]).To(Equal(34))
			for i := 1; i < len(cols); i++ {
				Expect(cols[i]).To(BeNumerically(">=", cols[i-1]))
			}
		})

		It("keeps finished entries centred above the sliding one", func() {
			out := viz.Lines(stage.CreditsFrame([]string{"Ada"}, "Grace", 3))
			Expect(out[stage.CreditRow(0)]).To(Equal(strings.Repeat(" ", 38) + "Ada" + strings.Repeat(" ", 39)))
			Expect(out[stage.CreditRow(1)]).To(HavePrefix("   Grace "))
		})
	})

	Describe("GoodbyeFrame", func() {
		It("eases the rotation to a stop", func() {
			Expect(scene.Slowdown(0)).To(Equal(1.0))
			Expect(scene.Slowdown(10)).To(Equal(0.5))
			Expect(scene.Slowdown(scene.SlowdownFrames)).To(Equal(0.0))

			for i := 0; i < 80; i++ {
				stage.GoodbyeFrame(i)
			}
			// Sum of 1 - i/20 for i in [0, 20) is 10.5.
			Expect(stage.Rotation().A).To(BeNumerically("~", 10.5*cfg.Delta.A, 1e-9))
		})

		It("stamps and highlights the banner only from its threshold frame", func() {
			stage.SetStyles(nil, marker)
			for i := 0; i < scene.BannerFrame; i++ {
				Expect(stage.GoodbyeFrame(i)).NotTo(ContainSubstring("#"))
			}
			out := stage.GoodbyeFrame(scene.BannerFrame)
			Expect(out).To(ContainSubstring("<<#####>>"))
		})

		It("walks the dancers off the stage", func() {
			Expect(stage.GoodbyeFrame(0)).To(ContainSubstring("o"))
			var last string
			for i := 1; i < 80; i++ {
				last = stage.GoodbyeFrame(i)
			}
			Expect(last).NotTo(ContainSubstring("o"))
		})
	})
})
