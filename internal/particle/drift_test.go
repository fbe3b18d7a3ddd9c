package particle

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/asciistage/internal/fonts"
)

// fixedMeasurer ignores size, so shrinking never helps.
type fixedMeasurer struct {
	calls int
}

func (m *fixedMeasurer) Advance(rune, float64) float64 {
	m.calls++
	return 10
}

type scaledMeasurer struct{ factor float64 }

func (m scaledMeasurer) Advance(r rune, size float64) float64 {
	return fonts.CellMeasurer{}.Advance(r, size) * m.factor
}

var _ = Describe("DriftField", func() {
	var (
		f    *DriftField
		opts DriftOptions
	)

	BeforeEach(func() {
		opts = DefaultDriftOptions()
		f = NewDriftField(opts, rand.New(rand.NewSource(42)))
	})

	Describe("Rebuild", func() {
		It("spawns one line per phrase inside the padded bounds", func() {
			f.Rebuild(500, 300, fonts.CellMeasurer{})
			Expect(f.Lines).To(HaveLen(len(opts.Phrases)))
			for i := range f.Lines {
				l := &f.Lines[i]
				left, right, top, bottom := f.bounds(l)
				Expect(l.X).To(BeNumerically(">=", left))
				Expect(l.X).To(BeNumerically("<=", right))
				Expect(l.Y).To(BeNumerically(">=", top))
				Expect(l.Y).To(BeNumerically("<=", bottom))
				Expect(math.Hypot(l.VX, l.VY)).To(BeNumerically(">=", opts.MinSpeed-1e-9))
			}
		})

		It("shrinks the first phrase to the maximum width", func() {
			f.Rebuild(500, 300, fonts.CellMeasurer{})
			first := f.Lines[0]
			Expect(first.Size).To(BeNumerically("<", opts.Phrases[0].Size))
			Expect(first.Width).To(BeNumerically("<=", 0.86*500+1e-6))
		})

		It("keeps other phrases at their configured size", func() {
			f.Rebuild(500, 300, fonts.CellMeasurer{})
			Expect(f.Lines[1].Size).To(Equal(opts.Phrases[1].Size))
		})

		It("replaces the lines on resize", func() {
			f.Rebuild(500, 300, fonts.CellMeasurer{})
			f.Rebuild(1200, 800, fonts.CellMeasurer{})
			Expect(f.W).To(Equal(1200.0))
			Expect(f.Lines).To(HaveLen(len(opts.Phrases)))
			Expect(f.Lines[0].Size).To(Equal(opts.Phrases[0].Size))
		})
	})

	Describe("Relayout", func() {
		It("re-measures glyphs but keeps velocities", func() {
			f.Rebuild(1400, 600, fonts.CellMeasurer{})
			before := f.Lines[2]
			f.Relayout(scaledMeasurer{factor: 1.1})
			after := f.Lines[2]
			Expect(after.Width).To(BeNumerically("~", before.Width*1.1, 1e-9))
			Expect(after.Glyphs[1].Offset).To(BeNumerically(">", before.Glyphs[1].Offset))
			Expect(math.Abs(after.VX)).To(Equal(math.Abs(before.VX)))
		})
	})

	Describe("FitSize", func() {
		It("gives up after the iteration budget and accepts overflow", func() {
			m := &fixedMeasurer{}
			size := FitSize("0123456789", 20, 50, 8, 3, m)
			Expect(size).To(Equal(8.0))
			Expect(m.calls).To(BeNumerically("<=", 30))
		})

		It("leaves fitting text alone", func() {
			m := &fixedMeasurer{}
			Expect(FitSize("abc", 20, 500, 8, 3, m)).To(Equal(20.0))
			Expect(m.calls).To(Equal(3))
		})
	})

	Describe("boundary", func() {
		BeforeEach(func() {
			f.Rebuild(600, 400, fonts.CellMeasurer{})
		})

		It("turns x velocity non-negative at the left wall", func() {
			l := &f.Lines[1]
			left, _, _, _ := f.bounds(l)
			l.X, l.VX = left, -7
			f.confine(l)
			Expect(l.VX).To(Equal(7.0))
		})

		It("turns x velocity non-positive at the right wall", func() {
			l := &f.Lines[1]
			_, right, _, _ := f.bounds(l)
			l.X, l.VX = right, 7
			f.confine(l)
			Expect(l.VX).To(Equal(-7.0))
		})

		It("clamps position instead of bouncing past the wall", func() {
			l := &f.Lines[1]
			_, _, top, _ := f.bounds(l)
			l.Y, l.VY = top-25, -3
			f.confine(l)
			Expect(l.Y).To(Equal(top))
			Expect(l.VY).To(Equal(3.0))
		})

		It("stays inside the bounds over a long run", func() {
			for i := 0; i < 3000; i++ {
				f.Step(1.0 / 60)
			}
			for i := range f.Lines {
				l := &f.Lines[i]
				left, right, top, bottom := f.bounds(l)
				Expect(l.X).To(BeNumerically(">=", left))
				Expect(l.X).To(BeNumerically("<=", right))
				Expect(l.Y).To(BeNumerically(">=", top))
				Expect(l.Y).To(BeNumerically("<=", bottom))
			}
		})
	})

	Describe("velocity", func() {
		BeforeEach(func() {
			opts.Sigma = 0
			f = NewDriftField(opts, rand.New(rand.NewSource(3)))
			f.Rebuild(2000, 2000, fonts.CellMeasurer{})
			f.Lines = f.Lines[2:3]
			f.Lines[0].X, f.Lines[0].Y = 1000, 1000
		})

		It("clamps and damps each component", func() {
			f.Lines[0].VX, f.Lines[0].VY = 1000, -1000
			f.Step(1.0 / 60)
			Expect(f.Lines[0].VX).To(BeNumerically("~", opts.MaxSpeed*opts.Damping, 1e-9))
			Expect(f.Lines[0].VY).To(BeNumerically("~", -opts.MaxSpeed*opts.Damping, 1e-9))
		})

		It("injects an impulse when the line stalls", func() {
			f.Lines[0].VX, f.Lines[0].VY = 0, 0
			f.Step(1.0 / 60)
			Expect(math.Hypot(f.Lines[0].VX, f.Lines[0].VY)).To(BeNumerically("~", 2*opts.MinSpeed, 1e-9))
		})

		It("ignores non-positive time steps", func() {
			f.Lines[0].VX = 5
			f.Step(0)
			f.Step(-1)
			Expect(f.Lines[0].VX).To(Equal(5.0))
			Expect(f.Lines[0].X).To(Equal(1000.0))
		})
	})

	Describe("Brownian increments", func() {
		variance := func(total, dt float64, seed int64) float64 {
			rng := rand.New(rand.NewSource(seed))
			const trials = 3000
			steps := int(math.Round(total / dt))
			sum, sumSq := 0.0, 0.0
			for i := 0; i < trials; i++ {
				v := 0.0
				for s := 0; s < steps; s++ {
					v += Kick(1, dt, rng.NormFloat64())
				}
				sum += v
				sumSq += v * v
			}
			mean := sum / trials
			return sumSq/trials - mean*mean
		}

		It("accumulates variance with elapsed time, not frame count", func() {
			coarse := variance(1, 1.0/30, 1)
			fine := variance(1, 1.0/120, 2)
			Expect(coarse).To(BeNumerically("~", 1, 0.15))
			Expect(fine).To(BeNumerically("~", 1, 0.15))
		})

		It("grows linearly in elapsed time", func() {
			Expect(variance(2, 1.0/30, 3)).To(BeNumerically("~", 2, 0.3))
			Expect(variance(4, 1.0/30, 4)).To(BeNumerically("~", 4, 0.6))
		})
	})
})
