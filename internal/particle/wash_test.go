package particle

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WashField", func() {
	var f *WashField

	BeforeEach(func() {
		f = NewWashField(DefaultWashOptions(), rand.New(rand.NewSource(7)))
	})

	Describe("particle count", func() {
		It("clamps small surfaces to the minimum", func() {
			Expect(f.Count(300, 200)).To(Equal(90))
		})

		It("clamps large surfaces to the maximum", func() {
			Expect(f.Count(600, 400)).To(Equal(90))
			Expect(f.Count(1900, 1100)).To(Equal(220))
			Expect(f.Count(4000, 3000)).To(Equal(220))
		})

		It("scales with area in between", func() {
			Expect(f.Count(1200, 1000)).To(Equal(126))
		})

		It("regenerates the whole batch on resize", func() {
			f.Resize(300, 200)
			Expect(f.Particles).To(HaveLen(90))

			f.Resize(1900, 1100)
			Expect(f.Particles).To(HaveLen(220))
			for _, p := range f.Particles {
				Expect(p.X).To(BeNumerically(">=", 0))
				Expect(p.X).To(BeNumerically("<=", 1900))
				Expect(p.Y).To(BeNumerically("<=", 1100))
				Expect(p.Alpha).To(BeNumerically("~", 0.355, 0.18))
				Expect(p.Size).To(BeNumerically("~", 12, 2))
				Expect([]string{"#EA3365", "#90919b"}).To(ContainElement(p.Color))
				Expect("ATJ160/90").To(ContainSubstring(string(p.Rune)))
			}
		})
	})

	Describe("pointer force", func() {
		It("is maximal at the pointer", func() {
			Expect(Force(0, 120)).To(Equal(1.0))
		})

		It("vanishes at and beyond the radius", func() {
			Expect(Force(120*120, 120)).To(Equal(0.0))
			Expect(Force(500*500, 120)).To(Equal(0.0))
		})

		It("falls off quadratically", func() {
			Expect(Force(60*60, 120)).To(BeNumerically("~", 0.75, 1e-12))
		})

		It("pushes nearby particles away from the pointer", func() {
			f.W, f.H = 400, 400
			f.Particles = []Glyph{{X: 210, Y: 200}}
			f.SetPointer(200, 200)
			f.Step()
			Expect(f.Particles[0].X).To(BeNumerically(">", 210))
			Expect(f.Particles[0].Y).To(BeNumerically("~", 200, 1e-12))
		})

		It("is disabled when the pointer leaves", func() {
			f.W, f.H = 400, 400
			f.Particles = []Glyph{{X: 210, Y: 200}}
			f.SetPointer(200, 200)
			f.ClearPointer()
			x, y := f.Pointer()
			Expect(x).To(Equal(PointerAway))
			Expect(y).To(Equal(PointerAway))
			f.Step()
			Expect(f.Particles[0].X).To(Equal(210.0))
		})
	})

	Describe("boundary", func() {
		BeforeEach(func() {
			f.W, f.H = 100, 100
		})

		It("negates velocity past the left pad without clamping", func() {
			f.Particles = []Glyph{{X: -8, Y: 50, VX: -0.5}}
			f.Step()
			Expect(f.Particles[0].VX).To(Equal(0.5))
			Expect(f.Particles[0].X).To(Equal(-8.5))
		})

		It("negates velocity past the bottom pad", func() {
			f.Particles = []Glyph{{X: 50, Y: 108, VY: 0.25}}
			f.Step()
			Expect(f.Particles[0].VY).To(Equal(-0.25))
		})

		It("leaves particles inside the bounds alone", func() {
			f.Particles = []Glyph{{X: 50, Y: 50, VX: 0.1, VY: -0.1}}
			f.Step()
			Expect(f.Particles[0].VX).To(Equal(0.1))
			Expect(f.Particles[0].VY).To(Equal(-0.1))
		})
	})
})
