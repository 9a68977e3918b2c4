package celestial

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Star", func() {
	Context("with solar mass and age", func() {
		var sol *Star

		BeforeEach(func() {
			sol = NewSol()
		})

		It("uses the mass^4 branch at exactly one solar mass", func() {
			Expect(sol.Luminosity()).To(Equal(1.0))
			Expect(sol.MaxAge()).To(Equal(10.0))
			Expect(sol.Radius()).To(Equal(1.0))
			Expect(sol.Density()).To(Equal(1.0))
			Expect(sol.Temperature()).To(Equal(5776.0))
		})

		It("bounds the habitable zone by flux limits", func() {
			hz := sol.HabitableZone()
			Expect(hz.Lower).To(BeNumerically("~", math.Sqrt(1/1.1), 1e-12))
			Expect(hz.Upper).To(BeNumerically("~", math.Sqrt(1/0.53), 1e-12))
		})

		It("supports earth-like life", func() {
			Expect(sol.SupportsEarthLikeLife()).To(BeTrue())
		})

		It("classifies as a G dwarf", func() {
			Expect(sol.SpectralClass().Letter).To(Equal(ClassG))
			Expect(sol.SpectralClass().String()).To(Equal("G12.8V"))
		})

		It("converts to SI units", func() {
			Expect(sol.MassSI()).To(BeNumerically("~", 1.989e30, 1e24))
			Expect(sol.RadiusSI()).To(BeNumerically("~", 696340, 1e-6))
			Expect(sol.LuminositySI()).To(BeNumerically("~", 3.828e26, 1e20))
			Expect(sol.DensitySI()).To(BeNumerically("~", 1.408, 1e-12))
			Expect(sol.HabitableZoneSI().Lower).To(BeNumerically("~", math.Sqrt(1/1.1)*149600000, 1e-3))
		})

		It("is idempotent under Recalculate", func() {
			before := *sol
			sol.Recalculate()
			sol.Recalculate()
			Expect(*sol).To(Equal(before))
		})
	})

	Context("luminosity branches", func() {
		It("uses 0.23 m^2.3 below 0.43", func() {
			s := NewStar(0.42, 1)
			Expect(s.Luminosity()).To(BeNumerically("~", 0.23*math.Pow(0.42, 2.3), 1e-12))
		})

		It("uses m^4 at the 0.43 boundary", func() {
			s := NewStar(0.43, 1)
			Expect(s.Luminosity()).To(BeNumerically("~", math.Pow(0.43, 4), 1e-12))
		})

		It("uses 1.4 m^3.5 from two solar masses", func() {
			s := NewStar(2, 1)
			Expect(s.Luminosity()).To(BeNumerically("~", 1.4*math.Pow(2, 3.5), 1e-9))
		})
	})

	Context("life suitability", func() {
		DescribeTable("mass and age window",
			func(mass, age float64, want bool) {
				Expect(NewStar(mass, age).SupportsEarthLikeLife()).To(Equal(want))
			},
			Entry("lower mass edge", 0.5, 4.0, true),
			Entry("upper mass edge", 1.4, 3.5, true),
			Entry("too light", 0.49, 4.0, false),
			Entry("too heavy", 1.41, 4.0, false),
			Entry("too young", 1.0, 3.49, false),
		)
	})

	Context("spectral classification", func() {
		DescribeTable("letter by mass",
			func(mass float64, want SpectralLetter) {
				Expect(NewStar(mass, 1).SpectralClass().Letter).To(Equal(want))
			},
			Entry("red dwarf", 0.3, ClassM),
			Entry("orange dwarf", 0.8, ClassK),
			Entry("sun", 1.0, ClassG),
			Entry("yellow-white", 1.2, ClassF),
			Entry("white", 1.5, ClassA),
			Entry("blue giant", 50.0, ClassO),
		)

		It("returns NA outside the mass window", func() {
			Expect(NewStar(0.07, 1).SpectralClass().String()).To(Equal("NA"))
			Expect(NewStar(101, 1).SpectralClass().String()).To(Equal("NA"))
		})

		It("returns NA when the temperature leaves every band", func() {
			s := NewStar(100, 1)
			Expect(s.Temperature()).To(BeNumerically(">", 95000))
			Expect(s.SpectralClass().Valid()).To(BeFalse())
		})

		It("treats band edges as exclusive", func() {
			Expect(classify(1, 3700).Valid()).To(BeFalse())
			Expect(classify(1, 2000).Valid()).To(BeFalse())
			Expect(classify(1, 3699).Letter).To(Equal(ClassM))
		})

		It("computes the decile from the band cutoff and spread", func() {
			c := classify(1, 5600)
			Expect(c.Letter).To(Equal(ClassG))
			Expect(c.Decile).To(BeNumerically("~", 15.0, 1e-9))
			Expect(c.String()).To(Equal("G15.0V"))
		})
	})

	Context("with degenerate inputs", func() {
		It("surfaces NaN instead of clamping a massless star", func() {
			s := NewStar(0, 1)
			Expect(s.Luminosity()).To(Equal(0.0))
			Expect(math.IsNaN(s.MaxAge())).To(BeTrue())
			Expect(math.IsNaN(s.Density())).To(BeTrue())
			Expect(math.IsNaN(s.Temperature())).To(BeTrue())
			Expect(s.SpectralClass().String()).To(Equal("NA"))
		})
	})

	Context("setters", func() {
		It("recompute every derived field", func() {
			s := NewSol()
			s.SetMass(0.5)
			Expect(s.Luminosity()).To(BeNumerically("~", 0.0625, 1e-12))
			Expect(s.SpectralClass().Letter).To(Equal(ClassK))

			s.SetAge(2)
			Expect(s.Age()).To(Equal(2.0))
			Expect(s.SupportsEarthLikeLife()).To(BeFalse())
		})
	})
})
