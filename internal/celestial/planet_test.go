package celestial

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Planet", func() {
	var (
		sol   *Star
		earth *Planet
	)

	BeforeEach(func() {
		sol = NewSol()
		earth = NewEarthlike(sol)
	})

	Context("with Earth defaults around Sol", func() {
		It("derives bulk properties", func() {
			Expect(earth.Density()).To(BeNumerically("~", 5.5123, 1e-3))
			Expect(earth.Radius()).To(BeNumerically("~", 0.99986, 1e-9))
			Expect(earth.Gravity()).To(BeNumerically("~", 1/(0.99986*0.99986), 1e-9))
			Expect(earth.EscapeVelocity()).To(BeNumerically("~", math.Sqrt(1/0.99986), 1e-9))
		})

		It("derives climate bands from the tilt", func() {
			Expect(earth.RotationDirection()).To(Equal(Prograde))
			Expect(earth.Tropics()).To(Equal(Range{0, 23.5}))
			Expect(earth.PolarCircles()).To(Equal(Range{66.5, 90}))
		})

		It("estimates a temperate surface", func() {
			Expect(earth.SurfaceTemperature()).To(BeNumerically("~", 287.6, 0.5))
			Expect(earth.SurfaceTemperatureCelsius()).To(BeNumerically("~", 14.6, 0.5))
		})

		It("derives the orbit", func() {
			Expect(earth.Periapsis()).To(BeNumerically("~", 0.9833, 1e-12))
			Expect(earth.Apoapsis()).To(BeNumerically("~", 1.0167, 1e-12))
			Expect(earth.OrbitalPeriod()).To(BeNumerically("~", 365.256, 1e-9))
			Expect(earth.OrbitalPeriodYears()).To(BeNumerically("~", 1, 1e-12))
			Expect(earth.OrbitalDirection()).To(Equal(Prograde))
		})

		It("fills the atmosphere with nitrogen", func() {
			Expect(earth.Nitrogen()).To(BeNumerically("~", 0.7808, 1e-9))
			Expect(earth.AtmosphericDensity()).To(BeNumerically("~", 0.001227, 1e-5))
			Expect(earth.AtmosphericDensitySI()).To(BeNumerically("~", 1.227, 1e-2))
			Expect(earth.PartialPressure(Oxygen)).To(BeNumerically("~", 0.2095, 1e-12))
			Expect(earth.PartialPressureSI(Nitrogen)).To(BeNumerically("~", 0.7808*101.3, 1e-6))
		})

		It("has three circulation cells", func() {
			Expect(earth.CirculationCells()).To(Equal(3))
			Expect(earth.CellBands()).To(Equal([]Range{{0, 30}, {30, 60}, {60, 90}}))
		})

		It("converts to SI units", func() {
			Expect(earth.MassSI()).To(BeNumerically("~", 5.972e24, 1e18))
			Expect(earth.RadiusSI()).To(BeNumerically("~", 0.99986*6370.11, 1e-6))
			Expect(earth.GravitySI()).To(BeNumerically("~", 9.81, 0.01))
			Expect(earth.EscapeVelocitySI()).To(BeNumerically("~", 11.2, 0.01))
			Expect(earth.SemiMajorAxisSI()).To(BeNumerically("~", 149600000, 1e-6))
			Expect(earth.PressureSI()).To(BeNumerically("~", 101.3, 1e-9))
		})

		It("is idempotent under Recalculate", func() {
			before := *earth
			earth.Recalculate()
			earth.Recalculate()
			Expect(*earth).To(Equal(before))
		})
	})

	Context("density", func() {
		It("falls back to the core floor for light planets", func() {
			p := NewEarthlike(sol)
			p.SetPhysical(PhysicalParams{Mass: 0.107, CoreMassFraction: 0.26, AxialTilt: 25, Albedo: 0.25})
			Expect(p.Density()).To(BeNumerically("~", 3.5*4.37*0.26, 1e-9))
		})

		It("keeps the scaling law when it beats the floor threshold", func() {
			p := NewEarthlike(sol)
			p.SetMass(0.6)
			p.SetCoreMassFraction(0)
			Expect(p.Density()).To(BeNumerically("~", 5.51*math.Pow(0.6, 0.189)/math.Pow(1.07, 3), 1e-9))
		})
	})

	Context("rotation direction boundaries", func() {
		DescribeTable("axial tilt",
			func(tilt float64, want Direction) {
				earth.SetAxialTilt(tilt)
				Expect(earth.RotationDirection()).To(Equal(want))
			},
			Entry("exactly 90", 90.0, DirectionUndefined),
			Entry("just below", 89.999, Prograde),
			Entry("just above", 90.001, Retrograde),
			Entry("negative tilt", -5.0, Retrograde),
		)

		It("mirrors tropics and polar circles past 90 degrees", func() {
			earth.SetAxialTilt(120)
			Expect(earth.Tropics()).To(Equal(Range{0, 60}))
			Expect(earth.PolarCircles()).To(Equal(Range{30, 90}))
		})

		It("reports the token at the presentation boundary", func() {
			earth.SetAxialTilt(90)
			Expect(earth.RotationDirection().String()).To(Equal("Undefined"))
		})
	})

	Context("orbital direction boundaries", func() {
		DescribeTable("inclination",
			func(inc float64, want Direction) {
				earth.SetInclination(inc)
				Expect(earth.OrbitalDirection()).To(Equal(want))
			},
			Entry("exactly 90", 90.0, DirectionUndefined),
			Entry("just below", 89.999, Prograde),
			Entry("just above", 90.001, Retrograde),
		)
	})

	Context("circulation cells", func() {
		DescribeTable("rotation period",
			func(hours float64, cells int, bands []Range) {
				earth.SetRotationPeriod(hours)
				Expect(earth.CirculationCells()).To(Equal(cells))
				Expect(earth.CellBands()).To(Equal(bands))
			},
			Entry("slow rotator", 48.0, 1, []Range{{0, 90}}),
			Entry("just under two days", 47.999, 3, []Range{{0, 30}, {30, 60}, {60, 90}}),
			Entry("six hours", 6.0, 3, []Range{{0, 30}, {30, 60}, {60, 90}}),
			Entry("fast rotator", 5.999, 7, []Range{{0, 24}, {24, 27}, {27, 31}, {31, 41}, {41, 58}, {58, 71}, {71, 90}}),
			Entry("three hours", 3.0, 7, []Range{{0, 24}, {24, 27}, {27, 31}, {31, 41}, {41, 58}, {58, 71}, {71, 90}}),
			Entry("very fast rotator", 2.999, 5, []Range{{0, 23}, {23, 30}, {30, 47}, {47, 56}, {56, 90}}),
			Entry("no rotation", 0.0, 0, []Range{}),
			Entry("negative period", -10.0, 0, []Range{}),
		)

		It("does not leak the shared band table", func() {
			bands := earth.CellBands()
			bands[0].Upper = 45
			Expect(earth.CellBands()[0].Upper).To(Equal(30.0))
			Expect(NewEarthlike(sol).CellBands()[0].Upper).To(Equal(30.0))
		})
	})

	Context("shared star", func() {
		It("reads the star's outputs only on recompute", func() {
			before := earth.SurfaceTemperature()
			sol.SetMass(0.5)
			Expect(earth.SurfaceTemperature()).To(Equal(before))

			earth.Recalculate()
			Expect(earth.SurfaceTemperature()).To(BeNumerically("~", before*0.5, 1e-6))
		})

		It("recomputes on ChangeStar", func() {
			dim := NewStar(0.5, 5)
			earth.ChangeStar(dim)
			Expect(earth.Star()).To(BeIdenticalTo(dim))
			Expect(earth.OrbitalPeriod()).To(BeNumerically("~", math.Sqrt(2)*365.256, 1e-9))
		})

		It("lets several planets share one star", func() {
			mars := NewPlanetWithRotation(sol, 24.6)
			Expect(mars.Star()).To(BeIdenticalTo(earth.Star()))
			Expect(mars.RotationPeriod()).To(Equal(24.6))
			Expect(mars.Mass()).To(Equal(1.0))
		})

		It("panics without a star", func() {
			Expect(func() { NewPlanet(nil, EarthParams()) }).To(Panic())
			Expect(func() { earth.ChangeStar(nil) }).To(Panic())
		})
	})

	Context("grouped setters", func() {
		It("apply a whole orbital bundle at once", func() {
			earth.SetOrbital(OrbitalParams{RotationPeriod: 100, SemiMajorAxis: 2, Eccentricity: 0.5, Inclination: 170})
			Expect(earth.Periapsis()).To(BeNumerically("~", 1, 1e-12))
			Expect(earth.Apoapsis()).To(BeNumerically("~", 3, 1e-12))
			Expect(earth.CirculationCells()).To(Equal(1))
			Expect(earth.OrbitalDirection()).To(Equal(Retrograde))
		})

		It("leave nitrogen unclamped", func() {
			earth.SetAtmosphere(AtmosphereParams{Pressure: 1, Oxygen: 0.6, CarbonDioxide: 0.3, Argon: 0.2})
			Expect(earth.Nitrogen()).To(BeNumerically("~", -0.1, 1e-12))
		})
	})

	Context("with degenerate inputs", func() {
		It("lets a negative mass through to the bulk properties", func() {
			earth.SetMass(-1)
			Expect(earth.Density()).To(BeNumerically("~", 3.5*4.37*0.334, 1e-12))
			Expect(math.IsNaN(earth.Radius())).To(BeTrue())
			Expect(math.IsNaN(earth.Gravity())).To(BeTrue())
			Expect(math.IsNaN(earth.EscapeVelocity())).To(BeTrue())
		})

		It("gives an infinite local year without rotation", func() {
			still := NewPlanetWithRotation(sol, 0)
			Expect(math.IsInf(still.OrbitalPeriod(), 1)).To(BeTrue())
			Expect(still.OrbitalPeriodDays()).To(BeNumerically("~", 365.256, 1e-9))
			Expect(still.CirculationCells()).To(Equal(0))
			Expect(still.CellBands()).To(BeEmpty())
		})
	})

	Context("sight distance", func() {
		It("reaches the horizon for a standing observer", func() {
			Expect(earth.SightDistance(1.7)).To(BeNumerically("~", 4.654, 1e-3))
		})

		It("is zero at the surface", func() {
			Expect(earth.SightDistance(0)).To(Equal(0.0))
		})
	})
})
