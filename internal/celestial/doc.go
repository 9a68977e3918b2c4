// Package celestial derives the physical, orbital and atmospheric
// characteristics of a star and a planet from a handful of primary inputs.
//
//   - [Star]: mass and age in, luminosity, lifespan, radius, density,
//     temperature, habitable zone and spectral class out
//   - [Planet]: fourteen primary inputs plus a shared [Star] handle in,
//     about twenty derived quantities out
//
// # Recompute Contract
//
// Every setter stores its input and then calls Recalculate, which rebuilds
// the whole derived-field set in a fixed order. A Planet reads its star's
// derived outputs during its own Recalculate, so mutating a star does not
// refresh the planets that point at it; call Recalculate on those planets (or
// use the registry, which does it for you).
//
//	sol := celestial.NewSol()
//	earth := celestial.NewEarthlike(sol)
//	earth.SetRotationPeriod(10)
//	fmt.Println(earth.CirculationCells())
//
// # Inputs
//
// Inputs are never validated. Negative masses, fractions summing above one or
// tilts outside [0, 180] flow through the formulas and may yield negative,
// infinite or NaN outputs. The only sentinel values are the "NA" spectral
// class and the Undefined direction at exactly 90 degrees.
//
// # Thread Safety
//
// Star and Planet are NOT safe for concurrent use. A star shared by several
// planets must be mutated by a single writer.
package celestial
