// Package engine provides the fit-engine primitives that parameter collections
// are built from.
//
// The package defines three collaborators:
//
//   - RealVar: a continuous fit variable with a value, bounds and a constant flag
//   - Category: a discrete factor made of labeled integer codes
//   - Density / Curve: a probability density that can plot itself over one of its
//     variables and an interpolatable curve produced by that plot
//
// PDF is a reference Density backed by any Prober, which includes every
// distribution in gonum.org/v1/gonum/stat/distuv. Other fit engines plug in by
// implementing Density and Curve.
//
// None of the types in this package are safe for concurrent use.
package engine
