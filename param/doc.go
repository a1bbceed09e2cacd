// Package param manages named fit parameters.
//
// A Collection owns a flat namespace of parameters. Each Parameter wraps one
// engine primitive: a continuous engine.RealVar (scalar) or a discrete
// engine.Category (categorical). The collection builds them from compact
// argument lists, expands name templates over several axes, and exports an
// immutable name table for a fit engine.
//
// Basic usage:
//
//	params, _ := param.New()
//	params.AddScalar("mu", 1, 0, 10)         // value 1 in [0, 10]
//	params.AddScalar("lumi", 137)            // constant
//	params.AddObservable("mass", masses)     // bounded by the data
//	params.AddCategory("year", []float64{2016, 2017, 2018})
//	params.ExpandTemplate("yield_{ch}", []param.Axis{
//	    {Name: "ch", Values: []any{"ee", "mm"}},
//	}, 0, 1000)
//
//	view := params.Export()
//	mu, _ := view.Real("mu")
//
// Numeric updates mutate the stored primitive in place, so primitives already
// handed out stay live. Replacing a whole entity logs a warning through the
// collection logger.
//
// Collections are not safe for concurrent use.
package param
