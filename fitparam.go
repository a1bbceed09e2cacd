// Package fitparam manages the named parameters of a statistical fit and
// samples the fitted density curves for inspection.
//
// # Core Features
//
//   - A flat namespace of scalar and categorical fit parameters
//   - In-place value updates that keep engine primitives live
//   - Template expansion over the Cartesian product of named axes
//   - Shell-style glob lookup and an immutable export view
//   - Hash-based parameter IDs (64-bit xxHash64)
//   - Evenly spaced, optionally normalized density curve sampling
//   - A compact binary curve format with optional compression (Zstd, S2, LZ4)
//     and CRC32 checksums
//
// # Basic Usage
//
// Building parameters:
//
//	params, _ := fitparam.NewCollection()
//	params.AddScalar("mu", 5, 0, 10)
//	params.AddObservable("mass", masses)
//	params.AddCategory("year", years)
//	params.ExpandTemplate("yield_{ch}_{year}", []param.Axis{
//	    {Name: "ch", Values: []any{"ee", "mm"}},
//	    {Name: "year", Values: []any{2017, 2018}},
//	}, 0, 1e6)
//
//	view := params.Export()
//
// Sampling a density over an observable:
//
//	mass, _ := view.Real("mass")
//	pdf := engine.NewPDF("signal", distuv.Normal{Mu: 5, Sigma: 1})
//	sampler, _ := fitparam.NewSampler()
//	s, _ := sampler.SampleNormalized(pdf, mass, fitparam.DefaultSampleCount, 1)
//
// # Package Structure
//
// This package provides top-level wrappers around the param, curve and config
// packages. Use those packages directly for fine-grained control.
package fitparam

import (
	"fmt"
	"os"

	"github.com/arloliu/fitparam/config"
	"github.com/arloliu/fitparam/curve"
	"github.com/arloliu/fitparam/engine"
	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/internal/hash"
	"github.com/arloliu/fitparam/param"
)

// DefaultSampleCount is the number of points per sampled curve.
const DefaultSampleCount = 1000

// NewCollection creates an empty parameter collection.
//
// Parameters:
//   - opts: Optional collection settings such as param.WithLogger
//
// Returns:
//   - *param.Collection: The empty collection
//   - error: An error if an option is invalid
func NewCollection(opts ...param.Option) (*param.Collection, error) {
	return param.New(opts...)
}

// NewSampler creates a curve sampler with the default precision of 1e-5.
//
// Parameters:
//   - opts: Optional sampler settings (curve.WithPrecision,
//     curve.WithRestoreValue, curve.WithLogger)
//
// Returns:
//   - *curve.Sampler: The configured sampler
//   - error: An error if an option is invalid
func NewSampler(opts ...curve.SamplerOption) (*curve.Sampler, error) {
	return curve.NewSampler(opts...)
}

// Toolkit bundles a collection and a sampler configured from one Config.
type Toolkit struct {
	Config  config.Config
	Params  *param.Collection
	Sampler *curve.Sampler
}

// NewFromEnv builds a Toolkit from the FITPARAM_* environment variables.
// Log output goes to stderr at the configured level.
func NewFromEnv() (*Toolkit, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	return NewFromConfig(cfg)
}

// NewFromConfig builds a Toolkit from cfg.
func NewFromConfig(cfg config.Config) (*Toolkit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := cfg.Logger(os.Stderr)
	params, err := param.New(cfg.CollectionOptions(l)...)
	if err != nil {
		return nil, err
	}
	sampler, err := curve.NewSampler(cfg.SamplerOptions(l)...)
	if err != nil {
		return nil, err
	}

	return &Toolkit{Config: cfg, Params: params, Sampler: sampler}, nil
}

// SampleCurve samples d over the scalar parameter name with the configured
// number of points. A non-nil norm rescales the curve to that integral.
func (t *Toolkit) SampleCurve(d engine.Density, name string, norm *float64) (*curve.Samples, error) {
	v, err := t.realVar(name)
	if err != nil {
		return nil, err
	}
	if norm == nil {
		return t.Sampler.Sample(d, v, t.Config.SampleCount)
	}

	return t.Sampler.SampleNormalized(d, v, t.Config.SampleCount, *norm)
}

// EncodeCurve serializes s with the configured compression.
func (t *Toolkit) EncodeCurve(s *curve.Samples) ([]byte, error) {
	return curve.Encode(s, t.Config.EncodeOptions()...)
}

func (t *Toolkit) realVar(name string) (*engine.RealVar, error) {
	p, ok := t.Params.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownParameter, name)
	}
	if p.Kind() != param.KindScalar {
		return nil, fmt.Errorf("%w: %q is %s, want Scalar", errs.ErrInvalidParameter, name, p.Kind())
	}

	return p.Real(), nil
}

// ParameterID computes the 64-bit ID of a parameter name.
//
// The ID is the xxHash64 of the name and matches the IDs resolved by
// param.View.ByID.
//
// Example:
//
//	view := params.Export()
//	name, v, err := view.ByID(fitparam.ParameterID("mu"))
func ParameterID(name string) uint64 {
	return hash.ID(name)
}
