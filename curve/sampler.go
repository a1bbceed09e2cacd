package curve

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"

	"github.com/arloliu/fitparam/engine"
	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/internal/logger"
	"github.com/arloliu/fitparam/internal/options"
)

// Sampler evaluates density curves on evenly spaced grids.
//
// A Sampler holds only its settings and may be shared, but each call mutates
// the sampled variable, so concurrent calls must not share a variable.
type Sampler struct {
	precision float64
	restore   bool
	logger    *log.Logger
}

// NewSampler creates a sampler.
//
// Parameters:
//   - opts: Optional settings (WithPrecision, WithRestoreValue, WithLogger)
//
// Returns:
//   - *Sampler: The configured sampler
//   - error: errs.ErrInvalidPrecision for a non-positive precision
func NewSampler(opts ...SamplerOption) (*Sampler, error) {
	s := &Sampler{
		precision: DefaultPrecision,
		logger:    logger.Default(),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Precision returns the relative plotting precision.
func (s *Sampler) Precision() float64 { return s.precision }

// RestoresValue reports whether sampled variables get their value back.
func (s *Sampler) RestoresValue() bool { return s.restore }

// Sample evaluates the display curve of d at count evenly spaced points of
// [v.Min(), v.Max()], both ends included. A single point samples v.Min().
//
// The curve is plotted once, then v is set to every grid point before the
// curve is evaluated there. Unless the sampler restores values, v is left at
// the last grid point.
//
// Returns errs.ErrInvalidSampleCount when count < 1,
// errs.ErrUnboundedRange when a bound of v is not finite, or the error of
// d.PlotCurve.
func (s *Sampler) Sample(d engine.Density, v *engine.RealVar, count int) (*Samples, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: %d points, need at least 1", errs.ErrInvalidSampleCount, count)
	}
	if lo, hi := v.Min(), v.Max(); math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, fmt.Errorf("%w: %q spans [%g, %g]", errs.ErrUnboundedRange, v.Name(), lo, hi)
	}

	curve, err := d.PlotCurve(v, s.precision)
	if err != nil {
		return nil, fmt.Errorf("plot curve over %q: %w", v.Name(), err)
	}

	if s.restore {
		prev := v.Value()
		defer v.SetValue(prev)
	}

	out := &Samples{
		X: make([]float64, count),
		Y: make([]float64, count),
	}
	if count == 1 {
		out.X[0] = v.Min()
	} else {
		floats.Span(out.X, v.Min(), v.Max())
	}
	for i, x := range out.X {
		v.SetValue(x)
		out.Y[i] = curve.Interpolate(x)
	}

	s.logger.Debug("sampled curve", "variable", v.Name(), "points", count, "precision", s.precision)

	return out, nil
}

// SampleNormalized samples like Sample, then scales the y values so that the
// trapezoidal integral of the curve equals norm.
//
// Returns errs.ErrInvalidSampleCount when count < 2 and errs.ErrZeroIntegral
// when the sampled integral is zero or not finite.
func (s *Sampler) SampleNormalized(d engine.Density, v *engine.RealVar, count int, norm float64) (*Samples, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: %d points, normalization needs at least 2", errs.ErrInvalidSampleCount, count)
	}

	out, err := s.Sample(d, v, count)
	if err != nil {
		return nil, err
	}

	integral := out.Integral()
	if integral == 0 || math.IsNaN(integral) || math.IsInf(integral, 0) {
		return nil, fmt.Errorf("%w: %g over %q", errs.ErrZeroIntegral, integral, v.Name())
	}
	floats.Scale(norm/integral, out.Y)

	return out, nil
}
