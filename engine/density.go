package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/internal/pool"
)

const (
	// initialPlotPoints is the number of uniform points a curve plot starts from.
	initialPlotPoints = 100
	// maxPlotDepth bounds the number of bisections applied to a single segment.
	maxPlotDepth = 12
)

// Curve is a plotted density shape that can be evaluated anywhere in its range.
type Curve interface {
	Interpolate(x float64) float64
}

// Density is a probability-density function that can plot itself over one of
// its variables.
type Density interface {
	// PlotCurve computes the display curve over [v.Min(), v.Max()] so that the
	// piecewise-linear approximation deviates from the density by at most
	// precision relative to the curve maximum.
	PlotCurve(v *RealVar, precision float64) (Curve, error)
}

// Prober evaluates a probability density. Every gonum distuv distribution
// satisfies it.
type Prober interface {
	Prob(x float64) float64
}

// ProbFunc adapts an ordinary function to the Prober interface.
type ProbFunc func(x float64) float64

// Prob calls f(x).
func (f ProbFunc) Prob(x float64) float64 { return f(x) }

// PDF is the reference Density implementation backed by a Prober.
//
// Example:
//
//	mass, _ := engine.NewRealVar("mass", 0, 10)
//	pdf := engine.NewPDF("signal", distuv.Normal{Mu: 5, Sigma: 1})
//	curve, _ := pdf.PlotCurve(mass, 1e-5)
//	y := curve.Interpolate(5)
type PDF struct {
	name   string
	prober Prober
}

var _ Density = (*PDF)(nil)

// NewPDF creates a density named name that evaluates p.
func NewPDF(name string, p Prober) *PDF {
	return &PDF{name: name, prober: p}
}

// Name returns the density name.
func (p *PDF) Name() string { return p.name }

// Prob evaluates the density at x.
func (p *PDF) Prob(x float64) float64 { return p.prober.Prob(x) }

// PlotCurve samples the density adaptively over the range of v.
//
// Sampling starts from a uniform grid and bisects every segment whose midpoint
// deviates from the linear interpolation of its end points by more than
// precision times the largest absolute density value on the grid. A variable
// with an infinite bound fails with errs.ErrUnboundedRange.
func (p *PDF) PlotCurve(v *RealVar, precision float64) (Curve, error) {
	if !(precision > 0) {
		return nil, fmt.Errorf("%w: %g", errs.ErrInvalidPrecision, precision)
	}

	lo, hi := v.Min(), v.Max()
	if !isFinite(lo) || !isFinite(hi) {
		return nil, fmt.Errorf("%w: %q spans [%g, %g]", errs.ErrUnboundedRange, v.Name(), lo, hi)
	}
	if lo == hi {
		return predictorCurve{interp.Constant(p.prober.Prob(lo))}, nil
	}

	grid, releaseGrid := pool.GetFloat64Slice(initialPlotPoints)
	defer releaseGrid()
	values, releaseValues := pool.GetFloat64Slice(initialPlotPoints)
	defer releaseValues()

	floats.Span(grid, lo, hi)
	yMax := 0.0
	for i, x := range grid {
		values[i] = p.prober.Prob(x)
		yMax = math.Max(yMax, math.Abs(values[i]))
	}

	tol := precision
	if yMax > 0 {
		tol *= yMax
	}

	xs := make([]float64, 0, len(grid)*2)
	ys := make([]float64, 0, len(grid)*2)
	xs = append(xs, grid[0])
	ys = append(ys, values[0])
	for i := 1; i < len(grid); i++ {
		xs, ys = p.refine(xs, ys, grid[i-1], values[i-1], grid[i], values[i], tol, 0)
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, err
	}

	return predictorCurve{pl}, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// refine appends the points of segment (x0, x1] to xs/ys, bisecting while the
// midpoint error exceeds tol.
func (p *PDF) refine(xs, ys []float64, x0, y0, x1, y1, tol float64, depth int) ([]float64, []float64) {
	mid := x0 + (x1-x0)/2
	if depth < maxPlotDepth && mid > x0 && mid < x1 {
		yMid := p.prober.Prob(mid)
		if math.Abs(yMid-(y0+y1)/2) > tol {
			xs, ys = p.refine(xs, ys, x0, y0, mid, yMid, tol, depth+1)
			return p.refine(xs, ys, mid, yMid, x1, y1, tol, depth+1)
		}
	}

	return append(xs, x1), append(ys, y1)
}

// predictorCurve exposes a gonum interp.Predictor as a Curve.
type predictorCurve struct {
	interp.Predictor
}

func (c predictorCurve) Interpolate(x float64) float64 {
	return c.Predict(x)
}
