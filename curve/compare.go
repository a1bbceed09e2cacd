package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/fitparam/errs"
)

// Agreement summarizes how closely an observed curve follows an expected one.
type Agreement struct {
	// RSquared is 1 - SS_res/SS_tot; 1 means the curves coincide. It is 0 when
	// the observed curve is flat.
	RSquared float64
	// RMSE is the root mean square of observed - expected.
	RMSE float64
}

func (a Agreement) String() string {
	return fmt.Sprintf("R²=%.6f RMSE=%.6g", a.RSquared, a.RMSE)
}

// Compare measures the agreement of two curves sampled on the same grid.
//
// Only the y values are compared; the grids are assumed identical. Returns
// errs.ErrLengthMismatch when the curves have different lengths.
func Compare(observed, expected *Samples) (Agreement, error) {
	if observed.Len() != expected.Len() || len(observed.Y) != len(expected.Y) {
		return Agreement{}, fmt.Errorf("%w: %d vs %d points", errs.ErrLengthMismatch, observed.Len(), expected.Len())
	}
	if len(observed.Y) == 0 {
		return Agreement{}, nil
	}

	return Agreement{
		RSquared: rSquared(observed.Y, expected.Y),
		RMSE:     rmse(observed.Y, expected.Y),
	}, nil
}

// rSquared returns the coefficient of determination of predicted against
// observed, or 0 for a flat observed curve.
func rSquared(observed, predicted []float64) float64 {
	if floats.Min(observed) == floats.Max(observed) {
		return 0
	}

	return stat.RSquaredFrom(predicted, observed, nil)
}

func rmse(observed, predicted []float64) float64 {
	return floats.Distance(observed, predicted, 2) / math.Sqrt(float64(len(observed)))
}
