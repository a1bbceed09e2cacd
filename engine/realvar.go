package engine

import (
	"fmt"
	"math"

	"github.com/arloliu/fitparam/errs"
)

// RealVar is a continuous fit variable with a mutable value and bounds.
//
// A RealVar is either constant (constructed from a single value) or free
// (constructed with bounds). Setting the value of a free variable clips it
// into [min, max]; constant variables accept any value.
//
// RealVar is not safe for concurrent use.
type RealVar struct {
	name     string
	value    float64
	min      float64
	max      float64
	constant bool
}

// NewRealVar creates a variable from engine construction arguments.
//
// Accepted argument forms:
//   - (value): constant variable with bounds [value, value]
//   - (min, max): free variable initialized to the range midpoint
//   - (value, min, max): free variable initialized to value (clipped into range)
//
// Parameters:
//   - name: Variable name, must not be empty
//   - args: Construction arguments as listed above
//
// Returns:
//   - *RealVar: The created variable
//   - error: ErrMalformedArguments for an empty name, a wrong argument count,
//     NaN arguments or min > max
func NewRealVar(name string, args ...float64) (*RealVar, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty variable name", errs.ErrMalformedArguments)
	}
	for _, a := range args {
		if math.IsNaN(a) {
			return nil, fmt.Errorf("%w: %q: NaN argument", errs.ErrMalformedArguments, name)
		}
	}

	v := &RealVar{name: name}
	switch len(args) {
	case 1:
		v.value, v.min, v.max = args[0], args[0], args[0]
		v.constant = true
	case 2:
		if err := v.SetRange(args[0], args[1]); err != nil {
			return nil, err
		}
		v.value = v.min + (v.max-v.min)/2
	case 3:
		if err := v.SetRange(args[1], args[2]); err != nil {
			return nil, err
		}
		v.SetValue(args[0])
	default:
		return nil, fmt.Errorf("%w: %q: expected 1 to 3 arguments, got %d", errs.ErrMalformedArguments, name, len(args))
	}

	return v, nil
}

// Name returns the variable name.
func (v *RealVar) Name() string { return v.name }

// Value returns the current value.
func (v *RealVar) Value() float64 { return v.value }

// Min returns the lower bound.
func (v *RealVar) Min() float64 { return v.min }

// Max returns the upper bound.
func (v *RealVar) Max() float64 { return v.max }

// IsConstant reports whether the variable is fixed during a fit.
func (v *RealVar) IsConstant() bool { return v.constant }

// SetConstant fixes or releases the variable.
func (v *RealVar) SetConstant(constant bool) { v.constant = constant }

// SetValue sets the current value. Free variables clip val into [min, max].
func (v *RealVar) SetValue(val float64) {
	if !v.constant {
		val = math.Max(v.min, math.Min(v.max, val))
	}
	v.value = val
}

// SetMin sets the lower bound. It fails if min exceeds the current upper bound.
func (v *RealVar) SetMin(minVal float64) error {
	return v.SetRange(minVal, v.max)
}

// SetMax sets the upper bound. It fails if max is below the current lower bound.
func (v *RealVar) SetMax(maxVal float64) error {
	return v.SetRange(v.min, maxVal)
}

// SetRange sets both bounds at once and clips the value of a free variable into them.
func (v *RealVar) SetRange(minVal, maxVal float64) error {
	if math.IsNaN(minVal) || math.IsNaN(maxVal) || minVal > maxVal {
		return fmt.Errorf("%w: %q: invalid range [%g, %g]", errs.ErrMalformedArguments, v.name, minVal, maxVal)
	}
	v.min, v.max = minVal, maxVal
	if !v.constant {
		v.value = math.Max(v.min, math.Min(v.max, v.value))
	}

	return nil
}

// String renders the variable as "RealVar name = value [min, max]"; bounds are
// omitted for constant variables.
func (v *RealVar) String() string {
	s := fmt.Sprintf("RealVar %s = %g", v.name, v.value)
	if !v.constant {
		s += fmt.Sprintf(" [%g, %g]", v.min, v.max)
	}

	return s
}
