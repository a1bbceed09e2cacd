package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fitparam/errs"
)

func TestNewRealVar(t *testing.T) {
	tests := []struct {
		name     string
		args     []float64
		value    float64
		min      float64
		max      float64
		constant bool
	}{
		{"constant", []float64{2.5}, 2.5, 2.5, 2.5, true},
		{"range", []float64{0, 10}, 5, 0, 10, false},
		{"value and range", []float64{3, 0, 10}, 3, 0, 10, false},
		{"value clipped into range", []float64{42, 0, 10}, 10, 0, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewRealVar("mu", tt.args...)
			require.NoError(t, err)
			require.Equal(t, "mu", v.Name())
			require.Equal(t, tt.value, v.Value())
			require.Equal(t, tt.min, v.Min())
			require.Equal(t, tt.max, v.Max())
			require.Equal(t, tt.constant, v.IsConstant())
		})
	}
}

func TestNewRealVar_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		varName string
		args    []float64
	}{
		{"no arguments", "mu", nil},
		{"too many arguments", "mu", []float64{1, 2, 3, 4}},
		{"inverted range", "mu", []float64{10, 0}},
		{"empty name", "", []float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRealVar(tt.varName, tt.args...)
			require.ErrorIs(t, err, errs.ErrMalformedArguments)
		})
	}
}

func TestRealVar_SetValue(t *testing.T) {
	t.Run("free variable clips", func(t *testing.T) {
		v, err := NewRealVar("x", 0, 1)
		require.NoError(t, err)

		v.SetValue(0.25)
		require.Equal(t, 0.25, v.Value())

		v.SetValue(-3)
		require.Equal(t, 0.0, v.Value())

		v.SetValue(7)
		require.Equal(t, 1.0, v.Value())
	})

	t.Run("constant variable accepts any value", func(t *testing.T) {
		v, err := NewRealVar("c", 1)
		require.NoError(t, err)

		v.SetValue(100)
		require.Equal(t, 100.0, v.Value())
	})
}

func TestRealVar_SetRange(t *testing.T) {
	v, err := NewRealVar("x", 8, 0, 10)
	require.NoError(t, err)

	require.NoError(t, v.SetMax(5))
	require.Equal(t, 5.0, v.Max())
	require.Equal(t, 5.0, v.Value(), "value must follow the shrinking range")

	require.NoError(t, v.SetMin(-5))
	require.Equal(t, -5.0, v.Min())

	require.ErrorIs(t, v.SetMin(6), errs.ErrMalformedArguments)
	require.Equal(t, -5.0, v.Min(), "failed update must not change bounds")
}

func TestRealVar_String(t *testing.T) {
	free, err := NewRealVar("mu", 1.5, 0, 10)
	require.NoError(t, err)
	require.Equal(t, "RealVar mu = 1.5 [0, 10]", free.String())

	fixed, err := NewRealVar("lumi", 137)
	require.NoError(t, err)
	require.Equal(t, "RealVar lumi = 137", fixed.String())
}
