package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fitparam/errs"
)

func TestCategory_DefineType(t *testing.T) {
	c, err := NewCategory("year")
	require.NoError(t, err)
	require.Equal(t, 0, c.Len())
	require.Equal(t, 0, c.Index())

	require.NoError(t, c.DefineType("2019", 2019))
	require.NoError(t, c.DefineType("2018", 2018))
	require.Equal(t, 2, c.Len())

	require.Equal(t, []Level{{"2018", 2018}, {"2019", 2019}}, c.Levels())

	code, ok := c.Lookup("2019")
	require.True(t, ok)
	require.Equal(t, 2019, code)

	label, ok := c.Label(2018)
	require.True(t, ok)
	require.Equal(t, "2018", label)

	_, ok = c.Lookup("2020")
	require.False(t, ok)

	require.ErrorIs(t, c.DefineType("2019", 7), errs.ErrDuplicateLevel)
	require.ErrorIs(t, c.DefineType("other", 2018), errs.ErrDuplicateLevel)
	require.Equal(t, 2, c.Len())
}

func TestCategory_SetIndex(t *testing.T) {
	c, err := NewCategory("channel")
	require.NoError(t, err)
	require.NoError(t, c.DefineType("ee", 1))
	require.NoError(t, c.DefineType("mm", 2))

	require.Equal(t, 1, c.Index(), "first defined level is the initial state")
	require.NoError(t, c.SetIndex(2))
	require.Equal(t, 2, c.Index())

	require.ErrorIs(t, c.SetIndex(3), errs.ErrUnknownLevel)
	require.Equal(t, 2, c.Index())
}

func TestCategory_String(t *testing.T) {
	c, err := NewCategory("channel")
	require.NoError(t, err)
	require.NoError(t, c.DefineType("mm", 2))
	require.NoError(t, c.DefineType("ee", 1))

	require.Equal(t, "Category channel {1:ee, 2:mm}", c.String())
}

func TestNewCategory_EmptyName(t *testing.T) {
	_, err := NewCategory("")
	require.ErrorIs(t, err, errs.ErrMalformedArguments)
}
