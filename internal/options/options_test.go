package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type target struct {
	count int
	name  string
}

func withCount(n int) Option[*target] {
	return New(func(t *target) error {
		if n < 0 {
			return errors.New("count cannot be negative")
		}
		t.count = n

		return nil
	})
}

func withName(name string) Option[*target] {
	return NoError(func(t *target) { t.name = name })
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		tg := &target{}
		err := Apply(tg, withCount(1), withName("a"), withCount(3))
		require.NoError(t, err)
		require.Equal(t, 3, tg.count)
		require.Equal(t, "a", tg.name)
	})

	t.Run("stops at first error", func(t *testing.T) {
		tg := &target{}
		err := Apply(tg, withCount(-1), withName("never"))
		require.EqualError(t, err, "count cannot be negative")
		require.Empty(t, tg.name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		tg := &target{}
		require.NoError(t, Apply(tg, nil, withName("b")))
		require.Equal(t, "b", tg.name)
	})

	t.Run("no options", func(t *testing.T) {
		require.NoError(t, Apply(&target{}))
	})
}
