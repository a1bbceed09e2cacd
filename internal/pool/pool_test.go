package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Grow(t *testing.T) {
	b := &Buffer{B: make([]byte, 0, 4)}
	_, err := b.Write([]byte("abc"))
	require.NoError(t, err)

	b.Grow(10)
	assert.GreaterOrEqual(t, cap(b.B)-len(b.B), 10)
	assert.Equal(t, []byte("abc"), b.Bytes(), "Grow must keep existing content")

	before := cap(b.B)
	b.Grow(1)
	assert.Equal(t, before, cap(b.B), "Grow must not reallocate with enough capacity")
}

func TestGetBuffer(t *testing.T) {
	b := GetBuffer()
	require.NotNil(t, b)
	assert.Equal(t, 0, b.Len())
	assert.GreaterOrEqual(t, cap(b.B), PayloadBufferDefaultSize)

	_, _ = b.Write([]byte("payload"))
	PutBuffer(b)

	again := GetBuffer()
	assert.Equal(t, 0, again.Len(), "pooled buffers are handed out empty")
	PutBuffer(again)
}

func TestPutBuffer_DropsOversized(t *testing.T) {
	PutBuffer(nil)
	PutBuffer(&Buffer{B: make([]byte, 0, PayloadBufferMaxThreshold+1)})
}

func TestGetFloat64Slice(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"small", 10},
		{"large", 4096},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, release := GetFloat64Slice(tt.size)
			defer release()

			require.Len(t, s, tt.size)
			for i := range s {
				s[i] = float64(i)
			}
		})
	}
}
