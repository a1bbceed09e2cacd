package pool

import "sync"

// Curve payload buffer sizing.
const (
	// PayloadBufferDefaultSize holds two columns of 1000 float64 samples plus a header.
	PayloadBufferDefaultSize = 16*1024 + 64
	// PayloadBufferMaxThreshold is the largest buffer capacity returned to the pool.
	PayloadBufferMaxThreshold = 1024 * 1024
)

// Buffer is a growable byte slice reused across curve encodings.
type Buffer struct {
	B []byte
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Reset empties the buffer but keeps its capacity.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Grow makes room for n more bytes without reallocating on the next append.
func (b *Buffer) Grow(n int) {
	if cap(b.B)-len(b.B) >= n {
		return
	}

	growBy := max(n, cap(b.B)/4)
	buf := make([]byte, len(b.B), len(b.B)+growBy)
	copy(buf, b.B)
	b.B = buf
}

// Write appends data to the buffer. It never fails.
func (b *Buffer) Write(data []byte) (int, error) {
	b.B = append(b.B, data...)
	return len(data), nil
}

var payloadPool = sync.Pool{
	New: func() any {
		return &Buffer{B: make([]byte, 0, PayloadBufferDefaultSize)}
	},
}

// GetBuffer retrieves an empty payload buffer from the pool.
func GetBuffer() *Buffer {
	b, _ := payloadPool.Get().(*Buffer)
	return b
}

// PutBuffer returns b to the pool. Oversized buffers are dropped.
func PutBuffer(b *Buffer) {
	if b == nil || cap(b.B) > PayloadBufferMaxThreshold {
		return
	}

	b.Reset()
	payloadPool.Put(b)
}
