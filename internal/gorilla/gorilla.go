// Package gorilla implements Gorilla XOR compression of float64 columns.
//
// Each value is XORed with its predecessor. An unchanged value costs one bit;
// a changed value stores only the meaningful bits of the XOR, reusing the
// previous leading/trailing zero window when the new bits fit inside it.
// Smooth sampled curves and evenly spaced grids share many high bits between
// neighbors and shrink well.
//
// Bits are packed most significant first and every stream is padded to a
// whole byte, so streams can be concatenated and decoded back to back.
//
// See https://www.vldb.org/pvldb/vol8/p1816-teller.pdf for the algorithm.
package gorilla

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/fitparam/errs"
)

// maxLeading is the largest leading zero count the 5-bit header can hold.
const maxLeading = 31

// Encoder appends one Gorilla stream to a byte slice.
type Encoder struct {
	buf      []byte
	acc      uint64 // pending bits, right aligned
	pending  int    // number of valid bits in acc, always < 64
	prev     uint64
	leading  int
	trailing int
	count    int
}

// NewEncoder creates an encoder appending to dst.
func NewEncoder(dst []byte) *Encoder {
	return &Encoder{buf: dst, leading: -1}
}

// Write encodes one value.
func (e *Encoder) Write(v float64) {
	b := math.Float64bits(v)
	e.count++
	if e.count == 1 {
		e.prev = b
		e.writeBits(b, 64)

		return
	}

	xor := b ^ e.prev
	e.prev = b
	if xor == 0 {
		e.writeBits(0, 1)
		return
	}

	leading := min(bits.LeadingZeros64(xor), maxLeading)
	trailing := bits.TrailingZeros64(xor)

	if e.leading >= 0 && leading >= e.leading && trailing >= e.trailing {
		e.writeBits(0b10, 2)
		e.writeBits(xor>>e.trailing, 64-e.leading-e.trailing)

		return
	}

	size := 64 - leading - trailing
	e.writeBits(0b11, 2)
	e.writeBits(uint64(leading), 5) //nolint:gosec // leading is 0-31
	e.writeBits(uint64(size-1), 6)  //nolint:gosec // size is 1-64
	e.writeBits(xor>>trailing, size)
	e.leading, e.trailing = leading, trailing
}

// WriteSlice encodes values in order.
func (e *Encoder) WriteSlice(values []float64) {
	for _, v := range values {
		e.Write(v)
	}
}

// Count returns the number of values written.
func (e *Encoder) Count() int {
	return e.count
}

// Finish pads the stream to a whole byte and returns the extended slice.
// The encoder must not be used afterwards.
func (e *Encoder) Finish() []byte {
	if e.pending > 0 {
		aligned := e.acc << (64 - e.pending)
		for i := range (e.pending + 7) / 8 {
			e.buf = append(e.buf, byte(aligned>>(56-8*i)))
		}
		e.acc, e.pending = 0, 0
	}

	return e.buf
}

// writeBits appends the n low bits of v, 1 <= n <= 64.
func (e *Encoder) writeBits(v uint64, n int) {
	if n < 64 {
		v &= 1<<n - 1
	}

	free := 64 - e.pending
	if n < free {
		e.acc = e.acc<<n | v
		e.pending += n

		return
	}

	rest := n - free
	e.acc = e.acc<<free | v>>rest
	e.buf = binary.BigEndian.AppendUint64(e.buf, e.acc)
	e.acc, e.pending = 0, rest
	if rest > 0 {
		e.acc = v & (1<<rest - 1)
	}
}

// Decode reads count values from the Gorilla stream at the start of data and
// appends them to dst.
//
// Returns:
//   - []float64: dst extended with the decoded values
//   - int: Number of bytes of data the stream occupied
//   - error: errs.ErrInvalidCurvePayload for truncated or malformed streams
func Decode(dst []float64, data []byte, count int) ([]float64, int, error) {
	if count == 0 {
		return dst, 0, nil
	}

	r := reader{data: data}
	prev, ok := r.readBits(64)
	if !ok {
		return nil, 0, truncated(0)
	}
	dst = append(dst, math.Float64frombits(prev))

	leading, trailing := -1, 0
	for i := 1; i < count; i++ {
		changed, ok := r.readBits(1)
		if !ok {
			return nil, 0, truncated(i)
		}
		if changed == 0 {
			dst = append(dst, math.Float64frombits(prev))
			continue
		}

		newWindow, ok := r.readBits(1)
		if !ok {
			return nil, 0, truncated(i)
		}
		if newWindow == 1 {
			l, ok1 := r.readBits(5)
			s, ok2 := r.readBits(6)
			if !ok1 || !ok2 {
				return nil, 0, truncated(i)
			}
			leading, trailing = int(l), 64-int(l)-int(s)-1
			if trailing < 0 {
				return nil, 0, fmt.Errorf("%w: gorilla value %d: window exceeds 64 bits", errs.ErrInvalidCurvePayload, i)
			}
		} else if leading < 0 {
			return nil, 0, fmt.Errorf("%w: gorilla value %d: window reused before defined", errs.ErrInvalidCurvePayload, i)
		}

		meaningful, ok := r.readBits(64 - leading - trailing)
		if !ok {
			return nil, 0, truncated(i)
		}
		prev ^= meaningful << trailing
		dst = append(dst, math.Float64frombits(prev))
	}

	return dst, (r.pos + 7) / 8, nil
}

func truncated(i int) error {
	return fmt.Errorf("%w: gorilla stream truncated at value %d", errs.ErrInvalidCurvePayload, i)
}

// reader reads bits most significant first.
type reader struct {
	data []byte
	pos  int // bit offset
}

func (r *reader) readBits(n int) (uint64, bool) {
	if r.pos+n > len(r.data)*8 {
		return 0, false
	}

	var v uint64
	for n > 0 {
		avail := 8 - r.pos&7
		take := min(avail, n)
		b := uint64(r.data[r.pos>>3]>>(avail-take)) & (1<<take - 1)
		v = v<<take | b
		r.pos += take
		n -= take
	}

	return v, true
}
