package curve

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"math"

	"fortio.org/safecast"

	"github.com/arloliu/fitparam/compress"
	"github.com/arloliu/fitparam/endian"
	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/format"
	"github.com/arloliu/fitparam/internal/gorilla"
	"github.com/arloliu/fitparam/internal/options"
	"github.com/arloliu/fitparam/internal/pool"
)

const (
	// HeaderSize is the size of the fixed curve header in bytes.
	HeaderSize = 16
	// Version is the curve format version written by Encode.
	Version = 1
	// MaxPoints is the largest number of points Encode writes and Decode accepts.
	MaxPoints = 1 << 24

	pointSize = 16 // one x and one y float64
)

var magic = []byte("FPCV")

// Encode serializes s into the optional curve storage format described in
// the package documentation.
//
// Parameters:
//   - s: Curve to encode; X and Y must have the same length
//   - opts: Optional settings (WithEncoding, WithCompression, WithBigEndian)
//
// Returns:
//   - []byte: Encoded curve, owned by the caller
//   - error: errs.ErrLengthMismatch for ragged samples,
//     errs.ErrInvalidCurvePayload for more than MaxPoints points, or an option
//     or codec error
func Encode(s *Samples, opts ...EncodeOption) ([]byte, error) {
	cfg := &encodeConfig{
		encoding:    format.TypeRaw,
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("%w: %d x values, %d y values", errs.ErrLengthMismatch, len(s.X), len(s.Y))
	}
	if len(s.X) > MaxPoints {
		return nil, fmt.Errorf("%w: %d points exceeds %d", errs.ErrInvalidCurvePayload, len(s.X), MaxPoints)
	}
	count, err := safecast.Convert[uint32](len(s.X))
	if err != nil {
		return nil, fmt.Errorf("%w: point count: %w", errs.ErrInvalidCurvePayload, err)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	buf.Grow(len(s.X) * pointSize)
	if cfg.encoding == format.TypeGorilla {
		buf.B = appendGorilla(buf.B, s.X)
		buf.B = appendGorilla(buf.B, s.Y)
	} else {
		for _, x := range s.X {
			buf.B = cfg.engine.AppendUint64(buf.B, math.Float64bits(x))
		}
		for _, y := range s.Y {
			buf.B = cfg.engine.AppendUint64(buf.B, math.Float64bits(y))
		}
	}
	checksum := crc32.ChecksumIEEE(buf.B)

	packed, err := codec.Compress(nil, buf.B)
	if err != nil {
		return nil, fmt.Errorf("compress curve payload: %w", err)
	}

	out := make([]byte, 0, HeaderSize+len(packed))
	out = append(out, magic...)
	out = append(out, Version, byte(endian.ByteOrderOf(cfg.engine)), byte(cfg.compression), byte(cfg.encoding))
	out = cfg.engine.AppendUint32(out, count)
	out = cfg.engine.AppendUint32(out, checksum)
	out = append(out, packed...)

	return out, nil
}

// Decode parses a curve produced by Encode.
//
// The point count in the header is checked against the payload size before
// any column is allocated. Returns errs.ErrInvalidCurvePayload for truncated
// input, an unknown header or a payload too small for the point count, and
// errs.ErrChecksumMismatch when the payload fails its CRC32 check.
func Decode(data []byte) (*Samples, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the header", errs.ErrInvalidCurvePayload, len(data))
	}
	if !bytes.Equal(data[:4], magic) {
		return nil, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidCurvePayload, data[:4])
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidCurvePayload, data[4])
	}
	bo, err := endian.FromByteOrder(format.ByteOrder(data[5]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCurvePayload, err)
	}
	codec, err := compress.GetCodec(format.CompressionType(data[6]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCurvePayload, err)
	}
	encoding := format.EncodingType(data[7])
	if encoding != format.TypeRaw && encoding != format.TypeGorilla {
		return nil, fmt.Errorf("%w: %w: %#x", errs.ErrInvalidCurvePayload, errs.ErrUnknownEncoding, data[7])
	}

	count := int(bo.Uint32(data[8:12]))
	checksum := bo.Uint32(data[12:16])
	if count > MaxPoints {
		return nil, fmt.Errorf("%w: %d points exceeds %d", errs.ErrInvalidCurvePayload, count, MaxPoints)
	}
	body := data[HeaderSize:]
	if format.CompressionType(data[6]) == format.CompressionNone {
		if err := checkPayloadSize(encoding, len(body), count); err != nil {
			return nil, err
		}
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	payload, err := codec.Decompress(buf.B[:0], body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCurvePayload, err)
	}
	buf.B = payload

	if err := checkPayloadSize(encoding, len(payload), count); err != nil {
		return nil, err
	}
	if got := crc32.ChecksumIEEE(payload); got != checksum {
		return nil, fmt.Errorf("%w: got %#08x, want %#08x", errs.ErrChecksumMismatch, got, checksum)
	}

	if encoding == format.TypeGorilla {
		return decodeGorilla(payload, count)
	}

	s := &Samples{
		X: make([]float64, count),
		Y: make([]float64, count),
	}
	ys := payload[count*8:]
	for i := range count {
		s.X[i] = math.Float64frombits(bo.Uint64(payload[i*8:]))
		s.Y[i] = math.Float64frombits(bo.Uint64(ys[i*8:]))
	}

	return s, nil
}

// checkPayloadSize rejects payloads too small to hold count points, before
// anything is allocated for them. Raw columns have an exact size; a Gorilla
// stream needs 64 bits for its first value and at least one bit per further
// value.
func checkPayloadSize(encoding format.EncodingType, n, count int) error {
	if encoding == format.TypeRaw {
		if n != count*pointSize {
			return fmt.Errorf("%w: payload is %d bytes, want %d", errs.ErrInvalidCurvePayload, n, count*pointSize)
		}

		return nil
	}

	if count > 0 {
		if least := 2 * ((count + 70) / 8); n < least {
			return fmt.Errorf("%w: payload is %d bytes, %d points need at least %d", errs.ErrInvalidCurvePayload, n, count, least)
		}
	}

	return nil
}

func appendGorilla(dst []byte, values []float64) []byte {
	e := gorilla.NewEncoder(dst)
	e.WriteSlice(values)

	return e.Finish()
}

// decodeGorilla reads the x stream followed by the y stream.
func decodeGorilla(payload []byte, count int) (*Samples, error) {
	xs, n, err := gorilla.Decode(make([]float64, 0, count), payload, count)
	if err != nil {
		return nil, err
	}
	ys, m, err := gorilla.Decode(make([]float64, 0, count), payload[n:], count)
	if err != nil {
		return nil, err
	}
	if n+m != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing bytes after columns", errs.ErrInvalidCurvePayload, len(payload)-n-m)
	}

	return &Samples{X: xs, Y: ys}, nil
}
