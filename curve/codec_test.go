package curve

import (
	"encoding/binary"
	"hash/crc32"
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/format"
)

var encodingTypes = []format.EncodingType{format.TypeRaw, format.TypeGorilla}

var compressionTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func gaussianSamples(n int) *Samples {
	s := &Samples{X: make([]float64, n), Y: make([]float64, n)}
	for i := range n {
		x := 10 * float64(i) / float64(max(n-1, 1))
		s.X[i] = x
		s.Y[i] = math.Exp(-(x-5)*(x-5)/2) / math.Sqrt(2*math.Pi)
	}

	return s
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	inputs := map[string]*Samples{
		"empty":    {X: []float64{}, Y: []float64{}},
		"single":   gaussianSamples(1),
		"gaussian": gaussianSamples(1000),
		"special":  {X: []float64{-0.0, math.Inf(-1), 1e-308}, Y: []float64{math.NaN(), math.Inf(1), math.MaxFloat64}},
	}

	for _, et := range encodingTypes {
		for _, ct := range compressionTypes {
			for _, bigEndian := range []bool{false, true} {
				for name, in := range inputs {
					t.Run(et.String()+"/"+ct.String()+"/"+name, func(t *testing.T) {
						opts := []EncodeOption{WithEncoding(et), WithCompression(ct)}
						if bigEndian {
							opts = append(opts, WithBigEndian())
						}

						data, err := Encode(in, opts...)
						require.NoError(t, err)
						require.Equal(t, "FPCV", string(data[:4]))
						require.Equal(t, byte(ct), data[6])
						require.Equal(t, byte(et), data[7])

						out, err := Decode(data)
						require.NoError(t, err)
						require.Equal(t, in.Len(), out.Len())
						for i := range in.X {
							require.Equal(t, math.Float64bits(in.X[i]), math.Float64bits(out.X[i]))
							require.Equal(t, math.Float64bits(in.Y[i]), math.Float64bits(out.Y[i]))
						}
					})
				}
			}
		}
	}
}

func TestEncode_Header(t *testing.T) {
	s := gaussianSamples(3)

	data, err := Encode(s)
	require.NoError(t, err)
	require.Len(t, data, HeaderSize+3*16)
	require.Equal(t, []byte{'F', 'P', 'C', 'V', Version, byte(format.LittleEndian), byte(format.CompressionNone), byte(format.TypeRaw)}, data[:8])
	require.Equal(t, uint32(3), binary.LittleEndian.Uint32(data[8:12]))
	require.Equal(t, math.Float64bits(s.X[1]), binary.LittleEndian.Uint64(data[HeaderSize+8:]))
	require.Equal(t, math.Float64bits(s.Y[0]), binary.LittleEndian.Uint64(data[HeaderSize+24:]))

	data, err = Encode(s, WithBigEndian())
	require.NoError(t, err)
	require.Equal(t, byte(format.BigEndian), data[5])
	require.Equal(t, uint32(3), binary.BigEndian.Uint32(data[8:12]))
}

func TestEncode_CompressesSmoothCurves(t *testing.T) {
	s := &Samples{X: make([]float64, 2000), Y: make([]float64, 2000)}
	for i := range s.X {
		s.X[i] = float64(i)
	}

	raw, err := Encode(s)
	require.NoError(t, err)
	packed, err := Encode(s, WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	require.Less(t, len(packed), len(raw)/2)

	xor, err := Encode(s, WithEncoding(format.TypeGorilla))
	require.NoError(t, err)
	require.Less(t, len(xor), len(raw)/2)
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(&Samples{X: []float64{1, 2}, Y: []float64{1}})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)

	_, err = Encode(gaussianSamples(2), WithCompression(0))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
	_, err = Encode(gaussianSamples(2), WithCompression(format.CompressionType(9)))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)

	_, err = Encode(gaussianSamples(2), WithEncoding(0))
	require.ErrorIs(t, err, errs.ErrUnknownEncoding)
	_, err = Encode(gaussianSamples(2), WithEncoding(format.EncodingType(2)))
	require.ErrorIs(t, err, errs.ErrUnknownEncoding)
}

func TestDecode_Errors(t *testing.T) {
	valid, err := Encode(gaussianSamples(10))
	require.NoError(t, err)

	corrupt := func(mutate func([]byte) []byte) []byte {
		data := append([]byte(nil), valid...)
		return mutate(data)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, errs.ErrInvalidCurvePayload},
		{"short header", valid[:HeaderSize-1], errs.ErrInvalidCurvePayload},
		{"bad magic", corrupt(func(d []byte) []byte { d[0] = 'X'; return d }), errs.ErrInvalidCurvePayload},
		{"bad version", corrupt(func(d []byte) []byte { d[4] = 9; return d }), errs.ErrInvalidCurvePayload},
		{"bad byte order", corrupt(func(d []byte) []byte { d[5] = 0; return d }), errs.ErrInvalidCurvePayload},
		{"bad compression", corrupt(func(d []byte) []byte { d[6] = 0x7f; return d }), errs.ErrInvalidCurvePayload},
		{"bad encoding", corrupt(func(d []byte) []byte { d[7] = 0; return d }), errs.ErrUnknownEncoding},
		{"truncated payload", valid[:len(valid)-8], errs.ErrInvalidCurvePayload},
		{"count too large", corrupt(func(d []byte) []byte {
			binary.LittleEndian.PutUint32(d[8:12], MaxPoints+1)
			return d
		}), errs.ErrInvalidCurvePayload},
		{"flipped bit", corrupt(func(d []byte) []byte { d[HeaderSize+3] ^= 0x10; return d }), errs.ErrChecksumMismatch},
		{"wrong checksum", corrupt(func(d []byte) []byte { d[12]++; return d }), errs.ErrChecksumMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_GorillaErrors(t *testing.T) {
	valid, err := Encode(gaussianSamples(50), WithEncoding(format.TypeGorilla))
	require.NoError(t, err)

	_, err = Decode(valid[:len(valid)-4])
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)

	// A consistent checksum over a truncated stream still fails to decode.
	short := append([]byte(nil), valid[:len(valid)-4]...)
	binary.LittleEndian.PutUint32(short[12:16], crc32.ChecksumIEEE(short[HeaderSize:]))
	_, err = Decode(short)
	require.ErrorIs(t, err, errs.ErrInvalidCurvePayload)

	long := append(append([]byte(nil), valid...), 0xAA)
	binary.LittleEndian.PutUint32(long[12:16], crc32.ChecksumIEEE(long[HeaderSize:]))
	_, err = Decode(long)
	require.ErrorIs(t, err, errs.ErrInvalidCurvePayload)
}

func TestDecode_OversizedCountIsCheap(t *testing.T) {
	for _, et := range encodingTypes {
		for _, ct := range compressionTypes {
			t.Run(et.String()+"/"+ct.String(), func(t *testing.T) {
				data, err := Encode(&Samples{}, WithEncoding(et), WithCompression(ct))
				require.NoError(t, err)
				binary.LittleEndian.PutUint32(data[8:12], MaxPoints)

				var before, after runtime.MemStats
				runtime.ReadMemStats(&before)
				_, err = Decode(data)
				runtime.ReadMemStats(&after)

				require.ErrorIs(t, err, errs.ErrInvalidCurvePayload)
				require.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
			})
		}
	}
}

func TestDecode_CorruptCompressedPayload(t *testing.T) {
	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		t.Run(ct.String(), func(t *testing.T) {
			data, err := Encode(gaussianSamples(100), WithCompression(ct))
			require.NoError(t, err)

			data = data[:HeaderSize+(len(data)-HeaderSize)/2]
			_, err = Decode(data)
			require.ErrorIs(t, err, errs.ErrInvalidCurvePayload)
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	s := gaussianSamples(1000)

	for _, ct := range compressionTypes {
		b.Run(ct.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Encode(s, WithCompression(ct))
			}
		})
	}
}

func BenchmarkEncode_Gorilla(b *testing.B) {
	s := gaussianSamples(1000)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = Encode(s, WithEncoding(format.TypeGorilla))
	}
}

func BenchmarkDecode(b *testing.B) {
	s := gaussianSamples(1000)

	for _, ct := range compressionTypes {
		data, _ := Encode(s, WithCompression(ct))
		b.Run(ct.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Decode(data)
			}
		})
	}
}
