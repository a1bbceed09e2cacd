package compress

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/format"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// curvePayload builds a payload shaped like an encoded curve: an x column
// followed by a y column of a Gaussian, little endian.
func curvePayload(n int) []byte {
	buf := make([]byte, 0, n*16)
	for i := range n {
		x := 10 * float64(i) / float64(n-1)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(x))
	}
	for i := range n {
		x := 10 * float64(i) / float64(n-1)
		y := math.Exp(-(x-5)*(x-5)/2) / math.Sqrt(2*math.Pi)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(y))
	}

	return buf
}

func TestGetCodec(t *testing.T) {
	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
	_, err = GetCodec(format.CompressionType(0xff))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestCodec_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	random := make([]byte, 4096)
	for i := range random {
		random[i] = byte(rng.IntN(256))
	}

	inputs := map[string][]byte{
		"curve":  curvePayload(1000),
		"small":  curvePayload(2),
		"random": random,
		"zeros":  make([]byte, 8192),
	}

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, in := range inputs {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				packed, err := codec.Compress(nil, in)
				require.NoError(t, err)

				out, err := codec.Decompress(make([]byte, 0, len(in)), packed)
				require.NoError(t, err)
				require.Equal(t, in, out)

				out, err = codec.Decompress(nil, packed)
				require.NoError(t, err)
				require.Equal(t, in, out, "decompression without a size hint")
			})
		}
	}
}

func TestCodec_Empty(t *testing.T) {
	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress(nil, nil)
			require.NoError(t, err)

			out, err := codec.Decompress(nil, packed)
			require.NoError(t, err)
			require.Empty(t, out)
		})
	}
}

func TestCodec_ReusesDst(t *testing.T) {
	in := curvePayload(500)
	dst := make([]byte, 0, len(in))

	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			packed, err := codec.Compress(nil, in)
			require.NoError(t, err)

			out, err := codec.Decompress(dst, packed)
			require.NoError(t, err)
			require.Equal(t, in, out)
			require.Same(t, &dst[:1][0], &out[0], "output reuses dst storage")
		})
	}
}

func TestCodec_CorruptInput(t *testing.T) {
	garbage := []byte{0x10, 0xff, 0xff, 0xff, 0xff, 0xff}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(nil, garbage)
			require.Error(t, err)
		})
	}
}

func TestCodec_CompressesRepetitiveInput(t *testing.T) {
	zeros := make([]byte, 16000)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		packed, err := codec.Compress(nil, zeros)
		require.NoError(t, err)
		require.Less(t, len(packed), len(zeros)/10, ct.String())
	}
}

func BenchmarkCodec_Compress(b *testing.B) {
	in := curvePayload(1000)

	for _, ct := range allTypes {
		codec, _ := GetCodec(ct)
		b.Run(ct.String(), func(b *testing.B) {
			dst := make([]byte, 0, len(in)*2)
			b.SetBytes(int64(len(in)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(dst, in)
			}
		})
	}
}

func BenchmarkCodec_Decompress(b *testing.B) {
	in := curvePayload(1000)

	for _, ct := range allTypes {
		codec, _ := GetCodec(ct)
		packed, _ := codec.Compress(nil, in)
		b.Run(ct.String(), func(b *testing.B) {
			dst := make([]byte, 0, len(in))
			b.SetBytes(int64(len(in)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Decompress(dst, packed)
			}
		})
	}
}
