package compress

import (
	"fmt"

	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/format"
)

// Compressor compresses curve payloads.
type Compressor interface {
	// Compress compresses src. The result may reuse the storage of dst; it
	// never aliases src unless the codec stores data uncompressed.
	Compress(dst, src []byte) ([]byte, error)
}

// Decompressor restores payloads produced by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses src. The result may reuse the storage of dst,
	// and cap(dst) is used as the expected output size when the codec needs
	// one. Corrupt or foreign input returns an error.
	Decompress(dst, src []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
//
// Returns errs.ErrUnknownCompression for types without a codec.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (%#x)", errs.ErrUnknownCompression, compressionType, uint8(compressionType))
}
