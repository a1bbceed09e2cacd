// Package compress provides the codecs applied to encoded curve payloads.
//
// It backs the optional curve storage format (curve.Encode and curve.Decode);
// parameter collections and curve sampling never depend on it.
//
// A curve payload is two float64 columns, which compress well when the
// curve is smooth and poorly when it is noisy, so the algorithm is selected
// per payload through format.CompressionType:
//
//   - None: payload stored as is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// All codecs share one interface:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	packed, err := codec.Compress(nil, payload)
//	payload, err = codec.Decompress(make([]byte, 0, len(payload)), packed)
//
// The dst argument is an optional buffer the result may reuse; its previous
// contents are overwritten. Its capacity also serves as a size hint for
// decompressors that cannot learn the output size from the input (LZ4).
//
// # Zstd backends
//
// Zstd uses the pure Go github.com/klauspost/compress/zstd by default. Build
// with both cgo and the "gozstd" tag to use the libzstd binding
// github.com/valyala/gozstd instead. Both produce standard zstd frames, so
// payloads are interchangeable.
//
// Codecs are stateless values and safe for concurrent use; pooled encoder and
// decoder state is managed internally.
package compress
