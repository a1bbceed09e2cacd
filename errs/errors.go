// Package errs defines the sentinel errors returned by fitparam packages.
//
// Call sites wrap these with additional context using fmt.Errorf and %w, so
// callers should match them with errors.Is:
//
//	if _, err := c.AddObservable("x", nil); errors.Is(err, errs.ErrConfiguration) {
//	    // neither a data sample nor explicit bounds were supplied
//	}
package errs

import "errors"

// Parameter collection errors.
var (
	// ErrConfiguration indicates that a parameter could not be constructed because
	// neither explicit construction arguments nor a data sample were supplied.
	ErrConfiguration = errors.New("insufficient information to construct parameter")

	// ErrInvalidTemplate indicates a name template references an axis that was not supplied.
	ErrInvalidTemplate = errors.New("invalid name template")

	// ErrUnknownParameter indicates the named parameter is not tracked by the collection.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrInvalidParameter indicates a nil or kind-less parameter was passed to the collection.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrHashCollision indicates two parameter names share the same 64-bit ID.
	ErrHashCollision = errors.New("parameter ID hash collision")
)

// Fit engine errors.
var (
	// ErrMalformedArguments indicates the engine rejected variable construction arguments.
	ErrMalformedArguments = errors.New("malformed variable arguments")

	// ErrDuplicateLevel indicates a category level label or code is already defined.
	ErrDuplicateLevel = errors.New("duplicate category level")

	// ErrUnknownLevel indicates a category level code or label is not defined.
	ErrUnknownLevel = errors.New("unknown category level")
)

// Curve sampling errors.
var (
	// ErrInvalidSampleCount indicates the requested number of sample points is too small.
	ErrInvalidSampleCount = errors.New("invalid sample count")

	// ErrInvalidPrecision indicates a non-positive curve precision.
	ErrInvalidPrecision = errors.New("invalid curve precision")

	// ErrUnboundedRange indicates a curve was requested over a variable whose bounds are not finite.
	ErrUnboundedRange = errors.New("variable range is not finite")

	// ErrZeroIntegral indicates a curve cannot be normalized because its integral is zero or not finite.
	ErrZeroIntegral = errors.New("curve integral is zero")

	// ErrLengthMismatch indicates two sampled curves have different lengths.
	ErrLengthMismatch = errors.New("sample length mismatch")
)

// Curve codec errors.
var (
	// ErrInvalidCurvePayload indicates an encoded curve is truncated or has an invalid header.
	ErrInvalidCurvePayload = errors.New("invalid curve payload")

	// ErrChecksumMismatch indicates the decoded curve payload does not match its stored CRC32.
	ErrChecksumMismatch = errors.New("curve payload checksum mismatch")

	// ErrUnknownCompression indicates a compression type or name that has no codec.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrUnknownEncoding indicates a column encoding type or name that is not supported.
	ErrUnknownEncoding = errors.New("unknown column encoding")

	// ErrUnknownByteOrder indicates a byte order flag that is neither little nor big endian.
	ErrUnknownByteOrder = errors.New("unknown byte order")
)
