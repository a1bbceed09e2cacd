// Package curve samples density curves over a fit variable and stores them.
//
// A Sampler asks an engine.Density for its display curve once, then walks an
// evenly spaced grid over the variable range and records the interpolated
// density at each point:
//
//	sampler, _ := curve.NewSampler()
//	s, err := sampler.SampleNormalized(pdf, mass, 1000, nEvents)
//	for x, y := range s.Points() {
//	    fmt.Println(x, y)
//	}
//
// Sampling sets the variable to every grid point in turn. By default the
// variable is left at the last point (its upper bound); WithRestoreValue(true)
// restores the previous value on return.
//
// Sampled curves can be compared with Compare.
//
// # Storage format
//
// Encode and Decode are optional tooling for keeping sampled curves around;
// sampling does not depend on them. The encoded form is a 16-byte header followed by the x column and
// then the y column, optionally compressed. Columns are stored as raw
// IEEE-754 float64 values or as two back-to-back Gorilla XOR streams:
//
//	offset  size  field
//	0       4     magic "FPCV"
//	4       1     format version
//	5       1     byte order (format.ByteOrder)
//	6       1     compression (format.CompressionType)
//	7       1     column encoding (format.EncodingType)
//	8       4     point count
//	12      4     CRC32 (IEEE) of the uncompressed columns
//
// The header integers use the byte order of the raw columns. The CRC32 covers
// the encoded columns before compression.
package curve
