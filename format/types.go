// Package format defines the enumerations stored in encoded curve headers.
//
// The curve storage format is optional tooling on top of curve sampling; none
// of these types appear in the collection or sampler APIs.
package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/fitparam/errs"
)

type (
	EncodingType    uint8
	CompressionType uint8
	ByteOrder       uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores float columns as raw IEEE-754 values.
	TypeGorilla EncodingType = 0x3 // TypeGorilla stores float columns with Gorilla XOR compression.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.

	LittleEndian ByteOrder = 0x1 // LittleEndian stores float columns least significant byte first.
	BigEndian    ByteOrder = 0x2 // BigEndian stores float columns most significant byte first.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// ParseEncoding converts a case-insensitive encoding name ("raw" or
// "gorilla") to its EncodingType. The empty string selects TypeRaw.
func ParseEncoding(name string) (EncodingType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "raw":
		return TypeRaw, nil
	case "gorilla":
		return TypeGorilla, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownEncoding, name)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *EncodingType) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = parsed

	return nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression converts a case-insensitive compression name ("none",
// "zstd", "s2" or "lz4") to its CompressionType. The empty string selects
// CompressionNone.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownCompression, name)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so CompressionType can be
// read directly from configuration sources.
func (c *CompressionType) UnmarshalText(text []byte) error {
	parsed, err := ParseCompression(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

func (b ByteOrder) String() string {
	switch b {
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	default:
		return "Unknown"
	}
}
