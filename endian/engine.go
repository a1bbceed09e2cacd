// Package endian maps the byte order flag of an encoded curve to a byte order
// engine. Only the optional curve storage format uses it.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so the
// same value can read fixed-size fields and append them to a growing buffer:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(x))
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/arloliu/fitparam/errs"
	"github.com/arloliu/fitparam/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the byte order of the host.
func CheckEndianness() binary.ByteOrder {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// FromByteOrder returns the engine for a header byte order flag.
func FromByteOrder(order format.ByteOrder) (EndianEngine, error) {
	switch order {
	case format.LittleEndian:
		return binary.LittleEndian, nil
	case format.BigEndian:
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: %#x", errs.ErrUnknownByteOrder, uint8(order))
	}
}

// ByteOrderOf returns the header flag describing engine.
func ByteOrderOf(engine EndianEngine) format.ByteOrder {
	if engine == EndianEngine(binary.BigEndian) {
		return format.BigEndian
	}

	return format.LittleEndian
}
