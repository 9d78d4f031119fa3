// Package endian provides byte order utilities for snapshot encoding
// and decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from the
// standard encoding/binary package into a single EndianEngine interface,
// so snapshot writers can use the faster append-style operations without
// juggling two interface values.
//
// Snapshots are little-endian on the wire; GetLittleEndianEngine is what
// the snapshot package uses throughout. GetBigEndianEngine exists for
// callers embedding snapshot payloads into big-endian framing of their
// own.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from
// encoding/binary into a single interface for byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, so any
// code written against the standard library interfaces keeps working.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's
// byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the LSB (0x00) sits at the
	// lowest address; on a big-endian host the MSB (0x01) does.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
