// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package combines encoding/binary's ByteOrder and AppendByteOrder
// interfaces into a unified EndianEngine interface, so serializers can both
// decode fixed-size fields in place and append them to growing buffers.
//
// The code table preamble is always in network byte order:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, entryCount)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian (network order) engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
