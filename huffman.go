// Package huffman provides a static Huffman codec for arbitrary byte data.
//
// The encoded form is self-describing: a code table built from the symbol
// frequencies of the input is written ahead of the packed payload, so a decoder
// needs nothing but the encoded bytes to reconstruct the original.
//
// # Core Features
//
//   - Byte-oriented alphabet of 256 symbols
//   - Deterministic code assignment: equal input always yields equal output
//   - Buffer and stream surfaces sharing one wire format
//   - Typed errors for malformed, truncated and inconsistent input
//   - Pooled tree arenas and output buffers
//
// # Basic Usage
//
// Encoding and decoding a buffer:
//
//	import "github.com/arloliu/huffman"
//
//	encoded, err := huffman.Encode([]byte("aaabbc"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, err := huffman.Decode(encoded)
//
// Encoding a file into another file:
//
//	in, _ := os.Open("input.bin")
//	out, _ := os.Create("input.bin.huf")
//	err := huffman.EncodeStream(out, in)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec package.
// For custom buffer sizes or decoded size limits, create an encoder or decoder
// with options. The wire layout is documented in the section package.
package huffman

import (
	"io"

	"github.com/arloliu/huffman/codec"
	"github.com/arloliu/huffman/internal/hash"
)

var (
	defaultEncoder = mustEncoder()
	defaultDecoder = mustDecoder()
)

func mustEncoder() *codec.Encoder {
	enc, err := codec.NewEncoder()
	if err != nil {
		panic(err)
	}

	return enc
}

func mustDecoder() *codec.Decoder {
	dec, err := codec.NewDecoder()
	if err != nil {
		panic(err)
	}

	return dec
}

// NewEncoder creates an encoder with custom options.
//
// Available options:
//   - codec.WithInitialCapacity(n): initial output buffer size for Encode
//   - codec.WithStreamBufferSize(n): write buffer size for EncodeStream
//
// Example:
//
//	enc, err := huffman.NewEncoder(codec.WithStreamBufferSize(1 << 20))
func NewEncoder(opts ...codec.EncoderOption) (*codec.Encoder, error) {
	return codec.NewEncoder(opts...)
}

// NewDecoder creates a decoder with custom options.
//
// Available options:
//   - codec.WithMaxDecodedSize(n): reject headers declaring more than n bytes
//   - codec.WithDecoderBufferSize(n): read and write buffer size for DecodeStream
//
// Example:
//
//	dec, err := huffman.NewDecoder(codec.WithMaxDecodedSize(64 << 20))
func NewDecoder(opts ...codec.DecoderOption) (*codec.Decoder, error) {
	return codec.NewDecoder(opts...)
}

// Encode encodes data with default options.
//
// Returns:
//   - []byte: the code table followed by the payload, owned by the caller
//   - error: errs.ErrInputTooLarge if data exceeds 4GiB
func Encode(data []byte) ([]byte, error) {
	return defaultEncoder.Encode(data)
}

// Decode decodes data produced by Encode or EncodeStream with default options.
//
// Returns:
//   - []byte: the original bytes, owned by the caller
//   - error: one of the errs sentinels describing why data is not a valid encoding
func Decode(data []byte) ([]byte, error) {
	return defaultDecoder.Decode(data)
}

// EncodeStream encodes src into dst with default options.
//
// src is read from its current offset to EOF twice, seeking back in between.
func EncodeStream(dst io.Writer, src io.ReadSeeker) error {
	return defaultEncoder.EncodeStream(dst, src)
}

// DecodeStream decodes src into dst with default options.
func DecodeStream(dst io.Writer, src io.Reader) error {
	return defaultDecoder.DecodeStream(dst, src)
}

// Checksum returns the 64-bit xxHash of data.
//
// The wire format carries no checksum; callers that need integrity checks can
// store Checksum of the original next to the encoded bytes and compare after
// decoding.
func Checksum(data []byte) uint64 {
	return hash.Checksum(data)
}
