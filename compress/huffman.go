package compress

import (
	"github.com/arloliu/huffman/codec"
)

// HuffmanCompressor adapts the static Huffman codec to the Codec interface.
//
// The compressed form is the self-describing encoding produced by codec.Encoder,
// so no extra framing is added.
type HuffmanCompressor struct {
	enc *codec.Encoder
	dec *codec.Decoder
}

var _ Codec = (*HuffmanCompressor)(nil)

// NewHuffmanCompressor creates a Huffman compressor with default codec options.
//
// Returns:
//   - HuffmanCompressor: New Huffman compressor instance
func NewHuffmanCompressor() HuffmanCompressor {
	// Default options never fail.
	enc, _ := codec.NewEncoder()
	dec, _ := codec.NewDecoder()

	return HuffmanCompressor{enc: enc, dec: dec}
}

// Compress encodes data with a code table built from its byte frequencies.
func (c HuffmanCompressor) Compress(data []byte) ([]byte, error) {
	return c.enc.Encode(data)
}

// Decompress decodes data produced by Compress.
func (c HuffmanCompressor) Decompress(data []byte) ([]byte, error) {
	return c.dec.Decode(data)
}
