package format

import (
	"fmt"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone    CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd    CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2      CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4     CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionHuffman CompressionType = 0x5 // CompressionHuffman represents static Huffman coding.
)

// CompressionTypes lists every known compression type in declaration order.
var CompressionTypes = []CompressionType{
	CompressionNone,
	CompressionZstd,
	CompressionS2,
	CompressionLZ4,
	CompressionHuffman,
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
	case CompressionHuffman:
		return "Huffman"
	default:
		return "Unknown"
	}
}

// ParseCompressionType returns the compression type named s, ignoring case.
func ParseCompressionType(s string) (CompressionType, error) {
	for _, c := range CompressionTypes {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown compression type: %q", s)
}
