package compress

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arloliu/huffman/format"
)

// Compressor compresses whole buffers.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller, except for
	//     NoOpCompressor which returns its input
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Example:
//
//	decompressor := NewHuffmanCompressor()
//	originalData, err := decompressor.Decompress(compressedPayload)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Error conditions:
	//   - Returns error if input data is corrupted or truncated
	//   - Returns error if data was compressed with an incompatible algorithm
	Decompress(data []byte) ([]byte, error)
}

// Codec compresses and decompresses with one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compress and decompress cycle over a buffer.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// Ratio is the ratio of compressed size to original size (< 1.0 for compression)
	Ratio float64

	// CompressionTimeNs is the wall time of Compress in nanoseconds
	CompressionTimeNs int64

	// DecompressionTimeNs is the wall time of Decompress in nanoseconds
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size over original size, or 0 for empty
// input. Values above 1.0 mean the output grew, which the Huffman codec does on
// small or uniformly random input because of its code table.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the percentage of the original size saved. It is
// negative when the output grew.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec returns a new Codec for compressionType. target names the data
// being configured and only appears in the error message.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionHuffman:
		return NewHuffmanCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone:    NewNoOpCompressor(),
	format.CompressionZstd:    NewZstdCompressor(),
	format.CompressionS2:      NewS2Compressor(),
	format.CompressionLZ4:     NewLZ4Compressor(),
	format.CompressionHuffman: NewHuffmanCompressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if c, ok := builtinCodecs[compressionType]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Measure compresses data with the built-in codec for compressionType, decompresses
// the result and reports sizes and timings.
//
// Returns:
//   - CompressionStats: sizes, ratio and elapsed times
//   - error: unsupported type, codec failure, or a round trip that did not
//     reproduce data
func Measure(compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return CompressionStats{}, err
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	compressTime := time.Since(start)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s compress: %w", compressionType, err)
	}

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	decompressTime := time.Since(start)
	if err != nil {
		return CompressionStats{}, fmt.Errorf("%s decompress: %w", compressionType, err)
	}

	if !bytes.Equal(restored, data) {
		return CompressionStats{}, fmt.Errorf("%s round trip mismatch: got %d bytes, want %d",
			compressionType, len(restored), len(data))
	}

	stats := CompressionStats{
		Algorithm:           compressionType,
		OriginalSize:        int64(len(data)),
		CompressedSize:      int64(len(compressed)),
		CompressionTimeNs:   compressTime.Nanoseconds(),
		DecompressionTimeNs: decompressTime.Nanoseconds(),
	}
	stats.Ratio = stats.CompressionRatio()

	return stats, nil
}
