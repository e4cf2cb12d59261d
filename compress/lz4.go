package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression.
//
// LZ4 blocks do not record their decompressed size, so Compress prefixes the
// block with the input length as a uvarint and Decompress allocates exactly
// that much.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a length-prefixed LZ4 block.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))
	n := binary.PutUvarint(dst, uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	m, err := lc.CompressBlock(data, dst[n:])
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n+m], nil
}

// Decompress decompresses a block produced by Compress.
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: a malformed length prefix, ErrDecompressedTooLarge, or an LZ4 error
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, fmt.Errorf("lz4 decompression failed: invalid length prefix")
	}
	if size > MaxDecompressedSize {
		return nil, fmt.Errorf("lz4: %w: %d bytes", ErrDecompressedTooLarge, size)
	}

	buf := make([]byte, size)
	m, err := lz4.UncompressBlock(data[n:], buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if uint64(m) != size {
		return nil, fmt.Errorf("lz4 decompression failed: got %d bytes, header declares %d", m, size)
	}

	return buf, nil
}
