//go:build !gozstd || !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Pooled coders run without allocations once warm. EncodeAll and DecodeAll keep
// no state between calls, so a coder can go back to the pool after any result.
var (
	zstdEncoderPool = sync.Pool{
		New: func() any {
			return mustZstd(zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderCRC(false),
			))
		},
	}
	zstdDecoderPool = sync.Pool{
		New: func() any {
			return mustZstd(zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecoderLowmem(false),
				zstd.WithDecoderMaxMemory(MaxDecompressedSize),
			))
		},
	}
)

func mustZstd[T any](coder T, err error) T {
	if err != nil {
		panic(fmt.Sprintf("failed to create pooled zstd coder: %v", err))
	}

	return coder
}

// Compress compresses data into a Zstandard frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses Zstandard frames. Output above MaxDecompressedSize is
// rejected by the decoder.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}
