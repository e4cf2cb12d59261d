package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/huff0"
)

var huff0ScratchPool = sync.Pool{
	New: func() any {
		return &huff0.Scratch{}
	},
}

// EntropyBaseline returns the size of data after single-stream huff0 compression.
//
// huff0 uses length-limited canonical codes with a compact table, so the result is
// a lower reference point for the static Huffman codec. Input that huff0 refuses
// to compress reports its own length; a run of one repeated byte reports 1.
func EntropyBaseline(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}

	s, _ := huff0ScratchPool.Get().(*huff0.Scratch)
	defer huff0ScratchPool.Put(s)

	out, _, err := huff0.Compress1X(data, s)
	switch {
	case err == nil:
		return len(out), nil
	case errors.Is(err, huff0.ErrIncompressible):
		return len(data), nil
	case errors.Is(err, huff0.ErrUseRLE):
		return 1, nil
	default:
		return 0, fmt.Errorf("huff0 compress: %w", err)
	}
}
