package compress

import "errors"

// MaxDecompressedSize bounds the output of every built-in decompressor that can
// learn its output size before decoding.
const MaxDecompressedSize = 1 << 30 // 1GiB

// ErrDecompressedTooLarge is returned when compressed data declares an output
// above MaxDecompressedSize.
var ErrDecompressedTooLarge = errors.New("decompressed size exceeds limit")
