// Package compress provides interchangeable whole-buffer codecs behind a common
// Codec interface.
//
// The static Huffman codec is registered next to general-purpose compressors so
// that callers can select an algorithm by format.CompressionType and compare
// them on the same input:
//   - None: No compression, returns its input
//   - Zstd: Best ratio on structured data, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fastest decompression, moderate ratio
//   - Huffman: Order-0 entropy coding with an explicit code table
//
// # Architecture
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Built-in codecs are stateless values that are safe for concurrent use.
// Encoders and decoders that benefit from warm state are pooled internally.
//
// # Selecting a Codec
//
//	codec, err := compress.GetCodec(format.CompressionHuffman)
//	compressed, err := codec.Compress(data)
//	original, err := codec.Decompress(compressed)
//
// # Comparing Codecs
//
// Measure runs a full round trip and reports sizes and timings:
//
//	for _, typ := range format.CompressionTypes {
//	    stats, err := compress.Measure(typ, data)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("%-8s %6.2f%%\n", typ, stats.SpaceSavings())
//	}
//
// EntropyBaseline reports the huff0 single-stream size of the same input, a
// reference for how close the static Huffman codec gets to a tuned
// implementation with a compact table.
//
// # Zstd Backends
//
// Zstd uses github.com/klauspost/compress/zstd unless the package is built with
// the gozstd tag and cgo, in which case github.com/valyala/gozstd is used. Both
// produce standard Zstandard frames.
package compress
