// Package codec encodes byte streams into the self-describing Huffman format and
// decodes them back.
//
// Two surfaces share one wire format:
//
//   - Buffer: Encoder.Encode and Decoder.Decode take and return byte slices. The
//     returned slice is newly allocated and owned by the caller.
//   - Stream: Encoder.EncodeStream and Decoder.DecodeStream read from and write to
//     caller-owned streams. Encoding reads the source twice, so it must be an
//     io.ReadSeeker; callers with a non-seekable source must buffer it first.
//
// Every call builds its own tree, derives its own code table and releases both
// before returning, so Encoder and Decoder values hold only configuration and are
// safe for concurrent use.
//
// # Encoding Workflow
//
//	enc, err := codec.NewEncoder()
//	encoded, err := enc.Encode(data)
//
// # Decoding Workflow
//
//	dec, err := codec.NewDecoder(codec.WithMaxDecodedSize(64 << 20))
//	data, err := dec.Decode(encoded)
//	if errors.Is(err, errs.ErrTruncatedInput) {
//	    // input was cut short
//	}
package codec
