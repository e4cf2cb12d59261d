package codec

import (
	"fmt"

	"github.com/arloliu/huffman/internal/options"
)

// DecoderOption represents a functional option for configuring a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithMaxDecodedSize limits the decoded size a header may declare. Headers above
// the limit fail with errs.ErrAllocationFailure before any output is allocated.
// Zero means no limit, which is the default.
func WithMaxDecodedSize(n uint32) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.maxDecodedSize = n
	})
}

// WithDecoderBufferSize sets the read and write buffer sizes used by DecodeStream.
func WithDecoderBufferSize(n int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if n <= 0 {
			return fmt.Errorf("invalid stream buffer size: %d", n)
		}
		d.bufferSize = n

		return nil
	})
}
