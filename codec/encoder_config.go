package codec

import (
	"fmt"

	"github.com/arloliu/huffman/internal/options"
)

// DefaultStreamBufferSize is the bufio size used by the stream surfaces.
const DefaultStreamBufferSize = 32 * 1024

// EncoderOption represents a functional option for configuring an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithInitialCapacity sets the initial capacity of the output buffer used by Encode.
//
// By default the exact encoded size is computed from the code table before any
// payload byte is written. A smaller value makes the buffer grow while encoding.
func WithInitialCapacity(n int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if n < 0 {
			return fmt.Errorf("invalid initial capacity: %d", n)
		}
		e.initialCapacity = n

		return nil
	})
}

// WithStreamBufferSize sets the write buffer size used by EncodeStream.
func WithStreamBufferSize(n int) EncoderOption {
	return options.New(func(e *Encoder) error {
		if n <= 0 {
			return fmt.Errorf("invalid stream buffer size: %d", n)
		}
		e.bufferSize = n

		return nil
	})
}
