package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/huffman/encoding"
	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/internal/options"
	"github.com/arloliu/huffman/internal/pool"
	"github.com/arloliu/huffman/section"
	"github.com/arloliu/huffman/tree"
)

// Decoder reconstructs original bytes from the encoded form.
type Decoder struct {
	maxDecodedSize uint32
	bufferSize     int
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{bufferSize: DefaultStreamBufferSize}
	if err := options.Apply(d, opts...); err != nil {
		return nil, fmt.Errorf("failed to apply decoder options: %w", err)
	}

	return d, nil
}

// Decode decodes an encoded buffer.
//
// Bytes after the last payload bit needed for the declared size are ignored.
//
// Returns:
//   - []byte: newly allocated decoded bytes owned by the caller
//   - error: ErrMalformedHeader, ErrTruncatedInput, ErrInvalidCodeTable,
//     ErrInvalidPayload or ErrAllocationFailure
func (d *Decoder) Decode(data []byte) ([]byte, error) {
	r := bytes.NewReader(data)

	tr, h, err := section.ReadCodeTable(r)
	if err != nil {
		return nil, err
	}
	defer tr.Release()

	if err := d.checkDecodedSize(h); err != nil {
		return nil, err
	}

	// Every symbol of a multi-level tree costs at least one payload bit.
	if !singleLeaf(tr) && uint64(h.DecodedCount) > 8*uint64(r.Len()) {
		return nil, fmt.Errorf("%w: %d payload bytes cannot hold %d symbols",
			errs.ErrTruncatedInput, r.Len(), h.DecodedCount)
	}

	out := pool.NewByteBuffer(int(h.DecodedCount))
	if err := encoding.NewPayloadDecoder(tr, h.DecodedCount).Decode(r, out); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// DecodeStream decodes src into dst.
//
// dst is written through a buffer that is flushed only on success. src may be
// read past the end of the payload.
func (d *Decoder) DecodeStream(dst io.Writer, src io.Reader) error {
	br := bufio.NewReaderSize(src, d.bufferSize)

	tr, h, err := section.ReadCodeTable(br)
	if err != nil {
		return err
	}
	defer tr.Release()

	if err := d.checkDecodedSize(h); err != nil {
		return err
	}

	bw := bufio.NewWriterSize(dst, d.bufferSize)
	if err := encoding.NewPayloadDecoder(tr, h.DecodedCount).Decode(br, bw); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

func (d *Decoder) checkDecodedSize(h section.TableHeader) error {
	if d.maxDecodedSize > 0 && h.DecodedCount > d.maxDecodedSize {
		return fmt.Errorf("%w: declared size %d exceeds limit %d",
			errs.ErrAllocationFailure, h.DecodedCount, d.maxDecodedSize)
	}

	if uint64(h.DecodedCount) > math.MaxInt {
		return fmt.Errorf("%w: declared size %d exceeds addressable memory",
			errs.ErrAllocationFailure, h.DecodedCount)
	}

	return nil
}

func singleLeaf(tr *tree.Tree) bool {
	return !tr.Empty() && tr.Node(tr.Root()).Leaf
}
