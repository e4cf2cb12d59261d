package codec

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/huffman/code"
	"github.com/arloliu/huffman/encoding"
	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/internal/options"
	"github.com/arloliu/huffman/internal/pool"
	"github.com/arloliu/huffman/section"
	"github.com/arloliu/huffman/tree"
)

// Encoder produces the encoded form of byte buffers and streams.
type Encoder struct {
	initialCapacity int
	bufferSize      int
}

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{bufferSize: DefaultStreamBufferSize}
	if err := options.Apply(e, opts...); err != nil {
		return nil, fmt.Errorf("failed to apply encoder options: %w", err)
	}

	return e, nil
}

// Encode encodes data and returns the header followed by the payload.
//
// Returns:
//   - []byte: newly allocated encoded bytes owned by the caller
//   - error: ErrInputTooLarge if data exceeds the 32-bit decoded size field
func (e *Encoder) Encode(data []byte) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInputTooLarge, len(data))
	}

	ft := freq.Count(data)
	table := buildTable(&ft)

	size := e.initialCapacity
	if size == 0 {
		size = encodedSize(table, &ft)
	}

	bb := pool.NewByteBuffer(size)
	bb.B = section.AppendCodeTable(bb.B, table, uint32(len(data)))

	enc := encoding.NewPayloadEncoder(bb, table)
	if _, err := enc.Write(data); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	return bb.Bytes(), nil
}

// EncodeStream encodes src into dst.
//
// src is read twice: once to count symbols and, after seeking back to the offset
// it had on entry, once to encode. dst is written through a buffer that is
// flushed before EncodeStream returns successfully.
func (e *Encoder) EncodeStream(dst io.Writer, src io.ReadSeeker) error {
	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("locate source: %w", err)
	}

	ft, err := freq.CountReader(src)
	if err != nil {
		return err
	}
	if ft.Total > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", errs.ErrInputTooLarge, ft.Total)
	}

	table := buildTable(&ft)

	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("rewind source: %w", err)
	}

	bw := bufio.NewWriterSize(dst, e.bufferSize)

	hb := pool.GetHeaderBuffer()
	hb.B = section.AppendCodeTable(hb.B, table, uint32(ft.Total))
	_, err = bw.Write(hb.B)
	pool.PutHeaderBuffer(hb)
	if err != nil {
		return fmt.Errorf("write code table: %w", err)
	}

	enc := encoding.NewPayloadEncoder(bw, table)
	if _, err := io.Copy(enc, src); err != nil {
		return err
	}
	if enc.Symbols() != ft.Total {
		return fmt.Errorf("%w: source yielded %d bytes on the second pass, counted %d",
			errs.ErrInvalidCodeTable, enc.Symbols(), ft.Total)
	}
	if err := enc.Flush(); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	return nil
}

// buildTable derives the code table for ft. The tree is released once the codes
// have been derived.
func buildTable(ft *freq.Table) *code.Table {
	tr := tree.Build(ft)
	defer tr.Release()

	return code.Derive(tr)
}

func encodedSize(table *code.Table, ft *freq.Table) int {
	payloadBits := table.EncodedBits(ft)
	return section.EncodedTableSize(table) + int((payloadBits+7)/8) //nolint:gosec // bounded by input size
}
