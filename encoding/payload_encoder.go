package encoding

import (
	"fmt"
	"io"

	"github.com/arloliu/huffman/code"
	"github.com/arloliu/huffman/errs"
)

// PayloadEncoder appends Huffman codes to a bit stream.
//
// Bytes are written to the underlying writer as soon as eight bits have
// accumulated; call Flush after the last Write to emit a trailing partial byte.
type PayloadEncoder struct {
	w     io.ByteWriter
	table *code.Table
	acc   byte
	nbits uint8
	total uint64
	count uint64
}

// NewPayloadEncoder creates a PayloadEncoder writing to w with codes from table.
func NewPayloadEncoder(w io.ByteWriter, table *code.Table) *PayloadEncoder {
	return &PayloadEncoder{w: w, table: table}
}

// Write encodes every byte of p. A byte without a code in the table fails with
// errs.ErrInvalidCodeTable, which happens when a stream changes between the
// counting pass and the encoding pass.
func (e *PayloadEncoder) Write(p []byte) (int, error) {
	for i, sym := range p {
		if !e.table.Has(sym) {
			return i, fmt.Errorf("%w: symbol %d has no code", errs.ErrInvalidCodeTable, sym)
		}

		c := e.table.At(sym)
		for b := 0; b < int(c.Len); b++ {
			e.acc |= c.Bit(b) << e.nbits
			e.nbits++
			if e.nbits == 8 {
				if err := e.w.WriteByte(e.acc); err != nil {
					return i, fmt.Errorf("write payload: %w", err)
				}
				e.acc, e.nbits = 0, 0
			}
		}
		e.total += uint64(c.Len)
		e.count++
	}

	return len(p), nil
}

// Flush writes any buffered bits as a final zero-padded byte.
func (e *PayloadEncoder) Flush() error {
	if e.nbits == 0 {
		return nil
	}

	if err := e.w.WriteByte(e.acc); err != nil {
		return fmt.Errorf("flush payload: %w", err)
	}
	e.acc, e.nbits = 0, 0

	return nil
}

// Bits returns the number of code bits written so far, padding excluded.
func (e *PayloadEncoder) Bits() uint64 {
	return e.total
}

// Symbols returns the number of symbols encoded so far.
func (e *PayloadEncoder) Symbols() uint64 {
	return e.count
}
