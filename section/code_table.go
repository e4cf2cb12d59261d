package section

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/huffman/code"
	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/internal/bits"
	"github.com/arloliu/huffman/tree"
)

// EncodedTableSize returns the serialized size of t, preamble included.
func EncodedTableSize(t *code.Table) int {
	size := HeaderSize
	for _, sym := range t.Symbols() {
		size += EntryHeaderSize + bits.NumBytes(int(t.At(sym).Len))
	}

	return size
}

// AppendCodeTable appends the serialized code table for t to dst.
//
// Entries are written in ascending symbol order, so the output is reproducible
// for a given table.
func AppendCodeTable(dst []byte, t *code.Table, decoded uint32) []byte {
	h := TableHeader{EntryCount: uint32(t.Len()), DecodedCount: decoded} //nolint:gosec // at most 256 entries
	dst = h.Append(dst)

	for _, sym := range t.Symbols() {
		c := t.At(sym)
		dst = append(dst, sym, c.Len)
		dst = append(dst, c.Bytes()...)
	}

	return dst
}

// ReadCodeTable reads a serialized code table from r and rebuilds its tree.
//
// The returned tree is owned by the caller, who must release it. On error no
// tree is returned and everything built so far has been released.
//
// Returns:
//   - *tree.Tree: the rebuilt tree, empty when the table has no entries
//   - TableHeader: the parsed preamble
//   - error: ErrTruncatedInput, ErrMalformedHeader or ErrInvalidCodeTable
func ReadCodeTable(r io.Reader) (*tree.Tree, TableHeader, error) {
	var buf [HeaderSize]byte
	if err := readFull(r, buf[:], "header"); err != nil {
		return nil, TableHeader{}, err
	}

	h, err := ParseTableHeader(buf[:])
	if err != nil {
		return nil, TableHeader{}, err
	}

	rb := tree.NewRebuilder(int(h.EntryCount))
	var packed [MaxEntryBytes]byte
	for i := uint32(0); i < h.EntryCount; i++ {
		if err := readFull(r, buf[:EntryHeaderSize], "entry"); err != nil {
			rb.Release()
			return nil, TableHeader{}, err
		}

		symbol, bitLen := buf[0], buf[1]
		codeBits := packed[:bits.NumBytes(int(bitLen))]
		if err := readFull(r, codeBits, "entry bits"); err != nil {
			rb.Release()
			return nil, TableHeader{}, err
		}

		if err := rb.Insert(symbol, bitLen, codeBits); err != nil {
			rb.Release()
			return nil, TableHeader{}, err
		}
	}

	return rb.Tree(), h, nil
}

func readFull(r io.Reader, buf []byte, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: reading code table %s", errs.ErrTruncatedInput, what)
		}

		return fmt.Errorf("read code table %s: %w", what, err)
	}

	return nil
}
