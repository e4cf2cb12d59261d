package section

import (
	"fmt"

	"github.com/arloliu/huffman/endian"
	"github.com/arloliu/huffman/errs"
)

var engine = endian.GetBigEndianEngine()

// TableHeader is the fixed-size preamble of the code table.
type TableHeader struct {
	// EntryCount is the number of table entries, at most MaxEntries.
	EntryCount uint32 // byte offset 0-3
	// DecodedCount is the number of bytes the payload decodes to.
	DecodedCount uint32 // byte offset 4-7
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 8 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is too short, ErrMalformedHeader if inconsistent
func (h *TableHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.EntryCount = engine.Uint32(data[0:4])
	h.DecodedCount = engine.Uint32(data[4:8])

	return h.Validate()
}

// Bytes serializes the TableHeader into a byte slice.
func (h *TableHeader) Bytes() []byte {
	return h.Append(make([]byte, 0, HeaderSize))
}

// Append appends the serialized header to dst.
func (h *TableHeader) Append(dst []byte) []byte {
	dst = engine.AppendUint32(dst, h.EntryCount)
	return engine.AppendUint32(dst, h.DecodedCount)
}

// Validate checks the header invariants.
//
// Returns:
//   - error: ErrMalformedHeader if EntryCount exceeds MaxEntries, or if EntryCount
//     is zero while DecodedCount is not
func (h *TableHeader) Validate() error {
	if h.EntryCount > MaxEntries {
		return fmt.Errorf("%w: entry count %d exceeds %d", errs.ErrMalformedHeader, h.EntryCount, MaxEntries)
	}

	if h.EntryCount == 0 && h.DecodedCount != 0 {
		return fmt.Errorf("%w: no entries for %d decoded bytes", errs.ErrMalformedHeader, h.DecodedCount)
	}

	return nil
}

// ParseTableHeader parses a TableHeader from the start of data.
func ParseTableHeader(data []byte) (TableHeader, error) {
	h := TableHeader{}
	if err := h.Parse(data); err != nil {
		return TableHeader{}, err
	}

	return h, nil
}
