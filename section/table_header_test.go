package section

import (
	"testing"

	"github.com/arloliu/huffman/errs"
	"github.com/stretchr/testify/require"
)

func TestTableHeader_Bytes(t *testing.T) {
	h := TableHeader{EntryCount: 3, DecodedCount: 6}

	data := h.Bytes()

	require.Len(t, data, HeaderSize)
	require.Equal(t, []byte{0, 0, 0, 3, 0, 0, 0, 6}, data)
}

func TestTableHeader_Parse(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		original := TableHeader{EntryCount: 256, DecodedCount: 0xDEADBEEF}

		parsed := &TableHeader{}
		err := parsed.Parse(original.Bytes())

		require.NoError(t, err)
		require.Equal(t, original, *parsed)
	})

	t.Run("Empty input header", func(t *testing.T) {
		h, err := ParseTableHeader(make([]byte, HeaderSize))

		require.NoError(t, err)
		require.Equal(t, TableHeader{}, h)
	})

	t.Run("Invalid size", func(t *testing.T) {
		header := &TableHeader{}
		err := header.Parse([]byte{1, 2, 3})

		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Too many entries", func(t *testing.T) {
		data := (&TableHeader{EntryCount: 257, DecodedCount: 1}).Bytes()

		_, err := ParseTableHeader(data)
		require.ErrorIs(t, err, errs.ErrMalformedHeader)
	})

	t.Run("No entries with decoded bytes", func(t *testing.T) {
		data := (&TableHeader{EntryCount: 0, DecodedCount: 1}).Bytes()

		_, err := ParseTableHeader(data)
		require.ErrorIs(t, err, errs.ErrMalformedHeader)
	})
}

func TestTableHeader_Append(t *testing.T) {
	h := TableHeader{EntryCount: 1, DecodedCount: 2}

	data := h.Append([]byte{0xAA})

	require.Equal(t, []byte{0xAA, 0, 0, 0, 1, 0, 0, 0, 2}, data)
}
