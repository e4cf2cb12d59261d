package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		typ  CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionHuffman, "Huffman"},
		{CompressionType(0), "Unknown"},
		{CompressionType(0xFF), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestParseCompressionType(t *testing.T) {
	for _, c := range CompressionTypes {
		got, err := ParseCompressionType(c.String())
		require.NoError(t, err)
		require.Equal(t, c, got)
	}

	got, err := ParseCompressionType("huffman")
	require.NoError(t, err)
	require.Equal(t, CompressionHuffman, got)

	got, err = ParseCompressionType("ZSTD")
	require.NoError(t, err)
	require.Equal(t, CompressionZstd, got)

	_, err = ParseCompressionType("brotli")
	require.Error(t, err)

	_, err = ParseCompressionType("Unknown")
	require.Error(t, err)
}
