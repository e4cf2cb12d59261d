package hash

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty input", "", 0xef46db3751d8e999},
		{"short input", "test", 0x4fdcca5ddb678139},
		{"long input", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another input", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum([]byte(tt.data)))

			sum, n, err := ChecksumReader(bytes.NewReader([]byte(tt.data)))
			require.NoError(t, err)
			assert.Equal(t, tt.sum, sum)
			assert.Equal(t, int64(len(tt.data)), n)
		})
	}
}

func TestDigest(t *testing.T) {
	d := NewDigest()
	_, err := d.Write([]byte("te"))
	require.NoError(t, err)
	_, err = d.Write([]byte("st"))
	require.NoError(t, err)
	assert.Equal(t, Checksum([]byte("test")), d.Sum64())
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestChecksumReader_Error(t *testing.T) {
	_, _, err := ChecksumReader(errReader{})
	require.Error(t, err)
}

func randBytes(n int) []byte {
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	seededRand.Read(b)

	return b
}

func BenchmarkChecksum(b *testing.B) {
	data := randBytes(64 * 1024)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for b.Loop() {
		Checksum(data)
	}
}
