package codec

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/section"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T) (*Encoder, *Decoder) {
	t.Helper()
	enc, err := NewEncoder()
	require.NoError(t, err)
	dec, err := NewDecoder()
	require.NoError(t, err)

	return enc, dec
}

func testInputs() map[string][]byte {
	rng := rand.New(rand.NewSource(2024))

	random := make([]byte, 50_000)
	rng.Read(random)

	skewed := make([]byte, 20_000)
	for i := range skewed {
		skewed[i] = byte(rng.ExpFloat64() * 4)
	}

	allSymbols := make([]byte, 0, 256*3)
	for i := 0; i < 256; i++ {
		allSymbols = append(allSymbols, byte(i), byte(i), byte(255-i))
	}

	return map[string][]byte{
		"Empty":           {},
		"Single byte":     {0x42},
		"Repeated byte":   bytes.Repeat([]byte{0x00}, 1000),
		"Two symbols":     []byte("abababababbbbbbb"),
		"Fixed example":   []byte("aaabbc"),
		"Text":            []byte("It was the best of times, it was the worst of times, it was the age of wisdom"),
		"Random":          random,
		"Skewed":          skewed,
		"All byte values": allSymbols,
	}
}

func TestRoundTrip(t *testing.T) {
	enc, dec := newCodec(t)

	for name, input := range testInputs() {
		t.Run(name, func(t *testing.T) {
			encoded, err := enc.Encode(input)
			require.NoError(t, err)

			decoded, err := dec.Decode(encoded)
			require.NoError(t, err)
			require.True(t, bytes.Equal(input, decoded))
		})
	}
}

func TestRoundTrip_Stream(t *testing.T) {
	enc, dec := newCodec(t)

	for name, input := range testInputs() {
		t.Run(name, func(t *testing.T) {
			var encoded bytes.Buffer
			require.NoError(t, enc.EncodeStream(&encoded, bytes.NewReader(input)))

			// Both surfaces produce identical bytes.
			fromBuffer, err := enc.Encode(input)
			require.NoError(t, err)
			require.Equal(t, fromBuffer, encoded.Bytes())

			var decoded bytes.Buffer
			require.NoError(t, dec.DecodeStream(&decoded, bytes.NewReader(encoded.Bytes())))
			require.True(t, bytes.Equal(input, decoded.Bytes()))
		})
	}
}

func TestHeaderConsistency(t *testing.T) {
	enc, _ := newCodec(t)

	for name, input := range testInputs() {
		t.Run(name, func(t *testing.T) {
			encoded, err := enc.Encode(input)
			require.NoError(t, err)

			h, err := section.ParseTableHeader(encoded)
			require.NoError(t, err)

			distinct := map[byte]struct{}{}
			for _, c := range input {
				distinct[c] = struct{}{}
			}
			require.Equal(t, uint32(len(distinct)), h.EntryCount)
			require.Equal(t, uint32(len(input)), h.DecodedCount)
		})
	}
}

func TestEncode_FixedExample(t *testing.T) {
	enc, dec := newCodec(t)

	encoded, err := enc.Encode([]byte("aaabbc"))
	require.NoError(t, err)

	want := []byte{
		0, 0, 0, 3, // entries
		0, 0, 0, 6, // decoded bytes
		'a', 1, 0x00, // a = 0
		'b', 2, 0x03, // b = 11
		'c', 2, 0x01, // c = 10
		0xF8, 0x00, // 0,0,0,11,11,10
	}
	require.Equal(t, want, encoded)

	decoded, err := dec.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, []byte("aaabbc"), decoded)
}

func TestEncode_Degenerate(t *testing.T) {
	enc, dec := newCodec(t)

	t.Run("Empty", func(t *testing.T) {
		encoded, err := enc.Encode(nil)
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, encoded)

		decoded, err := dec.Decode(encoded)
		require.NoError(t, err)
		require.Empty(t, decoded)
	})

	t.Run("One distinct symbol", func(t *testing.T) {
		encoded, err := enc.Encode([]byte("xxx"))
		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 0, 1, 0, 0, 0, 3, 'x', 0}, encoded)

		decoded, err := dec.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, []byte("xxx"), decoded)
	})
}

func TestDecode_Truncated(t *testing.T) {
	enc, dec := newCodec(t)

	for name, input := range testInputs() {
		if len(input) > 2000 {
			continue
		}

		t.Run(name, func(t *testing.T) {
			encoded, err := enc.Encode(input)
			require.NoError(t, err)

			for cut := 0; cut < len(encoded); cut++ {
				out, err := dec.Decode(encoded[:cut])
				require.ErrorIs(t, err, errs.ErrTruncatedInput, "cut at %d", cut)
				require.Nil(t, out)

				var sink bytes.Buffer
				err = dec.DecodeStream(&sink, bytes.NewReader(encoded[:cut]))
				require.ErrorIs(t, err, errs.ErrTruncatedInput, "stream cut at %d", cut)
			}
		})
	}
}

func TestDecode_IgnoresTrailingBytes(t *testing.T) {
	enc, dec := newCodec(t)

	encoded, err := enc.Encode([]byte("abracadabra"))
	require.NoError(t, err)

	decoded, err := dec.Decode(append(encoded, 0xFF, 0xEE))
	require.NoError(t, err)
	require.Equal(t, []byte("abracadabra"), decoded)
}

func TestDecode_Malformed(t *testing.T) {
	_, dec := newCodec(t)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"Entry count above alphabet", []byte{0, 0, 1, 1, 0, 0, 0, 0}, errs.ErrMalformedHeader},
		{"Decoded bytes without entries", []byte{0, 0, 0, 0, 0, 0, 0, 1}, errs.ErrMalformedHeader},
		{"Zero-length code among many", []byte{0, 0, 0, 2, 0, 0, 0, 1, 'a', 0, 'b', 1, 1, 0}, errs.ErrInvalidCodeTable},
		{"Conflicting codes", []byte{0, 0, 0, 2, 0, 0, 0, 1, 'a', 1, 0, 'a', 1, 0, 0}, errs.ErrInvalidCodeTable},
		{"Absent branch", []byte{0, 0, 0, 1, 0, 0, 0, 2, 'a', 1, 0, 0x02}, errs.ErrInvalidPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := dec.Decode(tt.data)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, out)

			err = dec.DecodeStream(io.Discard, bytes.NewReader(tt.data))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecode_MaxDecodedSize(t *testing.T) {
	enc, _ := newCodec(t)
	dec, err := NewDecoder(WithMaxDecodedSize(10))
	require.NoError(t, err)

	small, err := enc.Encode([]byte("0123456789"))
	require.NoError(t, err)
	_, err = dec.Decode(small)
	require.NoError(t, err)

	large, err := enc.Encode([]byte("0123456789A"))
	require.NoError(t, err)
	_, err = dec.Decode(large)
	require.ErrorIs(t, err, errs.ErrAllocationFailure)

	err = dec.DecodeStream(io.Discard, bytes.NewReader(large))
	require.ErrorIs(t, err, errs.ErrAllocationFailure)
}

func TestDecode_OversizedDeclaration(t *testing.T) {
	_, dec := newCodec(t)

	// Two one-bit codes and one payload byte cannot produce a million symbols.
	data := []byte{0, 0, 0, 2, 0, 0x0F, 0x42, 0x40, 'a', 1, 0, 'b', 1, 1, 0xAA}

	_, err := dec.Decode(data)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestEncodeStream_SeeksToStartOffset(t *testing.T) {
	enc, dec := newCodec(t)

	src := bytes.NewReader([]byte("HEADERpayload data"))
	_, err := src.Seek(6, io.SeekStart)
	require.NoError(t, err)

	var encoded bytes.Buffer
	require.NoError(t, enc.EncodeStream(&encoded, src))

	decoded, err := dec.Decode(encoded.Bytes())
	require.NoError(t, err)
	require.Equal(t, []byte("payload data"), decoded)
}

// mutatingSource returns different content after the first rewind.
type mutatingSource struct {
	*bytes.Reader
	second []byte
	seeks  int
}

func (m *mutatingSource) Seek(offset int64, whence int) (int64, error) {
	m.seeks++
	if m.seeks == 2 {
		m.Reader = bytes.NewReader(m.second)
	}

	return m.Reader.Seek(offset, whence)
}

func TestEncodeStream_SourceChanged(t *testing.T) {
	enc, _ := newCodec(t)

	t.Run("New symbol", func(t *testing.T) {
		src := &mutatingSource{Reader: bytes.NewReader([]byte("aabb")), second: []byte("aabz")}
		err := enc.EncodeStream(io.Discard, src)
		require.ErrorIs(t, err, errs.ErrInvalidCodeTable)
	})

	t.Run("Different length", func(t *testing.T) {
		src := &mutatingSource{Reader: bytes.NewReader([]byte("aabb")), second: []byte("aab")}
		err := enc.EncodeStream(io.Discard, src)
		require.ErrorIs(t, err, errs.ErrInvalidCodeTable)
	})
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--

	return len(p), nil
}

func TestStream_WriteErrors(t *testing.T) {
	enc, dec := newCodec(t)
	input := bytes.Repeat([]byte("stream write failure "), 100)

	err := enc.EncodeStream(&failingWriter{}, bytes.NewReader(input))
	require.Error(t, err)

	encoded, err := enc.Encode(input)
	require.NoError(t, err)
	err = dec.DecodeStream(&failingWriter{}, bytes.NewReader(encoded))
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	t.Run("Initial capacity", func(t *testing.T) {
		enc, err := NewEncoder(WithInitialCapacity(1))
		require.NoError(t, err)
		_, dec := newCodec(t)

		input := bytes.Repeat([]byte("growable sink "), 5000)
		encoded, err := enc.Encode(input)
		require.NoError(t, err)

		decoded, err := dec.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, input, decoded)
	})

	t.Run("Small stream buffers", func(t *testing.T) {
		enc, err := NewEncoder(WithStreamBufferSize(16))
		require.NoError(t, err)
		dec, err := NewDecoder(WithDecoderBufferSize(16))
		require.NoError(t, err)

		input := bytes.Repeat([]byte("tiny buffers "), 500)
		var encoded, decoded bytes.Buffer
		require.NoError(t, enc.EncodeStream(&encoded, bytes.NewReader(input)))
		require.NoError(t, dec.DecodeStream(&decoded, &encoded))
		require.Equal(t, input, decoded.Bytes())
	})

	t.Run("Invalid values", func(t *testing.T) {
		_, err := NewEncoder(WithInitialCapacity(-1))
		require.Error(t, err)

		_, err = NewEncoder(WithStreamBufferSize(0))
		require.Error(t, err)

		_, err = NewDecoder(WithDecoderBufferSize(-5))
		require.Error(t, err)
	})
}
