package encoding

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/arloliu/huffman/code"
	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/internal/pool"
	"github.com/arloliu/huffman/tree"
)

func benchInput(size int) []byte {
	rng := rand.New(rand.NewSource(1))
	data := make([]byte, size)
	for i := range data {
		// roughly geometric symbol distribution, like text
		data[i] = byte('a' + rng.Intn(1+rng.Intn(26)))
	}

	return data
}

func BenchmarkPayloadEncoder(b *testing.B) {
	data := benchInput(64 * 1024)
	ft := freq.Count(data)
	tr := tree.Build(&ft)
	table := code.Derive(tr)
	tr.Release()

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		bb := pool.NewByteBuffer(len(data))
		enc := NewPayloadEncoder(bb, table)
		_, _ = enc.Write(data)
		_ = enc.Flush()
	}
}

func BenchmarkPayloadDecoder(b *testing.B) {
	data := benchInput(64 * 1024)
	ft := freq.Count(data)
	tr := tree.Build(&ft)
	defer tr.Release()

	bb := pool.NewByteBuffer(len(data))
	enc := NewPayloadEncoder(bb, code.Derive(tr))
	_, _ = enc.Write(data)
	_ = enc.Flush()
	payload := bb.Bytes()

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out := pool.NewByteBuffer(len(data))
		_ = NewPayloadDecoder(tr, uint32(len(data))).Decode(bytes.NewReader(payload), out)
	}
}
