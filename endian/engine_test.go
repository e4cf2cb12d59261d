package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Equal(t, binary.BigEndian, engine)

	buf := engine.AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf))

	out := make([]byte, 4)
	engine.PutUint32(out, 6)
	require.Equal(t, []byte{0, 0, 0, 6}, out)
}

func BenchmarkAppendUint32(b *testing.B) {
	engine := GetBigEndianEngine()
	buf := make([]byte, 0, 8)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = engine.AppendUint32(buf[:0], uint32(i))
	}
}
