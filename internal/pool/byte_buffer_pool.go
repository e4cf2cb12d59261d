package pool

import (
	"io"
	"sync"
)

// Default sizes for ByteBuffers obtained from the package pools.
const (
	SinkBufferDefaultSize    = 1024 * 16  // 16KiB
	SinkBufferMaxThreshold   = 1024 * 128 // 128KiB
	HeaderBufferDefaultSize  = 1024       // 1KiB, fits most code tables
	HeaderBufferMaxThreshold = 1024 * 16  // 16KiB
)

// ByteBuffer is an append-only byte sink with amortized O(1) appends.
//
// The in-memory encode path writes the header and every payload byte through a
// ByteBuffer and hands the materialized slice to the caller at the end.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

var (
	_ io.Writer     = (*ByteBuffer)(nil)
	_ io.ByteWriter = (*ByteBuffer)(nil)
)

// NewByteBuffer creates a ByteBuffer with defaultSize bytes of capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// Grow ensures room for requiredBytes more bytes.
//
// Buffers up to four default sizes grow in SinkBufferDefaultSize steps; larger
// ones grow by a quarter of their capacity. Either step is raised to
// requiredBytes when that is larger.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := SinkBufferDefaultSize
	if cap(bb.B) > 4*SinkBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.MustWrite(data)
	return len(data), nil
}

// WriteByte appends a single byte to the buffer, growing it as needed.
func (bb *ByteBuffer) WriteByte(c byte) error {
	if len(bb.B) == cap(bb.B) {
		bb.Grow(1)
	}
	bb.B = append(bb.B, c)

	return nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers through a sync.Pool. Buffers whose
// capacity grew past maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose fresh buffers have defaultSize capacity.
// A maxThreshold of zero keeps buffers of any size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty ByteBuffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and hands it back to the pool. Nil buffers are ignored.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var headerDefaultPool = NewByteBufferPool(HeaderBufferDefaultSize, HeaderBufferMaxThreshold)

// GetHeaderBuffer retrieves a ByteBuffer from the default header pool.
//
// Header buffers are scratch space for serializing code tables on the stream
// path; they must not escape to callers.
func GetHeaderBuffer() *ByteBuffer {
	return headerDefaultPool.Get()
}

// PutHeaderBuffer returns a ByteBuffer to the default header pool.
func PutHeaderBuffer(bb *ByteBuffer) {
	headerDefaultPool.Put(bb)
}
