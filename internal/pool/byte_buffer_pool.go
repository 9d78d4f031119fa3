package pool

import "sync"

// Snapshot payloads are two float64 columns of at most a window's
// capacity, so buffers stay small. The threshold keeps a pathological
// oversized buffer from being retained by the pool.
const (
	SnapshotBufferDefaultSize  = 4 * 1024  // 4KiB, ~128 sample pairs uncompressed
	SnapshotBufferMaxThreshold = 64 * 1024 // 64KiB
)

// ByteBuffer is a reusable byte slice with append-style helpers.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but retains the allocated memory for reuse.
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

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// ByteBufferPool pools ByteBuffers to minimize allocations on the
// snapshot encode path.
//
// Buffers whose capacity has grown beyond maxThreshold are dropped
// instead of being returned to the pool.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool producing buffers of defaultSize
// capacity and retaining them up to maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// Put returns a ByteBuffer to the pool unless it outgrew the threshold.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil || bb.Cap() > p.maxThreshold {
		return
	}
	p.pool.Put(bb)
}

var snapshotBufferPool = NewByteBufferPool(SnapshotBufferDefaultSize, SnapshotBufferMaxThreshold)

// GetSnapshotBuffer retrieves an empty buffer sized for snapshot encoding.
func GetSnapshotBuffer() *ByteBuffer {
	return snapshotBufferPool.Get()
}

// PutSnapshotBuffer returns a snapshot buffer to the shared pool.
func PutSnapshotBuffer(bb *ByteBuffer) {
	snapshotBufferPool.Put(bb)
}
