package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteBufferMustWrite(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("hello"))
	bb.MustWrite([]byte(" world"))

	assert.Equal(t, []byte("hello world"), bb.Bytes())
	assert.Equal(t, 11, bb.Len())
}

func TestByteBufferReset(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("data"))
	before := bb.Cap()

	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, before, bb.Cap(), "Reset must retain allocated memory")
}

func TestByteBufferPoolGetReturnsEmpty(t *testing.T) {
	p := NewByteBufferPool(16, 1024)

	bb := p.Get()
	bb.MustWrite([]byte("leftover"))
	p.Put(bb)

	bb = p.Get()
	assert.Equal(t, 0, bb.Len(), "pooled buffer must come back empty")
}

func TestByteBufferPoolDropsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.MustWrite(make([]byte, 64)) // grows beyond threshold
	p.Put(bb)                      // must be dropped, not pooled

	next := p.Get()
	assert.LessOrEqual(t, next.Cap(), 32)
}

func TestGetFloat64Slice(t *testing.T) {
	s, cleanup := GetFloat64Slice(10)
	defer cleanup()

	require.Len(t, s, 10)
}

func TestGetFloat64SliceReuse(t *testing.T) {
	s, cleanup := GetFloat64Slice(100)
	for i := range s {
		s[i] = float64(i)
	}
	cleanup()

	s2, cleanup2 := GetFloat64Slice(5)
	defer cleanup2()
	require.Len(t, s2, 5)
}
