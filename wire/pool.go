package wire

import "sync"

// Pool limits to prevent memory bloat
const poolMaxCapacity = 64 << 10

var bufferPool = sync.Pool{
	New: func() any {
		return NewBuffer()
	},
}

// Get returns an empty Buffer from the pool.
func Get() *Buffer {
	return bufferPool.Get().(*Buffer)
}

// Put returns b to the pool. b must not be used afterwards.
func Put(b *Buffer) {
	if b == nil || b.Cap() > poolMaxCapacity {
		return // reject oversized
	}
	b.Reset()
	bufferPool.Put(b)
}
