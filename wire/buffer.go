package wire

import (
	"encoding/binary"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/js-bridge/errors"
)

const (
	// DefaultCapacity is the initial size of a new Buffer.
	DefaultCapacity = 16

	// MaxStringBytes is the largest UTF-8 length the int32 prefix can carry.
	MaxStringBytes = math.MaxInt32

	boolSize   = 1
	int32Size  = 4
	int64Size  = 8
	doubleSize = 8
)

// ByteOrder is the protocol byte order for every multi-byte value.
var ByteOrder = binary.BigEndian

// Buffer is a growable append-only byte sink.
type Buffer struct {
	buf    []byte
	offset int
}

// NewBuffer returns an empty Buffer with DefaultCapacity.
func NewBuffer() *Buffer {
	return NewBufferSize(DefaultCapacity)
}

// NewBufferSize returns an empty Buffer with the given initial capacity.
func NewBufferSize(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{buf: make([]byte, capacity)}
}

// Bytes returns the written bytes. The slice aliases the buffer and is
// valid until the next write.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.offset]
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int {
	return b.offset
}

// Cap returns the size of the backing region.
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Reset rewinds the cursor for a new encoding pass, keeping capacity.
func (b *Buffer) Reset() {
	b.offset = 0
}

// WriteBoolean appends 0x01 for true and 0x00 for false.
func (b *Buffer) WriteBoolean(v bool) {
	b.ensure(boolSize)
	if v {
		b.buf[b.offset] = 1
	} else {
		b.buf[b.offset] = 0
	}
	b.offset += boolSize
}

// WriteInt32 appends v as 4 big-endian bytes.
func (b *Buffer) WriteInt32(v int32) {
	b.ensure(int32Size)
	ByteOrder.PutUint32(b.buf[b.offset:], uint32(v))
	b.offset += int32Size
}

// WriteInt64 appends v as 8 big-endian bytes.
func (b *Buffer) WriteInt64(v int64) {
	b.ensure(int64Size)
	ByteOrder.PutUint64(b.buf[b.offset:], uint64(v))
	b.offset += int64Size
}

// WriteDouble appends the raw IEEE-754 bits of v as 8 big-endian bytes.
func (b *Buffer) WriteDouble(v float64) {
	b.ensure(doubleSize)
	ByteOrder.PutUint64(b.buf[b.offset:], math.Float64bits(v))
	b.offset += doubleSize
}

// WriteString appends the UTF-8 byte length, the bytes and a NUL.
// Invalid UTF-8 sequences are replaced with U+FFFD before encoding.
// Nothing is written when the length does not fit the prefix.
func (b *Buffer) WriteString(s string) error {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	n := len(s)
	if err := checkLength(n); err != nil {
		return err
	}

	size := int32Size + n + 1
	b.ensure(size)
	ByteOrder.PutUint32(b.buf[b.offset:], uint32(int32(n)))
	copy(b.buf[b.offset+int32Size:], s)
	b.buf[b.offset+int32Size+n] = 0
	b.offset += size
	return nil
}

func checkLength(n int) error {
	if n > MaxStringBytes {
		return errors.EncodingTooLarge(n, MaxStringBytes)
	}
	return nil
}

// ensure grows the backing region so size more bytes fit. When the
// doubled capacity cannot be allocated it retries with the exact size.
// Arithmetic overflow or a refused allocation panics with
// AllocationExhausted.
func (b *Buffer) ensure(size int) {
	need := b.offset + size
	if need < b.offset {
		panic(errors.AllocationExhausted(errors.PhaseWrite, size))
	}
	if need <= len(b.buf) {
		return
	}

	newCap := need << 1
	if newCap < need {
		newCap = need
	}
	if c := len(b.buf) << 1; c > newCap {
		newCap = c
	}

	grown, ok := allocate(newCap)
	if !ok && newCap > need {
		grown, ok = allocate(need)
	}
	if !ok {
		panic(errors.AllocationExhausted(errors.PhaseWrite, need))
	}
	copy(grown, b.buf[:b.offset])
	b.buf = grown
}

// allocate reports false when the runtime refuses a slice of n bytes.
func allocate(n int) (buf []byte, ok bool) {
	defer func() {
		if recover() != nil {
			buf, ok = nil, false
		}
	}()
	return make([]byte, n), true
}
