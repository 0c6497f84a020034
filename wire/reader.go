package wire

import (
	"math"
	"unicode/utf8"

	"github.com/wippyai/js-bridge/errors"
)

// Reader decodes values written by Buffer, in write order.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the number of bytes consumed.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, errors.OutOfBounds(errors.PhaseRead, r.pos, n, len(r.data))
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadBoolean reads one byte, which must be 0x00 or 0x01.
func (r *Reader) ReadBoolean() (bool, error) {
	b, err := r.take(boolSize)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, errors.New(errors.PhaseRead, errors.KindInvalidData).
		Value(b[0]).
		Detail("invalid boolean byte 0x%02x", b[0]).
		Build()
}

func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.take(int32Size)
	if err != nil {
		return 0, err
	}
	return int32(ByteOrder.Uint32(b)), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	b, err := r.take(int64Size)
	if err != nil {
		return 0, err
	}
	return int64(ByteOrder.Uint64(b)), nil
}

func (r *Reader) ReadDouble() (float64, error) {
	b, err := r.take(doubleSize)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(ByteOrder.Uint64(b)), nil
}

// ReadString reads a length-prefixed, NUL-terminated UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	start := r.pos
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		r.pos = start
		return "", errors.InvalidData(errors.PhaseRead, nil, "negative string length")
	}

	b, err := r.take(int(n) + 1)
	if err != nil {
		r.pos = start
		return "", err
	}
	if b[n] != 0 {
		r.pos = start
		return "", errors.InvalidData(errors.PhaseRead, nil, "missing NUL terminator")
	}
	if !utf8.Valid(b[:n]) {
		r.pos = start
		return "", errors.InvalidUTF8(errors.PhaseRead, nil, b[:n])
	}
	return string(b[:n]), nil
}
