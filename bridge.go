package jsbridge

import "github.com/wippyai/js-bridge/value"

// Context is the script engine boundary: the only way adapters
// create script values.
type Context interface {
	CreateNull() value.Value
	CreateUndefined() value.Value
	CreateBoolean(b bool) value.Value
	CreateNumber(n value.Number) value.Value
	CreateString(s string) value.Value
}

// Memory represents guest linear memory on the far side of the native boundary
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	Size() uint32
}

// Allocator allocates memory in guest linear memory
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
	Free(ptr, size, align uint32)
}

var _ Context = value.Plain{}
