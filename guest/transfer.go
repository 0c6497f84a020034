package guest

import (
	"context"
	"math"

	"go.uber.org/zap"

	jsbridge "github.com/wippyai/js-bridge"
	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/wire"
)

// Region is a span of guest memory holding one transferred buffer.
type Region struct {
	Ptr uint32
	Len uint32
}

// Transfer allocates buf.Len() bytes through alloc and copies the
// buffer into mem. An empty buffer yields the zero Region without
// calling the allocator. On a failed write the region is freed.
func Transfer(ctx context.Context, mem jsbridge.Memory, alloc jsbridge.Allocator, buf *wire.Buffer) (Region, error) {
	if err := ctx.Err(); err != nil {
		return Region{}, errors.Wrap(errors.PhaseTransfer, errors.KindInvalidInput, err, "context done before transfer")
	}
	if mem == nil {
		return Region{}, errors.NotInitialized(errors.PhaseTransfer, "guest memory")
	}
	if alloc == nil {
		return Region{}, errors.NotInitialized(errors.PhaseTransfer, "guest allocator")
	}

	n := buf.Len()
	if n == 0 {
		return Region{}, nil
	}
	if uint64(n) > math.MaxUint32 {
		return Region{}, errors.New(errors.PhaseTransfer, errors.KindTooLarge).
			Value(n).
			Detail("buffer of %d bytes exceeds the 32-bit guest address space", n).
			Build()
	}

	size := uint32(n)
	ptr, err := alloc.Alloc(size, 1)
	if err != nil {
		return Region{}, err
	}

	if err := mem.Write(ptr, buf.Bytes()); err != nil {
		alloc.Free(ptr, size, 1)
		return Region{}, err
	}

	Logger().Debug("buffer transferred",
		zap.Uint32("ptr", ptr),
		zap.Uint32("len", size))
	return Region{Ptr: ptr, Len: size}, nil
}

// Load reads region back from mem.
func Load(mem jsbridge.Memory, region Region) (*wire.Reader, error) {
	if mem == nil {
		return nil, errors.NotInitialized(errors.PhaseTransfer, "guest memory")
	}
	if region.Len == 0 {
		return wire.NewReader(nil), nil
	}
	data, err := mem.Read(region.Ptr, region.Len)
	if err != nil {
		return nil, err
	}
	return wire.NewReader(data), nil
}
