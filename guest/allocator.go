package guest

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	jsbridge "github.com/wippyai/js-bridge"
	"github.com/wippyai/js-bridge/errors"
)

// Allocator calls guest exports to implement jsbridge.Allocator.
type Allocator struct {
	ctx      context.Context
	allocFn  api.Function
	freeFn   api.Function
	stackBuf []uint64
	mu       sync.Mutex
	realloc  bool
}

// NewAllocator looks up the allocator exports named in cfg. Calls made
// through the returned Allocator run under ctx.
func NewAllocator(ctx context.Context, mod api.Module, cfg Config) (*Allocator, error) {
	allocFn := mod.ExportedFunction(cfg.AllocExport)
	if allocFn == nil {
		return nil, errors.NotFound(errors.PhaseTransfer, "allocator export", cfg.AllocExport)
	}

	a := &Allocator{ctx: ctx, allocFn: allocFn, stackBuf: make([]uint64, 4)}

	switch params := allocFn.Definition().ParamTypes(); len(params) {
	case 1:
	case 4:
		a.realloc = true
	default:
		return nil, errors.New(errors.PhaseTransfer, errors.KindInvalidInput).
			Detail("export %q takes %d params, want 1 (alloc) or 4 (cabi_realloc)", cfg.AllocExport, len(params)).
			Build()
	}
	if results := allocFn.Definition().ResultTypes(); len(results) != 1 || results[0] != api.ValueTypeI32 {
		return nil, errors.New(errors.PhaseTransfer, errors.KindInvalidInput).
			Detail("export %q must return a single i32 pointer", cfg.AllocExport).
			Build()
	}

	if cfg.FreeExport != "" {
		a.freeFn = mod.ExportedFunction(cfg.FreeExport)
		if a.freeFn == nil {
			return nil, errors.NotFound(errors.PhaseTransfer, "free export", cfg.FreeExport)
		}
	}
	return a, nil
}

// Alloc reserves size bytes in guest memory. A zero pointer from the
// guest is reported as allocation failure.
func (a *Allocator) Alloc(size, align uint32) (uint32, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	stack := a.stackBuf
	if a.realloc {
		stack[0], stack[1], stack[2], stack[3] = 0, 0, uint64(align), uint64(size)
	} else {
		stack = stack[:1]
		stack[0] = uint64(size)
	}

	if err := a.allocFn.CallWithStack(a.ctx, stack); err != nil {
		return 0, errors.New(errors.PhaseTransfer, errors.KindAllocation).
			Value(size).
			Cause(err).
			Detail("guest allocator trapped").
			Build()
	}

	ptr := uint32(stack[0])
	if ptr == 0 {
		return 0, errors.AllocationExhausted(errors.PhaseTransfer, int(size))
	}
	return ptr, nil
}

// Free returns a region to the guest. Without a free export, or for
// cabi_realloc guests, it is a no-op or a shrink to zero respectively.
func (a *Allocator) Free(ptr, size, align uint32) {
	if ptr == 0 {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	var err error
	switch {
	case a.freeFn != nil:
		err = a.freeFn.CallWithStack(a.ctx, []uint64{uint64(ptr), uint64(size), uint64(align)})
	case a.realloc:
		stack := a.stackBuf
		stack[0], stack[1], stack[2], stack[3] = uint64(ptr), uint64(size), uint64(align), 0
		err = a.allocFn.CallWithStack(a.ctx, stack)
	default:
		return
	}
	if err != nil {
		Logger().Warn("guest free failed",
			zap.Uint32("ptr", ptr),
			zap.Uint32("size", size),
			zap.Error(err))
	}
}

var _ jsbridge.Allocator = (*Allocator)(nil)
