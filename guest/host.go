package guest

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/wire"
)

// Host is a wazero runtime with one guest module instantiated.
type Host struct {
	runtime wazero.Runtime
	module  api.Module
	memory  *Memory
	alloc   *Allocator
}

// Start compiles and instantiates wasmBytes. The returned Host must be
// closed.
func Start(ctx context.Context, wasmBytes []byte, cfg Config) (*Host, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	h, err := instantiate(ctx, runtime, wasmBytes, cfg)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, err
	}
	return h, nil
}

func instantiate(ctx context.Context, runtime wazero.Runtime, wasmBytes []byte, cfg Config) (*Host, error) {
	compiled, err := runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, errors.Instantiation(err)
	}

	mod, err := runtime.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName("guest"))
	if err != nil {
		return nil, errors.Instantiation(err)
	}

	mem := mod.ExportedMemory(cfg.MemoryExport)
	if mem == nil {
		return nil, errors.NotFound(errors.PhaseTransfer, "memory export", cfg.MemoryExport)
	}

	alloc, err := NewAllocator(ctx, mod, cfg)
	if err != nil {
		return nil, err
	}

	Logger().Debug("guest instantiated",
		zap.String("alloc_export", cfg.AllocExport),
		zap.Uint32("memory_bytes", mem.Size()))

	return &Host{
		runtime: runtime,
		module:  mod,
		memory:  NewMemory(mem),
		alloc:   alloc,
	}, nil
}

// Module returns the instantiated guest module.
func (h *Host) Module() api.Module {
	return h.module
}

// Memory returns the guest's exported memory.
func (h *Host) Memory() *Memory {
	return h.memory
}

// Allocator returns the guest's allocator.
func (h *Host) Allocator() *Allocator {
	return h.alloc
}

// Transfer copies buf into guest memory.
func (h *Host) Transfer(ctx context.Context, buf *wire.Buffer) (Region, error) {
	return Transfer(ctx, h.memory, h.alloc, buf)
}

// Load reads a transferred region back.
func (h *Host) Load(region Region) (*wire.Reader, error) {
	return Load(h.memory, region)
}

// Close releases the runtime and everything instantiated in it.
func (h *Host) Close(ctx context.Context) error {
	if h.runtime == nil {
		return nil
	}
	err := h.runtime.Close(ctx)
	h.runtime = nil
	h.module = nil
	return err
}
