package guest

import "github.com/wippyai/js-bridge/errors"

// Config holds guest runtime settings.
type Config struct {
	// AllocExport names the exported allocator function.
	AllocExport string `yaml:"alloc_export"`

	// FreeExport optionally names an exported free(ptr, size, align).
	// Empty means memory is never returned, which suits bump allocators.
	FreeExport string `yaml:"free_export"`

	// MemoryExport names the exported linear memory.
	MemoryExport string `yaml:"memory_export"`

	// MemoryLimitPages caps guest memory in 64KiB pages. 0 keeps the
	// wazero default (65536 pages = 4GiB).
	MemoryLimitPages uint32 `yaml:"memory_limit_pages"`
}

// DefaultConfig returns the settings matching BumpAllocatorModule.
func DefaultConfig() Config {
	return Config{
		AllocExport:  "alloc",
		MemoryExport: "memory",
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.AllocExport == "" {
		return errors.New(errors.PhaseTransfer, errors.KindInvalidConfig).
			Path("alloc_export").
			Detail("allocator export name is required").
			Build()
	}
	if c.MemoryExport == "" {
		return errors.New(errors.PhaseTransfer, errors.KindInvalidConfig).
			Path("memory_export").
			Detail("memory export name is required").
			Build()
	}
	if c.MemoryLimitPages > 65536 {
		return errors.New(errors.PhaseTransfer, errors.KindInvalidConfig).
			Path("memory_limit_pages").
			Value(c.MemoryLimitPages).
			Detail("at most 65536 pages are addressable").
			Build()
	}
	return nil
}
