// Package guest moves wire encodings across the native boundary into a
// WebAssembly guest's linear memory.
//
// A Host owns a wazero runtime and one instantiated module. The module
// must export its memory and an allocator. Two allocator conventions
// are recognized by signature:
//
//	alloc(size i32) -> i32                                  simple bump / malloc
//	cabi_realloc(old i32, old_size i32, align i32, size i32) -> i32
//
// Transfer allocates a region in guest memory and copies a Buffer's
// bytes into it; Load reads a region back as a wire.Reader.
//
//	h, err := guest.Start(ctx, guest.BumpAllocatorModule, guest.DefaultConfig())
//	defer h.Close(ctx)
//	region, err := h.Transfer(ctx, buf)
//	r, err := h.Load(region)
//
// A Host serializes allocator calls; Memory is as safe as the wazero
// memory it wraps.
package guest
