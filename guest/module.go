package guest

// BumpAllocatorModule is a minimal guest: one page of exported memory
// and alloc(size) that hands out consecutive regions starting at 1024.
// It never frees and never grows memory.
//
//	(module
//	  (memory (export "memory") 1)
//	  (global $next (mut i32) (i32.const 1024))
//	  (func (export "alloc") (param $size i32) (result i32)
//	    (local $ptr i32)
//	    global.get $next
//	    local.set $ptr
//	    global.get $next
//	    local.get $size
//	    i32.add
//	    global.set $next
//	    local.get $ptr))
var BumpAllocatorModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic, version
	0x01, 0x06, 0x01, 0x60, 0x01, 0x7f, 0x01, 0x7f, // type: (i32) -> i32
	0x03, 0x02, 0x01, 0x00, // func: type 0
	0x05, 0x03, 0x01, 0x00, 0x01, // memory: min 1 page
	0x06, 0x07, 0x01, 0x7f, 0x01, 0x41, 0x80, 0x08, 0x0b, // global: mut i32 = 1024
	0x07, 0x12, 0x02, // export: 2 entries
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
	0x05, 'a', 'l', 'l', 'o', 'c', 0x00, 0x00,
	0x0a, 0x13, 0x01, 0x11, // code: 1 body, 17 bytes
	0x01, 0x01, 0x7f, // 1 local i32
	0x23, 0x00, 0x21, 0x01, // global.get 0; local.set 1
	0x23, 0x00, 0x20, 0x00, 0x6a, 0x24, 0x00, // next += size
	0x20, 0x01, 0x0b, // local.get 1; end
}

// BumpAllocatorBase is the first pointer BumpAllocatorModule returns.
const BumpAllocatorBase = 1024
