// Package wire lays primitive values out as a flat byte stream for
// transfer across the native boundary.
//
// # Format
//
//	┌────────────┬──────────┬──────────────────────────────────────┐
//	│ value      │ size     │ bytes                                │
//	├────────────┼──────────┼──────────────────────────────────────┤
//	│ boolean    │ 1        │ 01 / 00                              │
//	│ int32      │ 4        │ big-endian two's complement          │
//	│ int64      │ 8        │ big-endian two's complement          │
//	│ double     │ 8        │ big-endian IEEE-754 bit pattern      │
//	│ string     │ 4 + n + 1│ int32 length n, UTF-8 bytes, 00      │
//	└────────────┴──────────┴──────────────────────────────────────┘
//
// The string length prefix counts encoded bytes, not characters, and
// does not include the terminator. "abc" encodes as
//
//	00 00 00 03 61 62 63 00
//
// # Buffer
//
// Buffer is append-only. Each write grows the backing region when
// needed (to twice the required size), copies what was already written
// and advances the cursor by exactly the encoded size. Bytes already
// written are never rewritten.
//
// # Thread Safety
//
// Buffer and Reader are NOT thread-safe. Get and Put may be called
// from any goroutine.
package wire
