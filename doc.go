// Package jsbridge marshals values between Go and a dynamically typed
// script engine, and lays them out on a byte-exact wire for transfer
// across the native boundary.
//
// # Architecture Overview
//
//	jsbridge/         Root package with the Context, Memory and Allocator interfaces
//	├── value/        Script value model: null, undefined, boolean, number, string
//	├── adapter/      Type adapters, the nullable wrapper and the factory chain
//	├── wire/         Append-only wire buffer, reader and buffer pool
//	├── binding/      WIT signatures bound to adapters at bind time
//	├── guest/        Transfer of wire buffers into wazero guest memory
//	├── errors/       Structured error types
//	└── cmd/jsbridge  Command line inspector
//
// # Quick Start
//
//	f := adapter.NewFactory()
//	a, err := adapter.ResolveAs[int32](f, adapter.Prim(adapter.KindInt))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v := a.Encode(value.Plain{}, 42)      // number 42
//	n, err := a.Decode(value.Plain{}, v)  // int32(42)
//
//	buf := wire.NewBuffer()
//	buf.WriteInt32(n)
//	_ = buf.WriteString("abc")
//	send(buf.Bytes())
//
// # Wire Format
//
// All multi-byte values are big-endian:
//
//	Value      Size       Encoding
//	─────────────────────────────────────────────────
//	bool       1          0x01 true, 0x00 false
//	int32      4          two's complement
//	int64      8          two's complement
//	double     8          raw IEEE-754 bits
//	string     4 + n + 1  int32 byte length, UTF-8 bytes, 0x00
//
// # Thread Safety
//
// Adapters and Factory are immutable and safe for concurrent use.
// A wire.Buffer belongs to a single writer for one encoding pass.
package jsbridge
