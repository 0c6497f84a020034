// Package binding resolves function signatures to adapters ahead of any
// call.
//
// Parameter types are given as WIT types and mapped onto host
// descriptors:
//
//	bool        -> boolean
//	s8          -> byte
//	s16         -> short
//	s32         -> int
//	s64         -> long
//	f32         -> float
//	f64         -> double
//	char        -> char
//	string      -> string
//	option<T>   -> T?
//
// Unsigned integers and compound types have no host mapping and fail
// at bind time, naming the offending parameter.
//
// A bound Signature converts argument lists in both directions and lays
// them out on the wire:
//
//	sig, err := binding.Bind(factory, []wit.Type{wit.S32{}, wit.String{}})
//	vals, err := sig.Encode(ctx, int32(7), "seven")
//	err = sig.WriteArgs(buf, int32(7), "seven")
package binding
