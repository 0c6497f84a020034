// Package adapter converts Go host values to and from script values.
//
// # Adapters
//
// A TypeAdapter[T] pairs a total Encode (T → value.Value) with a partial
// Decode (value.Value → T). Decode fails with a type_mismatch error when
// the script value's active variant is not the one the adapter reads.
//
//	Host type   Go type        Script variant
//	──────────────────────────────────────────────
//	void        Void           null (decode: null or undefined)
//	boolean     bool           boolean
//	byte        int8           number
//	char        rune           string of exactly one character
//	short       int16          number
//	int         int32          number
//	long        int64          number
//	float       float32        number
//	double      float64        number
//	string?     *string        string
//
// Every host type also has a nullable form ("int?", *int32) served by
// Nullable, which decodes null and undefined to nil.
//
// # Nullable Encoding
//
// By default Nullable.Encode produces null for every input, present or
// absent, which existing callers depend on. WithNullableEncoding(
// NullableEncodeDelegate) makes it delegate for non-nil values instead.
// The choice is made in one function, encodeNullable.
//
// # Factory
//
// Factory resolves a HostType by asking each Resolver in turn:
//
//	WithResolver(a) → WithResolver(b) → StandardResolver
//
// The first adapter returned wins. When every resolver declines, Lookup
// reports false and Resolve returns an unsupported error, so an unknown
// host type is caught at binding time rather than on first conversion.
//
// # Thread Safety
//
// Adapters and Factory hold no mutable state and are safe for
// concurrent use.
package adapter
