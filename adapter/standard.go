package adapter

import (
	"unicode/utf8"

	"golang.org/x/exp/constraints"

	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/value"
)

// Standard adapters for the non-nullable host types. String has no
// non-nullable host form; StringAdapter is exported as a delegate.
var (
	VoidAdapter    TypeAdapter[Void]    = Func[Void](Prim(KindVoid), encodeVoid, decodeVoid)
	BooleanAdapter TypeAdapter[bool]    = Func[bool](Prim(KindBool), encodeBoolean, decodeBoolean)
	ByteAdapter    TypeAdapter[int8]    = numberAdapter(KindByte, value.Narrow[int8])
	CharAdapter    TypeAdapter[rune]    = Func[rune](Prim(KindChar), encodeChar, decodeChar)
	ShortAdapter   TypeAdapter[int16]   = numberAdapter(KindShort, value.Narrow[int16])
	IntAdapter     TypeAdapter[int32]   = numberAdapter(KindInt, value.Narrow[int32])
	LongAdapter    TypeAdapter[int64]   = numberAdapter(KindLong, value.Narrow[int64])
	FloatAdapter   TypeAdapter[float32] = numberAdapter(KindFloat, value.NarrowFloat[float32])
	DoubleAdapter  TypeAdapter[float64] = numberAdapter(KindDouble, value.NarrowFloat[float64])
	StringAdapter  TypeAdapter[string]  = Func[string](HostType{Kind: KindString}, encodeString, decodeString)
)

func encodeVoid(ctx Context, _ Void) value.Value {
	return ctx.CreateNull()
}

func decodeVoid(_ Context, v value.Value) (Void, error) {
	if v.IsNullish() {
		return Void{}, nil
	}
	return Void{}, errors.TypeMismatch(errors.PhaseDecode, nil, "null or undefined", v.Kind().String())
}

func encodeBoolean(ctx Context, b bool) value.Value {
	return ctx.CreateBoolean(b)
}

func decodeBoolean(_ Context, v value.Value) (bool, error) {
	return v.AsBoolean()
}

func numberAdapter[T constraints.Integer | constraints.Float](k Kind, narrow func(value.Number) T) TypeAdapter[T] {
	return Func[T](Prim(k),
		func(ctx Context, v T) value.Value {
			return ctx.CreateNumber(value.NumberOf(v))
		},
		func(_ Context, v value.Value) (T, error) {
			n, err := v.AsNumber()
			if err != nil {
				return 0, err
			}
			return narrow(n), nil
		},
	)
}

// encodeChar maps a char to a one-character string. Chars are Unicode
// scalar values: surrogates and runes above U+10FFFF encode as U+FFFD.
func encodeChar(ctx Context, r rune) value.Value {
	return ctx.CreateString(string(r))
}

// decodeChar accepts a string holding exactly one code point.
func decodeChar(_ Context, v value.Value) (rune, error) {
	s, err := v.AsString()
	if err != nil {
		return 0, err
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, errors.InvalidCharacterLiteral(nil, s)
	}
	return r, nil
}

func encodeString(ctx Context, s string) value.Value {
	return ctx.CreateString(s)
}

func decodeString(_ Context, v value.Value) (string, error) {
	return v.AsString()
}

type standardResolver struct {
	table map[HostType]Adapter
}

// StandardResolver resolves every primitive and boxed host type. Boxed
// forms and string are wrapped in Nullable using mode. The table is
// built once and never mutated.
func StandardResolver(mode NullableEncoding) Resolver {
	return &standardResolver{table: map[HostType]Adapter{
		Prim(KindVoid):    VoidAdapter,
		Prim(KindBool):    BooleanAdapter,
		Prim(KindByte):    ByteAdapter,
		Prim(KindChar):    CharAdapter,
		Prim(KindShort):   ShortAdapter,
		Prim(KindInt):     IntAdapter,
		Prim(KindLong):    LongAdapter,
		Prim(KindFloat):   FloatAdapter,
		Prim(KindDouble):  DoubleAdapter,
		Boxed(KindVoid):   NewNullable(VoidAdapter, mode),
		Boxed(KindBool):   NewNullable(BooleanAdapter, mode),
		Boxed(KindByte):   NewNullable(ByteAdapter, mode),
		Boxed(KindChar):   NewNullable(CharAdapter, mode),
		Boxed(KindShort):  NewNullable(ShortAdapter, mode),
		Boxed(KindInt):    NewNullable(IntAdapter, mode),
		Boxed(KindLong):   NewNullable(LongAdapter, mode),
		Boxed(KindFloat):  NewNullable(FloatAdapter, mode),
		Boxed(KindDouble): NewNullable(DoubleAdapter, mode),
		Boxed(KindString): NewNullable(StringAdapter, mode),
	}}
}

func (r *standardResolver) Resolve(_ *Factory, ht HostType) (Adapter, bool) {
	a, ok := r.table[ht]
	return a, ok
}
