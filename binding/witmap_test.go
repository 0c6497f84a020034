package binding

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/js-bridge/adapter"
)

func option(t wit.Type) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Option{Type: t}}
}

func TestHostTypeOf(t *testing.T) {
	tests := []struct {
		witType wit.Type
		want    adapter.HostType
		name    string
	}{
		{wit.Bool{}, adapter.Prim(adapter.KindBool), "bool"},
		{wit.S8{}, adapter.Prim(adapter.KindByte), "s8"},
		{wit.S16{}, adapter.Prim(adapter.KindShort), "s16"},
		{wit.S32{}, adapter.Prim(adapter.KindInt), "s32"},
		{wit.S64{}, adapter.Prim(adapter.KindLong), "s64"},
		{wit.F32{}, adapter.Prim(adapter.KindFloat), "f32"},
		{wit.F64{}, adapter.Prim(adapter.KindDouble), "f64"},
		{wit.Char{}, adapter.Prim(adapter.KindChar), "char"},
		{wit.String{}, adapter.Boxed(adapter.KindString), "string"},
		{option(wit.S32{}), adapter.Boxed(adapter.KindInt), "option<s32>"},
		{option(wit.Bool{}), adapter.Boxed(adapter.KindBool), "option<bool>"},
		{option(wit.String{}), adapter.Boxed(adapter.KindString), "option<string>"},
		{&wit.TypeDef{Kind: wit.F64{}}, adapter.Prim(adapter.KindDouble), "alias of f64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := HostTypeOf(tt.witType)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHostTypeOf_Declines(t *testing.T) {
	tests := []struct {
		witType wit.Type
		name    string
	}{
		{wit.U8{}, "u8"},
		{wit.U32{}, "u32"},
		{wit.U64{}, "u64"},
		{option(option(wit.S32{})), "option<option<s32>>"},
		{option(wit.U16{}), "option<u16>"},
		{&wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}, "list<u8>"},
		{&wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{{Name: "a", Type: wit.S32{}}}}}, "record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := HostTypeOf(tt.witType)
			require.False(t, ok)
		})
	}
}

func TestWitName(t *testing.T) {
	require.Equal(t, "s32", witName(wit.S32{}))
	require.Equal(t, "option<string>", witName(option(wit.String{})))
	require.Equal(t, "list<u8>", witName(&wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}))
}
