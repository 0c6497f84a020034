package binding

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/js-bridge/adapter"
)

// HostTypeOf maps a WIT type to the host descriptor its values bind to.
func HostTypeOf(t wit.Type) (adapter.HostType, bool) {
	switch t := t.(type) {
	case wit.Bool:
		return adapter.Prim(adapter.KindBool), true
	case wit.S8:
		return adapter.Prim(adapter.KindByte), true
	case wit.S16:
		return adapter.Prim(adapter.KindShort), true
	case wit.S32:
		return adapter.Prim(adapter.KindInt), true
	case wit.S64:
		return adapter.Prim(adapter.KindLong), true
	case wit.F32:
		return adapter.Prim(adapter.KindFloat), true
	case wit.F64:
		return adapter.Prim(adapter.KindDouble), true
	case wit.Char:
		return adapter.Prim(adapter.KindChar), true
	case wit.String:
		return adapter.Boxed(adapter.KindString), true
	case *wit.TypeDef:
		return typeDefHostType(t)
	}
	return adapter.HostType{}, false
}

func typeDefHostType(t *wit.TypeDef) (adapter.HostType, bool) {
	switch kind := t.Kind.(type) {
	case *wit.Option:
		inner, ok := HostTypeOf(kind.Type)
		if !ok {
			return adapter.HostType{}, false
		}
		if inner.Kind == adapter.KindString {
			return inner, true
		}
		if inner.Boxed {
			// option<option<T>> has no single-pointer host form
			return adapter.HostType{}, false
		}
		return adapter.Boxed(inner.Kind), true
	case wit.Type:
		// type alias
		return HostTypeOf(kind)
	}
	return adapter.HostType{}, false
}

// witName renders t for error messages.
func witName(t wit.Type) string {
	switch t := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		switch kind := t.Kind.(type) {
		case *wit.Option:
			return "option<" + witName(kind.Type) + ">"
		case *wit.List:
			return "list<" + witName(kind.Type) + ">"
		case wit.Type:
			return witName(kind)
		default:
			return fmt.Sprintf("%T", kind)
		}
	}
	return fmt.Sprintf("%T", t)
}
