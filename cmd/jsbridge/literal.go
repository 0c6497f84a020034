package main

import (
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/value"
)

// parseLiteral parses s as a host value of a's type. Nullable types
// take "null" as the nil pointer.
func parseLiteral(a adapter.Adapter, s string) (any, error) {
	ht := a.HostType()
	t := a.GoType()

	if ht.Boxed {
		if s == "null" {
			return reflect.Zero(t).Interface(), nil
		}
		v, err := parsePrim(ht, s)
		if err != nil {
			return nil, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(reflect.ValueOf(v))
		return ptr.Interface(), nil
	}
	return parsePrim(ht, s)
}

func parsePrim(ht adapter.HostType, s string) (any, error) {
	var (
		v   any
		err error
	)
	switch ht.Kind {
	case adapter.KindVoid:
		if s != "" && s != "void" && s != "null" && s != "undefined" {
			err = fmt.Errorf("void takes no value")
		}
		v = adapter.Void{}
	case adapter.KindBool:
		v, err = strconv.ParseBool(s)
	case adapter.KindByte:
		var n int64
		n, err = strconv.ParseInt(s, 0, 8)
		v = int8(n)
	case adapter.KindChar:
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
			err = fmt.Errorf("want exactly one character")
		}
		v = r
	case adapter.KindShort:
		var n int64
		n, err = strconv.ParseInt(s, 0, 16)
		v = int16(n)
	case adapter.KindInt:
		var n int64
		n, err = strconv.ParseInt(s, 0, 32)
		v = int32(n)
	case adapter.KindLong:
		v, err = strconv.ParseInt(s, 0, 64)
	case adapter.KindFloat:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case adapter.KindDouble:
		v, err = strconv.ParseFloat(s, 64)
	case adapter.KindString:
		v = s
	default:
		return nil, errors.New(errors.PhaseEncode, errors.KindUnsupported).
			HostType(ht.String()).
			Detail("no literal syntax for named types").
			Build()
	}
	if err != nil {
		return nil, errors.New(errors.PhaseEncode, errors.KindInvalidInput).
			HostType(ht.String()).
			Value(s).
			Cause(err).
			Detail("cannot parse %q", s).
			Build()
	}
	return v, nil
}

// parseScriptValue builds a script value from a kind name and an
// optional payload.
func parseScriptValue(kind string, payload []string) (value.Value, error) {
	arg := ""
	if len(payload) > 0 {
		arg = payload[0]
	}
	noPayload := func(v value.Value) (value.Value, error) {
		if len(payload) > 0 {
			return value.Value{}, errors.InvalidInput(errors.PhaseDecode, kind+" takes no payload")
		}
		return v, nil
	}

	switch kind {
	case "undefined":
		return noPayload(value.NewUndefined())
	case "null":
		return noPayload(value.NewNull())
	case "boolean", "bool":
		b, err := strconv.ParseBool(arg)
		if err != nil {
			return value.Value{}, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "boolean payload")
		}
		return value.NewBoolean(b), nil
	case "number":
		if i, err := strconv.ParseInt(arg, 10, 64); err == nil {
			return value.NewNumber(value.Int(i)), nil
		}
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return value.Value{}, errors.Wrap(errors.PhaseDecode, errors.KindInvalidInput, err, "number payload")
		}
		return value.NewNumber(value.Float(f)), nil
	case "string":
		return value.NewString(arg), nil
	}
	return value.Value{}, errors.New(errors.PhaseDecode, errors.KindInvalidInput).
		Value(kind).
		Detail("unknown script kind %q (want undefined, null, boolean, number or string)", kind).
		Build()
}

// formatHost renders a host value; char values print as quoted runes.
func formatHost(ht adapter.HostType, v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "nil"
		}
		return "&" + formatHost(ht, rv.Elem().Interface())
	}
	switch x := v.(type) {
	case adapter.Void:
		return "void"
	case string:
		return strconv.Quote(x)
	case rune:
		if ht.Kind == adapter.KindChar {
			return strconv.QuoteRune(x)
		}
	}
	return fmt.Sprint(v)
}

func hexBytes(b []byte) string {
	if len(b) == 0 {
		return "(empty)"
	}
	return fmt.Sprintf("% x", b)
}
