package binding

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/value"
	"github.com/wippyai/js-bridge/wire"
)

var ctx = value.Plain{}

func TestBind(t *testing.T) {
	f := adapter.NewFactory()
	sig, err := Bind(f, []wit.Type{wit.S32{}, wit.String{}, option(wit.F64{})})
	require.NoError(t, err)
	require.Equal(t, 3, sig.Len())

	params := sig.Params()
	require.Equal(t, "arg0", params[0].Name)
	require.Equal(t, adapter.Prim(adapter.KindInt), params[0].Host)
	require.Equal(t, adapter.Boxed(adapter.KindString), params[1].Adapter.HostType())
	require.Equal(t, "*float64", params[2].Adapter.GoType().String())

	// Params hands out a copy
	params[0].Name = "changed"
	require.Equal(t, "arg0", sig.Params()[0].Name)
}

func TestBind_UnsupportedParam(t *testing.T) {
	f := adapter.NewFactory()
	_, err := Bind(f, []wit.Type{wit.S32{}, wit.Bool{}, wit.U32{}})
	require.Error(t, err)
	require.True(t, stderrors.Is(err, errors.ErrUnsupportedHostType))

	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	require.Equal(t, errors.PhaseResolve, e.Phase)
	require.Equal(t, []string{"arg2"}, e.Path)
	require.Equal(t, "u32", e.HostType)
}

func TestBind_FactoryMiss(t *testing.T) {
	// a resolver chain where the user resolver claims nothing and the
	// standard table is still consulted
	f := adapter.NewFactory(adapter.WithResolver(adapter.ResolverFunc(
		func(*adapter.Factory, adapter.HostType) (adapter.Adapter, bool) { return nil, false },
	)))
	_, err := Bind(f, []wit.Type{wit.Char{}})
	require.NoError(t, err)

	_, err = Bind(nil, []wit.Type{wit.Char{}})
	require.True(t, errors.IsKind(err, errors.KindNotInitialized))
}

func TestSignature_EncodeDecode(t *testing.T) {
	f := adapter.NewFactory(adapter.WithNullableEncoding(adapter.NullableEncodeDelegate))
	sig, err := Bind(f, []wit.Type{wit.Bool{}, wit.S16{}, wit.Char{}, wit.String{}, option(wit.S64{})})
	require.NoError(t, err)

	s := "hello"
	n := int64(-5)
	vals, err := sig.Encode(ctx, true, int16(-300), 'λ', &s, &n)
	require.NoError(t, err)
	require.Len(t, vals, 5)
	require.Equal(t, value.KindBoolean, vals[0].Kind())
	require.Equal(t, value.KindString, vals[2].Kind())

	back, err := sig.Decode(ctx, vals)
	require.NoError(t, err)
	require.Equal(t, true, back[0])
	require.Equal(t, int16(-300), back[1])
	require.Equal(t, 'λ', back[2])
	require.Equal(t, "hello", *back[3].(*string))
	require.Equal(t, int64(-5), *back[4].(*int64))
}

func TestSignature_Arity(t *testing.T) {
	sig, err := Bind(adapter.NewFactory(), []wit.Type{wit.S32{}, wit.S32{}})
	require.NoError(t, err)

	_, err = sig.Encode(ctx, int32(1))
	require.True(t, errors.IsKind(err, errors.KindArity))

	_, err = sig.Decode(ctx, []value.Value{value.NewNull(), value.NewNull(), value.NewNull()})
	require.True(t, errors.IsKind(err, errors.KindArity))
	require.Contains(t, err.Error(), "expected 2 values, got 3")

	err = sig.WriteArgs(wire.NewBuffer())
	require.True(t, errors.IsKind(err, errors.KindArity))
}

func TestSignature_ArgumentErrorsNameTheParam(t *testing.T) {
	sig, err := Bind(adapter.NewFactory(), []wit.Type{wit.S32{}, wit.Char{}})
	require.NoError(t, err)

	_, err = sig.Decode(ctx, []value.Value{
		value.NewNumber(value.Int(1)),
		value.NewString("too long"),
	})
	require.True(t, stderrors.Is(err, errors.ErrInvalidCharacterLiteral))
	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	require.Equal(t, []string{"arg1"}, e.Path)

	_, err = sig.Encode(ctx, "one", 'c')
	require.True(t, stderrors.As(err, &e))
	require.Equal(t, errors.PhaseEncode, e.Phase)
	require.Equal(t, []string{"arg0"}, e.Path)
}

func TestSignature_WriteArgs(t *testing.T) {
	sig, err := Bind(adapter.NewFactory(), []wit.Type{
		wit.Bool{}, wit.S8{}, wit.Char{}, wit.S64{}, wit.F32{}, wit.String{}, option(wit.S32{}), option(wit.S32{}),
	})
	require.NoError(t, err)

	seven := int32(7)
	buf := wire.NewBuffer()
	require.NoError(t, sig.WriteArgs(buf, true, int8(-2), 'x', int64(1)<<40, float32(0.5), "hi", &seven, nil))

	r := wire.NewReader(buf.Bytes())

	b, err := r.ReadBoolean()
	require.NoError(t, err)
	require.True(t, b)

	i, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-2), i)

	c, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32('x'), c)

	l, err := r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(1)<<40, l)

	d, err := r.ReadDouble()
	require.NoError(t, err)
	require.Equal(t, 0.5, d)

	present, err := r.ReadBoolean()
	require.NoError(t, err)
	require.True(t, present)
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "hi", s)

	present, err = r.ReadBoolean()
	require.NoError(t, err)
	require.True(t, present)
	i, err = r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(7), i)

	present, err = r.ReadBoolean()
	require.NoError(t, err)
	require.False(t, present)

	require.Equal(t, 0, r.Remaining())
}

func TestSignature_WriteArgsAcceptsBareValueForNullable(t *testing.T) {
	sig, err := Bind(adapter.NewFactory(), []wit.Type{option(wit.F64{})})
	require.NoError(t, err)

	buf := wire.NewBuffer()
	require.NoError(t, sig.WriteArgs(buf, 2.5))
	require.Equal(t, []byte{1, 0x40, 0x04, 0, 0, 0, 0, 0, 0}, buf.Bytes())

	buf.Reset()
	require.NoError(t, sig.WriteArgs(buf, (*float64)(nil)))
	require.Equal(t, []byte{0}, buf.Bytes())
}

func TestSignature_WriteArgsMismatch(t *testing.T) {
	sig, err := Bind(adapter.NewFactory(), []wit.Type{wit.S32{}, option(wit.S32{})})
	require.NoError(t, err)

	err = sig.WriteArgs(wire.NewBuffer(), int64(1), nil)
	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	require.Equal(t, errors.PhaseWrite, e.Phase)
	require.Equal(t, errors.KindTypeMismatch, e.Kind)
	require.Equal(t, []string{"arg0"}, e.Path)
	require.Equal(t, "int32", e.Expected)
	require.Equal(t, "int64", e.Actual)

	err = sig.WriteArgs(wire.NewBuffer(), nil, nil)
	require.True(t, stderrors.As(err, &e))
	require.Equal(t, "nil", e.Actual)

	err = sig.WriteArgs(wire.NewBuffer(), int32(1), "1")
	require.True(t, stderrors.As(err, &e))
	require.Equal(t, []string{"arg1"}, e.Path)
}

func TestSignature_WriteArgsNamedType(t *testing.T) {
	type celsius float64
	type point struct{ X, Y int32 }

	f := adapter.NewFactory(adapter.WithResolver(adapter.ResolverFunc(
		func(_ *adapter.Factory, ht adapter.HostType) (adapter.Adapter, bool) {
			switch ht {
			case adapter.Prim(adapter.KindDouble):
				return adapter.Func[celsius](ht,
					func(ctx adapter.Context, c celsius) value.Value { return ctx.CreateNumber(value.Float(float64(c))) },
					func(_ adapter.Context, v value.Value) (celsius, error) {
						n, err := v.AsNumber()
						return celsius(n.Float64()), err
					},
				), true
			case adapter.Prim(adapter.KindLong):
				return adapter.Func[point](ht,
					func(ctx adapter.Context, _ point) value.Value { return ctx.CreateNull() },
					func(adapter.Context, value.Value) (point, error) { return point{}, nil },
				), true
			}
			return nil, false
		},
	)))

	sig, err := Bind(f, []wit.Type{wit.F64{}})
	require.NoError(t, err)

	buf := wire.NewBuffer()
	require.NoError(t, sig.WriteArgs(buf, celsius(20)))
	got, err := sig.ReadArgs(wire.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, []any{celsius(20)}, got)

	sig, err = Bind(f, []wit.Type{wit.S64{}})
	require.NoError(t, err)
	err = sig.WriteArgs(wire.NewBuffer(), point{1, 2})
	require.True(t, errors.IsKind(err, errors.KindUnsupported))
	_, err = sig.ReadArgs(wire.NewReader(make([]byte, 8)))
	require.True(t, errors.IsKind(err, errors.KindUnsupported))
}

func TestSignature_ReadArgs(t *testing.T) {
	sig, err := Bind(adapter.NewFactory(), []wit.Type{
		wit.Bool{}, wit.S8{}, wit.S16{}, wit.Char{}, wit.S64{}, wit.F32{}, wit.String{}, option(wit.S32{}), option(wit.F64{}),
	})
	require.NoError(t, err)

	three := int32(3)
	args := []any{false, int8(-8), int16(1600), 'é', int64(-1), float32(1.25), "wire", &three, (*float64)(nil)}

	buf := wire.NewBuffer()
	require.NoError(t, sig.WriteArgs(buf, args...))

	r := wire.NewReader(buf.Bytes())
	got, err := sig.ReadArgs(r)
	require.NoError(t, err)
	require.Equal(t, 0, r.Remaining())

	require.Equal(t, args[:6], got[:6])
	require.Equal(t, "wire", *got[6].(*string))
	require.Equal(t, int32(3), *got[7].(*int32))
	require.Nil(t, got[8].(*float64))
}

func TestSignature_ReadArgsTruncated(t *testing.T) {
	sig, err := Bind(adapter.NewFactory(), []wit.Type{wit.S32{}, wit.S64{}})
	require.NoError(t, err)

	buf := wire.NewBuffer()
	require.NoError(t, sig.WriteArgs(buf, int32(1), int64(2)))

	_, err = sig.ReadArgs(wire.NewReader(buf.Bytes()[:6]))
	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	require.Equal(t, errors.KindOutOfBounds, e.Kind)
	require.Equal(t, []string{"arg1"}, e.Path)
}

func TestWriteValue_Void(t *testing.T) {
	f := adapter.NewFactory()

	void, err := f.Resolve(adapter.Prim(adapter.KindVoid))
	require.NoError(t, err)
	buf := wire.NewBuffer()
	require.NoError(t, WriteValue(buf, void, adapter.Void{}))
	require.Equal(t, 0, buf.Len())

	boxed, err := f.Resolve(adapter.Boxed(adapter.KindVoid))
	require.NoError(t, err)
	require.NoError(t, WriteValue(buf, boxed, &adapter.Void{}))
	require.Equal(t, []byte{1}, buf.Bytes())

	v, err := ReadValue(wire.NewReader(buf.Bytes()), boxed)
	require.NoError(t, err)
	require.Equal(t, &adapter.Void{}, v)
}

func TestSignature_AppendArgs(t *testing.T) {
	sig, err := Bind(adapter.NewFactory(), []wit.Type{wit.S32{}, wit.String{}})
	require.NoError(t, err)

	out, err := sig.AppendArgs([]byte{0xaa}, int32(1), "a")
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0, 0, 0, 1, 1, 0, 0, 0, 1, 'a', 0}, out)

	// a failed encode leaves dst alone
	out, err = sig.AppendArgs(out, "x", "a")
	require.Error(t, err)
	require.Len(t, out, 12)
}

func TestSignature_BoxedHostWithoutPointer(t *testing.T) {
	// a user adapter claiming a boxed host type over a non-pointer Go type
	flat := adapter.Func[int32](adapter.Boxed(adapter.KindInt),
		func(ctx adapter.Context, v int32) value.Value { return ctx.CreateNumber(value.Int(int64(v))) },
		func(_ adapter.Context, v value.Value) (int32, error) {
			n, err := v.AsNumber()
			return n.Int32(), err
		},
	)
	f := adapter.NewFactory(adapter.WithResolver(adapter.ResolverFunc(
		func(_ *adapter.Factory, ht adapter.HostType) (adapter.Adapter, bool) {
			if ht == adapter.Boxed(adapter.KindInt) {
				return flat, true
			}
			return nil, false
		})))

	sig, err := Bind(f, []wit.Type{option(wit.S32{})})
	require.NoError(t, err)

	err = sig.WriteArgs(wire.NewBuffer(), int32(1))
	require.True(t, errors.IsKind(err, errors.KindUnsupported))

	_, err = sig.ReadArgs(wire.NewReader([]byte{1, 0, 0, 0, 1}))
	require.True(t, errors.IsKind(err, errors.KindUnsupported))

	err = WriteValue(wire.NewBuffer(), flat, int32(1))
	require.True(t, stderrors.Is(err, errors.ErrUnsupportedHostType))
	_, err = ReadValue(wire.NewReader([]byte{1}), flat)
	require.True(t, stderrors.Is(err, errors.ErrUnsupportedHostType))
}
