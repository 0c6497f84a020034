package binding

import (
	"strconv"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/js-bridge/adapter"
	"github.com/wippyai/js-bridge/errors"
	"github.com/wippyai/js-bridge/value"
	"github.com/wippyai/js-bridge/wire"
)

// Param is one resolved parameter.
type Param struct {
	Adapter adapter.Adapter
	WIT     wit.Type
	Name    string
	Host    adapter.HostType
}

// Signature is a parameter list with every adapter resolved.
// It is immutable and safe for concurrent use.
type Signature struct {
	params []Param
}

// Bind resolves an adapter for each parameter type through f.
func Bind(f *adapter.Factory, params []wit.Type) (*Signature, error) {
	if f == nil {
		return nil, errors.NotInitialized(errors.PhaseResolve, "adapter factory")
	}

	sig := &Signature{params: make([]Param, len(params))}
	for i, t := range params {
		name := "arg" + strconv.Itoa(i)

		ht, ok := HostTypeOf(t)
		if !ok {
			return nil, errors.New(errors.PhaseResolve, errors.KindUnsupported).
				Path(name).
				HostType(witName(t)).
				Detail("WIT type has no host mapping").
				Build()
		}

		a, err := f.Resolve(ht)
		if err != nil {
			return nil, withPath(err, name)
		}

		sig.params[i] = Param{Name: name, WIT: t, Host: ht, Adapter: a}
	}

	Logger().Debug("signature bound", zap.Int("params", len(params)))
	return sig, nil
}

// Len returns the parameter count.
func (s *Signature) Len() int {
	return len(s.params)
}

// Params returns a copy of the resolved parameters.
func (s *Signature) Params() []Param {
	out := make([]Param, len(s.params))
	copy(out, s.params)
	return out
}

// Encode converts host arguments to script values.
func (s *Signature) Encode(ctx adapter.Context, args ...any) ([]value.Value, error) {
	if len(args) != len(s.params) {
		return nil, errors.Arity(errors.PhaseEncode, len(s.params), len(args))
	}

	out := make([]value.Value, len(args))
	for i, p := range s.params {
		v, err := p.Adapter.EncodeAny(ctx, args[i])
		if err != nil {
			return nil, withPath(err, p.Name)
		}
		out[i] = v
	}
	return out, nil
}

// Decode converts script values to host arguments.
func (s *Signature) Decode(ctx adapter.Context, vals []value.Value) ([]any, error) {
	if len(vals) != len(s.params) {
		return nil, errors.Arity(errors.PhaseDecode, len(s.params), len(vals))
	}

	out := make([]any, len(vals))
	for i, p := range s.params {
		v, err := p.Adapter.DecodeAny(ctx, vals[i])
		if err != nil {
			return nil, withPath(err, p.Name)
		}
		out[i] = v
	}
	return out, nil
}

// WriteArgs lays host arguments out on buf in parameter order. On
// error buf may hold a partial encoding.
func (s *Signature) WriteArgs(buf *wire.Buffer, args ...any) error {
	if len(args) != len(s.params) {
		return errors.Arity(errors.PhaseWrite, len(s.params), len(args))
	}

	for i, p := range s.params {
		if err := WriteValue(buf, p.Adapter, args[i]); err != nil {
			return withPath(err, p.Name)
		}
	}
	return nil
}

// AppendArgs encodes args like WriteArgs using a pooled buffer and
// appends the bytes to dst.
func (s *Signature) AppendArgs(dst []byte, args ...any) ([]byte, error) {
	buf := wire.Get()
	defer wire.Put(buf)

	if err := s.WriteArgs(buf, args...); err != nil {
		return dst, err
	}
	return append(dst, buf.Bytes()...), nil
}

// ReadArgs reads back what WriteArgs wrote, one host value per
// parameter.
func (s *Signature) ReadArgs(r *wire.Reader) ([]any, error) {
	out := make([]any, len(s.params))
	for i, p := range s.params {
		v, err := ReadValue(r, p.Adapter)
		if err != nil {
			return nil, withPath(err, p.Name)
		}
		out[i] = v
	}
	return out, nil
}

// withPath prefixes the parameter name onto a structured error's path.
func withPath(err error, name string) error {
	e, ok := err.(*errors.Error)
	if !ok {
		return errors.Wrap(errors.PhaseResolve, errors.KindInvalidInput, err, name)
	}
	cp := *e
	cp.Path = append([]string{name}, e.Path...)
	return &cp
}
