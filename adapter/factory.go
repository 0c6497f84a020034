package adapter

import (
	"go.uber.org/zap"

	"github.com/wippyai/js-bridge/errors"
)

// Resolver maps a host type to an adapter or declines.
// Resolvers may resolve other host types through f to compose adapters.
type Resolver interface {
	Resolve(f *Factory, ht HostType) (Adapter, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(f *Factory, ht HostType) (Adapter, bool)

func (fn ResolverFunc) Resolve(f *Factory, ht HostType) (Adapter, bool) {
	return fn(f, ht)
}

// Option configures a Factory.
type Option func(*options)

type options struct {
	resolvers []Resolver
	nullable  NullableEncoding
}

// WithResolver registers r ahead of the standard resolver. Resolvers run
// in registration order.
func WithResolver(r Resolver) Option {
	return func(o *options) {
		o.resolvers = append(o.resolvers, r)
	}
}

// WithNullableEncoding sets the encode behavior of the standard
// resolver's nullable wrappers.
func WithNullableEncoding(m NullableEncoding) Option {
	return func(o *options) {
		o.nullable = m
	}
}

// Factory is an ordered chain of resolvers, the standard resolver last.
// It is immutable after NewFactory and safe for concurrent use.
type Factory struct {
	resolvers []Resolver
	nullable  NullableEncoding
}

// NewFactory builds a resolver chain.
func NewFactory(opts ...Option) *Factory {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	resolvers := make([]Resolver, 0, len(o.resolvers)+1)
	resolvers = append(resolvers, o.resolvers...)
	resolvers = append(resolvers, StandardResolver(o.nullable))

	Logger().Debug("adapter factory built",
		zap.Int("resolvers", len(resolvers)),
		zap.Stringer("nullable_encoding", o.nullable))

	return &Factory{
		resolvers: resolvers,
		nullable:  o.nullable,
	}
}

// NullableEncoding returns the mode the standard resolver was built with.
func (f *Factory) NullableEncoding() NullableEncoding {
	return f.nullable
}

// Lookup tries each resolver in order; the first adapter wins.
func (f *Factory) Lookup(ht HostType) (Adapter, bool) {
	for _, r := range f.resolvers {
		if a, ok := r.Resolve(f, ht); ok && a != nil {
			return a, true
		}
	}
	Logger().Debug("no resolver accepted host type", zap.Stringer("host_type", ht))
	return nil, false
}

// Resolve is Lookup with an UnsupportedHostType error on a miss.
func (f *Factory) Resolve(ht HostType) (Adapter, error) {
	a, ok := f.Lookup(ht)
	if !ok {
		return nil, errors.UnsupportedHostType(ht.String())
	}
	return a, nil
}
