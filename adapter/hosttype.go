package adapter

import (
	"strings"

	"github.com/wippyai/js-bridge/errors"
)

// Kind is the closed set of host type families.
type Kind uint8

const (
	KindVoid Kind = iota
	KindBool
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindString
	KindNamed
)

var kindNames = [...]string{
	KindVoid:   "void",
	KindBool:   "boolean",
	KindByte:   "byte",
	KindChar:   "char",
	KindShort:  "short",
	KindInt:    "int",
	KindLong:   "long",
	KindFloat:  "float",
	KindDouble: "double",
	KindString: "string",
	KindNamed:  "named",
}

var goNames = [...]string{
	KindVoid:   "adapter.Void",
	KindBool:   "bool",
	KindByte:   "int8",
	KindChar:   "rune",
	KindShort:  "int16",
	KindInt:    "int32",
	KindLong:   "int64",
	KindFloat:  "float32",
	KindDouble: "float64",
	KindString: "string",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// HostType describes a Go host type. It is comparable and used as the
// registry lookup key.
type HostType struct {
	Name  string // set for KindNamed only
	Kind  Kind
	Boxed bool
}

// Prim returns the non-nullable form of k. String has no such form and
// always yields the boxed descriptor.
func Prim(k Kind) HostType {
	return HostType{Kind: k, Boxed: k == KindString}
}

// Boxed returns the nullable (pointer) form of k.
func Boxed(k Kind) HostType {
	return HostType{Kind: k, Boxed: true}
}

// Named returns a descriptor for a user-defined type.
func Named(name string) HostType {
	return HostType{Kind: KindNamed, Name: name}
}

// String returns the descriptor name; nullable forms end in '?'.
func (h HostType) String() string {
	if h.Kind == KindNamed {
		return h.Name
	}
	if h.Boxed {
		return h.Kind.String() + "?"
	}
	return h.Kind.String()
}

// GoType returns the Go spelling of the host representation, or "" for
// named types.
func (h HostType) GoType() string {
	if int(h.Kind) >= len(goNames) || goNames[h.Kind] == "" {
		return ""
	}
	if h.Boxed {
		return "*" + goNames[h.Kind]
	}
	return goNames[h.Kind]
}

// ParseHostType accepts descriptor names ("int", "int?", "string") and
// Go spellings ("int32", "*int32", "*string"). Anything else is a named
// type.
func ParseHostType(s string) (HostType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return HostType{}, errors.InvalidInput(errors.PhaseResolve, "empty host type")
	}

	boxed := false
	switch {
	case strings.HasSuffix(s, "?"):
		boxed, s = true, strings.TrimSuffix(s, "?")
	case strings.HasPrefix(s, "*"):
		boxed, s = true, strings.TrimPrefix(s, "*")
	}

	for k := KindVoid; k < KindNamed; k++ {
		if s == kindNames[k] || s == goNames[k] {
			if boxed {
				return Boxed(k), nil
			}
			return Prim(k), nil
		}
	}
	if boxed {
		return HostType{}, errors.InvalidInput(errors.PhaseResolve, "named types have no nullable form: "+s)
	}
	return Named(s), nil
}

// StandardHostTypes lists every descriptor the standard resolver accepts,
// in table order.
func StandardHostTypes() []HostType {
	out := make([]HostType, 0, 2*int(KindNamed))
	for k := KindVoid; k < KindNamed; k++ {
		if k != KindString {
			out = append(out, Prim(k))
		}
		out = append(out, Boxed(k))
	}
	return out
}
