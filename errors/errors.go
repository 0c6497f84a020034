package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // host to script value
	PhaseDecode   Phase = "decode"   // script value to host
	PhaseResolve  Phase = "resolve"  // adapter lookup / binding
	PhaseWrite    Phase = "write"    // wire buffer output
	PhaseRead     Phase = "read"     // wire buffer read-back
	PhaseTransfer Phase = "transfer" // guest memory copy
	PhaseConfig   Phase = "config"   // settings load / validation
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch   Kind = "type_mismatch"
	KindInvalidChar    Kind = "invalid_char"
	KindUnsupported    Kind = "unsupported"
	KindTooLarge       Kind = "too_large"
	KindAllocation     Kind = "allocation"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindInvalidData    Kind = "invalid_data"
	KindInvalidUTF8    Kind = "invalid_utf8"
	KindArity          Kind = "arity"
	KindNotFound       Kind = "not_found"
	KindInvalidInput   Kind = "invalid_input"
	KindNotInitialized Kind = "not_initialized"
	KindInstantiation  Kind = "instantiation"
	KindInvalidConfig  Kind = "invalid_config"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	HostType string
	Expected string
	Actual   string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	hasTypes := e.HostType != "" || e.Expected != "" || e.Actual != ""
	if hasTypes {
		b.WriteString(": ")
		var parts []string
		if e.HostType != "" {
			parts = append(parts, "host type "+e.HostType)
		}
		if e.Expected != "" {
			parts = append(parts, "expected "+e.Expected)
		}
		if e.Actual != "" {
			parts = append(parts, "actual "+e.Actual)
		}
		b.WriteString(strings.Join(parts, ", "))
	}

	if e.Detail != "" {
		if hasTypes {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target with an empty Phase matches any phase.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return (t.Phase == "" || e.Phase == t.Phase) && e.Kind == t.Kind
	}
	return false
}

// Phase-agnostic sentinels for errors.Is.
var (
	ErrTypeMismatch            = &Error{Kind: KindTypeMismatch}
	ErrInvalidCharacterLiteral = &Error{Kind: KindInvalidChar}
	ErrUnsupportedHostType     = &Error{Kind: KindUnsupported}
	ErrEncodingTooLarge        = &Error{Kind: KindTooLarge}
	ErrAllocationExhausted     = &Error{Kind: KindAllocation}
	ErrOutOfBounds             = &Error{Kind: KindOutOfBounds}
	ErrInvalidData             = &Error{Kind: KindInvalidData}
)

// IsKind reports whether any error in err's chain is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if errors.As(err, &e) {
			if e.Kind == kind {
				return true
			}
			err = e.Cause
			continue
		}
		return false
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// HostType sets the host type descriptor name
func (b *Builder) HostType(t string) *Builder {
	b.err.HostType = t
	return b
}

// Expected sets the expected variant or type
func (b *Builder) Expected(s string) *Builder {
	b.err.Expected = s
	return b
}

// Actual sets the actual variant or type
func (b *Builder) Actual(s string) *Builder {
	b.err.Actual = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a variant or Go type mismatch error
func TypeMismatch(phase Phase, path []string, expected, actual string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		Expected: expected,
		Actual:   actual,
	}
}

// InvalidCharacterLiteral creates an error for a string that is not exactly one character
func InvalidCharacterLiteral(path []string, s string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidChar,
		Path:   path,
		Detail: fmt.Sprintf("can't treat %q as char", s),
		Value:  s,
	}
}

// UnsupportedHostType creates an error for a descriptor no resolver accepts
func UnsupportedHostType(hostType string) *Error {
	return &Error{
		Phase:    PhaseResolve,
		Kind:     KindUnsupported,
		HostType: hostType,
		Detail:   "no adapter registered",
	}
}

// EncodingTooLarge creates an error for a payload that overflows its length prefix
func EncodingTooLarge(size, limit int) *Error {
	return &Error{
		Phase:  PhaseWrite,
		Kind:   KindTooLarge,
		Detail: fmt.Sprintf("encoded length %d exceeds length prefix limit %d", size, limit),
		Value:  size,
	}
}

// AllocationExhausted creates an error for a buffer that cannot grow
func AllocationExhausted(phase Phase, size int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
		Value:  size,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, offset, want, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("read of %d bytes at offset %d out of bounds (length %d)", want, offset, length),
		Value:  offset,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Arity creates an argument count mismatch error
func Arity(phase Phase, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArity,
		Detail: fmt.Sprintf("expected %d values, got %d", want, got),
		Value:  got,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// NotInitialized creates a not-initialized error for a missing dependency
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Instantiation creates an instantiation error
func Instantiation(cause error) *Error {
	return &Error{
		Phase:  PhaseTransfer,
		Kind:   KindInstantiation,
		Detail: "instantiate guest module",
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
