// Package errors provides the structured error type shared by every
// jsbridge package.
//
// An Error carries the Phase it was raised in (encode, decode, resolve,
// write, read, transfer, config) and a Kind. Optional context names the
// parameter path, the host type descriptor, and the expected and actual
// variants:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
//		Path("arg1").
//		HostType("int?").
//		Expected("number").
//		Actual("string").
//		Build()
//
// Convenience constructors cover the common cases:
//
//	errors.TypeMismatch(errors.PhaseDecode, nil, "number", "boolean")
//	errors.InvalidCharacterLiteral(nil, "ab")
//	errors.UnsupportedHostType("Widget")
//
// errors.Is matches on Phase and Kind; the exported sentinels leave
// Phase empty and so match a kind raised in any phase:
//
//	if errors.Is(err, jserrors.ErrTypeMismatch) { ... }
package errors
