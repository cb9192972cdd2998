package errcode

import (
	hqerrors "github.com/hueristiq/hq-go-errors"
)

// Kind enumerates why parse_url (or the TLD classifier beneath it)
// rejected a candidate.
type Kind int

const (
	// Empty means the input was zero bytes.
	Empty Kind = iota

	// InvalidProtocol means a scheme was present but did not match a
	// known protocol (or a mailto parse did not start with "mailto:").
	InvalidProtocol

	// BadFormat means the state machine never reached an accepting state.
	BadFormat

	// BadEncoding means percent-decoding produced invalid UTF-8 where
	// valid UTF-8 was required.
	BadEncoding

	// InvalidPort means a port was present but outside 1..65535.
	InvalidPort

	// TLDMissing means the host matched no suffix rule and did not parse
	// as a numeric host.
	TLDMissing

	// HostMissing means parsing succeeded but produced a zero-length host
	// on a non-mailto scheme.
	HostMissing
)

// String returns a short human-readable description, matching the
// legacy strerror table this taxonomy was lifted from.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "the URI string was empty"
	case InvalidProtocol:
		return "no protocol was found"
	case BadFormat:
		return "bad URL format"
	case BadEncoding:
		return "invalid symbols encoded"
	case InvalidPort:
		return "port number is bad"
	case TLDMissing:
		return "TLD part is not detected"
	case HostMissing:
		return "host part is missing"
	default:
		return "unknown error"
	}
}

// Error wraps a Kind with hq-go-errors so callers retain both the typed
// code (via Kind()) and a wrapped, inspectable error chain.
type Error struct {
	kind Kind
	err  error
}

// Kind returns the typed reason this error was produced.
func (e *Error) Kind() Kind {
	return e.kind
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.err.Error()
}

// Unwrap exposes the wrapped hq-go-errors error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.err
}

// New builds an *Error for the given kind.
func New(kind Kind) *Error {
	return &Error{
		kind: kind,
		err:  hqerrors.New(kind.String()),
	}
}

// Wrap builds an *Error for the given kind, annotating it with extra
// context (e.g. the offending byte range or field name).
func Wrap(kind Kind, context string) *Error {
	return &Error{
		kind: kind,
		err:  hqerrors.Wrap(hqerrors.New(kind.String()), context),
	}
}
