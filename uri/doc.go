// Package uri implements the two state machines that turn a byte range
// into a decomposed URI: one for the mailto scheme, one for web schemes
// (http, https, ftp, sftp, file, and the other colon/slash-slash prefixed
// protocols the scanner recognizes).
//
// Both machines are flat switches over an explicit state enumeration rather
// than a combined grammar, because the mailto and web terminal states
// diverge enough that folding them into one automaton would make each
// harder to follow than the other.
//
// Components are expressed as Span values — offset pairs into a single
// owned buffer — so that percent-decoding a component in place is a
// predictable rewrite of a small struct rather than an independent
// allocation per field.
package uri
