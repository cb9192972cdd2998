// Package tld classifies a hostname against a compiled Public-Suffix-style
// rule set, carving out its effective top-level domain, and — on a
// suffix-list miss — attempts to decode the host as a numeric or
// obfuscated IPv4 address.
//
// Classification drives the same Aho–Corasick automaton used elsewhere in
// this module (see internal/ahocorasick), built here over the suffix
// list's ".suffix" patterns rather than the scanner's scheme prefixes, so
// C4 can be built, tested, and reasoned about independently of the
// extraction driver that consumes it.
package tld
