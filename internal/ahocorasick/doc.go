// Package ahocorasick implements a classical Aho–Corasick multi-pattern
// automaton with an explicit, externally held scan cursor.
//
// Each automaton is built once from a fixed literal set (the matcher
// set's patterns plus suffix-list entries, or, for the TLD classifier,
// the suffix-list entries alone) and never mutated afterward. Scanning is
// callback-driven: every full-match position invokes a caller-supplied
// function that reports whether to stop (so the extraction driver can act
// on the first acceptable hit) or continue (so a scan can walk past a
// rejected candidate without restarting from the text's beginning). The
// cursor — the automaton's current trie node plus a byte offset — is
// passed back to the caller so a single logical scan can be resumed
// across calls without re-feeding already-consumed text.
//
// A generic third-party Aho–Corasick package was considered (see
// DESIGN.md) but none in the retrieval pack exposed this resumable,
// callback-stop contract, so the automaton is hand-rolled here, grounded
// directly on the trie/fail-link construction the original C
// implementation drove through the acism library.
package ahocorasick
