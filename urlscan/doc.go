// Package urlscan is the public entry point of the URL extraction engine:
// it wires the character-class table (internal/charclass), the
// Aho-Corasick automaton (internal/ahocorasick), the mailto/web state
// machines (uri), the TLD classifier (tld), and the matcher-probe table
// (internal/matcher) into a single Engine offering a single-URL parser,
// a whole-text extraction driver, a standalone TLD finder, and a
// cursor-based incremental iterator.
//
// Grounded on original_source/url.h's public surface
// (rspamd_url_init/parse/find/get_next/find_tld) and the teacher's
// functional-options Engine/Parser construction style.
package urlscan
