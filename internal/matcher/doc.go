// Package matcher builds the process-wide matcher set the extraction
// driver scans against: static scheme-prefix literals, lead-only
// "www."/"ftp."/"@" sentinels, and every suffix-list entry, each indexed
// into its own Aho-Corasick automaton (internal/ahocorasick) alongside
// the family of start/end probes used to grow a raw match into a
// candidate URL span.
//
// Grounded on original_source/url.c's static_matchers table and its
// url_web_start/url_web_end/url_tld_start/url_tld_end/url_email_start/
// url_email_end/url_file_start/url_file_end probe functions.
package matcher
