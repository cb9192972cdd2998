package matcher

// Family identifies which probe pair governs a matcher's candidate-span
// growth.
type Family int

const (
	// FamilyWeb covers http://, https://, ftp://, sftp://, news://,
	// nntp://, telnet://, webcal://, callto://, h323:, sip:, and the
	// "www." and "ftp." lead-only sentinels.
	FamilyWeb Family = iota

	// FamilyFile covers file:// specifically, which grows forward over
	// URLSAFE bytes rather than through the web grammar.
	FamilyFile

	// FamilyTLD covers every suffix-list entry, synthesized as
	// ".<suffix>".
	FamilyTLD

	// FamilyEmail covers mailto: and the bare "@" sentinel.
	FamilyEmail
)

// Flags is a bitset of matcher properties.
type Flags uint8

const (
	// NoHTML marks a matcher that must be skipped when scanning HTML
	// bodies — "ftp." and bare "@" produce too many false positives in
	// markup to trust without a preceding scheme.
	NoHTML Flags = 1 << iota

	// TLDMatch marks a suffix-list-derived matcher.
	TLDMatch

	// StarMatch marks a suffix-list matcher whose rule carried the "*."
	// wildcard prefix — one extra label to the left belongs to the eTLD.
	StarMatch
)

// Matcher is one entry in a Set: the literal pattern indexed into the
// automaton, an optional prefix synthesized when the matcher fires
// without its own scheme (e.g. "www." -> "http://"), which family's
// probes apply, and this matcher's flags.
type Matcher struct {
	Pattern []byte
	Prefix  string
	Family  Family
	Flags   Flags
}

// staticMatchers lists every fixed scheme-prefix and sentinel pattern the
// driver recognizes ahead of any suffix-list data.
func staticMatchers() []Matcher {
	return []Matcher{
		{Pattern: []byte("file://"), Family: FamilyFile},
		{Pattern: []byte("ftp://"), Family: FamilyWeb},
		{Pattern: []byte("sftp://"), Family: FamilyWeb},
		{Pattern: []byte("http://"), Family: FamilyWeb},
		{Pattern: []byte("https://"), Family: FamilyWeb},
		{Pattern: []byte("news://"), Family: FamilyWeb},
		{Pattern: []byte("nntp://"), Family: FamilyWeb},
		{Pattern: []byte("telnet://"), Family: FamilyWeb},
		{Pattern: []byte("webcal://"), Family: FamilyWeb},
		{Pattern: []byte("callto://"), Family: FamilyWeb},
		{Pattern: []byte("h323:"), Family: FamilyWeb},
		{Pattern: []byte("sip:"), Family: FamilyWeb},
		{Pattern: []byte("mailto:"), Family: FamilyEmail},
		{Pattern: []byte("www."), Prefix: "http://", Family: FamilyWeb},
		{Pattern: []byte("ftp."), Prefix: "ftp://", Family: FamilyWeb, Flags: NoHTML},
		{Pattern: []byte("@"), Prefix: "mailto://", Family: FamilyEmail, Flags: NoHTML},
	}
}
