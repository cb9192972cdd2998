package matcher

import "github.com/hueristiq/hq-go-urlscan/internal/charclass"

// TLDStart walks backward from matchBegin (the offset of the suffix-list
// pattern's synthesized leading '.') over DOMAIN bytes and '.', stopping
// at whitespace, a URL-starter, or the start of text. The byte immediately
// after the stop must be ASCII alphanumeric, since a real URL never begins
// with '.' or '-'. Any other byte encountered during the walk rejects the
// candidate: a '/' because TLDs live only in the host, never in a path,
// and e.g. an '@' because the host then belongs to an email address.
func TLDStart(text []byte, matchBegin int) (begin int, ok bool) {
	i := matchBegin

	for i > 0 {
		b := text[i-1]

		if b == '/' {
			return 0, false
		}

		if charclass.IsLWSP(b) || isURLStarter(b) {
			break
		}

		if !charclass.IsDomain(b) && b != '.' {
			return 0, false
		}

		i--
	}

	if i >= len(text) {
		return 0, false
	}

	c := text[i]

	if !isASCIIAlnum(c) {
		return 0, false
	}

	return i, true
}

func isASCIIAlnum(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// TLDTerminator reports whether the byte at the position immediately
// following a TLD_MATCH hit's raw match end is one of the set spec.md
// §4.5 step 2 accepts: end-of-text, whitespace, '/', '?', ':', ',', or a
// trailing '.' itself followed by end-of-text, whitespace, '/', '?', or
// ':'.
func TLDTerminator(text []byte, rawEnd int) (acceptedEnd int, ok bool) {
	if rawEnd >= len(text) {
		return rawEnd, true
	}

	b := text[rawEnd]

	switch {
	case charclass.IsLWSP(b), b == '/', b == '?', b == ':', b == ',':
		return rawEnd, true
	case b == '.':
		next := rawEnd + 1
		if next >= len(text) {
			return rawEnd, true
		}

		nb := text[next]
		if charclass.IsLWSP(nb) || nb == '/' || nb == '?' || nb == ':' {
			return rawEnd, true
		}

		return 0, false
	default:
		return 0, false
	}
}
