package matcher

import (
	"github.com/hueristiq/hq-go-urlscan/internal/charclass"
	"github.com/hueristiq/hq-go-urlscan/uri"
)

// urlStarter bytes are opening punctuation commonly used to introduce a
// URL in prose ("(see http://example.com)").
func isURLStarter(b byte) bool {
	switch b {
	case '(', '{', '<', '\'':
		return true
	default:
		return false
	}
}

// WebStart succeeds iff matchBegin is at the buffer start, or the byte
// immediately before it is whitespace or a URL-starter.
func WebStart(text []byte, matchBegin int) bool {
	if matchBegin <= 0 {
		return true
	}

	prev := text[matchBegin-1]

	return charclass.IsLWSP(prev) || isURLStarter(prev)
}

// WebEnd runs the web grammar in lenient mode from matchBegin and reports
// the offset the grammar stopped at.
func WebEnd(text []byte, matchBegin int) (end int, ok bool) {
	res, err := uri.ParseWeb(text, matchBegin, false)
	if err != nil {
		return 0, false
	}

	return res.End, true
}
