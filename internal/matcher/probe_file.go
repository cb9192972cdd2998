package matcher

import "github.com/hueristiq/hq-go-urlscan/internal/charclass"

// bracketPairs lists the opening/closing punctuation pairs FileEnd
// recognizes as an enclosing delimiter around a "file://" reference.
var bracketPairs = map[byte]byte{
	'(': ')',
	'{': '}',
	'[': ']',
	'<': '>',
	'|': '|',
	'\'': '\'',
}

// FileStart always succeeds: a file:// reference needs no leading
// context, unlike the web family's whitespace/starter requirement.
func FileStart(text []byte, matchBegin int) bool {
	return true
}

// FileEnd walks forward from matchBegin while bytes are URLSAFE, stopping
// early at the closing bracket implied by the byte immediately preceding
// the match, if that byte opened one of bracketPairs.
func FileEnd(text []byte, matchBegin int) (end int, ok bool) {
	var stop byte

	hasStop := false

	if matchBegin > 0 {
		if close, isOpen := bracketPairs[text[matchBegin-1]]; isOpen {
			stop = close
			hasStop = true
		}
	}

	i := matchBegin

	for i < len(text) {
		if hasStop && text[i] == stop {
			break
		}

		if !charclass.IsURLSafe(text[i]) {
			break
		}

		i++
	}

	if i == matchBegin {
		return 0, false
	}

	return i, true
}
