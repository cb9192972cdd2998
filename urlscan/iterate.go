package urlscan

import "github.com/hueristiq/hq-go-urlscan/internal/ahocorasick"

// NextURL incrementally extracts one URL from text starting at *cursor,
// advancing *cursor past it, so a caller can bound how much of a large
// text block is materialized at once instead of collecting every result
// up front via FindURLs. Returns false once no further candidate is
// found before the end of text.
func (e *Engine) NextURL(text []byte, cursor *int) (url *URL, ok bool) {
	if cursor == nil || *cursor < 0 || *cursor > len(text) {
		return nil, false
	}

	lastAt := -1
	cur := &ahocorasick.Cursor{}
	cur.Seek(*cursor)

	for {
		var hit ahocorasick.Match

		found := ahocorasick.Scan(e.matchers.Automaton(), text, cur, func(m ahocorasick.Match) bool {
			hit = m

			return true
		})

		if !found {
			*cursor = len(text)

			return nil, false
		}

		mr := e.matchers.Matcher(hit.PatternIndex)

		result, consumedEnd := e.resolveCandidate(text, mr, hit.End, &lastAt)

		if consumedEnd > cur.Pos {
			cur.Seek(consumedEnd)
		}

		if result != nil {
			*cursor = consumedEnd

			return result, true
		}
	}
}
