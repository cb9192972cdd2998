package urlscan

import (
	"bytes"

	"github.com/hueristiq/hq-go-urlscan/internal/ahocorasick"
	"github.com/hueristiq/hq-go-urlscan/internal/matcher"
	"github.com/hueristiq/hq-go-urlscan/uri"
)

// FindURLs scans text for every URL and mailto candidate the matcher set
// recognizes, per spec.md §4.5: a single automaton pass drives a
// per-family start/end probe, a strict C3 reparse of the resulting span,
// and TLD classification; malformed candidates are discarded in place
// rather than failing the whole scan. When isHTML is true, NoHTML
// matchers (bare "@", lead-only "ftp.") are skipped. URLs with a
// non-empty query are recursively re-scanned up to the engine's
// configured recursion depth to recover nested URLs in redirector
// parameters.
func (e *Engine) FindURLs(text []byte, isHTML bool) []*URL {
	results := e.findURLsOnePass(text, isHTML)

	if e.recursion > 0 {
		results = e.recurseIntoQueries(results, e.recursion)
	}

	return results
}

// findURLsOnePass drives the automaton one accepted match at a time: once
// a candidate's span is resolved (accepted or rejected), the cursor is
// repositioned past the whole span before resuming the scan, so a
// suffix-list pattern lying inside an already-consumed candidate (e.g.
// the ".co.uk" of an "alice@example.co.uk" email, or the ".com" of an
// "http://example.com" match) never fires a second, overlapping
// candidate of its own.
func (e *Engine) findURLsOnePass(text []byte, isHTML bool) []*URL {
	var results []*URL

	lastAt := -1
	cur := &ahocorasick.Cursor{}

	for {
		var hit ahocorasick.Match

		found := ahocorasick.Scan(e.matchers.Automaton(), text, cur, func(m ahocorasick.Match) bool {
			hit = m

			return true
		})

		if !found {
			break
		}

		mr := e.matchers.Matcher(hit.PatternIndex)

		if mr.Flags&matcher.NoHTML != 0 && isHTML {
			continue
		}

		url, consumedEnd := e.resolveCandidate(text, mr, hit.End, &lastAt)

		if consumedEnd > cur.Pos {
			cur.Seek(consumedEnd)
		}

		if url != nil {
			results = append(results, url)
		}
	}

	return results
}

// resolveCandidate dispatches a single automaton hit to its family's
// probes and, on acceptance, returns the built URL plus the offset one
// past the end of the full candidate span (not just the triggering
// pattern occurrence) so the caller can skip the automaton past it.
func (e *Engine) resolveCandidate(text []byte, mr matcher.Matcher, patternEnd int, lastAt *int) (url *URL, consumedEnd int) {
	switch {
	case mr.Flags&matcher.TLDMatch != 0:
		return e.candidateFromTLD(text, mr, patternEnd)
	case mr.Family == matcher.FamilyFile:
		return e.candidateFromFile(text, mr, patternEnd)
	case mr.Family == matcher.FamilyEmail:
		return e.candidateFromEmail(text, mr, patternEnd, lastAt)
	case mr.Family == matcher.FamilyWeb:
		return e.candidateFromWeb(text, mr, patternEnd)
	default:
		return nil, patternEnd
	}
}

// recurseIntoQueries re-scans every result's decoded query substring for
// nested URLs, down to the given recursion budget. Each '&'-separated
// parameter is scanned on its own, starting after its '=', so a nested URL
// that is a parameter's whole value begins at the start of the scanned
// buffer.
func (e *Engine) recurseIntoQueries(results []*URL, depth int) []*URL {
	for _, u := range results {
		q := u.QueryString()
		if q == "" {
			continue
		}

		var nested []*URL

		for _, param := range bytes.Split([]byte(q), []byte("&")) {
			if eq := bytes.IndexByte(param, '='); eq >= 0 {
				param = param[eq+1:]
			}

			nested = append(nested, e.findURLsOnePass(param, false)...)
		}

		if depth-1 > 0 {
			nested = e.recurseIntoQueries(nested, depth-1)
		}

		results = append(results, nested...)
	}

	return results
}

func (e *Engine) candidateFromWeb(text []byte, mr matcher.Matcher, patternEnd int) (url *URL, consumedEnd int) {
	matchBegin := patternEnd - len(mr.Pattern)

	if !matcher.WebStart(text, matchBegin) {
		return nil, patternEnd
	}

	end, ok := matcher.WebEnd(text, matchBegin)
	if !ok {
		e.discardf("bad-format", "web candidate at %d rejected by end probe", matchBegin)

		return nil, patternEnd
	}

	return e.reparseWeb(text, matchBegin, end, schemeNameFromPrefix(mr.Prefix)), end
}

func (e *Engine) candidateFromFile(text []byte, mr matcher.Matcher, patternEnd int) (url *URL, consumedEnd int) {
	matchBegin := patternEnd - len(mr.Pattern)

	if !matcher.FileStart(text, matchBegin) {
		return nil, patternEnd
	}

	end, ok := matcher.FileEnd(text, matchBegin)
	if !ok {
		e.discardf("bad-format", "file candidate at %d rejected by end probe", matchBegin)

		return nil, patternEnd
	}

	return e.reparseWeb(text, matchBegin, end, ""), end
}

// candidateFromTLD realizes spec.md §4.6's TLD family probes: walk
// backward to the host start, accept the terminator following the
// matched suffix, and — when that terminator is '/' or ':' — hand off to
// the web end probe from the host start to recover a trailing path or
// port the bare suffix match alone wouldn't have captured.
func (e *Engine) candidateFromTLD(text []byte, mr matcher.Matcher, patternEnd int) (url *URL, consumedEnd int) {
	rawMatchStart := patternEnd - len(mr.Pattern)

	acceptedEnd, ok := matcher.TLDTerminator(text, patternEnd)
	if !ok {
		return nil, patternEnd
	}

	begin, ok := matcher.TLDStart(text, rawMatchStart)
	if !ok {
		return nil, patternEnd
	}

	end := acceptedEnd

	if acceptedEnd < len(text) && (text[acceptedEnd] == '/' || text[acceptedEnd] == ':') {
		if webEnd, ok := matcher.WebEnd(text, begin); ok {
			end = webEnd
		}
	}

	fallback := e.scheme
	if fallback == "" {
		fallback = "http"
	}

	return e.reparseWeb(text, begin, end, fallback), end
}

func (e *Engine) reparseWeb(text []byte, begin, end int, schemeFallback string) *URL {
	if begin < 0 || end > len(text) || begin >= end {
		return nil
	}

	sub := text[begin:end]

	res, err := uri.ParseWeb(sub, 0, true)
	if err != nil {
		e.discardf("bad-format", "strict reparse failed for %q: %v", sub, err)

		return nil
	}

	url, ferr := e.finalize(sub, res, schemeFallback)
	if ferr != nil {
		e.discardf("tld-miss", "candidate %q rejected: %v", sub, ferr)

		return nil
	}

	return url
}

func (e *Engine) candidateFromEmail(text []byte, mr matcher.Matcher, patternEnd int, lastAt *int) (url *URL, consumedEnd int) {
	if bytes.Equal(mr.Pattern, []byte("@")) {
		at := patternEnd - 1

		if *lastAt == at {
			return nil, patternEnd
		}

		begin, end, ok := matcher.BareAtSpan(text, at)
		if !ok {
			return nil, patternEnd
		}

		return e.buildBareEmail(text[begin:end], at-begin), end
	}

	matchBegin := patternEnd - len(mr.Pattern)

	end, userInfoEnd, ok := matcher.MailtoEnd(text, matchBegin)
	if !ok {
		e.discardf("bad-format", "mailto candidate at %d rejected by end probe", matchBegin)

		return nil, patternEnd
	}

	*lastAt = userInfoEnd

	sub := text[matchBegin:end]

	res, perr := uri.ParseMailto(sub, 0, true)
	if perr != nil {
		e.discardf("bad-format", "strict mailto reparse failed for %q: %v", sub, perr)

		return nil, end
	}

	built, ferr := e.finalize(sub, res, "")
	if ferr != nil {
		e.discardf("tld-miss", "mailto candidate %q rejected: %v", sub, ferr)

		return nil, end
	}

	return built, end
}

// buildBareEmail assembles a URL record for a bare "user@domain" sentinel
// match directly, without a C3 reparse — the bare "@" family has no
// grammar of its own, just the local-part/domain span growth in
// matcher.BareAtSpan — but the domain still goes through the same TLD
// classification every other family's candidate gets.
//
// sub aliases the caller's scan buffer, so it is copied into an
// independently-owned Raw before the host span is lowercased in place;
// text the caller passed to FindURLs is never mutated.
func (e *Engine) buildBareEmail(sub []byte, at int) *URL {
	raw := append([]byte(nil), sub...)

	hostSpan := uri.Span{Begin: at + 1, End: len(raw)}

	lowerASCIIInPlace(hostSpan.Slice(raw))

	tldRes, err := e.tld.Classify(hostSpan.Slice(raw))
	if err != nil {
		e.discardf("tld-miss", "bare email candidate %q rejected: %v", sub, err)

		return nil
	}

	url := &URL{
		Raw:      raw,
		Scheme:   uri.SchemeMailto,
		UserInfo: uri.Span{Begin: 0, End: at},
		Host:     hostSpan,
		TLD:      tldRes.TLD,
		Flags:    mapTLDFlags(tldRes.Flags),
	}

	if tldRes.Host != nil {
		url.HostOwned = tldRes.Host
	}

	return url
}

func schemeNameFromPrefix(prefix string) string {
	switch prefix {
	case "http://":
		return "http"
	case "ftp://":
		return "ftp"
	default:
		return ""
	}
}
