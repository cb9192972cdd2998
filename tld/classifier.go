package tld

import (
	"bytes"
	"strings"

	"github.com/hueristiq/hq-go-urlscan/internal/ahocorasick"
	"github.com/hueristiq/hq-go-urlscan/suffixlist"
	"github.com/hueristiq/hq-go-urlscan/uri"
	"github.com/hueristiq/hq-go-urlscan/urlscan/errcode"
)

// Flags is a bitset describing how a host was classified.
type Flags uint8

const (
	// NumericHost marks a host that parsed as an IPv4 or IPv6 address,
	// literally or via the permissive inet_aton-style decoder.
	NumericHost Flags = 1 << iota

	// ObscuredHost marks a NumericHost whose textual form was not a
	// literal dotted-quad or bracketed IPv6 address — it was
	// reconstructed from octal, hexadecimal, or packed decimal
	// components.
	ObscuredHost
)

// Result is the outcome of classifying a host.
type Result struct {
	// TLD is the sub-range of the (possibly rewritten) Host span covered
	// by the effective top-level domain.
	TLD uri.Span

	// Host, when non-nil, replaces the original host text — used only
	// when numeric-host decoding rewrites it to canonical dotted-quad
	// form.
	Host []byte

	Flags Flags
}

// Classifier wraps a compiled suffix list with the automaton driving TLD
// lookups.
type Classifier struct {
	rules     []suffixlist.Rule
	automaton *ahocorasick.Automaton
}

// New builds a Classifier from rules. An empty rule set is valid — every
// host then falls through to the numeric-host decoder.
func New(rules []suffixlist.Rule) *Classifier {
	patterns := make([][]byte, len(rules))

	for i, r := range rules {
		patterns[i] = r.Pattern()
	}

	return &Classifier{
		rules:     rules,
		automaton: ahocorasick.Build(patterns),
	}
}

// Classify determines the effective TLD of host, per §4.4: scan for a
// suffix-list match, accept it only if it reaches the end of host (or the
// position just before a single trailing '.'), walk backward to find the
// eTLD's left boundary (one label for a plain rule, two — inclusive of the
// rule's own leading dot — for a STAR_MATCH rule), and on a total miss
// fall back to the numeric-host decoder.
func (c *Classifier) Classify(host []byte) (res Result, err error) {
	lower := bytes.ToLower(host)

	accepted, ruleIdx, matchEnd, ok := c.findAcceptedMatch(lower)
	if ok {
		rule := c.rules[ruleIdx]

		matchStart := matchEnd - len(rule.Pattern())

		labelStart := matchStart

		if rule.Star {
			labelStart = -1

			for p := matchStart - 1; p >= 0; p-- {
				if lower[p] == '.' {
					labelStart = p

					break
				}
			}
		}

		res.TLD = uri.Span{Begin: labelStart + 1, End: accepted}

		return res, nil
	}

	return c.classifyNumeric(host)
}

// findAcceptedMatch scans host for the first suffix-list hit satisfying
// the acceptance rule in §4.4 step 2, returning the (possibly
// dot-stripped) accepted end offset, the winning rule's index, the raw
// match end the automaton reported, and whether any hit was accepted.
// When a plain rule and a "*." rule share the accepted suffix, the
// wildcard rule wins.
func (c *Classifier) findAcceptedMatch(host []byte) (acceptedEnd, ruleIdx, rawEnd int, ok bool) {
	cur := &ahocorasick.Cursor{}

	ahocorasick.Scan(c.automaton, host, cur, func(m ahocorasick.Match) bool {
		if ok {
			r := c.rules[m.PatternIndex]
			if m.End == rawEnd && r.Star && strings.EqualFold(r.Suffix, c.rules[ruleIdx].Suffix) {
				ruleIdx = m.PatternIndex
			}

			return false
		}

		end := m.End

		switch {
		case end == len(host):
			acceptedEnd = end
			ruleIdx = m.PatternIndex
			rawEnd = m.End
			ok = true

			return false
		case end == len(host)-1 && host[len(host)-1] == '.':
			acceptedEnd = end
			ruleIdx = m.PatternIndex
			rawEnd = m.End
			ok = true

			return false
		default:
			return false
		}
	})

	return acceptedEnd, ruleIdx, rawEnd, ok
}

// classifyNumeric runs the three-step numeric-host decoder from §4.4.
func (c *Classifier) classifyNumeric(host []byte) (res Result, err error) {
	text := string(host)

	if canonical, ok := parseLiteralIPv4(text); ok {
		res.Host = []byte(canonical)
		res.Flags = NumericHost
		res.TLD = uri.Span{Begin: 0, End: len(res.Host)}

		return res, nil
	}

	if canonical, ok := parseLiteralIPv6(text); ok {
		res.Host = []byte(canonical)
		res.Flags = NumericHost
		res.TLD = uri.Span{Begin: 0, End: len(res.Host)}

		return res, nil
	}

	if addr, ok := parseObscuredIPv4(text); ok {
		canonical := formatDottedQuad(addr)

		res.Host = []byte(canonical)
		res.Flags = NumericHost | ObscuredHost
		res.TLD = uri.Span{Begin: 0, End: len(res.Host)}

		return res, nil
	}

	return Result{}, errcode.New(errcode.TLDMissing)
}

// stripBrackets removes one matching pair of "[" "]" around s, used for
// bracketed IPv6 literals.
func stripBrackets(s string) string {
	if len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' {
		return s[1 : len(s)-1]
	}

	return s
}

func looksLikeDottedDecimal(s string) bool {
	if strings.Count(s, ".") != 3 {
		return false
	}

	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}

	return true
}
