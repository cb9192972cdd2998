package matcher

import (
	"github.com/hueristiq/hq-go-urlscan/internal/ahocorasick"
	"github.com/hueristiq/hq-go-urlscan/suffixlist"
)

// Set is the process-wide, immutable matcher table plus the automaton
// indexed over its patterns. Build it once at engine initialization and
// read it concurrently thereafter.
type Set struct {
	matchers  []Matcher
	automaton *ahocorasick.Automaton
}

// New builds a Set from the static matcher table plus one TLDMatch
// matcher per suffix-list rule.
func New(rules []suffixlist.Rule) *Set {
	matchers := staticMatchers()

	for _, r := range rules {
		flags := TLDMatch
		if r.Star {
			flags |= StarMatch
		}

		matchers = append(matchers, Matcher{
			Pattern: r.Pattern(),
			Family:  FamilyTLD,
			Flags:   flags,
		})
	}

	patterns := make([][]byte, len(matchers))
	for i, m := range matchers {
		patterns[i] = m.Pattern
	}

	return &Set{
		matchers:  matchers,
		automaton: ahocorasick.Build(patterns),
	}
}

// Automaton returns the compiled Aho-Corasick automaton indexed over
// this Set's matcher patterns.
func (s *Set) Automaton() *ahocorasick.Automaton {
	return s.automaton
}

// Matcher returns the matcher registered at idx (the PatternIndex an
// ahocorasick.Match reports).
func (s *Set) Matcher(idx int) Matcher {
	return s.matchers[idx]
}

// Len reports how many matchers this set holds.
func (s *Set) Len() int {
	return len(s.matchers)
}
