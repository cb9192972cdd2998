package suffixlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Rule is one compiled suffix-list entry. Suffix never carries the
// synthesized leading "." or the "*." wildcard marker — Star records the
// wildcard separately so callers can apply the "one extra label" rule
// without re-parsing the original line.
type Rule struct {
	Suffix string
	Star   bool
}

// Pattern returns the literal byte pattern the automaton indexes this rule
// under: the suffix with a synthesized leading dot, lowercased.
func (r Rule) Pattern() []byte {
	return []byte("." + strings.ToLower(r.Suffix))
}

// Option configures Load.
type Option func(*options)

type options struct {
	logger *logrus.Logger
}

// WithLogger attaches a logger used to record skipped exception rules and
// malformed lines at debug level. Without one, Load logs nothing.
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Load reads a suffix-list file from path and returns its compiled rules.
func Load(path string, opts ...Option) (rules []Rule, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return Parse(f, opts...)
}

// Parse reads a suffix-list file from r and returns its compiled rules.
func Parse(r io.Reader, opts ...Option) (rules []Rule, err error) {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "!") {
			if o.logger != nil {
				o.logger.WithField("rule", line).Debug("suffixlist: skipping exception rule")
			}

			continue
		}

		rule := Rule{}

		if strings.HasPrefix(line, "*.") {
			rule.Star = true
			line = line[len("*."):]
		}

		if line == "" {
			if o.logger != nil {
				o.logger.WithField("rule", line).Debug("suffixlist: skipping malformed rule")
			}

			continue
		}

		rule.Suffix = line

		rules = append(rules, rule)
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
