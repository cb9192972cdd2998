package urlscan

import "github.com/sirupsen/logrus"

// Option configures an Engine at construction time.
type Option func(*options)

type options struct {
	suffixListPath string
	logger         *logrus.Logger
	defaultScheme  string
	recursionDepth int
	recursionSet   bool
}

// WithSuffixList loads suffix rules from path instead of the built-in
// curated default (suffixlist.Default()).
func WithSuffixList(path string) Option {
	return func(o *options) {
		o.suffixListPath = path
	}
}

// WithLogger attaches a logger used for suffix-list parse diagnostics and
// trace-level discarded-candidate logging during FindURLs. Without one,
// the engine performs no logging, matching spec.md §5's "a scan performs
// no I/O".
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDefaultScheme sets the scheme ParseURL assumes for a schemeless
// input, and FindURLs for a schemeless suffix-list (TLD) match, which
// otherwise gets "http" (mirrors the teacher Parser's SetDefaultScheme).
// FindURLs' "www." and "ftp." matches always take the scheme of their
// matcher prefix.
func WithDefaultScheme(scheme string) Option {
	return func(o *options) {
		o.defaultScheme = scheme
	}
}

// WithRecursionDepth overrides the fixed recursion depth of 1 spec.md
// §4.5 step 5 specifies for nested query-string URL extraction. 0
// disables recursive extraction entirely.
func WithRecursionDepth(n int) Option {
	return func(o *options) {
		o.recursionDepth = n
		o.recursionSet = true
	}
}
