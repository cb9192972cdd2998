package urlscan

import (
	"github.com/sirupsen/logrus"

	"github.com/hueristiq/hq-go-urlscan/internal/matcher"
	"github.com/hueristiq/hq-go-urlscan/suffixlist"
	"github.com/hueristiq/hq-go-urlscan/tld"
)

const defaultRecursionDepth = 1

// Engine is the immutable, concurrency-safe handle produced by
// NewEngine. Its matcher set and TLD classifier are built once at
// construction; every scanning method reads them without
// synchronization, matching spec.md §5's "matcher set is immutable
// thereafter and may be read concurrently by any number of scanning
// threads".
type Engine struct {
	matchers  *matcher.Set
	tld       *tld.Classifier
	logger    *logrus.Logger
	scheme    string
	recursion int
}

// NewEngine builds an Engine. With no options, it loads the curated
// default suffix list (suffixlist.Default()) and a fixed recursion depth
// of 1.
func NewEngine(opts ...Option) (engine *Engine, err error) {
	o := &options{recursionDepth: defaultRecursionDepth}

	for _, opt := range opts {
		opt(o)
	}

	var rules []suffixlist.Rule

	if o.suffixListPath != "" {
		var slOpts []suffixlist.Option

		if o.logger != nil {
			slOpts = append(slOpts, suffixlist.WithLogger(o.logger))
		}

		rules, err = suffixlist.Load(o.suffixListPath, slOpts...)
		if err != nil {
			return nil, err
		}
	} else {
		rules = suffixlist.Default()
	}

	depth := o.recursionDepth
	if !o.recursionSet {
		depth = defaultRecursionDepth
	}

	engine = &Engine{
		matchers:  matcher.New(rules),
		tld:       tld.New(rules),
		logger:    o.logger,
		scheme:    o.defaultScheme,
		recursion: depth,
	}

	return engine, nil
}

func (e *Engine) discardf(reason string, args ...any) {
	if e.logger == nil {
		return
	}

	e.logger.WithField("reason", reason).Tracef(args[0].(string), args[1:]...)
}
