package calc

import "github.com/ardnew/calc/log"

// Option configures a single evaluation.
type Option func(config) config

type config struct {
	trace  func(Step)
	logger log.Logger
	limit  int
}

func makeConfig(opts ...Option) config {
	var c config

	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithLogger sets the logger that receives Trace-level records for each
// evaluation step. The zero [log.Logger] discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c config) config {
		c.logger = logger

		return c
	}
}

// WithStepLimit bounds the number of reductions and group resolutions.
// A limit of zero or less uses the number of tokens in the expression,
// which no well-formed expression can exceed.
func WithStepLimit(n int) Option {
	return func(c config) config {
		c.limit = n

		return c
	}
}

// WithTrace registers fn to be called after every evaluation step.
func WithTrace(fn func(Step)) Option {
	return func(c config) config {
		c.trace = fn

		return c
	}
}
