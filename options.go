package bloomfilter

import (
	"crypto/rand"
	"io"
	"log/slog"
)

type config struct {
	rng    Rand
	hasher Hasher
	eval   Evaluator
	logger *slog.Logger
}

// Option configures New.
type Option func(*config)

// WithRand sets the source hash seeds are drawn from. The default is
// crypto/rand.Reader. Pass a fixed-seed *math/rand.Rand for reproducible
// filters.
func WithRand(rng Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithHasher selects the hash function the family is built on.
// The default is Murmur3.
func WithHasher(h Hasher) Option {
	return func(c *config) { c.hasher = h }
}

// WithEvaluator selects how digests are computed for each Set and Check.
// The default is Sequential. A *Pool may be shared by many filters; the
// caller owns it and must Close it.
func WithEvaluator(e Evaluator) Option {
	return func(c *config) { c.eval = e }
}

// WithLogger sets the logger used for debug events. Logging is off by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.rng == nil {
		c.rng = rand.Reader
	}
	if c.hasher == nil {
		c.hasher = Murmur3
	}
	if c.eval == nil {
		c.eval = Sequential{}
	}
	if c.logger == nil {
		c.logger = discardLogger()
	}
	return c
}

type poolConfig struct {
	workers int
	logger  *slog.Logger
}

// PoolOption configures NewPool.
type PoolOption func(*poolConfig)

// WithWorkers sets the number of pool goroutines. Values below 1 mean
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) PoolOption {
	return func(c *poolConfig) { c.workers = n }
}

// WithPoolLogger sets the logger used for pool lifecycle events.
func WithPoolLogger(l *slog.Logger) PoolOption {
	return func(c *poolConfig) { c.logger = l }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
