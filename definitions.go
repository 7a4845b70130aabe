package bloomfilter

import (
	"errors"
	"log/slog"
)

// Filter is a Bloom filter sized for an expected number of items and a
// target false-positive rate. It is not safe for concurrent use; callers
// sharing one Filter must serialize Set, Check and Clear.
type Filter struct {
	bitCount  uint64
	hashCount uint64
	family    *Family
	bitmap    *bitmap
	eval      Evaluator
	logger    *slog.Logger
}

// Rand is the source hash seeds are drawn from.
// *math/rand.Rand and crypto/rand.Reader both satisfy it.
type Rand interface {
	Read([]byte) (int, error)
}

// maxSeedDraws bounds the redraws per hash function when a Rand keeps
// producing seeds that collide with ones already in the family.
const maxSeedDraws = 64

var (
	ErrZeroItems            = errors.New("bloomfilter: items count must be positive")
	ErrBadFalsePositiveRate = errors.New("bloomfilter: false positive rate must be in (0, 1]")
	ErrSizeOverflow         = errors.New("bloomfilter: bit count overflows supported range")
	ErrSeedExhausted        = errors.New("bloomfilter: rand produced too many duplicate seeds")
)
