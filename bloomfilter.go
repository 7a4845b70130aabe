package bloomfilter

import (
	"math"
)

// New returns an empty filter sized to hold itemsCount items at the given
// false-positive rate. It fails if itemsCount is 0, if falsePositiveRate is
// not in (0, 1], or if the resulting bitmap is too large to address.
func New(itemsCount uint64, falsePositiveRate float64, opts ...Option) (*Filter, error) {
	bitCount, hashCount, err := validateParams(itemsCount, falsePositiveRate)
	if err != nil {
		return nil, err
	}
	c := newConfig(opts)

	family, err := newFamily(hashCount, c.hasher, c.rng)
	if err != nil {
		return nil, err
	}

	logger := c.logger.With("component", "bloomfilter")
	logger.Debug("bloom filter sized",
		"items", itemsCount,
		"rate", falsePositiveRate,
		"bits", bitCount,
		"hashes", hashCount,
	)
	return &Filter{
		bitCount:  bitCount,
		hashCount: hashCount,
		family:    family,
		bitmap:    newBitmap(bitCount),
		eval:      c.eval,
		logger:    logger,
	}, nil
}

// BitCount returns the size of the filter's bitmap.
func (f *Filter) BitCount() uint64 { return f.bitCount }

// HashCount returns the number of hash functions applied per item.
func (f *Filter) HashCount() uint64 { return f.hashCount }

func (f *Filter) digests(item []byte) []uint64 {
	d := make([]uint64, f.hashCount)
	f.eval.Evaluate(f.family, item, d)
	return d
}

// Set adds item to the filter.
func (f *Filter) Set(item []byte) {
	for _, h := range f.digests(item) {
		f.bitmap.set(h % f.bitCount)
	}
}

// Check reports whether item may have been added.
// false means item was definitely never added since the last Clear.
func (f *Filter) Check(item []byte) bool {
	for _, h := range f.digests(item) {
		if !f.bitmap.get(h % f.bitCount) {
			return false
		}
	}
	return true
}

// Clear empties the filter.
func (f *Filter) Clear() {
	f.bitmap.clearAll()
	f.logger.Debug("bloom filter cleared", "bits", f.bitCount)
}

// FillRatio returns the fraction of bits currently set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bitmap.count()) / float64(f.bitCount)
}

// EstimatedFalsePositiveRate estimates the current false-positive rate
// from the fill ratio, as FillRatio()^HashCount().
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return math.Pow(f.FillRatio(), float64(f.hashCount))
}
