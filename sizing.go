package bloomfilter

import (
	"fmt"
	"math"
)

// maxBitCount is the largest bitmap the platform can index.
const maxBitCount = uint64(math.MaxInt)

// OptimalBitCount returns ceil(-itemsCount * ln(falsePositiveRate) / ln(2)^2),
// the number of bits that minimizes the filter size for the target rate.
//
// The result is never below 1. It returns 0 if the size is not representable
// (a rate of 0 or a NaN rate), so callers can tell an unusable size apart
// from a real one. The caller is responsible for ensuring:
//   - itemsCount > 0
//   - 0 < falsePositiveRate <= 1
func OptimalBitCount(itemsCount uint64, falsePositiveRate float64) uint64 {
	m := math.Ceil(-float64(itemsCount) * math.Log(falsePositiveRate) / (math.Ln2 * math.Ln2))
	if !(m < float64(maxBitCount)) {
		return 0
	}
	if m < 1 {
		return 1
	}
	return uint64(m)
}

// OptimalHashCount returns ceil(bitCount / itemsCount * ln(2)), and at least 1.
func OptimalHashCount(bitCount, itemsCount uint64) uint64 {
	if itemsCount == 0 {
		return 1
	}
	k := math.Ceil(float64(bitCount) / float64(itemsCount) * math.Ln2)
	if k < 1 {
		return 1
	}
	return uint64(k)
}

// validateParams checks the construction inputs and returns the sizing they imply.
func validateParams(itemsCount uint64, falsePositiveRate float64) (bitCount, hashCount uint64, err error) {
	if itemsCount == 0 {
		return 0, 0, ErrZeroItems
	}
	// Written so that NaN fails too.
	if !(falsePositiveRate > 0 && falsePositiveRate <= 1) {
		return 0, 0, fmt.Errorf("%w: got %v", ErrBadFalsePositiveRate, falsePositiveRate)
	}
	bitCount = OptimalBitCount(itemsCount, falsePositiveRate)
	if bitCount == 0 {
		return 0, 0, fmt.Errorf("%w: %d items at rate %v", ErrSizeOverflow, itemsCount, falsePositiveRate)
	}
	return bitCount, OptimalHashCount(bitCount, itemsCount), nil
}
