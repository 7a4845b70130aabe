/*
Package bloomfilter implements a classic Bloom filter over byte-slice items.

A filter is sized from the number of items it is expected to hold, n, and a
target false-positive rate, p:

	bits   = ceil(-n * ln(p) / ln(2)^2)
	hashes = ceil(bits / n * ln(2))

Each item is run through every hash function of a randomly seeded family and
the digests, reduced modulo bits, select the bits to set or test. Check never
returns false for an item that was Set since the last Clear; it may return
true for an item that was not (a false positive).

Filters cannot remove items, grow, or be serialized.

# Hashing

A hash function is a pure function of (seed, item). Seeds are drawn once in
New from crypto/rand.Reader, or from the Rand given with WithRand, so two
filters built with the same sizing still use independent hash functions. The
underlying hash is Murmur3 by default; WithHasher selects XXHash or any other
Hasher.

# Evaluation

Digests are computed sequentially by default. A Pool computes them on a set of
long-lived goroutines instead and can be shared between filters:

	pool := bloomfilter.NewPool()
	defer pool.Close()
	f, err := bloomfilter.New(1_000_000, 0.001, bloomfilter.WithEvaluator(pool))

Only the fan-out inside one evaluation is synchronized. A Filter shared between
goroutines must be guarded by the caller.
*/
package bloomfilter
