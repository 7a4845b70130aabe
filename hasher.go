package bloomfilter

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Hasher computes a 64-bit digest of data under seed.
// Implementations must be pure: the same seed and data always give the same
// digest, and calls must be safe from multiple goroutines.
type Hasher interface {
	Sum64(seed uint64, data []byte) uint64
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc func(seed uint64, data []byte) uint64

func (f HasherFunc) Sum64(seed uint64, data []byte) uint64 { return f(seed, data) }

// Murmur3 is the default Hasher, 64-bit MurmurHash3.
// Only the low 32 bits of the seed are used.
var Murmur3 Hasher = HasherFunc(func(seed uint64, data []byte) uint64 {
	return murmur3.Sum64WithSeed(data, uint32(seed))
})

// XXHash is a Hasher using seeded XXH64.
var XXHash Hasher = HasherFunc(func(seed uint64, data []byte) uint64 {
	d := xxhash.NewWithSeed(seed)
	d.Write(data)
	return d.Sum64()
})
