package bloomfilter

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Family is an ordered, immutable set of seeded hash functions.
// Function i is hasher.Sum64(seeds[i], item).
type Family struct {
	hasher Hasher
	seeds  []uint64
}

// Len returns the number of hash functions in the family.
func (f *Family) Len() int { return len(f.seeds) }

// Digest evaluates hash function i against item.
func (f *Family) Digest(i int, item []byte) uint64 {
	return f.hasher.Sum64(f.seeds[i], item)
}

// newFamily draws hashCount seeds from rng.
//
// Seeds are kept distinct in their low 32 bits, since some hashers
// (Murmur3) only take a 32-bit seed and two equal seeds would be one hash
// function counted twice.
func newFamily(hashCount uint64, hasher Hasher, rng Rand) (*Family, error) {
	f := &Family{
		hasher: hasher,
		seeds:  make([]uint64, 0, hashCount),
	}
	seen := make(map[uint32]struct{}, hashCount)
	var b [8]byte
	for uint64(len(f.seeds)) < hashCount {
		draws := 0
		for {
			if draws == maxSeedDraws {
				return nil, fmt.Errorf("%w: %d draws for hash function %d", ErrSeedExhausted, draws, len(f.seeds))
			}
			draws++
			if _, err := io.ReadFull(rng, b[:]); err != nil {
				return nil, fmt.Errorf("bloomfilter: drawing hash seed: %w", err)
			}
			seed := binary.LittleEndian.Uint64(b[:])
			if _, dup := seen[uint32(seed)]; dup {
				continue
			}
			seen[uint32(seed)] = struct{}{}
			f.seeds = append(f.seeds, seed)
			break
		}
	}
	return f, nil
}
