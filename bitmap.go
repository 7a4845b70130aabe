package bloomfilter

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// bitmap is a fixed-length bit array. Unlike bitset.BitSet it never grows:
// an index outside [0, n) is a bug in the caller and panics.
type bitmap struct {
	n    uint64
	bits *bitset.BitSet
}

func newBitmap(n uint64) *bitmap {
	return &bitmap{n: n, bits: bitset.New(uint(n))}
}

func (b *bitmap) mustIndex(i uint64) uint {
	if i >= b.n {
		panic(fmt.Sprintf("bloomfilter: bit index %d out of range [0,%d)", i, b.n))
	}
	return uint(i)
}

func (b *bitmap) set(i uint64) {
	b.bits.Set(b.mustIndex(i))
}

func (b *bitmap) get(i uint64) bool {
	return b.bits.Test(b.mustIndex(i))
}

func (b *bitmap) clearAll() {
	b.bits.ClearAll()
}

// count returns the number of set bits.
func (b *bitmap) count() uint64 {
	return uint64(b.bits.Count())
}
