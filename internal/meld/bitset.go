package meld

import "math/bits"

// bitset is a fixed-width set of part indices.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int) { b[i>>6] |= 1 << (uint(i) & 63) }

func (b bitset) has(i int) bool { return b[i>>6]&(1<<(uint(i)&63)) != 0 }

// fill sets bits [0, n).
func (b bitset) fill(n int) {
	for i := range b {
		b[i] = 0
	}
	for i := 0; i < n; i++ {
		b.set(i)
	}
}

// or adds every bit of o.
func (b bitset) or(o bitset) {
	for i := range b {
		b[i] |= o[i]
	}
}

// andNotInto writes a &^ m into b.
func (b bitset) andNotInto(a, m bitset) {
	for i := range b {
		b[i] = a[i] &^ m[i]
	}
}

// next returns the first set bit at or after i, or -1.
func (b bitset) next(i int) int {
	w := i >> 6
	if w >= len(b) {
		return -1
	}
	word := b[w] &^ (1<<(uint(i)&63) - 1)
	for {
		if word != 0 {
			return w<<6 + bits.TrailingZeros64(word)
		}
		w++
		if w >= len(b) {
			return -1
		}
		word = b[w]
	}
}

func (b bitset) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}
