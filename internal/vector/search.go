package vector

import "math/bits"

// Search implements the two-byte-anchor generic SIMD matcher: it tiles
// the valid starting positions of haystack into lanes-wide windows, for
// each tile computes a candidate bitmask from the anchor hash, and for
// every set bit runs verify against the corresponding candidate
// position. The final partial tile, if any, is handled by overlapping
// with the previous tile and masking off already-probed positions
// rather than reading past the end of haystack.
//
// Preconditions (enforced by the caller, not here): len(haystack) >
// len(needle), and e := len(haystack)-len(needle)+1 >= lanes.
func Search[T Vector[T]](
	haystack, needle []byte,
	position, lanes int,
	load func([]byte) T,
	hashFirst, hashAnchor T,
	verify func(a, b []byte) bool,
) bool {
	l := len(needle)
	e := len(haystack) - l + 1

	probe := func(s int) uint32 {
		fBlock := load(haystack[s:])
		aBlock := load(haystack[s+position:])
		eq := hashFirst.LanesEq(fBlock).And(hashAnchor.LanesEq(aBlock))
		return eq.Movemask()
	}

	check := func(mask uint32, tileStart int) bool {
		for mask != 0 {
			j := bits.TrailingZeros32(mask)
			c := tileStart + j
			if verify(haystack[c+1:c+l], needle[1:l]) {
				return true
			}
			mask = ClearLowestSet(mask)
		}
		return false
	}

	s := 0
	for s+lanes <= e {
		if check(probe(s), s) {
			return true
		}
		s += lanes
	}

	if remaining := e - s; remaining > 0 {
		tileStart := e - lanes
		mask := probe(tileStart) & (^uint32(0) << uint(lanes-remaining))
		if check(mask, tileStart) {
			return true
		}
	}

	return false
}
