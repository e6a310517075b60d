package simdfind

import (
	"bytes"

	"github.com/coregx/simdfind/internal/vector"
	"golang.org/x/sys/cpu"
)

// maxLanes caps the register-width cascade at 16 lanes on hardware the
// teacher's own heuristics would not treat as wide-SIMD capable, and
// allows the full 32-lane rung otherwise. This is the one place
// golang.org/x/sys/cpu changes matcher behavior; everything else in the
// cascade is plain portable Go.
func maxLanes() int {
	if cpu.X86.HasAVX2 {
		return 32
	}
	return 16
}

// searchCascade implements §4.7's register-width cascade: it picks the
// largest vector width no larger than the effective window E, down to
// 2 lanes, and delegates the actual tiling and verification to
// vector.Search. verify compares needle[1:] against a correctly-sized
// candidate slice of haystack.
func searchCascade(haystack, needle []byte, position int, verify func(a, b []byte) bool) bool {
	l := len(needle)
	h := len(haystack)

	if h <= l {
		// h == l is the only way this can still match; the comparison is
		// a full needle-length equality, not just the anchor verifier's
		// byte range, since byte 0 has not been checked by anything else
		// on this path.
		return h == l && bytes.Equal(haystack, needle)
	}

	e := h - l + 1
	first, anchor := needle[0], needle[position]
	limit := maxLanes()

	switch {
	case e >= 32 && limit >= 32:
		return vector.Search(haystack, needle, position, 32, vector.LoadVec32,
			vector.SplatVec32(first), vector.SplatVec32(anchor), verify)
	case e >= 16:
		return vector.Search(haystack, needle, position, 16, vector.LoadVec16,
			vector.SplatVec16(first), vector.SplatVec16(anchor), verify)
	case e >= 8:
		return vector.Search(haystack, needle, position, 8, vector.LoadVec8,
			vector.SplatVec8(first), vector.SplatVec8(anchor), verify)
	case e >= 4:
		return vector.Search(haystack, needle, position, 4, vector.LoadVec4,
			vector.SplatVec4(first), vector.SplatVec4(anchor), verify)
	default: // e >= 2, since e == 1 is impossible here (h > l implies e >= 2)
		return vector.Search(haystack, needle, position, 2, vector.LoadVec2,
			vector.SplatVec2(first), vector.SplatVec2(anchor), verify)
	}
}
