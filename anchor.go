package simdfind

// byteRarity ranks bytes by how often they occur in typical text and
// source code, adapted from the teacher's byte-frequency table: lower
// is rarer. It exists purely to pick a better-than-default anchor
// position; a wrong or missing entry only costs candidate-filtering
// selectivity, never correctness, since every candidate is still
// verified byte-for-byte before being reported as a match.
var byteRarity = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// rarestOtherThanFirst returns the position, other than 0, of the
// rarest byte in needle. Position 0 is always used as the first anchor
// byte (see §4.5), so the second anchor byte should be chosen from the
// remaining positions for maximum selectivity.
func rarestOtherThanFirst(needle []byte) int {
	best := 1
	bestRank := byteRarity[needle[1]]
	for i := 2; i < len(needle); i++ {
		if r := byteRarity[needle[i]]; r < bestRank {
			best, bestRank = i, r
		}
	}
	return best
}

// NewAuto constructs a Searcher using an anchor position chosen by
// empirical byte rarity rather than the fixed last-byte default,
// trading a little construction-time work for better candidate
// filtering on needles whose last byte happens to be common (for
// example a needle ending in a space or a vowel). For needles shorter
// than 2 bytes this is equivalent to New.
func NewAuto(needle []byte) *Searcher {
	if len(needle) < 2 {
		return New(needle)
	}
	return NewWithPosition(needle, rarestOtherThanFirst(needle))
}
