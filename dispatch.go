package simdfind

// variant is the Go realization of the needle-length dispatch's tagged
// union (§4.8). Each case is a distinct concrete type rather than a tag
// plus a big switch, so the dispatch decision is made once, at
// construction, and SearchIn never re-derives it.
type variant interface {
	searchIn(haystack []byte) bool
}

// emptyVariant backs the Empty case: the empty needle matches any
// haystack, including the empty one.
type emptyVariant struct{}

func (emptyVariant) searchIn(haystack []byte) bool { return true }

// oneVariant backs the One case: a length-1 needle is searched with the
// plain SWAR byte scan, bypassing the anchor-hash/tiling machinery
// entirely since a single byte needs no verification step.
type oneVariant struct {
	b byte
}

func (v oneVariant) searchIn(haystack []byte) bool { return byteSearch(haystack, v.b) }

// genericVariant backs both the Fixed<K> and Variable cases: the only
// difference between them is which verifier was bound at construction
// time (a monomorphized equalK for Fixed<K>, a length-taking equalN
// closure for Variable). The search path itself — register-width
// cascade plus two-byte-anchor tiling — is identical.
type genericVariant struct {
	needle   []byte
	position int
	verify   func(a, b []byte) bool
}

func (v genericVariant) searchIn(haystack []byte) bool {
	return searchCascade(haystack, v.needle, v.position, v.verify)
}

// Searcher is an immutable, freely shareable matcher for one needle. It
// holds no mutable state after construction and allocates nothing on
// the search path, so the same *Searcher may be used concurrently from
// any number of goroutines without synchronization.
type Searcher struct {
	v variant
}

// New constructs a Searcher for needle with the default anchor
// position, len(needle)-1 (the last byte), matching the "default
// position" rule of §3. It never panics, since the default is always
// within bounds for every needle length including zero.
func New(needle []byte) *Searcher {
	position := 0
	if len(needle) > 0 {
		position = len(needle) - 1
	}
	return &Searcher{v: build(needle, position)}
}

// NewWithPosition constructs a Searcher for needle using an explicit
// anchor position. It panics with a *ConstructError if position is out
// of [0, len(needle)) and len(needle) >= 1; the precondition does not
// apply to the empty needle, which always dispatches to Empty
// regardless of position.
func NewWithPosition(needle []byte, position int) *Searcher {
	if len(needle) > 0 && (position < 0 || position >= len(needle)) {
		panic(invalidAnchor(position, len(needle)))
	}
	return &Searcher{v: build(needle, position)}
}

func build(needle []byte, position int) variant {
	needle = append([]byte(nil), needle...) // own a private copy; see §5
	switch l := len(needle); {
	case l == 0:
		return emptyVariant{}
	case l == 1:
		return oneVariant{b: needle[0]}
	case l <= 16:
		return genericVariant{needle: needle, position: position, verify: fixedVerifiers[l-1]}
	default:
		n := l - 1
		return genericVariant{needle: needle, position: position, verify: func(a, b []byte) bool {
			return equalN(a, b, n)
		}}
	}
}

// SearchIn reports whether needle occurs anywhere in haystack. It is
// total: every input, including the empty haystack or a needle longer
// than haystack, produces a boolean answer rather than an error, and
// never allocates.
func (s *Searcher) SearchIn(haystack []byte) bool {
	return s.v.searchIn(haystack)
}
