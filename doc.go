// Package simdfind provides a single-pattern boolean substring matcher
// built around a two-byte-anchor SIMD-style filter, a register-width
// cascade, and per-length verifier specialization.
//
// A Searcher is constructed once for a given needle and then reused
// across any number of SearchIn calls, including concurrently from
// multiple goroutines — construction is the only step that copies or
// allocates.
//
//	s := simdfind.New([]byte("needle"))
//	if s.SearchIn(haystack) {
//		// found
//	}
//
// SearchIn answers only "does needle occur in haystack", never where;
// callers that need match offsets or multiple patterns are out of
// scope for this package.
package simdfind
