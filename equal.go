package simdfind

import "bytes"

// equal0 always reports true: the empty comparison vacuously holds.
func equal0(a, b []byte) bool { return true }

func equal1(a, b []byte) bool  { return *(*[1]byte)(a) == *(*[1]byte)(b) }
func equal2(a, b []byte) bool  { return *(*[2]byte)(a) == *(*[2]byte)(b) }
func equal3(a, b []byte) bool  { return *(*[3]byte)(a) == *(*[3]byte)(b) }
func equal4(a, b []byte) bool  { return *(*[4]byte)(a) == *(*[4]byte)(b) }
func equal5(a, b []byte) bool  { return *(*[5]byte)(a) == *(*[5]byte)(b) }
func equal6(a, b []byte) bool  { return *(*[6]byte)(a) == *(*[6]byte)(b) }
func equal7(a, b []byte) bool  { return *(*[7]byte)(a) == *(*[7]byte)(b) }
func equal8(a, b []byte) bool  { return *(*[8]byte)(a) == *(*[8]byte)(b) }
func equal9(a, b []byte) bool  { return *(*[9]byte)(a) == *(*[9]byte)(b) }
func equal10(a, b []byte) bool { return *(*[10]byte)(a) == *(*[10]byte)(b) }
func equal11(a, b []byte) bool { return *(*[11]byte)(a) == *(*[11]byte)(b) }
func equal12(a, b []byte) bool { return *(*[12]byte)(a) == *(*[12]byte)(b) }
func equal13(a, b []byte) bool { return *(*[13]byte)(a) == *(*[13]byte)(b) }
func equal14(a, b []byte) bool { return *(*[14]byte)(a) == *(*[14]byte)(b) }
func equal15(a, b []byte) bool { return *(*[15]byte)(a) == *(*[15]byte)(b) }
func equal16(a, b []byte) bool { return *(*[16]byte)(a) == *(*[16]byte)(b) }

// equalN is the length-taking verifier used by the Variable dispatch arm,
// where the compared length is not known until runtime.
func equalN(a, b []byte, n int) bool { return bytes.Equal(a[:n], b[:n]) }

// fixedVerifiers indexes equal0..equal16 by comparison length, so the
// Fixed<K> dispatch arm can bind its verifier with a single slice lookup
// at construction time instead of a switch on every search call.
var fixedVerifiers = [17]func(a, b []byte) bool{
	equal0, equal1, equal2, equal3, equal4, equal5, equal6, equal7, equal8,
	equal9, equal10, equal11, equal12, equal13, equal14, equal15, equal16,
}
