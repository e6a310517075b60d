package simdfind

import (
	"math/rand"
	"testing"
)

func TestNewAutoAgreesWithOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	const alphabet = "abcdefg ."

	for trial := 0; trial < 500; trial++ {
		n := randomCorpus(rng, rng.Intn(20), alphabet)
		h := randomCorpus(rng, rng.Intn(60), alphabet)
		want := bruteForceContains(h, n)
		if got := NewAuto(n).SearchIn(h); got != want {
			t.Fatalf("trial %d: NewAuto(%q).SearchIn(%q) = %v, want %v", trial, n, h, got, want)
		}
	}
}

func TestRarestOtherThanFirstPicksRarerByte(t *testing.T) {
	// ' ' (space) is common, 'q' is rare in byteRarity.
	needle := []byte("e q")
	pos := rarestOtherThanFirst(needle)
	if needle[pos] != 'q' {
		t.Errorf("expected rarest-other-than-first to land on 'q', got %q at %d", needle[pos], pos)
	}
}

func TestNewAutoShortNeedleFallsBackToNew(t *testing.T) {
	if NewAuto([]byte("a")).SearchIn([]byte("abc")) != New([]byte("a")).SearchIn([]byte("abc")) {
		t.Error("NewAuto should behave like New for needles shorter than 2 bytes")
	}
}
