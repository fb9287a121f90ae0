package sighash

import (
	"testing"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

func TestHSig(t *testing.T) {
	fill := func(b byte) chainhash.Hash {
		var h chainhash.Hash
		for i := range h {
			h[i] = b
		}
		return h
	}

	randomSeed := fill(0x61)
	nullifiers := [2]chainhash.Hash{fill(0x62), fill(0x63)}
	pubKey := fill(0x64)

	got := HSig(randomSeed, nullifiers, pubKey).String()
	want := "a8cba69f1fa329c055756b4af900f8a00b61e44f4cb8a1824ceb58b90a5b8113"
	if got != want {
		t.Fatalf("HSig = %s, want %s", got, want)
	}
}
