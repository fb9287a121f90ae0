package chainview

import (
	"testing"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/merkletree"
	"github.com/shieldcoin/shieldd/wire"
)

// countingView implements ChainView, counting ContainsBlock calls and
// answering true only for a single fixed hash.
type countingView struct {
	known   chainhash.Hash
	lookups int
}

func (v *countingView) BestHeight() int64                                  { return 0 }
func (v *countingView) HeaderByHeight(int64) (*wire.BlockHeader, bool)      { return nil, false }
func (v *countingView) HeaderByHash(chainhash.Hash) (*wire.BlockHeader, bool) { return nil, false }
func (v *countingView) HeightByHash(chainhash.Hash) (int64, bool)           { return 0, false }
func (v *countingView) ContainsBlock(hash chainhash.Hash) bool {
	v.lookups++
	return hash == v.known
}
func (v *countingView) TransactionByHash(chainhash.Hash) (*wire.MsgTx, bool) { return nil, false }
func (v *countingView) TransactionMetaByHash(chainhash.Hash) (TransactionMeta, bool) {
	return nil, false
}
func (v *countingView) PreviousOutput(wire.OutPoint) (*wire.TxOut, bool) { return nil, false }
func (v *countingView) ContainsNullifier(Epoch, chainhash.Hash) bool     { return false }
func (v *countingView) SproutTreeAt(chainhash.Hash) (*merkletree.Tree, bool)  { return nil, false }
func (v *countingView) SaplingTreeAt(chainhash.Hash) (*merkletree.Tree, bool) { return nil, false }
func (v *countingView) SproutBlockRoot(chainhash.Hash) (chainhash.Hash, bool) {
	return chainhash.Hash{}, false
}
func (v *countingView) SaplingBlockRoot(chainhash.Hash) (chainhash.Hash, bool) {
	return chainhash.Hash{}, false
}

func TestCachingViewMemoizesContainsBlock(t *testing.T) {
	var known chainhash.Hash
	known[0] = 0xAB

	underlying := &countingView{known: known}
	cached := NewCachingView(underlying, 16)

	for i := 0; i < 5; i++ {
		if !cached.ContainsBlock(known) {
			t.Fatalf("iteration %d: expected known hash to be found", i)
		}
	}
	if underlying.lookups != 1 {
		t.Fatalf("expected exactly one pass-through lookup, got %d", underlying.lookups)
	}

	var unknown chainhash.Hash
	unknown[0] = 0xCD
	if cached.ContainsBlock(unknown) {
		t.Fatal("unknown hash should not be reported as contained")
	}
	if underlying.lookups != 2 {
		t.Fatalf("expected the miss to fall through once, got %d lookups", underlying.lookups)
	}
	if cached.ContainsBlock(unknown) {
		t.Fatal("unknown hash should still miss on a second call")
	}
	if underlying.lookups != 3 {
		t.Fatalf("misses are never cached, expected 3 lookups, got %d", underlying.lookups)
	}
}
