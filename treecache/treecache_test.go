package treecache

import (
	"testing"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/merkletree"
)

type fakePersistentTrees struct {
	byRoot map[chainhash.Hash]*merkletree.Tree
}

func (f fakePersistentTrees) SproutTreeAt(root chainhash.Hash) (*merkletree.Tree, bool) {
	tree, ok := f.byRoot[root]
	return tree, ok
}

func TestCacheContinueRootFromEmpty(t *testing.T) {
	c := NewEmpty()
	empty := merkletree.NewSprout()

	var c0, c1 chainhash.Hash
	c0[0] = 1
	c1[0] = 2
	if err := c.ContinueRoot(empty.Root(), [2]chainhash.Hash{c0, c1}); err != nil {
		t.Fatalf("ContinueRoot against the empty root: %v", err)
	}

	want := empty.Clone()
	if err := want.Append(c0); err != nil {
		t.Fatalf("reference append c0: %v", err)
	}
	if err := want.Append(c1); err != nil {
		t.Fatalf("reference append c1: %v", err)
	}

	if _, ok := c.interstitial[want.Root()]; !ok {
		t.Fatalf("expected a cached interstitial tree under the new root")
	}
}

func TestCacheContinueRootChainsThroughInterstitial(t *testing.T) {
	c := NewEmpty()
	empty := merkletree.NewSprout()

	var a, b, d, e chainhash.Hash
	a[0], b[0], d[0], e[0] = 1, 2, 3, 4

	if err := c.ContinueRoot(empty.Root(), [2]chainhash.Hash{a, b}); err != nil {
		t.Fatalf("first ContinueRoot: %v", err)
	}

	intermediate := empty.Clone()
	_ = intermediate.Append(a)
	_ = intermediate.Append(b)

	// Second call anchors against the root the first call produced, which
	// only exists in the interstitial cache, not in persistent storage.
	if err := c.ContinueRoot(intermediate.Root(), [2]chainhash.Hash{d, e}); err != nil {
		t.Fatalf("second ContinueRoot against interstitial anchor: %v", err)
	}
}

func TestCacheContinueRootUnknownAnchor(t *testing.T) {
	c := New(fakePersistentTrees{byRoot: map[chainhash.Hash]*merkletree.Tree{}})
	var unknown, c0, c1 chainhash.Hash
	unknown[0] = 0xff
	if err := c.ContinueRoot(unknown, [2]chainhash.Hash{c0, c1}); err == nil {
		t.Fatalf("expected an error for an anchor resolving to neither cache")
	}
}

func TestCacheContinueRootFromPersistent(t *testing.T) {
	persisted := merkletree.NewSprout()

	backing := fakePersistentTrees{byRoot: map[chainhash.Hash]*merkletree.Tree{
		persisted.Root(): persisted,
	}}
	c := New(backing)

	var c0, c1 chainhash.Hash
	c0[0], c1[0] = 9, 10
	if err := c.ContinueRoot(persisted.Root(), [2]chainhash.Hash{c0, c1}); err != nil {
		t.Fatalf("ContinueRoot against a persistent anchor: %v", err)
	}

	// The persisted tree itself must not have been mutated (callers clone
	// to extend).
	if persisted.Root() != merkletree.NewSprout().Root() {
		t.Fatalf("persisted tree must not be mutated by ContinueRoot")
	}
}
