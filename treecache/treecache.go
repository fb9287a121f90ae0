// Package treecache provides the per-transaction interstitial Sprout tree
// cache: a transaction with several JoinSplit descriptions must chain each
// description's anchor against the result of the previous description's
// two appends, before any of that state is persisted by the external
// chain-writer.
package treecache

import (
	"fmt"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/merkletree"
)

// PersistentSproutTrees is the subset of the chain-view tree-state
// interface this cache needs: looking up a persisted Sprout tree by its
// root.
type PersistentSproutTrees interface {
	SproutTreeAt(root chainhash.Hash) (*merkletree.Tree, bool)
}

// noPersistent backs a Cache created with NewEmpty, used by callers that
// have no persisted anchors to fall back to (e.g. verifying a lone
// transaction against only its own interstitial state).
type noPersistent struct{}

func (noPersistent) SproutTreeAt(chainhash.Hash) (*merkletree.Tree, bool) { return nil, false }

// Cache holds Sprout tree states produced by appends that have not yet
// been committed to persistent storage, keyed by the root they produce.
type Cache struct {
	persistent   PersistentSproutTrees
	interstitial map[chainhash.Hash]*merkletree.Tree
}

// New returns a Cache backed by persistent. The empty Sprout tree is
// pre-seeded: it is always a valid anchor (the first shielded transfer
// on the chain extends it) but a store has no reason to have persisted
// it.
func New(persistent PersistentSproutTrees) *Cache {
	empty := merkletree.NewSprout()
	return &Cache{
		persistent:   persistent,
		interstitial: map[chainhash.Hash]*merkletree.Tree{empty.Root(): empty},
	}
}

// NewEmpty returns a Cache with no persistent backing.
func NewEmpty() *Cache {
	return New(noPersistent{})
}

// ContinueRoot looks up the tree whose root is anchor (first checking the
// interstitial cache, then falling back to persistent storage), appends
// the two given commitments to a clone of it, and records the resulting
// tree under its new root. It fails if anchor resolves to neither.
func (c *Cache) ContinueRoot(anchor chainhash.Hash, commitments [2]chainhash.Hash) error {
	tree, ok := c.interstitial[anchor]
	if !ok {
		persisted, ok := c.persistent.SproutTreeAt(anchor)
		if !ok {
			return fmt.Errorf("unknown anchor: %s", anchor)
		}
		tree = persisted.Clone()
	} else {
		tree = tree.Clone()
	}

	if err := tree.Append(commitments[0]); err != nil {
		return err
	}
	if err := tree.Append(commitments[1]); err != nil {
		return err
	}

	c.interstitial[tree.Root()] = tree
	return nil
}
