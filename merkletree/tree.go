// Package merkletree implements the incremental, append-only
// note-commitment trees used by the Sprout and Sapling shielded pools.
//
// Both trees are instances of the same shape: a fixed depth D, a
// pairwise combiner, and a witness of [left, right, parents[D-1]]
// optional slots. The tree is modelled as a flat slice of optional slots
// rather than a pointer graph; it serialises trivially and has no
// self-reference.
package merkletree

import (
	"errors"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

// ErrTreeFull is returned by Append when the tree already holds 2^D
// leaves.
var ErrTreeFull = errors.New("appending to full tree")

// Combiner computes the parent hash of two child hashes at a given
// 0-indexed depth (0 = the layer directly above the leaves).
type Combiner func(left, right chainhash.Hash, depth int) chainhash.Hash

// EmptyRootTable supplies the root of an empty subtree truncated to depth d
// (entries 0..=D), used to complete any missing right/parent slot when
// computing Root.
type EmptyRootTable func(depth int) chainhash.Hash

// Tree is a generic incremental note-commitment tree of depth Depth, using
// Combine to fold pairs and EmptyRoot to fill absent slots.
type Tree struct {
	Depth     int
	Combine   Combiner
	EmptyRoot EmptyRootTable

	left    *chainhash.Hash
	right   *chainhash.Hash
	parents []*chainhash.Hash // length Depth-1
}

// New returns an empty tree of the given depth.
func New(depth int, combine Combiner, emptyRoot EmptyRootTable) *Tree {
	return &Tree{
		Depth:     depth,
		Combine:   combine,
		EmptyRoot: emptyRoot,
		parents:   make([]*chainhash.Hash, depth-1),
	}
}

// Clone returns a deep copy of t so that callers may extend it without
// mutating the tree state the caller was handed: callers never mutate a
// returned tree, they clone to extend.
func (t *Tree) Clone() *Tree {
	clone := &Tree{
		Depth:     t.Depth,
		Combine:   t.Combine,
		EmptyRoot: t.EmptyRoot,
		left:      t.left,
		right:     t.right,
		parents:   make([]*chainhash.Hash, len(t.parents)),
	}
	copy(clone.parents, t.parents)
	return clone
}

// Append inserts a new commitment: left first, then right, then propagates
// the combined hash upward, releasing parent slots as it rises. It fails
// with ErrTreeFull once the tree already holds 2^Depth leaves.
func (t *Tree) Append(commitment chainhash.Hash) error {
	if t.left == nil {
		c := commitment
		t.left = &c
		return nil
	}
	if t.right == nil {
		c := commitment
		t.right = &c
		return nil
	}

	// Both leaf slots are full: combine them and carry the result up
	// through the parent slots, consuming the first empty one.
	combined := t.Combine(*t.left, *t.right, 0)
	c := commitment
	t.left = &c
	t.right = nil

	for depth := 0; depth < len(t.parents); depth++ {
		if t.parents[depth] == nil {
			p := combined
			t.parents[depth] = &p
			return nil
		}
		combined = t.Combine(*t.parents[depth], combined, depth+1)
		t.parents[depth] = nil
	}
	return ErrTreeFull
}

// Root computes the tree's root without mutating state, completing any
// missing right/parent slot with the depth-indexed empty-root constant.
func (t *Tree) Root() chainhash.Hash {
	if t.IsEmpty() {
		return t.EmptyRoot(t.Depth)
	}

	var left, right chainhash.Hash
	if t.left != nil {
		left = *t.left
	} else {
		left = t.EmptyRoot(0)
	}
	if t.right != nil {
		right = *t.right
	} else {
		right = t.EmptyRoot(0)
	}
	root := t.Combine(left, right, 0)

	for depth := 0; depth < len(t.parents); depth++ {
		if t.parents[depth] != nil {
			root = t.Combine(*t.parents[depth], root, depth+1)
		} else {
			root = t.Combine(root, t.EmptyRoot(depth+1), depth+1)
		}
	}
	return root
}

// IsEmpty reports whether no commitment has ever been appended.
func (t *Tree) IsEmpty() bool {
	return t.left == nil
}
