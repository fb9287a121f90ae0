// Package chainview defines the read-only view of chain state the accept
// stage needs in order to validate a header, block, or transaction
// against everything that came before it: ancestor headers for the
// difficulty retarget and median-time-past, prior transactions for
// transparent-input resolution and coinbase maturity, the nullifier set
// for double-spend detection across both shielded pools, and the
// note-commitment tree roots a JoinSplit or Sapling spend may anchor to.
//
// None of these interfaces specify how the data is stored; a concrete KV
// store implements them elsewhere. The verifier only ever reads through
// this view; all writes happen in the chain-writer.
package chainview

import (
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/merkletree"
	"github.com/shieldcoin/shieldd/wire"
)

// Epoch distinguishes the Sprout and Sapling nullifier/commitment spaces,
// which are disjoint even when a hash happens to collide across them.
type Epoch int

const (
	EpochSprout Epoch = iota
	EpochSapling
)

// BlockHeaderProvider resolves headers by hash or height along the best
// chain, and reports the tip. Needed by the accept stage to walk back the
// difficulty retarget window and compute median-time-past.
type BlockHeaderProvider interface {
	// BestHeight returns the height of the current best block.
	BestHeight() int64
	// HeaderByHeight returns the header at height on the best chain.
	HeaderByHeight(height int64) (*wire.BlockHeader, bool)
	// HeaderByHash returns a header by its hash, on or off the best chain.
	HeaderByHash(hash chainhash.Hash) (*wire.BlockHeader, bool)
	// ContainsBlock reports whether hash names a known block, best-chain
	// or not; used to decide whether the async dispatcher's verification
	// edge has already been passed.
	ContainsBlock(hash chainhash.Hash) bool
	// HeightByHash resolves the height a known block hash was mined at,
	// on or off the best chain; the async dispatcher uses this to derive
	// the height of an incoming header or block from its parent, since
	// headers carry no height field of their own.
	HeightByHash(hash chainhash.Hash) (int64, bool)
}

// TransactionMeta is what the accept stage needs to know about a
// previously-accepted transaction besides its raw bytes: the height it
// was mined at (for coinbase maturity), which of its outputs are already
// spent (for double-spend detection on transparent outputs), and whether
// every output has been spent (BIP30: a transaction hash may not be
// reused while any of its original outputs remain unspent).
type TransactionMeta interface {
	Height() int64
	IsCoinBase() bool
	IsSpent(outputIndex uint32) bool
	IsFullySpent() bool
}

// TransactionProvider resolves a previously-accepted transaction, and its
// metadata, by hash.
type TransactionProvider interface {
	TransactionByHash(hash chainhash.Hash) (*wire.MsgTx, bool)
	TransactionMetaByHash(hash chainhash.Hash) (TransactionMeta, bool)
}

// TransactionOutputProvider resolves a single previous output directly,
// without materialising the whole transaction; the accept stage's
// input-sum and script-evaluation passes use this exclusively.
type TransactionOutputProvider interface {
	PreviousOutput(op wire.OutPoint) (*wire.TxOut, bool)
}

// NullifierTracker reports whether a shielded nullifier has already been
// revealed on the best chain, in the given epoch. Sprout and Sapling
// nullifiers occupy disjoint spaces even when their bit patterns collide.
type NullifierTracker interface {
	ContainsNullifier(epoch Epoch, nullifier chainhash.Hash) bool
}

// TreeStateProvider resolves a persisted note-commitment tree by the root
// it produced, per pool, and maps a block hash to the tree root it left
// behind — the two JoinSplit/Sapling anchors a transaction may reference.
//
// TreeAtBlock lookups have a default implementation in terms of
// BlockRoot + TreeAt (see SproutTreeAtBlock/SaplingTreeAtBlock), so a
// store need only implement the four primitive accessors.
type TreeStateProvider interface {
	SproutTreeAt(root chainhash.Hash) (*merkletree.Tree, bool)
	SaplingTreeAt(root chainhash.Hash) (*merkletree.Tree, bool)
	SproutBlockRoot(blockHash chainhash.Hash) (chainhash.Hash, bool)
	SaplingBlockRoot(blockHash chainhash.Hash) (chainhash.Hash, bool)
}

// SproutTreeAtBlock and SaplingTreeAtBlock resolve a tree by block hash
// through the root that block left behind (block hash -> root -> tree),
// for any TreeStateProvider.
func SproutTreeAtBlock(p TreeStateProvider, blockHash chainhash.Hash) (*merkletree.Tree, bool) {
	root, ok := p.SproutBlockRoot(blockHash)
	if !ok {
		return nil, false
	}
	return p.SproutTreeAt(root)
}

func SaplingTreeAtBlock(p TreeStateProvider, blockHash chainhash.Hash) (*merkletree.Tree, bool) {
	root, ok := p.SaplingBlockRoot(blockHash)
	if !ok {
		return nil, false
	}
	return p.SaplingTreeAt(root)
}

// ChainView is the composite view passed to the accept stage: every
// primitive accessor a TransactionAcceptor, BlockAcceptor, or
// HeaderAcceptor needs, gathered into one argument instead of threaded
// individually.
type ChainView interface {
	BlockHeaderProvider
	TransactionProvider
	TransactionOutputProvider
	NullifierTracker
	TreeStateProvider
}
