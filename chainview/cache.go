package chainview

import (
	"github.com/decred/dcrd/lru"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

// defaultContainsBlockCacheLimit bounds how many ContainsBlock lookups a
// CachingView remembers. Within this module the async dispatcher's
// verification-edge check calls ContainsBlock once, when its wrapper is
// built; the bound keeps the cache from growing unbounded for callers
// that look blocks up repeatedly on a long-running node.
const defaultContainsBlockCacheLimit = 8192

// CachingView wraps a ChainView, memoizing ContainsBlock lookups in a
// fixed-capacity LRU set: a lookup miss still falls through to the
// wrapped view and is then recorded, so the cache only ever holds
// answers already proven true against the underlying store.
//
// Only ContainsBlock is cached; HeaderByHash/HeaderByHeight and the rest
// of ChainView pass straight through, since their result sets are far
// larger and the accept stage already walks them sequentially rather
// than in the dispatcher's hot repeated-lookup path.
type CachingView struct {
	ChainView

	knownBlocks lru.Cache
}

// NewCachingView wraps view with a ContainsBlock cache sized limit entries.
// A limit of zero uses defaultContainsBlockCacheLimit.
func NewCachingView(view ChainView, limit uint) *CachingView {
	if limit == 0 {
		limit = defaultContainsBlockCacheLimit
	}
	return &CachingView{
		ChainView:   view,
		knownBlocks: lru.NewCache(limit),
	}
}

// ContainsBlock reports whether hash names a known block, consulting the
// cache before falling through to the wrapped view.
func (c *CachingView) ContainsBlock(hash chainhash.Hash) bool {
	if c.knownBlocks.Contains(hash) {
		return true
	}
	if !c.ChainView.ContainsBlock(hash) {
		return false
	}
	c.knownBlocks.Add(hash)
	return true
}
