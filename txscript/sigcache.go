// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016-2020 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/dchest/siphash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/wire"
)

// ProactiveEvictionDepth is how many blocks deep a block should be before
// its transactions' cached signatures are dropped; by then nothing will
// ask to verify them again outside a deep reorg.
const ProactiveEvictionDepth = 2

// validatedSig is one verified (signature, pubkey) pair, stored under the
// sighash it verified against. txTag is a keyed 64-bit fingerprint of the
// containing transaction so that block-connection can sweep out every
// entry a confirmed transaction contributed without storing full hashes.
type validatedSig struct {
	sig    *ecdsa.Signature
	pubKey *secp256k1.PublicKey
	txTag  uint64
}

// SigCache remembers ECDSA signatures this process has already verified,
// so re-checking a transaction that moved from the mempool into a block
// skips the expensive curve operations. Only signatures that verified
// successfully are ever stored; a failed check is never cached, which
// also blunts the classic attacker-floods-invalid-signatures stall.
//
// When full, Add displaces an arbitrary entry. Go's map iteration order
// varies from run to run and an attacker cannot steer which entry a
// given insertion displaces without a preimage on the sighash, so no
// LRU bookkeeping is kept.
type SigCache struct {
	sync.RWMutex
	sigs   map[chainhash.Hash]validatedSig
	limit  uint
	tagKey [16]byte
}

// NewSigCache returns a cache that holds at most limit verified
// signatures. The per-process transaction-tag key is drawn from the
// system CSPRNG; the only error path is that read failing.
func NewSigCache(limit uint) (*SigCache, error) {
	c := &SigCache{
		sigs:  make(map[chainhash.Hash]validatedSig, limit),
		limit: limit,
	}
	if _, err := rand.Read(c.tagKey[:]); err != nil {
		return nil, err
	}
	return c, nil
}

// txTag fingerprints tx under the cache's SipHash-2-4 key. 64 bits is
// plenty for the sweep in EvictEntries: a collision only evicts a still-
// valid entry early, costing one re-verification.
func (s *SigCache) txTag(tx *wire.MsgTx) uint64 {
	k0 := binary.LittleEndian.Uint64(s.tagKey[0:8])
	k1 := binary.LittleEndian.Uint64(s.tagKey[8:16])
	h := tx.TxHash()
	return siphash.Hash(k0, k1, h[:])
}

// Exists reports whether sig over sigHash under pubKey has already been
// verified. The sighash lookup alone is not trusted: the stored signature
// and key are compared too, so a sighash collision can never vouch for a
// different signature.
//
// Safe for concurrent use; readers only contend with an in-flight Add.
func (s *SigCache) Exists(sigHash chainhash.Hash, sig *ecdsa.Signature, pubKey *secp256k1.PublicKey) bool {
	s.RLock()
	entry, ok := s.sigs[sigHash]
	s.RUnlock()

	return ok && entry.pubKey.IsEqual(pubKey) && entry.sig.IsEqual(sig)
}

// Add records a successfully-verified signature, displacing an arbitrary
// existing entry if the cache is at its limit. tx is the transaction the
// signature came from, recorded as a tag for EvictEntries.
//
// Safe for concurrent use; blocks readers for the duration of the insert.
func (s *SigCache) Add(sigHash chainhash.Hash, sig *ecdsa.Signature, pubKey *secp256k1.PublicKey, tx *wire.MsgTx) {
	if s.limit == 0 {
		return
	}

	s.Lock()
	defer s.Unlock()

	if uint(len(s.sigs))+1 > s.limit {
		for victim := range s.sigs {
			delete(s.sigs, victim)
			break
		}
	}
	s.sigs[sigHash] = validatedSig{sig: sig, pubKey: pubKey, txTag: s.txTag(tx)}
}

// EvictEntries drops every cached signature contributed by a transaction
// in block. The chain-writer calls this with the block now buried
// ProactiveEvictionDepth deep; clearing those entries deliberately, while
// they are known dead, keeps the random displacement in Add from landing
// on entries that are still live.
//
// The sweep runs on its own goroutine since it walks the whole cache; an
// empty cache skips the spawn entirely, which is the common case during
// initial sync.
func (s *SigCache) EvictEntries(block *wire.MsgBlock) {
	s.RLock()
	empty := len(s.sigs) == 0
	s.RUnlock()
	if empty {
		return
	}

	go s.sweep(block)
}

// sweep removes every entry whose transaction tag matches a transaction
// of block. Entries are found by scanning the whole map rather than
// keeping a second tag-keyed index; eviction is rare and off the
// validation path, so the scan is cheaper than the standing index.
func (s *SigCache) sweep(block *wire.MsgBlock) {
	confirmed := make(map[uint64]struct{}, len(block.Transactions))
	for _, tx := range block.Transactions {
		confirmed[s.txTag(tx)] = struct{}{}
	}

	s.Lock()
	for sigHash, entry := range s.sigs {
		if _, ok := confirmed[entry.txTag]; ok {
			delete(s.sigs, sigHash)
		}
	}
	s.Unlock()
}
