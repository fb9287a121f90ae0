// Package sighash implements the era-selective transaction signature
// message: a Sprout-era double-SHA-256 mode with its historical
// degenerate-index quirk, and an Overwinter/Sapling personalised BLAKE2b
// mode built from six cacheable sub-hashes.
package sighash

import (
	"bytes"
	"encoding/binary"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/wire"
)

// Base is the SIGHASH base mode.
type Base uint32

const (
	BaseAll    Base = 1
	BaseNone   Base = 2
	BaseSingle Base = 3
)

// Type packs a base mode with the ANYONECANPAY bit, mirroring the on-wire
// sighash type byte.
type Type struct {
	Base         Base
	AnyoneCanPay bool
}

// IsDefined reports whether u, with its ANYONECANPAY bit masked off, is
// exactly one of ALL/NONE/SINGLE. Used by SCRIPT_VERIFY_STRICTENC.
func IsDefined(u uint32) bool {
	switch u &^ 0x80 {
	case 1, 2, 3:
		return true
	default:
		return false
	}
}

// TypeFromUint32 decodes a sighash type byte, tolerating undefined base
// values by defaulting to ALL — it never fails.
func TypeFromUint32(u uint32) Type {
	t := Type{AnyoneCanPay: u&0x80 == 0x80}
	switch u & 0x1f {
	case 2:
		t.Base = BaseNone
	case 3:
		t.Base = BaseSingle
	default:
		t.Base = BaseAll
	}
	return t
}

// Uint32 re-encodes t as a sighash type byte.
func (t Type) Uint32() uint32 {
	v := uint32(t.Base)
	if t.AnyoneCanPay {
		v |= 0x80
	}
	return v
}

// Cache memoises the six sub-hashes of the Overwinter/Sapling sighash so
// that signing every input of a transaction is linear, not quadratic, in
// the number of inputs. The caller is responsible for discarding a Cache
// once the underlying transaction mutates.
type Cache struct {
	populated          bool
	hashPrevouts       chainhash.Hash
	hashSequence       chainhash.Hash
	hashOutputs        chainhash.Hash
	hashJoinSplit      chainhash.Hash
	hashSaplingSpends  chainhash.Hash
	hashSaplingOutputs chainhash.Hash
}

// Signer is the minimal view of a transaction the sighash engine needs.
type Signer struct {
	Overwintered   bool
	Version        uint32
	VersionGroupID uint32
	Inputs         []wire.OutPoint
	Sequences      []uint32
	Outputs        []*wire.TxOut
	LockTime       uint32
	ExpiryHeight   uint32
	JoinSplit      *wire.JoinSplitData
	Sapling        *wire.SaplingData
}

// SignerFromTx builds a Signer view of tx.
func SignerFromTx(tx *wire.MsgTx) *Signer {
	s := &Signer{
		Overwintered:   tx.Overwintered,
		Version:        tx.Version,
		VersionGroupID: tx.VersionGroupID,
		Outputs:        tx.TxOut,
		LockTime:       tx.LockTime,
		ExpiryHeight:   tx.ExpiryHeight,
		JoinSplit:      tx.JoinSplit,
		Sapling:        tx.Sapling,
	}
	s.Inputs = make([]wire.OutPoint, len(tx.TxIn))
	s.Sequences = make([]uint32, len(tx.TxIn))
	for i, in := range tx.TxIn {
		s.Inputs[i] = in.PreviousOutPoint
		s.Sequences[i] = in.Sequence
	}
	return s
}

type signatureVersion int

const (
	versionSprout signatureVersion = iota
	versionOverwinter
	versionSapling
)

func (s *Signer) signatureVersion() signatureVersion {
	if !s.Overwintered {
		return versionSprout
	}
	if s.VersionGroupID == wire.SaplingVersionGroupID {
		return versionSapling
	}
	return versionOverwinter
}

// placeholderOutputValue is the value carried by the blanked outputs the
// SIGHASH_SINGLE rewrite inserts before the signed output: all ones, the
// default output value, rather than zero.
const placeholderOutputValue uint64 = 0xffffffffffffffff

// NoInput marks a SignatureHash call that has no associated transparent
// input, e.g. the placeholder hash computed before any input is signed.
const NoInput = -1

// SignatureHash computes the sighash for the given transparent input
// (NoInput for none), its amount, the previous output's pubkey script, the
// sighash type byte, and the active consensus branch id. cache, if
// non-nil, is consulted and then updated with the six reusable Overwinter/
// Sapling sub-hashes when the sighash type is plain SIGHASH_ALL; it is
// ignored for other sighash types and on the Sprout path, which has none.
func (s *Signer) SignatureHash(
	cache *Cache,
	inputIndex int,
	inputAmount uint64,
	scriptPubKey []byte,
	sighashType uint32,
	consensusBranchID uint32,
) chainhash.Hash {
	t := TypeFromUint32(sighashType)
	if s.signatureVersion() == versionSprout {
		return s.signatureHashSprout(inputIndex, scriptPubKey, sighashType, t)
	}
	sapling := s.signatureVersion() == versionSapling
	return s.signatureHashPostOverwinter(cache, inputIndex, inputAmount, scriptPubKey, sighashType, t, consensusBranchID, sapling)
}

// signatureHashSprout rewrites a pared-down copy of the transaction (input
// scripts substituted/pruned and outputs pruned per sighashtype) and
// double-SHA-256es its serialisation together with the sighash type.
//
// Preserves the historical degenerate case: an out-of-range input index
// returns H256(1) rather than an error, matching consensus behaviour that
// shipped before the condition was ever checked and can never be changed
// without a hard fork.
func (s *Signer) signatureHashSprout(inputIndex int, scriptPubKey []byte, sighashType uint32, t Type) chainhash.Hash {
	if inputIndex < 0 || inputIndex >= len(s.Inputs) {
		var h chainhash.Hash
		h[0] = 1
		return h
	}

	var ins []*wire.TxIn
	if t.AnyoneCanPay {
		ins = []*wire.TxIn{{
			PreviousOutPoint: s.Inputs[inputIndex],
			SignatureScript:  scriptPubKey,
			Sequence:         s.Sequences[inputIndex],
		}}
	} else {
		ins = make([]*wire.TxIn, len(s.Inputs))
		for n := range s.Inputs {
			seq := s.Sequences[n]
			if n != inputIndex && (t.Base == BaseSingle || t.Base == BaseNone) {
				seq = 0
			}
			script := []byte{}
			if n == inputIndex {
				script = scriptPubKey
			}
			ins[n] = &wire.TxIn{
				PreviousOutPoint: s.Inputs[n],
				SignatureScript:  script,
				Sequence:         seq,
			}
		}
	}

	var outs []*wire.TxOut
	switch t.Base {
	case BaseAll:
		outs = s.Outputs
	case BaseSingle:
		outs = make([]*wire.TxOut, inputIndex+1)
		for n := range outs {
			if n == inputIndex && n < len(s.Outputs) {
				outs[n] = s.Outputs[n]
			} else {
				// Placeholder outputs serialise with the all-ones value,
				// not zero; the signed message depends on it.
				outs[n] = &wire.TxOut{Value: placeholderOutputValue, PkScript: []byte{}}
			}
		}
	case BaseNone:
		outs = nil
	}

	tx := &wire.MsgTx{
		Overwintered:   s.Overwintered,
		Version:        s.Version,
		VersionGroupID: s.VersionGroupID,
		TxIn:           ins,
		TxOut:          outs,
		LockTime:       s.LockTime,
		ExpiryHeight:   s.ExpiryHeight,
	}
	if s.JoinSplit != nil {
		// A nulled signature for signing: the pubkey is retained so that
		// its bytes still enter the preimage, but the actual signature
		// being produced cannot sign over itself.
		tx.JoinSplit = &wire.JoinSplitData{
			Descriptions: s.JoinSplit.Descriptions,
			PubKey:       s.JoinSplit.PubKey,
		}
	}

	var buf bytes.Buffer
	_ = tx.Serialize(&buf)
	var typeBytes [4]byte
	binary.LittleEndian.PutUint32(typeBytes[:], sighashType)
	buf.Write(typeBytes[:])

	return chainhash.DoubleHashH(buf.Bytes())
}
