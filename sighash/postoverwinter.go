package sighash

import (
	"bytes"
	"encoding/binary"

	"github.com/minio/blake2b-simd"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/wire"
)

func personalizedHash(personalization string, data []byte) chainhash.Hash {
	var p [16]byte
	copy(p[:], personalization)
	d, err := blake2b.New(&blake2b.Config{Size: 32, Person: p[:]})
	if err != nil {
		panic(err)
	}
	d.Write(data)
	var out chainhash.Hash
	copy(out[:], d.Sum(nil))
	return out
}

// signatureHashPostOverwinter computes the Overwinter/Sapling sighash: a
// single BLAKE2b call personalised with "ZcashSigHash"||LE32(branch id)
// over a preimage built from six reusable sub-hashes plus the
// transaction's scalar fields, followed by (when an input is selected)
// that input's previous output, the substituted script, its amount and
// sequence number.
func (s *Signer) signatureHashPostOverwinter(
	cache *Cache,
	inputIndex int,
	inputAmount uint64,
	scriptPubKey []byte,
	sighashType uint32,
	t Type,
	consensusBranchID uint32,
	sapling bool,
) chainhash.Hash {
	var hashPrevouts, hashSequence, hashOutputs, hashJoinSplit chainhash.Hash
	var hashSaplingSpends, hashSaplingOutputs chainhash.Hash

	// The cache only holds sub-hashes computed under plain SIGHASH_ALL,
	// which are the same for every input; other sighash types zero or
	// narrow some of them, so they neither read nor fill the cache.
	useCache := cache != nil && t == Type{Base: BaseAll}
	cached := useCache && cache.populated

	if cached {
		hashPrevouts = cache.hashPrevouts
		hashSequence = cache.hashSequence
	} else {
		hashPrevouts = s.computeHashPrevouts(t)
		hashSequence = s.computeHashSequence(t)
	}
	hashOutputs = s.computeHashOutputs(cache, t, inputIndex)
	if cached {
		hashJoinSplit = cache.hashJoinSplit
	} else {
		hashJoinSplit = computeHashJoinSplit(s.JoinSplit)
	}
	if sapling {
		if cached {
			hashSaplingSpends = cache.hashSaplingSpends
			hashSaplingOutputs = cache.hashSaplingOutputs
		} else {
			hashSaplingSpends = computeHashSaplingSpends(s.Sapling)
			hashSaplingOutputs = computeHashSaplingOutputs(s.Sapling)
		}
	}

	if useCache {
		cache.populated = true
		cache.hashPrevouts = hashPrevouts
		cache.hashSequence = hashSequence
		cache.hashOutputs = hashOutputs
		cache.hashJoinSplit = hashJoinSplit
		cache.hashSaplingSpends = hashSaplingSpends
		cache.hashSaplingOutputs = hashSaplingOutputs
	}

	var personalization [16]byte
	copy(personalization[:12], "ZcashSigHash")
	binary.LittleEndian.PutUint32(personalization[12:], consensusBranchID)

	version := s.Version
	if s.Overwintered {
		version |= 1 << 31
	}

	var buf bytes.Buffer
	writeUint32(&buf, version)
	writeUint32(&buf, s.VersionGroupID)
	buf.Write(hashPrevouts[:])
	buf.Write(hashSequence[:])
	buf.Write(hashOutputs[:])
	buf.Write(hashJoinSplit[:])
	if sapling {
		buf.Write(hashSaplingSpends[:])
		buf.Write(hashSaplingOutputs[:])
	}
	writeUint32(&buf, s.LockTime)
	writeUint32(&buf, s.ExpiryHeight)
	if sapling {
		var balancing int64
		if s.Sapling != nil {
			balancing = s.Sapling.BalancingValue
		}
		writeInt64(&buf, balancing)
	}
	writeUint32(&buf, sighashType)

	if inputIndex >= 0 && inputIndex < len(s.Inputs) {
		prevout := s.Inputs[inputIndex]
		_ = prevout.Serialize(&buf)
		writeVarBytes(&buf, scriptPubKey)
		writeUint64(&buf, inputAmount)
		writeUint32(&buf, s.Sequences[inputIndex])
	}

	d, err := blake2b.New(&blake2b.Config{Size: 32, Person: personalization[:]})
	if err != nil {
		panic(err)
	}
	d.Write(buf.Bytes())
	var out chainhash.Hash
	copy(out[:], d.Sum(nil))
	return out
}

func (s *Signer) computeHashPrevouts(t Type) chainhash.Hash {
	if t.AnyoneCanPay {
		return chainhash.Hash{}
	}
	var buf bytes.Buffer
	for i := range s.Inputs {
		in := s.Inputs[i]
		_ = in.Serialize(&buf)
	}
	return personalizedHash("ZcashPrevoutHash", buf.Bytes())
}

func (s *Signer) computeHashSequence(t Type) chainhash.Hash {
	if t.AnyoneCanPay || t.Base != BaseAll {
		return chainhash.Hash{}
	}
	var buf bytes.Buffer
	for _, seq := range s.Sequences {
		writeUint32(&buf, seq)
	}
	return personalizedHash("ZcashSequencHash", buf.Bytes())
}

func (s *Signer) computeHashOutputs(cache *Cache, t Type, inputIndex int) chainhash.Hash {
	switch t.Base {
	case BaseAll:
		if cache != nil && cache.populated {
			return cache.hashOutputs
		}
		var buf bytes.Buffer
		for _, out := range s.Outputs {
			_ = out.Serialize(&buf)
		}
		return personalizedHash("ZcashOutputsHash", buf.Bytes())
	case BaseSingle:
		if inputIndex < 0 || inputIndex >= len(s.Outputs) {
			return chainhash.Hash{}
		}
		var buf bytes.Buffer
		_ = s.Outputs[inputIndex].Serialize(&buf)
		return personalizedHash("ZcashOutputsHash", buf.Bytes())
	default:
		return chainhash.Hash{}
	}
}

func computeHashJoinSplit(js *wire.JoinSplitData) chainhash.Hash {
	if js == nil || len(js.Descriptions) == 0 {
		return chainhash.Hash{}
	}
	var buf bytes.Buffer
	for i := range js.Descriptions {
		_ = js.Descriptions[i].Serialize(&buf)
	}
	buf.Write(js.PubKey[:])
	return personalizedHash("ZcashJSplitsHash", buf.Bytes())
}

func computeHashSaplingSpends(s *wire.SaplingData) chainhash.Hash {
	if s == nil || len(s.Spends) == 0 {
		return chainhash.Hash{}
	}
	var buf bytes.Buffer
	for i := range s.Spends {
		_ = s.Spends[i].SerializeForSigning(&buf)
	}
	return personalizedHash("ZcashSSpendsHash", buf.Bytes())
}

func computeHashSaplingOutputs(s *wire.SaplingData) chainhash.Hash {
	if s == nil || len(s.Outputs) == 0 {
		return chainhash.Hash{}
	}
	var buf bytes.Buffer
	for i := range s.Outputs {
		_ = s.Outputs[i].Serialize(&buf)
	}
	return personalizedHash("ZcashSOutputHash", buf.Bytes())
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeInt64(buf *bytes.Buffer, v int64) {
	writeUint64(buf, uint64(v))
}

func writeVarBytes(buf *bytes.Buffer, b []byte) {
	_ = wire.WriteVarBytes(buf, b)
}
