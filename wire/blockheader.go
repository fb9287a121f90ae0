package wire

import (
	"bytes"
	"io"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

// EquihashSolutionSize is the encoded length, in bytes, of a consensus
// (N=200, K=9) Equihash solution.
const EquihashSolutionSize = 1344

// BlockHeaderNonce is a closed sum type: transparent/Sprout/Overwinter
// headers carry a 32-bit nonce, Sapling headers carry a 256-bit nonce.
type BlockHeaderNonce struct {
	sapling bool
	small   uint32
	wide    chainhash.Hash
}

// NonceFromUint32 builds a non-Sapling (32-bit) nonce.
func NonceFromUint32(v uint32) BlockHeaderNonce {
	return BlockHeaderNonce{small: v}
}

// NonceFromHash builds a Sapling (256-bit) nonce.
func NonceFromHash(h chainhash.Hash) BlockHeaderNonce {
	return BlockHeaderNonce{sapling: true, wide: h}
}

// IsWide reports whether this is the 256-bit Sapling form.
func (n BlockHeaderNonce) IsWide() bool { return n.sapling }

// Uint32 returns the 32-bit form; valid only when !IsWide().
func (n BlockHeaderNonce) Uint32() uint32 { return n.small }

// Hash returns the 256-bit form; valid only when IsWide().
func (n BlockHeaderNonce) Hash() chainhash.Hash { return n.wide }

// BlockHeader is the canonical block header: version, previous-header
// hash, merkle root, time, bits, nonce, and two Sapling-only optional
// fields (hashFinalSaplingRoot, equihash solution).
type BlockHeader struct {
	Version              uint32
	PrevBlock            chainhash.Hash
	MerkleRoot           chainhash.Hash
	HashFinalSaplingRoot chainhash.Hash // zero value when !Flags.HasSapling()
	Timestamp            uint32
	Bits                 Compact
	Nonce                BlockHeaderNonce
	EquihashSolution     []byte // present iff Flags.HasSapling()
}

// EquihashInput returns the byte string hashed, under personalisation, by
// the Equihash verifier: every header field except the solution itself.
func (h *BlockHeader) EquihashInput(flags Flags) []byte {
	var buf bytes.Buffer
	writeUint32LE(&buf, h.Version)
	writeHash(&buf, h.PrevBlock)
	writeHash(&buf, h.MerkleRoot)
	if flags.HasSapling() {
		writeHash(&buf, h.HashFinalSaplingRoot)
	}
	writeUint32LE(&buf, h.Timestamp)
	WriteCompact(&buf, h.Bits)
	if flags.HasSapling() {
		writeHash(&buf, h.Nonce.Hash())
	} else {
		writeUint32LE(&buf, h.Nonce.Uint32())
	}
	return buf.Bytes()
}

// Serialize writes the canonical encoding of h to w.
func (h *BlockHeader) Serialize(w io.Writer, flags Flags) error {
	if _, err := w.Write(h.EquihashInput(flags)); err != nil {
		return err
	}
	if flags.HasSapling() {
		return WriteVarBytes(w, h.EquihashSolution)
	}
	return nil
}

// Deserialize reads the canonical encoding of a BlockHeader from r.
func (h *BlockHeader) Deserialize(r io.Reader, flags Flags) error {
	var err error
	if h.Version, err = readUint32LE(r); err != nil {
		return err
	}
	if h.PrevBlock, err = readHash(r); err != nil {
		return err
	}
	if h.MerkleRoot, err = readHash(r); err != nil {
		return err
	}
	if flags.HasSapling() {
		if h.HashFinalSaplingRoot, err = readHash(r); err != nil {
			return err
		}
	}
	if h.Timestamp, err = readUint32LE(r); err != nil {
		return err
	}
	if h.Bits, err = ReadCompact(r); err != nil {
		return err
	}
	if flags.HasSapling() {
		wideNonce, err := readHash(r)
		if err != nil {
			return err
		}
		h.Nonce = NonceFromHash(wideNonce)
		sol, err := ReadVarBytes(r, EquihashSolutionSize, "equihash solution")
		if err != nil {
			return err
		}
		h.EquihashSolution = sol
	} else {
		nonce, err := readUint32LE(r)
		if err != nil {
			return err
		}
		h.Nonce = NonceFromUint32(nonce)
	}
	return nil
}

// Hash returns the double-SHA-256 of the header's canonical
// serialisation, recomputed on every call rather than cached.
func (h *BlockHeader) Hash(flags Flags) chainhash.Hash {
	var buf bytes.Buffer
	// Serialize never returns an error for an in-memory buffer.
	_ = h.Serialize(&buf, flags)
	return chainhash.DoubleHashH(buf.Bytes())
}
