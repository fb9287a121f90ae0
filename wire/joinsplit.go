package wire

import (
	"io"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

// Sizes of the fixed-width sub-fields of a JoinSplit description.
const (
	NotePlaintextCiphertextSize = 601
	ZCNoteCommitmentSize        = 32
	ZCIncrementalMerkleRootSize = 32

	// PHGR13ProofSize and Groth16ProofSize are the two possible encoded
	// proof widths for a JoinSplit description; which one is present is
	// determined by the enclosing transaction's version (see msgtx.go).
	PHGR13ProofSize  = 296
	Groth16ProofSize = 192
)

// JoinSplitProof is the closed sum type distinguishing a Sprout-era PGHR13
// proof from a transition-era Groth16 proof. Exactly one of the two byte
// slices is non-nil.
type JoinSplitProof struct {
	PHGR13  []byte // 296 bytes when present
	Groth16 []byte // 192 bytes when present
}

func (p JoinSplitProof) isGroth16() bool { return p.Groth16 != nil }

func (p *JoinSplitProof) serialize(w io.Writer) error {
	if p.Groth16 != nil {
		return writeFixed(w, p.Groth16, Groth16ProofSize)
	}
	return writeFixed(w, p.PHGR13, PHGR13ProofSize)
}

func (p *JoinSplitProof) deserialize(r io.Reader, useGroth16 bool) error {
	if useGroth16 {
		b, err := readFixed(r, Groth16ProofSize)
		if err != nil {
			return err
		}
		p.Groth16 = b
		return nil
	}
	b, err := readFixed(r, PHGR13ProofSize)
	if err != nil {
		return err
	}
	p.PHGR13 = b
	return nil
}

// JoinSplitDescription is one Sprout shielded transfer within a
// transaction's JoinSplit vector.
type JoinSplitDescription struct {
	ValuePubOld  uint64
	ValuePubNew  uint64
	Anchor       chainhash.Hash
	Nullifiers   [2]chainhash.Hash
	Commitments  [2]chainhash.Hash
	EphemeralKey chainhash.Hash
	RandomSeed   chainhash.Hash
	MACs         [2]chainhash.Hash
	Proof        JoinSplitProof
	Ciphertexts  [2][NotePlaintextCiphertextSize]byte
}

// Serialize writes the canonical encoding of d to w. Exported for reuse by
// the sighash engine's ZcashJSplitsHash sub-hash.
func (d *JoinSplitDescription) Serialize(w io.Writer) error { return d.serialize(w) }

func (d *JoinSplitDescription) serialize(w io.Writer) error {
	if err := writeUint64LE(w, d.ValuePubOld); err != nil {
		return err
	}
	if err := writeUint64LE(w, d.ValuePubNew); err != nil {
		return err
	}
	if err := writeHash(w, d.Anchor); err != nil {
		return err
	}
	for _, n := range d.Nullifiers {
		if err := writeHash(w, n); err != nil {
			return err
		}
	}
	for _, c := range d.Commitments {
		if err := writeHash(w, c); err != nil {
			return err
		}
	}
	if err := writeHash(w, d.EphemeralKey); err != nil {
		return err
	}
	if err := writeHash(w, d.RandomSeed); err != nil {
		return err
	}
	for _, m := range d.MACs {
		if err := writeHash(w, m); err != nil {
			return err
		}
	}
	if err := d.Proof.serialize(w); err != nil {
		return err
	}
	for _, ct := range d.Ciphertexts {
		if _, err := w.Write(ct[:]); err != nil {
			return err
		}
	}
	return nil
}

func (d *JoinSplitDescription) deserialize(r io.Reader, useGroth16 bool) error {
	var err error
	if d.ValuePubOld, err = readUint64LE(r); err != nil {
		return err
	}
	if d.ValuePubNew, err = readUint64LE(r); err != nil {
		return err
	}
	if d.Anchor, err = readHash(r); err != nil {
		return err
	}
	for i := range d.Nullifiers {
		if d.Nullifiers[i], err = readHash(r); err != nil {
			return err
		}
	}
	for i := range d.Commitments {
		if d.Commitments[i], err = readHash(r); err != nil {
			return err
		}
	}
	if d.EphemeralKey, err = readHash(r); err != nil {
		return err
	}
	if d.RandomSeed, err = readHash(r); err != nil {
		return err
	}
	for i := range d.MACs {
		if d.MACs[i], err = readHash(r); err != nil {
			return err
		}
	}
	if err = d.Proof.deserialize(r, useGroth16); err != nil {
		return err
	}
	for i := range d.Ciphertexts {
		b, err := readFixed(r, NotePlaintextCiphertextSize)
		if err != nil {
			return err
		}
		copy(d.Ciphertexts[i][:], b)
	}
	return nil
}

// JoinSplitData is the transaction-level JoinSplit vector plus the
// authorising key and signature, present on Sprout (version 2) and later
// transactions that include at least one description.
type JoinSplitData struct {
	Descriptions []JoinSplitDescription
	PubKey       chainhash.Hash
	Sig          [64]byte
}

func (j *JoinSplitData) serialize(w io.Writer, useGroth16 bool) error {
	if err := WriteVarInt(w, uint64(len(j.Descriptions))); err != nil {
		return err
	}
	for i := range j.Descriptions {
		if err := j.Descriptions[i].serialize(w); err != nil {
			return err
		}
	}
	if len(j.Descriptions) == 0 {
		return nil
	}
	if err := writeHash(w, j.PubKey); err != nil {
		return err
	}
	return writeFixed(w, j.Sig[:], 64)
}

func (j *JoinSplitData) deserialize(r io.Reader, useGroth16 bool) error {
	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	j.Descriptions = make([]JoinSplitDescription, count)
	for i := range j.Descriptions {
		if err := j.Descriptions[i].deserialize(r, useGroth16); err != nil {
			return err
		}
	}
	if count == 0 {
		return nil
	}
	if j.PubKey, err = readHash(r); err != nil {
		return err
	}
	sig, err := readFixed(r, 64)
	if err != nil {
		return err
	}
	copy(j.Sig[:], sig)
	return nil
}
