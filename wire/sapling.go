package wire

import (
	"io"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

// Sapling sub-record fixed widths.
const (
	ValueCommitmentSize  = 32
	NoteCommitmentSize   = 32
	EphemeralKeySize     = 32
	RandomizedKeySize    = 32
	SaplingProofSize     = 192 // Groth16, fixed-length encoding
	SpendAuthSigSize     = 64
	BindingSigSize       = 64
	SaplingEncCiphertext = 580
	SaplingOutCiphertext = 80
)

// SaplingSpendDescription is one shielded spend within a Sapling bundle.
type SaplingSpendDescription struct {
	ValueCommitment chainhash.Hash
	Anchor          chainhash.Hash
	Nullifier       chainhash.Hash
	RandomizedKey   chainhash.Hash
	Proof           [SaplingProofSize]byte
	SpendAuthSig    [SpendAuthSigSize]byte
}

// Serialize writes the canonical encoding of s to w.
func (s *SaplingSpendDescription) Serialize(w io.Writer) error { return s.serialize(w) }

// SerializeForSigning writes s without its spend-auth signature, the form
// hashed into the sighash's ZcashSSpendsHash sub-hash: the signature
// covers this hash and so cannot be part of it.
func (s *SaplingSpendDescription) SerializeForSigning(w io.Writer) error {
	if err := writeHash(w, s.ValueCommitment); err != nil {
		return err
	}
	if err := writeHash(w, s.Anchor); err != nil {
		return err
	}
	if err := writeHash(w, s.Nullifier); err != nil {
		return err
	}
	if err := writeHash(w, s.RandomizedKey); err != nil {
		return err
	}
	return writeFixed(w, s.Proof[:], SaplingProofSize)
}

func (s *SaplingSpendDescription) serialize(w io.Writer) error {
	if err := writeHash(w, s.ValueCommitment); err != nil {
		return err
	}
	if err := writeHash(w, s.Anchor); err != nil {
		return err
	}
	if err := writeHash(w, s.Nullifier); err != nil {
		return err
	}
	if err := writeHash(w, s.RandomizedKey); err != nil {
		return err
	}
	if err := writeFixed(w, s.Proof[:], SaplingProofSize); err != nil {
		return err
	}
	return writeFixed(w, s.SpendAuthSig[:], SpendAuthSigSize)
}

func (s *SaplingSpendDescription) deserialize(r io.Reader) error {
	var err error
	if s.ValueCommitment, err = readHash(r); err != nil {
		return err
	}
	if s.Anchor, err = readHash(r); err != nil {
		return err
	}
	if s.Nullifier, err = readHash(r); err != nil {
		return err
	}
	if s.RandomizedKey, err = readHash(r); err != nil {
		return err
	}
	proof, err := readFixed(r, SaplingProofSize)
	if err != nil {
		return err
	}
	copy(s.Proof[:], proof)
	sig, err := readFixed(r, SpendAuthSigSize)
	if err != nil {
		return err
	}
	copy(s.SpendAuthSig[:], sig)
	return nil
}

// SaplingOutputDescription is one shielded output within a Sapling bundle.
type SaplingOutputDescription struct {
	ValueCommitment chainhash.Hash
	NoteCommitment  chainhash.Hash
	EphemeralKey    chainhash.Hash
	EncCiphertext   [SaplingEncCiphertext]byte
	OutCiphertext   [SaplingOutCiphertext]byte
	Proof           [SaplingProofSize]byte
}

// Serialize writes the canonical encoding of o to w. Exported for reuse by
// the sighash engine's ZcashSOutputHash sub-hash.
func (o *SaplingOutputDescription) Serialize(w io.Writer) error { return o.serialize(w) }

func (o *SaplingOutputDescription) serialize(w io.Writer) error {
	if err := writeHash(w, o.ValueCommitment); err != nil {
		return err
	}
	if err := writeHash(w, o.NoteCommitment); err != nil {
		return err
	}
	if err := writeHash(w, o.EphemeralKey); err != nil {
		return err
	}
	if err := writeFixed(w, o.EncCiphertext[:], SaplingEncCiphertext); err != nil {
		return err
	}
	if err := writeFixed(w, o.OutCiphertext[:], SaplingOutCiphertext); err != nil {
		return err
	}
	return writeFixed(w, o.Proof[:], SaplingProofSize)
}

func (o *SaplingOutputDescription) deserialize(r io.Reader) error {
	var err error
	if o.ValueCommitment, err = readHash(r); err != nil {
		return err
	}
	if o.NoteCommitment, err = readHash(r); err != nil {
		return err
	}
	if o.EphemeralKey, err = readHash(r); err != nil {
		return err
	}
	enc, err := readFixed(r, SaplingEncCiphertext)
	if err != nil {
		return err
	}
	copy(o.EncCiphertext[:], enc)
	out, err := readFixed(r, SaplingOutCiphertext)
	if err != nil {
		return err
	}
	copy(o.OutCiphertext[:], out)
	proof, err := readFixed(r, SaplingProofSize)
	if err != nil {
		return err
	}
	copy(o.Proof[:], proof)
	return nil
}

// SaplingData is the transaction-level Sapling bundle: a signed balancing
// value, the spend and output description vectors, and a binding signature
// present iff the bundle is non-empty.
type SaplingData struct {
	BalancingValue int64
	Spends         []SaplingSpendDescription
	Outputs        []SaplingOutputDescription
	BindingSig     [BindingSigSize]byte
}

// IsEmpty reports whether the bundle has neither spends nor outputs.
func (s *SaplingData) IsEmpty() bool {
	return s == nil || (len(s.Spends) == 0 && len(s.Outputs) == 0)
}

// serializeBody writes the balancing value and the two description
// vectors. The binding signature is not part of the body: it trails the
// whole transaction, after any JoinSplit section, and MsgTx writes it
// there.
func (s *SaplingData) serializeBody(w io.Writer) error {
	if err := writeInt64LE(w, s.BalancingValue); err != nil {
		return err
	}
	if err := WriteVarInt(w, uint64(len(s.Spends))); err != nil {
		return err
	}
	for i := range s.Spends {
		if err := s.Spends[i].serialize(w); err != nil {
			return err
		}
	}
	if err := WriteVarInt(w, uint64(len(s.Outputs))); err != nil {
		return err
	}
	for i := range s.Outputs {
		if err := s.Outputs[i].serialize(w); err != nil {
			return err
		}
	}
	return nil
}

func (s *SaplingData) deserializeBody(r io.Reader) error {
	var err error
	if s.BalancingValue, err = readInt64LE(r); err != nil {
		return err
	}
	spendCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	s.Spends = make([]SaplingSpendDescription, spendCount)
	for i := range s.Spends {
		if err := s.Spends[i].deserialize(r); err != nil {
			return err
		}
	}
	outCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	s.Outputs = make([]SaplingOutputDescription, outCount)
	for i := range s.Outputs {
		if err := s.Outputs[i].deserialize(r); err != nil {
			return err
		}
	}
	return nil
}
