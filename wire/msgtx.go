package wire

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

// Transaction version constants and version-group identifiers
// that gate the Overwinter/Sapling wire formats.
const (
	TxVersionBitcoin    = 1
	TxVersionSprout     = 2
	TxVersionOverwinter = 3
	TxVersionSapling    = 4

	OverwinterVersionGroupID uint32 = 0x03C48270
	SaplingVersionGroupID    uint32 = 0x892F2085

	overwinteredMask uint32 = 1 << 31
)

// MaxTxInSequenceNum is the sequence number for a final input.
const MaxTxInSequenceNum uint32 = 0xffffffff

// OutPoint defines a transaction output reference.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// IsNull reports whether p is the null outpoint used by coinbase inputs:
// zero hash, index 2^32-1.
func (p OutPoint) IsNull() bool {
	return p.Index == MaxTxInSequenceNum && p.Hash == (chainhash.Hash{})
}

func (p *OutPoint) serialize(w io.Writer) error {
	if err := writeHash(w, p.Hash); err != nil {
		return err
	}
	return writeUint32LE(w, p.Index)
}

// Serialize writes the canonical encoding of p to w. Exported for reuse by
// the sighash engine, which serialises prevouts directly into its rolling
// hash streams.
func (p *OutPoint) Serialize(w io.Writer) error { return p.serialize(w) }

func (p *OutPoint) deserialize(r io.Reader) error {
	var err error
	if p.Hash, err = readHash(r); err != nil {
		return err
	}
	p.Index, err = readUint32LE(r)
	return err
}

// TxIn is a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

func (ti *TxIn) serialize(w io.Writer) error {
	if err := ti.PreviousOutPoint.serialize(w); err != nil {
		return err
	}
	if err := WriteVarBytes(w, ti.SignatureScript); err != nil {
		return err
	}
	return writeUint32LE(w, ti.Sequence)
}

func (ti *TxIn) deserialize(r io.Reader) error {
	if err := ti.PreviousOutPoint.deserialize(r); err != nil {
		return err
	}
	script, err := ReadVarBytes(r, MaxTxSize, "signature script")
	if err != nil {
		return err
	}
	ti.SignatureScript = script
	ti.Sequence, err = readUint32LE(r)
	return err
}

// TxOut is a transaction output.
type TxOut struct {
	Value    uint64
	PkScript []byte
}

// Serialize writes the canonical encoding of to to w. Exported for reuse by
// the sighash engine.
func (to *TxOut) Serialize(w io.Writer) error { return to.serialize(w) }

func (to *TxOut) serialize(w io.Writer) error {
	if err := writeUint64LE(w, to.Value); err != nil {
		return err
	}
	return WriteVarBytes(w, to.PkScript)
}

func (to *TxOut) deserialize(r io.Reader) error {
	var err error
	if to.Value, err = readUint64LE(r); err != nil {
		return err
	}
	script, err := ReadVarBytes(r, MaxTxSize, "pk script")
	if err != nil {
		return err
	}
	to.PkScript = script
	return nil
}

// MaxTxSize is the absolute maximum size, in bytes, of any single
// serialised transaction field; it bounds length-prefix reads against
// maliciously large prefixes and is distinct from (and looser than) the
// per-consensus MaxTransactionSize checked in the pre-verify stage.
const MaxTxSize = 100 * 1000 * 1000

// MsgTx is a transaction: a tagged record over {overwintered flag, version,
// version group id, inputs, outputs, lock time, expiry height, optional
// JoinSplit, optional Sapling}.
type MsgTx struct {
	Overwintered   bool
	Version        uint32
	VersionGroupID uint32
	TxIn           []*TxIn
	TxOut          []*TxOut
	LockTime       uint32
	ExpiryHeight   uint32
	JoinSplit      *JoinSplitData
	Sapling        *SaplingData
}

// IsCoinBase reports whether tx is a coinbase transaction: a
// single input with a null previous outpoint.
func (tx *MsgTx) IsCoinBase() bool {
	return len(tx.TxIn) == 1 && tx.TxIn[0].PreviousOutPoint.IsNull()
}

func (tx *MsgTx) usesGroth16() bool {
	return tx.Version >= TxVersionSapling
}

// versionField packs the overwintered flag into the serialised version's
// high bit.
func (tx *MsgTx) versionField() uint32 {
	v := tx.Version
	if tx.Overwintered {
		v |= overwinteredMask
	}
	return v
}

// Serialize writes the canonical encoding of tx to w.
func (tx *MsgTx) Serialize(w io.Writer) error {
	if err := writeUint32LE(w, tx.versionField()); err != nil {
		return err
	}
	if tx.Overwintered {
		if err := writeUint32LE(w, tx.VersionGroupID); err != nil {
			return err
		}
	}

	if err := WriteVarInt(w, uint64(len(tx.TxIn))); err != nil {
		return err
	}
	for _, in := range tx.TxIn {
		if err := in.serialize(w); err != nil {
			return err
		}
	}
	if err := WriteVarInt(w, uint64(len(tx.TxOut))); err != nil {
		return err
	}
	for _, out := range tx.TxOut {
		if err := out.serialize(w); err != nil {
			return err
		}
	}
	if err := writeUint32LE(w, tx.LockTime); err != nil {
		return err
	}

	if tx.Overwintered {
		if err := writeUint32LE(w, tx.ExpiryHeight); err != nil {
			return err
		}
	}
	sapling := tx.Sapling
	if tx.Version >= TxVersionSapling {
		if sapling == nil {
			sapling = &SaplingData{}
		}
		if err := sapling.serializeBody(w); err != nil {
			return err
		}
	}
	if tx.Version >= TxVersionSprout {
		js := tx.JoinSplit
		if js == nil {
			js = &JoinSplitData{}
		}
		if err := js.serialize(w, tx.usesGroth16()); err != nil {
			return err
		}
	}
	// The binding signature trails everything else, present iff the
	// Sapling bundle is non-empty.
	if tx.Version >= TxVersionSapling && !sapling.IsEmpty() {
		return writeFixed(w, sapling.BindingSig[:], BindingSigSize)
	}
	return nil
}

// Deserialize reads the canonical encoding of a MsgTx from r, routing on
// (overwintered, version, version_group_id). Unknown overwintered
// combinations fail with ErrInvalidFormat.
func (tx *MsgTx) Deserialize(r io.Reader) error {
	rawVersion, err := readUint32LE(r)
	if err != nil {
		return err
	}
	tx.Overwintered = rawVersion&overwinteredMask != 0
	tx.Version = rawVersion &^ overwinteredMask

	if tx.Overwintered {
		if tx.VersionGroupID, err = readUint32LE(r); err != nil {
			return err
		}
		switch tx.VersionGroupID {
		case OverwinterVersionGroupID:
			if tx.Version != TxVersionOverwinter {
				return ErrInvalidFormat
			}
		case SaplingVersionGroupID:
			if tx.Version != TxVersionSapling {
				return ErrInvalidFormat
			}
		default:
			return ErrInvalidFormat
		}
	} else if tx.Version != TxVersionBitcoin && tx.Version != TxVersionSprout {
		return ErrInvalidFormat
	}

	inCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	tx.TxIn = make([]*TxIn, inCount)
	for i := range tx.TxIn {
		tx.TxIn[i] = &TxIn{}
		if err := tx.TxIn[i].deserialize(r); err != nil {
			return err
		}
	}

	outCount, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	tx.TxOut = make([]*TxOut, outCount)
	for i := range tx.TxOut {
		tx.TxOut[i] = &TxOut{}
		if err := tx.TxOut[i].deserialize(r); err != nil {
			return err
		}
	}

	if tx.LockTime, err = readUint32LE(r); err != nil {
		return err
	}

	if tx.Overwintered {
		if tx.ExpiryHeight, err = readUint32LE(r); err != nil {
			return err
		}
	}

	if tx.Version >= TxVersionSapling {
		tx.Sapling = &SaplingData{}
		if err := tx.Sapling.deserializeBody(r); err != nil {
			return err
		}
	}
	if tx.Version >= TxVersionSprout {
		tx.JoinSplit = &JoinSplitData{}
		if err := tx.JoinSplit.deserialize(r, tx.usesGroth16()); err != nil {
			return err
		}
	}
	if tx.Version >= TxVersionSapling && !tx.Sapling.IsEmpty() {
		sig, err := readFixed(r, BindingSigSize)
		if err != nil {
			return err
		}
		copy(tx.Sapling.BindingSig[:], sig)
	}
	return nil
}

// ErrInvalidFormat is returned when the (overwintered, version, version
// group id) combination is not one of the recognised eras.
var ErrInvalidFormat = fmt.Errorf("invalid transaction format")

// SerializeSize returns len(serialize(tx)); block-size enforcement depends
// on this matching the actual serialisation byte for byte.
func (tx *MsgTx) SerializeSize() int {
	var buf bytes.Buffer
	_ = tx.Serialize(&buf)
	return buf.Len()
}

// TxHash returns the double-SHA-256 of the transparent (non-witness)
// serialisation of tx.
func (tx *MsgTx) TxHash() chainhash.Hash {
	var buf bytes.Buffer
	_ = tx.Serialize(&buf)
	return chainhash.DoubleHashH(buf.Bytes())
}

// LockTimeThreshold is the boundary value separating a LockTime
// interpreted as a block height from one interpreted as a Unix timestamp.
const LockTimeThreshold = 500000000

// IsFinal reports whether tx's lock time no longer restricts it from
// inclusion in a block at height, mined at blockTime: a zero lock time, or
// every input already carrying the final sequence number, always
// qualifies; otherwise the lock time is compared against height or
// blockTime depending on which side of LockTimeThreshold it falls.
func (tx *MsgTx) IsFinal(height int64, blockTime uint32) bool {
	if tx.LockTime == 0 {
		return true
	}

	var maxLockTime uint32
	if tx.LockTime < LockTimeThreshold {
		maxLockTime = uint32(height)
	} else {
		maxLockTime = blockTime
	}
	if tx.LockTime < maxLockTime {
		return true
	}

	for _, in := range tx.TxIn {
		if in.Sequence != MaxTxInSequenceNum {
			return false
		}
	}
	return true
}

// maxUint64 is math.MaxUint64, which the math package does not export.
const maxUint64 = 1<<64 - 1

// TotalSpends returns the saturating sum of tx's transparent output
// values, used by the coinbase-overspend and transaction-fee checks.
// It never overflows: the sum is clamped to maxUint64.
func (tx *MsgTx) TotalSpends() uint64 {
	var result uint64
	for _, out := range tx.TxOut {
		if maxUint64-result < out.Value {
			return maxUint64
		}
		result += out.Value
	}
	return result
}

// TotalOut returns the sum of transparent output values and true, or false
// if it would overflow int64 (used by the overspend and overflow checks).
func (tx *MsgTx) TotalOut() (int64, bool) {
	var total int64
	for _, out := range tx.TxOut {
		if out.Value > math.MaxInt64 {
			return 0, false
		}
		next := total + int64(out.Value)
		if next < total {
			return 0, false
		}
		total = next
	}
	return total, true
}
