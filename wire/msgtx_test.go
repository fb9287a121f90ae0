package wire

import (
	"bytes"
	"testing"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

// sample1In2OutTx builds a transparent, pre-Overwinter (version 1)
// transaction with one input and two outputs, modelled on the 1-in/2-out tx
// at block 30003: its version and lock time match that transaction, while
// the previous hash, scripts and values are placeholders.
func sample1In2OutTx() *MsgTx {
	var prevHash chainhash.Hash
	copy(prevHash[:], bytes.Repeat([]byte{0xcf}, chainhash.HashSize))
	return &MsgTx{
		Version: TxVersionBitcoin,
		TxIn: []*TxIn{
			{
				PreviousOutPoint: OutPoint{Hash: prevHash, Index: 1},
				SignatureScript:  []byte{0x01, 0x02, 0x03},
				Sequence:         MaxTxInSequenceNum,
			},
		},
		TxOut: []*TxOut{
			{Value: 5000, PkScript: []byte{0x76, 0xa9, 0x14}},
			{Value: 1234, PkScript: []byte{0xa9, 0x14}},
		},
		LockTime: 29992,
	}
}

func roundTrip(t *testing.T, tx *MsgTx) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}

	var decoded MsgTx
	if err := decoded.Deserialize(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("deserialize: %v", err)
	}

	var reencoded bytes.Buffer
	if err := decoded.Serialize(&reencoded); err != nil {
		t.Fatalf("re-serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), reencoded.Bytes()) {
		t.Fatalf("round-trip mismatch:\n got %x\nwant %x", reencoded.Bytes(), buf.Bytes())
	}
	if decoded.Overwintered != tx.Overwintered ||
		decoded.Version != tx.Version ||
		decoded.LockTime != tx.LockTime ||
		len(decoded.TxIn) != len(tx.TxIn) ||
		len(decoded.TxOut) != len(tx.TxOut) {
		t.Fatalf("round-trip field mismatch: got %+v, want %+v", decoded, tx)
	}
	return buf.Bytes()
}

func TestTransparentTransactionRoundTrip(t *testing.T) {
	tx := sample1In2OutTx()
	raw := roundTrip(t, tx)

	if tx.Overwintered {
		t.Fatalf("expected overwintered=false")
	}
	if tx.Version != 1 {
		t.Fatalf("expected version=1, got %d", tx.Version)
	}
	if tx.LockTime != 29992 {
		t.Fatalf("expected lock_time=29992, got %d", tx.LockTime)
	}
	if got := tx.SerializeSize(); got != len(raw) {
		t.Fatalf("SerializeSize()=%d does not match actual serialisation length %d", got, len(raw))
	}
}

func TestOverwinterTransactionRoundTrip(t *testing.T) {
	tx := &MsgTx{
		Overwintered:   true,
		Version:        TxVersionOverwinter,
		VersionGroupID: OverwinterVersionGroupID,
		TxIn: []*TxIn{
			{PreviousOutPoint: OutPoint{Index: MaxTxInSequenceNum}, Sequence: MaxTxInSequenceNum},
		},
		TxOut:        []*TxOut{{Value: 42, PkScript: []byte{0x51}}},
		LockTime:     0,
		ExpiryHeight: 10,
	}
	roundTrip(t, tx)
	if !tx.IsCoinBase() {
		t.Fatalf("expected a single null-prevout input to report as coinbase")
	}
}

func TestSaplingTransactionRoundTrip(t *testing.T) {
	tx := &MsgTx{
		Overwintered:   true,
		Version:        TxVersionSapling,
		VersionGroupID: SaplingVersionGroupID,
		TxIn: []*TxIn{
			{PreviousOutPoint: OutPoint{Index: MaxTxInSequenceNum}, Sequence: MaxTxInSequenceNum},
		},
		TxOut:        []*TxOut{{Value: 7, PkScript: []byte{0x51}}},
		LockTime:     5,
		ExpiryHeight: 20,
	}
	roundTrip(t, tx)
}

func TestSaplingShieldedTransactionRoundTrip(t *testing.T) {
	var spend SaplingSpendDescription
	spend.ValueCommitment[0] = 0x11
	spend.Anchor[0] = 0x22
	spend.Nullifier[0] = 0x33
	spend.RandomizedKey[0] = 0x44
	spend.Proof[0] = 0x55
	spend.SpendAuthSig[0] = 0x66

	var output SaplingOutputDescription
	output.ValueCommitment[0] = 0x77
	output.NoteCommitment[0] = 0x88
	output.EphemeralKey[0] = 0x99
	output.Proof[0] = 0xaa

	js := &JoinSplitData{
		Descriptions: []JoinSplitDescription{{
			ValuePubOld: 1000,
			Proof:       JoinSplitProof{Groth16: make([]byte, Groth16ProofSize)},
		}},
	}
	js.PubKey[0] = 0xbb
	js.Sig[0] = 0xcc

	tx := &MsgTx{
		Overwintered:   true,
		Version:        TxVersionSapling,
		VersionGroupID: SaplingVersionGroupID,
		TxIn: []*TxIn{
			{PreviousOutPoint: OutPoint{Index: MaxTxInSequenceNum}, Sequence: MaxTxInSequenceNum},
		},
		TxOut:        []*TxOut{{Value: 7, PkScript: []byte{0x51}}},
		LockTime:     5,
		ExpiryHeight: 20,
		JoinSplit:    js,
		Sapling: &SaplingData{
			BalancingValue: -9,
			Spends:         []SaplingSpendDescription{spend},
			Outputs:        []SaplingOutputDescription{output},
		},
	}
	tx.Sapling.BindingSig[0] = 0xdd

	raw := roundTrip(t, tx)

	// The binding signature trails the whole transaction, after the
	// JoinSplit section.
	if raw[len(raw)-BindingSigSize] != 0xdd {
		t.Fatalf("binding signature is not the final %d bytes of the serialisation", BindingSigSize)
	}

	var decoded MsgTx
	if err := decoded.Deserialize(bytes.NewReader(raw)); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if decoded.Sapling == nil || decoded.Sapling.BalancingValue != -9 {
		t.Fatalf("balancing value did not survive the round trip: %+v", decoded.Sapling)
	}
	if decoded.Sapling.BindingSig != tx.Sapling.BindingSig {
		t.Fatalf("binding signature did not survive the round trip")
	}
	if decoded.JoinSplit == nil || len(decoded.JoinSplit.Descriptions) != 1 {
		t.Fatalf("join split did not survive the round trip")
	}
	if decoded.JoinSplit.Descriptions[0].Proof.Groth16 == nil {
		t.Fatalf("version-4 join split proof should decode as groth16")
	}
}

func TestTransactionDeserializeUnknownVersionGroup(t *testing.T) {
	var buf bytes.Buffer
	writeUint32LE(&buf, TxVersionOverwinter|overwinteredMask)
	writeUint32LE(&buf, 0xdeadbeef) // not a recognised version group id
	var decoded MsgTx
	if err := decoded.Deserialize(bytes.NewReader(buf.Bytes())); err != ErrInvalidFormat {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestOutPointIsNull(t *testing.T) {
	var null OutPoint
	null.Index = MaxTxInSequenceNum
	if !null.IsNull() {
		t.Fatalf("zero hash + max index should be null")
	}
	nonNull := OutPoint{Index: 0}
	if nonNull.IsNull() {
		t.Fatalf("index 0 should not be null")
	}
}

func TestTransactionIsFinal(t *testing.T) {
	tx := &MsgTx{LockTime: 0}
	if !tx.IsFinal(100, 1000) {
		t.Fatalf("zero lock time is always final")
	}

	tx = &MsgTx{
		LockTime: 50,
		TxIn:     []*TxIn{{Sequence: 1}},
	}
	if !tx.IsFinal(100, 1000) {
		t.Fatalf("lock time below current height should be final")
	}
	if tx.IsFinal(10, 1000) {
		t.Fatalf("lock time above current height with non-final sequence should not be final")
	}
}

func TestTotalSpendsSaturates(t *testing.T) {
	tx := &MsgTx{TxOut: []*TxOut{
		{Value: maxUint64 - 1},
		{Value: 10},
	}}
	if got := tx.TotalSpends(); got != maxUint64 {
		t.Fatalf("expected saturated total %d, got %d", uint64(maxUint64), got)
	}
}
