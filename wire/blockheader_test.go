package wire

import (
	"bytes"
	"testing"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

func TestBlockHeaderRoundTripNonSapling(t *testing.T) {
	h := &BlockHeader{
		Version:    4,
		Timestamp:  1231006505,
		Bits:       Compact(0x1d00ffff),
		Nonce:      NonceFromUint32(2083236893),
	}

	var buf bytes.Buffer
	if err := h.Serialize(&buf, Flags(0)); err != nil {
		t.Fatalf("serialize: %v", err)
	}

	var decoded BlockHeader
	if err := decoded.Deserialize(bytes.NewReader(buf.Bytes()), Flags(0)); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if decoded.Nonce.IsWide() {
		t.Fatalf("non-sapling header must decode a 32-bit nonce")
	}
	if decoded.Nonce.Uint32() != h.Nonce.Uint32() {
		t.Fatalf("nonce mismatch: got %d, want %d", decoded.Nonce.Uint32(), h.Nonce.Uint32())
	}

	var reencoded bytes.Buffer
	if err := decoded.Serialize(&reencoded, Flags(0)); err != nil {
		t.Fatalf("re-serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), reencoded.Bytes()) {
		t.Fatalf("round-trip mismatch")
	}
}

func TestBlockHeaderRoundTripSapling(t *testing.T) {
	var wideNonce chainhash.Hash
	wideNonce[0] = 0x07
	h := &BlockHeader{
		Version:              4,
		Timestamp:            1540000000,
		Bits:                 Compact(0x1f07ffff),
		Nonce:                NonceFromHash(wideNonce),
		HashFinalSaplingRoot: chainhash.Hash{0x01},
		EquihashSolution:     bytes.Repeat([]byte{0xab}, EquihashSolutionSize),
	}

	var buf bytes.Buffer
	if err := h.Serialize(&buf, FlagSapling); err != nil {
		t.Fatalf("serialize: %v", err)
	}

	var decoded BlockHeader
	if err := decoded.Deserialize(bytes.NewReader(buf.Bytes()), FlagSapling); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if !decoded.Nonce.IsWide() {
		t.Fatalf("sapling header must decode a 256-bit nonce")
	}
	if decoded.Nonce.Hash() != wideNonce {
		t.Fatalf("wide nonce mismatch")
	}
	if len(decoded.EquihashSolution) != EquihashSolutionSize {
		t.Fatalf("equihash solution length mismatch: got %d, want %d", len(decoded.EquihashSolution), EquihashSolutionSize)
	}
	if decoded.HashFinalSaplingRoot != h.HashFinalSaplingRoot {
		t.Fatalf("final sapling root mismatch")
	}

	var reencoded bytes.Buffer
	if err := decoded.Serialize(&reencoded, FlagSapling); err != nil {
		t.Fatalf("re-serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), reencoded.Bytes()) {
		t.Fatalf("round-trip mismatch")
	}
}

// TestBlockHeaderHashIsPureFunction checks that Hash is a pure
// function of the canonical serialisation, recomputed fresh every call
// rather than cached.
func TestBlockHeaderHashIsPureFunction(t *testing.T) {
	h := &BlockHeader{Version: 1, Timestamp: 1, Bits: Compact(0x1d00ffff), Nonce: NonceFromUint32(1)}
	first := h.Hash(Flags(0))
	h.Timestamp = 2
	second := h.Hash(Flags(0))
	if first == second {
		t.Fatalf("hash did not change after mutating the header")
	}

	var buf bytes.Buffer
	if err := h.Serialize(&buf, Flags(0)); err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := chainhash.DoubleHashH(buf.Bytes())
	if second != want {
		t.Fatalf("Hash() != DoubleHashH(Serialize()): got %v, want %v", second, want)
	}
}
