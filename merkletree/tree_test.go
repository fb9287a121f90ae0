package merkletree

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

func TestSproutEmptyRoot(t *testing.T) {
	tree := NewSprout()
	root := tree.Root()
	// The Sprout vector is conventionally quoted in internal byte order,
	// not the reversed display order String() produces.
	got := hex.EncodeToString(root[:])
	want := "d7c612c817793191a1e68652121876d6b3bde40f4fa52bc314145ce6e5cdd259"
	if got != want {
		t.Fatalf("sprout empty root = %s, want %s", got, want)
	}
}

func TestSaplingEmptyRoot(t *testing.T) {
	tree := NewSapling()
	got := tree.Root().String()
	want := "3e49b5f954aa9d3545bc6c37744661eea48d7c34e3000d82b7f0010c30f4c2fb"
	if got != want {
		t.Fatalf("sapling empty root = %s, want %s", got, want)
	}
}

func TestSproutHalfEmptyChain(t *testing.T) {
	cur := sproutEmptyRoots[0]
	for depth := 0; depth < 64; depth++ {
		next := sha256Compress(cur, cur)
		if next != sproutEmptyRoots[depth+1] {
			t.Fatalf("chain mismatch at depth %d", depth+1)
		}
		cur = next
	}
}

func TestTreeSerializeRoundTrip(t *testing.T) {
	tree := NewSprout()
	var c chainhash.Hash
	for i := 0; i < 5; i++ {
		c[0] = byte(i + 1)
		if err := tree.Append(c); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	var buf bytes.Buffer
	if err := tree.Serialize(&buf); err != nil {
		t.Fatalf("serialize: %v", err)
	}

	decoded := NewSprout()
	if err := decoded.Deserialize(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if decoded.Root() != tree.Root() {
		t.Fatalf("root changed across serialisation: got %s, want %s", decoded.Root(), tree.Root())
	}

	// An empty tree is Depth+1 absent markers.
	var empty bytes.Buffer
	if err := NewSprout().Serialize(&empty); err != nil {
		t.Fatalf("serialize empty: %v", err)
	}
	if empty.Len() != SproutDepth+1 {
		t.Fatalf("empty tree serialises to %d bytes, want %d", empty.Len(), SproutDepth+1)
	}
}

func TestTreeFullAfterCapacity(t *testing.T) {
	tree := New(2, sproutCombine, sproutEmptyRoot)
	var c chainhash.Hash
	for i := 0; i < 4; i++ {
		c[0] = byte(i)
		if err := tree.Append(c); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	c[0] = 99
	if err := tree.Append(c); err != ErrTreeFull {
		t.Fatalf("expected ErrTreeFull, got %v", err)
	}
}
