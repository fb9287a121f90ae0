// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"bytes"
	"testing"
)

func TestHashStringRoundTrip(t *testing.T) {
	var h Hash
	for i := range h {
		h[i] = byte(i)
	}

	s := h.String()
	decoded, err := NewHashFromStr(s)
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}
	if *decoded != h {
		t.Fatalf("round trip mismatch: got %v, want %v", *decoded, h)
	}
}

func TestHashStringIsReversed(t *testing.T) {
	var h Hash
	h[0] = 0xaa
	h[HashSize-1] = 0xbb
	s := h.String()
	if s[:2] != "bb" || s[len(s)-2:] != "aa" {
		t.Fatalf("String() should display byte-reversed hex, got %s", s)
	}
}

func TestSetBytesLengthValidation(t *testing.T) {
	var h Hash
	if err := h.SetBytes(make([]byte, HashSize-1)); err == nil {
		t.Fatalf("expected error for wrong-length input")
	}
	if err := h.SetBytes(make([]byte, HashSize)); err != nil {
		t.Fatalf("unexpected error for correct-length input: %v", err)
	}
}

func TestIsEqual(t *testing.T) {
	var a, b Hash
	a[0] = 1
	b[0] = 1
	if !a.IsEqual(&b) {
		t.Fatalf("equal hashes should compare equal")
	}
	b[0] = 2
	if a.IsEqual(&b) {
		t.Fatalf("differing hashes should not compare equal")
	}
	var nilHash *Hash
	if !(*Hash)(nil).IsEqual(nilHash) {
		t.Fatalf("two nil hashes should compare equal")
	}
	if a.IsEqual(nil) {
		t.Fatalf("a non-nil hash should not equal a nil one")
	}
}

func TestDoubleHashH(t *testing.T) {
	data := []byte("shieldd")
	got := DoubleHashH(data)
	want := HashH(HashB(data))
	if got != want {
		t.Fatalf("DoubleHashH should equal HashH(HashB(data))")
	}
	if !bytes.Equal(DoubleHashB(data), got[:]) {
		t.Fatalf("DoubleHashB and DoubleHashH should agree")
	}
}
