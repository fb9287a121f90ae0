// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "testing"

// stubChecker is a SignatureChecker test double that returns fixed
// answers instead of running real ECDSA verification.
type stubChecker struct {
	sigOK      bool
	lockTimeOK bool
	sequenceOK bool
}

func (s stubChecker) CheckSig(sig, pubKey, subScript []byte, sigVersion uint32) (bool, error) {
	return s.sigOK, nil
}
func (s stubChecker) CheckLockTime(lockTime scriptNum) bool { return s.lockTimeOK }
func (s stubChecker) CheckSequence(sequence scriptNum) bool { return s.sequenceOK }

func push(data []byte) []byte {
	if len(data) <= int(OP_DATA_75) {
		return append([]byte{byte(len(data))}, data...)
	}
	panic("push: use pushdata for large payloads in tests")
}

func TestEngineHashPuzzle(t *testing.T) {
	secret := []byte("shielded pool")
	digest := hash160(secret)

	sigScript := push(secret)
	pkScript := append([]byte{OP_HASH160}, push(digest)...)
	pkScript = append(pkScript, OP_EQUAL)

	e := NewEngine(sigScript, pkScript, VerificationFlags{}, stubChecker{})
	if err := e.Execute(); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestEngineHashPuzzleWrongPreimage(t *testing.T) {
	digest := hash160([]byte("shielded pool"))

	sigScript := push([]byte("wrong preimage"))
	pkScript := append([]byte{OP_HASH160}, push(digest)...)
	pkScript = append(pkScript, OP_EQUAL)

	e := NewEngine(sigScript, pkScript, VerificationFlags{}, stubChecker{})
	if err := e.Execute(); err == nil {
		t.Fatal("expected failure for mismatched preimage")
	}
}

func TestEnginePayToPubKeyHash(t *testing.T) {
	sig := append([]byte("fake-sig"), 0x01)
	pubKey := []byte("fake-pubkey-33-bytes-long-------")
	digest := hash160(pubKey)

	sigScript := append(push(sig), push(pubKey)...)

	pkScript := []byte{OP_DUP, OP_HASH160}
	pkScript = append(pkScript, push(digest)...)
	pkScript = append(pkScript, OP_EQUALVERIFY, OP_CHECKSIG)

	e := NewEngine(sigScript, pkScript, VerificationFlags{StrictEnc: true}, stubChecker{sigOK: true})
	if err := e.Execute(); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	e = NewEngine(sigScript, pkScript, VerificationFlags{StrictEnc: true}, stubChecker{sigOK: false})
	if err := e.Execute(); err == nil {
		t.Fatal("expected failure for rejected signature")
	}
}

func TestEnginePayToScriptHash(t *testing.T) {
	redeem := []byte{OP_1, OP_1, OP_EQUAL}
	redeemHash := hash160(redeem)

	sigScript := push(redeem)
	pkScript := []byte{OP_HASH160}
	pkScript = append(pkScript, push(redeemHash)...)
	pkScript = append(pkScript, OP_EQUAL)

	e := NewEngine(sigScript, pkScript, VerificationFlags{P2SH: true}, stubChecker{})
	if err := e.Execute(); err != nil {
		t.Fatalf("expected P2SH redemption to succeed, got %v", err)
	}
}

func TestEngineCheckLockTimeVerify(t *testing.T) {
	script := []byte{0x03, 0x40, 0x0d, 0x03, OP_CHECKLOCKTIMEVERIFY, OP_DROP, OP_1}

	e := NewEngine(nil, script, VerificationFlags{CheckLockTimeVerify: true}, stubChecker{lockTimeOK: true})
	if err := e.Execute(); err != nil {
		t.Fatalf("expected locktime check to pass, got %v", err)
	}

	e = NewEngine(nil, script, VerificationFlags{CheckLockTimeVerify: true}, stubChecker{lockTimeOK: false})
	if err := e.Execute(); err == nil {
		t.Fatal("expected locktime check to fail")
	}
}

func TestEngineConditional(t *testing.T) {
	// OP_1 OP_IF OP_2 OP_ELSE OP_3 OP_ENDIF leaves 2 on the stack.
	script := []byte{OP_1, OP_IF, OP_2, OP_ELSE, OP_3, OP_ENDIF}
	e := NewEngine(nil, script, VerificationFlags{}, stubChecker{})
	if err := e.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(e.stack) != 1 || scriptNum(e.stack[0][0]) != 2 {
		t.Fatalf("expected top stack value 2, got %v", e.stack)
	}
}

func TestScriptNumRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 127, 128, -128, 32767, -32768, 1 << 20}
	for _, v := range cases {
		n := scriptNum(v)
		got, err := makeScriptNum(n.Bytes(), true, 8)
		if err != nil {
			t.Fatalf("makeScriptNum(%d): %v", v, err)
		}
		if int64(got) != v {
			t.Fatalf("round trip mismatch: want %d got %d", v, got)
		}
	}
}

func TestIsPayToScriptHash(t *testing.T) {
	digest := hash160([]byte("x"))
	script := append([]byte{OP_HASH160}, push(digest)...)
	script = append(script, OP_EQUAL)
	if !IsPayToScriptHash(script) {
		t.Fatal("expected script to be recognised as P2SH")
	}
	if IsPayToScriptHash(script[:len(script)-1]) {
		t.Fatal("truncated script should not be P2SH")
	}
}

func TestIsPushOnlyScript(t *testing.T) {
	if !IsPushOnlyScript(push([]byte("a"))) {
		t.Fatal("single push should be push-only")
	}
	if IsPushOnlyScript([]byte{OP_DUP}) {
		t.Fatal("OP_DUP is not a push opcode")
	}
}
