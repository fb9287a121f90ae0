// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// VerificationFlags gates the individually-activated script rules: P2SH
// execution, strict signature and sighash-type encoding, the NULLDUMMY
// rule, and the two relative/absolute locktime opcodes. The accept stage
// derives P2SH, DERSig and the two locktime flags from activation
// heights/times rather than a single on/off switch, so a block straddling
// an activation boundary evaluates under exactly the rules in force at its
// height; it holds StrictEnc and NullDummy off.
type VerificationFlags struct {
	// P2SH enables BIP16 pay-to-script-hash redemption.
	P2SH bool
	// StrictEnc requires a sighash type byte that IsDefined recognises.
	StrictEnc bool
	// DERSig requires BIP66 strict DER signature encoding.
	DERSig bool
	// NullDummy requires the dummy element OP_CHECKMULTISIG consumes to be
	// the empty byte string.
	NullDummy bool
	// CheckLockTimeVerify enables BIP65's OP_CHECKLOCKTIMEVERIFY.
	CheckLockTimeVerify bool
	// CheckSequenceVerify enables BIP112's OP_CHECKSEQUENCEVERIFY.
	CheckSequenceVerify bool
}
