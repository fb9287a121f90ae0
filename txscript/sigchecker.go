// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"crypto/sha256"

	"github.com/decred/dcrd/crypto/ripemd160"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/shieldcoin/shieldd/sighash"
	"github.com/shieldcoin/shieldd/wire"
)

// SignatureChecker abstracts the three consensus checks a script's
// OP_CHECKSIG family and locktime opcodes consult: ECDSA verification
// against the input's sighash, and the CLTV/CSV locktime comparisons.
// TransactionSignatureChecker is the only production implementation; the
// indirection lets script-level unit tests substitute a stub.
type SignatureChecker interface {
	CheckSig(sig, pubKey, subScript []byte, sigVersion uint32) (bool, error)
	CheckLockTime(lockTime scriptNum) bool
	CheckSequence(sequence scriptNum) bool
}

// TransactionSignatureChecker implements SignatureChecker against a real
// transaction input, consulting an optional SigCache to skip re-verifying
// a signature this process has already validated once.
type TransactionSignatureChecker struct {
	Signer            *sighash.Signer
	Cache             *sighash.Cache
	SigCache          *SigCache
	Tx                *wire.MsgTx
	InputIndex        int
	InputAmount       int64
	ConsensusBranchID uint32
}

// CheckSig verifies sig (a DER signature with a trailing sighash-type
// byte) over pubKey against the sighash of subScript — the whole
// pubkey/redeem script the engine is executing (OP_CODESEPARATOR does not
// shorten it).
func (c *TransactionSignatureChecker) CheckSig(rawSig, rawPubKey, subScript []byte, _ uint32) (bool, error) {
	if len(rawSig) == 0 {
		return false, scriptError("empty signature")
	}
	hashType := rawSig[len(rawSig)-1]
	derSig := rawSig[:len(rawSig)-1]

	if !sighash.IsDefined(uint32(hashType)) {
		return false, scriptError("invalid hash type 0x%x", hashType)
	}

	pubKey, err := secp256k1.ParsePubKey(rawPubKey)
	if err != nil {
		return false, scriptError("invalid public key: %v", err)
	}

	sig, err := ecdsa.ParseDERSignature(derSig)
	if err != nil {
		return false, scriptError("invalid signature: %v", err)
	}

	sigHash := c.Signer.SignatureHash(c.Cache, c.InputIndex, uint64(c.InputAmount), subScript, uint32(hashType), c.ConsensusBranchID)

	if c.SigCache != nil && c.SigCache.Exists(sigHash, sig, pubKey) {
		return true, nil
	}

	valid := sig.Verify(sigHash[:], pubKey)
	if valid && c.SigCache != nil {
		c.SigCache.Add(sigHash, sig, pubKey, c.Tx)
	}
	return valid, nil
}

// lockTimeThreshold is the value at/above which a locktime is interpreted
// as a Unix timestamp rather than a block height (BIP65).
const lockTimeThreshold = 500000000

// CheckLockTime implements BIP65: the input's tx-level LockTime must be of
// the same kind (height vs timestamp) as lockTime, must be >= lockTime, and
// the input being checked must not itself be "final" (max sequence number),
// since a final input can never have its containing transaction's locktime
// honoured.
func (c *TransactionSignatureChecker) CheckLockTime(lockTime scriptNum) bool {
	txLockTime := scriptNum(c.Signer.LockTime)

	if !((txLockTime < lockTimeThreshold && lockTime < lockTimeThreshold) ||
		(txLockTime >= lockTimeThreshold && lockTime >= lockTimeThreshold)) {
		return false
	}

	if lockTime > txLockTime {
		return false
	}

	if c.InputIndex < 0 || c.InputIndex >= len(c.Signer.Sequences) {
		return false
	}
	return c.Signer.Sequences[c.InputIndex] != wire.MaxTxInSequenceNum
}

// sequenceLockTimeDisabled, sequenceLockTimeTypeFlag and sequenceLockTimeMask
// mirror BIP68/112's bit layout of the relative-locktime sequence field.
const (
	sequenceLockTimeDisabled = 1 << 31
	sequenceLockTimeTypeFlag = 1 << 22
	sequenceLockTimeMask     = 0x0000ffff
)

// CheckSequence implements BIP112: the transaction must be of a version
// that enables relative locktime (version >= 2) and the input's actual
// Sequence field must encode a relative lock at least as large as
// sequence, in matching units (block count vs 512-second intervals).
func (c *TransactionSignatureChecker) CheckSequence(sequence scriptNum) bool {
	if c.Signer.Version < 2 {
		return false
	}

	if c.InputIndex < 0 || c.InputIndex >= len(c.Signer.Sequences) {
		return false
	}
	txSequence := scriptNum(c.Signer.Sequences[c.InputIndex])

	if txSequence&sequenceLockTimeDisabled != 0 {
		return false
	}
	if sequence&sequenceLockTimeDisabled != 0 {
		return true
	}

	txSequenceMasked := txSequence & (sequenceLockTimeTypeFlag | sequenceLockTimeMask)
	sequenceMasked := sequence & (sequenceLockTimeTypeFlag | sequenceLockTimeMask)

	if !((txSequenceMasked < sequenceLockTimeTypeFlag && sequenceMasked < sequenceLockTimeTypeFlag) ||
		(txSequenceMasked >= sequenceLockTimeTypeFlag && sequenceMasked >= sequenceLockTimeTypeFlag)) {
		return false
	}

	return sequenceMasked <= txSequenceMasked
}

// hash160 computes RIPEMD160(SHA256(data)), the digest every P2PKH/P2SH
// script hashes against.
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(sha[:])
	return r.Sum(nil)
}

// sha256Sum computes SHA256(data), backing OP_SHA256.
func sha256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// doubleSha256Sum computes SHA256(SHA256(data)), backing OP_HASH256.
func doubleSha256Sum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// ripemd160Sum computes RIPEMD160(data), backing OP_RIPEMD160.
func ripemd160Sum(data []byte) []byte {
	r := ripemd160.New()
	r.Write(data)
	return r.Sum(nil)
}
