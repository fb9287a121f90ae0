package sighash

import "github.com/shieldcoin/shieldd/chaincfg/chainhash"

// HSig derives the per-JoinSplit-description signature-binding hash used
// as a public input to the Sprout proof verifier: a personalised BLAKE2b
// digest over the description's random seed, its two nullifiers, and the
// transaction's JoinSplit public key.
func HSig(randomSeed chainhash.Hash, nullifiers [2]chainhash.Hash, pubKey chainhash.Hash) chainhash.Hash {
	data := make([]byte, 0, 4*chainhash.HashSize)
	data = append(data, randomSeed[:]...)
	data = append(data, nullifiers[0][:]...)
	data = append(data, nullifiers[1][:]...)
	data = append(data, pubKey[:]...)
	return personalizedHash("ZcashComputehSig", data)
}
