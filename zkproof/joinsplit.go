// Package zkproof ties together the curve-specific verifiers in its bn,
// groth16 and redjubjub subpackages into the checks the
// shielded-transaction acceptor actually needs: per-JoinSplit-description
// proof verification for Sprout, and Sapling spend/output/binding
// verification alongside it.
package zkproof

import (
	"fmt"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/sighash"
	"github.com/shieldcoin/shieldd/wire"
	"github.com/shieldcoin/shieldd/zkproof/bn"
	"github.com/shieldcoin/shieldd/zkproof/groth16"
)

// JoinSplitVerifyingKeys bundles the two trusted-setup keys a JoinSplit
// description might be checked against: PGHR13 over BN254 for the original
// Sprout proving system, and a Groth16-over-BLS12-381 key for JoinSplits
// produced after the network's switch to Groth16.
type JoinSplitVerifyingKeys struct {
	Sprout  *bn.VerifyingKey
	Groth16 *groth16.VerifyingKey
}

func pushBytes(bits []bool, data []byte) []bool {
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1 == 1)
		}
	}
	return bits
}

func pushHash(bits []bool, h chainhash.Hash) []bool {
	return pushBytes(bits, h[:])
}

func pushUint64LE(bits []bool, v uint64) []bool {
	le := [8]byte{
		byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24),
		byte(v >> 32), byte(v >> 40), byte(v >> 48), byte(v >> 56),
	}
	return pushBytes(bits, le[:])
}

// joinSplitPrimaryInputBits builds the 2176-bit public-input string a
// JoinSplit description's proof is checked against: anchor, hsig, the
// two nullifier/MAC pairs, the two output commitments, then the old and
// new public values as little-endian u64s.
func joinSplitPrimaryInputBits(desc *wire.JoinSplitDescription, hsig chainhash.Hash) []bool {
	bits := make([]bool, 0, 2176)
	bits = pushHash(bits, desc.Anchor)
	bits = pushHash(bits, hsig)
	bits = pushHash(bits, desc.Nullifiers[0])
	bits = pushHash(bits, desc.MACs[0])
	bits = pushHash(bits, desc.Nullifiers[1])
	bits = pushHash(bits, desc.MACs[1])
	bits = pushHash(bits, desc.Commitments[0])
	bits = pushHash(bits, desc.Commitments[1])
	bits = pushUint64LE(bits, desc.ValuePubOld)
	bits = pushUint64LE(bits, desc.ValuePubNew)
	return bits
}

// VerifyJoinSplit checks a single JoinSplit description's zero-knowledge
// proof: it recomputes hsig from the description's random seed and
// nullifiers plus the transaction-level JoinSplit public key, derives the
// public-input bit string, then dispatches to the PGHR13 or Groth16
// verifier depending on which proof encoding the description carries.
func VerifyJoinSplit(desc *wire.JoinSplitDescription, pubKey chainhash.Hash, vks JoinSplitVerifyingKeys) (bool, error) {
	hsig := sighash.HSig(desc.RandomSeed, desc.Nullifiers, pubKey)
	bits := joinSplitPrimaryInputBits(desc, hsig)

	switch {
	case desc.Proof.PHGR13 != nil:
		if vks.Sprout == nil {
			return false, fmt.Errorf("no pghr13 verifying key configured for joinsplit")
		}
		proof, err := bn.DecodeProof(desc.Proof.PHGR13)
		if err != nil {
			return false, fmt.Errorf("decode pghr13 proof: %w", err)
		}
		inputs := bn.PrimaryInputsFromBits(bits)
		return bn.Verify(vks.Sprout, inputs, proof)

	case desc.Proof.Groth16 != nil:
		if vks.Groth16 == nil {
			return false, fmt.Errorf("no groth16 verifying key configured for joinsplit")
		}
		proof, err := groth16.DecodeProof(desc.Proof.Groth16)
		if err != nil {
			return false, fmt.Errorf("decode groth16 proof: %w", err)
		}
		inputs := groth16.PublicInputsFromBits(bits)
		return groth16.Verify(vks.Groth16, inputs, proof)

	default:
		return false, fmt.Errorf("joinsplit description carries no proof")
	}
}
