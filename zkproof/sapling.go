package zkproof

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/wire"
	"github.com/shieldcoin/shieldd/zkproof/groth16"
	"github.com/shieldcoin/shieldd/zkproof/redjubjub"
)

// SaplingVerifyingKeys bundles the two Groth16 verifying keys a Sapling
// bundle's descriptions are checked against.
type SaplingVerifyingKeys struct {
	Spend  *groth16.VerifyingKey
	Output *groth16.VerifyingKey
}

// VerifySaplingBundle checks every spend and output description's proof in
// sapling, then the bundle-level binding signature that ties their value
// commitments to the declared balancing value. sigHash is the
// transaction's signature hash under the Sapling-era sighash algorithm.
func VerifySaplingBundle(sigHash [32]byte, sapling *wire.SaplingData, vks SaplingVerifyingKeys) error {
	total := identityPoint()

	for i := range sapling.Spends {
		vc, err := verifySaplingSpend(sigHash, &sapling.Spends[i], vks.Spend)
		if err != nil {
			return fmt.Errorf("spend %d: %w", i, err)
		}
		total.Add(&total, vc)
	}

	for i := range sapling.Outputs {
		vc, err := verifySaplingOutput(&sapling.Outputs[i], vks.Output)
		if err != nil {
			return fmt.Errorf("output %d: %w", i, err)
		}
		var negated twistededwards.PointAffine
		negated.Neg(vc)
		total.Add(&total, &negated)
	}

	return verifyBindingSignature(sigHash, total, sapling)
}

func identityPoint() twistededwards.PointAffine {
	var p twistededwards.PointAffine
	p.X.SetZero()
	p.Y.SetOne()
	return p
}

func hashToPoint(h chainhash.Hash) ([32]byte, twistededwards.PointAffine, error) {
	buf := [32]byte(h)
	p, err := redjubjub.DecodePoint(buf)
	return buf, p, err
}

// frFromLittleEndian interprets a 32-byte field as a little-endian
// integer; gnark-crypto's fr.Element.SetBytes expects big-endian input,
// so the bytes are reversed first.
func frFromLittleEndian(h chainhash.Hash) fr.Element {
	var reversed [32]byte
	for i, b := range h {
		reversed[31-i] = b
	}
	var e fr.Element
	e.SetBytes(reversed[:])
	return e
}

func verifySaplingSpend(sigHash [32]byte, spend *wire.SaplingSpendDescription, vk *groth16.VerifyingKey) (*twistededwards.PointAffine, error) {
	if vk == nil {
		return nil, fmt.Errorf("no spend verifying key configured")
	}

	_, valueCommitment, err := hashToPoint(spend.ValueCommitment)
	if err != nil {
		return nil, fmt.Errorf("value commitment: %w", err)
	}

	anchor := frFromLittleEndian(spend.Anchor)

	randomizedKeyBuf, randomizedKey, err := hashToPoint(spend.RandomizedKey)
	if err != nil {
		return nil, fmt.Errorf("randomized key: %w", err)
	}

	dataToBeSigned := make([]byte, 0, 64)
	dataToBeSigned = append(dataToBeSigned, randomizedKeyBuf[:]...)
	dataToBeSigned = append(dataToBeSigned, sigHash[:]...)

	spendAuthGen := redjubjub.SpendAuthGenerator()
	ok, err := redjubjub.VerifySignature(&spendAuthGen, &randomizedKey, dataToBeSigned, spend.SpendAuthSig)
	if err != nil {
		return nil, fmt.Errorf("spend auth sig: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("spend auth sig: verification failed")
	}

	nullifierBits := bytesToBitsLE(spend.Nullifier[:])
	nullifierFrs := groth16.PublicInputsFromBits(nullifierBits)
	if len(nullifierFrs) != 2 {
		return nil, fmt.Errorf("nullifier packed into %d field elements, want 2", len(nullifierFrs))
	}

	publicInputs := []fr.Element{
		randomizedKey.X, randomizedKey.Y,
		valueCommitment.X, valueCommitment.Y,
		anchor,
		nullifierFrs[0], nullifierFrs[1],
	}

	proof, err := groth16.DecodeProof(spend.Proof[:])
	if err != nil {
		return nil, fmt.Errorf("proof: %w", err)
	}
	ok, err = groth16.Verify(vk, publicInputs, proof)
	if err != nil {
		return nil, fmt.Errorf("proof: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("proof verification failed")
	}

	return &valueCommitment, nil
}

func verifySaplingOutput(output *wire.SaplingOutputDescription, vk *groth16.VerifyingKey) (*twistededwards.PointAffine, error) {
	if vk == nil {
		return nil, fmt.Errorf("no output verifying key configured")
	}

	_, valueCommitment, err := hashToPoint(output.ValueCommitment)
	if err != nil {
		return nil, fmt.Errorf("value commitment: %w", err)
	}

	noteCommitment := frFromLittleEndian(output.NoteCommitment)

	_, ephemeralKey, err := hashToPoint(output.EphemeralKey)
	if err != nil {
		return nil, fmt.Errorf("ephemeral key: %w", err)
	}

	publicInputs := []fr.Element{
		valueCommitment.X, valueCommitment.Y,
		ephemeralKey.X, ephemeralKey.Y,
		noteCommitment,
	}

	proof, err := groth16.DecodeProof(output.Proof[:])
	if err != nil {
		return nil, fmt.Errorf("proof: %w", err)
	}
	ok, err := groth16.Verify(vk, publicInputs, proof)
	if err != nil {
		return nil, fmt.Errorf("proof: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("proof verification failed")
	}

	return &valueCommitment, nil
}

func verifyBindingSignature(sigHash [32]byte, total twistededwards.PointAffine, sapling *wire.SaplingData) error {
	valueBalance := redjubjub.ValueCommitmentBase(sapling.BalancingValue)
	valueBalance.Neg(&valueBalance)

	bindingVerificationKey := total
	bindingVerificationKey.Add(&bindingVerificationKey, &valueBalance)

	bvkBytes := bindingVerificationKey.Bytes()
	dataToBeSigned := make([]byte, 0, 64)
	dataToBeSigned = append(dataToBeSigned, bvkBytes[:]...)
	dataToBeSigned = append(dataToBeSigned, sigHash[:]...)

	valueCommitmentGen := redjubjub.ValueCommitmentValueGenerator()
	ok, err := redjubjub.VerifySignature(&valueCommitmentGen, &bindingVerificationKey, dataToBeSigned, sapling.BindingSig)
	if err != nil {
		return fmt.Errorf("binding signature: %w", err)
	}
	if !ok {
		return fmt.Errorf("binding signature verification failed")
	}
	return nil
}

// bytesToBitsLE unpacks data into bits, least-significant bit first within
// each byte, matching bellman's multipack::bytes_to_bits_le.
func bytesToBitsLE(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 0; i < 8; i++ {
			bits = append(bits, (b>>uint(i))&1 == 1)
		}
	}
	return bits
}
