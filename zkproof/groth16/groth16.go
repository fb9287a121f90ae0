// Package groth16 implements the Sapling spend/output proof system: Groth16
// over BLS12-381, verified directly against gnark-crypto's curve and
// pairing primitives rather than through gnark's circuit-compiler-oriented
// groth16 backend, since this engine only ever checks a proof someone
// else produced.
package groth16

import (
	"encoding/json"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/shieldcoin/shieldd/zkproof/keys"
)

// VerifyingKey holds the six fixed group elements and the linear
// combination vector a Groth16 trusted setup publishes.
type VerifyingKey struct {
	AlphaG1 bls12381.G1Affine
	BetaG1  bls12381.G1Affine
	BetaG2  bls12381.G2Affine
	GammaG2 bls12381.G2Affine
	DeltaG1 bls12381.G1Affine
	DeltaG2 bls12381.G2Affine
	IC      []bls12381.G1Affine
}

// Proof is a Groth16 proof's three group elements, as they appear in the
// 192-byte Sapling spend/output proof field: a compressed G1 (48 bytes), a
// compressed G2 (96 bytes), a compressed G1 (48 bytes).
type Proof struct {
	A bls12381.G1Affine
	B bls12381.G2Affine
	C bls12381.G1Affine
}

// DecodeProof parses the 192-byte wire encoding of a Groth16 proof.
func DecodeProof(raw []byte) (*Proof, error) {
	if len(raw) != 192 {
		return nil, fmt.Errorf("groth16 proof must be 192 bytes, got %d", len(raw))
	}
	p := &Proof{}
	if _, err := p.A.SetBytes(raw[0:48]); err != nil {
		return nil, fmt.Errorf("proof.a: %w", err)
	}
	if _, err := p.B.SetBytes(raw[48:144]); err != nil {
		return nil, fmt.Errorf("proof.b: %w", err)
	}
	if _, err := p.C.SetBytes(raw[144:192]); err != nil {
		return nil, fmt.Errorf("proof.c: %w", err)
	}
	return p, nil
}

type jsonVerifyingKey struct {
	AlphaG1 string   `json:"alphaG1"`
	BetaG1  string   `json:"betaG1"`
	BetaG2  string   `json:"betaG2"`
	GammaG2 string   `json:"gammaG2"`
	DeltaG1 string   `json:"deltaG1"`
	DeltaG2 string   `json:"deltaG2"`
	IC      []string `json:"ic"`
}

func decodeCompressedG1(hexStr string) (bls12381.G1Affine, error) {
	var p bls12381.G1Affine
	raw, err := keys.DecodeHexString(hexStr)
	if err != nil {
		return p, err
	}
	if _, err := p.SetBytes(raw); err != nil {
		return p, fmt.Errorf("invalid g1 point: %w", err)
	}
	return p, nil
}

func decodeCompressedG2(hexStr string) (bls12381.G2Affine, error) {
	var p bls12381.G2Affine
	raw, err := keys.DecodeHexString(hexStr)
	if err != nil {
		return p, err
	}
	if _, err := p.SetBytes(raw); err != nil {
		return p, fmt.Errorf("invalid g2 point: %w", err)
	}
	return p, nil
}

// LoadVerifyingKey parses a Groth16 verifying key from its published JSON
// encoding (single compressed-point hex strings, unlike PGHR13's
// coordinate-array format).
func LoadVerifyingKey(data []byte) (*VerifyingKey, error) {
	var raw jsonVerifyingKey
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode groth16 verifying key: %w", err)
	}

	vk := &VerifyingKey{}
	var err error
	if vk.AlphaG1, err = decodeCompressedG1(raw.AlphaG1); err != nil {
		return nil, fmt.Errorf("field alphaG1: %w", err)
	}
	if vk.BetaG1, err = decodeCompressedG1(raw.BetaG1); err != nil {
		return nil, fmt.Errorf("field betaG1: %w", err)
	}
	if vk.BetaG2, err = decodeCompressedG2(raw.BetaG2); err != nil {
		return nil, fmt.Errorf("field betaG2: %w", err)
	}
	if vk.GammaG2, err = decodeCompressedG2(raw.GammaG2); err != nil {
		return nil, fmt.Errorf("field gammaG2: %w", err)
	}
	if vk.DeltaG1, err = decodeCompressedG1(raw.DeltaG1); err != nil {
		return nil, fmt.Errorf("field deltaG1: %w", err)
	}
	if vk.DeltaG2, err = decodeCompressedG2(raw.DeltaG2); err != nil {
		return nil, fmt.Errorf("field deltaG2: %w", err)
	}
	vk.IC = make([]bls12381.G1Affine, len(raw.IC))
	for i, s := range raw.IC {
		if vk.IC[i], err = decodeCompressedG1(s); err != nil {
			return nil, fmt.Errorf("field ic[%d]: %w", i, err)
		}
	}
	return vk, nil
}

// PublicInputsFromBits packs a Sapling spend/output's public inputs into
// BLS12-381 scalar field elements, chunked at the field's usable capacity.
// Within a chunk the first bit is the least-significant one, its weight
// doubling with each subsequent bit.
func PublicInputsFromBits(bits []bool) []fr.Element {
	const chunkBits = 254 // BLS12-381 Fr capacity (255-bit modulus, 1 reserved bit)
	n := (len(bits) + chunkBits - 1) / chunkBits
	out := make([]fr.Element, n)
	for c := 0; c < n; c++ {
		v := new(big.Int)
		for i := 0; i < chunkBits; i++ {
			idx := c*chunkBits + i
			if idx >= len(bits) {
				break
			}
			if bits[idx] {
				v.SetBit(v, i, 1)
			}
		}
		out[c].SetBigInt(v)
	}
	return out
}

// vkX evaluates the verifying key's linear combination over the public
// inputs: IC[0] + sum(input[i] * IC[i+1]).
func vkX(vk *VerifyingKey, publicInputs []fr.Element) (bls12381.G1Affine, error) {
	if len(publicInputs) != len(vk.IC)-1 {
		return bls12381.G1Affine{}, fmt.Errorf("public input length %d does not match verifying key (want %d)", len(publicInputs), len(vk.IC)-1)
	}
	acc := vk.IC[0]
	for i, x := range publicInputs {
		var xBig big.Int
		x.BigInt(&xBig)
		var term bls12381.G1Affine
		term.ScalarMultiplication(&vk.IC[i+1], &xBig)
		acc.Add(&acc, &term)
	}
	return acc, nil
}

// Verify checks the single Groth16 pairing equation:
//
//	e(A, B) == e(alphaG1, betaG2) * e(vkX, gammaG2) * e(C, deltaG2)
//
// equivalently e(A,B) * e(-alphaG1,betaG2) * e(-vkX,gammaG2) * e(-C,deltaG2) == 1,
// checked in one multi-pairing call.
func Verify(vk *VerifyingKey, publicInputs []fr.Element, proof *Proof) (bool, error) {
	x, err := vkX(vk, publicInputs)
	if err != nil {
		return false, err
	}

	var negAlpha, negX, negC bls12381.G1Affine
	negAlpha.Neg(&vk.AlphaG1)
	negX.Neg(&x)
	negC.Neg(&proof.C)

	return bls12381.PairingCheck(
		[]bls12381.G1Affine{proof.A, negAlpha, negX, negC},
		[]bls12381.G2Affine{proof.B, vk.BetaG2, vk.GammaG2, vk.DeltaG2},
	)
}
