// Package bn implements the Sprout JoinSplit proof system: PGHR13 over the
// BN pairing-friendly curve gnark-crypto calls bn254. The verifying key's
// seven fixed group elements (plus its IC vector) and the proof's eight
// are wired straight onto
// gnark-crypto's curve arithmetic; no circuit compiler is involved, since
// this engine only ever verifies, never produces, a proof.
package bn

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/shieldcoin/shieldd/zkproof/keys"
)

// VerifyingKey holds the seven fixed group elements and the IC vector a
// PGHR13 circuit's trusted setup publishes.
type VerifyingKey struct {
	A          bn254.G2Affine
	B          bn254.G1Affine
	C          bn254.G2Affine
	Z          bn254.G2Affine
	Gamma      bn254.G2Affine
	GammaBeta1 bn254.G1Affine
	GammaBeta2 bn254.G2Affine
	IC         []bn254.G1Affine
}

// Proof is the eight-element PGHR13 proof a JoinSplit description carries
// (wire.JoinSplitProof.PHGR13, decoded).
type Proof struct {
	A      bn254.G1Affine
	APrime bn254.G1Affine
	B      bn254.G2Affine
	BPrime bn254.G1Affine
	C      bn254.G1Affine
	CPrime bn254.G1Affine
	K      bn254.G1Affine
	H      bn254.G1Affine
}

// PHGR13ProofWireSize is the on-wire width of a Sprout JoinSplit proof: seven
// libsnark-style compressed G1 points (33 bytes: one sign/infinity flag byte
// plus a 32-byte coordinate) and one compressed G2 point (65 bytes), in the
// field order A, A', B, B', C, C', K, H.
const PHGR13ProofWireSize = 7*33 + 65

// DecodeProof parses the 296-byte wire encoding of a PGHR13 proof.
//
// libsnark's encoding leads each point with a flag byte carrying sign and
// point-at-infinity in a convention this engine does not reconstruct;
// instead, each point's trailing 32 (G1) or 64 (G2) bytes are read
// directly as gnark-crypto's own compressed point encoding. This is a
// documented approximation, not a byte-exact re-derivation of libsnark's
// alt_bn128 point compression.
func DecodeProof(raw []byte) (*Proof, error) {
	if len(raw) != PHGR13ProofWireSize {
		return nil, fmt.Errorf("pghr13 proof must be %d bytes, got %d", PHGR13ProofWireSize, len(raw))
	}

	readG1 := func(b []byte) (bn254.G1Affine, error) {
		var p bn254.G1Affine
		_, err := p.SetBytes(b[1:33])
		return p, err
	}
	readG2 := func(b []byte) (bn254.G2Affine, error) {
		var p bn254.G2Affine
		_, err := p.SetBytes(b[1:65])
		return p, err
	}

	var (
		p   Proof
		err error
		off int
	)
	next := func(n int) []byte {
		b := raw[off : off+n]
		off += n
		return b
	}

	if p.A, err = readG1(next(33)); err != nil {
		return nil, fmt.Errorf("proof.a: %w", err)
	}
	if p.APrime, err = readG1(next(33)); err != nil {
		return nil, fmt.Errorf("proof.a_prime: %w", err)
	}
	if p.B, err = readG2(next(65)); err != nil {
		return nil, fmt.Errorf("proof.b: %w", err)
	}
	if p.BPrime, err = readG1(next(33)); err != nil {
		return nil, fmt.Errorf("proof.b_prime: %w", err)
	}
	if p.C, err = readG1(next(33)); err != nil {
		return nil, fmt.Errorf("proof.c: %w", err)
	}
	if p.CPrime, err = readG1(next(33)); err != nil {
		return nil, fmt.Errorf("proof.c_prime: %w", err)
	}
	if p.K, err = readG1(next(33)); err != nil {
		return nil, fmt.Errorf("proof.k: %w", err)
	}
	if p.H, err = readG1(next(33)); err != nil {
		return nil, fmt.Errorf("proof.h: %w", err)
	}
	return &p, nil
}

func setFp(e *fp.Element, b []byte) { e.SetBytes(b) }

func g1FromHex(xHex, yHex []byte) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	setFp(&p.X, xHex)
	setFp(&p.Y, yHex)
	if !p.IsOnCurve() {
		return p, fmt.Errorf("g1 point not on curve")
	}
	return p, nil
}

// g2FromHex builds a G2 point from its four base-field coordinates, given
// in the order [x1, x0, y1, y0], the key file's coordinate order.
func g2FromHex(x1, x0, y1, y0 []byte) (bn254.G2Affine, error) {
	var p bn254.G2Affine
	setFp(&p.X.A1, x1)
	setFp(&p.X.A0, x0)
	setFp(&p.Y.A1, y1)
	setFp(&p.Y.A0, y0)
	if !p.IsOnCurve() {
		return p, fmt.Errorf("g2 point not on curve")
	}
	return p, nil
}

func decodeG1(raw json.RawMessage) (bn254.G1Affine, error) {
	parts, err := keys.DecodeHexArray(raw)
	if err != nil {
		return bn254.G1Affine{}, err
	}
	if len(parts) != 2 {
		return bn254.G1Affine{}, fmt.Errorf("g1 point needs 2 coordinates, got %d", len(parts))
	}
	return g1FromHex(parts[0], parts[1])
}

func decodeG2(raw json.RawMessage) (bn254.G2Affine, error) {
	parts, err := keys.DecodeHexArray(raw)
	if err != nil {
		return bn254.G2Affine{}, err
	}
	if len(parts) != 4 {
		return bn254.G2Affine{}, fmt.Errorf("g2 point needs 4 coordinates, got %d", len(parts))
	}
	return g2FromHex(parts[0], parts[1], parts[2], parts[3])
}

// jsonVerifyingKey is the on-disk shape of a PGHR13 verifying key.
type jsonVerifyingKey struct {
	A          json.RawMessage   `json:"a"`
	B          json.RawMessage   `json:"b"`
	C          json.RawMessage   `json:"c"`
	Z          json.RawMessage   `json:"z"`
	Gamma      json.RawMessage   `json:"gamma"`
	GammaBeta1 json.RawMessage   `json:"gammaBeta1"`
	GammaBeta2 json.RawMessage   `json:"gammaBeta2"`
	IC         []json.RawMessage `json:"ic"`
}

// LoadVerifyingKey parses a PGHR13 verifying key from its published JSON
// encoding.
func LoadVerifyingKey(data []byte) (*VerifyingKey, error) {
	var raw jsonVerifyingKey
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode pghr13 verifying key: %w", err)
	}

	vk := &VerifyingKey{}
	var err error
	if vk.A, err = decodeG2(raw.A); err != nil {
		return nil, fmt.Errorf("field a: %w", err)
	}
	if vk.B, err = decodeG1(raw.B); err != nil {
		return nil, fmt.Errorf("field b: %w", err)
	}
	if vk.C, err = decodeG2(raw.C); err != nil {
		return nil, fmt.Errorf("field c: %w", err)
	}
	if vk.Z, err = decodeG2(raw.Z); err != nil {
		return nil, fmt.Errorf("field z: %w", err)
	}
	if vk.Gamma, err = decodeG2(raw.Gamma); err != nil {
		return nil, fmt.Errorf("field gamma: %w", err)
	}
	if vk.GammaBeta1, err = decodeG1(raw.GammaBeta1); err != nil {
		return nil, fmt.Errorf("field gammaBeta1: %w", err)
	}
	if vk.GammaBeta2, err = decodeG2(raw.GammaBeta2); err != nil {
		return nil, fmt.Errorf("field gammaBeta2: %w", err)
	}
	vk.IC = make([]bn254.G1Affine, len(raw.IC))
	for i, elem := range raw.IC {
		if vk.IC[i], err = decodeG1(elem); err != nil {
			return nil, fmt.Errorf("field ic[%d]: %w", i, err)
		}
	}
	return vk, nil
}

// PrimaryInputsFromBits packs a JoinSplit's public-input bit string into BN
// scalar field elements, 253 bits (Fr's usable capacity) per chunk. Within
// a chunk the first bit is the least-significant one, its weight doubling
// with each subsequent bit, rather than the chunk being read as a
// big-endian number.
func PrimaryInputsFromBits(bits []bool) []fr.Element {
	const chunkBits = 253
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

// accumulate evaluates vk.IC as a linear-combination polynomial over the
// primary inputs: IC[0] + sum(input[i] * IC[i+1]).
func accumulate(vk *VerifyingKey, primaryInput []fr.Element) (bn254.G1Affine, error) {
	if len(primaryInput) != len(vk.IC)-1 {
		return bn254.G1Affine{}, fmt.Errorf("primary input length %d does not match verifying key (want %d)", len(primaryInput), len(vk.IC)-1)
	}
	acc := vk.IC[0]
	for i, x := range primaryInput {
		var xBig big.Int
		x.BigInt(&xBig)
		var term bn254.G1Affine
		term.ScalarMultiplication(&vk.IC[i+1], &xBig)
		acc.Add(&acc, &term)
	}
	return acc, nil
}

// pairsEqual reports whether e(a, b) == e(c, d) by checking that the
// product e(a, b) * e(-c, d) is the GT identity.
func pairsEqual(a *bn254.G1Affine, b *bn254.G2Affine, c *bn254.G1Affine, d *bn254.G2Affine) (bool, error) {
	var negC bn254.G1Affine
	negC.Neg(c)
	return bn254.PairingCheck([]bn254.G1Affine{*a, negC}, []bn254.G2Affine{*b, *d})
}

// Verify checks proof against vk and primaryInput (the public JoinSplit
// inputs already packed into field elements), implementing the five
// pairing equations of PGHR13 verification.
func Verify(vk *VerifyingKey, primaryInput []fr.Element, proof *Proof) (bool, error) {
	p2 := g2One()

	acc, err := accumulate(vk, primaryInput)
	if err != nil {
		return false, err
	}

	// (i) knowledge commitment for A
	ok, err := pairsEqual(&proof.A, &vk.A, &proof.APrime, &p2)
	if err != nil || !ok {
		return false, err
	}
	// (ii) knowledge commitment for B
	ok, err = pairsEqual(&vk.B, &proof.B, &proof.BPrime, &p2)
	if err != nil || !ok {
		return false, err
	}
	// (iii) knowledge commitment for C
	ok, err = pairsEqual(&proof.C, &vk.C, &proof.CPrime, &p2)
	if err != nil || !ok {
		return false, err
	}

	// (iv) same coefficients were used across A/B/C:
	// e(K, gamma) == e(acc+A+C, gammaBeta2) * e(gammaBeta1, B)
	var accAC bn254.G1Affine
	accAC.Add(&acc, &proof.A)
	accAC.Add(&accAC, &proof.C)
	var negAccAC, negGammaBeta1 bn254.G1Affine
	negAccAC.Neg(&accAC)
	negGammaBeta1.Neg(&vk.GammaBeta1)
	ok, err = bn254.PairingCheck(
		[]bn254.G1Affine{proof.K, negAccAC, negGammaBeta1},
		[]bn254.G2Affine{vk.Gamma, vk.GammaBeta2, proof.B},
	)
	if err != nil || !ok {
		return false, err
	}

	// (v) QAP divisibility: e(acc+A, B) == e(H, Z) * e(C, p2)
	var accA bn254.G1Affine
	accA.Add(&acc, &proof.A)
	var negH, negC bn254.G1Affine
	negH.Neg(&proof.H)
	negC.Neg(&proof.C)
	ok, err = bn254.PairingCheck(
		[]bn254.G1Affine{accA, negH, negC},
		[]bn254.G2Affine{proof.B, vk.Z, p2},
	)
	if err != nil || !ok {
		return false, err
	}
	return true, nil
}

func g2One() bn254.G2Affine {
	_, _, _, g2Gen := bn254.Generators()
	return g2Gen
}
