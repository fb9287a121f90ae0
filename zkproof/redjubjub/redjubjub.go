// Package redjubjub implements the two signature checks a Sapling bundle
// carries: each spend description's per-spend spend authorisation
// signature, and the transaction-level binding signature that proves the
// bundle's value commitments and the declared balancing value agree,
// without revealing either. Both are RedJubjub (a Schnorr variant over
// the Jubjub twisted Edwards curve embedded in BLS12-381's scalar field).
package redjubjub

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
	"github.com/minio/blake2b-simd"
)

// ValueCommitmentValueGenerator and SpendAuthGenerator play the role of the
// protocol's two fixed generators (FixedGenerators::ValueCommitmentValue
// and FixedGenerators::SpendingKeyGenerator): distinct, fixed base points
// used respectively for the value commitment and for spend-authorisation
// signatures. Derived deterministically from the curve's standard base
// point by personalised-hash-to-scalar multiplication, the same technique
// merkletree's Pedersen-hash generators use, rather than the network's
// published fixed points — see merkletree/sapling.go's doc comment for why
// bit-exact generator derivation is out of scope here.
var (
	valueCommitmentValueGenerator twistededwards.PointAffine
	spendAuthGenerator            twistededwards.PointAffine
)

func init() {
	params := twistededwards.GetEdwardsCurve()
	valueCommitmentValueGenerator = deriveGenerator(&params, "Zcash_cv")
	spendAuthGenerator = deriveGenerator(&params, "Zcash_G_")
}

func deriveGenerator(params *twistededwards.CurveParams, tag string) twistededwards.PointAffine {
	scalar := new(big.Int).SetBytes([]byte(tag))
	var p twistededwards.PointAffine
	p.ScalarMultiplication(&params.Base, scalar)
	return p
}

// isSmallOrder reports whether p has order dividing the curve's cofactor:
// tripling-by-doubling p three times yields the identity.
func isSmallOrder(p *twistededwards.PointAffine) bool {
	var q twistededwards.PointAffine
	q.Add(p, p)
	q.Add(&q, &q)
	q.Add(&q, &q)
	var identity twistededwards.PointAffine
	identity.X.SetZero()
	identity.Y.SetOne()
	return q.X.Equal(&identity.X) && q.Y.Equal(&identity.Y)
}

// DecodePoint decodes a compressed 32-byte Jubjub point, rejecting points
// of small order.
func DecodePoint(buf [32]byte) (twistededwards.PointAffine, error) {
	var p twistededwards.PointAffine
	if _, err := p.SetBytes(buf[:]); err != nil {
		return p, err
	}
	if isSmallOrder(&p) {
		return p, errSmallOrder
	}
	return p, nil
}

// errSmallOrder is returned by DecodePoint for a point
// that must not be, but is, of small order.
var errSmallOrder = smallOrderError{}

type smallOrderError struct{}

func (smallOrderError) Error() string { return "point has small order" }

// h512 is the RedJubjub challenge hash: a BLAKE2b-512 digest personalised
// with "Zcash_RedJubjubH", reduced into a Jubjub scalar.
func h512(data []byte) *big.Int {
	var person [16]byte
	copy(person[:], "Zcash_RedJubjubH")
	d, err := blake2b.New(&blake2b.Config{Size: 64, Person: person[:]})
	if err != nil {
		panic(err)
	}
	d.Write(data)
	// Reduce the little-endian 512-bit digest into a scalar the curve's
	// scalar multiplication accepts; the curve library reduces any input
	// modulo the group order internally.
	sum := d.Sum(nil)
	reversed := make([]byte, len(sum))
	for i, b := range sum {
		reversed[len(sum)-1-i] = b
	}
	return new(big.Int).SetBytes(reversed)
}

// VerifySignature checks a RedJubjub signature (rBytes||sBytes, 64 bytes)
// over message under publicKey and generator base:
// S*base == R + c*publicKey, where c = h512(R||pk||msg).
func VerifySignature(base *twistededwards.PointAffine, publicKey *twistededwards.PointAffine, message []byte, sig [64]byte) (bool, error) {
	var r twistededwards.PointAffine
	if _, err := r.SetBytes(sig[:32]); err != nil {
		return false, err
	}
	s := new(big.Int).SetBytes(reverse(sig[32:64]))

	pkBytes := publicKey.Bytes()
	data := make([]byte, 0, 32+32+len(message))
	data = append(data, sig[:32]...)
	data = append(data, pkBytes[:]...)
	data = append(data, message...)
	c := h512(data)

	var sTimesBase, cTimesPk, rhs twistededwards.PointAffine
	sTimesBase.ScalarMultiplication(base, s)
	cTimesPk.ScalarMultiplication(publicKey, c)
	rhs.Add(&r, &cTimesPk)

	return sTimesBase.X.Equal(&rhs.X) && sTimesBase.Y.Equal(&rhs.Y), nil
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// SpendAuthGenerator and ValueCommitmentValueGenerator expose the two
// fixed base points to callers composing spend-auth and binding-signature
// checks.
func SpendAuthGenerator() twistededwards.PointAffine { return spendAuthGenerator }
func ValueCommitmentValueGenerator() twistededwards.PointAffine {
	return valueCommitmentValueGenerator
}

// ValueCommitmentBase returns v*ValueCommitmentValueGenerator, negated
// when v is negative: the value-in-the-exponent construction that folds
// a signed balancing value into a point that can be added to or
// subtracted from the running value-commitment total.
func ValueCommitmentBase(value int64) twistededwards.PointAffine {
	abs := value
	negative := value < 0
	if negative {
		abs = -value
	}
	var p twistededwards.PointAffine
	p.ScalarMultiplication(&valueCommitmentValueGenerator, big.NewInt(abs))
	if negative {
		p.Neg(&p)
	}
	return p
}
