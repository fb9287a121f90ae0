package merkletree

import (
	"encoding/binary"
	"math/bits"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

// SproutDepth is the fixed depth of the Sprout note-commitment tree.
const SproutDepth = 29

var sha256IV = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha256Compress is the SHA-256 compression function applied once to the
// single 64-byte block left||right from the standard initial state, with
// no message-length padding. A full SHA-256 call would pad the input to a
// second block and produce a different digest, which is why crypto/sha256
// cannot serve as the Sprout combiner; the 64-round core is written out
// here instead.
func sha256Compress(left, right chainhash.Hash) chainhash.Hash {
	var w [64]uint32
	for i := 0; i < 8; i++ {
		w[i] = binary.BigEndian.Uint32(left[i*4:])
		w[i+8] = binary.BigEndian.Uint32(right[i*4:])
	}
	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d := sha256IV[0], sha256IV[1], sha256IV[2], sha256IV[3]
	e, f, g, h := sha256IV[4], sha256IV[5], sha256IV[6], sha256IV[7]
	for i := 0; i < 64; i++ {
		s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		t1 := h + s1 + ch + sha256K[i] + w[i]
		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		h, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	state := [8]uint32{
		sha256IV[0] + a, sha256IV[1] + b, sha256IV[2] + c, sha256IV[3] + d,
		sha256IV[4] + e, sha256IV[5] + f, sha256IV[6] + g, sha256IV[7] + h,
	}
	var out chainhash.Hash
	for i, s := range state {
		binary.BigEndian.PutUint32(out[i*4:], s)
	}
	return out
}

func sproutCombine(left, right chainhash.Hash, depth int) chainhash.Hash {
	return sha256Compress(left, right)
}

func sproutEmptyRoot(depth int) chainhash.Hash {
	return sproutEmptyRoots[depth]
}

// NewSprout returns an empty Sprout commitment tree.
func NewSprout() *Tree {
	return New(SproutDepth, sproutCombine, sproutEmptyRoot)
}
