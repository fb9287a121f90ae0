// Package equihash implements the (N, K)-parameterised Equihash
// proof-of-work solution verifier: a personalised BLAKE2b context
// seeds 2^K candidate "BSTRs" (bit strings), laid out as rows of
// [hash-tail | index-list] and repeatedly collapsed pairwise, requiring
// a collision on the next N/(K+1) bits and a strictly-ordered,
// pairwise-distinct index list at every stage, until after K halvings a
// single row with an all-zero hash-tail remains.
package equihash

import (
	"encoding/binary"
	"fmt"
	"hash"
	"reflect"

	"github.com/minio/blake2b-simd"
)

// Params fixes the dimensions of one Equihash instance.
type Params struct {
	N uint32
	K uint32
}

// Mainnet is the (200, 9) parameterisation used by consensus.
var Mainnet = Params{N: 200, K: 9}

// Test is the (96, 5) parameterisation exercised by tests.
var Test = Params{N: 96, K: 5}

// Validate checks that N and K describe a usable instance: N divisible
// by 8 and by K+1, K at least 3, and the per-stage collision width small
// enough to stay within a 32-bit index.
func (p Params) Validate() error {
	if p.N%8 != 0 {
		return fmt.Errorf("equihash: n=%d not a multiple of 8", p.N)
	}
	if p.K < 3 || p.K >= p.N {
		return fmt.Errorf("equihash: k=%d out of range for n=%d", p.K, p.N)
	}
	if p.N%(p.K+1) != 0 {
		return fmt.Errorf("equihash: n=%d not divisible by k+1=%d", p.N, p.K+1)
	}
	if p.collisionBits()+1 >= 32 {
		return fmt.Errorf("equihash: collision length too large for n=%d k=%d", p.N, p.K)
	}
	return nil
}

func (p Params) collisionBits() uint32 { return p.N / (p.K + 1) }
func (p Params) collisionBytes() int   { return int(p.collisionBits()+7) / 8 }
func (p Params) indicesPerHash() int   { return int(512 / p.N) }
func (p Params) hashOutputSize() uint8 { return uint8(p.indicesPerHash() * int(p.N) / 8) }
func (p Params) indexCount() int       { return 1 << p.K }

// SolutionSize returns the compressed, on-wire solution length in bytes:
// 2^K indices of (N/(K+1)+1) bits each.
func (p Params) SolutionSize() int {
	return p.indexCount() * (int(p.collisionBits()) + 1) / 8
}

func person(n, k uint32) []byte {
	var nb, kb [4]byte
	binary.LittleEndian.PutUint32(nb[:], n)
	binary.LittleEndian.PutUint32(kb[:], k)
	return append([]byte("ZcashPoW"), append(nb[:], kb[:]...)...)
}

func (p Params) newDigest() (hash.Hash, error) {
	return blake2b.New(&blake2b.Config{Person: person(p.N, p.K), Size: p.hashOutputSize()})
}

// copyHash deep-copies a hash.Hash's internal state so BSTR generation
// for each index can branch off the same header-primed digest without
// recomputing the header bytes into it each time.
func copyHash(src hash.Hash) hash.Hash {
	typ := reflect.TypeOf(src)
	val := reflect.ValueOf(src)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
		val = val.Elem()
	}
	elem := reflect.New(typ).Elem()
	elem.Set(val)
	return elem.Addr().Interface().(hash.Hash)
}

func writeLE32(h hash.Hash, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	h.Write(b[:])
}

// bstr generates the N-bit BSTR (bit string) for the given global index:
// a clone of the header-primed digest, extended with the little-endian
// "which hash call" half-index, sliced to the N/8-byte sub-hash that
// index selects within that call's output.
func (p Params) bstr(primed hash.Hash, index uint32) []byte {
	perHash := uint32(p.indicesPerHash())
	ctx := copyHash(primed)
	writeLE32(ctx, index/perHash)
	digest := ctx.Sum(nil)

	width := int(p.N) / 8
	offset := int(index%perHash) * width
	return digest[offset : offset+width]
}

// Verify reports whether solution is a valid Equihash proof of work over
// input (the header's canonical bytes with the solution field itself
// excluded).
func Verify(p Params, input, solution []byte) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	if len(solution) != p.SolutionSize() {
		return false, fmt.Errorf("equihash: solution is %d bytes, want %d", len(solution), p.SolutionSize())
	}

	primed, err := p.newDigest()
	if err != nil {
		return false, err
	}
	primed.Write(input)

	indices, err := p.expandIndices(solution)
	if err != nil {
		return false, err
	}

	collisionBytes := p.collisionBytes()
	hashLen := (int(p.K) + 1) * collisionBytes
	rows := make([][]byte, len(indices))
	for i, index := range indices {
		// Expand the N-bit BSTR into K+1 byte-aligned groups of
		// collisionBytes each, so per-stage collision comparison works
		// even when N/(K+1) is not a multiple of 8 (it is 20 bits for
		// the consensus (200, 9) instance).
		tail, err := expandArray(p.bstr(primed, index), hashLen, int(p.collisionBits()), 0)
		if err != nil {
			return false, err
		}
		row := make([]byte, 0, hashLen+4)
		row = append(row, tail...)
		row = append(row, beUint32(index)...)
		rows[i] = row
	}

	indicesLen := 4
	for stage := 0; stage < int(p.K); stage++ {
		next := make([][]byte, 0, len(rows)/2)
		for i := 0; i+1 < len(rows); i += 2 {
			a, b := rows[i], rows[i+1]
			if !hasCollision(a, b, collisionBytes) {
				return false, nil
			}
			if !indicesBefore(a, b, hashLen, indicesLen) {
				return false, nil
			}
			if !distinctIndices(a, b, hashLen, indicesLen) {
				return false, nil
			}
			next = append(next, mergeRows(a, b, hashLen, indicesLen, collisionBytes))
		}
		rows = next
		hashLen -= collisionBytes
		indicesLen *= 2
	}

	if len(rows) != 1 {
		return false, nil
	}
	for _, b := range rows[0][:hashLen] {
		if b != 0 {
			return false, nil
		}
	}
	return true, nil
}

func beUint32(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b[:]
}

func hasCollision(a, b []byte, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// indicesBefore reports whether a's index list sorts strictly before
// b's, comparing byte by byte starting at offset hashLen. Rows at every
// stage must be strictly ordered this way; equal index lists (which can
// only arise from a malformed solution, since a well-formed one never
// repeats an index) are rejected.
func indicesBefore(a, b []byte, hashLen, indicesLen int) bool {
	for i := 0; i < indicesLen; i++ {
		if a[hashLen+i] != b[hashLen+i] {
			return a[hashLen+i] < b[hashLen+i]
		}
	}
	return false
}

func distinctIndices(a, b []byte, hashLen, indicesLen int) bool {
	for i := 0; i < indicesLen; i += 4 {
		for j := 0; j < indicesLen; j += 4 {
			if string(a[hashLen+i:hashLen+i+4]) == string(b[hashLen+j:hashLen+j+4]) {
				return false
			}
		}
	}
	return true
}

// mergeRows XORs the trimmed hash tails of a and b and concatenates
// their index lists, a's first (mergeRows is only ever called once
// indicesBefore(a, b, ...) has confirmed a sorts first).
func mergeRows(a, b []byte, hashLen, indicesLen, trim int) []byte {
	merged := make([]byte, 0, (hashLen-trim)+2*indicesLen)
	for i := trim; i < hashLen; i++ {
		merged = append(merged, a[i]^b[i])
	}
	merged = append(merged, a[hashLen:hashLen+indicesLen]...)
	merged = append(merged, b[hashLen:hashLen+indicesLen]...)
	return merged
}

// expandIndices unpacks the compressed solution into 2^K big-endian
// uint32 indices, each originally (N/(K+1)+1) bits wide.
func (p Params) expandIndices(solution []byte) ([]uint32, error) {
	blen := int(p.collisionBits()) + 1
	const outWidth = 4
	expanded, err := expandArray(solution, p.indexCount()*outWidth, blen, outWidth-(blen+7)/8)
	if err != nil {
		return nil, err
	}
	indices := make([]uint32, p.indexCount())
	for i := range indices {
		indices[i] = binary.BigEndian.Uint32(expanded[i*4 : i*4+4])
	}
	return indices, nil
}

// expandArray unpacks a bit-packed byte array into outLen bytes of
// bitLen-wide big-endian values, each left-padded to (bitLen+7)/8+bytePad
// bytes.
func expandArray(in []byte, outLen, bitLen, bytePad int) ([]byte, error) {
	if bitLen < 8 {
		return nil, fmt.Errorf("equihash: bitLen %d < 8", bitLen)
	}
	outWidth := (bitLen+7)/8 + bytePad
	if outLen != 8*outWidth*len(in)/bitLen {
		return nil, fmt.Errorf("equihash: outLen %d != expected %d", outLen, 8*outWidth*len(in)/bitLen)
	}

	out := make([]byte, outLen)
	bitLenMask := uint32(1<<uint(bitLen)) - 1
	accBits, accValue, j := 0, uint32(0), 0
	for _, v := range in {
		accValue = (accValue << 8) | uint32(v)
		accBits += 8

		if accBits >= bitLen {
			accBits -= bitLen
			for x := bytePad; x < outWidth; x++ {
				a := accValue >> uint(accBits+8*(outWidth-x-1))
				b := (bitLenMask >> uint(8*(outWidth-x-1))) & 0xFF
				out[j+x] = byte(a & b)
			}
			j += outWidth
		}
	}
	return out, nil
}
