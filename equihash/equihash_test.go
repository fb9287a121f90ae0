package equihash

import (
	"encoding/binary"
	"fmt"
	"testing"
)

// compressSolution packs a list of raw generalised-birthday indices into
// the compressed on-wire solution encoding: the inverse of expandArray,
// used here only to build test fixtures from literal index lists.
func compressSolution(p Params, indices []uint32) []byte {
	blen := int(p.collisionBits()) + 1
	const inWidth = 4
	bytePad := inWidth - (blen+7)/8

	in := make([]byte, 0, len(indices)*inWidth)
	for _, idx := range indices {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], idx)
		in = append(in, b[:]...)
	}

	outLen := p.SolutionSize()
	out := make([]byte, outLen)
	bitLenMask := uint32(1<<uint(blen)) - 1
	accBits, accVal, j := 0, uint32(0), 0

	for i := 0; i < outLen; i++ {
		if accBits < 8 {
			accVal = (accVal << uint(blen)) | uint32(in[j])
			for x := bytePad; x < inWidth; x++ {
				v := uint32(in[j+x])
				mask := bitLenMask >> uint(8*(inWidth-x-1))
				accVal |= (v & mask & 0xFF) << uint(8*(inWidth-x-1))
			}
			j += inWidth
			accBits += blen
		}
		accBits -= 8
		out[i] = byte(accVal >> uint(accBits))
	}
	return out
}

// TestExpandCompressRoundTrip checks that compressSolution (the test's
// fixture builder) round-trips through expandIndices, confirming both
// share the same bit-packing convention before relying on either for
// the solution vectors below.
func TestExpandCompressRoundTrip(t *testing.T) {
	p := Test
	want := make([]uint32, p.indexCount())
	for i := range want {
		want[i] = uint32(i * 37 % (1 << (p.collisionBits() + 1)))
	}
	solution := compressSolution(p, want)
	got, err := p.expandIndices(solution)
	if err != nil {
		t.Fatalf("expandIndices: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// TestVerifySolution reproduces a published (96, 5) vector: a fixed
// input string with a nonce appended, and a known-good 32-index
// solution.
func TestVerifySolution(t *testing.T) {
	input := []byte("Equihash is an asymmetric PoW based on the Generalised Birthday problem.")
	var nonce [32]byte
	nonce[0] = 1
	input = append(input, nonce[:]...)

	indices := []uint32{
		2261, 15185, 36112, 104243, 23779, 118390, 118332, 130041,
		32642, 69878, 76925, 80080, 45858, 116805, 92842, 111026,
		15972, 115059, 85191, 90330, 68190, 122819, 81830, 91132,
		23460, 49807, 52426, 80391, 69567, 114474, 104973, 122568,
	}

	solution := compressSolution(Test, indices)
	ok, err := Verify(Test, input, solution)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("Verify returned false for a known-good solution")
	}
}

func TestVerifyRejectsTamperedSolution(t *testing.T) {
	input := []byte("Equihash is an asymmetric PoW based on the Generalised Birthday problem.")
	var nonce [32]byte
	nonce[0] = 1
	input = append(input, nonce[:]...)

	indices := []uint32{
		2261, 15185, 36112, 104243, 23779, 118390, 118332, 130041,
		32642, 69878, 76925, 80080, 45858, 116805, 92842, 111026,
		15972, 115059, 85191, 90330, 68190, 122819, 81830, 91132,
		23460, 49807, 52426, 80391, 69567, 114474, 104973, 122568,
	}
	solution := compressSolution(Test, indices)
	solution[0] ^= 0xFF

	ok, err := Verify(Test, input, solution)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("Verify accepted a tampered solution")
	}
}

func TestVerifyRejectsWrongLength(t *testing.T) {
	_, err := Verify(Mainnet, []byte("header"), []byte{0, 1, 2})
	if err == nil {
		t.Fatal("expected an error for a short solution")
	}
}

func TestSolutionSize(t *testing.T) {
	if got, want := Mainnet.SolutionSize(), 1344; got != want {
		t.Fatalf("Mainnet.SolutionSize() = %d, want %d", got, want)
	}
	if got, want := Test.SolutionSize(), 68; got != want {
		t.Fatalf("Test.SolutionSize() = %d, want %d", got, want)
	}
}

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		p    Params
		want bool
	}{
		{Mainnet, true},
		{Test, true},
		{Params{N: 97, K: 5}, false},
		{Params{N: 96, K: 2}, false},
	}
	for _, c := range cases {
		err := c.p.Validate()
		if (err == nil) != c.want {
			t.Errorf("%+v.Validate() = %v, want valid=%v", c.p, err, c.want)
		}
	}
	t.Run("documents errors", func(t *testing.T) {
		err := Params{N: 97, K: 5}.Validate()
		if err == nil {
			t.Fatal("expected an error")
		}
		_ = fmt.Sprintf("%v", err)
	})
}
