package difficulty

import (
	"math/big"
	"testing"

	"github.com/shieldcoin/shieldd/wire"
)

// mainnetParams is the production retarget parameterisation: a 17-block
// averaging window, 150-second spacing, 16/32 up/down adjustment bounds.
func mainnetParams() Params {
	return Params{
		AveragingWindow: 17,
		MaxAdjustUp:     16,
		MaxAdjustDown:   32,
		TargetSpacing:   150,
	}
}

func TestMedianTimePast(t *testing.T) {
	cases := []struct {
		name string
		ts   []uint32
		want uint32
	}{
		{"one block", []uint32{1517188771}, 1517188771},
		{"two blocks", []uint32{1517188771, 1517188831}, 1517188771},
		{"three blocks in order", []uint32{1517188771, 1517188831, 1517188891}, 1517188831},
		{"three blocks out of order", []uint32{1517188771, 1517188891, 1517188831}, 1517188831},
		{"four blocks in order", []uint32{1517188771, 1517188831, 1517188891, 1517188951}, 1517188831},
		{
			"eleven blocks in order",
			[]uint32{
				1517188771, 1517188831, 1517188891, 1517188951, 1517189011,
				1517189071, 1517189131, 1517189191, 1517189251, 1517189311, 1517189371,
			},
			1517189071,
		},
		{
			"fifteen blocks, only last eleven count",
			[]uint32{
				1517188771, 1517188831, 1517188891, 1517188951,
				1517189011, 1517189071, 1517189131, 1517189191, 1517189251,
				1517189311, 1517189371, 1517189431, 1517189491, 1517189551, 1517189611,
			},
			1517189311,
		},
	}
	for _, c := range cases {
		if got := MedianTimePast(c.ts); got != c.want {
			t.Errorf("%s: MedianTimePast = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestNextWorkRequiredBeforeFirstWindow(t *testing.T) {
	p := mainnetParams()
	maxBits := wire.Compact(0x1e7fffff)
	got := NextWorkRequired(p, 10, nil, 0, 0, maxBits)
	if got != maxBits {
		t.Fatalf("NextWorkRequired before first window = %#x, want maxBits %#x", got, maxBits)
	}
}

// TestNextWorkRequiredEvenlySpaced covers the blocks-evenly-spaced,
// equal-difficulty case: with every ancestor at the same bits and the
// window exactly on pace, the averaged target
// survives a division/multiplication round trip by the window timespan,
// modulo integer-division precision loss.
func TestNextWorkRequiredEvenlySpaced(t *testing.T) {
	p := mainnetParams()
	maxBits := wire.Compact(0x1e7fffff)

	ancestorBits := make([]wire.Compact, p.AveragingWindow)
	for i := range ancestorBits {
		ancestorBits[i] = wire.Compact(0x1e7fffff)
	}

	windowTimespan := p.AveragingWindowTimespan()
	parentMTP := uint32(1269211443) + windowTimespan
	oldestMTP := uint32(1269211443)

	got := NextWorkRequired(p, 2*p.AveragingWindow, ancestorBits, parentMTP, oldestMTP, maxBits)

	expected := wire.Compact(0x1e7fffff).ToBig()
	expected.Div(expected, big.NewInt(int64(windowTimespan)))
	expected.Mul(expected, big.NewInt(int64(windowTimespan)))
	wantCompact := wire.CompactFromBig(expected)

	if got != wantCompact {
		t.Fatalf("NextWorkRequired = %#x, want %#x", got, wantCompact)
	}
}

func TestNextWorkRequiredClampsToMax(t *testing.T) {
	p := mainnetParams()
	maxBits := wire.Compact(0x1e7fffff)

	ancestorBits := make([]wire.Compact, p.AveragingWindow)
	for i := range ancestorBits {
		ancestorBits[i] = maxBits
	}

	// A wildly stretched timespan (blocks coming in far slower than
	// target) pushes the retarget bits above the network ceiling; the
	// result must saturate at maxBits rather than exceed it.
	windowTimespan := p.AveragingWindowTimespan()
	parentMTP := uint32(1000000) + windowTimespan*100
	oldestMTP := uint32(1000000)

	got := NextWorkRequired(p, 2*p.AveragingWindow, ancestorBits, parentMTP, oldestMTP, maxBits)
	if got != maxBits {
		t.Fatalf("NextWorkRequired = %#x, want clamp to maxBits %#x", got, maxBits)
	}
}
