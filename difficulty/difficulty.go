// Package difficulty implements the moving-window proof-of-work retarget:
// an average of the last W ancestors' targets, adjusted by
// the ratio between the damped actual and the expected median-time-past timespan
// of that window, clamped to a bounded adjustment range per retarget.
package difficulty

import (
	"math/big"
	"sort"

	"github.com/shieldcoin/shieldd/wire"
)

// Params fixes the retarget window and its adjustment bounds.
type Params struct {
	// AveragingWindow is the number of ancestor headers averaged each
	// retarget (W; 17 on mainnet).
	AveragingWindow uint32
	// MaxAdjustUp and MaxAdjustDown bound how far the actual timespan may
	// be damped from the target window timespan, as percentages.
	MaxAdjustUp   uint32
	MaxAdjustDown uint32
	// TargetSpacing is the intended seconds between blocks.
	TargetSpacing uint32
}

// AveragingWindowTimespan is the expected duration, in seconds, of one
// full averaging window at the target block spacing.
func (p Params) AveragingWindowTimespan() uint32 {
	return p.AveragingWindow * p.TargetSpacing
}

// MinActualTimespan and MaxActualTimespan bound the damped timespan used
// in a retarget, derived from the averaging window timespan and the
// configured adjustment percentages.
func (p Params) MinActualTimespan() uint32 {
	return p.AveragingWindowTimespan() * (100 - p.MaxAdjustUp) / 100
}

func (p Params) MaxActualTimespan() uint32 {
	return p.AveragingWindowTimespan() * (100 + p.MaxAdjustDown) / 100
}

// MedianTimePast returns the median of up to the last 11 timestamps,
// most-recent last. Even-length windows resolve to the lower of the two
// central values, matching the network's "median of last 11 headers"
// convention.
func MedianTimePast(timestamps []uint32) uint32 {
	if len(timestamps) > 11 {
		timestamps = timestamps[len(timestamps)-11:]
	}
	sorted := append([]uint32(nil), timestamps...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[(len(sorted)-1)/2]
}

// NextWorkRequired computes the bits field the block at height must
// satisfy. ancestorBits holds exactly AveragingWindow entries,
// starting with the parent's bits and ending with the oldest ancestor in
// the window; parentMTP and oldestMTP are the median-time-past of the
// parent and of that oldest ancestor respectively. The first
// AveragingWindow blocks of the chain retarget to maxBits directly, since
// no full window of ancestors exists yet.
func NextWorkRequired(p Params, height uint32, ancestorBits []wire.Compact, parentMTP, oldestMTP uint32, maxBits wire.Compact) wire.Compact {
	if height < p.AveragingWindow {
		return maxBits
	}

	bitsTotal := new(big.Int)
	for _, bits := range ancestorBits {
		bitsTotal.Add(bitsTotal, bits.ToBig())
	}
	bitsAvg := new(big.Int).Div(bitsTotal, big.NewInt(int64(p.AveragingWindow)))

	return calculateWorkRequired(p, bitsAvg, parentMTP, oldestMTP, maxBits)
}

// calculateWorkRequired applies the damping/clamp/retarget arithmetic to
// an already-averaged target. Kept separate from NextWorkRequired so
// tests can exercise it directly with a hand-computed bitsAvg.
func calculateWorkRequired(p Params, bitsAvg *big.Int, parentMTP, oldestMTP uint32, maxBits wire.Compact) wire.Compact {
	windowTimespan := int64(p.AveragingWindowTimespan())
	actualTimespan := int64(parentMTP) - int64(oldestMTP)
	actualTimespan = windowTimespan + (actualTimespan-windowTimespan)/4

	if min := int64(p.MinActualTimespan()); actualTimespan < min {
		actualTimespan = min
	}
	if max := int64(p.MaxActualTimespan()); actualTimespan > max {
		actualTimespan = max
	}

	// Divide before multiplying: consensus performs these as two separate
	// 256-bit integer operations, and swapping the order changes the
	// rounding of the result.
	bitsNew := new(big.Int).Div(bitsAvg, big.NewInt(windowTimespan))
	bitsNew.Mul(bitsNew, big.NewInt(actualTimespan))

	if bitsNew.Cmp(maxBits.ToBig()) > 0 {
		return maxBits
	}
	return wire.CompactFromBig(bitsNew)
}
