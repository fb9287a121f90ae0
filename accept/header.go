package accept

import (
	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/chainview"
	"github.com/shieldcoin/shieldd/difficulty"
	"github.com/shieldcoin/shieldd/verify"
	"github.com/shieldcoin/shieldd/wire"
)

// HeaderAcceptor runs the header-level acceptance checks that the
// context-free HeaderChecker cannot: the required difficulty bits
// re-derived from the ancestor window, the median-time-past floor on the
// header's timestamp, and the height-indexed minimum header version.
type HeaderAcceptor struct {
	Header *wire.BlockHeader
	Flags  wire.Flags
	Params *chaincfg.Params
	Height int64
	View   chainview.BlockHeaderProvider
}

// NewHeaderAcceptor builds an acceptor for header, destined for height, to
// be checked against view's ancestry.
func NewHeaderAcceptor(header *wire.BlockHeader, flags wire.Flags, params *chaincfg.Params, height int64, view chainview.BlockHeaderProvider) *HeaderAcceptor {
	return &HeaderAcceptor{Header: header, Flags: flags, Params: params, Height: height, View: view}
}

// Check runs, in order: minimum version, required difficulty, median-time-
// past.
func (c *HeaderAcceptor) Check() error {
	if err := c.checkVersion(); err != nil {
		return err
	}
	if err := c.checkDifficulty(); err != nil {
		return err
	}
	return c.checkMedianTimePast()
}

func (c *HeaderAcceptor) checkVersion() error {
	if c.Header.Version < c.Params.MinBlockVersionAt(c.Height) {
		return &verify.Error{Kind: verify.ErrOldVersionBlock}
	}
	return nil
}

// checkDifficulty re-derives the required bits from the ancestor window
// and compares them against the header's claimed bits. Blocks before the
// first full averaging window always require the network's max-target
// bits, which NextWorkRequired handles directly.
func (c *HeaderAcceptor) checkDifficulty() error {
	window := c.Params.Difficulty.AveragingWindow
	parentHeight := c.Height - 1
	if parentHeight < 0 {
		return nil
	}

	var ancestorBits []wire.Compact
	var parentMTP, oldestMTP uint32
	if c.Height >= int64(window) {
		ancestorBits = make([]wire.Compact, window)
		for i := uint32(0); i < window; i++ {
			hdr, ok := c.View.HeaderByHeight(parentHeight - int64(i))
			if !ok {
				return &verify.Error{Kind: verify.ErrDifficulty}
			}
			ancestorBits[i] = hdr.Bits
		}

		mtp, ok := medianTimePastAt(c.View, parentHeight)
		if !ok {
			return &verify.Error{Kind: verify.ErrDifficulty}
		}
		parentMTP = mtp

		oldestHeight := parentHeight - int64(window) + 1
		mtp, ok = medianTimePastAt(c.View, oldestHeight)
		if !ok {
			return &verify.Error{Kind: verify.ErrDifficulty}
		}
		oldestMTP = mtp
	}

	required := difficulty.NextWorkRequired(c.Params.Difficulty, uint32(c.Height), ancestorBits, parentMTP, oldestMTP, c.Params.PowLimitBits)
	if c.Header.Bits != required {
		log.Debugf("header at height %d claims bits %08x, retarget requires %08x",
			c.Height, uint32(c.Header.Bits), uint32(required))
		return &verify.Error{Kind: verify.ErrDifficulty, Expected: uint32(required), Actual: uint32(c.Header.Bits)}
	}
	return nil
}

// checkMedianTimePast enforces that a header's timestamp strictly exceeds
// the median of its own ancestor window, preventing a miner from dating a
// block earlier than the chain's recent past.
func (c *HeaderAcceptor) checkMedianTimePast() error {
	parentHeight := c.Height - 1
	if parentHeight < 0 {
		return nil
	}
	mtp, ok := medianTimePastAt(c.View, parentHeight)
	if !ok {
		return &verify.Error{Kind: verify.ErrTimestamp}
	}
	if c.Header.Timestamp <= mtp {
		return &verify.Error{Kind: verify.ErrTimestamp}
	}
	return nil
}

// medianTimePastAt computes the median-time-past ending at height
// (inclusive), walking back up to 11 ancestors. Returns false if height
// itself cannot be resolved.
func medianTimePastAt(view chainview.BlockHeaderProvider, height int64) (uint32, bool) {
	var timestamps []uint32
	for h := height; h > height-11 && h >= 0; h-- {
		hdr, ok := view.HeaderByHeight(h)
		if !ok {
			break
		}
		timestamps = append(timestamps, hdr.Timestamp)
	}
	if len(timestamps) == 0 {
		return 0, false
	}
	return difficulty.MedianTimePast(timestamps), true
}
