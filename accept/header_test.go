package accept

import (
	"testing"

	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/chainview"
	"github.com/shieldcoin/shieldd/difficulty"
	"github.com/shieldcoin/shieldd/verify"
	"github.com/shieldcoin/shieldd/wire"
)

// fakeHeaderProvider is a minimal, in-memory chainview.BlockHeaderProvider
// keyed by height, enough to drive HeaderAcceptor's ancestry walks without
// a real store.
type fakeHeaderProvider struct {
	byHeight map[int64]*wire.BlockHeader
}

func newFakeHeaderProvider() *fakeHeaderProvider {
	return &fakeHeaderProvider{byHeight: make(map[int64]*wire.BlockHeader)}
}

func (f *fakeHeaderProvider) set(height int64, bits wire.Compact, timestamp uint32) {
	f.byHeight[height] = &wire.BlockHeader{Bits: bits, Timestamp: timestamp}
}

func (f *fakeHeaderProvider) BestHeight() int64 { return int64(len(f.byHeight)) - 1 }
func (f *fakeHeaderProvider) HeaderByHeight(height int64) (*wire.BlockHeader, bool) {
	h, ok := f.byHeight[height]
	return h, ok
}
func (f *fakeHeaderProvider) HeaderByHash(hash chainhash.Hash) (*wire.BlockHeader, bool) {
	return nil, false
}
func (f *fakeHeaderProvider) ContainsBlock(chainhash.Hash) bool { return false }
func (f *fakeHeaderProvider) HeightByHash(chainhash.Hash) (int64, bool) { return 0, false }

var _ chainview.BlockHeaderProvider = (*fakeHeaderProvider)(nil)

func testParams() *chaincfg.Params {
	return &chaincfg.Params{
		PowLimitBits:     wire.Compact(0x1f07ffff),
		OverwinterHeight: 10,
		Difficulty: difficulty.Params{
			AveragingWindow: 100,
			MaxAdjustUp:     32,
			MaxAdjustDown:   16,
			TargetSpacing:   150,
		},
	}
}

func TestHeaderAcceptorGenesisSkipsAncestryChecks(t *testing.T) {
	header := &wire.BlockHeader{Version: 1, Timestamp: 1, Bits: wire.Compact(0x1f07ffff)}
	acceptor := NewHeaderAcceptor(header, wire.Flags(0), testParams(), 0, newFakeHeaderProvider())
	if err := acceptor.Check(); err != nil {
		t.Fatalf("genesis header should pass with no ancestry to check: %v", err)
	}
}

func TestHeaderAcceptorRejectsOldVersion(t *testing.T) {
	view := newFakeHeaderProvider()
	header := &wire.BlockHeader{Version: 3, Timestamp: 100, Bits: wire.Compact(0x1f07ffff)}
	// Height 10 is at OverwinterHeight, which requires MinBlockVersionAt==4.
	acceptor := NewHeaderAcceptor(header, wire.Flags(0), testParams(), 10, view)

	err := acceptor.Check()
	verr, ok := err.(*verify.Error)
	if !ok || verr.Kind != verify.ErrOldVersionBlock {
		t.Fatalf("expected ErrOldVersionBlock, got %v", err)
	}
}

func TestHeaderAcceptorRejectsNonIncreasingTimestamp(t *testing.T) {
	view := newFakeHeaderProvider()
	view.set(0, wire.Compact(0x1f07ffff), 1000)
	header := &wire.BlockHeader{Version: 4, Timestamp: 999, Bits: wire.Compact(0x1f07ffff)}
	acceptor := NewHeaderAcceptor(header, wire.Flags(0), testParams(), 1, view)

	err := acceptor.Check()
	verr, ok := err.(*verify.Error)
	if !ok || verr.Kind != verify.ErrTimestamp {
		t.Fatalf("expected ErrTimestamp for a header not exceeding median-time-past, got %v", err)
	}
}
