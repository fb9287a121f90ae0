package dispatch

import (
	"sync"
	"testing"

	"github.com/decred/dcrd/container/apbf"

	"github.com/shieldcoin/shieldd/accept"
	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/wire"
)

func newTestFilter() *apbf.Filter {
	return apbf.NewFilter(64, 0.01)
}

func hashN(b byte) chainhash.Hash {
	var h chainhash.Hash
	h[0] = b
	return h
}

func blockWithHash(b byte) PartiallyVerifiedBlock {
	return PartiallyVerifiedBlock{Block: &wire.IndexedBlock{Hash: hashN(b)}}
}

// recordingSink implements Sink, recording every hash it is told about in
// call order and optionally returning a canned follow-up task the first
// time a given block hash succeeds.
type recordingSink struct {
	mu      sync.Mutex
	order   []string
	onBlock map[chainhash.Hash][]Task
}

func newRecordingSink() *recordingSink {
	return &recordingSink{onBlock: make(map[chainhash.Hash][]Task)}
}

func (s *recordingSink) record(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = append(s.order, name)
}

func (s *recordingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

func (s *recordingSink) OnHeadersVerificationSuccess(headers []*wire.BlockHeader) {}
func (s *recordingSink) OnHeadersVerificationError(peer int64, err error, hash chainhash.Hash) {}

func (s *recordingSink) OnBlockVerificationSuccess(block *wire.IndexedBlock) []Task {
	s.record(block.Hash.String())
	return s.onBlock[block.Hash]
}
func (s *recordingSink) OnBlockVerificationError(err error, hash chainhash.Hash) {
	s.record("err:" + hash.String())
}

func (s *recordingSink) OnTransactionVerificationSuccess(tx *wire.IndexedTransaction) {
	s.record(tx.Hash.String())
}
func (s *recordingSink) OnTransactionVerificationError(err error, hash chainhash.Hash) {
	s.record("err:" + hash.String())
}

func TestChainVerifierNoVerificationShortCircuit(t *testing.T) {
	v := &ChainVerifier{Params: &chaincfg.Params{}}
	block := &wire.IndexedBlock{Hash: hashN(1)}
	if err := v.VerifyBlock(accept.NoVerification, block, false); err != nil {
		t.Fatalf("NoVerification should never fail: %v", err)
	}
}

func TestDedupFollowUps(t *testing.T) {
	v := &AsyncVerifier{seenFollowUps: newTestFilter()}

	tx := &wire.IndexedTransaction{Hash: hashN(7)}
	task := VerifyTransactionTask(10, tx)

	first := v.dedupFollowUps([]Task{task})
	if len(first) != 1 {
		t.Fatalf("expected first occurrence to pass through, got %d tasks", len(first))
	}

	second := v.dedupFollowUps([]Task{task})
	if len(second) != 0 {
		t.Fatalf("expected duplicate follow-up to be dropped, got %d tasks", len(second))
	}

	// Non-transaction tasks are never deduped.
	headerTask := VerifyHeadersTask(1, nil)
	out := v.dedupFollowUps([]Task{headerTask, headerTask})
	if len(out) != 2 {
		t.Fatalf("expected non-transaction tasks to pass through unfiltered, got %d", len(out))
	}
}

func TestAsyncVerifierFollowUpOrdering(t *testing.T) {
	a := blockWithHash(1)
	b := blockWithHash(2)
	c := blockWithHash(3)

	sink := newRecordingSink()
	sink.onBlock[a.Hash()] = []Task{VerifyBlockTask(c)}

	verifier := &ChainVerifier{Params: &chaincfg.Params{}}
	av := NewAsyncVerifier(verifier, sink, Params{Level: accept.NoVerification})

	av.VerifyBlock(a)
	av.VerifyBlock(b)
	av.Close()

	got := sink.snapshot()
	want := []string{a.Hash().String(), c.Hash().String(), b.Hash().String()}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSyncVerifierFollowUpsRunDepthFirst(t *testing.T) {
	a := blockWithHash(1)
	b := blockWithHash(2)
	c := blockWithHash(3)

	sink := newRecordingSink()
	sink.onBlock[a.Hash()] = []Task{VerifyBlockTask(c)}

	verifier := &ChainVerifier{Params: &chaincfg.Params{}}
	sv := NewSyncVerifier(verifier, sink, Params{Level: accept.NoVerification})

	sv.VerifyBlock(a)
	sv.VerifyBlock(b)

	got := sink.snapshot()
	want := []string{a.Hash().String(), c.Hash().String(), b.Hash().String()}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	if !sv.IsIdle() {
		t.Fatal("SyncVerifier should always report idle")
	}
}
