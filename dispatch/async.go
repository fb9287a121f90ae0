package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/decred/dcrd/container/apbf"

	"github.com/shieldcoin/shieldd/accept"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/wire"
)

// followUpFilterCapacity bounds how many recently-enqueued follow-up
// transaction hashes the dispatcher remembers in order to collapse
// duplicate re-verification requests a reorg can produce when several
// decanonized blocks return overlapping mempool transactions.
const followUpFilterCapacity = 10000

// followUpFilterFPRate is the target false-positive rate for the
// follow-up dedup filter: an occasional false "already queued" skip just
// costs one re-verification later when the transaction is resubmitted
// from elsewhere, so a relatively loose rate keeps the filter small.
const followUpFilterFPRate = 0.0001

// verifierWrapper pairs a ChainVerifier with the verification parameters
// (base level, edge hash) and tracks whether the chain has passed the
// configured edge, past which full verification is enforced regardless
// of the configured base level.
type verifierWrapper struct {
	verifier *ChainVerifier
	params   Params

	enforceFull atomic.Bool
}

func newVerifierWrapper(verifier *ChainVerifier, params Params) *verifierWrapper {
	w := &verifierWrapper{verifier: verifier, params: params}
	if params.VerificationEdge != (chainhash.Hash{}) && verifier.View.ContainsBlock(params.VerificationEdge) {
		w.enforceFull.Store(true)
	}
	return w
}

func (w *verifierWrapper) verifyBlock(block PartiallyVerifiedBlock) error {
	level := w.params.Level
	if block.Hash() == w.params.VerificationEdge {
		w.enforceFull.Store(true)
	}
	if w.enforceFull.Load() {
		level = accept.FullVerification
	}
	return w.verifier.VerifyBlock(level, block.Block, block.HeaderPreVerified)
}

// AsyncVerifier runs one background worker goroutine draining a FIFO of
// verification tasks, delivering results to sink, with an atomic idle
// flag a caller can poll between submissions.
type AsyncVerifier struct {
	tasks chan Task
	sink  Sink
	wrap  *verifierWrapper

	idle atomic.Bool
	wg   sync.WaitGroup

	seenFollowUps *apbf.Filter
	closeOnce     sync.Once
}

// NewAsyncVerifier starts the background worker and returns a handle to
// it. Close must be called to stop the worker and release its goroutine.
func NewAsyncVerifier(verifier *ChainVerifier, sink Sink, params Params) *AsyncVerifier {
	v := &AsyncVerifier{
		tasks:         make(chan Task, 256),
		sink:          sink,
		wrap:          newVerifierWrapper(verifier, params),
		seenFollowUps: apbf.NewFilter(followUpFilterCapacity, followUpFilterFPRate),
	}
	v.idle.Store(true)
	v.wg.Add(1)
	go v.run()
	return v
}

func (v *AsyncVerifier) run() {
	defer v.wg.Done()
	for {
		v.idle.Store(true)
		task, ok := <-v.tasks
		if !ok {
			return
		}
		v.idle.Store(false)
		if !v.executeSingleTask(task) {
			return
		}
	}
}

// executeSingleTask runs task and, if it is a block verification whose
// sink hands back follow-up tasks (transactions a reorg returned to the
// pool), runs those too before returning, ahead of anything still
// waiting in the channel: follow-up tasks precede later
// externally-submitted ones. Returns false when a TaskStop is seen,
// telling run to exit.
func (v *AsyncVerifier) executeSingleTask(task Task) bool {
	queue := []Task{task}
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		switch t.Kind {
		case TaskStop:
			return false

		case TaskVerifyHeaders:
			v.runVerifyHeaders(t)

		case TaskVerifyBlock:
			if followUps := v.runVerifyBlock(t); len(followUps) > 0 {
				queue = append(queue, v.dedupFollowUps(followUps)...)
			}

		case TaskVerifyTransaction:
			v.runVerifyTransaction(t)
		}
	}
	return true
}

func (v *AsyncVerifier) runVerifyHeaders(t Task) {
	for _, header := range t.Headers {
		if err := v.wrap.verifier.VerifyBlockHeader(header); err != nil {
			v.sink.OnHeadersVerificationError(t.Peer, err, header.Hash(v.wrap.verifier.Flags))
			return
		}
	}
	v.sink.OnHeadersVerificationSuccess(t.Headers)
}

func (v *AsyncVerifier) runVerifyBlock(t Task) []Task {
	if err := v.wrap.verifyBlock(t.Block); err != nil {
		log.Debugf("block %s failed verification: %v", t.Block.Hash(), err)
		v.sink.OnBlockVerificationError(err, t.Block.Hash())
		return nil
	}
	return v.sink.OnBlockVerificationSuccess(t.Block.Block)
}

func (v *AsyncVerifier) runVerifyTransaction(t Task) {
	if err := v.wrap.verifier.VerifyMempoolTransaction(t.Height, t.Tx); err != nil {
		v.sink.OnTransactionVerificationError(err, t.Tx.Hash)
		return
	}
	v.sink.OnTransactionVerificationSuccess(t.Tx)
}

// dedupFollowUps drops any follow-up transaction task whose hash has
// already been enqueued recently, preventing the same reorg-displaced
// transaction from being verified twice when more than one decanonized
// block names it.
func (v *AsyncVerifier) dedupFollowUps(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Kind != TaskVerifyTransaction {
			out = append(out, t)
			continue
		}
		if v.seenFollowUps.Contains(t.Tx.Hash[:]) {
			continue
		}
		v.seenFollowUps.Add(t.Tx.Hash[:])
		out = append(out, t)
	}
	return out
}

// IsIdle reports whether the worker is blocked waiting for a task.
func (v *AsyncVerifier) IsIdle() bool { return v.idle.Load() }

// VerifyHeaders queues a headers-only verification task for peer's
// announced headers.
func (v *AsyncVerifier) VerifyHeaders(peer int64, headers []*wire.BlockHeader) {
	v.tasks <- VerifyHeadersTask(peer, headers)
}

// VerifyBlock queues a full block verification task.
func (v *AsyncVerifier) VerifyBlock(block PartiallyVerifiedBlock) {
	v.tasks <- VerifyBlockTask(block)
}

// VerifyTransaction queues a mempool transaction verification task.
func (v *AsyncVerifier) VerifyTransaction(height int64, tx *wire.IndexedTransaction) {
	v.tasks <- VerifyTransactionTask(height, tx)
}

// Close sends a Stop task and waits for the worker to drain and exit. Safe
// to call more than once.
func (v *AsyncVerifier) Close() {
	v.closeOnce.Do(func() {
		v.tasks <- Task{Kind: TaskStop}
		v.wg.Wait()
	})
}
