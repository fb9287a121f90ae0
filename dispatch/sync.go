package dispatch

import "github.com/shieldcoin/shieldd/wire"

// SyncVerifier runs each task inline on the calling goroutine, with no
// background worker and no task queue. Used during initial bulk import,
// where the caller already drives a dedicated import loop and gains
// nothing from a second goroutine hop.
//
// Follow-up tasks a sink returns from OnBlockVerificationSuccess are run
// immediately, in the same call stack, before VerifyBlock returns — the
// synchronous analogue of AsyncVerifier's local sub-queue.
type SyncVerifier struct {
	wrap *verifierWrapper
	sink Sink
}

// NewSyncVerifier builds a SyncVerifier. Unlike NewAsyncVerifier, no
// goroutine is started and no Close is required.
func NewSyncVerifier(verifier *ChainVerifier, sink Sink, params Params) *SyncVerifier {
	return &SyncVerifier{
		wrap: newVerifierWrapper(verifier, params),
		sink: sink,
	}
}

// IsIdle always reports true: a SyncVerifier never defers work, so by the
// time any call returns there is nothing left scheduled.
func (v *SyncVerifier) IsIdle() bool { return true }

// VerifyHeaders runs the headers-only checks inline.
func (v *SyncVerifier) VerifyHeaders(peer int64, headers []*wire.BlockHeader) {
	for _, header := range headers {
		if err := v.wrap.verifier.VerifyBlockHeader(header); err != nil {
			v.sink.OnHeadersVerificationError(peer, err, header.Hash(v.wrap.verifier.Flags))
			return
		}
	}
	v.sink.OnHeadersVerificationSuccess(headers)
}

// VerifyBlock runs the full block pipeline inline, then drains any
// follow-up tasks the sink returns, depth-first, before returning.
func (v *SyncVerifier) VerifyBlock(block PartiallyVerifiedBlock) {
	v.runBlock(block)
}

func (v *SyncVerifier) runBlock(block PartiallyVerifiedBlock) {
	if err := v.wrap.verifyBlock(block); err != nil {
		log.Debugf("block %s failed verification: %v", block.Hash(), err)
		v.sink.OnBlockVerificationError(err, block.Hash())
		return
	}
	for _, followUp := range v.sink.OnBlockVerificationSuccess(block.Block) {
		v.runTask(followUp)
	}
}

// VerifyTransaction runs the mempool-acceptor checks inline.
func (v *SyncVerifier) VerifyTransaction(height int64, tx *wire.IndexedTransaction) {
	v.runTransaction(height, tx)
}

func (v *SyncVerifier) runTransaction(height int64, tx *wire.IndexedTransaction) {
	if err := v.wrap.verifier.VerifyMempoolTransaction(height, tx); err != nil {
		v.sink.OnTransactionVerificationError(err, tx.Hash)
		return
	}
	v.sink.OnTransactionVerificationSuccess(tx)
}

func (v *SyncVerifier) runTask(t Task) {
	switch t.Kind {
	case TaskVerifyHeaders:
		v.VerifyHeaders(t.Peer, t.Headers)
	case TaskVerifyBlock:
		v.runBlock(t.Block)
	case TaskVerifyTransaction:
		v.runTransaction(t.Height, t.Tx)
	}
}
