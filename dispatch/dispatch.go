// Package dispatch implements the asynchronous verification dispatcher:
// a single background worker draining a FIFO of verification tasks,
// coupling the pre-verify/accept pipeline (verify, accept) to an
// external fetch/sync component through sink callbacks, plus a
// synchronous variant used for bulk import.
package dispatch

import (
	"github.com/shieldcoin/shieldd/accept"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/wire"
)

// PartiallyVerifiedBlock is a block that may already have had its header
// pre-verified (context-free checks only; AcceptHeader has not run) by the
// external sync component before being handed to the dispatcher.
type PartiallyVerifiedBlock struct {
	Block             *wire.IndexedBlock
	HeaderPreVerified bool
}

// Hash returns the block's precomputed header hash.
func (b PartiallyVerifiedBlock) Hash() chainhash.Hash {
	return b.Block.Hash
}

// TaskKind tags the closed set of work items the dispatcher's worker
// understands.
type TaskKind int

const (
	TaskVerifyHeaders TaskKind = iota
	TaskVerifyBlock
	TaskVerifyTransaction
	TaskStop
)

func (k TaskKind) String() string {
	switch k {
	case TaskVerifyHeaders:
		return "verify-headers"
	case TaskVerifyBlock:
		return "verify-block"
	case TaskVerifyTransaction:
		return "verify-transaction"
	case TaskStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Task is a single unit of work submitted to, or produced internally by,
// the dispatcher. Only the fields relevant to Kind are populated.
type Task struct {
	Kind TaskKind

	// TaskVerifyHeaders
	Peer    int64
	Headers []*wire.BlockHeader

	// TaskVerifyBlock
	Block PartiallyVerifiedBlock

	// TaskVerifyTransaction
	Height int64
	Tx     *wire.IndexedTransaction
}

// VerifyHeadersTask builds a TaskVerifyHeaders task for headers announced
// by peer.
func VerifyHeadersTask(peer int64, headers []*wire.BlockHeader) Task {
	return Task{Kind: TaskVerifyHeaders, Peer: peer, Headers: headers}
}

// VerifyBlockTask builds a TaskVerifyBlock task.
func VerifyBlockTask(block PartiallyVerifiedBlock) Task {
	return Task{Kind: TaskVerifyBlock, Block: block}
}

// VerifyTransactionTask builds a TaskVerifyTransaction task for a
// transaction proposed for the mempool at the given chain height (the
// height of the next block it could be mined into).
func VerifyTransactionTask(height int64, tx *wire.IndexedTransaction) Task {
	return Task{Kind: TaskVerifyTransaction, Height: height, Tx: tx}
}

// Transaction returns the task's transaction, if Kind == TaskVerifyTransaction.
func (t Task) Transaction() (*wire.IndexedTransaction, bool) {
	if t.Kind != TaskVerifyTransaction {
		return nil, false
	}
	return t.Tx, true
}

// HeadersVerificationSink receives the outcome of a TaskVerifyHeaders task.
type HeadersVerificationSink interface {
	OnHeadersVerificationSuccess(headers []*wire.BlockHeader)
	OnHeadersVerificationError(peer int64, err error, hash chainhash.Hash)
}

// BlockVerificationSink receives the outcome of a TaskVerifyBlock task. A
// successful verification may return follow-up tasks (e.g. memory-pool
// transactions invalidated by a reorg the block triggered) that the
// dispatcher runs ahead of any task already waiting in the queue.
type BlockVerificationSink interface {
	OnBlockVerificationSuccess(block *wire.IndexedBlock) []Task
	OnBlockVerificationError(err error, hash chainhash.Hash)
}

// TransactionVerificationSink receives the outcome of a
// TaskVerifyTransaction task.
type TransactionVerificationSink interface {
	OnTransactionVerificationSuccess(tx *wire.IndexedTransaction)
	OnTransactionVerificationError(err error, hash chainhash.Hash)
}

// Sink is the full set of callbacks a Verifier delivers results to. Sink
// methods are never called concurrently with one another by a single
// dispatcher. AsyncVerifier runs them on its own worker goroutine,
// distinct from whatever goroutine submits tasks; SyncVerifier runs them
// inline on the submitting goroutine. An implementation shared across
// dispatchers must still be safe for concurrent use.
type Sink interface {
	HeadersVerificationSink
	BlockVerificationSink
	TransactionVerificationSink
}

// Verifier is the common submission interface both the asynchronous
// (AsyncVerifier) and synchronous (SyncVerifier) dispatchers implement.
type Verifier interface {
	// IsIdle reports whether the dispatcher has no scheduled or
	// currently-executing task.
	IsIdle() bool
	VerifyHeaders(peer int64, headers []*wire.BlockHeader)
	VerifyBlock(block PartiallyVerifiedBlock)
	VerifyTransaction(height int64, tx *wire.IndexedTransaction)
}

// Params fixes the verification parameters a ChainVerifier runs with:
// the base level applied to every block not at or past the verification
// edge, and the edge hash itself, past which full verification is always
// enforced regardless of the configured level.
type Params struct {
	Level            accept.VerificationLevel
	VerificationEdge chainhash.Hash
}
