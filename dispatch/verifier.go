package dispatch

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/shieldcoin/shieldd/accept"
	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/chainview"
	"github.com/shieldcoin/shieldd/sighash"
	"github.com/shieldcoin/shieldd/txscript"
	"github.com/shieldcoin/shieldd/verify"
	"github.com/shieldcoin/shieldd/wire"
	"github.com/shieldcoin/shieldd/zkproof"
)

// ChainVerifier composes the context-free pre-verify stage (verify) with
// the contextual accept stage (accept) into the single entry point the
// dispatcher's worker calls per task.
//
// Height is not threaded in by the caller for headers/blocks: it is
// derived from View by resolving the header's parent, since headers
// carry no height field of their own.
type ChainVerifier struct {
	Params        *chaincfg.Params
	Flags         wire.Flags
	View          chainview.ChainView
	JoinSplitKeys zkproof.JoinSplitVerifyingKeys
	SaplingKeys   zkproof.SaplingVerifyingKeys
	SigCache      *txscript.SigCache

	// Now returns the current wall-clock time, used as HeaderChecker's
	// futuristic-timestamp bound. Defaults to time.Now if nil.
	Now func() time.Time
}

func (v *ChainVerifier) now() uint32 {
	if v.Now != nil {
		return uint32(v.Now().Unix())
	}
	return uint32(time.Now().Unix())
}

// heightOf derives the height a header extending prevBlock would be mined
// at: one past its parent's height, or zero when prevBlock is the null
// hash (genesis). ok is false when View does not know the parent.
func (v *ChainVerifier) heightOf(prevBlock chainhash.Hash) (int64, bool) {
	if prevBlock == (chainhash.Hash{}) {
		return 0, true
	}
	parentHeight, ok := v.View.HeightByHash(prevBlock)
	if !ok {
		return 0, false
	}
	return parentHeight + 1, true
}

// VerifyBlockHeader runs the context-free header checks followed by the
// contextual header-accept checks. Used both for the headers-only task
// and, unless the header-pre-verified hint is set, as the first step of
// VerifyBlock.
func (v *ChainVerifier) VerifyBlockHeader(header *wire.BlockHeader) error {
	height, ok := v.heightOf(header.PrevBlock)
	if !ok {
		return &verify.Error{Kind: verify.ErrUnknownParent}
	}
	if err := verify.NewHeaderChecker(header, v.Flags, v.Params, v.now()).Check(); err != nil {
		return err
	}
	return accept.NewHeaderAcceptor(header, v.Flags, v.Params, height, v.View).Check()
}

// VerifyBlock runs the full block pipeline at level against block,
// skipping the context-free header check when headerPreVerified is set
// (the sync component already ran it) but always re-running the
// contextual HeaderAcceptor, since that part was never pre-verified.
//
// level == accept.NoVerification performs no check at all (even an
// empty block is accepted outright).
// level == accept.HeaderVerification runs every structural and
// contextual check except per-transaction script evaluation and
// zero-knowledge proof verification (accept.TransactionAcceptor already
// gates those on level == accept.FullVerification).
func (v *ChainVerifier) VerifyBlock(level accept.VerificationLevel, block *wire.IndexedBlock, headerPreVerified bool) error {
	if level == accept.NoVerification {
		return nil
	}

	height, ok := v.heightOf(block.Header.PrevBlock)
	if !ok {
		return &verify.Error{Kind: verify.ErrUnknownParent}
	}

	if !headerPreVerified {
		if err := verify.NewHeaderChecker(block.Header, v.Flags, v.Params, v.now()).Check(); err != nil {
			return err
		}
	}
	if err := accept.NewHeaderAcceptor(block.Header, v.Flags, v.Params, height, v.View).Check(); err != nil {
		return err
	}

	if err := verify.NewBlockChecker(block, v.Flags, v.Params).Check(); err != nil {
		return err
	}
	if err := accept.NewBlockAcceptor(block, v.Flags, v.Params, height, v.View).Check(); err != nil {
		return err
	}

	return v.checkTransactions(level, accept.ModeBlock, block, height)
}

// VerifyMempoolTransaction runs the mempool-acceptor variant against a
// single transaction proposed for inclusion at height.
func (v *ChainVerifier) VerifyMempoolTransaction(height int64, itx *wire.IndexedTransaction) error {
	tc := verify.NewTransactionChecker(itx, v.Params)
	if err := tc.CheckMempool(legacySigOps); err != nil {
		return err
	}

	a := accept.NewTransactionAcceptor(itx.Tx, itx.Hash, 0, accept.ModeMempool, accept.FullVerification,
		v.Params, height, v.now64(), v.View, nil)
	v.wireCaches(a)
	return a.Check()
}

func (v *ChainVerifier) now64() int64 { return int64(v.now()) }

// legacySigOps counts a transaction's signature operations without chain
// state: the scripts the transaction itself carries. The accept stage
// re-counts with resolved previous outputs (and P2SH precision) later.
func legacySigOps(tx *wire.MsgTx) int {
	var total int
	for _, in := range tx.TxIn {
		total += txscript.GetSigOpCount(in.SignatureScript)
	}
	for _, out := range tx.TxOut {
		total += txscript.GetSigOpCount(out.PkScript)
	}
	return total
}

// checkTransactions runs every transaction's TransactionChecker then
// TransactionAcceptor data-parallel across a worker pool bounded by
// GOMAXPROCS, reducing to the first failure by ascending index,
// deterministic regardless of which goroutine finishes first.
func (v *ChainVerifier) checkTransactions(level accept.VerificationLevel, mode accept.Mode, block *wire.IndexedBlock, height int64) error {
	n := len(block.Transactions)
	errs := make([]error, n)

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				itx := block.Transactions[i]
				if err := verify.NewTransactionChecker(itx, v.Params).Check(); err != nil {
					errs[i] = &verify.Error{Kind: verify.ErrTransaction, TxIndex: i, TxErr: err}
					continue
				}
				a := accept.NewTransactionAcceptor(itx.Tx, itx.Hash, i, mode, level,
					v.Params, height, int64(block.Header.Timestamp), v.View, block)
				v.wireCaches(a)
				if err := a.Check(); err != nil {
					errs[i] = &verify.Error{Kind: verify.ErrTransaction, TxIndex: i, TxErr: err}
				}
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// wireCaches attaches the proof-verification keys and the shared sigcache
// to a transaction acceptor. The sighash cache is deliberately left
// unshared: it is only valid within one transaction's input checks, so a
// fresh one is built per acceptor rather than pooled across the parallel
// fold.
func (v *ChainVerifier) wireCaches(a *accept.TransactionAcceptor) {
	a.JoinSplitKeys = v.JoinSplitKeys
	a.SaplingKeys = v.SaplingKeys
	a.SigCache = v.SigCache
	a.SighashCache = sighash.NewCache()
}

// String renders a short diagnostic identity for log lines.
func (v *ChainVerifier) String() string {
	return fmt.Sprintf("ChainVerifier(%s)", v.Params.Name)
}
