package accept

import (
	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/chainview"
	"github.com/shieldcoin/shieldd/sighash"
	"github.com/shieldcoin/shieldd/treecache"
	"github.com/shieldcoin/shieldd/txscript"
	"github.com/shieldcoin/shieldd/verify"
	"github.com/shieldcoin/shieldd/wire"
	"github.com/shieldcoin/shieldd/zkproof"
)

// Mode distinguishes a transaction destined for a block from one being
// admitted to the memory pool; the two run different check sequences.
type Mode int

const (
	ModeBlock Mode = iota
	ModeMempool
)

// VerificationLevel controls how much of a transaction's script and
// shielded proof material TransactionAcceptor actually evaluates.
// FullVerification runs everything; HeaderVerification and NoVerification
// skip script execution and zero-knowledge proof checks, keeping only the
// structural checks (missing inputs, maturity, overspend, nullifier and
// anchor bookkeeping), used by the async dispatcher for blocks it
// trusts by checkpoint.
type VerificationLevel int

const (
	NoVerification VerificationLevel = iota
	HeaderVerification
	FullVerification
)

// TransactionAcceptor runs the transaction-level acceptance checks that
// need chain state: BIP30, missing inputs, coinbase maturity, overspend,
// double-spend, script evaluation, and the shielded JoinSplit and Sapling
// proof, nullifier, and anchor checks. Size limits stay in the
// context-free verify.TransactionChecker and are not repeated here.
type TransactionAcceptor struct {
	Tx     *wire.MsgTx
	Hash   chainhash.Hash
	Index  int // position within Block; 0 in mempool mode
	Mode   Mode
	Level  VerificationLevel
	Params *chaincfg.Params
	Height int64
	Time   int64 // block time (ModeBlock) or current adjusted time (ModeMempool)
	View   chainview.ChainView

	// Block, when non-nil, lets previous-output lookups resolve against
	// earlier transactions of the same in-flight block before falling
	// back to View — the duplex lookup used throughout BlockAcceptor.
	Block *wire.IndexedBlock

	TreeCache     *treecache.Cache
	JoinSplitKeys zkproof.JoinSplitVerifyingKeys
	SaplingKeys   zkproof.SaplingVerifyingKeys
	SigCache      *txscript.SigCache
	SighashCache  *sighash.Cache
}

// NewTransactionAcceptor builds an acceptor for a transaction at position
// index within block (nil in mempool mode), destined for height and mined
// at (or proposed at) blockTime.
func NewTransactionAcceptor(tx *wire.MsgTx, hash chainhash.Hash, index int, mode Mode, level VerificationLevel, params *chaincfg.Params, height int64, blockTime int64, view chainview.ChainView, block *wire.IndexedBlock) *TransactionAcceptor {
	return &TransactionAcceptor{
		Tx: tx, Hash: hash, Index: index, Mode: mode, Level: level,
		Params: params, Height: height, Time: blockTime, View: view, Block: block,
		TreeCache: treecache.New(view),
	}
}

// Check runs the sync or mempool check sequence according to c.Mode.
func (c *TransactionAcceptor) Check() error {
	if c.Mode == ModeMempool {
		return c.checkMempool()
	}
	return c.checkBlock()
}

// checkBlock runs, in order: BIP30, missing inputs, maturity, overspend,
// double-spend, script evaluation, shielded checks.
func (c *TransactionAcceptor) checkBlock() error {
	checks := []func() error{
		c.checkBIP30,
		c.checkMissingInputs,
		c.checkMaturity,
		c.checkOverspend,
		c.checkDoubleSpend,
		c.checkEval,
		c.checkShielded,
	}
	return runChecks(checks)
}

// checkMempool runs the memory-pool variant. BIP30 is skipped: a
// transaction hash colliding with an unspent one already on-chain is
// rejected anyway once the double-spend/missing-inputs checks run against
// its inputs, and pool admission is not itself a consensus matter. A
// sigops check substitutes for the block variant's coinbase rules, which
// cannot apply to a mempool transaction in the first place.
func (c *TransactionAcceptor) checkMempool() error {
	checks := []func() error{
		c.checkMissingInputs,
		c.checkMaturity,
		c.checkOverspend,
		c.checkSigops,
		c.checkDoubleSpend,
		c.checkEval,
		c.checkShielded,
	}
	return runChecks(checks)
}

func runChecks(checks []func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (c *TransactionAcceptor) txErr(kind verify.TransactionErrorKind) *verify.Error {
	return &verify.Error{Kind: verify.ErrTransaction, TxIndex: c.Index, TxErr: &verify.TransactionError{Kind: kind}}
}

// previousOutput resolves op against the in-flight block first (bounded by
// bound, noBound for unrestricted), falling back to View.
func (c *TransactionAcceptor) previousOutput(op wire.OutPoint, bound int) (*wire.TxOut, bool) {
	if c.Block != nil {
		return blockOutputProvider{block: c.Block, view: c.View}.previousOutput(op, bound)
	}
	return c.View.PreviousOutput(op)
}

// checkBIP30 rejects a transaction whose hash collides with one already
// on-chain unless every output of the earlier transaction has been spent.
// It is unconditional, not gated on any activation height.
func (c *TransactionAcceptor) checkBIP30() error {
	meta, ok := c.View.TransactionMetaByHash(c.Hash)
	if ok && !meta.IsFullySpent() {
		e := c.txErr(verify.TxErrUnspentTransactionWithTheSameHash)
		e.TxErr.(*verify.TransactionError).Hash = c.Hash.String()
		return e
	}
	return nil
}

func (c *TransactionAcceptor) checkMissingInputs() error {
	for idx, in := range c.Tx.TxIn {
		if in.PreviousOutPoint.IsNull() {
			continue
		}
		if _, ok := c.previousOutput(in.PreviousOutPoint, c.Index); !ok {
			e := c.txErr(verify.TxErrInput)
			e.TxErr.(*verify.TransactionError).IndexA = idx
			return e
		}
	}
	return nil
}

// checkMaturity rejects spending a coinbase output before it has matured.
func (c *TransactionAcceptor) checkMaturity() error {
	for _, in := range c.Tx.TxIn {
		meta, ok := c.View.TransactionMetaByHash(in.PreviousOutPoint.Hash)
		if !ok {
			continue
		}
		if meta.IsCoinBase() && c.Height < meta.Height()+c.Params.CoinbaseMaturity {
			return c.txErr(verify.TxErrMaturity)
		}
	}
	return nil
}

// checkOverspend bounds a non-coinbase transaction's transparent spend
// against everything it can prove it has available: resolved transparent
// inputs, JoinSplit value_pub_new, and a positive Sapling balancing value;
// a negative Sapling balancing value is additional spend, following the
// pattern BlockAcceptor.checkMinerReward already uses.
func (c *TransactionAcceptor) checkOverspend() error {
	if c.Tx.IsCoinBase() {
		return nil
	}

	var available uint64
	for _, in := range c.Tx.TxIn {
		out, ok := c.previousOutput(in.PreviousOutPoint, noBound)
		if !ok {
			continue
		}
		available += out.Value
	}
	if js := c.Tx.JoinSplit; js != nil {
		for _, desc := range js.Descriptions {
			available += desc.ValuePubNew
		}
	}
	if s := c.Tx.Sapling; s != nil && s.BalancingValue > 0 {
		available += uint64(s.BalancingValue)
	}

	spends := c.Tx.TotalSpends()
	if s := c.Tx.Sapling; s != nil && s.BalancingValue < 0 {
		spends += uint64(-s.BalancingValue)
	}

	if spends > available {
		return c.txErr(verify.TxErrOverspend)
	}
	return nil
}

// checkSigops bounds a mempool transaction's sigops directly, since it
// will never go through BlockAcceptor's block-wide sigops accounting.
func (c *TransactionAcceptor) checkSigops() error {
	bip16Active := c.Time >= c.Params.BIP16Time
	var total int
	for _, in := range c.Tx.TxIn {
		if in.PreviousOutPoint.IsNull() {
			continue
		}
		out, ok := c.previousOutput(in.PreviousOutPoint, noBound)
		if !ok {
			continue
		}
		if bip16Active {
			total += txscript.GetPreciseSigOpCount(in.SignatureScript, out.PkScript, true)
		} else {
			total += txscript.GetSigOpCount(out.PkScript)
		}
	}
	for _, out := range c.Tx.TxOut {
		total += txscript.GetSigOpCount(out.PkScript)
	}
	if int64(total) > c.Params.MaxBlockSigops {
		return c.txErr(verify.TxErrSigops)
	}
	return nil
}

func (c *TransactionAcceptor) checkDoubleSpend() error {
	for idx, in := range c.Tx.TxIn {
		if in.PreviousOutPoint.IsNull() {
			continue
		}
		meta, ok := c.View.TransactionMetaByHash(in.PreviousOutPoint.Hash)
		if ok && meta.IsSpent(in.PreviousOutPoint.Index) {
			e := c.txErr(verify.TxErrUsingSpentOutput)
			e.TxErr.(*verify.TransactionError).IndexA = idx
			return e
		}
	}
	return nil
}

// checkEval runs script evaluation over every transparent input, skipped
// entirely below FullVerification or for a coinbase transaction (which has
// no scriptPubKey to satisfy).
func (c *TransactionAcceptor) checkEval() error {
	if c.Level != FullVerification || c.Tx.IsCoinBase() {
		return nil
	}

	signer := sighash.SignerFromTx(c.Tx)
	branchID := c.Params.BranchIDAt(c.Height)
	flags := ScriptVerificationFlags(c.Params, c.Height, c.Time)

	for idx, in := range c.Tx.TxIn {
		out, ok := c.previousOutput(in.PreviousOutPoint, noBound)
		if !ok {
			e := c.txErr(verify.TxErrUnknownReference)
			e.TxErr.(*verify.TransactionError).Hash = in.PreviousOutPoint.Hash.String()
			return e
		}

		checker := &txscript.TransactionSignatureChecker{
			Signer:            signer,
			Cache:             c.SighashCache,
			SigCache:          c.SigCache,
			Tx:                c.Tx,
			InputIndex:        idx,
			InputAmount:       int64(out.Value),
			ConsensusBranchID: branchID,
		}

		engine := txscript.NewEngine(in.SignatureScript, out.PkScript, flags, checker)
		if err := engine.Execute(); err != nil {
			e := c.txErr(verify.TxErrSignature)
			e.TxErr.(*verify.TransactionError).IndexA = idx
			return e
		}
	}
	return nil
}

// checkShielded runs the JoinSplit and Sapling proof, anchor, and
// nullifier checks.
func (c *TransactionAcceptor) checkShielded() error {
	if err := c.checkJoinSplit(); err != nil {
		return err
	}
	return c.checkSapling()
}

// checkJoinSplit rejects a nullifier already revealed on-chain, verifies
// each description's zero-knowledge proof (when at FullVerification), and
// chains its anchor forward through TreeCache so that a later description
// in this same transaction — or a later transaction in the same block —
// may anchor to the commitments this one appends.
func (c *TransactionAcceptor) checkJoinSplit() error {
	js := c.Tx.JoinSplit
	if js == nil || len(js.Descriptions) == 0 {
		return nil
	}
	cache := c.TreeCache
	if cache == nil {
		cache = treecache.New(c.View)
	}

	for i := range js.Descriptions {
		desc := &js.Descriptions[i]

		for _, n := range desc.Nullifiers {
			if c.View.ContainsNullifier(chainview.EpochSprout, n) {
				e := c.txErr(verify.TxErrJoinSplitDeclared)
				e.TxErr.(*verify.TransactionError).Hash = n.String()
				return e
			}
		}

		if c.Level == FullVerification {
			ok, err := zkproof.VerifyJoinSplit(desc, js.PubKey, c.JoinSplitKeys)
			if err != nil || !ok {
				e := c.txErr(verify.TxErrSignature)
				e.TxErr.(*verify.TransactionError).IndexA = i
				return e
			}
		}

		if err := cache.ContinueRoot(desc.Anchor, desc.Commitments); err != nil {
			e := c.txErr(verify.TxErrUnknownReference)
			e.TxErr.(*verify.TransactionError).Hash = desc.Anchor.String()
			return e
		}
	}
	return nil
}

// checkSapling rejects a spend nullifier already revealed on-chain or a
// spend anchor that names no known Sapling commitment tree, then verifies
// every spend/output proof and the bundle's binding signature (when at
// FullVerification) against the transaction's Sapling-era sighash.
func (c *TransactionAcceptor) checkSapling() error {
	s := c.Tx.Sapling
	if s == nil || s.IsEmpty() {
		return nil
	}

	for i := range s.Spends {
		spend := &s.Spends[i]
		if c.View.ContainsNullifier(chainview.EpochSapling, spend.Nullifier) {
			e := c.txErr(verify.TxErrJoinSplitDeclared)
			e.TxErr.(*verify.TransactionError).Hash = spend.Nullifier.String()
			return e
		}
		if _, ok := c.View.SaplingTreeAt(spend.Anchor); !ok {
			e := c.txErr(verify.TxErrUnknownReference)
			e.TxErr.(*verify.TransactionError).Hash = spend.Anchor.String()
			return e
		}
	}

	if c.Level != FullVerification {
		return nil
	}

	signer := sighash.SignerFromTx(c.Tx)
	branchID := c.Params.BranchIDAt(c.Height)
	sigHash := signer.SignatureHash(c.SighashCache, sighash.NoInput, 0, nil, uint32(sighash.BaseAll), branchID)

	if err := zkproof.VerifySaplingBundle([32]byte(sigHash), s, c.SaplingKeys); err != nil {
		return c.txErr(verify.TxErrSignature)
	}
	return nil
}
