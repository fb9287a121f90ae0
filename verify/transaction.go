package verify

import (
	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/wire"
)

// Minimum/maximum permitted coinbase script_sig length.
const (
	MinCoinbaseSize = 2
	MaxCoinbaseSize = 100
)

// MaxMoney is the maximum representable amount on the network, used to
// bound every value-overflow check.
const MaxMoney int64 = 21_000_000 * 1e8

// TxExpiryHeightThreshold is the expiry height at or above which an
// overwintered transaction is rejected outright, independent of the
// current chain height.
const TxExpiryHeightThreshold uint32 = 500_000_000

// TransactionChecker runs every context-free transaction pre-verify rule,
// in a fixed order.
type TransactionChecker struct {
	Tx     *wire.MsgTx
	Hash   chainhash.Hash
	Params *chaincfg.Params
}

// NewTransactionChecker builds a checker over an already-hashed transaction.
func NewTransactionChecker(itx *wire.IndexedTransaction, params *chaincfg.Params) *TransactionChecker {
	return &TransactionChecker{Tx: itx.Tx, Hash: itx.Hash, Params: params}
}

// Check runs every sub-verifier for a transaction destined for a block,
// in order: version, expiry, empty, null-non-coinbase, oversized-coinbase,
// non-transparent-coinbase, size, sapling, join-split, output-value
// overflow, input-value overflow, duplicate inputs, duplicate join-split
// nullifiers, duplicate sapling nullifiers.
func (c *TransactionChecker) Check() error {
	checks := []func() error{
		c.checkVersion,
		c.checkExpiry,
		c.checkEmpty,
		c.checkNullNonCoinbase,
		c.checkOversizedCoinbase,
		c.checkNonTransparentCoinbase,
		c.checkAbsoluteSize,
		c.checkSapling,
		c.checkJoinSplit,
		c.checkOutputValueOverflow,
		c.checkInputValueOverflow,
		c.checkDuplicateInputs,
		c.checkDuplicateJoinSplitNullifiers,
		c.checkDuplicateSaplingNullifiers,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// CheckMempool runs the memory-pool variant: it substitutes a coinbase
// rejection and a sigops check for the sync variant's oversized-coinbase
// check. The order is: version, expiry, empty, null-non-coinbase,
// is-coinbase, size, sigops, sapling, join-split, output-value overflow,
// input-value overflow, duplicate inputs, duplicate join-split nullifiers,
// duplicate sapling nullifiers.
func (c *TransactionChecker) CheckMempool(sigops func(*wire.MsgTx) int) error {
	checks := []func() error{
		c.checkVersion,
		c.checkExpiry,
		c.checkEmpty,
		c.checkNullNonCoinbase,
		c.checkMemoryPoolCoinbase,
		c.checkAbsoluteSize,
		func() error { return c.checkSigops(sigops) },
		c.checkSapling,
		c.checkJoinSplit,
		c.checkOutputValueOverflow,
		c.checkInputValueOverflow,
		c.checkDuplicateInputs,
		c.checkDuplicateJoinSplitNullifiers,
		c.checkDuplicateSaplingNullifiers,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

// checkVersion enforces version >= 1 pre-Overwinter, and version >= 3
// plus a recognised version-group id once overwintered.
func (c *TransactionChecker) checkVersion() error {
	tx := c.Tx
	if tx.Overwintered {
		if tx.Version < wire.TxVersionOverwinter {
			return newTxErr(TxErrInvalidVersion)
		}
		if tx.VersionGroupID != wire.OverwinterVersionGroupID && tx.VersionGroupID != wire.SaplingVersionGroupID {
			return newTxErr(TxErrInvalidVersionGroup)
		}
		return nil
	}
	if tx.Version < wire.TxVersionBitcoin {
		return newTxErr(TxErrInvalidVersion)
	}
	return nil
}

func (c *TransactionChecker) checkExpiry() error {
	if c.Tx.Overwintered && c.Tx.ExpiryHeight >= TxExpiryHeightThreshold {
		return newTxErr(TxErrExpiryHeightTooHigh)
	}
	return nil
}

// checkEmpty enforces that an empty transparent input/output vector is
// covered by a non-empty shielded counterpart: a transaction with no
// transparent inputs must still move value through JoinSplits or Sapling
// spends, and likewise for outputs.
func (c *TransactionChecker) checkEmpty() error {
	tx := c.Tx
	if len(tx.TxIn) == 0 {
		emptyJoinSplit := tx.JoinSplit == nil || len(tx.JoinSplit.Descriptions) == 0
		emptySpends := tx.Sapling == nil || len(tx.Sapling.Spends) == 0
		if emptyJoinSplit && emptySpends {
			return newTxErr(TxErrEmpty)
		}
	}
	if len(tx.TxOut) == 0 {
		emptyJoinSplit := tx.JoinSplit == nil || len(tx.JoinSplit.Descriptions) == 0
		emptyOutputs := tx.Sapling == nil || len(tx.Sapling.Outputs) == 0
		if emptyJoinSplit && emptyOutputs {
			return newTxErr(TxErrEmpty)
		}
	}
	return nil
}

func (c *TransactionChecker) checkNullNonCoinbase() error {
	tx := c.Tx
	if tx.IsCoinBase() {
		return nil
	}
	for _, in := range tx.TxIn {
		if in.PreviousOutPoint.IsNull() {
			return newTxErr(TxErrNullNonCoinbase)
		}
	}
	return nil
}

func (c *TransactionChecker) checkOversizedCoinbase() error {
	tx := c.Tx
	if !tx.IsCoinBase() {
		return nil
	}
	n := len(tx.TxIn[0].SignatureScript)
	if n < MinCoinbaseSize || n > MaxCoinbaseSize {
		e := newTxErr(TxErrCoinbaseSignatureLength)
		e.Size = n
		return e
	}
	return nil
}

func (c *TransactionChecker) checkMemoryPoolCoinbase() error {
	if c.Tx.IsCoinBase() {
		return newTxErr(TxErrMemoryPoolCoinbase)
	}
	return nil
}

func (c *TransactionChecker) checkAbsoluteSize() error {
	if int64(c.Tx.SerializeSize()) > c.Params.MaxTransactionSize {
		return newTxErr(TxErrMaxSize)
	}
	return nil
}

func (c *TransactionChecker) checkSigops(sigops func(*wire.MsgTx) int) error {
	if int64(sigops(c.Tx)) > c.Params.MaxBlockSigops {
		return newTxErr(TxErrMaxSigops)
	}
	return nil
}

func (c *TransactionChecker) checkNonTransparentCoinbase() error {
	tx := c.Tx
	if !tx.IsCoinBase() {
		return nil
	}
	if tx.JoinSplit != nil && len(tx.JoinSplit.Descriptions) > 0 {
		return newTxErr(TxErrNonTransparentCoinbase)
	}
	if tx.Sapling != nil && (len(tx.Sapling.Spends) > 0 || len(tx.Sapling.Outputs) > 0) {
		return newTxErr(TxErrNonTransparentCoinbase)
	}
	return nil
}

func (c *TransactionChecker) checkSapling() error {
	s := c.Tx.Sapling
	if s == nil {
		return nil
	}
	if s.BalancingValue != 0 && len(s.Spends) == 0 && len(s.Outputs) == 0 {
		return newTxErr(TxErrEmptySaplingHasBalance)
	}
	return nil
}

func (c *TransactionChecker) checkJoinSplit() error {
	js := c.Tx.JoinSplit
	if js == nil || len(js.Descriptions) == 0 {
		return nil
	}
	if c.Tx.Version == wire.TxVersionBitcoin {
		return newTxErr(TxErrJoinSplitVersionInvalid)
	}
	for _, desc := range js.Descriptions {
		if desc.ValuePubOld != 0 && desc.ValuePubNew != 0 {
			return newTxErr(TxErrJoinSplitBothPubsNonZero)
		}
	}
	return nil
}

// checkOutputValueOverflow keeps a signed running total: every individual
// amount is range-checked against MaxMoney before it is folded in, and
// the running total itself is re-checked against MaxMoney after every
// addition.
func (c *TransactionChecker) checkOutputValueOverflow() error {
	tx := c.Tx
	var total int64
	for _, out := range tx.TxOut {
		if out.Value > uint64(MaxMoney) {
			return newTxErr(TxErrOutputValueOverflow)
		}
		next := total + int64(out.Value)
		if next < total || next > MaxMoney {
			return newTxErr(TxErrOutputValueOverflow)
		}
		total = next
	}

	if s := tx.Sapling; s != nil {
		if s.BalancingValue < -MaxMoney || s.BalancingValue > MaxMoney {
			return newTxErr(TxErrOutputValueOverflow)
		}
		if s.BalancingValue < 0 {
			next := total + (-s.BalancingValue)
			if next < total || next > MaxMoney {
				return newTxErr(TxErrOutputValueOverflow)
			}
			total = next
		}
	}

	if js := tx.JoinSplit; js != nil {
		for _, desc := range js.Descriptions {
			if desc.ValuePubOld > uint64(MaxMoney) || desc.ValuePubNew > uint64(MaxMoney) {
				return newTxErr(TxErrOutputValueOverflow)
			}
			next := total + int64(desc.ValuePubOld)
			if next < total || next > MaxMoney {
				return newTxErr(TxErrOutputValueOverflow)
			}
			total = next
		}
	}
	return nil
}

// checkInputValueOverflow bounds only the side of input value that is
// already known at pre-verify time: JoinSplit value_pub_new (money flowing
// from shielded into transparent) and a positive Sapling balancing value.
// Transparent-input values are unknown without chain state and are instead
// bounded at the accept stage.
func (c *TransactionChecker) checkInputValueOverflow() error {
	tx := c.Tx
	var total uint64
	if js := tx.JoinSplit; js != nil {
		for _, desc := range js.Descriptions {
			if desc.ValuePubNew > uint64(MaxMoney) {
				return newTxErr(TxErrInputValueOverflow)
			}
			next := total + desc.ValuePubNew
			if next < total || next > uint64(MaxMoney) {
				return newTxErr(TxErrInputValueOverflow)
			}
			total = next
		}
	}
	if s := tx.Sapling; s != nil && s.BalancingValue > 0 {
		next := total + uint64(s.BalancingValue)
		if next < total || next > uint64(MaxMoney) {
			return newTxErr(TxErrInputValueOverflow)
		}
	}
	return nil
}

func (c *TransactionChecker) checkDuplicateInputs() error {
	seen := make(map[wire.OutPoint]int, len(c.Tx.TxIn))
	for idx, in := range c.Tx.TxIn {
		if old, ok := seen[in.PreviousOutPoint]; ok {
			e := newTxErr(TxErrDuplicateInput)
			e.IndexA, e.IndexB = old, idx
			return e
		}
		seen[in.PreviousOutPoint] = idx
	}
	return nil
}

func (c *TransactionChecker) checkDuplicateJoinSplitNullifiers() error {
	js := c.Tx.JoinSplit
	if js == nil {
		return nil
	}
	seen := make(map[chainhash.Hash]int, 2*len(js.Descriptions))
	for idx, desc := range js.Descriptions {
		for _, n := range desc.Nullifiers {
			if old, ok := seen[n]; ok {
				e := newTxErr(TxErrDuplicateJoinSplitNullifier)
				e.IndexA, e.IndexB = old, idx
				return e
			}
			seen[n] = idx
		}
	}
	return nil
}

func (c *TransactionChecker) checkDuplicateSaplingNullifiers() error {
	s := c.Tx.Sapling
	if s == nil {
		return nil
	}
	seen := make(map[chainhash.Hash]int, len(s.Spends))
	for idx, spend := range s.Spends {
		if old, ok := seen[spend.Nullifier]; ok {
			e := newTxErr(TxErrDuplicateSaplingSpendNullifier)
			e.IndexA, e.IndexB = old, idx
			return e
		}
		seen[spend.Nullifier] = idx
	}
	return nil
}
