package accept

import (
	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/chainview"
	"github.com/shieldcoin/shieldd/txscript"
	"github.com/shieldcoin/shieldd/verify"
	"github.com/shieldcoin/shieldd/wire"
)

// BlockAcceptor runs the block-level acceptance checks that need chain
// state the context-free BlockChecker never consults: finality against
// median-time-past, the block's total sigops (now that every referenced
// output is resolvable), the coinbase's claimed reward against the
// miner-visible subsidy plus fees, the founders' reward output, and the
// BIP34 height-prefix coinbase script. The serialized-size limit stays
// in the context-free BlockChecker (its inputs need no chain state), so
// it is not repeated here.
type BlockAcceptor struct {
	Block  *wire.IndexedBlock
	Flags  wire.Flags
	Params *chaincfg.Params
	Height int64
	View   chainview.ChainView
}

// NewBlockAcceptor builds an acceptor for block, destined for height,
// resolving previous outputs and ancestor headers against view.
func NewBlockAcceptor(block *wire.IndexedBlock, flags wire.Flags, params *chaincfg.Params, height int64, view chainview.ChainView) *BlockAcceptor {
	return &BlockAcceptor{Block: block, Flags: flags, Params: params, Height: height, View: view}
}

// Check runs, in order: finality, sigops, miner reward, founders' reward,
// coinbase script; the serialized-size check is omitted because
// verify.BlockChecker already performs it.
func (c *BlockAcceptor) Check() error {
	if err := c.checkFinality(); err != nil {
		return err
	}
	if err := c.checkSigops(); err != nil {
		return err
	}
	if err := c.checkMinerReward(); err != nil {
		return err
	}
	if err := c.checkFounderReward(); err != nil {
		return err
	}
	return c.checkCoinbaseScript()
}

// blockOutputProvider resolves a previous output first against the block
// itself (for intra-block chaining), falling back to the external view.
type blockOutputProvider struct {
	block *wire.IndexedBlock
	view  chainview.TransactionOutputProvider
}

func (p blockOutputProvider) previousOutput(op wire.OutPoint, beforeTxIndex int) (*wire.TxOut, bool) {
	for i, itx := range p.block.Transactions {
		if beforeTxIndex >= 0 && i >= beforeTxIndex {
			break
		}
		if itx.Hash != op.Hash {
			continue
		}
		if int(op.Index) >= len(itx.Tx.TxOut) {
			return nil, false
		}
		return itx.Tx.TxOut[op.Index], true
	}
	return p.view.PreviousOutput(op)
}

// noBound is passed as beforeTxIndex when a lookup may resolve against
// any transaction in the block, not only those preceding a given index.
const noBound = -1

func (c *BlockAcceptor) checkFinality() error {
	timeCutoff := c.Block.Header.Timestamp
	if csvActive(c.Params, c.Height) {
		if mtp, ok := medianTimePastAt(c.View, c.Height-1); ok {
			timeCutoff = mtp
		}
	}
	for _, itx := range c.Block.Transactions {
		if !itx.Tx.IsFinal(c.Height, timeCutoff) {
			return &verify.Error{Kind: verify.ErrNonFinalBlock}
		}
	}
	return nil
}

func (c *BlockAcceptor) checkSigops() error {
	bip16Active := int64(c.Block.Header.Timestamp) >= c.Params.BIP16Time
	store := blockOutputProvider{block: c.Block, view: c.View}

	var total int64
	for txIdx, itx := range c.Block.Transactions {
		for _, in := range itx.Tx.TxIn {
			if in.PreviousOutPoint.IsNull() {
				continue
			}
			prevout, ok := store.previousOutput(in.PreviousOutPoint, txIdx)
			if !ok {
				continue
			}
			if bip16Active {
				total += int64(txscript.GetPreciseSigOpCount(in.SignatureScript, prevout.PkScript, true))
			} else {
				total += int64(txscript.GetSigOpCount(prevout.PkScript))
			}
		}
		for _, out := range itx.Tx.TxOut {
			total += int64(txscript.GetSigOpCount(out.PkScript))
		}
	}

	if total > c.Params.MaxBlockSigops {
		return &verify.Error{Kind: verify.ErrMaximumSigops}
	}
	return nil
}

func (c *BlockAcceptor) checkMinerReward() error {
	store := blockOutputProvider{block: c.Block, view: c.View}
	var fees uint64

	for txIdx, itx := range c.Block.Transactions {
		if txIdx == 0 {
			continue
		}
		tx := itx.Tx

		var incoming uint64
		for _, in := range tx.TxIn {
			prevout, ok := store.previousOutput(in.PreviousOutPoint, noBound)
			var value uint64
			if ok {
				value = prevout.Value
			}
			next := incoming + value
			if next < incoming {
				return &verify.Error{Kind: verify.ErrReferencedInputsSumOverflow}
			}
			incoming = next
		}

		if js := tx.JoinSplit; js != nil {
			for _, desc := range js.Descriptions {
				next := incoming + desc.ValuePubNew
				if next < incoming {
					return &verify.Error{Kind: verify.ErrReferencedInputsSumOverflow}
				}
				incoming = next
			}
		}
		if s := tx.Sapling; s != nil && s.BalancingValue > 0 {
			next := incoming + uint64(s.BalancingValue)
			if next < incoming {
				return &verify.Error{Kind: verify.ErrReferencedInputsSumOverflow}
			}
			incoming = next
		}

		spends := tx.TotalSpends()
		if s := tx.Sapling; s != nil && s.BalancingValue < 0 {
			extra := uint64(-s.BalancingValue)
			next := spends + extra
			if next < spends {
				return &verify.Error{Kind: verify.ErrTransaction, TxIndex: txIdx, TxErr: &verify.TransactionError{Kind: verify.TxErrOverspend}}
			}
			spends = next
		}

		if spends > incoming {
			return &verify.Error{Kind: verify.ErrTransaction, TxIndex: txIdx, TxErr: &verify.TransactionError{Kind: verify.TxErrOverspend}}
		}
		difference := incoming - spends

		next := fees + difference
		if next < fees {
			return &verify.Error{Kind: verify.ErrTransactionFeesOverflow}
		}
		fees = next
	}

	claim := c.Block.Transactions[0].Tx.TotalSpends()
	subsidy := uint64(c.Params.BlockSubsidy(c.Height))

	maxReward := fees + subsidy
	if maxReward < fees {
		return &verify.Error{Kind: verify.ErrTransactionFeeAndRewardOverflow}
	}

	if claim > maxReward {
		log.Debugf("block %s coinbase claims %d, subsidy %d + fees %d allows %d",
			c.Block.Hash, claim, subsidy, fees, maxReward)
		return &verify.Error{Kind: verify.ErrCoinbaseOverspend, ExpectedU: maxReward, ActualU: claim}
	}
	return nil
}

func (c *BlockAcceptor) checkFounderReward() error {
	address := c.Params.FounderAddress(c.Height)
	if address == nil {
		return nil
	}
	reward := uint64(c.Params.FounderReward(c.Height))
	script := p2shScript(*address)

	if len(c.Block.Transactions) == 0 {
		return &verify.Error{Kind: verify.ErrMissingFoundersReward}
	}
	for _, out := range c.Block.Transactions[0].Tx.TxOut {
		if out.Value == reward && bytesEqual(out.PkScript, script) {
			return nil
		}
	}
	return &verify.Error{Kind: verify.ErrMissingFoundersReward}
}

func (c *BlockAcceptor) checkCoinbaseScript() error {
	if c.Height < c.Params.BIP34Height {
		return nil
	}
	prefix := minimalPush(c.Height)

	if len(c.Block.Transactions) == 0 || len(c.Block.Transactions[0].Tx.TxIn) == 0 {
		return &verify.Error{Kind: verify.ErrCoinbaseScript}
	}
	sigScript := c.Block.Transactions[0].Tx.TxIn[0].SignatureScript
	if len(sigScript) < len(prefix) || !bytesEqual(sigScript[:len(prefix)], prefix) {
		return &verify.Error{Kind: verify.ErrCoinbaseScript}
	}
	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// p2shScript builds the canonical OP_HASH160 <20 bytes> OP_EQUAL output
// script for scriptHash.
func p2shScript(scriptHash [20]byte) []byte {
	script := make([]byte, 0, 23)
	script = append(script, 0xa9, 0x14)
	script = append(script, scriptHash[:]...)
	script = append(script, 0x87)
	return script
}

// minimalPush encodes n the way a script Builder's push_i64 would: the
// minimal little-endian sign-magnitude byte string, prefixed with a
// direct-push opcode (n is always small and positive here, a block
// height, so the single-byte-length form always applies).
func minimalPush(n int64) []byte {
	data := minimalScriptNumBytes(n)
	if len(data) == 0 {
		return []byte{0x00}
	}
	return append([]byte{byte(len(data))}, data...)
}

func minimalScriptNumBytes(n int64) []byte {
	if n == 0 {
		return nil
	}
	isNegative := n < 0
	v := uint64(n)
	if isNegative {
		v = uint64(-n)
	}

	var result []byte
	for v > 0 {
		result = append(result, byte(v&0xff))
		v >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		if isNegative {
			result = append(result, 0x80)
		} else {
			result = append(result, 0)
		}
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}
	return result
}
