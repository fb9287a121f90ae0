package verify

import (
	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/wire"
)

// BlockChecker runs every context-free block-structure pre-verify rule:
// non-empty, first (and only first) transaction coinbase, no duplicate
// transactions, merkle root agreement, and absolute size.
type BlockChecker struct {
	Block  *wire.IndexedBlock
	Flags  wire.Flags
	Params *chaincfg.Params
}

// NewBlockChecker builds a checker over an already-indexed block.
func NewBlockChecker(block *wire.IndexedBlock, flags wire.Flags, params *chaincfg.Params) *BlockChecker {
	return &BlockChecker{Block: block, Flags: flags, Params: params}
}

// Check runs, in order: non-empty, coinbase placement, duplicate
// transactions, merkle root, size — then every transaction's own
// TransactionChecker, wrapping the first failure with its index.
func (c *BlockChecker) Check() error {
	if err := c.checkEmpty(); err != nil {
		return err
	}
	if err := c.checkCoinbase(); err != nil {
		return err
	}
	if err := c.checkDuplicateTransactions(); err != nil {
		return err
	}
	if err := c.checkMerkleRoot(); err != nil {
		return err
	}
	if err := c.checkSize(); err != nil {
		return err
	}
	return c.checkTransactions()
}

func (c *BlockChecker) checkEmpty() error {
	if len(c.Block.Transactions) == 0 {
		return newErr(ErrEmpty)
	}
	return nil
}

func (c *BlockChecker) checkCoinbase() error {
	txs := c.Block.Transactions
	if !txs[0].Tx.IsCoinBase() {
		return newErr(ErrCoinbase)
	}
	for _, itx := range txs[1:] {
		if itx.Tx.IsCoinBase() {
			return newErr(ErrCoinbase)
		}
	}
	return nil
}

func (c *BlockChecker) checkDuplicateTransactions() error {
	seen := make(map[chainhash.Hash]struct{}, len(c.Block.Transactions))
	for _, itx := range c.Block.Transactions {
		if _, ok := seen[itx.Hash]; ok {
			return newErr(ErrDuplicatedTransactions)
		}
		seen[itx.Hash] = struct{}{}
	}
	return nil
}

func (c *BlockChecker) checkMerkleRoot() error {
	hashes := make([]chainhash.Hash, len(c.Block.Transactions))
	for i, itx := range c.Block.Transactions {
		hashes[i] = itx.Hash
	}
	if wire.MerkleRoot(hashes) != c.Block.Header.MerkleRoot {
		return newErr(ErrMerkleRoot)
	}
	return nil
}

func (c *BlockChecker) checkSize() error {
	size := c.Block.MsgBlock().SerializeSize(c.Flags)
	if int64(size) > c.Params.MaxBlockSize {
		e := newErr(ErrSize)
		e.SizeActual = size
		return e
	}
	return nil
}

func (c *BlockChecker) checkTransactions() error {
	for i, itx := range c.Block.Transactions {
		tc := NewTransactionChecker(itx, c.Params)
		if err := tc.Check(); err != nil {
			e := newErr(ErrTransaction)
			e.TxIndex = i
			e.TxErr = err
			return e
		}
	}
	return nil
}
