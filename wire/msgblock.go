package wire

import (
	"bytes"
	"io"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

// MsgBlock is a header plus an ordered sequence of transactions.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// Serialize writes the canonical encoding of blk to w.
func (blk *MsgBlock) Serialize(w io.Writer, flags Flags) error {
	if err := blk.Header.Serialize(w, flags); err != nil {
		return err
	}
	if err := WriteVarInt(w, uint64(len(blk.Transactions))); err != nil {
		return err
	}
	for _, tx := range blk.Transactions {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads the canonical encoding of a MsgBlock from r.
func (blk *MsgBlock) Deserialize(r io.Reader, flags Flags) error {
	if err := blk.Header.Deserialize(r, flags); err != nil {
		return err
	}
	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}
	blk.Transactions = make([]*MsgTx, count)
	for i := range blk.Transactions {
		blk.Transactions[i] = &MsgTx{}
		if err := blk.Transactions[i].Deserialize(r); err != nil {
			return err
		}
	}
	return nil
}

// SerializeSize returns the exact serialised byte length of blk.
func (blk *MsgBlock) SerializeSize(flags Flags) int {
	var buf bytes.Buffer
	_ = blk.Serialize(&buf, flags)
	return buf.Len()
}

// MerkleRoot computes the merkle root over the double-SHA-256 transaction
// hashes, taken as given; WitnessMerkleRoot builds the witness form, in
// which the coinbase transaction's hash is replaced with all-zeroes.
func MerkleRoot(hashes []chainhash.Hash) chainhash.Hash {
	if len(hashes) == 0 {
		return chainhash.Hash{}
	}
	level := make([]chainhash.Hash, len(hashes))
	copy(level, hashes)
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}
		next := make([]chainhash.Hash, len(level)/2)
		for i := range next {
			var buf [64]byte
			copy(buf[:32], level[2*i][:])
			copy(buf[32:], level[2*i+1][:])
			next[i] = chainhash.DoubleHashH(buf[:])
		}
		level = next
	}
	return level[0]
}

// TxHashes returns the plain double-SHA-256 hash of every transaction in
// the block, in order.
func (blk *MsgBlock) TxHashes() []chainhash.Hash {
	hashes := make([]chainhash.Hash, len(blk.Transactions))
	for i, tx := range blk.Transactions {
		hashes[i] = tx.TxHash()
	}
	return hashes
}

// WitnessMerkleRoot computes the witness merkle root: the same tree as
// MerkleRoot, but with the coinbase transaction's hash zeroed.
func (blk *MsgBlock) WitnessMerkleRoot() chainhash.Hash {
	hashes := blk.TxHashes()
	if len(hashes) > 0 {
		hashes[0] = chainhash.Hash{}
	}
	return MerkleRoot(hashes)
}

// IndexedTransaction pairs a transaction with its pre-computed hash, to
// amortise rehashing across the pre-verify and accept stages.
type IndexedTransaction struct {
	Hash chainhash.Hash
	Tx   *MsgTx
}

// NewIndexedTransaction computes tx's hash once and returns the pair.
func NewIndexedTransaction(tx *MsgTx) *IndexedTransaction {
	return &IndexedTransaction{Hash: tx.TxHash(), Tx: tx}
}

// IndexedBlock pairs a block header's hash with the block and the indexed
// form of every contained transaction.
type IndexedBlock struct {
	Hash         chainhash.Hash
	Header       *BlockHeader
	Transactions []*IndexedTransaction
}

// NewIndexedBlock builds the indexed form of blk, hashing the header and
// every transaction exactly once.
func NewIndexedBlock(blk *MsgBlock, flags Flags) *IndexedBlock {
	txs := make([]*IndexedTransaction, len(blk.Transactions))
	for i, tx := range blk.Transactions {
		txs[i] = NewIndexedTransaction(tx)
	}
	return &IndexedBlock{
		Hash:         blk.Header.Hash(flags),
		Header:       &blk.Header,
		Transactions: txs,
	}
}

// MsgBlock reconstructs the plain MsgBlock view of an indexed block.
func (ib *IndexedBlock) MsgBlock() *MsgBlock {
	txs := make([]*MsgTx, len(ib.Transactions))
	for i, itx := range ib.Transactions {
		txs[i] = itx.Tx
	}
	return &MsgBlock{Header: *ib.Header, Transactions: txs}
}
