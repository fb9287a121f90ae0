package chainview

import "github.com/jrick/bitset"

// TxMeta is the concrete TransactionMeta a store keeps per confirmed
// transaction: the height it was mined at, whether it was the coinbase,
// and one spent bit per output. An output marked spent must have a
// successor transaction on the canonical chain whose input references
// it; maintaining that is the chain-writer's job, this type only holds
// the bits.
type TxMeta struct {
	height     int64
	coinbase   bool
	numOutputs uint32
	spent      bitset.Bytes
}

// NewTxMeta returns the metadata record for a transaction mined at
// height with numOutputs outputs, all initially unspent.
func NewTxMeta(height int64, coinbase bool, numOutputs uint32) *TxMeta {
	return &TxMeta{
		height:     height,
		coinbase:   coinbase,
		numOutputs: numOutputs,
		spent:      bitset.NewBytes(int(numOutputs)),
	}
}

// Height returns the height the transaction was mined at.
func (m *TxMeta) Height() int64 { return m.height }

// IsCoinBase reports whether the transaction was its block's coinbase.
func (m *TxMeta) IsCoinBase() bool { return m.coinbase }

// IsSpent reports whether outputIndex has been spent. Out-of-range
// indices report false; callers resolve the referenced output before
// consulting the spent bit, so an out-of-range index is already an
// unknown-reference failure by then.
func (m *TxMeta) IsSpent(outputIndex uint32) bool {
	if outputIndex >= m.numOutputs {
		return false
	}
	return m.spent.Get(int(outputIndex))
}

// IsFullySpent reports whether every output has been spent.
func (m *TxMeta) IsFullySpent() bool {
	for i := uint32(0); i < m.numOutputs; i++ {
		if !m.spent.Get(int(i)) {
			return false
		}
	}
	return true
}

// MarkSpent sets the spent bit for outputIndex. Called by the
// chain-writer when a later transaction's input referencing this output
// is applied; the verifier itself never calls it.
func (m *TxMeta) MarkSpent(outputIndex uint32) {
	if outputIndex >= m.numOutputs {
		return
	}
	m.spent.Set(int(outputIndex))
}

// MarkUnspent clears the spent bit for outputIndex, used when a
// reorganisation returns the spending transaction to the pool.
func (m *TxMeta) MarkUnspent(outputIndex uint32) {
	if outputIndex >= m.numOutputs {
		return
	}
	m.spent.Unset(int(outputIndex))
}
