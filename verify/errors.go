// Package verify implements the context-free pre-verify stage: a set
// of independent sub-checkers over a single header, block, or transaction
// that never consult chain state.
package verify

import "fmt"

// ErrorKind enumerates the block/header-level pre-verify failures.
type ErrorKind int

const (
	ErrDuplicate ErrorKind = iota
	ErrDuplicatedTransactions
	ErrEmpty
	ErrPow
	ErrFuturisticTimestamp
	ErrTimestamp
	ErrCoinbase
	ErrTransaction
	ErrDifficulty
	ErrMerkleRoot
	ErrCoinbaseOverspend
	ErrCoinbaseScript
	ErrMaximumSigops
	ErrMaximumSigopsCost
	ErrCoinbaseSignatureLength
	ErrSize
	ErrWeight
	ErrNonFinalBlock
	ErrOldVersionBlock
	ErrTransactionFeeAndRewardOverflow
	ErrTransactionFeesOverflow
	ErrReferencedInputsSumOverflow
	ErrNonCanonicalTransactionOrdering
	ErrInvalidEquihashSolution
	ErrInvalidVersion
	ErrMissingFoundersReward
	ErrUnknownParent
)

var errorKindNames = map[ErrorKind]string{
	ErrDuplicate:                       "duplicate block",
	ErrDuplicatedTransactions:          "duplicated transactions",
	ErrEmpty:                           "block has no transactions",
	ErrPow:                             "invalid proof of work",
	ErrFuturisticTimestamp:             "futuristic timestamp",
	ErrTimestamp:                       "invalid timestamp",
	ErrCoinbase:                        "first transaction is not a coinbase",
	ErrTransaction:                     "transaction error",
	ErrDifficulty:                      "bits do not match required difficulty",
	ErrMerkleRoot:                      "invalid merkle root",
	ErrCoinbaseOverspend:               "coinbase spends too much",
	ErrCoinbaseScript:                  "invalid coinbase script",
	ErrMaximumSigops:                   "maximum sigops exceeded",
	ErrMaximumSigopsCost:               "maximum sigops cost exceeded",
	ErrCoinbaseSignatureLength:         "coinbase signature length out of range",
	ErrSize:                            "invalid block size",
	ErrWeight:                          "invalid block weight",
	ErrNonFinalBlock:                   "block contains a non-final transaction",
	ErrOldVersionBlock:                 "old version block",
	ErrTransactionFeeAndRewardOverflow: "fee and reward sum overflow",
	ErrTransactionFeesOverflow:         "transaction fees sum overflow",
	ErrReferencedInputsSumOverflow:     "referenced inputs sum overflow",
	ErrNonCanonicalTransactionOrdering: "non-canonical transaction ordering",
	ErrInvalidEquihashSolution:         "invalid equihash solution",
	ErrInvalidVersion:                  "invalid block version",
	ErrMissingFoundersReward:           "coinbase missing founders' reward output",
	ErrUnknownParent:                   "header's previous block is unknown",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return "unknown verification error"
}

// Error is a structured block/header pre-verify failure. Expected/Actual
// and similar detail fields are populated only for the kinds that carry
// them; zero values otherwise.
type Error struct {
	Kind       ErrorKind
	TxIndex    int   // valid iff Kind == ErrTransaction
	TxErr      error // valid iff Kind == ErrTransaction; an *Error from TransactionError
	Expected   uint32
	Actual     uint32
	ExpectedU  uint64
	ActualU    uint64
	ScriptLen  int
	SizeActual int
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrTransaction:
		return fmt.Sprintf("transaction %d: %v", e.TxIndex, e.TxErr)
	case ErrDifficulty:
		return fmt.Sprintf("%s: expected 0x%08x, got 0x%08x", e.Kind, e.Expected, e.Actual)
	case ErrCoinbaseOverspend:
		return fmt.Sprintf("%s: max %d, got %d", e.Kind, e.ExpectedU, e.ActualU)
	case ErrCoinbaseSignatureLength:
		return fmt.Sprintf("%s: %d", e.Kind, e.ScriptLen)
	case ErrSize:
		return fmt.Sprintf("%s: %d", e.Kind, e.SizeActual)
	default:
		return e.Kind.String()
	}
}

func newErr(kind ErrorKind) *Error { return &Error{Kind: kind} }

// TransactionErrorKind enumerates the transaction-level pre-verify and
// accept failures.
type TransactionErrorKind int

const (
	TxErrEmpty TransactionErrorKind = iota
	TxErrNullNonCoinbase
	TxErrCoinbaseSignatureLength
	TxErrMaxSize
	TxErrMinSize
	TxErrMaxSigops
	TxErrMemoryPoolCoinbase
	TxErrInput
	TxErrMaturity
	TxErrSignature
	TxErrUnknownReference
	TxErrOverspend
	TxErrSignatureMalformed
	TxErrSigops
	TxErrSigopsP2SH
	TxErrMisplacedCoinbase
	TxErrUnspentTransactionWithTheSameHash
	TxErrUsingSpentOutput
	TxErrNonTransparentCoinbase
	TxErrInvalidVersion
	TxErrInvalidVersionGroup
	TxErrOutputValueOverflow
	TxErrInputValueOverflow
	TxErrExpiryHeightTooHigh
	TxErrEmptySaplingHasBalance
	TxErrJoinSplitBothPubsNonZero
	TxErrJoinSplitVersionInvalid
	TxErrDuplicateInput
	TxErrDuplicateJoinSplitNullifier
	TxErrDuplicateSaplingSpendNullifier
	TxErrJoinSplitDeclared
)

var txErrorKindNames = map[TransactionErrorKind]string{
	TxErrEmpty:                             "transaction has no inputs or no outputs",
	TxErrNullNonCoinbase:                   "non-coinbase transaction has a null input",
	TxErrCoinbaseSignatureLength:           "coinbase signature length out of range",
	TxErrMaxSize:                           "transaction exceeds maximum size",
	TxErrMinSize:                           "transaction below minimum size",
	TxErrMaxSigops:                         "transaction has too many sigops",
	TxErrMemoryPoolCoinbase:                "coinbase transaction in mempool",
	TxErrInput:                             "missing input",
	TxErrMaturity:                          "spent coinbase output is not mature",
	TxErrSignature:                         "invalid signature",
	TxErrUnknownReference:                  "unknown previous transaction",
	TxErrOverspend:                         "transaction spends more than it claims",
	TxErrSignatureMalformed:                "signature script is malformed",
	TxErrSigops:                            "too many signature operations",
	TxErrSigopsP2SH:                        "too many signature operations including p2sh",
	TxErrMisplacedCoinbase:                 "coinbase transaction not at position 0",
	TxErrUnspentTransactionWithTheSameHash: "unspent transaction with the same hash already exists",
	TxErrUsingSpentOutput:                  "using an already-spent output",
	TxErrNonTransparentCoinbase:            "coinbase has shielded parts",
	TxErrInvalidVersion:                    "invalid transaction version",
	TxErrInvalidVersionGroup:               "invalid transaction version group",
	TxErrOutputValueOverflow:               "output value overflow",
	TxErrInputValueOverflow:                "input value overflow",
	TxErrExpiryHeightTooHigh:               "expiry height too high",
	TxErrEmptySaplingHasBalance:            "empty sapling bundle has non-zero balance",
	TxErrJoinSplitBothPubsNonZero:          "join split has both value_pub_old and value_pub_new non-zero",
	TxErrJoinSplitVersionInvalid:           "join split present on a version-1 transaction",
	TxErrDuplicateInput:                    "duplicate transaction input",
	TxErrDuplicateJoinSplitNullifier:       "duplicate join split nullifier",
	TxErrDuplicateSaplingSpendNullifier:    "duplicate sapling spend nullifier",
	TxErrJoinSplitDeclared:                 "join split nullifier already declared earlier in the chain",
}

func (k TransactionErrorKind) String() string {
	if s, ok := txErrorKindNames[k]; ok {
		return s
	}
	return "unknown transaction verification error"
}

// TransactionError is a structured transaction pre-verify/accept failure.
type TransactionError struct {
	Kind     TransactionErrorKind
	IndexA   int
	IndexB   int
	Size     int
	Hash     string
	Outpoint string
}

func (e *TransactionError) Error() string {
	switch e.Kind {
	case TxErrCoinbaseSignatureLength:
		return fmt.Sprintf("%s: %d", e.Kind, e.Size)
	case TxErrDuplicateInput, TxErrDuplicateJoinSplitNullifier, TxErrDuplicateSaplingSpendNullifier:
		return fmt.Sprintf("%s: indices %d and %d", e.Kind, e.IndexA, e.IndexB)
	case TxErrUnknownReference, TxErrJoinSplitDeclared:
		return fmt.Sprintf("%s: %s", e.Kind, e.Hash)
	case TxErrInput, TxErrSignature:
		return fmt.Sprintf("%s: input %d", e.Kind, e.IndexA)
	default:
		return e.Kind.String()
	}
}

func newTxErr(kind TransactionErrorKind) *TransactionError { return &TransactionError{Kind: kind} }
