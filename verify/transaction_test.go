package verify

import (
	"testing"

	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/wire"
)

func testParams() *chaincfg.Params {
	return &chaincfg.Params{
		MaxTransactionSize: 100000,
		MaxBlockSigops:     20000,
	}
}

func checkerFor(tx *wire.MsgTx) *TransactionChecker {
	itx := wire.NewIndexedTransaction(tx)
	return NewTransactionChecker(itx, testParams())
}

func TestTransactionEmpty(t *testing.T) {
	tx := &wire.MsgTx{Version: 2, TxOut: []*wire.TxOut{{Value: 0, PkScript: []byte{}}}}
	if err := checkerFor(tx).checkEmpty(); err == nil {
		t.Fatal("expected empty-inputs error")
	}

	tx.JoinSplit = &wire.JoinSplitData{Descriptions: []wire.JoinSplitDescription{{}}}
	if err := checkerFor(tx).checkEmpty(); err != nil {
		t.Fatalf("unexpected error with non-empty join split: %v", err)
	}

	tx2 := &wire.MsgTx{Version: 2, TxIn: []*wire.TxIn{{}}}
	if err := checkerFor(tx2).checkEmpty(); err == nil {
		t.Fatal("expected empty-outputs error")
	}
}

func TestTransactionVersion(t *testing.T) {
	tx := &wire.MsgTx{Version: 0}
	if err := checkerFor(tx).checkVersion(); err == nil {
		t.Fatal("expected invalid version error")
	}

	tx = &wire.MsgTx{Version: wire.TxVersionBitcoin}
	if err := checkerFor(tx).checkVersion(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tx = &wire.MsgTx{Overwintered: true, Version: wire.TxVersionBitcoin}
	if err := checkerFor(tx).checkVersion(); err == nil {
		t.Fatal("expected invalid version error for overwintered v1")
	}

	tx = &wire.MsgTx{Overwintered: true, Version: wire.TxVersionOverwinter}
	if err := checkerFor(tx).checkVersion(); err == nil {
		t.Fatal("expected invalid version group error")
	}

	tx = &wire.MsgTx{Overwintered: true, Version: wire.TxVersionOverwinter, VersionGroupID: wire.OverwinterVersionGroupID}
	if err := checkerFor(tx).checkVersion(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tx = &wire.MsgTx{Overwintered: true, Version: wire.TxVersionOverwinter, VersionGroupID: wire.SaplingVersionGroupID}
	if err := checkerFor(tx).checkVersion(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransactionNonTransparentCoinbase(t *testing.T) {
	coinbase := &wire.MsgTx{
		TxIn:      []*wire.TxIn{{PreviousOutPoint: wire.OutPoint{Index: wire.MaxTxInSequenceNum}}},
		JoinSplit: &wire.JoinSplitData{Descriptions: []wire.JoinSplitDescription{{}}},
	}
	if err := checkerFor(coinbase).checkNonTransparentCoinbase(); err == nil {
		t.Fatal("expected non-transparent coinbase error")
	}

	coinbase2 := &wire.MsgTx{
		TxIn:    []*wire.TxIn{{PreviousOutPoint: wire.OutPoint{Index: wire.MaxTxInSequenceNum}}},
		Sapling: &wire.SaplingData{Spends: []wire.SaplingSpendDescription{{}}},
	}
	if err := checkerFor(coinbase2).checkNonTransparentCoinbase(); err == nil {
		t.Fatal("expected non-transparent coinbase error")
	}

	coinbase3 := &wire.MsgTx{
		TxIn: []*wire.TxIn{{PreviousOutPoint: wire.OutPoint{Index: wire.MaxTxInSequenceNum}}},
	}
	if err := checkerFor(coinbase3).checkNonTransparentCoinbase(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransactionOutputValueOverflow(t *testing.T) {
	tx := &wire.MsgTx{TxOut: []*wire.TxOut{{Value: uint64(MaxMoney) + 1}}}
	if err := checkerFor(tx).checkOutputValueOverflow(); err == nil {
		t.Fatal("expected output value overflow error")
	}

	tx = &wire.MsgTx{TxOut: []*wire.TxOut{{Value: uint64(MaxMoney)}}}
	if err := checkerFor(tx).checkOutputValueOverflow(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tx = &wire.MsgTx{Sapling: &wire.SaplingData{BalancingValue: MaxMoney + 1}}
	if err := checkerFor(tx).checkOutputValueOverflow(); err == nil {
		t.Fatal("expected output value overflow error for oversized sapling balance")
	}
}

func TestTransactionDuplicateInputs(t *testing.T) {
	op := wire.OutPoint{Index: 0}
	tx := &wire.MsgTx{TxIn: []*wire.TxIn{{PreviousOutPoint: op}, {PreviousOutPoint: op}}}
	err := checkerFor(tx).checkDuplicateInputs()
	if err == nil {
		t.Fatal("expected duplicate input error")
	}
	txErr, ok := err.(*TransactionError)
	if !ok || txErr.Kind != TxErrDuplicateInput || txErr.IndexA != 0 || txErr.IndexB != 1 {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransactionDuplicateSaplingNullifiers(t *testing.T) {
	tx := &wire.MsgTx{Sapling: &wire.SaplingData{Spends: []wire.SaplingSpendDescription{{}, {}}}}
	err := checkerFor(tx).checkDuplicateSaplingNullifiers()
	if err == nil {
		t.Fatal("expected duplicate sapling nullifier error")
	}
}
