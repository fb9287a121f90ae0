// Copyright (c) 2018-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/difficulty"
	"github.com/shieldcoin/shieldd/equihash"
	"github.com/shieldcoin/shieldd/wire"
)

// RegNetParams returns the network parameters for the regression test
// network. This network exists purely for unit and RPC server tests; its
// values are subject to change even if doing so would fork the chain.
func RegNetParams() *Params {
	regNetPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	genesisBlock := wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:          4,
			PrevBlock:        chainhash.Hash{},
			Timestamp:        1296688602,
			Bits:             wire.CompactFromBig(regNetPowLimit),
			Nonce:            wire.NonceFromHash(chainhash.Hash{}),
			EquihashSolution: make([]byte, equihash.Test.SolutionSize()),
		},
		Transactions: []*wire.MsgTx{{
			Version: 1,
			TxIn: []*wire.TxIn{{
				PreviousOutPoint: wire.OutPoint{Index: wire.MaxTxInSequenceNum},
				SignatureScript:  hexDecode("04ffff001d01044c726567746573742067656e657369735f626c6f636b"),
				Sequence:         wire.MaxTxInSequenceNum,
			}},
			TxOut: []*wire.TxOut{{
				Value:    0,
				PkScript: hexDecode("21021aeaf2f8638a129a3156fbe7e5ef635226b0bafd495ff03afe2c843d7e3a4b51ac"),
			}},
		}},
	}
	genesisBlock.Header.MerkleRoot = wire.MerkleRoot([]chainhash.Hash{genesisBlock.Transactions[0].TxHash()})
	genesisHash := genesisBlock.Header.Hash(wire.FlagSapling)

	return &Params{
		Name:        "regtest",
		Net:         RegTest,
		DefaultPort: "18344",
		DNSSeeds:    nil,

		GenesisBlock: &genesisBlock,
		GenesisHash:  genesisHash,

		Equihash: equihash.Test,

		PowLimit:     regNetPowLimit,
		PowLimitBits: wire.CompactFromBig(regNetPowLimit),
		Difficulty: difficulty.Params{
			AveragingWindow: 17,
			MaxAdjustUp:     16,
			MaxAdjustDown:   32,
			TargetSpacing:   150,
		},

		// Regtest enforces BIP16, BIP65 and BIP66 from genesis; a zero
		// CSVHeight leaves CSV never active, and the BIP34 coinbase height
		// check sits far out at a height the test chain never reaches.
		BIP16Time:   0,
		BIP34Height: 100000000,
		BIP65Height: 0,
		BIP66Height: 0,
		CSVHeight:   0,

		OverwinterHeight:       0,
		SaplingHeight:          0,
		OverwinterVersionGroup: wire.OverwinterVersionGroupID,
		SaplingVersionGroup:    wire.SaplingVersionGroupID,
		OverwinterBranchID:     0x5ba81b19,
		SaplingBranchID:        0x76b809bb,

		MaxBlockSize:       2000000,
		MaxBlockSigops:     20000,
		MaxTransactionSize: 100000,

		CoinbaseMaturity: 100,

		SubsidyHalvingInterval: 150,
		InitialSubsidy:         12.5e8,

		FounderPayouts:     nil,
		FounderRewardShare: 0,

		Checkpoints: nil,

		PubKeyHashAddrID: [2]byte{0x1d, 0x25},
		ScriptHashAddrID: [2]byte{0x1c, 0xba},
		PrivateKeyID:     0xef,

		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},
	}
}
