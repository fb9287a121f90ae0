// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
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

// TestNetParams returns the network parameters for the public test network.
func TestNetParams() *Params {
	testPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 251), bigOne)

	genesisBlock := wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:          4,
			PrevBlock:        chainhash.Hash{},
			Timestamp:        1479441400,
			Bits:             wire.CompactFromBig(testPowLimit),
			Nonce:            wire.NonceFromHash(chainhash.Hash{}),
			EquihashSolution: make([]byte, equihash.Mainnet.SolutionSize()),
		},
		Transactions: []*wire.MsgTx{{
			Version: 1,
			TxIn: []*wire.TxIn{{
				PreviousOutPoint: wire.OutPoint{Index: wire.MaxTxInSequenceNum},
				SignatureScript:  hexDecode("04ffff001d010445736869656c6420746573746e657420676e657369735f626c6f636b"),
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
		Name:        "testnet",
		Net:         TestNet,
		DefaultPort: "18233",
		DNSSeeds: []DNSSeed{
			{Host: "testnet-seed.shieldcoin.example", HasFiltering: true},
		},

		GenesisBlock: &genesisBlock,
		GenesisHash:  genesisHash,

		Equihash: equihash.Mainnet,

		PowLimit:     testPowLimit,
		PowLimitBits: wire.CompactFromBig(testPowLimit),
		Difficulty: difficulty.Params{
			AveragingWindow: 17,
			MaxAdjustUp:     16,
			MaxAdjustDown:   32,
			TargetSpacing:   150,
		},

		BIP16Time:   0,
		BIP34Height: 1,
		BIP65Height: 0,
		BIP66Height: 0,
		CSVHeight:   0,

		OverwinterHeight:       207500,
		SaplingHeight:          280000,
		OverwinterVersionGroup: wire.OverwinterVersionGroupID,
		SaplingVersionGroup:    wire.SaplingVersionGroupID,
		OverwinterBranchID:     0x5ba81b19,
		SaplingBranchID:        0x76b809bb,

		MaxBlockSize:       2000000,
		MaxBlockSigops:     20000,
		MaxTransactionSize: 100000,

		CoinbaseMaturity: 100,

		SubsidyHalvingInterval: 840000,
		InitialSubsidy:         12.5e8,

		FounderPayouts: []FounderPayout{
			{StartHeight: 1, EndHeight: 840000, ScriptHash: [20]byte{
				0x7a, 0x8b, 0x03, 0x65, 0xe0, 0x72, 0x56, 0xb1, 0xeb, 0x16,
				0xf5, 0xd5, 0xe9, 0x5e, 0x4a, 0xb9, 0xce, 0x3c, 0xe4, 0x94,
			}},
		},
		FounderRewardShare: 1,

		Checkpoints: []Checkpoint{
			{Height: 0, Hash: &genesisHash},
		},

		PubKeyHashAddrID: [2]byte{0x1d, 0x25},
		ScriptHashAddrID: [2]byte{0x1c, 0xba},
		PrivateKeyID:     0xef,

		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},
	}
}
