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

// MainNetParams returns the network parameters for the production network.
func MainNetParams() *Params {
	// mainPowLimit is the highest proof-of-work value (lowest difficulty)
	// a mainnet header may have: 2^243 - 1.
	mainPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 243), bigOne)

	// The genesis block predates every activation height on this chain;
	// none of its contents are run through the verify pipeline, so the
	// equihash solution and nonce are left zeroed rather than solved.
	genesisBlock := wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:    4,
			PrevBlock:  chainhash.Hash{},
			Timestamp:  1477641360,
			Bits:       wire.CompactFromBig(mainPowLimit),
			Nonce:      wire.NonceFromHash(chainhash.Hash{}),
			EquihashSolution: make([]byte, equihash.Mainnet.SolutionSize()),
		},
		Transactions: []*wire.MsgTx{{
			Version: 1,
			TxIn: []*wire.TxIn{{
				PreviousOutPoint: wire.OutPoint{Index: wire.MaxTxInSequenceNum},
				SignatureScript:  hexDecode("04ffff001d010445736869656c642067656e6573697320626c6f636b"),
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
		Name:        "mainnet",
		Net:         MainNet,
		DefaultPort: "8233",
		DNSSeeds: []DNSSeed{
			{Host: "seed.shieldcoin.example", HasFiltering: true},
			{Host: "dnsseed.shieldcoin.example", HasFiltering: true},
		},

		GenesisBlock: &genesisBlock,
		GenesisHash:  genesisHash,

		Equihash: equihash.Mainnet,

		PowLimit:     mainPowLimit,
		PowLimitBits: wire.CompactFromBig(mainPowLimit),
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

		OverwinterHeight:       347500,
		SaplingHeight:          419200,
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

		PubKeyHashAddrID: [2]byte{0x1c, 0xb8},
		ScriptHashAddrID: [2]byte{0x1c, 0xbd},
		PrivateKeyID:     0x80,

		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xAD, 0xE4},
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xB2, 0x1E},
	}
}
