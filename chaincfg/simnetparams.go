// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
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

// SimNetParams returns the network parameters for the simulation test
// network, intended for local multi-node integration testing between
// cooperating node instances. It has no upstream Zcash counterpart.
func SimNetParams() *Params {
	simNetPowLimit := new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	genesisBlock := wire.MsgBlock{
		Header: wire.BlockHeader{
			Version:          4,
			PrevBlock:        chainhash.Hash{},
			Timestamp:        1401292357,
			Bits:             wire.CompactFromBig(simNetPowLimit),
			Nonce:            wire.NonceFromHash(chainhash.Hash{}),
			EquihashSolution: make([]byte, equihash.Test.SolutionSize()),
		},
		Transactions: []*wire.MsgTx{{
			Version: 1,
			TxIn: []*wire.TxIn{{
				PreviousOutPoint: wire.OutPoint{Index: wire.MaxTxInSequenceNum},
				SignatureScript:  hexDecode("04ffff001d01044c73696d6e657420676e657369735f626c6f636b"),
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
		Name:        "simnet",
		Net:         SimNet,
		DefaultPort: "18555",
		DNSSeeds:    nil,

		GenesisBlock: &genesisBlock,
		GenesisHash:  genesisHash,

		Equihash: equihash.Test,

		PowLimit:     simNetPowLimit,
		PowLimitBits: wire.CompactFromBig(simNetPowLimit),
		Difficulty: difficulty.Params{
			AveragingWindow: 17,
			MaxAdjustUp:     16,
			MaxAdjustDown:   32,
			TargetSpacing:   1,
		},

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

		SubsidyHalvingInterval: 210000,
		InitialSubsidy:         50e8,

		FounderPayouts:     nil,
		FounderRewardShare: 0,

		Checkpoints: nil,

		PubKeyHashAddrID: [2]byte{0x1d, 0x25},
		ScriptHashAddrID: [2]byte{0x1c, 0xba},
		PrivateKeyID:     0x64,

		HDPrivateKeyID: [4]byte{0x04, 0x20, 0xb9, 0x00},
		HDPublicKeyID:  [4]byte{0x04, 0x20, 0xbd, 0x3a},
	}
}
