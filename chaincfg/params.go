// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2014 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines chain configuration parameters for each of the
// networks this node understands: the genesis block, address/key magics,
// and the consensus constants that gate retargeting, block and
// transaction structural limits, coinbase reward splitting, and the
// Overwinter/Sapling activation heights.
package chaincfg

import (
	"encoding/hex"
	"math/big"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/difficulty"
	"github.com/shieldcoin/shieldd/equihash"
	"github.com/shieldcoin/shieldd/wire"
)

// Net is the magic number identifying a network in P2P message headers.
type Net uint32

// Magic numbers for each network this node understands. MainNet, TestNet,
// and RegTest reuse the well-known Zcash message-start bytes so that a peer
// speaking the historical wire protocol is recognised; SimNet has no
// upstream counterpart and is only used for local multi-node testing.
const (
	MainNet Net = 0x6427e924
	TestNet Net = 0xbff91afa
	RegTest Net = 0x5f3fe8aa
	SimNet  Net = 0x12141c16
)

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	Host         string
	HasFiltering bool
}

// Checkpoint identifies a known-good block by height, used to skip
// signature/proof validation for blocks known to be buried deeply enough
// in the best chain.
type Checkpoint struct {
	Height int64
	Hash   *chainhash.Hash
}

// FounderPayout names the P2SH script hash that receives the founders'
// reward for a contiguous range of heights.
type FounderPayout struct {
	StartHeight int64 // inclusive
	EndHeight   int64 // exclusive
	ScriptHash  [20]byte
}

// Params defines the network parameters for a specific instance of the
// chain. It is not a generic registry: every field here is either read
// directly by a verification/acceptance rule or needed to bootstrap
// and address-encode for that network.
type Params struct {
	// Name is the string representation of this network used to separate
	// signatures and addresses for different networks.
	Name string
	// Net is the wire protocol magic used to identify messages for this
	// network.
	Net Net
	// DefaultPort is the default TCP port used for this network.
	DefaultPort string
	// DNSSeeds is the list of DNS seeds for this network used to bootstrap
	// peer discovery.
	DNSSeeds []DNSSeed

	// GenesisBlock and GenesisHash define the first block and its hash,
	// used as the implicit previous-block hash before any block exists.
	GenesisBlock *wire.MsgBlock
	GenesisHash  chainhash.Hash

	// Equihash is the (N, K) proof-of-work parameterisation for this
	// network.
	Equihash equihash.Params

	// PowLimit is the highest proof-of-work value (lowest difficulty) a
	// block on this network may have, expressed as an unsigned 256-bit
	// integer; PowLimitBits is its compact encoding and the maximum bits
	// any retarget may produce.
	PowLimit     *big.Int
	PowLimitBits wire.Compact

	// Difficulty holds the moving-window retarget parameters.
	Difficulty difficulty.Params

	// BIP16Time, BIP34Height, BIP65Height, and BIP66Height gate the
	// corresponding Bitcoin soft-fork rules by timestamp/height; all are
	// active unconditionally (height/time zero) on a chain that never
	// predates them.
	BIP16Time   int64
	BIP34Height int64
	BIP65Height int64
	BIP66Height int64

	// CSVHeight is the height at which BIP68/112/113 (relative
	// lock-time/CHECKSEQUENCEVERIFY) activate. Zero means the deployment
	// never activates on this network.
	CSVHeight int64

	// OverwinterHeight and SaplingHeight are the activation heights of the
	// Overwinter and Sapling transaction/sighash eras; MinBlockVersion
	// is the lowest header version this network will accept at the current
	// height (a function of which era is active, so callers derive it via
	// MinBlockVersionAt rather than reading a single constant).
	OverwinterHeight       int64
	SaplingHeight          int64
	OverwinterVersionGroup uint32
	SaplingVersionGroup    uint32

	// OverwinterBranchID and SaplingBranchID are the per-era consensus
	// branch ids mixed into the Overwinter/Sapling sighash personalisation.
	// BranchIDAt resolves the one in force at a given height since it
	// changes at each network upgrade.
	OverwinterBranchID uint32
	SaplingBranchID    uint32

	// MaxBlockSize, MaxBlockSigops, and MaxTransactionSize bound a block's
	// serialised size, total signature operations, and a single
	// transaction's serialised size respectively.
	MaxBlockSize       int64
	MaxBlockSigops     int64
	MaxTransactionSize int64

	// CoinbaseMaturity is the number of confirmations a coinbase output
	// must accumulate before it may be spent.
	CoinbaseMaturity int64

	// SubsidyHalvingInterval is the number of blocks between successive
	// halvings of the block subsidy.
	SubsidyHalvingInterval int64
	// InitialSubsidy is the block subsidy, in satoshi-equivalent base
	// units, before any halving has occurred.
	InitialSubsidy int64

	// FounderPayouts lists the founders'-reward script hashes active over
	// disjoint height ranges; FounderAddress/FounderReward look this up.
	FounderPayouts     []FounderPayout
	FounderRewardShare int64 // reward numerator; denominator is always 5 (20%)

	// Checkpoints are known-good blocks, ordered oldest to newest.
	Checkpoints []Checkpoint

	// Address encoding magics.
	PubKeyHashAddrID [2]byte
	ScriptHashAddrID [2]byte
	PrivateKeyID     byte

	// HDPrivateKeyID and HDPublicKeyID are the BIP32 extended key magics.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte
}

// BranchIDAt returns the consensus branch ID in effect at height, used to
// personalise the Overwinter/Sapling sighash.
func (p *Params) BranchIDAt(height int64) uint32 {
	if height >= p.SaplingHeight {
		return p.SaplingBranchID
	}
	return p.OverwinterBranchID
}

// MinBlockVersionAt returns the minimum acceptable header version at
// height: 4 once Sapling/Overwinter are in force, else the original
// pre-Overwinter minimum of 1.
func (p *Params) MinBlockVersionAt(height int64) uint32 {
	if height >= p.OverwinterHeight {
		return 4
	}
	return 1
}

// IsOverwinterActive and IsSaplingActive report whether the corresponding
// transaction era is in force at height.
func (p *Params) IsOverwinterActive(height int64) bool { return height >= p.OverwinterHeight }
func (p *Params) IsSaplingActive(height int64) bool    { return height >= p.SaplingHeight }

// BlockSubsidy returns the block subsidy at height: the initial subsidy
// halved once per SubsidyHalvingInterval blocks.
func (p *Params) BlockSubsidy(height int64) int64 {
	halvings := height / p.SubsidyHalvingInterval
	if halvings >= 64 {
		return 0
	}
	return p.InitialSubsidy >> uint(halvings)
}

// FounderReward returns the founders'-reward portion of the block subsidy
// at height: FounderRewardShare/5 of the subsidy while a payout entry
// covers height, zero once the schedule is exhausted.
func (p *Params) FounderReward(height int64) int64 {
	if p.founderPayoutAt(height) == nil {
		return 0
	}
	return p.BlockSubsidy(height) * p.FounderRewardShare / 5
}

// FounderAddress returns the P2SH script hash that should receive the
// founders' reward at height, or nil if the schedule does not cover it.
func (p *Params) FounderAddress(height int64) *[20]byte {
	payout := p.founderPayoutAt(height)
	if payout == nil {
		return nil
	}
	return &payout.ScriptHash
}

func (p *Params) founderPayoutAt(height int64) *FounderPayout {
	for i := range p.FounderPayouts {
		fp := &p.FounderPayouts[i]
		if height >= fp.StartHeight && height < fp.EndHeight {
			return fp
		}
	}
	return nil
}

var bigOne = big.NewInt(1)

func hexToHash(s string) chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return *h
}

func hexDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
