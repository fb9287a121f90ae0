// Copyright (c) 2018 The ExchangeCoin team
// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"testing"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/wire"
)

// genesisRoundTrips checks that a network's genesis block serialises,
// deserialises, and re-serialises to the same bytes, and that its
// advertised hash is exactly the hash of its own header.
func genesisRoundTrips(t *testing.T, name string, params *Params) {
	t.Helper()

	var buf bytes.Buffer
	if err := params.GenesisBlock.Serialize(&buf, wire.FlagSapling); err != nil {
		t.Fatalf("%s: serialize genesis block: %v", name, err)
	}

	var decoded wire.MsgBlock
	if err := decoded.Deserialize(bytes.NewReader(buf.Bytes()), wire.FlagSapling); err != nil {
		t.Fatalf("%s: deserialize genesis block: %v", name, err)
	}

	var reencoded bytes.Buffer
	if err := decoded.Serialize(&reencoded, wire.FlagSapling); err != nil {
		t.Fatalf("%s: re-serialize genesis block: %v", name, err)
	}
	if !bytes.Equal(buf.Bytes(), reencoded.Bytes()) {
		t.Fatalf("%s: genesis block round-trip mismatch", name)
	}

	hash := params.GenesisBlock.Header.Hash(wire.FlagSapling)
	if hash != params.GenesisHash {
		t.Fatalf("%s: GenesisHash does not match computed header hash: got %v, want %v",
			name, params.GenesisHash, hash)
	}
	if params.GenesisBlock.Header.PrevBlock != (chainhash.Hash{}) {
		t.Fatalf("%s: genesis header PrevBlock is not all-zero", name)
	}

	root := wire.MerkleRoot([]chainhash.Hash{decoded.Transactions[0].TxHash()})
	if root != decoded.Header.MerkleRoot {
		t.Fatalf("%s: genesis merkle root does not match its single coinbase transaction", name)
	}
}

func TestMainNetGenesisBlock(t *testing.T) {
	genesisRoundTrips(t, "mainnet", MainNetParams())
}

func TestTestNetGenesisBlock(t *testing.T) {
	genesisRoundTrips(t, "testnet", TestNetParams())
}

func TestRegNetGenesisBlock(t *testing.T) {
	genesisRoundTrips(t, "regtest", RegNetParams())
}

func TestSimNetGenesisBlock(t *testing.T) {
	genesisRoundTrips(t, "simnet", SimNetParams())
}
