package verify

import (
	"math/big"

	"github.com/shieldcoin/shieldd/chaincfg"
	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
	"github.com/shieldcoin/shieldd/equihash"
	"github.com/shieldcoin/shieldd/wire"
)

// BlockMaxFuture bounds how far into the future, relative to the
// verifier's clock, a header's timestamp may claim to be.
const BlockMaxFuture = 2 * 60 * 60

// HeaderChecker runs every context-free header pre-verify rule: version,
// equihash solution, proof-of-work-against-max, and futuristic timestamp.
// It never consults ancestry; the height-indexed re-checks (required bits,
// median-time-past) belong to the accept stage.
type HeaderChecker struct {
	Header      *wire.BlockHeader
	Flags       wire.Flags
	Params      *chaincfg.Params
	CurrentTime uint32
}

// NewHeaderChecker builds a checker for header against a network's params,
// evaluated as of currentTime.
func NewHeaderChecker(header *wire.BlockHeader, flags wire.Flags, params *chaincfg.Params, currentTime uint32) *HeaderChecker {
	return &HeaderChecker{Header: header, Flags: flags, Params: params, CurrentTime: currentTime}
}

// Check runs version, equihash, proof-of-work, then timestamp.
func (c *HeaderChecker) Check() error {
	if err := c.checkVersion(); err != nil {
		return err
	}
	if err := c.checkEquihash(); err != nil {
		return err
	}
	if err := c.checkProofOfWork(); err != nil {
		return err
	}
	return c.checkTimestamp()
}

func (c *HeaderChecker) checkVersion() error {
	if c.Header.Version < c.Params.MinBlockVersionAt(0) {
		return newErr(ErrInvalidVersion)
	}
	return nil
}

// checkEquihash verifies the header's Equihash solution. Only the wide
// (Sapling-form) header carries a solution field; the narrow form has
// nothing to verify.
func (c *HeaderChecker) checkEquihash() error {
	if !c.Flags.HasSapling() {
		return nil
	}
	ok, err := equihash.Verify(c.Params.Equihash, c.Header.EquihashInput(c.Flags), c.Header.EquihashSolution)
	if err != nil || !ok {
		return newErr(ErrInvalidEquihashSolution)
	}
	return nil
}

func (c *HeaderChecker) checkProofOfWork() error {
	hash := c.Header.Hash(c.Flags)
	target := c.Header.Bits.ToBig()
	maxTarget := c.Params.PowLimit
	if target.Sign() <= 0 || target.Cmp(maxTarget) > 0 {
		return newErr(ErrPow)
	}
	hashNum := hashToBig(hash)
	if hashNum.Cmp(target) > 0 {
		return newErr(ErrPow)
	}
	return nil
}

// hashToBig interprets a double-SHA-256 hash as an unsigned 256-bit
// integer for proof-of-work comparison: hashes are stored and displayed
// byte-reversed, so the first byte of the array is the integer's least
// significant byte.
func hashToBig(hash chainhash.Hash) *big.Int {
	var reversed chainhash.Hash
	for i, b := range hash {
		reversed[chainhash.HashSize-1-i] = b
	}
	return new(big.Int).SetBytes(reversed[:])
}

func (c *HeaderChecker) checkTimestamp() error {
	if c.Header.Timestamp > c.CurrentTime+BlockMaxFuture {
		return newErr(ErrFuturisticTimestamp)
	}
	return nil
}
