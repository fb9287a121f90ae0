package wire

import (
	"io"
	"math/big"
)

// Compact is the 32-bit packed representation of an unsigned 256-bit proof-
// of-work target: a one-byte exponent and three-byte mantissa, following
// the classic Bitcoin "nBits" encoding.
type Compact uint32

// ReadCompact reads a Compact from r.
func ReadCompact(r io.Reader) (Compact, error) {
	v, err := readUint32LE(r)
	return Compact(v), err
}

// WriteCompact writes c to w.
func WriteCompact(w io.Writer, c Compact) error {
	return writeUint32LE(w, uint32(c))
}

// ToBig expands the compact representation into an unsigned 256-bit target,
// saturating at the maximum representable 256-bit value rather than
// overflowing. A negative-mantissa encoding (bit 0x00800000 set) yields a
// nil interpretation by Bitcoin convention; this implementation reports it
// as zero, matching how the reference clients treat a negative target as
// unconditionally failing the proof-of-work check.
func (c Compact) ToBig() *big.Int {
	mantissa := uint32(c) & 0x007fffff
	isNegative := uint32(c)&0x00800000 != 0
	exponent := uint32(c) >> 24

	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, uint(8*(exponent-3)))
	}

	if isNegative {
		return big.NewInt(0)
	}
	return SaturateUint256(bn)
}

// CompactFromBig packs an unsigned 256-bit target into its compact form.
func CompactFromBig(target *big.Int) Compact {
	if target.Sign() == 0 {
		return 0
	}

	// nbytes is the number of bytes needed to represent the absolute value
	// of the target (unsigned, so the sign bit of the mantissa's top byte
	// must be zero; an extra leading zero byte is added when needed).
	nbytes := uint((target.BitLen() + 7) / 8)

	var mantissa uint32
	if nbytes <= 3 {
		mantissa = uint32(target.Bits()[0])
		mantissa <<= 8 * (3 - nbytes)
	} else {
		shifted := new(big.Int).Rsh(target, 8*(nbytes-3))
		mantissa = uint32(shifted.Uint64())
	}

	// The most significant bit of the mantissa's high byte is the sign
	// bit; if it would be set, shift one more byte into the exponent to
	// keep the value unsigned, matching nBits convention.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		nbytes++
	}

	return Compact(uint32(nbytes)<<24 | mantissa)
}

// MaxUint256 is 2^256 - 1, the saturation ceiling used whenever a
// difficulty computation would otherwise overflow unsigned 256-bit space.
var MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// SaturateUint256 clamps v into [0, MaxUint256].
func SaturateUint256(v *big.Int) *big.Int {
	if v.Sign() < 0 {
		return big.NewInt(0)
	}
	if v.Cmp(MaxUint256) > 0 {
		return new(big.Int).Set(MaxUint256)
	}
	return v
}
