// Copyright (c) 2015-2017 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

// defaultScriptNumLen is the default number of bytes a script number is
// allowed to occupy for arithmetic opcodes other than the locktime/
// sequence checks, which each define their own wider limit.
const defaultScriptNumLen = 4

// scriptNum represents the numeric type script opcodes operate on: a
// variable-length, two's-complement-free, sign-and-magnitude little-endian
// encoding identical to the one Bitcoin-derived scripting languages use,
// ported from btcd/dcrd's txscript scriptnum.go.
type scriptNum int64

// Bytes returns the minimally-encoded byte representation of n, matching
// the encoding every push-generating opcode (OP_1ADD, OP_WITHIN, the small
// integers pushed as data by parsePushedData, …) must produce.
func (n scriptNum) Bytes() []byte {
	if n == 0 {
		return nil
	}

	isNegative := n < 0
	v := uint64(n)
	if isNegative {
		v = uint64(-n)
	}

	var result []byte
	for v > 0 {
		result = append(result, byte(v&0xff))
		v >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		if isNegative {
			result = append(result, 0x80)
		} else {
			result = append(result, 0)
		}
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}

	return result
}

// Int32 returns n clamped to the int32 range, matching the convention that
// most opcode operands are expected to fit in 32 bits even though the
// stack encoding is otherwise unbounded below maxLen.
func (n scriptNum) Int32() int32 {
	if n > 2147483647 {
		return 2147483647
	}
	if n < -2147483648 {
		return -2147483648
	}
	return int32(n)
}

// makeScriptNum interprets the bytes in v as a little-endian, sign-magnitude
// encoded integer, rejecting encodings longer than maxLen bytes and,
// when requireMinimal is set, any encoding that isn't already the minimal
// representation of its value, per BIP62's "minimal encoding" rule for
// arithmetic opcode operands.
func makeScriptNum(v []byte, requireMinimal bool, maxLen int) (scriptNum, error) {
	if len(v) > maxLen {
		return 0, scriptError("numeric value encoded as %d bytes, which exceeds the max allowed of %d", len(v), maxLen)
	}

	if requireMinimal && len(v) > 0 {
		if v[len(v)-1]&0x7f == 0 {
			if len(v) == 1 || v[len(v)-2]&0x80 == 0 {
				return 0, scriptError("numeric value %x is not minimally encoded", v)
			}
		}
	}

	if len(v) == 0 {
		return 0, nil
	}

	var result int64
	for i, b := range v {
		result |= int64(b) << uint8(8*i)
	}

	if v[len(v)-1]&0x80 != 0 {
		result &= ^(int64(0x80) << uint8(8*(len(v)-1)))
		return scriptNum(-result), nil
	}

	return scriptNum(result), nil
}
