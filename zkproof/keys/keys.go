// Package keys provides the shared hex-decoding helpers the two
// verifying-key loaders (zkproof/bn, zkproof/groth16) use to parse their
// network-published JSON key files, which encode curve points as
// "0x"-prefixed hex strings.
package keys

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// CleanHex strips an optional "0x" prefix from a key-file hex string.
func CleanHex(s string) string {
	return strings.TrimPrefix(s, "0x")
}

// DecodeHexString hex-decodes s after stripping any "0x" prefix.
func DecodeHexString(s string) ([]byte, error) {
	b, err := hex.DecodeString(CleanHex(s))
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	return b, nil
}

// DecodeHexField hex-decodes a single JSON string field raw, without any
// structural interpretation (left to the caller, which knows whether the
// field is a G1 coordinate pair, a G2 coordinate quadruple, or a single
// compressed point).
func DecodeHexField(raw json.RawMessage) ([]byte, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("expected hex string: %w", err)
	}
	return DecodeHexString(s)
}

// DecodeHexArray decodes a JSON array of hex strings, e.g. a G1 point
// encoded as [x, y] or a G2 point encoded as [x_c1, x_c0, y_c1, y_c0].
func DecodeHexArray(raw json.RawMessage) ([][]byte, error) {
	var strs []string
	if err := json.Unmarshal(raw, &strs); err != nil {
		return nil, fmt.Errorf("expected array of hex strings: %w", err)
	}
	out := make([][]byte, len(strs))
	var err error
	for i, s := range strs {
		if out[i], err = DecodeHexString(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}
