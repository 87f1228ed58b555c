// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Human-readable prefixes of the Noah text encodings.
const (
	AddressPrefix   = "Mx"
	PublicKeyPrefix = "Mp"
	CheckPrefix     = "Mc"
	TxHashPrefix    = "Mt"
	TxPrefix        = "0x"
)

// ToHex returns the lowercase hex encoding of b without any prefix.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// LoadHex converts a hex encoded string into bytes. An optional 0x prefix is
// ignored. If [expectedSize] is not -1, the decoded length must match it.
func LoadHex(s string, expectedSize int) ([]byte, error) {
	if len(s) >= 2 && s[:2] == TxPrefix {
		s = s[2:]
	}
	bytes, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if expectedSize != -1 && len(bytes) != expectedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSize, len(bytes), expectedSize)
	}
	return bytes, nil
}

// StripPrefix removes [prefix] from s, failing with ErrPrefixMismatch when s
// does not start with it.
func StripPrefix(s string, prefix string) (string, error) {
	if !strings.HasPrefix(s, prefix) {
		return "", fmt.Errorf("%w: %q does not start with %q", ErrPrefixMismatch, abbreviate(s), prefix)
	}
	return s[len(prefix):], nil
}

// AddPrefix returns [prefix] followed by the lowercase hex of b.
func AddPrefix(b []byte, prefix string) string {
	return prefix + ToHex(b)
}

// DecodePrefixed strips [prefix] from s and hex decodes the rest.
func DecodePrefixed(s string, prefix string, expectedSize int) ([]byte, error) {
	raw, err := StripPrefix(s, prefix)
	if err != nil {
		return nil, err
	}
	if len(raw) >= 2 && raw[:2] == TxPrefix {
		// LoadHex would silently accept a doubled prefix.
		return nil, fmt.Errorf("%w: unexpected 0x after %q", ErrPrefixMismatch, prefix)
	}
	return LoadHex(raw, expectedSize)
}

func abbreviate(s string) string {
	if len(s) <= 16 {
		return s
	}
	return s[:16] + "..."
}

// Bytes is a byte slice with a 0x hex text encoding.
type Bytes []byte

func (b Bytes) String() string {
	return hexutil.Encode(b)
}

// MarshalText returns the 0x-prefixed hex representation of b.
func (b Bytes) MarshalText() ([]byte, error) {
	return hexutil.Bytes(b).MarshalText()
}

// UnmarshalText sets b to the bytes represented by text. The 0x prefix is
// optional.
func (b *Bytes) UnmarshalText(text []byte) error {
	bytes, err := LoadHex(string(text), -1)
	if err != nil {
		return err
	}
	*b = bytes
	return nil
}
