// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "fmt"

// PublicKey is an opaque validator key, rendered as Mp followed by hex.
type PublicKey []byte

func ParsePublicKey(s string) (PublicKey, error) {
	b, err := DecodePrefixed(s, PublicKeyPrefix, -1)
	if err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("invalid public key: %w: empty", ErrInvalidSize)
	}
	return PublicKey(b), nil
}

func (k PublicKey) String() string {
	return AddPrefix(k, PublicKeyPrefix)
}

func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PublicKey) UnmarshalText(input []byte) error {
	parsed, err := ParsePublicKey(string(input))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
