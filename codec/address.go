// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/noah-blockchain/noah-go-sdk/consts"
)

const AddressLen = consts.AddressLen

// Address is the 20 byte account identifier, rendered as Mx followed by 40
// hex characters.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// ParseAddress decodes a Mx-prefixed address.
func ParseAddress(s string) (Address, error) {
	b, err := DecodePrefixed(s, AddressPrefix, AddressLen)
	if err != nil {
		return EmptyAddress, fmt.Errorf("invalid address: %w", err)
	}
	return Address(b), nil
}

// ToAddress copies b into an Address. b must be exactly AddressLen bytes.
func ToAddress(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return EmptyAddress, fmt.Errorf("%w: address has %d bytes", ErrInvalidSize, len(b))
	}
	return Address(b), nil
}

// ValidateAddress reports whether s is a well-formed Mx address.
func ValidateAddress(s string) bool {
	_, err := ParseAddress(s)
	return err == nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return AddPrefix(a[:], AddressPrefix)
}

// MarshalText returns the Mx representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a Mx-prefixed address.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
