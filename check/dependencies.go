// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package check

import (
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/crypto/secp256k1"
)

// Signer is the holder key that issues a check.
type Signer interface {
	Sign(hash []byte) (*secp256k1.Signature, error)
	Address() codec.Address
}
