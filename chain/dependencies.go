// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/crypto/secp256k1"
)

// Signer produces recoverable signatures over 32 byte digests.
type Signer interface {
	Sign(hash []byte) (*secp256k1.Signature, error)

	// Address is the account the signatures recover to.
	Address() codec.Address
}
