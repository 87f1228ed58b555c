// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package check

import (
	"github.com/noah-blockchain/noah-go-sdk/auth"
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/crypto/secp256k1"
)

// Prover binds a passphrase to the address that will redeem a check.
type Prover struct {
	address       codec.Address
	passphraseKey secp256k1.PrivateKey
	set           bool
}

// NewProver returns a Prover for [address]. Proof fails with
// ErrMissingOwnerContext while the address is empty.
func NewProver(address codec.Address, passphrase string) (*Prover, error) {
	key, err := PassphraseKey(passphrase)
	if err != nil {
		return nil, err
	}
	return &Prover{
		address:       address,
		passphraseKey: key,
		set:           address != codec.EmptyAddress,
	}, nil
}

// Proof signs the redeemer's address with the passphrase key. The result has
// the same 65 byte layout as a check lock.
func (p *Prover) Proof() ([]byte, error) {
	if !p.set {
		return nil, ErrMissingOwnerContext
	}
	msg := codec.NewPacker(1)
	msg.PackAddress(p.address)
	h, err := digest(msg)
	if err != nil {
		return nil, err
	}
	sig, err := secp256k1.Sign(h, p.passphraseKey)
	if err != nil {
		return nil, err
	}
	return sig.Compact()
}

// VerifyProof reports whether [proof] was made for [address] with the same
// passphrase that locked c. A proof no key can be recovered from is an
// error, not a mismatch.
func (c *Check) VerifyProof(address codec.Address, proof []byte) (bool, error) {
	lockSigner, err := c.LockSigner()
	if err != nil {
		return false, err
	}
	sig, err := secp256k1.FromCompact(proof)
	if err != nil {
		return false, err
	}
	msg := codec.NewPacker(1)
	msg.PackAddress(address)
	h, err := digest(msg)
	if err != nil {
		return false, err
	}
	signer, err := auth.Recover(h, sig)
	if err != nil {
		return false, err
	}
	return signer == lockSigner, nil
}
