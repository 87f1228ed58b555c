// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/crypto/secp256k1"
)

// PrivateKey bundles an account key with its derived public key and address.
type PrivateKey struct {
	Address   codec.Address
	PublicKey codec.PublicKey
	Bytes     []byte
}

// GeneratePrivateKey creates a new random account key.
func GeneratePrivateKey() (*PrivateKey, error) {
	p, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return newPrivateKey(p)
}

// LoadPrivateKey parses a hex encoded (optionally 0x prefixed) account key.
func LoadPrivateKey(s string) (*PrivateKey, error) {
	b, err := codec.LoadHex(s, secp256k1.PrivateKeyLen)
	if err != nil {
		return nil, err
	}
	p, err := secp256k1.ToPrivateKey(b)
	if err != nil {
		return nil, err
	}
	return newPrivateKey(p)
}

// PublicKeyFromPrivate returns the Mp encoded public key of a hex account key.
func PublicKeyFromPrivate(s string) (codec.PublicKey, error) {
	pk, err := LoadPrivateKey(s)
	if err != nil {
		return nil, err
	}
	return pk.PublicKey, nil
}

func newPrivateKey(p secp256k1.PrivateKey) (*PrivateKey, error) {
	pub, err := p.PublicKey()
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		Address:   NewSECP256K1Address(pub),
		PublicKey: codec.PublicKey(pub[:]),
		Bytes:     p[:],
	}, nil
}

// Key returns the raw secp256k1 key.
func (p *PrivateKey) Key() secp256k1.PrivateKey {
	return secp256k1.PrivateKey(p.Bytes)
}

// Factory returns a signer for p.
func (p *PrivateKey) Factory() (*SECP256K1Factory, error) {
	return NewSECP256K1Factory(p.Key())
}

func (p *PrivateKey) String() string {
	return codec.ToHex(p.Bytes)
}
