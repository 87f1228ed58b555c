// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"fmt"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/crypto"
	"github.com/noah-blockchain/noah-go-sdk/crypto/secp256k1"
)

// SECP256K1Factory signs 32 byte digests with a single account key.
type SECP256K1Factory struct {
	priv secp256k1.PrivateKey
	pub  secp256k1.PublicKey
	addr codec.Address
}

func NewSECP256K1Factory(priv secp256k1.PrivateKey) (*SECP256K1Factory, error) {
	pub, err := priv.PublicKey()
	if err != nil {
		return nil, err
	}
	return &SECP256K1Factory{
		priv: priv,
		pub:  pub,
		addr: NewSECP256K1Address(pub),
	}, nil
}

func (d *SECP256K1Factory) Sign(hash []byte) (*secp256k1.Signature, error) {
	return secp256k1.Sign(hash, d.priv)
}

func (d *SECP256K1Factory) Address() codec.Address {
	return d.addr
}

func (d *SECP256K1Factory) PublicKey() codec.PublicKey {
	return codec.PublicKey(d.pub[:])
}

// NewSECP256K1Address returns the last 20 bytes of the Keccak-256 digest of
// the uncompressed public key.
func NewSECP256K1Address(pk secp256k1.PublicKey) codec.Address {
	h := crypto.Keccak256(pk[:])
	return codec.Address(h[len(h)-codec.AddressLen:])
}

// AddressFromPublicKey derives the account address of a Mp encoded account
// key.
func AddressFromPublicKey(pk codec.PublicKey) (codec.Address, error) {
	if len(pk) != secp256k1.PublicKeyLen {
		return codec.EmptyAddress, fmt.Errorf("%w: %d bytes", crypto.ErrInvalidPublicKey, len(pk))
	}
	return NewSECP256K1Address(secp256k1.PublicKey(pk)), nil
}

// Recover returns the address that produced [sig] over [hash].
func Recover(hash []byte, sig *secp256k1.Signature) (codec.Address, error) {
	pub, err := secp256k1.Recover(hash, sig)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return NewSECP256K1Address(pub), nil
}

// MarshalSignature packs [v, r, s] with r and s as minimal big-endian
// integers.
func MarshalSignature(p *codec.Packer, sig *secp256k1.Signature) {
	p.PackUint64(uint64(sig.V))
	p.PackBytes(trimLeadingZeros(sig.R[:]))
	p.PackBytes(trimLeadingZeros(sig.S[:]))
}

func UnmarshalSignature(u *codec.Unpacker) (*secp256k1.Signature, error) {
	v := u.UnpackUint8()
	r := u.UnpackUint256()
	s := u.UnpackUint256()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return secp256k1.NewSignature(v, r.Bytes(), s.Bytes())
}

func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}
