// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/noah-blockchain/noah-go-sdk/consts"
	ncrypto "github.com/noah-blockchain/noah-go-sdk/crypto"
)

const (
	PrivateKeyLen = 32
	PublicKeyLen  = 64 // uncompressed, without the 0x04 marker
	ScalarLen     = 32
	// CompactLen is r || s || recovery id.
	CompactLen = 2*ScalarLen + 1

	// VBits is added to the raw recovery id to form V.
	VBits = 27
)

type (
	PrivateKey [PrivateKeyLen]byte
	PublicKey  [PublicKeyLen]byte
)

// Signature is a recoverable ECDSA signature. R and S are big-endian scalars.
type Signature struct {
	V uint8
	R [ScalarLen]byte
	S [ScalarLen]byte
}

var (
	EmptyPrivateKey = PrivateKey{}
	EmptyPublicKey  = PublicKey{}
)

// GeneratePrivateKey returns a random secp256k1 private key.
func GeneratePrivateKey() (PrivateKey, error) {
	k, err := crypto.GenerateKey()
	if err != nil {
		return EmptyPrivateKey, err
	}
	return toPrivateKey(k), nil
}

// ToPrivateKey validates b as a secp256k1 scalar.
func ToPrivateKey(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return EmptyPrivateKey, fmt.Errorf("%w: %d bytes", ncrypto.ErrInvalidPrivateKey, len(b))
	}
	if _, err := crypto.ToECDSA(b); err != nil {
		return EmptyPrivateKey, fmt.Errorf("%w: %w", ncrypto.ErrInvalidPrivateKey, err)
	}
	return PrivateKey(b), nil
}

func toPrivateKey(k *ecdsa.PrivateKey) PrivateKey {
	return PrivateKey(crypto.FromECDSA(k))
}

func (p PrivateKey) ecdsa() (*ecdsa.PrivateKey, error) {
	k, err := crypto.ToECDSA(p[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ncrypto.ErrInvalidPrivateKey, err)
	}
	return k, nil
}

// PublicKey returns the uncompressed public key of p.
func (p PrivateKey) PublicKey() (PublicKey, error) {
	k, err := p.ecdsa()
	if err != nil {
		return EmptyPublicKey, err
	}
	return PublicKey(crypto.FromECDSAPub(&k.PublicKey)[1:]), nil
}

// Sign returns a deterministic recoverable signature of the 32 byte [hash].
func Sign(hash []byte, p PrivateKey) (*Signature, error) {
	if len(hash) != consts.HashLen {
		return nil, fmt.Errorf("%w: %d bytes", ncrypto.ErrInvalidHash, len(hash))
	}
	k, err := p.ecdsa()
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(hash, k)
	if err != nil {
		return nil, err
	}
	return FromCompact(sig)
}

// Recover returns the public key that produced [sig] over [hash].
func Recover(hash []byte, sig *Signature) (PublicKey, error) {
	if len(hash) != consts.HashLen {
		return EmptyPublicKey, fmt.Errorf("%w: %d bytes", ncrypto.ErrInvalidHash, len(hash))
	}
	compact, err := sig.Compact()
	if err != nil {
		return EmptyPublicKey, err
	}
	pub, err := crypto.Ecrecover(hash, compact)
	if err != nil {
		return EmptyPublicKey, fmt.Errorf("%w: %w", ncrypto.ErrInvalidSignature, err)
	}
	return PublicKey(pub[1:]), nil
}

// NewSignature builds a signature from V and minimal big-endian R and S.
func NewSignature(v uint8, r []byte, s []byte) (*Signature, error) {
	if len(r) > ScalarLen || len(s) > ScalarLen {
		return nil, fmt.Errorf("%w: scalar longer than %d bytes", ncrypto.ErrInvalidSignature, ScalarLen)
	}
	sig := &Signature{V: v}
	copy(sig.R[ScalarLen-len(r):], r)
	copy(sig.S[ScalarLen-len(s):], s)
	if _, err := sig.RecoveryID(); err != nil {
		return nil, err
	}
	return sig, nil
}

// FromCompact parses r || s || recovery id.
func FromCompact(b []byte) (*Signature, error) {
	if len(b) != CompactLen {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ncrypto.ErrInvalidSignature, len(b), CompactLen)
	}
	if b[2*ScalarLen] > 1 {
		return nil, fmt.Errorf("%w: recovery id %d", ncrypto.ErrInvalidSignature, b[2*ScalarLen])
	}
	sig := &Signature{V: b[2*ScalarLen] + VBits}
	copy(sig.R[:], b[:ScalarLen])
	copy(sig.S[:], b[ScalarLen:2*ScalarLen])
	return sig, nil
}

// RecoveryID is V without the VBits offset.
func (s *Signature) RecoveryID() (byte, error) {
	if s.V != VBits && s.V != VBits+1 {
		return 0, fmt.Errorf("%w: v=%d", ncrypto.ErrInvalidSignature, s.V)
	}
	return s.V - VBits, nil
}

// Compact returns r || s || recovery id.
func (s *Signature) Compact() ([]byte, error) {
	id, err := s.RecoveryID()
	if err != nil {
		return nil, err
	}
	b := make([]byte, CompactLen)
	copy(b, s.R[:])
	copy(b[ScalarLen:], s.S[:])
	b[2*ScalarLen] = id
	return b, nil
}
