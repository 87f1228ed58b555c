// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package check

import (
	"bytes"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/auth"
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
	"github.com/noah-blockchain/noah-go-sdk/crypto"
	"github.com/noah-blockchain/noah-go-sdk/crypto/secp256k1"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

// LockLen is r || s || recovery flag.
const LockLen = secp256k1.CompactLen

// CheckFields are accepted when issuing a check, in wire order.
var CheckFields = []string{"nonce", "chainId", "dueBlock", "coin", "value"}

type state uint8

const (
	unlocked state = iota
	signed
	decoded
)

// Check is a bearer cheque: the holder signs it, and anyone who knows the
// passphrase can redeem it with a proof bound to their own address.
type Check struct {
	Nonce    []byte       `json:"nonce"`
	ChainID  uint8        `json:"chainId"`
	DueBlock uint64       `json:"dueBlock"`
	Coin     string       `json:"coin"`
	Value    *uint256.Int `json:"value"`

	Lock      []byte               `json:"lock,omitempty"`
	Signature *secp256k1.Signature `json:"signature,omitempty"`

	passphraseKey secp256k1.PrivateKey
	owner         codec.Address
	bytes         []byte
	state         state
}

// PassphraseKey derives the secp256k1 key that locks a check.
func PassphraseKey(passphrase string) (secp256k1.PrivateKey, error) {
	if passphrase == "" {
		return secp256k1.EmptyPrivateKey, ErrPassphraseMissing
	}
	return secp256k1.ToPrivateKey(crypto.Sha256([]byte(passphrase)))
}

// New creates an unsigned check from its semantic fields.
func New(f codec.Fields, passphrase string) (*Check, error) {
	key, err := PassphraseKey(passphrase)
	if err != nil {
		return nil, err
	}
	r := codec.NewFieldReader(f, CheckFields)
	c := &Check{
		Nonce:    []byte(r.String("nonce")),
		ChainID:  r.Uint8("chainId"),
		DueBlock: r.Uint64("dueBlock"),
		Coin:     r.Symbol("coin"),
		Value:    r.Amount("value"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	if len(c.Nonce) > consts.MaxCheckNonceLen {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrNonceTooLong, len(c.Nonce), consts.MaxCheckNonceLen)
	}
	c.passphraseKey = key
	return c, nil
}

func (c *Check) packBody(p *codec.Packer) {
	p.PackBytes(c.Nonce)
	p.PackUint64(uint64(c.ChainID))
	p.PackUint64(c.DueBlock)
	p.PackSymbol(c.Coin)
	p.PackUint256(c.Value)
}

func digest(p *codec.Packer) ([]byte, error) {
	msg, err := p.Bytes()
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(msg), nil
}

// lockDigest covers the five body fields.
func (c *Check) lockDigest() ([]byte, error) {
	p := codec.NewPacker(len(CheckFields))
	c.packBody(p)
	return digest(p)
}

// signDigest covers the body and the lock.
func (c *Check) signDigest(lock []byte) ([]byte, error) {
	p := codec.NewPacker(len(CheckFields) + 1)
	c.packBody(p)
	p.PackBytes(lock)
	return digest(p)
}

// lock signs the body with the passphrase key.
func (c *Check) lock() ([]byte, error) {
	h, err := c.lockDigest()
	if err != nil {
		return nil, err
	}
	sig, err := secp256k1.Sign(h, c.passphraseKey)
	if err != nil {
		return nil, err
	}
	return sig.Compact()
}

// Sign locks the check with the passphrase and signs it with the holder's
// key, returning the Mc encoded check. Both phases always run.
func (c *Check) Sign(signer Signer) (string, error) {
	if c.state == decoded {
		return "", ErrNotSignable
	}
	if c.passphraseKey == secp256k1.EmptyPrivateKey {
		return "", ErrPassphraseMissing
	}

	// Both phases complete before c is touched, so a failure leaves it as it
	// was.
	lock, err := c.lock()
	if err != nil {
		return "", err
	}
	h, err := c.signDigest(lock)
	if err != nil {
		return "", err
	}
	sig, err := signer.Sign(h)
	if err != nil {
		return "", err
	}
	b, err := c.marshal(lock, sig)
	if err != nil {
		return "", err
	}
	c.Lock = lock
	c.Signature = sig
	c.owner = signer.Address()
	c.bytes = b
	c.state = signed
	return c.String(), nil
}

func (c *Check) marshal(lock []byte, sig *secp256k1.Signature) ([]byte, error) {
	p := codec.NewPacker(len(CheckFields) + 4)
	c.packBody(p)
	p.PackBytes(lock)
	auth.MarshalSignature(p, sig)
	return p.Bytes()
}

// Parse decodes a Mc encoded check and recovers its owner.
func Parse(s string) (*Check, error) {
	b, err := codec.DecodePrefixed(s, codec.CheckPrefix, -1)
	if err != nil {
		return nil, err
	}
	return Unmarshal(b)
}

// Unmarshal decodes the raw encoding of a signed check and recovers its
// owner.
func Unmarshal(b []byte) (*Check, error) {
	u := codec.NewUnpackerFromBytes(b)
	c := &Check{}
	c.Nonce = u.UnpackBytes()
	c.ChainID = u.UnpackUint8()
	c.DueBlock = u.UnpackUint64()
	c.Coin = u.UnpackSymbol()
	c.Value = u.UnpackUint256()
	c.Lock = u.UnpackBytes()
	if u.Err() == nil && len(c.Nonce) > consts.MaxCheckNonceLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrNonceTooLong, len(c.Nonce))
	}
	if u.Err() == nil && len(c.Lock) != LockLen {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidLock, len(c.Lock), LockLen)
	}
	sig, err := auth.UnmarshalSignature(u)
	if err != nil {
		return nil, err
	}
	c.Signature = sig

	canonical, err := c.marshal(c.Lock, sig)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(canonical, b) {
		return nil, ErrNonCanonical
	}

	h, err := c.signDigest(c.Lock)
	if err != nil {
		return nil, err
	}
	owner, err := auth.Recover(h, sig)
	if err != nil {
		return nil, err
	}
	c.owner = owner
	c.bytes = b
	c.state = decoded
	return c, nil
}

// Owner is the address of the key that signed the check.
func (c *Check) Owner() (codec.Address, error) {
	if c.state != signed && c.state != decoded {
		return codec.EmptyAddress, ErrCheckNotSigned
	}
	return c.owner, nil
}

// LockSigner returns the address of the passphrase key recovered from the
// lock. Redeeming requires a proof from the same key.
func (c *Check) LockSigner() (codec.Address, error) {
	if c.state == unlocked {
		return codec.EmptyAddress, ErrCheckNotSigned
	}
	sig, err := secp256k1.FromCompact(c.Lock)
	if err != nil {
		return codec.EmptyAddress, fmt.Errorf("%w: %w", ErrInvalidLock, err)
	}
	h, err := c.lockDigest()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return auth.Recover(h, sig)
}

func (c *Check) Bytes() []byte { return c.bytes }

// String returns the Mc encoded check, or "" before signing.
func (c *Check) String() string {
	if c.bytes == nil {
		return ""
	}
	return codec.AddPrefix(c.bytes, codec.CheckPrefix)
}

// Fields returns the semantic view of the check.
func (c *Check) Fields() codec.Fields {
	f := codec.Fields{
		"nonce":    string(c.Nonce),
		"chainId":  c.ChainID,
		"dueBlock": c.DueBlock,
		"coin":     c.Coin,
		"value":    utils.FormatBalance(c.Value),
	}
	if c.Lock != nil {
		f["lock"] = codec.ToHex(c.Lock)
	}
	if c.Signature != nil {
		f["v"] = c.Signature.V
		f["r"] = codec.ToHex(c.Signature.R[:])
		f["s"] = codec.ToHex(c.Signature.S[:])
	}
	return f
}
