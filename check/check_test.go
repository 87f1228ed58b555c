// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package check

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/noah-blockchain/noah-go-sdk/actions"
	"github.com/noah-blockchain/noah-go-sdk/auth"
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
	"github.com/noah-blockchain/noah-go-sdk/crypto"
	"github.com/noah-blockchain/noah-go-sdk/crypto/secp256k1"
)

const (
	testPrivateKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	testOwner      = "Mx2c7536e3605d9c16a7a3d7b1898e529396a65c23"
	testRedeemer   = "Mx7633980c000139dd3bd24a3f54e06474fa941e16"
	testPassphrase = "pass"

	// Signed with testPrivateKey over testFields and testPassphrase.
	testLock       = "438f4ba9ef21d18791b3bc4250742c984b503502af3350be415a76a06339289102c82fc24badac35177dbdeb6f58b7af382835584bb96b6164f8de329bd21fad00"
	testLockSigner = "Mx65614ade3509a20acd1f2716ce10387685bdc39c"
	testCheck      = "Mcf8a03102830f423f8a4e4f4148000000000000888ac7230489e80000b841438f4ba9ef21d18791b3bc4250742c984b503502af3350be415a76a06339289102c82fc24badac35177dbdeb6f58b7af382835584bb96b6164f8de329bd21fad001ba02807e2812cf0f6e1b3fa327bf064be7d81a9a3395f0f63009630862e948f8260a03781284bf9dafeda13081e39de413865ec1d1954aa73acce132347bb3e64a097"

	// Proof for testRedeemer with testPassphrase.
	testProof = "0497ea588f0fc2bd448de76d03a74cf371269e10ac1a02765fb5fa37c29f67e0348fb3faacd3370b8809401e7d562d8943f3642ce96667188d3c344e8e5bff6d01"
)

var errSignerUnavailable = errors.New("signer unavailable")

type failingSigner struct {
	address codec.Address
}

func (*failingSigner) Sign([]byte) (*secp256k1.Signature, error) {
	return nil, errSignerUnavailable
}

func (f *failingSigner) Address() codec.Address {
	return f.address
}

func testFields() codec.Fields {
	return codec.Fields{
		"nonce":    "1",
		"chainId":  consts.TestnetChainID,
		"dueBlock": 999999,
		"coin":     "NOAH",
		"value":    "10",
	}
}

func testSigner(t *testing.T) Signer {
	pk, err := auth.LoadPrivateKey(testPrivateKey)
	require.NoError(t, err)
	factory, err := pk.Factory()
	require.NoError(t, err)
	return factory
}

func TestSignParse(t *testing.T) {
	require := require.New(t)

	c, err := New(testFields(), testPassphrase)
	require.NoError(err)

	_, err = c.Owner()
	require.ErrorIs(err, ErrCheckNotSigned)
	require.Empty(c.String())

	s, err := c.Sign(testSigner(t))
	require.NoError(err)
	require.True(strings.HasPrefix(s, codec.CheckPrefix))
	require.Len(c.Lock, LockLen)
	require.Contains([]byte{0, 1}, c.Lock[LockLen-1])

	owner, err := c.Owner()
	require.NoError(err)
	require.Equal(testOwner, owner.String())

	parsed, err := Parse(s)
	require.NoError(err)
	owner, err = parsed.Owner()
	require.NoError(err)
	require.Equal(testOwner, owner.String())
	require.Equal(c.Lock, parsed.Lock)
	require.Equal(c.Signature, parsed.Signature)

	f := parsed.Fields()
	require.Equal("1", f["nonce"])
	require.Equal(consts.TestnetChainID, f["chainId"])
	require.Equal(uint64(999999), f["dueBlock"])
	require.Equal("NOAH", f["coin"])
	require.Equal("10", f["value"])

	// Signing is deterministic for the same inputs.
	again, err := New(testFields(), testPassphrase)
	require.NoError(err)
	s2, err := again.Sign(testSigner(t))
	require.NoError(err)
	require.Equal(s, s2)

	_, err = parsed.Sign(testSigner(t))
	require.ErrorIs(err, ErrNotSignable)
}

func TestLockDependsOnPassphrase(t *testing.T) {
	require := require.New(t)

	a, err := New(testFields(), "one")
	require.NoError(err)
	_, err = a.Sign(testSigner(t))
	require.NoError(err)

	b, err := New(testFields(), "two")
	require.NoError(err)
	_, err = b.Sign(testSigner(t))
	require.NoError(err)

	require.NotEqual(a.Lock, b.Lock)
	require.NotEqual(a.Signature, b.Signature)

	la, err := a.LockSigner()
	require.NoError(err)
	lb, err := b.LockSigner()
	require.NoError(err)
	require.NotEqual(la, lb)
}

func TestNewRejects(t *testing.T) {
	require := require.New(t)

	_, err := New(testFields(), "")
	require.ErrorIs(err, ErrPassphraseMissing)

	f := testFields()
	f["nonce"] = strings.Repeat("n", consts.MaxCheckNonceLen+1)
	_, err = New(f, testPassphrase)
	require.ErrorIs(err, ErrNonceTooLong)

	f = testFields()
	f["nonce"] = strings.Repeat("n", consts.MaxCheckNonceLen)
	_, err = New(f, testPassphrase)
	require.NoError(err)

	f = testFields()
	f["coin"] = "ABCDEFGHIJK"
	_, err = New(f, testPassphrase)
	require.ErrorIs(err, codec.ErrSymbolTooLong)

	f = testFields()
	f["lock"] = "00"
	_, err = New(f, testPassphrase)
	require.ErrorIs(err, codec.ErrFieldCountMismatch)
}

func TestParseRejects(t *testing.T) {
	require := require.New(t)

	c, err := New(testFields(), testPassphrase)
	require.NoError(err)
	s, err := c.Sign(testSigner(t))
	require.NoError(err)

	_, err = Parse(s[2:])
	require.ErrorIs(err, codec.ErrPrefixMismatch)

	items, err := codec.DecodeList(c.Bytes())
	require.NoError(err)
	items[5] = items[5].([]byte)[:40]
	short, err := codec.EncodeList(items)
	require.NoError(err)
	_, err = Unmarshal(short)
	require.ErrorIs(err, ErrInvalidLock)

	items, err = codec.DecodeList(c.Bytes())
	require.NoError(err)
	items = items[:8]
	truncated, err := codec.EncodeList(items)
	require.NoError(err)
	_, err = Unmarshal(truncated)
	require.ErrorIs(err, codec.ErrInsufficientLength)
}

func TestProof(t *testing.T) {
	require := require.New(t)

	redeemer, err := codec.ParseAddress(testRedeemer)
	require.NoError(err)

	p, err := NewProver(redeemer, testPassphrase)
	require.NoError(err)
	proof, err := p.Proof()
	require.NoError(err)
	require.Len(proof, LockLen)

	c, err := New(testFields(), testPassphrase)
	require.NoError(err)
	s, err := c.Sign(testSigner(t))
	require.NoError(err)

	parsed, err := Parse(s)
	require.NoError(err)
	ok, err := parsed.VerifyProof(redeemer, proof)
	require.NoError(err)
	require.True(ok)

	// A proof made with another passphrase does not match the lock.
	other, err := NewProver(redeemer, "other")
	require.NoError(err)
	bad, err := other.Proof()
	require.NoError(err)
	ok, err = parsed.VerifyProof(redeemer, bad)
	require.NoError(err)
	require.False(ok)

	// The proof is bound to the redeemer's address.
	owner, err := codec.ParseAddress(testOwner)
	require.NoError(err)
	ok, err = parsed.VerifyProof(owner, proof)
	require.NoError(err)
	require.False(ok)

	// The check and proof fit a RedeemCheck payload.
	payload, err := actions.Build(consts.RedeemCheckID, codec.Fields{
		"check": s,
		"proof": codec.ToHex(proof),
	})
	require.NoError(err)
	require.Equal(s, payload.Fields()["check"])
}

func TestProofRequiresAddress(t *testing.T) {
	require := require.New(t)

	p, err := NewProver(codec.EmptyAddress, testPassphrase)
	require.NoError(err)
	_, err = p.Proof()
	require.ErrorIs(err, ErrMissingOwnerContext)

	_, err = NewProver(codec.EmptyAddress, "")
	require.ErrorIs(err, ErrPassphraseMissing)
}

func TestConcurrentChecks(t *testing.T) {
	const n = 8
	checks := make([]string, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			f := testFields()
			f["nonce"] = strings.Repeat("x", i+1)
			c, err := New(f, testPassphrase)
			if err != nil {
				return err
			}
			pk, err := auth.LoadPrivateKey(testPrivateKey)
			if err != nil {
				return err
			}
			factory, err := pk.Factory()
			if err != nil {
				return err
			}
			checks[i], err = c.Sign(factory)
			return err
		})
	}
	require.NoError(t, g.Wait())
	for _, s := range checks {
		parsed, err := Parse(s)
		require.NoError(t, err)
		owner, err := parsed.Owner()
		require.NoError(t, err)
		require.Equal(t, testOwner, owner.String())
	}
}

func TestSignedCheckBytes(t *testing.T) {
	require := require.New(t)

	c, err := New(testFields(), testPassphrase)
	require.NoError(err)
	s, err := c.Sign(testSigner(t))
	require.NoError(err)
	require.Equal(testCheck, s)
	require.Equal(testLock, codec.ToHex(c.Lock))

	lockSigner, err := c.LockSigner()
	require.NoError(err)
	require.Equal(testLockSigner, lockSigner.String())

	// The lock signer is the address of SHA-256(passphrase).
	key, err := PassphraseKey(testPassphrase)
	require.NoError(err)
	require.Equal(crypto.Sha256([]byte(testPassphrase)), key[:])
	pub, err := key.PublicKey()
	require.NoError(err)
	require.Equal(testLockSigner, auth.NewSECP256K1Address(pub).String())

	parsed, err := Parse(testCheck)
	require.NoError(err)
	owner, err := parsed.Owner()
	require.NoError(err)
	require.Equal(testOwner, owner.String())
	require.Equal(testLock, codec.ToHex(parsed.Lock))
}

func TestProofBytes(t *testing.T) {
	require := require.New(t)

	redeemer, err := codec.ParseAddress(testRedeemer)
	require.NoError(err)
	p, err := NewProver(redeemer, testPassphrase)
	require.NoError(err)
	proof, err := p.Proof()
	require.NoError(err)
	require.Equal(testProof, codec.ToHex(proof))

	parsed, err := Parse(testCheck)
	require.NoError(err)
	ok, err := parsed.VerifyProof(redeemer, proof)
	require.NoError(err)
	require.True(ok)
}

func TestVerifyProofUnrecoverable(t *testing.T) {
	require := require.New(t)

	parsed, err := Parse(testCheck)
	require.NoError(err)
	redeemer, err := codec.ParseAddress(testRedeemer)
	require.NoError(err)

	// r = s = 0 has the right layout but no key recovers from it.
	_, err = parsed.VerifyProof(redeemer, make([]byte, LockLen))
	require.ErrorIs(err, crypto.ErrInvalidSignature)
}

func TestFailedSignLeavesCheckUnchanged(t *testing.T) {
	require := require.New(t)

	c, err := New(testFields(), testPassphrase)
	require.NoError(err)
	_, err = c.Sign(&failingSigner{})
	require.ErrorIs(err, errSignerUnavailable)
	require.Nil(c.Lock)
	require.Nil(c.Signature)
	require.Nil(c.Bytes())
	require.Empty(c.String())
	_, err = c.LockSigner()
	require.ErrorIs(err, ErrCheckNotSigned)
	_, err = c.Owner()
	require.ErrorIs(err, ErrCheckNotSigned)

	// A signed check keeps its previous signature when re-signing fails.
	s, err := c.Sign(testSigner(t))
	require.NoError(err)
	lock, sig := c.Lock, c.Signature

	other, err := New(testFields(), "other")
	require.NoError(err)
	c.passphraseKey = other.passphraseKey
	_, err = c.Sign(&failingSigner{})
	require.ErrorIs(err, errSignerUnavailable)
	require.Equal(lock, c.Lock)
	require.Equal(sig, c.Signature)
	require.Equal(s, c.String())
	owner, err := c.Owner()
	require.NoError(err)
	require.Equal(testOwner, owner.String())
}
