// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-blockchain/noah-go-sdk/crypto"
)

func TestSignRecover(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	pub, err := priv.PublicKey()
	require.NoError(err)

	hash := crypto.Keccak256([]byte("noah"))
	sig, err := Sign(hash, priv)
	require.NoError(err)
	require.Contains([]uint8{VBits, VBits + 1}, sig.V)

	recovered, err := Recover(hash, sig)
	require.NoError(err)
	require.Equal(pub, recovered)

	// Signing is deterministic.
	again, err := Sign(hash, priv)
	require.NoError(err)
	require.Equal(sig, again)

	// A different message recovers a different key.
	other, err := Recover(crypto.Keccak256([]byte("other")), sig)
	if err == nil {
		require.NotEqual(pub, other)
	}
}

func TestSignRejectsShortHash(t *testing.T) {
	priv, err := GeneratePrivateKey()
	require.NoError(t, err)

	_, err = Sign([]byte("short"), priv)
	require.ErrorIs(t, err, crypto.ErrInvalidHash)
}

func TestToPrivateKey(t *testing.T) {
	require := require.New(t)

	_, err := ToPrivateKey(make([]byte, 31))
	require.ErrorIs(err, crypto.ErrInvalidPrivateKey)

	// zero is not a valid scalar
	_, err = ToPrivateKey(make([]byte, PrivateKeyLen))
	require.ErrorIs(err, crypto.ErrInvalidPrivateKey)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	loaded, err := ToPrivateKey(priv[:])
	require.NoError(err)
	require.Equal(priv, loaded)
}

func TestCompact(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	sig, err := Sign(crypto.Keccak256([]byte("lock")), priv)
	require.NoError(err)

	compact, err := sig.Compact()
	require.NoError(err)
	require.Len(compact, CompactLen)
	require.Equal(sig.V-VBits, compact[CompactLen-1])

	parsed, err := FromCompact(compact)
	require.NoError(err)
	require.Equal(sig, parsed)

	compact[CompactLen-1] = 2
	_, err = FromCompact(compact)
	require.ErrorIs(err, crypto.ErrInvalidSignature)
}

func TestNewSignature(t *testing.T) {
	require := require.New(t)

	sig, err := NewSignature(VBits, []byte{0x01}, []byte{0x02, 0x03})
	require.NoError(err)
	require.Equal(byte(0x01), sig.R[ScalarLen-1])
	require.Equal(byte(0x02), sig.S[ScalarLen-2])
	require.Equal(byte(0x03), sig.S[ScalarLen-1])

	_, err = NewSignature(29, nil, nil)
	require.ErrorIs(err, crypto.ErrInvalidSignature)

	_, err = NewSignature(VBits, make([]byte, 33), nil)
	require.ErrorIs(err, crypto.ErrInvalidSignature)
}
