// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestPackerBytes(t *testing.T) {
	require := require.New(t)

	p := NewPacker(3)
	p.PackUint64(0)
	p.PackUint64(5)
	p.PackString("dog")
	b, err := p.Bytes()
	require.NoError(err)
	require.Equal([]byte{0xc6, 0x80, 0x05, 0x83, 'd', 'o', 'g'}, b)

	u := NewUnpackerFromBytes(b)
	require.Equal(uint64(0), u.UnpackUint64())
	require.Equal(uint64(5), u.UnpackUint64())
	require.Equal("dog", u.UnpackString())
	require.NoError(u.Done())
}

func TestPackerNested(t *testing.T) {
	require := require.New(t)

	inner := NewPacker(2)
	inner.PackSymbol("NOAH")
	inner.PackUint256(uint256.NewInt(1_000))

	p := NewPacker(2)
	p.PackList(inner)
	p.PackEncoded(inner)
	b, err := p.Bytes()
	require.NoError(err)

	u := NewUnpackerFromBytes(b)
	list := u.UnpackList()
	require.Equal("NOAH", list.UnpackSymbol())
	require.Equal(uint64(1_000), list.UnpackUint256().Uint64())
	require.NoError(list.Done())

	encoded := u.UnpackEncoded()
	require.Equal("NOAH", encoded.UnpackSymbol())
	require.Equal(uint64(1_000), encoded.UnpackUint256().Uint64())
	require.NoError(encoded.Done())
	require.NoError(u.Done())
}

func TestPackerKeepsFirstError(t *testing.T) {
	require := require.New(t)

	p := NewPacker(3)
	p.PackSymbol("VERYLONGSYMBOL")
	p.PackUint64(1)
	require.ErrorIs(p.Err(), ErrSymbolTooLong)
	require.Empty(p.Items())

	_, err := p.Bytes()
	require.ErrorIs(err, ErrSymbolTooLong)

	parent := NewPacker(1)
	parent.PackList(p)
	require.ErrorIs(parent.Err(), ErrSymbolTooLong)
}

func TestUnpackerErrors(t *testing.T) {
	tests := []struct {
		name  string
		items []any
		read  func(*Unpacker)
		err   error
	}{
		{
			name:  "missing item",
			items: []any{},
			read:  func(u *Unpacker) { u.UnpackBytes() },
			err:   ErrInsufficientLength,
		},
		{
			name:  "trailing item",
			items: []any{[]byte{1}, []byte{2}},
			read:  func(u *Unpacker) { u.UnpackUint64() },
			err:   ErrTrailingItems,
		},
		{
			name:  "list where bytes expected",
			items: []any{[]any{}},
			read:  func(u *Unpacker) { u.UnpackBytes() },
			err:   ErrInvalidItem,
		},
		{
			name:  "bytes where list expected",
			items: []any{[]byte{}},
			read:  func(u *Unpacker) { u.UnpackList() },
			err:   ErrInvalidItem,
		},
		{
			name:  "leading zero",
			items: []any{[]byte{0, 1}},
			read:  func(u *Unpacker) { u.UnpackUint64() },
			err:   ErrNonCanonicalInt,
		},
		{
			name:  "uint64 overflow",
			items: []any{make([]byte, 9)},
			read:  func(u *Unpacker) { u.UnpackUint64() },
			err:   ErrInvalidSize,
		},
		{
			name:  "uint8 overflow",
			items: []any{[]byte{1, 0}},
			read:  func(u *Unpacker) { u.UnpackUint8() },
			err:   ErrInvalidSize,
		},
		{
			name:  "short address",
			items: []any{make([]byte, 19)},
			read:  func(u *Unpacker) { u.UnpackAddress() },
			err:   ErrInvalidSize,
		},
		{
			name:  "long symbol",
			items: []any{make([]byte, 11)},
			read:  func(u *Unpacker) { u.UnpackSymbol() },
			err:   ErrSymbolTooLong,
		},
		{
			name:  "empty public key",
			items: []any{[]byte{}},
			read:  func(u *Unpacker) { u.UnpackPublicKey() },
			err:   ErrInvalidSize,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUnpacker(tt.items)
			tt.read(u)
			require.ErrorIs(t, u.Done(), tt.err)
		})
	}
}

func TestDecodeListRejects(t *testing.T) {
	require := require.New(t)

	// a bare string is not a list
	_, err := DecodeList([]byte{0x83, 'd', 'o', 'g'})
	require.ErrorIs(err, ErrInvalidItem)

	// trailing bytes after the list
	_, err = DecodeList([]byte{0xc0, 0x00})
	require.ErrorIs(err, ErrInvalidItem)

	items, err := DecodeList([]byte{0xc0})
	require.NoError(err)
	require.Empty(items)
}

func TestIntegerBytes(t *testing.T) {
	require := require.New(t)

	require.Empty(Uint64Bytes(0))
	require.Equal([]byte{0x01, 0x00}, Uint64Bytes(256))
	require.Empty(Uint256Bytes(nil))
	require.Empty(Uint256Bytes(uint256.NewInt(0)))

	v, err := BytesToUint64(nil)
	require.NoError(err)
	require.Zero(v)

	big, err := BytesToUint256([]byte{0x0d, 0xe0, 0xb6, 0xb3, 0xa7, 0x64, 0x00, 0x00})
	require.NoError(err)
	require.Equal("1000000000000000000", big.Dec())

	_, err = BytesToUint256(make([]byte, 33))
	require.ErrorIs(err, ErrInvalidSize)
}
