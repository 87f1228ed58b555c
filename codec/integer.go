// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/consts"
)

// Uint64Bytes returns the minimal big-endian encoding of v. Zero encodes as
// the empty byte string.
func Uint64Bytes(v uint64) []byte {
	var b [consts.Uint64Len]byte
	binary.BigEndian.PutUint64(b[:], v)
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// BytesToUint64 decodes a minimal big-endian integer.
func BytesToUint64(b []byte) (uint64, error) {
	if len(b) > consts.Uint64Len {
		return 0, fmt.Errorf("%w: %d bytes exceeds uint64", ErrInvalidSize, len(b))
	}
	if len(b) > 0 && b[0] == 0 {
		return 0, ErrNonCanonicalInt
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// Uint256Bytes returns the minimal big-endian encoding of v. A nil v encodes
// the same as zero.
func Uint256Bytes(v *uint256.Int) []byte {
	if v == nil {
		return []byte{}
	}
	return v.Bytes()
}

// BytesToUint256 decodes a minimal big-endian integer of at most 32 bytes.
func BytesToUint256(b []byte) (*uint256.Int, error) {
	if len(b) > consts.Uint256Len {
		return nil, fmt.Errorf("%w: %d bytes exceeds uint256", ErrInvalidSize, len(b))
	}
	if len(b) > 0 && b[0] == 0 {
		return nil, ErrNonCanonicalInt
	}
	return new(uint256.Int).SetBytes(b), nil
}
