// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"github.com/ava-labs/avalanchego/utils/hashing"
	"golang.org/x/crypto/sha3"
)

// Keccak256 returns the legacy (pre-NIST) Keccak-256 digest of the
// concatenated inputs.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

func Sha256(data []byte) []byte {
	return hashing.ComputeHash256(data)
}
