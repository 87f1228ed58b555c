// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

// Note: these IDs are written into every signed transaction. We explicitly
// assign them to avoid accidental remapping.
const (
	// Signature TypeIDs
	SingleSignatureID uint8 = 1
	MultiSignatureID  uint8 = 2

	Secp256k1Key = "secp256k1"
)
