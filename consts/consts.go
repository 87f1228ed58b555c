// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	HashLen          = 32
	AddressLen       = 20
	SymbolLen        = 10
	MaxCheckNonceLen = 32
	MaxUint8         = ^uint8(0)
	Uint64Len        = 8
	Uint256Len       = 32
	MaxUint64        = ^uint64(0)

	// Decimals is the number of fractional digits between a whole coin and
	// its smallest unit (pip).
	Decimals = 18
)

const (
	MainnetChainID uint8 = 1
	TestnetChainID uint8 = 2
)
