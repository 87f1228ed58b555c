// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

// Transaction type codes. These are part of the wire format and must never
// be renumbered. Code 12 is reserved and not accepted by this SDK.
const (
	SendCoinID            uint8 = 1
	SellCoinID            uint8 = 2
	SellAllCoinID         uint8 = 3
	BuyCoinID             uint8 = 4
	CreateCoinID          uint8 = 5
	DeclareCandidacyID    uint8 = 6
	DelegateID            uint8 = 7
	UnbondID              uint8 = 8
	RedeemCheckID         uint8 = 9
	SetCandidateOnlineID  uint8 = 10
	SetCandidateOfflineID uint8 = 11
	MultiSendID           uint8 = 13
	EditCandidateID       uint8 = 14
)
