// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// Fee units charged per transaction type, before the per-byte charge.
const (
	SendCoinFeeUnits              = 10
	ConvertFeeUnits               = 100
	CreateCoinFeeUnits            = 1000
	DeclareCandidacyFeeUnits      = 10000
	DelegateFeeUnits              = 200
	UnbondFeeUnits                = 200
	RedeemCheckFeeUnits           = 30
	SetCandidateStatusFeeUnits    = 100
	EditCandidateFeeUnits         = 10000
	MultiSendBaseFeeUnits         = 10
	MultiSendPerRecipientFeeUnits = 5
)
