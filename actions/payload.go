// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
)

// Payload is the type-specific body of a transaction.
type Payload interface {
	GetTypeID() uint8

	// FeeUnits is the commission charged before the per-byte surcharge.
	FeeUnits() uint64

	// Marshal packs the canonical items in wire order.
	Marshal(p *codec.Packer)

	// Fields returns the semantic view: whole-coin amounts, Mx/Mp strings
	// and unpadded symbols.
	Fields() codec.Fields
}

var Parser *codec.TypeParser[Payload]

func init() {
	Parser = codec.NewTypeParser[Payload]()

	errs := &wrappers.Errs{}
	errs.Add(
		// Codes are fixed by the chain. 12 is reserved and intentionally absent.
		Parser.Register(consts.SendCoinID, "SendCoin", NewSendCoin, UnmarshalSendCoin),
		Parser.Register(consts.SellCoinID, "SellCoin", NewSellCoin, UnmarshalSellCoin),
		Parser.Register(consts.SellAllCoinID, "SellAllCoin", NewSellAllCoin, UnmarshalSellAllCoin),
		Parser.Register(consts.BuyCoinID, "BuyCoin", NewBuyCoin, UnmarshalBuyCoin),
		Parser.Register(consts.CreateCoinID, "CreateCoin", NewCreateCoin, UnmarshalCreateCoin),
		Parser.Register(consts.DeclareCandidacyID, "DeclareCandidacy", NewDeclareCandidacy, UnmarshalDeclareCandidacy),
		Parser.Register(consts.DelegateID, "Delegate", NewDelegate, UnmarshalDelegate),
		Parser.Register(consts.UnbondID, "Unbond", NewUnbond, UnmarshalUnbond),
		Parser.Register(consts.RedeemCheckID, "RedeemCheck", NewRedeemCheck, UnmarshalRedeemCheck),
		Parser.Register(consts.SetCandidateOnlineID, "SetCandidateOnline", NewSetCandidateOnline, UnmarshalSetCandidateOnline),
		Parser.Register(consts.SetCandidateOfflineID, "SetCandidateOffline", NewSetCandidateOffline, UnmarshalSetCandidateOffline),
		Parser.Register(consts.MultiSendID, "MultiSend", NewMultiSend, UnmarshalMultiSend),
		Parser.Register(consts.EditCandidateID, "EditCandidate", NewEditCandidate, UnmarshalEditCandidate),
	)
	if errs.Errored() {
		panic(errs.Err)
	}
}

func lookup(typeID uint8) (*codec.TypeEntry[Payload], error) {
	e, ok := Parser.LookupIndex(typeID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTransactionType, typeID)
	}
	return e, nil
}

// Build constructs the payload for [typeID] from its semantic fields.
func Build(typeID uint8, f codec.Fields) (Payload, error) {
	e, err := lookup(typeID)
	if err != nil {
		return nil, err
	}
	p, err := e.Build(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	return p, nil
}

// Unmarshal reads the payload for [typeID] from its canonical items.
func Unmarshal(typeID uint8, u *codec.Unpacker) (Payload, error) {
	e, err := lookup(typeID)
	if err != nil {
		return nil, err
	}
	p, err := e.Unmarshal(u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	return p, nil
}

// Name returns the registered name of [typeID], or "" if unknown.
func Name(typeID uint8) string {
	e, ok := Parser.LookupIndex(typeID)
	if !ok {
		return ""
	}
	return e.Name
}

// PackerCapacity is the initial item capacity for packing a payload of any
// type.
const PackerCapacity = 8

// Pack returns the canonical items of p.
func Pack(p Payload) ([]any, error) {
	packer := codec.NewPacker(PackerCapacity)
	p.Marshal(packer)
	if err := packer.Err(); err != nil {
		return nil, err
	}
	return packer.Items(), nil
}

// BaseFeeUnits returns the commission of [typeID] before any per-recipient
// or per-byte surcharge.
func BaseFeeUnits(typeID uint8) (uint64, error) {
	switch typeID {
	case consts.SendCoinID:
		return SendCoinFeeUnits, nil
	case consts.SellCoinID, consts.SellAllCoinID, consts.BuyCoinID:
		return ConvertFeeUnits, nil
	case consts.CreateCoinID:
		return CreateCoinFeeUnits, nil
	case consts.DeclareCandidacyID:
		return DeclareCandidacyFeeUnits, nil
	case consts.DelegateID:
		return DelegateFeeUnits, nil
	case consts.UnbondID:
		return UnbondFeeUnits, nil
	case consts.RedeemCheckID:
		return RedeemCheckFeeUnits, nil
	case consts.SetCandidateOnlineID, consts.SetCandidateOfflineID:
		return SetCandidateStatusFeeUnits, nil
	case consts.MultiSendID:
		return MultiSendBaseFeeUnits, nil
	case consts.EditCandidateID:
		return EditCandidateFeeUnits, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownTransactionType, typeID)
	}
}
