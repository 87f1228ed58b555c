// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var _ Payload = (*BuyCoin)(nil)

var BuyCoinFields = []string{"coinToBuy", "valueToBuy", "coinToSell", "maximumValueToSell"}

type BuyCoin struct {
	CoinToBuy          string       `json:"coinToBuy"`
	ValueToBuy         *uint256.Int `json:"valueToBuy"`
	CoinToSell         string       `json:"coinToSell"`
	MaximumValueToSell *uint256.Int `json:"maximumValueToSell"`
}

func (*BuyCoin) GetTypeID() uint8 {
	return consts.BuyCoinID
}

func (*BuyCoin) FeeUnits() uint64 {
	return ConvertFeeUnits
}

func (b *BuyCoin) Marshal(p *codec.Packer) {
	p.PackSymbol(b.CoinToBuy)
	p.PackUint256(b.ValueToBuy)
	p.PackSymbol(b.CoinToSell)
	p.PackUint256(b.MaximumValueToSell)
}

func (b *BuyCoin) Fields() codec.Fields {
	return codec.Fields{
		"coinToBuy":          b.CoinToBuy,
		"valueToBuy":         utils.FormatBalance(b.ValueToBuy),
		"coinToSell":         b.CoinToSell,
		"maximumValueToSell": utils.FormatBalance(b.MaximumValueToSell),
	}
}

func NewBuyCoin(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, BuyCoinFields)
	b := &BuyCoin{
		CoinToBuy:          r.Symbol("coinToBuy"),
		ValueToBuy:         r.Amount("valueToBuy"),
		CoinToSell:         r.Symbol("coinToSell"),
		MaximumValueToSell: r.Amount("maximumValueToSell"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func UnmarshalBuyCoin(u *codec.Unpacker) (Payload, error) {
	var buy BuyCoin
	buy.CoinToBuy = u.UnpackSymbol()
	buy.ValueToBuy = u.UnpackUint256()
	buy.CoinToSell = u.UnpackSymbol()
	buy.MaximumValueToSell = u.UnpackUint256()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return &buy, nil
}
