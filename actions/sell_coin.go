// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var _ Payload = (*SellCoin)(nil)

var SellCoinFields = []string{"coinToSell", "valueToSell", "coinToBuy", "minimumValueToBuy"}

type SellCoin struct {
	CoinToSell        string       `json:"coinToSell"`
	ValueToSell       *uint256.Int `json:"valueToSell"`
	CoinToBuy         string       `json:"coinToBuy"`
	MinimumValueToBuy *uint256.Int `json:"minimumValueToBuy"`
}

func (*SellCoin) GetTypeID() uint8 {
	return consts.SellCoinID
}

func (*SellCoin) FeeUnits() uint64 {
	return ConvertFeeUnits
}

func (s *SellCoin) Marshal(p *codec.Packer) {
	p.PackSymbol(s.CoinToSell)
	p.PackUint256(s.ValueToSell)
	p.PackSymbol(s.CoinToBuy)
	p.PackUint256(s.MinimumValueToBuy)
}

func (s *SellCoin) Fields() codec.Fields {
	return codec.Fields{
		"coinToSell":        s.CoinToSell,
		"valueToSell":       utils.FormatBalance(s.ValueToSell),
		"coinToBuy":         s.CoinToBuy,
		"minimumValueToBuy": utils.FormatBalance(s.MinimumValueToBuy),
	}
}

func NewSellCoin(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, SellCoinFields)
	s := &SellCoin{
		CoinToSell:        r.Symbol("coinToSell"),
		ValueToSell:       r.Amount("valueToSell"),
		CoinToBuy:         r.Symbol("coinToBuy"),
		MinimumValueToBuy: r.Amount("minimumValueToBuy"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func UnmarshalSellCoin(u *codec.Unpacker) (Payload, error) {
	var sell SellCoin
	sell.CoinToSell = u.UnpackSymbol()
	sell.ValueToSell = u.UnpackUint256()
	sell.CoinToBuy = u.UnpackSymbol()
	sell.MinimumValueToBuy = u.UnpackUint256()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return &sell, nil
}
