// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var _ Payload = (*SellAllCoin)(nil)

var SellAllCoinFields = []string{"coinToSell", "coinToBuy", "minimumValueToBuy"}

// SellAllCoin sells the sender's entire balance of CoinToSell.
type SellAllCoin struct {
	CoinToSell        string       `json:"coinToSell"`
	CoinToBuy         string       `json:"coinToBuy"`
	MinimumValueToBuy *uint256.Int `json:"minimumValueToBuy"`
}

func (*SellAllCoin) GetTypeID() uint8 {
	return consts.SellAllCoinID
}

func (*SellAllCoin) FeeUnits() uint64 {
	return ConvertFeeUnits
}

func (s *SellAllCoin) Marshal(p *codec.Packer) {
	p.PackSymbol(s.CoinToSell)
	p.PackSymbol(s.CoinToBuy)
	p.PackUint256(s.MinimumValueToBuy)
}

func (s *SellAllCoin) Fields() codec.Fields {
	return codec.Fields{
		"coinToSell":        s.CoinToSell,
		"coinToBuy":         s.CoinToBuy,
		"minimumValueToBuy": utils.FormatBalance(s.MinimumValueToBuy),
	}
}

func NewSellAllCoin(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, SellAllCoinFields)
	s := &SellAllCoin{
		CoinToSell:        r.Symbol("coinToSell"),
		CoinToBuy:         r.Symbol("coinToBuy"),
		MinimumValueToBuy: r.Amount("minimumValueToBuy"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func UnmarshalSellAllCoin(u *codec.Unpacker) (Payload, error) {
	var sell SellAllCoin
	sell.CoinToSell = u.UnpackSymbol()
	sell.CoinToBuy = u.UnpackSymbol()
	sell.MinimumValueToBuy = u.UnpackUint256()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return &sell, nil
}
