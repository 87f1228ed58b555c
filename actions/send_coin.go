// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var _ Payload = (*SendCoin)(nil)

var SendCoinFields = []string{"coin", "to", "value"}

type SendCoin struct {
	Coin string        `json:"coin"`
	To   codec.Address `json:"to"`

	// Value is denominated in pip.
	Value *uint256.Int `json:"value"`
}

func (*SendCoin) GetTypeID() uint8 {
	return consts.SendCoinID
}

func (*SendCoin) FeeUnits() uint64 {
	return SendCoinFeeUnits
}

func (s *SendCoin) Marshal(p *codec.Packer) {
	p.PackSymbol(s.Coin)
	p.PackAddress(s.To)
	p.PackUint256(s.Value)
}

func (s *SendCoin) Fields() codec.Fields {
	return codec.Fields{
		"coin":  s.Coin,
		"to":    s.To.String(),
		"value": utils.FormatBalance(s.Value),
	}
}

func NewSendCoin(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, SendCoinFields)
	s := &SendCoin{
		Coin:  r.Symbol("coin"),
		To:    r.Address("to"),
		Value: r.Amount("value"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func UnmarshalSendCoin(u *codec.Unpacker) (Payload, error) {
	var send SendCoin
	send.Coin = u.UnpackSymbol()
	send.To = u.UnpackAddress()
	send.Value = u.UnpackUint256()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return &send, nil
}
