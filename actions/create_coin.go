// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var _ Payload = (*CreateCoin)(nil)

var CreateCoinFields = []string{"name", "symbol", "initialAmount", "initialReserve", "crr"}

type CreateCoin struct {
	Name           string       `json:"name"`
	Symbol         string       `json:"symbol"`
	InitialAmount  *uint256.Int `json:"initialAmount"`
	InitialReserve *uint256.Int `json:"initialReserve"`

	// CRR is the constant reserve ratio in percent.
	CRR uint64 `json:"crr"`
}

func (*CreateCoin) GetTypeID() uint8 {
	return consts.CreateCoinID
}

func (*CreateCoin) FeeUnits() uint64 {
	return CreateCoinFeeUnits
}

func (c *CreateCoin) Marshal(p *codec.Packer) {
	p.PackString(c.Name)
	p.PackSymbol(c.Symbol)
	p.PackUint256(c.InitialAmount)
	p.PackUint256(c.InitialReserve)
	p.PackUint64(c.CRR)
}

func (c *CreateCoin) Fields() codec.Fields {
	return codec.Fields{
		"name":           c.Name,
		"symbol":         c.Symbol,
		"initialAmount":  utils.FormatBalance(c.InitialAmount),
		"initialReserve": utils.FormatBalance(c.InitialReserve),
		"crr":            c.CRR,
	}
}

func NewCreateCoin(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, CreateCoinFields)
	c := &CreateCoin{
		Name:           r.String("name"),
		Symbol:         r.Symbol("symbol"),
		InitialAmount:  r.Amount("initialAmount"),
		InitialReserve: r.Amount("initialReserve"),
		CRR:            r.Uint64("crr"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func UnmarshalCreateCoin(u *codec.Unpacker) (Payload, error) {
	var create CreateCoin
	create.Name = u.UnpackString()
	create.Symbol = u.UnpackSymbol()
	create.InitialAmount = u.UnpackUint256()
	create.InitialReserve = u.UnpackUint256()
	create.CRR = u.UnpackUint64()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return &create, nil
}
