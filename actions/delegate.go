// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var (
	_ Payload = (*Delegate)(nil)
	_ Payload = (*Unbond)(nil)
)

var (
	DelegateFields = []string{"pubkey", "coin", "stake"}
	UnbondFields   = []string{"pubkey", "coin", "value"}
)

type Delegate struct {
	PubKey codec.PublicKey `json:"pubkey"`
	Coin   string          `json:"coin"`
	Stake  *uint256.Int    `json:"stake"`
}

func (*Delegate) GetTypeID() uint8 {
	return consts.DelegateID
}

func (*Delegate) FeeUnits() uint64 {
	return DelegateFeeUnits
}

func (d *Delegate) Marshal(p *codec.Packer) {
	p.PackPublicKey(d.PubKey)
	p.PackSymbol(d.Coin)
	p.PackUint256(d.Stake)
}

func (d *Delegate) Fields() codec.Fields {
	return codec.Fields{
		"pubkey": d.PubKey.String(),
		"coin":   d.Coin,
		"stake":  utils.FormatBalance(d.Stake),
	}
}

func NewDelegate(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, DelegateFields)
	d := &Delegate{
		PubKey: r.PublicKey("pubkey"),
		Coin:   r.Symbol("coin"),
		Stake:  r.Amount("stake"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func UnmarshalDelegate(u *codec.Unpacker) (Payload, error) {
	var delegate Delegate
	delegate.PubKey = u.UnpackPublicKey()
	delegate.Coin = u.UnpackSymbol()
	delegate.Stake = u.UnpackUint256()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return &delegate, nil
}

// Unbond withdraws a stake previously delegated to a candidate.
type Unbond struct {
	PubKey codec.PublicKey `json:"pubkey"`
	Coin   string          `json:"coin"`
	Value  *uint256.Int    `json:"value"`
}

func (*Unbond) GetTypeID() uint8 {
	return consts.UnbondID
}

func (*Unbond) FeeUnits() uint64 {
	return UnbondFeeUnits
}

func (b *Unbond) Marshal(p *codec.Packer) {
	p.PackPublicKey(b.PubKey)
	p.PackSymbol(b.Coin)
	p.PackUint256(b.Value)
}

func (b *Unbond) Fields() codec.Fields {
	return codec.Fields{
		"pubkey": b.PubKey.String(),
		"coin":   b.Coin,
		"value":  utils.FormatBalance(b.Value),
	}
}

func NewUnbond(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, UnbondFields)
	b := &Unbond{
		PubKey: r.PublicKey("pubkey"),
		Coin:   r.Symbol("coin"),
		Value:  r.Amount("value"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func UnmarshalUnbond(u *codec.Unpacker) (Payload, error) {
	var unbond Unbond
	unbond.PubKey = u.UnpackPublicKey()
	unbond.Coin = u.UnpackSymbol()
	unbond.Value = u.UnpackUint256()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return &unbond, nil
}
