// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var _ Payload = (*DeclareCandidacy)(nil)

var DeclareCandidacyFields = []string{"address", "pubkey", "commission", "coin", "stake"}

type DeclareCandidacy struct {
	Address codec.Address   `json:"address"`
	PubKey  codec.PublicKey `json:"pubkey"`

	// Commission is the validator fee in percent.
	Commission uint64       `json:"commission"`
	Coin       string       `json:"coin"`
	Stake      *uint256.Int `json:"stake"`
}

func (*DeclareCandidacy) GetTypeID() uint8 {
	return consts.DeclareCandidacyID
}

func (*DeclareCandidacy) FeeUnits() uint64 {
	return DeclareCandidacyFeeUnits
}

func (d *DeclareCandidacy) Marshal(p *codec.Packer) {
	p.PackAddress(d.Address)
	p.PackPublicKey(d.PubKey)
	p.PackUint64(d.Commission)
	p.PackSymbol(d.Coin)
	p.PackUint256(d.Stake)
}

func (d *DeclareCandidacy) Fields() codec.Fields {
	return codec.Fields{
		"address":    d.Address.String(),
		"pubkey":     d.PubKey.String(),
		"commission": d.Commission,
		"coin":       d.Coin,
		"stake":      utils.FormatBalance(d.Stake),
	}
}

func NewDeclareCandidacy(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, DeclareCandidacyFields)
	d := &DeclareCandidacy{
		Address:    r.Address("address"),
		PubKey:     r.PublicKey("pubkey"),
		Commission: r.Uint64("commission"),
		Coin:       r.Symbol("coin"),
		Stake:      r.Amount("stake"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func UnmarshalDeclareCandidacy(u *codec.Unpacker) (Payload, error) {
	var declare DeclareCandidacy
	declare.Address = u.UnpackAddress()
	declare.PubKey = u.UnpackPublicKey()
	declare.Commission = u.UnpackUint64()
	declare.Coin = u.UnpackSymbol()
	declare.Stake = u.UnpackUint256()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return &declare, nil
}
