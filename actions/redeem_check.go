// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
)

var _ Payload = (*RedeemCheck)(nil)

var RedeemCheckFields = []string{"check", "proof"}

type RedeemCheck struct {
	// Check is the raw signed check, without the Mc prefix.
	Check []byte `json:"check"`
	Proof []byte `json:"proof"`
}

func (*RedeemCheck) GetTypeID() uint8 {
	return consts.RedeemCheckID
}

func (*RedeemCheck) FeeUnits() uint64 {
	return RedeemCheckFeeUnits
}

func (c *RedeemCheck) Marshal(p *codec.Packer) {
	p.PackBytes(c.Check)
	p.PackBytes(c.Proof)
}

func (c *RedeemCheck) Fields() codec.Fields {
	return codec.Fields{
		"check": codec.AddPrefix(c.Check, codec.CheckPrefix),
		"proof": codec.ToHex(c.Proof),
	}
}

func NewRedeemCheck(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, RedeemCheckFields)
	c := &RedeemCheck{
		Check: r.Prefixed("check", codec.CheckPrefix),
		Proof: r.Hex("proof"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func UnmarshalRedeemCheck(u *codec.Unpacker) (Payload, error) {
	var redeem RedeemCheck
	redeem.Check = u.UnpackBytes()
	redeem.Proof = u.UnpackBytes()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return &redeem, nil
}
