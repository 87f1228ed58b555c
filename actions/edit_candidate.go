// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
)

var _ Payload = (*EditCandidate)(nil)

var EditCandidateFields = []string{"pubkey", "reward_address", "owner_address"}

type EditCandidate struct {
	PubKey        codec.PublicKey `json:"pubkey"`
	RewardAddress codec.Address   `json:"reward_address"`
	OwnerAddress  codec.Address   `json:"owner_address"`
}

func (*EditCandidate) GetTypeID() uint8 {
	return consts.EditCandidateID
}

func (*EditCandidate) FeeUnits() uint64 {
	return EditCandidateFeeUnits
}

func (e *EditCandidate) Marshal(p *codec.Packer) {
	p.PackPublicKey(e.PubKey)
	p.PackAddress(e.RewardAddress)
	p.PackAddress(e.OwnerAddress)
}

func (e *EditCandidate) Fields() codec.Fields {
	return codec.Fields{
		"pubkey":         e.PubKey.String(),
		"reward_address": e.RewardAddress.String(),
		"owner_address":  e.OwnerAddress.String(),
	}
}

func NewEditCandidate(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, EditCandidateFields)
	e := &EditCandidate{
		PubKey:        r.PublicKey("pubkey"),
		RewardAddress: r.Address("reward_address"),
		OwnerAddress:  r.Address("owner_address"),
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return e, nil
}

func UnmarshalEditCandidate(u *codec.Unpacker) (Payload, error) {
	var edit EditCandidate
	edit.PubKey = u.UnpackPublicKey()
	edit.RewardAddress = u.UnpackAddress()
	edit.OwnerAddress = u.UnpackAddress()
	if err := u.Done(); err != nil {
		return nil, err
	}
	return &edit, nil
}
