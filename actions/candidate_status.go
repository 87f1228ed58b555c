// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
)

var (
	_ Payload = (*SetCandidateOnline)(nil)
	_ Payload = (*SetCandidateOffline)(nil)
)

var CandidateStatusFields = []string{"pubkey"}

type SetCandidateOnline struct {
	PubKey codec.PublicKey `json:"pubkey"`
}

func (*SetCandidateOnline) GetTypeID() uint8 {
	return consts.SetCandidateOnlineID
}

func (*SetCandidateOnline) FeeUnits() uint64 {
	return SetCandidateStatusFeeUnits
}

func (s *SetCandidateOnline) Marshal(p *codec.Packer) {
	p.PackPublicKey(s.PubKey)
}

func (s *SetCandidateOnline) Fields() codec.Fields {
	return codec.Fields{"pubkey": s.PubKey.String()}
}

func NewSetCandidateOnline(f codec.Fields) (Payload, error) {
	pk, err := readCandidateKey(f)
	if err != nil {
		return nil, err
	}
	return &SetCandidateOnline{PubKey: pk}, nil
}

func UnmarshalSetCandidateOnline(u *codec.Unpacker) (Payload, error) {
	pk, err := unpackCandidateKey(u)
	if err != nil {
		return nil, err
	}
	return &SetCandidateOnline{PubKey: pk}, nil
}

type SetCandidateOffline struct {
	PubKey codec.PublicKey `json:"pubkey"`
}

func (*SetCandidateOffline) GetTypeID() uint8 {
	return consts.SetCandidateOfflineID
}

func (*SetCandidateOffline) FeeUnits() uint64 {
	return SetCandidateStatusFeeUnits
}

func (s *SetCandidateOffline) Marshal(p *codec.Packer) {
	p.PackPublicKey(s.PubKey)
}

func (s *SetCandidateOffline) Fields() codec.Fields {
	return codec.Fields{"pubkey": s.PubKey.String()}
}

func NewSetCandidateOffline(f codec.Fields) (Payload, error) {
	pk, err := readCandidateKey(f)
	if err != nil {
		return nil, err
	}
	return &SetCandidateOffline{PubKey: pk}, nil
}

func UnmarshalSetCandidateOffline(u *codec.Unpacker) (Payload, error) {
	pk, err := unpackCandidateKey(u)
	if err != nil {
		return nil, err
	}
	return &SetCandidateOffline{PubKey: pk}, nil
}

func readCandidateKey(f codec.Fields) (codec.PublicKey, error) {
	r := codec.NewFieldReader(f, CandidateStatusFields)
	pk := r.PublicKey("pubkey")
	return pk, r.Err()
}

func unpackCandidateKey(u *codec.Unpacker) (codec.PublicKey, error) {
	pk := u.UnpackPublicKey()
	return pk, u.Done()
}
