// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
)

var _ Payload = (*MultiSend)(nil)

var MultiSendFields = []string{"list"}

// MultiSend transfers to several recipients in one transaction. On the wire
// it is a single item holding one [coin, to, value] list per recipient.
type MultiSend struct {
	List []*SendCoin `json:"list"`
}

func (*MultiSend) GetTypeID() uint8 {
	return consts.MultiSendID
}

// FeeUnits grows with the recipient count: 10 for the first, 5 for each
// additional one.
func (m *MultiSend) FeeUnits() uint64 {
	if len(m.List) == 0 {
		return MultiSendBaseFeeUnits
	}
	return MultiSendBaseFeeUnits + MultiSendPerRecipientFeeUnits*uint64(len(m.List)-1)
}

func (m *MultiSend) Marshal(p *codec.Packer) {
	list := codec.NewPacker(len(m.List))
	for _, send := range m.List {
		item := codec.NewPacker(len(SendCoinFields))
		send.Marshal(item)
		list.PackList(item)
	}
	p.PackList(list)
}

func (m *MultiSend) Fields() codec.Fields {
	list := make([]codec.Fields, len(m.List))
	for i, send := range m.List {
		list[i] = send.Fields()
	}
	return codec.Fields{"list": list}
}

func NewMultiSend(f codec.Fields) (Payload, error) {
	r := codec.NewFieldReader(f, MultiSendFields)
	list := r.List("list")
	if err := r.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	m := &MultiSend{List: make([]*SendCoin, len(list))}
	for i, item := range list {
		send, err := NewSendCoin(item)
		if err != nil {
			return nil, fmt.Errorf("list[%d]: %w", i, err)
		}
		m.List[i] = send.(*SendCoin)
	}
	return m, nil
}

func UnmarshalMultiSend(u *codec.Unpacker) (Payload, error) {
	list := u.UnpackList()
	if err := u.Done(); err != nil {
		return nil, err
	}
	if list.Remaining() == 0 {
		if err := list.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyList
	}
	var m MultiSend
	for i := 0; list.Remaining() > 0; i++ {
		send, err := UnmarshalSendCoin(list.UnpackList())
		if err != nil {
			return nil, fmt.Errorf("list[%d]: %w", i, err)
		}
		m.List = append(m.List, send.(*SendCoin))
	}
	if err := list.Done(); err != nil {
		return nil, err
	}
	return &m, nil
}
