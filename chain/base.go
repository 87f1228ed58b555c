// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/noah-blockchain/noah-go-sdk/codec"
)

type Base struct {
	// Nonce must be one greater than the sender's last used nonce.
	Nonce uint64 `json:"nonce"`

	// ChainID protects against replay attacks across networks.
	ChainID uint8 `json:"chainId"`

	// GasPrice multiplies the fee. GasCoin is the coin the fee is paid in.
	GasPrice uint64 `json:"gasPrice"`
	GasCoin  string `json:"gasCoin"`
}

func (b *Base) Marshal(p *codec.Packer) {
	p.PackUint64(b.Nonce)
	p.PackUint64(uint64(b.ChainID))
	p.PackUint64(b.GasPrice)
	p.PackSymbol(b.GasCoin)
}

func UnmarshalBase(u *codec.Unpacker) (*Base, error) {
	var base Base
	base.Nonce = u.UnpackUint64()
	base.ChainID = u.UnpackUint8()
	base.GasPrice = u.UnpackUint64()
	base.GasCoin = u.UnpackSymbol()
	return &base, u.Err()
}
