// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"fmt"

	"github.com/noah-blockchain/noah-go-sdk/consts"
)

const SymbolLen = consts.SymbolLen

// Symbol is a coin ticker right-padded with zero bytes.
type Symbol [SymbolLen]byte

// EncodeSymbol pads s to SymbolLen bytes.
func EncodeSymbol(s string) (Symbol, error) {
	var sym Symbol
	if len(s) > SymbolLen {
		return sym, fmt.Errorf("%w: %q is %d bytes, max %d", ErrSymbolTooLong, s, len(s), SymbolLen)
	}
	copy(sym[:], s)
	return sym, nil
}

// DecodeSymbol strips the zero padding from b.
func DecodeSymbol(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}

func (s Symbol) String() string {
	return DecodeSymbol(s[:])
}
