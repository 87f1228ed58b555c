// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/consts"
)

// Packer builds a nested list of byte strings ready for RLP encoding.
//
// Only the first error is retained; once set, every Pack call is a no-op.
// This lets callers pack a full record and check Err once at the end.
type Packer struct {
	items []any
	err   error
}

func NewPacker(capacity int) *Packer {
	return &Packer{items: make([]any, 0, capacity)}
}

func (p *Packer) PackBytes(b []byte) {
	if p.err != nil {
		return
	}
	if b == nil {
		b = []byte{}
	}
	p.items = append(p.items, b)
}

func (p *Packer) PackString(s string) {
	p.PackBytes([]byte(s))
}

func (p *Packer) PackUint64(v uint64) {
	p.PackBytes(Uint64Bytes(v))
}

func (p *Packer) PackUint256(v *uint256.Int) {
	p.PackBytes(Uint256Bytes(v))
}

func (p *Packer) PackSymbol(s string) {
	sym, err := EncodeSymbol(s)
	if err != nil {
		p.addErr(err)
		return
	}
	p.PackBytes(sym[:])
}

func (p *Packer) PackAddress(a Address) {
	p.PackBytes(a[:])
}

func (p *Packer) PackPublicKey(k PublicKey) {
	p.PackBytes(k)
}

// PackList appends the items of sub as a nested list. Any error held by sub
// is adopted by p.
func (p *Packer) PackList(sub *Packer) {
	if sub.err != nil {
		p.addErr(sub.err)
		return
	}
	if p.err != nil {
		return
	}
	p.items = append(p.items, sub.items)
}

// PackEncoded appends the RLP encoding of sub as a single byte string.
func (p *Packer) PackEncoded(sub *Packer) {
	b, err := sub.Bytes()
	if err != nil {
		p.addErr(err)
		return
	}
	p.PackBytes(b)
}

func (p *Packer) addErr(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Items returns the packed items. The slice is shared with p.
func (p *Packer) Items() []any {
	return p.items
}

func (p *Packer) Err() error {
	return p.err
}

// Bytes returns the RLP encoding of the packed list.
func (p *Packer) Bytes() ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return EncodeList(p.items)
}

// Unpacker reads items in order from a decoded list. Like Packer, it keeps
// the first error and returns zero values afterwards.
type Unpacker struct {
	items  []any
	offset int
	err    error
}

func NewUnpacker(items []any) *Unpacker {
	return &Unpacker{items: items}
}

// NewUnpackerFromBytes decodes b as an RLP list.
func NewUnpackerFromBytes(b []byte) *Unpacker {
	items, err := DecodeList(b)
	return &Unpacker{items: items, err: err}
}

func (u *Unpacker) next() (any, bool) {
	if u.err != nil {
		return nil, false
	}
	if u.offset >= len(u.items) {
		u.err = fmt.Errorf("%w: item %d missing", ErrInsufficientLength, u.offset)
		return nil, false
	}
	item := u.items[u.offset]
	u.offset++
	return item, true
}

func (u *Unpacker) UnpackBytes() []byte {
	item, ok := u.next()
	if !ok {
		return nil
	}
	b, ok := item.([]byte)
	if !ok {
		u.err = fmt.Errorf("%w: item %d is a list, want byte string", ErrInvalidItem, u.offset-1)
		return nil
	}
	return b
}

func (u *Unpacker) UnpackString() string {
	return string(u.UnpackBytes())
}

func (u *Unpacker) UnpackUint64() uint64 {
	b := u.UnpackBytes()
	if u.err != nil {
		return 0
	}
	v, err := BytesToUint64(b)
	if err != nil {
		u.err = fmt.Errorf("item %d: %w", u.offset-1, err)
		return 0
	}
	return v
}

func (u *Unpacker) UnpackUint8() uint8 {
	v := u.UnpackUint64()
	if u.err != nil {
		return 0
	}
	if v > uint64(consts.MaxUint8) {
		u.err = fmt.Errorf("%w: item %d value %d exceeds uint8", ErrInvalidSize, u.offset-1, v)
		return 0
	}
	return uint8(v)
}

func (u *Unpacker) UnpackUint256() *uint256.Int {
	b := u.UnpackBytes()
	if u.err != nil {
		return nil
	}
	v, err := BytesToUint256(b)
	if err != nil {
		u.err = fmt.Errorf("item %d: %w", u.offset-1, err)
		return nil
	}
	return v
}

func (u *Unpacker) UnpackSymbol() string {
	b := u.UnpackBytes()
	if u.err != nil {
		return ""
	}
	if len(b) > SymbolLen {
		u.err = fmt.Errorf("%w: item %d is %d bytes", ErrSymbolTooLong, u.offset-1, len(b))
		return ""
	}
	return DecodeSymbol(b)
}

func (u *Unpacker) UnpackAddress() Address {
	b := u.UnpackBytes()
	if u.err != nil {
		return EmptyAddress
	}
	a, err := ToAddress(b)
	if err != nil {
		u.err = fmt.Errorf("item %d: %w", u.offset-1, err)
		return EmptyAddress
	}
	return a
}

func (u *Unpacker) UnpackPublicKey() PublicKey {
	b := u.UnpackBytes()
	if u.err != nil {
		return nil
	}
	if len(b) == 0 {
		u.err = fmt.Errorf("%w: item %d is an empty public key", ErrInvalidSize, u.offset-1)
		return nil
	}
	return PublicKey(b)
}

// UnpackList returns an Unpacker over the next item, which must be a nested
// list. The child inherits any error already held by u.
func (u *Unpacker) UnpackList() *Unpacker {
	item, ok := u.next()
	if !ok {
		return &Unpacker{err: u.err}
	}
	items, ok := item.([]any)
	if !ok {
		u.err = fmt.Errorf("%w: item %d is a byte string, want list", ErrInvalidItem, u.offset-1)
		return &Unpacker{err: u.err}
	}
	return NewUnpacker(items)
}

// UnpackEncoded reads a byte string holding an RLP list and returns an
// Unpacker over that list.
func (u *Unpacker) UnpackEncoded() *Unpacker {
	b := u.UnpackBytes()
	if u.err != nil {
		return &Unpacker{err: u.err}
	}
	items, err := DecodeList(b)
	if err != nil {
		u.err = fmt.Errorf("item %d: %w", u.offset-1, err)
		return &Unpacker{err: u.err}
	}
	return NewUnpacker(items)
}

// Remaining is the number of unread items, or 0 once an error is held.
func (u *Unpacker) Remaining() int {
	if u.err != nil {
		return 0
	}
	return len(u.items) - u.offset
}

func (u *Unpacker) Err() error {
	return u.err
}

// Done returns the held error, or ErrTrailingItems if unread items remain.
func (u *Unpacker) Done() error {
	if u.err != nil {
		return u.err
	}
	if u.offset != len(u.items) {
		return fmt.Errorf("%w: %d unread", ErrTrailingItems, len(u.items)-u.offset)
	}
	return nil
}

// EncodeList returns the RLP encoding of a nested list of byte strings.
func EncodeList(items []any) ([]byte, error) {
	return rlp.EncodeToBytes(items)
}

// DecodeList parses b as a single RLP list. Input that is a bare string or
// carries bytes after the list is rejected.
func DecodeList(b []byte) ([]any, error) {
	var items []any
	if err := rlp.DecodeBytes(b, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}
	return items, nil
}
