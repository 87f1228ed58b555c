// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// TypeEntry describes one registered variant: how to build it from semantic
// fields and how to read it back from canonical items.
type TypeEntry[T any] struct {
	ID        uint8
	Name      string
	Build     func(Fields) (T, error)
	Unmarshal func(*Unpacker) (T, error)
}

// TypeParser maps explicit wire codes to variants. Codes are assigned by the
// caller and are never derived from registration order.
type TypeParser[T any] struct {
	indexToEntry map[uint8]*TypeEntry[T]
	nameToIndex  map[string]uint8
}

func NewTypeParser[T any]() *TypeParser[T] {
	return &TypeParser[T]{
		indexToEntry: map[uint8]*TypeEntry[T]{},
		nameToIndex:  map[string]uint8{},
	}
}

func (p *TypeParser[T]) Register(
	id uint8,
	name string,
	build func(Fields) (T, error),
	unmarshal func(*Unpacker) (T, error),
) error {
	if _, ok := p.indexToEntry[id]; ok {
		return fmt.Errorf("%w: type %d", ErrDuplicateItem, id)
	}
	if _, ok := p.nameToIndex[name]; ok {
		return fmt.Errorf("%w: type %q", ErrDuplicateItem, name)
	}
	p.indexToEntry[id] = &TypeEntry[T]{
		ID:        id,
		Name:      name,
		Build:     build,
		Unmarshal: unmarshal,
	}
	p.nameToIndex[name] = id
	return nil
}

func (p *TypeParser[T]) LookupIndex(id uint8) (*TypeEntry[T], bool) {
	e, ok := p.indexToEntry[id]
	return e, ok
}

func (p *TypeParser[T]) LookupName(name string) (*TypeEntry[T], bool) {
	id, ok := p.nameToIndex[name]
	if !ok {
		return nil, false
	}
	return p.indexToEntry[id], true
}

// IDs returns the registered codes in ascending order.
func (p *TypeParser[T]) IDs() []uint8 {
	ids := maps.Keys(p.indexToEntry)
	slices.Sort(ids)
	return ids
}
