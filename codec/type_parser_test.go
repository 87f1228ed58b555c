// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type Blah interface {
	Bark() string
}

type Blah1 struct{}

func (*Blah1) Bark() string { return "blah1" }

type Blah2 struct{}

func (*Blah2) Bark() string { return "blah2" }

func buildBlah1(Fields) (Blah, error) { return &Blah1{}, nil }
func unmarshalBlah1(*Unpacker) (Blah, error) { return &Blah1{}, nil }
func buildBlah2(Fields) (Blah, error) { return &Blah2{}, nil }
func unmarshalBlah2(*Unpacker) (Blah, error) { return &Blah2{}, nil }

func TestTypeParser(t *testing.T) {
	tp := NewTypeParser[Blah]()

	t.Run("empty parser", func(t *testing.T) {
		require := require.New(t)
		_, ok := tp.LookupIndex(0)
		require.False(ok)
		_, ok = tp.LookupName("blah1")
		require.False(ok)
		require.Empty(tp.IDs())
	})

	t.Run("populated parser", func(t *testing.T) {
		require := require.New(t)

		require.NoError(tp.Register(14, "blah2", buildBlah2, unmarshalBlah2))
		require.NoError(tp.Register(1, "blah1", buildBlah1, unmarshalBlah1))
		require.Equal([]uint8{1, 14}, tp.IDs())

		e, ok := tp.LookupIndex(14)
		require.True(ok)
		require.Equal("blah2", e.Name)
		b, err := e.Build(nil)
		require.NoError(err)
		require.Equal("blah2", b.Bark())

		e, ok = tp.LookupName("blah1")
		require.True(ok)
		require.Equal(uint8(1), e.ID)
		b, err = e.Unmarshal(nil)
		require.NoError(err)
		require.Equal("blah1", b.Bark())

		_, ok = tp.LookupIndex(2)
		require.False(ok)
	})

	t.Run("duplicate item", func(t *testing.T) {
		require := require.New(t)
		err := tp.Register(1, "blah3", buildBlah1, unmarshalBlah1)
		require.ErrorIs(err, ErrDuplicateItem)
		err = tp.Register(3, "blah1", buildBlah1, unmarshalBlah1)
		require.ErrorIs(err, ErrDuplicateItem)
	})
}
