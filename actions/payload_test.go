// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
)

const (
	testAddress = "Mx7633980c000139dd3bd24a3f54e06474fa941e16"
	testPubKey  = "Mp0eb98ea04ae466d8d38f490db3c99b3996a90e24243952ce9822c6dc1e2c1a43"
	testCheck   = "Mcf8ab3101830f423f8a4e4f4148000000000000888ac7230489e80000b841ada7ad273bef8a1d22f3e314fdfad1e19b90b49c2b79d7d9c7e7f2b9c3c4da75"
	testProof   = "da021d4f84728e0d3d312a18ec84c21768e0caa12a53cb0a1452771f72b0d1a91770ae139fd6c23bcf8cec50f5f2e733eabb8482cf29ee540e56c6639aac469600"
)

var variantFields = map[uint8]codec.Fields{
	consts.SendCoinID: {
		"coin":  "NOAH",
		"to":    testAddress,
		"value": "1.5",
	},
	consts.SellCoinID: {
		"coinToSell":        "NOAH",
		"valueToSell":       "10",
		"coinToBuy":         "TEST",
		"minimumValueToBuy": "0",
	},
	consts.SellAllCoinID: {
		"coinToSell":        "TEST",
		"coinToBuy":         "NOAH",
		"minimumValueToBuy": "0.000000000000000001",
	},
	consts.BuyCoinID: {
		"coinToBuy":          "TEST",
		"valueToBuy":         "1",
		"coinToSell":         "NOAH",
		"maximumValueToSell": "100000",
	},
	consts.CreateCoinID: {
		"name":           "Test coin",
		"symbol":         "TESTCOIN",
		"initialAmount":  "100",
		"initialReserve": "10",
		"crr":            uint64(10),
	},
	consts.DeclareCandidacyID: {
		"address":    testAddress,
		"pubkey":     testPubKey,
		"commission": uint64(0),
		"coin":       "NOAH",
		"stake":      "5",
	},
	consts.DelegateID: {
		"pubkey": testPubKey,
		"coin":   "NOAH",
		"stake":  "5",
	},
	consts.UnbondID: {
		"pubkey": testPubKey,
		"coin":   "NOAH",
		"value":  "5",
	},
	consts.RedeemCheckID: {
		"check": testCheck,
		"proof": testProof,
	},
	consts.SetCandidateOnlineID: {
		"pubkey": testPubKey,
	},
	consts.SetCandidateOfflineID: {
		"pubkey": testPubKey,
	},
	consts.MultiSendID: {
		"list": []codec.Fields{
			{"coin": "NOAH", "to": testAddress, "value": "1"},
			{"coin": "TEST", "to": testAddress, "value": "2"},
		},
	},
	consts.EditCandidateID: {
		"pubkey":         testPubKey,
		"reward_address": testAddress,
		"owner_address":  testAddress,
	},
}

func TestRegisteredTypes(t *testing.T) {
	require := require.New(t)

	require.Equal([]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 14}, Parser.IDs())
	require.Len(variantFields, len(Parser.IDs()))
	require.Equal("MultiSend", Name(consts.MultiSendID))
	require.Empty(Name(12))
}

func TestPayloadRoundTrip(t *testing.T) {
	for _, id := range Parser.IDs() {
		t.Run(Name(id), func(t *testing.T) {
			require := require.New(t)

			in := variantFields[id]
			p, err := Build(id, in)
			require.NoError(err)
			require.Equal(id, p.GetTypeID())

			items, err := Pack(p)
			require.NoError(err)
			b, err := codec.EncodeList(items)
			require.NoError(err)

			out, err := Unmarshal(id, codec.NewUnpackerFromBytes(b))
			require.NoError(err)
			require.Equal(p, out)
			require.Equal(in, out.Fields())
		})
	}
}

func TestUnknownType(t *testing.T) {
	require := require.New(t)

	_, err := Build(99, codec.Fields{})
	require.ErrorIs(err, ErrUnknownTransactionType)
	_, err = Build(12, codec.Fields{})
	require.ErrorIs(err, ErrUnknownTransactionType)
	_, err = Unmarshal(99, codec.NewUnpacker(nil))
	require.ErrorIs(err, ErrUnknownTransactionType)
}

func TestCreateCoinSymbolTooLong(t *testing.T) {
	f := codec.Fields{
		"name":           "Test coin",
		"symbol":         "ABCDEFGHIJK",
		"initialAmount":  "100",
		"initialReserve": "10",
		"crr":            10,
	}
	_, err := Build(consts.CreateCoinID, f)
	require.ErrorIs(t, err, codec.ErrSymbolTooLong)
}

func TestZeroIntegersEncodeEmpty(t *testing.T) {
	require := require.New(t)

	p, err := Build(consts.DeclareCandidacyID, variantFields[consts.DeclareCandidacyID])
	require.NoError(err)
	items, err := Pack(p)
	require.NoError(err)
	require.Equal([]byte{}, items[2])
}

func TestFeeUnits(t *testing.T) {
	tests := []struct {
		id    uint8
		units uint64
	}{
		{consts.SendCoinID, 10},
		{consts.SellCoinID, 100},
		{consts.SellAllCoinID, 100},
		{consts.BuyCoinID, 100},
		{consts.CreateCoinID, 1000},
		{consts.DeclareCandidacyID, 10000},
		{consts.DelegateID, 200},
		{consts.UnbondID, 200},
		{consts.RedeemCheckID, 30},
		{consts.SetCandidateOnlineID, 100},
		{consts.SetCandidateOfflineID, 100},
		{consts.MultiSendID, 15},
		{consts.EditCandidateID, 10000},
	}
	for _, tt := range tests {
		t.Run(Name(tt.id), func(t *testing.T) {
			p, err := Build(tt.id, variantFields[tt.id])
			require.NoError(t, err)
			require.Equal(t, tt.units, p.FeeUnits())
		})
	}
}

func TestBaseFeeUnits(t *testing.T) {
	require := require.New(t)

	for _, id := range Parser.IDs() {
		units, err := BaseFeeUnits(id)
		require.NoError(err)
		if id == consts.MultiSendID {
			require.Equal(uint64(MultiSendBaseFeeUnits), units)
			continue
		}
		p, err := Build(id, variantFields[id])
		require.NoError(err)
		require.Equal(p.FeeUnits(), units, Name(id))
	}

	_, err := BaseFeeUnits(12)
	require.ErrorIs(err, ErrUnknownTransactionType)
}

func TestMultiSend(t *testing.T) {
	require := require.New(t)

	_, err := Build(consts.MultiSendID, codec.Fields{"list": []codec.Fields{}})
	require.ErrorIs(err, ErrEmptyList)

	_, err = Build(consts.MultiSendID, codec.Fields{"list": []codec.Fields{{"coin": "NOAH"}}})
	require.ErrorIs(err, codec.ErrFieldCountMismatch)

	// Wire form is one item holding the recipient lists.
	p, err := Build(consts.MultiSendID, variantFields[consts.MultiSendID])
	require.NoError(err)
	items, err := Pack(p)
	require.NoError(err)
	require.Len(items, 1)
	require.Len(items[0], 2)

	empty := codec.NewPacker(1)
	empty.PackList(codec.NewPacker(0))
	_, err = Unmarshal(consts.MultiSendID, codec.NewUnpacker(empty.Items()))
	require.ErrorIs(err, ErrEmptyList)

	bad := codec.NewPacker(1)
	bad.PackBytes([]byte{1})
	_, err = Unmarshal(consts.MultiSendID, codec.NewUnpacker(bad.Items()))
	require.ErrorIs(err, codec.ErrInvalidItem)
}

func TestUnmarshalRejectsTrailingItems(t *testing.T) {
	require := require.New(t)

	p, err := Build(consts.DelegateID, variantFields[consts.DelegateID])
	require.NoError(err)
	items, err := Pack(p)
	require.NoError(err)
	items = append(items, []byte{1})

	_, err = Unmarshal(consts.DelegateID, codec.NewUnpacker(items))
	require.ErrorIs(err, codec.ErrTrailingItems)
}
