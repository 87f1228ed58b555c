// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
)

func TestDefault(t *testing.T) {
	require := require.New(t)

	c := Default()
	require.Equal(consts.TestnetChainID, c.ChainID)
	require.Equal("NOAH", c.GasCoin)
	require.Equal(uint64(1), c.GasPrice)
	require.Equal(logging.Info, c.LogLevel)
	require.Empty(c.Key)
}

func TestSet(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		err   error
		check func(*require.Assertions, *Config)
	}{
		{
			name:  "chain id",
			key:   ChainIDKey,
			value: "1",
			check: func(r *require.Assertions, c *Config) { r.Equal(consts.MainnetChainID, c.ChainID) },
		},
		{
			name:  "chain id overflow",
			key:   ChainIDKey,
			value: "256",
			err:   ErrInvalidValue,
		},
		{
			name:  "gas coin",
			key:   GasCoinKey,
			value: "BIP",
			check: func(r *require.Assertions, c *Config) { r.Equal("BIP", c.GasCoin) },
		},
		{
			name:  "gas coin too long",
			key:   GasCoinKey,
			value: "ABCDEFGHIJK",
			err:   codec.ErrSymbolTooLong,
		},
		{
			name:  "gas price",
			key:   GasPriceKey,
			value: "5",
			check: func(r *require.Assertions, c *Config) { r.Equal(uint64(5), c.GasPrice) },
		},
		{
			name:  "log level",
			key:   LogLevelKey,
			value: "debug",
			check: func(r *require.Assertions, c *Config) { r.Equal(logging.Debug, c.LogLevel) },
		},
		{
			name:  "output",
			key:   OutputKey,
			value: "yaml",
			err:   ErrInvalidValue,
		},
		{
			name:  "unknown",
			key:   "endpoint",
			value: "http://localhost",
			err:   ErrUnknownKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			c := Default()
			err := c.Set(tt.key, tt.value)
			if tt.err != nil {
				require.ErrorIs(err, tt.err)
				return
			}
			require.NoError(err)
			tt.check(require, c)
		})
	}
}
