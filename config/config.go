// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"strconv"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
)

const (
	ChainIDKey  = "chain-id"
	GasCoinKey  = "gas-coin"
	GasPriceKey = "gas-price"
	LogLevelKey = "log-level"
	LogDirKey   = "log-dir"
	KeyKey      = "key"
	OutputKey   = "output"
)

// Keys lists every persisted setting.
var Keys = []string{ChainIDKey, GasCoinKey, GasPriceKey, LogLevelKey, LogDirKey, KeyKey, OutputKey}

type Config struct {
	ChainID  uint8         `json:"chainId"`
	GasCoin  string        `json:"gasCoin"`
	GasPrice uint64        `json:"gasPrice"`
	LogLevel logging.Level `json:"logLevel"`
	LogDir   string        `json:"logDir"`

	// Key is the hex private key used for signing. Empty when unset.
	Key string `json:"-"`
}

func Default() *Config {
	return &Config{
		ChainID:  consts.TestnetChainID,
		GasCoin:  "NOAH",
		GasPrice: 1,
		LogLevel: logging.Info,
	}
}

// Set parses [value] into the setting named [key].
func (c *Config) Set(key, value string) error {
	switch key {
	case ChainIDKey:
		id, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return fmt.Errorf("%w: %s %q", ErrInvalidValue, key, value)
		}
		c.ChainID = uint8(id)
	case GasCoinKey:
		if _, err := codec.EncodeSymbol(value); err != nil {
			return err
		}
		c.GasCoin = value
	case GasPriceKey:
		price, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s %q", ErrInvalidValue, key, value)
		}
		c.GasPrice = price
	case LogLevelKey:
		level, err := logging.ToLevel(value)
		if err != nil {
			return err
		}
		c.LogLevel = level
	case LogDirKey:
		c.LogDir = value
	case KeyKey:
		c.Key = value
	case OutputKey:
		if value != "text" && value != "json" {
			return fmt.Errorf("%w: %s %q", ErrInvalidValue, key, value)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return nil
}
