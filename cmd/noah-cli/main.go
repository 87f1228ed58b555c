// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"

	"github.com/noah-blockchain/noah-go-sdk/config"
)

var log logging.Logger = logging.NoLog{}

var rootCmd = &cobra.Command{
	Use:   "noah-cli",
	Short: "Noah CLI for building, signing and decoding transactions and checks",
	Long:  `A CLI application for building, signing and decoding Noah chain transactions and checks offline.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		l, err := newLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		log = l
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		log.Stop()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().StringP(config.OutputKey, "o", "text", "Output format (text or json)")
	rootCmd.PersistentFlags().String(config.KeyKey, "", "Private secp256k1 key as hex string")
	rootCmd.PersistentFlags().String(config.ChainIDKey, "", "Chain id (1 mainnet, 2 testnet)")
	rootCmd.PersistentFlags().String(config.GasCoinKey, "", "Coin the fee is paid in")
	rootCmd.PersistentFlags().String(config.GasPriceKey, "", "Gas price multiplier")
	rootCmd.PersistentFlags().String(config.LogLevelKey, "", "Log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().String(config.LogDirKey, "", "Directory for rotated log files")
}

func main() {
	Execute()
}
