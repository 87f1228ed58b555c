// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-blockchain/noah-go-sdk/auth"
	"github.com/noah-blockchain/noah-go-sdk/config"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage keys",
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new private key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := auth.GeneratePrivateKey()
		if err != nil {
			return fmt.Errorf("failed to generate key: %w", err)
		}
		save, err := cmd.Flags().GetBool("save")
		if err != nil {
			return err
		}
		if save {
			if err := setConfigValue(config.KeyKey, key.String()); err != nil {
				return fmt.Errorf("failed to update config: %w", err)
			}
			log.Info("stored key", zap.Stringer("address", key.Address))
		}
		return printValue(cmd, keyResponse{
			PrivateKey: key.String(),
			Address:    key.Address.String(),
			PublicKey:  key.PublicKey.String(),
		})
	},
}

var keyAddressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print current key address and public key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := loadKey(cmd)
		if err != nil {
			return err
		}
		return printValue(cmd, keyResponse{
			Address:   key.Address.String(),
			PublicKey: key.PublicKey.String(),
		})
	},
}

type keyResponse struct {
	PrivateKey string `json:"privateKey,omitempty"`
	Address    string `json:"address"`
	PublicKey  string `json:"publicKey"`
}

func (r keyResponse) String() string {
	s := fmt.Sprintf("address: %s\npublic key: %s", r.Address, r.PublicKey)
	if r.PrivateKey != "" {
		s = fmt.Sprintf("private key: %s\n%s", r.PrivateKey, s)
	}
	return s
}

func loadKey(cmd *cobra.Command) (*auth.PrivateKey, error) {
	keyString, err := getConfigValue(cmd, config.KeyKey, false)
	if err != nil {
		return nil, err
	}
	if keyString == "" {
		return nil, errKeyRequired
	}
	key, err := auth.LoadPrivateKey(keyString)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key: %w", err)
	}
	return key, nil
}

func init() {
	keyGenerateCmd.Flags().Bool("save", false, "Persist the generated key as the default signing key")
	keyCmd.AddCommand(keyGenerateCmd, keyAddressCmd)
	rootCmd.AddCommand(keyCmd)
}
