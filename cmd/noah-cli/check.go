// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-blockchain/noah-go-sdk/check"
	"github.com/noah-blockchain/noah-go-sdk/cli/prompt"
	"github.com/noah-blockchain/noah-go-sdk/codec"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Issue, decode and prove checks",
}

func passphrase(cmd *cobra.Command) (string, error) {
	p, err := cmd.Flags().GetString("passphrase")
	if err != nil {
		return "", err
	}
	if p != "" {
		return p, nil
	}
	return prompt.Password("passphrase")
}

var checkIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Issue a check signed by the current key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		key, err := loadKey(cmd)
		if err != nil {
			return err
		}
		f := codec.Fields{"chainId": cfg.ChainID}
		for _, name := range []string{"nonce", "dueBlock", "coin", "value"} {
			v, err := cmd.Flags().GetString(name)
			if err != nil {
				return err
			}
			f[name] = v
		}
		pass, err := passphrase(cmd)
		if err != nil {
			return err
		}

		c, err := check.New(f, pass)
		if err != nil {
			return fmt.Errorf("failed to create check: %w", err)
		}
		factory, err := key.Factory()
		if err != nil {
			return err
		}
		s, err := c.Sign(factory)
		if err != nil {
			return fmt.Errorf("failed to sign check: %w", err)
		}
		log.Debug("issued check",
			zap.Stringer("owner", key.Address),
			zap.Uint64("dueBlock", c.DueBlock),
			zap.String("coin", c.Coin),
		)
		return printValue(cmd, checkResponse{Check: s, Owner: key.Address.String()})
	},
}

var checkDecodeCmd = &cobra.Command{
	Use:   "decode <Mc...>",
	Short: "Decode a check and recover its owner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := check.Parse(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("failed to decode check: %w", err)
		}
		owner, err := c.Owner()
		if err != nil {
			return err
		}
		return printValue(cmd, checkResponse{
			Check:  c.String(),
			Owner:  owner.String(),
			Fields: c.Fields(),
		})
	},
}

var checkProofCmd = &cobra.Command{
	Use:   "proof",
	Short: "Create the redemption proof for an address",
	RunE: func(cmd *cobra.Command, _ []string) error {
		raw, err := cmd.Flags().GetString("address")
		if err != nil {
			return err
		}
		var address codec.Address
		if raw == "" {
			key, err := loadKey(cmd)
			if err != nil {
				return err
			}
			address = key.Address
		} else if address, err = codec.ParseAddress(raw); err != nil {
			return err
		}
		pass, err := passphrase(cmd)
		if err != nil {
			return err
		}
		p, err := check.NewProver(address, pass)
		if err != nil {
			return err
		}
		proof, err := p.Proof()
		if err != nil {
			return fmt.Errorf("failed to create proof: %w", err)
		}
		return printValue(cmd, proofResponse{Address: address.String(), Proof: codec.ToHex(proof)})
	},
}

type checkResponse struct {
	Check  string       `json:"check"`
	Owner  string       `json:"owner"`
	Fields codec.Fields `json:"fields,omitempty"`
}

func (r checkResponse) String() string {
	s := fmt.Sprintf("check: %s\nowner: %s", r.Check, r.Owner)
	if r.Fields != nil {
		fields, err := json.MarshalIndent(r.Fields, "", "  ")
		if err != nil {
			fields = []byte(fmt.Sprintf("%v", r.Fields))
		}
		s += "\nfields: " + string(fields)
	}
	return s
}

type proofResponse struct {
	Address string `json:"address"`
	Proof   string `json:"proof"`
}

func (r proofResponse) String() string {
	return fmt.Sprintf("address: %s\nproof: %s", r.Address, r.Proof)
}

func init() {
	checkIssueCmd.Flags().String("nonce", "1", "Check nonce, at most 32 bytes")
	checkIssueCmd.Flags().String("dueBlock", "999999999", "Last block at which the check can be redeemed")
	checkIssueCmd.Flags().String("coin", "NOAH", "Coin symbol")
	checkIssueCmd.Flags().String("value", "", "Amount in whole coins")
	checkIssueCmd.Flags().String("passphrase", "", "Passphrase (prompted when empty)")
	if err := checkIssueCmd.MarkFlagRequired("value"); err != nil {
		panic(err)
	}

	checkProofCmd.Flags().String("address", "", "Redeemer address (defaults to the current key)")
	checkProofCmd.Flags().String("passphrase", "", "Passphrase (prompted when empty)")

	checkCmd.AddCommand(checkIssueCmd, checkDecodeCmd, checkProofCmd)
	rootCmd.AddCommand(checkCmd)
}
