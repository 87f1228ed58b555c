// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"

	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between whole coins and pip",
}

var toPipCmd = &cobra.Command{
	Use:   "to-pip <amount>",
	Short: "Convert whole coins to pip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pip, err := utils.ToPip(args[0])
		if err != nil {
			return err
		}
		return printValue(cmd, convertResponse{Value: pip})
	},
}

var fromPipCmd = &cobra.Command{
	Use:   "from-pip <pip>",
	Short: "Convert pip to whole coins",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coins, err := utils.FromPip(args[0])
		if err != nil {
			return err
		}
		return printValue(cmd, convertResponse{Value: coins})
	},
}

type convertResponse struct {
	Value string `json:"value"`
}

func (r convertResponse) String() string {
	return r.Value
}

func init() {
	convertCmd.AddCommand(toPipCmd, fromPipCmd)
	rootCmd.AddCommand(convertCmd)
}
