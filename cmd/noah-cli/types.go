// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noah-blockchain/noah-go-sdk/actions"
	"github.com/noah-blockchain/noah-go-sdk/fees"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List registered transaction types and their base fees",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var resp typesResponse
		for _, id := range actions.Parser.IDs() {
			units, err := actions.BaseFeeUnits(id)
			if err != nil {
				return err
			}
			resp.Types = append(resp.Types, typeInfo{
				ID:   id,
				Name: actions.Name(id),
				Fee:  utils.FormatBalance(fees.Calculate(units, 0, 0)),
			})
		}
		return printValue(cmd, resp)
	},
}

type typeInfo struct {
	ID   uint8  `json:"id"`
	Name string `json:"name"`
	Fee  string `json:"fee"`
}

type typesResponse struct {
	Types []typeInfo `json:"types"`
}

func (r typesResponse) String() string {
	var b strings.Builder
	for _, t := range r.Types {
		fmt.Fprintf(&b, "%2d %-20s %s\n", t.ID, t.Name, t.Fee)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
