// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/noah-blockchain/noah-go-sdk/config"
)

var errKeyRequired = errors.New("private key required (--key or config set key)")

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error getting home directory:", err)
		os.Exit(1)
	}

	configDir := filepath.Join(homeDir, ".noah-cli")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "Error creating config directory:", err)
		os.Exit(1)
	}

	configFile := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if _, err := os.Create(configFile); err != nil {
			fmt.Fprintln(os.Stderr, "Error creating config file:", err)
			os.Exit(1)
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
			os.Exit(1)
		}
	}

	configCmd.AddCommand(configSetCmd, configGetCmd)
	rootCmd.AddCommand(configCmd)
}

func isJSONOutputRequested(cmd *cobra.Command) (bool, error) {
	output, err := getConfigValue(cmd, config.OutputKey, false)
	if err != nil {
		return false, fmt.Errorf("failed to get output format: %w", err)
	}
	return strings.ToLower(output) == "json", nil
}

func printValue(cmd *cobra.Command, v fmt.Stringer) error {
	isJSON, err := isJSONOutputRequested(cmd)
	if err != nil {
		return err
	}

	if isJSON {
		jsonBytes, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}
	fmt.Println(v.String())
	return nil
}

func getConfigValue(cmd *cobra.Command, key string, required bool) (string, error) {
	// Check flags first
	if value, err := cmd.Flags().GetString(key); err == nil && value != "" {
		return value, nil
	}

	// Then check viper
	if value := viper.GetString(key); value != "" {
		return value, nil
	}

	if required {
		return "", fmt.Errorf("required value for %s not found", key)
	}

	return "", nil
}

func setConfigValue(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// loadConfig resolves every setting flag first, then from the config file,
// falling back to config.Default.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	for _, key := range config.Keys {
		value, err := getConfigValue(cmd, key, false)
		if err != nil {
			return nil, err
		}
		if value == "" {
			continue
		}
		if err := cfg.Set(key, value); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persisted settings",
	// Skips the root hook so an invalid stored value can still be fixed.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Default().Set(key, value); err != nil {
			return err
		}
		if err := setConfigValue(key, value); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		return printValue(cmd, configValueResponse{Key: key, Value: value})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a persisted setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if err := config.Default().Set(key, viper.GetString(key)); errors.Is(err, config.ErrUnknownKey) {
			return err
		}
		return printValue(cmd, configValueResponse{Key: key, Value: viper.GetString(key)})
	},
}

type configValueResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r configValueResponse) String() string {
	if r.Key == config.KeyKey && r.Value != "" {
		return r.Key + ": <set>"
	}
	return r.Key + ": " + r.Value
}
