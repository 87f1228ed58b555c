// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-blockchain/noah-go-sdk/actions"
	"github.com/noah-blockchain/noah-go-sdk/chain"
	"github.com/noah-blockchain/noah-go-sdk/cli/prompt"
	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/consts"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var errInvalidJSON = errors.New("invalid JSON input")

type fieldKind uint8

const (
	textField fieldKind = iota
	symbolField
	amountField
	addressField
	publicKeyField
	uintField
	hexField
	checkField
	jsonField
)

type txField struct {
	name string
	kind fieldKind
}

type txVariant struct {
	use    string
	typeID uint8
	fields []txField
}

var txVariants = []txVariant{
	{"send", consts.SendCoinID, []txField{{"coin", symbolField}, {"to", addressField}, {"value", amountField}}},
	{"sell", consts.SellCoinID, []txField{{"coinToSell", symbolField}, {"valueToSell", amountField}, {"coinToBuy", symbolField}, {"minimumValueToBuy", amountField}}},
	{"sell-all", consts.SellAllCoinID, []txField{{"coinToSell", symbolField}, {"coinToBuy", symbolField}, {"minimumValueToBuy", amountField}}},
	{"buy", consts.BuyCoinID, []txField{{"coinToBuy", symbolField}, {"valueToBuy", amountField}, {"coinToSell", symbolField}, {"maximumValueToSell", amountField}}},
	{"create-coin", consts.CreateCoinID, []txField{{"name", textField}, {"symbol", symbolField}, {"initialAmount", amountField}, {"initialReserve", amountField}, {"crr", uintField}}},
	{"declare", consts.DeclareCandidacyID, []txField{{"address", addressField}, {"pubkey", publicKeyField}, {"commission", uintField}, {"coin", symbolField}, {"stake", amountField}}},
	{"delegate", consts.DelegateID, []txField{{"pubkey", publicKeyField}, {"coin", symbolField}, {"stake", amountField}}},
	{"unbond", consts.UnbondID, []txField{{"pubkey", publicKeyField}, {"coin", symbolField}, {"value", amountField}}},
	{"redeem", consts.RedeemCheckID, []txField{{"check", checkField}, {"proof", hexField}}},
	{"candidate-on", consts.SetCandidateOnlineID, []txField{{"pubkey", publicKeyField}}},
	{"candidate-off", consts.SetCandidateOfflineID, []txField{{"pubkey", publicKeyField}}},
	{"multisend", consts.MultiSendID, []txField{{"list", jsonField}}},
	{"edit-candidate", consts.EditCandidateID, []txField{{"pubkey", publicKeyField}, {"reward_address", addressField}, {"owner_address", addressField}}},
}

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Build, sign and decode transactions",
}

func newTxVariantCmd(v txVariant) *cobra.Command {
	cmd := &cobra.Command{
		Use:   v.use,
		Short: fmt.Sprintf("Sign a %s transaction", actions.Name(v.typeID)),
		RunE: func(cmd *cobra.Command, _ []string) error {
			data := codec.Fields{}
			for _, f := range v.fields {
				value, err := cmd.Flags().GetString(f.name)
				if err != nil {
					return err
				}
				if value == "" {
					if value, err = promptField(f); err != nil {
						return err
					}
				}
				if f.kind == jsonField {
					list, err := decodeJSON(value)
					if err != nil {
						return err
					}
					data[f.name] = list
					continue
				}
				data[f.name] = value
			}
			return signTx(cmd, v.typeID, data)
		},
	}
	for _, f := range v.fields {
		cmd.Flags().String(f.name, "", fmt.Sprintf("%s (prompted when empty)", f.name))
	}
	addEnvelopeFlags(cmd)
	return cmd
}

// promptField asks for a missing value and returns it in semantic form.
func promptField(f txField) (string, error) {
	switch f.kind {
	case symbolField:
		return prompt.Symbol(f.name)
	case amountField:
		v, err := prompt.Amount(f.name, nil)
		if err != nil {
			return "", err
		}
		return utils.FormatBalance(v), nil
	case addressField:
		a, err := prompt.Address(f.name)
		if err != nil {
			return "", err
		}
		return a.String(), nil
	case publicKeyField:
		pk, err := prompt.PublicKey(f.name)
		if err != nil {
			return "", err
		}
		return pk.String(), nil
	case uintField:
		n, err := prompt.Uint(f.name, consts.MaxUint64)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(n), nil
	default:
		return prompt.String(f.name, 1, 1<<16)
	}
}

func addEnvelopeFlags(cmd *cobra.Command) {
	cmd.Flags().String("nonce", "", "Sender nonce (prompted when empty)")
	cmd.Flags().String("payload", "", "Free-form payload text")
	cmd.Flags().String("service-data", "", "Free-form service data text")
}

func decodeJSON(s string) (any, error) {
	d := json.NewDecoder(strings.NewReader(s))
	d.UseNumber()
	var v any
	if err := d.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return v, nil
}

func signTx(cmd *cobra.Command, typeID uint8, data codec.Fields) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	key, err := loadKey(cmd)
	if err != nil {
		return err
	}
	nonce, err := cmd.Flags().GetString("nonce")
	if err != nil {
		return err
	}
	if nonce == "" {
		n, err := prompt.Nonce("nonce")
		if err != nil {
			return err
		}
		nonce = fmt.Sprint(n)
	}
	payload, err := cmd.Flags().GetString("payload")
	if err != nil {
		return err
	}
	serviceData, err := cmd.Flags().GetString("service-data")
	if err != nil {
		return err
	}

	tx, err := chain.BuildTx(codec.Fields{
		"nonce":       nonce,
		"chainId":     cfg.ChainID,
		"gasPrice":    cfg.GasPrice,
		"gasCoin":     cfg.GasCoin,
		"type":        typeID,
		"data":        data,
		"payload":     payload,
		"serviceData": serviceData,
	})
	if err != nil {
		return fmt.Errorf("failed to build tx: %w", err)
	}
	factory, err := key.Factory()
	if err != nil {
		return err
	}
	if _, err := tx.Sign(factory); err != nil {
		return fmt.Errorf("failed to sign tx: %w", err)
	}
	resp, err := newTxResponse(tx)
	if err != nil {
		return err
	}
	log.Debug("signed transaction",
		zap.String("type", actions.Name(typeID)),
		zap.String("hash", resp.Hash),
		zap.Stringer("from", key.Address),
		zap.Uint8("chainId", cfg.ChainID),
	)
	return printValue(cmd, resp)
}

var txBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Sign a transaction of any registered type from JSON data",
	RunE: func(cmd *cobra.Command, _ []string) error {
		typeName, err := cmd.Flags().GetString("type")
		if err != nil {
			return err
		}
		typeID, err := lookupType(typeName)
		if err != nil {
			return err
		}
		raw, err := cmd.Flags().GetString("data")
		if err != nil {
			return err
		}
		v, err := decodeJSON(raw)
		if err != nil {
			return err
		}
		data, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: data must be an object", errInvalidJSON)
		}
		return signTx(cmd, typeID, data)
	},
}

// lookupType accepts a numeric code or a registered name.
func lookupType(s string) (uint8, error) {
	if e, ok := actions.Parser.LookupName(s); ok {
		return e.ID, nil
	}
	var id uint8
	if _, err := fmt.Sscan(s, &id); err != nil {
		return 0, fmt.Errorf("%w: %q", actions.ErrUnknownTransactionType, s)
	}
	if _, ok := actions.Parser.LookupIndex(id); !ok {
		return 0, fmt.Errorf("%w: %d", actions.ErrUnknownTransactionType, id)
	}
	return id, nil
}

var txDecodeCmd = &cobra.Command{
	Use:   "decode <0x...>",
	Short: "Decode a signed transaction and recover its sender",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tx, err := chain.ParseTx(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("failed to decode tx: %w", err)
		}
		resp, err := newTxResponse(tx)
		if err != nil {
			return err
		}
		resp.Fields = tx.Fields()
		return printValue(cmd, resp)
	},
}

type txResponse struct {
	Tx     string       `json:"tx"`
	Hash   string       `json:"hash"`
	Fee    string       `json:"fee"`
	From   string       `json:"from"`
	Fields codec.Fields `json:"fields,omitempty"`
}

func newTxResponse(tx *chain.Transaction) (*txResponse, error) {
	hash, err := tx.Hash()
	if err != nil {
		return nil, err
	}
	fee, err := tx.Fee()
	if err != nil {
		return nil, err
	}
	from, err := tx.Sender()
	if err != nil {
		return nil, err
	}
	return &txResponse{
		Tx:   tx.String(),
		Hash: hash,
		Fee:  utils.FormatBalance(fee),
		From: from.String(),
	}, nil
}

func (r *txResponse) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tx: %s\nhash: %s\nfee: %s\nfrom: %s", r.Tx, r.Hash, r.Fee, r.From)
	if r.Fields != nil {
		fields, err := json.MarshalIndent(r.Fields, "", "  ")
		if err != nil {
			fields = []byte(fmt.Sprintf("%v", r.Fields))
		}
		fmt.Fprintf(&b, "\nfields: %s", fields)
	}
	return b.String()
}

func init() {
	for _, v := range txVariants {
		txCmd.AddCommand(newTxVariantCmd(v))
	}

	txBuildCmd.Flags().String("type", "", "Transaction type code or name (see types)")
	txBuildCmd.Flags().String("data", "", "Payload fields as a JSON object")
	addEnvelopeFlags(txBuildCmd)
	for _, name := range []string{"type", "data"} {
		if err := txBuildCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
	txCmd.AddCommand(txBuildCmd, txDecodeCmd)
	rootCmd.AddCommand(txCmd)
}
