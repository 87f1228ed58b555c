// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prompt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/manifoldco/promptui"

	"github.com/noah-blockchain/noah-go-sdk/codec"
	"github.com/noah-blockchain/noah-go-sdk/utils"
)

var (
	ErrInputEmpty      = errors.New("input is empty")
	ErrInputTooLarge   = errors.New("input is too large")
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrIndexOutOfRange = errors.New("index out-of-range")
)

func Bytes(label string) ([]byte, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := codec.LoadHex(input, -1)
			return err
		},
	}
	hexString, err := promptText.Run()
	if err != nil {
		return nil, err
	}
	return codec.LoadHex(hexString, -1)
}

func Address(label string) (codec.Address, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := codec.ParseAddress(strings.TrimSpace(input))
			return err
		},
	}
	recipient, err := promptText.Run()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.ParseAddress(strings.TrimSpace(recipient))
}

func PublicKey(label string) (codec.PublicKey, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := codec.ParsePublicKey(strings.TrimSpace(input))
			return err
		},
	}
	pk, err := promptText.Run()
	if err != nil {
		return nil, err
	}
	return codec.ParsePublicKey(strings.TrimSpace(pk))
}

func String(label string, minLen int, maxLen int) (string, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) < minLen {
				return ErrInputEmpty
			}
			if len(input) > maxLen {
				return ErrInputTooLarge
			}
			return nil
		},
	}
	text, err := promptText.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Symbol prompts for a coin symbol that fits the 10 byte wire field.
func Symbol(label string) (string, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			input = strings.TrimSpace(input)
			if len(input) == 0 {
				return ErrInputEmpty
			}
			_, err := codec.EncodeSymbol(input)
			return err
		},
	}
	symbol, err := promptText.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(symbol), nil
}

// Password prompts without echoing the input.
func Password(label string) (string, error) {
	promptText := promptui.Prompt{
		Label: label,
		Mask:  '*',
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			return nil
		},
	}
	return promptText.Run()
}

// Amount prompts for a whole-coin amount and returns it in pip.
func Amount(
	label string,
	f func(input *uint256.Int) error,
) (*uint256.Int, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			amount, err := utils.ParseBalance(strings.TrimSpace(input))
			if err != nil {
				return err
			}
			if f != nil {
				return f(amount)
			}
			return nil
		},
	}
	rawAmount, err := promptText.Run()
	if err != nil {
		return nil, err
	}
	return utils.ParseBalance(strings.TrimSpace(rawAmount))
}

func Uint(
	label string,
	maxValue uint64,
) (uint64, error) {
	stringToUint := func(input string, maxValue uint64) (uint64, error) {
		input = strings.TrimSpace(input)

		if len(input) == 0 {
			return 0, ErrInputEmpty
		}
		amount, err := strconv.ParseUint(input, 10, 64)
		if err != nil {
			return 0, err
		}
		if amount > maxValue {
			return 0, fmt.Errorf("%d must be <= %d", amount, maxValue)
		}
		return amount, nil
	}

	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			_, err := stringToUint(input, maxValue)
			return err
		},
	}
	rawAmount, err := promptText.Run()
	if err != nil {
		return 0, err
	}
	return stringToUint(rawAmount, maxValue)
}

func Nonce(label string) (uint64, error) {
	return Uint(label, math.MaxUint64)
}

func Choice(label string, maxChoice int) (int, error) {
	if maxChoice == 1 {
		utils.Outf("{{yellow}}%s:{{/}} 0 [auto-selected]\n", label)
		return 0, nil
	}
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			index, err := strconv.Atoi(input)
			if err != nil {
				return err
			}
			if index >= maxChoice || index < 0 {
				return ErrIndexOutOfRange
			}
			return nil
		},
	}
	rawIndex, err := promptText.Run()
	if err != nil {
		return -1, err
	}
	return strconv.Atoi(rawIndex)
}

func Continue() (bool, error) {
	promptText := promptui.Prompt{
		Label: "continue (y/n)",
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			lower := strings.ToLower(input)
			if lower == "y" || lower == "n" {
				return nil
			}
			return ErrInvalidChoice
		},
	}
	rawContinue, err := promptText.Run()
	if err != nil {
		return false, err
	}
	cont := strings.ToLower(rawContinue)
	if cont == "n" {
		utils.Outf("{{red}}exiting...{{/}}\n")
		return false, nil
	}
	return true, nil
}
