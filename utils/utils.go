// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/consts"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

var ErrPrecision = errors.New("invalid amount")

// Outputs to stdout.
//
// e.g.,
//
//	Out("{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Out("{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}

// ParseBalance converts a whole-coin decimal string into pip. Fraction digits
// past [consts.Decimals] are truncated.
func ParseBalance(bal string) (*uint256.Int, error) {
	whole, frac, _ := strings.Cut(bal, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q", ErrPrecision, bal)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q is not a decimal number", ErrPrecision, bal)
	}
	if len(frac) > consts.Decimals {
		frac = frac[:consts.Decimals]
	}
	digits := strings.TrimLeft(whole+frac+strings.Repeat("0", consts.Decimals-len(frac)), "0")
	if digits == "" {
		return new(uint256.Int), nil
	}
	v, err := uint256.FromDecimal(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrPrecision, bal, err)
	}
	return v, nil
}

// FormatBalance converts pip into a whole-coin decimal string with trailing
// zeros and a trailing point removed.
func FormatBalance(bal *uint256.Int) string {
	if bal == nil || bal.IsZero() {
		return "0"
	}
	digits := bal.Dec()
	if len(digits) <= consts.Decimals {
		digits = strings.Repeat("0", consts.Decimals-len(digits)+1) + digits
	}
	split := len(digits) - consts.Decimals
	whole, frac := digits[:split], strings.TrimRight(digits[split:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

// ToPip is the string form of ParseBalance.
func ToPip(bal string) (string, error) {
	v, err := ParseBalance(bal)
	if err != nil {
		return "", err
	}
	return v.Dec(), nil
}

// FromPip is the string form of FormatBalance.
func FromPip(pip string) (string, error) {
	if pip == "" || !isDigits(pip) {
		return "", fmt.Errorf("%w: %q is not an integer", ErrPrecision, pip)
	}
	digits := strings.TrimLeft(pip, "0")
	if digits == "" {
		return "0", nil
	}
	v, err := uint256.FromDecimal(digits)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrPrecision, pip, err)
	}
	return FormatBalance(v), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
