// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrEmptyList              = errors.New("list is empty")
)
