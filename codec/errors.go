// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrTooManyItems       = errors.New("too many items")
	ErrDuplicateItem      = errors.New("duplicate item")
	ErrInsufficientLength = errors.New("insufficient length")
	ErrInvalidSize        = errors.New("invalid size")
	ErrPrefixMismatch     = errors.New("prefix mismatch")
	ErrSymbolTooLong      = errors.New("symbol too long")
	ErrInvalidItem        = errors.New("invalid item")
	ErrTrailingItems      = errors.New("trailing items")
	ErrNonCanonicalInt    = errors.New("non-canonical integer")

	ErrFieldCountMismatch = errors.New("field count mismatch")
	ErrUndefinedField     = errors.New("undefined field")
	ErrUnexpectedField    = errors.New("unexpected field")
	ErrInvalidFieldType   = errors.New("invalid field type")
)
