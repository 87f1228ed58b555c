// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrInvalidStructure         = errors.New("invalid transaction structure")
	ErrTransactionNotSigned     = errors.New("transaction not signed")
	ErrNotSignable              = errors.New("decoded transaction cannot be signed")
	ErrPayloadMissing           = errors.New("payload missing")
	ErrNonCanonical             = errors.New("non-canonical encoding")
	ErrTypeMismatch             = errors.New("payload type mismatch")
	ErrUnsupportedSignatureType = errors.New("unsupported signature type")
	ErrModified                 = errors.New("transaction modified after signing")
)
