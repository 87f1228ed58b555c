// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package check

import "errors"

var (
	ErrCheckNotSigned      = errors.New("check not signed")
	ErrMissingOwnerContext = errors.New("owner address not set")
	ErrNonceTooLong        = errors.New("nonce too long")
	ErrPassphraseMissing   = errors.New("passphrase missing")
	ErrInvalidLock         = errors.New("invalid lock")
	ErrNotSignable         = errors.New("decoded check cannot be signed")
	ErrNonCanonical        = errors.New("non-canonical encoding")
)
