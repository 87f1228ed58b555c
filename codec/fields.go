// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/noah-blockchain/noah-go-sdk/utils"
)

// Fields is the semantic form of a record: amounts in whole coins, prefixed
// addresses and keys, plain symbols. Values decoded from JSON (float64,
// json.Number, string) are accepted wherever a number is expected.
//
// Amounts are the exception to whole-coin units when given as *uint256.Int,
// which is always taken as pip. Every other number or string is whole coins,
// so uint256.NewInt(1) is 1 pip while 1 and "1" are 10^18 pip.
type Fields map[string]any

// Require checks that f holds exactly the names in [order].
func (f Fields) Require(order []string) error {
	if len(f) != len(order) {
		return fmt.Errorf("%w: got %d fields, want %d", ErrFieldCountMismatch, len(f), len(order))
	}
	for _, name := range order {
		if _, ok := f[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUndefinedField, name)
		}
	}
	return nil
}

// Allow checks that every name in f is one of [names].
func (f Fields) Allow(names []string) error {
	for k := range f {
		found := false
		for _, name := range names {
			if k == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrUnexpectedField, k)
		}
	}
	return nil
}

// FieldReader pulls typed values out of Fields, keeping the first error.
type FieldReader struct {
	f   Fields
	err error
}

// NewFieldReader returns a reader over f. If [order] is non-nil, f must hold
// exactly those names.
func NewFieldReader(f Fields, order []string) *FieldReader {
	r := &FieldReader{f: f}
	if order != nil {
		r.err = f.Require(order)
	}
	return r
}

func (r *FieldReader) get(name string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.f[name]
	if !ok {
		r.err = fmt.Errorf("%w: %q", ErrUndefinedField, name)
		return nil, false
	}
	return v, true
}

func (r *FieldReader) typeErr(name string, v any) {
	r.err = fmt.Errorf("%w: %q has type %T", ErrInvalidFieldType, name, v)
}

func (r *FieldReader) String(name string) string {
	v, ok := r.get(name)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		r.typeErr(name, v)
		return ""
	}
}

// Symbol reads a coin symbol and rejects anything longer than SymbolLen.
func (r *FieldReader) Symbol(name string) string {
	s := r.String(name)
	if r.err != nil {
		return ""
	}
	if _, err := EncodeSymbol(s); err != nil {
		r.err = fmt.Errorf("%q: %w", name, err)
		return ""
	}
	return s
}

func (r *FieldReader) Uint64(name string) uint64 {
	v, ok := r.get(name)
	if !ok {
		return 0
	}
	n, err := toUint64(v)
	if err != nil {
		r.err = fmt.Errorf("%q: %w", name, err)
		return 0
	}
	return n
}

func (r *FieldReader) Uint8(name string) uint8 {
	n := r.Uint64(name)
	if r.err != nil {
		return 0
	}
	if n > math.MaxUint8 {
		r.err = fmt.Errorf("%w: %q value %d exceeds uint8", ErrInvalidFieldType, name, n)
		return 0
	}
	return uint8(n)
}

// Amount returns the amount in pip. A *uint256.Int is already pip; any other
// number or decimal string is whole coins.
func (r *FieldReader) Amount(name string) *uint256.Int {
	v, ok := r.get(name)
	if !ok {
		return nil
	}
	var s string
	switch n := v.(type) {
	case string:
		s = n
	case json.Number:
		s = n.String()
	case *uint256.Int:
		// Already in pip.
		return n.Clone()
	default:
		u, err := toUint64(v)
		if err != nil {
			r.err = fmt.Errorf("%q: %w", name, err)
			return nil
		}
		s = strconv.FormatUint(u, 10)
	}
	pip, err := utils.ParseBalance(s)
	if err != nil {
		r.err = fmt.Errorf("%q: %w", name, err)
		return nil
	}
	return pip
}

func (r *FieldReader) Address(name string) Address {
	v, ok := r.get(name)
	if !ok {
		return EmptyAddress
	}
	switch a := v.(type) {
	case Address:
		return a
	case string:
		addr, err := ParseAddress(a)
		if err != nil {
			r.err = fmt.Errorf("%q: %w", name, err)
			return EmptyAddress
		}
		return addr
	default:
		r.typeErr(name, v)
		return EmptyAddress
	}
}

func (r *FieldReader) PublicKey(name string) PublicKey {
	v, ok := r.get(name)
	if !ok {
		return nil
	}
	switch k := v.(type) {
	case PublicKey:
		return k
	case string:
		pk, err := ParsePublicKey(k)
		if err != nil {
			r.err = fmt.Errorf("%q: %w", name, err)
			return nil
		}
		return pk
	default:
		r.typeErr(name, v)
		return nil
	}
}

// Prefixed reads a string carrying [prefix] followed by hex.
func (r *FieldReader) Prefixed(name string, prefix string) []byte {
	s := r.String(name)
	if r.err != nil {
		return nil
	}
	b, err := DecodePrefixed(s, prefix, -1)
	if err != nil {
		r.err = fmt.Errorf("%q: %w", name, err)
		return nil
	}
	return b
}

// Hex reads an unprefixed (or 0x-prefixed) hex string.
func (r *FieldReader) Hex(name string) []byte {
	v, ok := r.get(name)
	if !ok {
		return nil
	}
	switch b := v.(type) {
	case []byte:
		return b
	case Bytes:
		return b
	case string:
		raw, err := LoadHex(b, -1)
		if err != nil {
			r.err = fmt.Errorf("%w: %q: %w", ErrInvalidFieldType, name, err)
			return nil
		}
		return raw
	default:
		r.typeErr(name, v)
		return nil
	}
}

// List reads a list of nested records.
func (r *FieldReader) List(name string) []Fields {
	v, ok := r.get(name)
	if !ok {
		return nil
	}
	switch l := v.(type) {
	case []Fields:
		return l
	case []map[string]any:
		out := make([]Fields, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out
	case []any:
		out := make([]Fields, len(l))
		for i, item := range l {
			switch m := item.(type) {
			case Fields:
				out[i] = m
			case map[string]any:
				out[i] = m
			default:
				r.err = fmt.Errorf("%w: %q[%d] has type %T", ErrInvalidFieldType, name, i, item)
				return nil
			}
		}
		return out
	default:
		r.typeErr(name, v)
		return nil
	}
}

// Record reads a nested set of fields.
func (r *FieldReader) Record(name string) Fields {
	v, ok := r.get(name)
	if !ok {
		return nil
	}
	switch m := v.(type) {
	case Fields:
		return m
	case map[string]any:
		return m
	default:
		r.typeErr(name, v)
		return nil
	}
}

// Has reports whether the field is present, without affecting the error.
func (r *FieldReader) Has(name string) bool {
	_, ok := r.f[name]
	return ok
}

func (r *FieldReader) Err() error {
	return r.err
}

func toUint64(v any) (uint64, error) {
	switch n := v.(type) {
	case uint8:
		return uint64(n), nil
	case uint16:
		return uint64(n), nil
	case uint32:
		return uint64(n), nil
	case uint64:
		return n, nil
	case uint:
		return uint64(n), nil
	case int:
		return signedToUint64(int64(n))
	case int32:
		return signedToUint64(int64(n))
	case int64:
		return signedToUint64(n)
	case float64:
		if n < 0 || n != math.Trunc(n) || n > 1<<53 {
			return 0, fmt.Errorf("%w: %v is not a whole number", ErrInvalidFieldType, n)
		}
		return uint64(n), nil
	case json.Number:
		return parseUint64(n.String())
	case string:
		return parseUint64(n)
	default:
		return 0, fmt.Errorf("%w: %T is not a number", ErrInvalidFieldType, v)
	}
}

func signedToUint64(n int64) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidFieldType, n)
	}
	return uint64(n), nil
}

func parseUint64(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidFieldType, err)
	}
	return n, nil
}
