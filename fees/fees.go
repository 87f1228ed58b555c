// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import "github.com/holiman/uint256"

const (
	// UnitPrice is the pip value of one fee unit.
	UnitPrice = 1_000_000_000_000_000

	// ByteUnits is charged for every byte of the payload and service data
	// fields.
	ByteUnits = 2
)

// Dimensions are the inputs of the fee formula.
type Dimensions struct {
	// Commission is the fixed unit cost of the transaction type.
	Commission uint64
	// Bytes is len(payload) + len(serviceData).
	Bytes uint64
}

// Units returns the total fee units of d.
func (d Dimensions) Units() *uint256.Int {
	units := new(uint256.Int).Mul(uint256.NewInt(d.Bytes), uint256.NewInt(ByteUnits))
	return units.Add(units, uint256.NewInt(d.Commission))
}

// Fee returns the pip fee of d.
func (d Dimensions) Fee() *uint256.Int {
	units := d.Units()
	return units.Mul(units, uint256.NewInt(UnitPrice))
}

// Calculate is Dimensions{commission, payload+service}.Fee().
func Calculate(commission uint64, payloadLen int, serviceLen int) *uint256.Int {
	return Dimensions{
		Commission: commission,
		Bytes:      uint64(payloadLen) + uint64(serviceLen),
	}.Fee()
}
