// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		commission uint64
		payload    int
		service    int
		want       string
	}{
		{name: "send", commission: 10, want: "10000000000000000"},
		{name: "send with payload", commission: 10, payload: 5, want: "20000000000000000"},
		{name: "payload and service", commission: 100, payload: 3, service: 2, want: "110000000000000000"},
		{name: "multisend of three", commission: 20, want: "20000000000000000"},
		{name: "zero", want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Calculate(tt.commission, tt.payload, tt.service).Dec())
		})
	}
}

func TestDimensionsUnits(t *testing.T) {
	require := require.New(t)

	d := Dimensions{Commission: 1000, Bytes: 7}
	require.Equal(uint64(1014), d.Units().Uint64())
	require.Equal("1014000000000000000", d.Fee().Dec())
}
