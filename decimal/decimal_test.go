// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package decimal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var stringTestCases = []struct {
	s string
	h uint64
	l uint64
}{
	{"0", 0x3040000000000000, 0},
	{"1", 0x3040000000000000, 1},
	{"-1", 0xB040000000000000, 1},
	{"12345", 0x3040000000000000, 12345},
	{"-12345", 0xB040000000000000, 12345},
	{"1.5", 0x303E000000000000, 15},
	{"0.001", 0x303A000000000000, 1},
	{"NaN", 0x7C00000000000000, 0},
	{"Infinity", 0x7800000000000000, 0},
	{"-Infinity", 0xF800000000000000, 0},
}

func TestDecimal128String(t *testing.T) {
	for _, tc := range stringTestCases {
		t.Run(tc.s, func(t *testing.T) {
			d := NewDecimal128(tc.h, tc.l)
			if got := d.String(); got != tc.s {
				t.Errorf("Strings do not match. got %s; want %s", got, tc.s)
			}
		})
	}
}

func TestParseDecimal128(t *testing.T) {
	t.Run("round-trip", func(t *testing.T) {
		for _, tc := range stringTestCases {
			t.Run(tc.s, func(t *testing.T) {
				d, err := ParseDecimal128(tc.s)
				require.NoError(t, err)
				h, l := d.GetBytes()
				if h != tc.h || l != tc.l {
					t.Errorf("Bits do not match. got (%#x, %#x); want (%#x, %#x)", h, l, tc.h, tc.l)
				}
			})
		}
	})
	t.Run("exponent", func(t *testing.T) {
		d, err := ParseDecimal128("1E+3")
		require.NoError(t, err)
		if got := d.String(); got != "1E+3" {
			t.Errorf("Strings do not match. got %s; want 1E+3", got)
		}
	})
	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"", "abc", "1.2.3", "--1"} {
			_, err := ParseDecimal128(s)
			if err == nil {
				t.Errorf("Expected an error parsing %q", s)
			}
		}
	})
	t.Run("special-values", func(t *testing.T) {
		d, err := ParseDecimal128("nan")
		require.NoError(t, err)
		require.True(t, d.IsNaN())

		d, err = ParseDecimal128("inf")
		require.NoError(t, err)
		require.Equal(t, 1, d.IsInf())

		d, err = ParseDecimal128("-inf")
		require.NoError(t, err)
		require.Equal(t, -1, d.IsInf())
	})
}
