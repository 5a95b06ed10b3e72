package isocode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/isocode/pkg/isocode"
)

func TestLookupCountry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		code          string
		caseSensitive bool
		want          string
	}{
		{name: "alpha-2", code: "JP", caseSensitive: true, want: "JP"},
		{name: "alpha-2 lower strict", code: "jp", caseSensitive: true, want: ""},
		{name: "alpha-2 lower folded", code: "jp", caseSensitive: false, want: "JP"},
		{name: "alpha-3", code: "JPN", caseSensitive: true, want: "JP"},
		{name: "alpha-3 folded", code: "jpn", caseSensitive: false, want: "JP"},
		{name: "shared alpha-3 FIN", code: "FIN", caseSensitive: true, want: "FI"},
		{name: "withdrawn alpha-3 ANT", code: "ANT", caseSensitive: true, want: "AN"},
		{name: "alpha-4 ANHH", code: "ANHH", caseSensitive: true, want: "AN"},
		{name: "alpha-3 BUR", code: "BUR", caseSensitive: true, want: "BU"},
		{name: "alpha-4 BUMM", code: "BUMM", caseSensitive: true, want: "BU"},
		{name: "alpha-3 SCG", code: "SCG", caseSensitive: true, want: "CS"},
		{name: "alpha-4 CSXX", code: "CSXX", caseSensitive: true, want: "CS"},
		{name: "alpha-3 NTZ", code: "NTZ", caseSensitive: true, want: "NT"},
		{name: "alpha-4 NTHH", code: "NTHH", caseSensitive: true, want: "NT"},
		{name: "alpha-3 TMP", code: "TMP", caseSensitive: true, want: "TP"},
		{name: "alpha-4 TPTL", code: "TPTL", caseSensitive: true, want: "TP"},
		{name: "alpha-3 YUG", code: "YUG", caseSensitive: true, want: "YU"},
		{name: "alpha-4 YUCS", code: "YUCS", caseSensitive: true, want: "YU"},
		{name: "alpha-3 ZAR", code: "ZAR", caseSensitive: true, want: "ZR"},
		{name: "alpha-4 ZRCD", code: "ZRCD", caseSensitive: true, want: "ZR"},
		{name: "alpha-4 folded", code: "zrcd", caseSensitive: false, want: "ZR"},
		{name: "reserved UK", code: "UK", caseSensitive: true, want: "UK"},
		{name: "sentinel", code: "UNDEFINED", caseSensitive: true, want: "UNDEFINED"},
		{name: "sentinel lower strict", code: "undefined", caseSensitive: true, want: ""},
		{name: "sentinel lower folded", code: "undefined", caseSensitive: false, want: "UNDEFINED"},
		{name: "empty", code: "", caseSensitive: false, want: ""},
		{name: "unknown", code: "QQ", caseSensitive: true, want: ""},
		{name: "five letters", code: "JAPAN", caseSensitive: false, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := isocode.LookupCountry(tt.code, tt.caseSensitive)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Alpha2())
		})
	}
}

func TestCountryByNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		numeric int
		want    string
	}{
		{name: "japan", numeric: 392, want: "JP"},
		{name: "MM over BU", numeric: 104, want: "MM"},
		{name: "CD over ZR", numeric: 180, want: "CD"},
		{name: "FI over SF", numeric: 246, want: "FI"},
		{name: "GB over UK", numeric: 826, want: "GB"},
		{name: "TL over TP", numeric: 626, want: "TL"},
		{name: "CS over YU", numeric: 891, want: "CS"},
		{name: "payment industry alias", numeric: 280, want: "DE"},
		{name: "metropolitan france", numeric: 249, want: "FX"},
		{name: "ussr", numeric: 810, want: "SU"},
		{name: "zero", numeric: 0, want: ""},
		{name: "negative", numeric: -1, want: ""},
		{name: "unassigned", numeric: 999, want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := isocode.CountryByNumeric(tt.numeric)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Alpha2())
		})
	}
}

func TestCountryByNumeric_Stable(t *testing.T) {
	t.Parallel()

	for _, c := range isocode.Default().Countries() {
		if c.Numeric() <= 0 {
			continue
		}
		first := isocode.CountryByNumeric(c.Numeric())
		require.NotNil(t, first, c.Alpha2())
		assert.Equal(t, c.Numeric(), first.Numeric())
		assert.Same(t, first, isocode.CountryByNumeric(c.Numeric()))
	}
}

func TestCountry_Attributes(t *testing.T) {
	t.Parallel()

	uk := isocode.LookupCountry("UK", true)
	require.NotNil(t, uk)
	assert.Equal(t, "United Kingdom", uk.Name())
	assert.Empty(t, uk.Alpha3())
	assert.Equal(t, 826, uk.Numeric())
	assert.Equal(t, isocode.ExceptionallyReserved, uk.Assignment())

	zr := isocode.LookupCountry("ZR", true)
	require.NotNil(t, zr)
	assert.Equal(t, "ZRCD", zr.Alpha4())
	assert.Equal(t, 180, zr.Numeric())
	assert.Equal(t, isocode.TransitionallyReserved, zr.Assignment())
	assert.Equal(t, "transitionally-reserved", zr.Assignment().String())

	jp := isocode.LookupCountry("JP", true)
	require.NotNil(t, jp)
	assert.Equal(t, "Japan", jp.Name())
	assert.Equal(t, "JPN", jp.Alpha3())
	assert.Empty(t, jp.Alpha4())
	assert.Equal(t, isocode.OfficiallyAssigned, jp.Assignment())
	assert.Equal(t, "JP", jp.String())

	undefined := isocode.LookupCountry("UNDEFINED", true)
	require.NotNil(t, undefined)
	assert.True(t, undefined.IsUndefined())
	assert.Equal(t, -1, undefined.Numeric())
}

func TestCountries_Alpha3Length(t *testing.T) {
	t.Parallel()

	for _, c := range isocode.Default().Countries() {
		if c.Alpha3() == "" {
			continue
		}
		assert.Len(t, c.Alpha3(), 3, c.Alpha2())
	}
}
