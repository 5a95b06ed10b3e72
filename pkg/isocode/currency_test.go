package isocode_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/isocode/pkg/isocode"
)

func TestLookupCurrency(t *testing.T) {
	t.Parallel()

	yen := isocode.LookupCurrency("JPY", true)
	require.NotNil(t, yen)
	assert.Equal(t, "Yen", yen.Name())
	assert.Equal(t, 392, yen.Numeric())
	assert.Equal(t, 0, yen.MinorUnit())
	assert.Equal(t, "JPY", yen.String())

	assert.Nil(t, isocode.LookupCurrency("jpy", true))
	assert.Same(t, yen, isocode.LookupCurrency("jpy", false))
	assert.Same(t, yen, isocode.LookupCurrency("Jpy", false))
	assert.Nil(t, isocode.LookupCurrency("", false))
	assert.Nil(t, isocode.LookupCurrency("JP", false))
	assert.Nil(t, isocode.LookupCurrency("JPYY", false))

	undefined := isocode.LookupCurrency("UNDEFINED", true)
	require.NotNil(t, undefined)
	assert.True(t, undefined.IsUndefined())
	assert.Equal(t, -1, undefined.Numeric())
	assert.Equal(t, -1, undefined.MinorUnit())
	assert.Nil(t, isocode.LookupCurrency("undefined", true))
	assert.Same(t, undefined, isocode.LookupCurrency("undefined", false))
}

func TestCurrencyByNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		numeric int
		want    string
	}{
		{numeric: 392, want: "JPY"},
		{numeric: 978, want: "EUR"},
		{numeric: 840, want: "USD"},
		{numeric: 756, want: "CHF"},
		{numeric: 0, want: ""},
		{numeric: -1, want: ""},
		{numeric: 1, want: ""},
	}

	for _, tt := range tests {
		got := isocode.CurrencyByNumeric(tt.numeric)
		if tt.want == "" {
			assert.Nil(t, got, tt.numeric)
			continue
		}
		require.NotNil(t, got, tt.numeric)
		assert.Equal(t, tt.want, got.Code())
	}
}

func TestCurrency_Flags(t *testing.T) {
	t.Parallel()

	funds := []string{"BOV", "CHE", "CHW", "CLF", "COU", "MXV", "USN", "USS", "UYI"}
	metals := []string{"XAG", "XAU", "XPD", "XPT"}

	for _, c := range isocode.Default().Currencies() {
		assert.Equal(t, slices.Contains(funds, c.Code()), c.IsFund(), c.Code())
		assert.Equal(t, slices.Contains(metals, c.Code()), c.IsPreciousMetal(), c.Code())
	}
}

func TestCurrenciesByCountry(t *testing.T) {
	t.Parallel()

	ch := isocode.LookupCountry("CH", true)
	require.NotNil(t, ch)
	assert.Equal(t, []string{"CHE", "CHF", "CHW"}, currencyCodes(isocode.CurrenciesByCountry(ch)))

	li := isocode.LookupCountry("LI", true)
	assert.Equal(t, []string{"CHF"}, currencyCodes(isocode.CurrenciesByCountry(li)))

	assert.Empty(t, isocode.CurrenciesByCountry(nil))
	assert.NotNil(t, isocode.CurrenciesByCountry(nil))

	chf := isocode.LookupCurrency("CHF", true)
	require.NotNil(t, chf)
	assert.Equal(t, []*isocode.Country{ch, li}, chf.Countries())

	tbl := isocode.Default()
	assert.Equal(t, []string{"CHE", "CHF", "CHW"}, currencyCodes(tbl.CurrenciesByCountryCode("che", false)))
	assert.Empty(t, tbl.CurrenciesByCountryCode("QQ", true))
}

func currencyCodes(list []*isocode.Currency) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Code())
	}
	return out
}
