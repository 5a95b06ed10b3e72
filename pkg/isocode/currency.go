package isocode

// Currency is an ISO 4217 currency code.
type Currency struct {
	code          string
	name          string
	numeric       int
	minorUnit     int
	countries     []*Country
	fund          bool
	preciousMetal bool
}

// Code returns the alphabetic code, e.g. "JPY".
func (c *Currency) Code() string { return c.code }

// Name returns the English name.
func (c *Currency) Name() string { return c.name }

// Numeric returns the ISO 4217 numeric code, or -1 for the sentinel.
func (c *Currency) Numeric() int { return c.numeric }

// MinorUnit returns the number of decimal places, or -1 when not applicable
// (precious metals, testing codes).
func (c *Currency) MinorUnit() int { return c.minorUnit }

// Countries returns the countries using this currency in table order.
func (c *Currency) Countries() []*Country { return cloneSlice(c.countries) }

// IsFund reports whether the code denotes a fund rather than a circulating currency.
func (c *Currency) IsFund() bool { return c.fund }

// IsPreciousMetal reports whether c is a precious metal unit such as XAU.
func (c *Currency) IsPreciousMetal() bool { return c.preciousMetal }

// IsUndefined reports whether c is the "UNDEFINED" sentinel.
func (c *Currency) IsUndefined() bool { return c.code == undefinedCurrency }

// String returns the code.
func (c *Currency) String() string { return c.code }

// LookupCurrency resolves a three-letter currency code.
func (t *Table) LookupCurrency(code string, caseSensitive bool) *Currency {
	key, ok := t.CanonicalCurrency(code, caseSensitive)
	if !ok {
		return nil
	}
	return t.currencyByCode[key]
}

// CurrencyByNumeric resolves a numeric currency code. Values <= 0 never match.
func (t *Table) CurrencyByNumeric(n int) *Currency {
	if n <= 0 {
		return nil
	}
	return t.currencyByNumeric[n]
}

// CurrenciesByCountry lists the currencies used in c, in table order.
// A nil country yields an empty slice.
func (t *Table) CurrenciesByCountry(c *Country) []*Currency {
	if c == nil {
		return []*Currency{}
	}
	return cloneSlice(t.currenciesByCountry[c])
}

// CurrenciesByCountryCode is CurrenciesByCountry for a country code string.
func (t *Table) CurrenciesByCountryCode(code string, caseSensitive bool) []*Currency {
	return t.CurrenciesByCountry(t.LookupCountry(code, caseSensitive))
}

// Currencies returns every currency entry in table order.
func (t *Table) Currencies() []*Currency { return cloneSlice(t.currencies) }
