package isocode

import "fmt"

// Assignment is the ISO 3166-1 status of a country code element.
type Assignment int

const (
	OfficiallyAssigned Assignment = iota + 1
	UserAssigned
	ExceptionallyReserved
	TransitionallyReserved
	IndeterminatelyReserved
	NotUsed
)

var assignmentNames = map[Assignment]string{
	OfficiallyAssigned:      "officially-assigned",
	UserAssigned:            "user-assigned",
	ExceptionallyReserved:   "exceptionally-reserved",
	TransitionallyReserved:  "transitionally-reserved",
	IndeterminatelyReserved: "indeterminately-reserved",
	NotUsed:                 "not-used",
}

// String returns the hyphenated status name, e.g. "officially-assigned".
func (a Assignment) String() string {
	if s, ok := assignmentNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Assignment(%d)", int(a))
}

func parseAssignment(s string) (Assignment, error) {
	for a, name := range assignmentNames {
		if name == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: assignment %q", ErrInvalidValue, s)
}

// Country is an ISO 3166-1 country code element.
type Country struct {
	alpha2     string
	alpha3     string
	alpha4     string
	numeric    int
	name       string
	assignment Assignment
}

// Alpha2 returns the canonical key, e.g. "JP".
func (c *Country) Alpha2() string { return c.alpha2 }

// Alpha3 returns the three-letter code, or "" when none is assigned.
func (c *Country) Alpha3() string { return c.alpha3 }

// Alpha4 returns the ISO 3166-3 code of a withdrawn country, or "".
func (c *Country) Alpha4() string { return c.alpha4 }

// Numeric returns the UN M.49 code, or -1 when none is assigned.
func (c *Country) Numeric() int { return c.numeric }

// Name returns the English short name.
func (c *Country) Name() string { return c.name }

// Assignment returns the ISO 3166-1 assignment status.
func (c *Country) Assignment() Assignment { return c.assignment }

// IsUndefined reports whether c is the "UNDEFINED" sentinel.
func (c *Country) IsUndefined() bool { return c.alpha2 == undefinedCountry }

// String returns the alpha-2 code.
func (c *Country) String() string { return c.alpha2 }

// LookupCountry resolves an alpha-2, alpha-3 or alpha-4 code. Where an alpha-3
// code is shared (FIN is listed for FI and SF) the preferred entry wins.
func (t *Table) LookupCountry(code string, caseSensitive bool) *Country {
	key, ok := t.CanonicalCountry(code, caseSensitive)
	if !ok {
		return nil
	}

	switch len(key) {
	case 2, len(undefinedCountry):
		return t.countryByAlpha2[key]
	case 3:
		return t.countryByAlpha3[key]
	case 4:
		return t.countryByAlpha4[key]
	default:
		return nil
	}
}

// CountryByNumeric resolves a numeric code. Shared codes yield the current
// country (826 is GB, not UK) and legacy aliases are honored (280 is DE).
// Values <= 0 never match.
func (t *Table) CountryByNumeric(n int) *Country {
	if n <= 0 {
		return nil
	}
	return t.countryByNumeric[n]
}

// Countries returns every country entry in table order.
func (t *Table) Countries() []*Country { return cloneSlice(t.countries) }
