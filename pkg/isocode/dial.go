package isocode

import "strings"

// DialCode is an international dialing prefix.
type DialCode struct {
	prefix  string
	country *Country
}

// Prefix returns the digits without the leading plus sign, e.g. "81".
func (d *DialCode) Prefix() string { return d.prefix }

// Country returns the country the prefix belongs to.
func (d *DialCode) Country() *Country { return d.country }

// String returns the prefix with its plus sign, e.g. "+81".
func (d *DialCode) String() string { return "+" + d.prefix }

// LookupDialCode resolves a prefix given with or without the plus sign.
// Shared prefixes ("1", "7") resolve to their preferred country.
func (t *Table) LookupDialCode(prefix string) *DialCode {
	prefix = strings.TrimPrefix(strings.TrimSpace(prefix), "+")
	if prefix == "" {
		return nil
	}
	return t.dialByPrefix[prefix]
}

// DialCodeByPhone finds the longest registered prefix of an international
// number such as "+81 3 1234 5678". The number must start with "+".
func (t *Table) DialCodeByPhone(phone string) *DialCode {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return nil
	}
	digits := phone[1:]
	for n := min(t.maxDialPrefix, len(digits)); n > 0; n-- {
		if d, ok := t.dialByPrefix[digits[:n]]; ok {
			return d
		}
	}
	return nil
}

// CountryByPhone returns the country of the number's dialing prefix, or nil.
func (t *Table) CountryByPhone(phone string) *Country {
	if d := t.DialCodeByPhone(phone); d != nil {
		return d.country
	}
	return nil
}

// StripDialCode removes the "+prefix" part of phone and any separator that
// follows it. The input is returned unchanged when no prefix matches.
func (t *Table) StripDialCode(phone string) string {
	d := t.DialCodeByPhone(phone)
	if d == nil {
		return phone
	}
	rest := strings.TrimSpace(phone)[1+len(d.prefix):]
	return strings.TrimLeft(rest, " -.")
}

// DialCodes returns every dial code entry in table order.
func (t *Table) DialCodes() []*DialCode { return cloneSlice(t.dialCodes) }
