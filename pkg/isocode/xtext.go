package isocode

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Base converts l to an x/text language base. The undefined language maps to "und".
func (l *Language) Base() (language.Base, error) {
	if l.IsUndefined() {
		return language.ParseBase("und")
	}
	return language.ParseBase(l.code)
}

// Region converts c to an x/text region. The undefined country maps to "ZZ".
func (c *Country) Region() (language.Region, error) {
	if c.IsUndefined() {
		return language.ParseRegion("ZZ")
	}
	return language.ParseRegion(c.alpha2)
}

// Script converts s to an x/text script. The undefined script maps to "Zzzz".
func (s *Script) Script() (language.Script, error) {
	if s.IsUndefined() {
		return language.ParseScript("Zzzz")
	}
	return language.ParseScript(s.code)
}

// Unit converts c to an x/text currency unit. The undefined currency maps to XXX.
func (c *Currency) Unit() (currency.Unit, error) {
	if c.IsUndefined() {
		return currency.XXX, nil
	}
	return currency.ParseISO(c.code)
}

// Tag converts l to a BCP 47 tag without applying any canonicalization, so
// withdrawn regions such as CS are kept. The undefined locale maps to "und".
func (l *Locale) Tag() (language.Tag, error) {
	if l.IsUndefined() {
		return language.Und, nil
	}
	return language.Raw.Parse(l.String())
}

// LanguageByTag returns the ISO 639-1 entry for the base language of tag.
// "fr-CA" yields "fr"; an empty tag yields the undefined language.
func (t *Table) LanguageByTag(tag language.Tag) *Language {
	base, _, _ := tag.Raw()
	if base.String() == "und" {
		return t.languageByCode[undefinedLanguage]
	}
	return t.LookupLanguage(base.String(), true)
}

// CountryByTag returns the country of tag's region subtag. A tag without a
// region yields the undefined country.
func (t *Table) CountryByTag(tag language.Tag) *Country {
	_, _, region := tag.Raw()
	if region.String() == "ZZ" {
		return t.countryByAlpha2[undefinedCountry]
	}
	return t.LookupCountry(region.String(), true)
}

// LocaleByTag returns the table locale for tag's base language and region.
// Script and variant subtags are ignored. An empty tag yields the undefined
// locale.
func (t *Table) LocaleByTag(tag language.Tag) *Locale {
	base, _, region := tag.Raw()
	if base.String() == "und" {
		if region.String() == "ZZ" {
			return t.undefinedLocale
		}
		return nil
	}
	l := t.LookupLanguage(base.String(), true)
	if l == nil {
		return nil
	}
	if region.String() == "ZZ" {
		return t.LocaleOf(l, nil)
	}
	c := t.LookupCountry(region.String(), true)
	if c == nil {
		return nil
	}
	return t.LocaleOf(l, c)
}
