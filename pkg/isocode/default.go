package isocode

import (
	"regexp"

	"golang.org/x/text/language"
)

// Package-level functions operate on Default().

// LookupLanguage calls Table.LookupLanguage on the default table.
func LookupLanguage(code string, caseSensitive bool) *Language {
	return Default().LookupLanguage(code, caseSensitive)
}

// LookupLanguageAlpha3 calls Table.LookupLanguageAlpha3 on the default table.
func LookupLanguageAlpha3(code string, caseSensitive bool) *LanguageAlpha3 {
	return Default().LookupLanguageAlpha3(code, caseSensitive)
}

// LookupCountry calls Table.LookupCountry on the default table.
func LookupCountry(code string, caseSensitive bool) *Country {
	return Default().LookupCountry(code, caseSensitive)
}

// CountryByNumeric calls Table.CountryByNumeric on the default table.
func CountryByNumeric(n int) *Country { return Default().CountryByNumeric(n) }

// LookupCurrency calls Table.LookupCurrency on the default table.
func LookupCurrency(code string, caseSensitive bool) *Currency {
	return Default().LookupCurrency(code, caseSensitive)
}

// CurrencyByNumeric calls Table.CurrencyByNumeric on the default table.
func CurrencyByNumeric(n int) *Currency { return Default().CurrencyByNumeric(n) }

// CurrenciesByCountry calls Table.CurrenciesByCountry on the default table.
func CurrenciesByCountry(c *Country) []*Currency { return Default().CurrenciesByCountry(c) }

// LookupScript calls Table.LookupScript on the default table.
func LookupScript(code string, caseSensitive bool) *Script {
	return Default().LookupScript(code, caseSensitive)
}

// ScriptByNumeric calls Table.ScriptByNumeric on the default table.
func ScriptByNumeric(n int) *Script { return Default().ScriptByNumeric(n) }

// ParseLocale calls Table.ParseLocale on the default table.
func ParseLocale(code string, caseSensitive bool) *Locale {
	return Default().ParseLocale(code, caseSensitive)
}

// LookupLocale calls Table.LookupLocale on the default table.
func LookupLocale(language, country string, caseSensitive bool) *Locale {
	return Default().LookupLocale(language, country, caseSensitive)
}

// LocalesByLanguage calls Table.LocalesByLanguage on the default table.
func LocalesByLanguage(l *Language) []*Locale { return Default().LocalesByLanguage(l) }

// LocalesByCountry calls Table.LocalesByCountry on the default table.
func LocalesByCountry(c *Country) []*Locale { return Default().LocalesByCountry(c) }

// LookupDialCode calls Table.LookupDialCode on the default table.
func LookupDialCode(prefix string) *DialCode { return Default().LookupDialCode(prefix) }

// DialCodeByPhone calls Table.DialCodeByPhone on the default table.
func DialCodeByPhone(phone string) *DialCode { return Default().DialCodeByPhone(phone) }

// CountryByPhone calls Table.CountryByPhone on the default table.
func CountryByPhone(phone string) *Country { return Default().CountryByPhone(phone) }

// StripDialCode calls Table.StripDialCode on the default table.
func StripDialCode(phone string) string { return Default().StripDialCode(phone) }

// FindLanguagesByName calls Table.FindLanguagesByName on the default table.
func FindLanguagesByName(re *regexp.Regexp) ([]*Language, error) {
	return Default().FindLanguagesByName(re)
}

// FindLanguageAlpha3ByName calls Table.FindLanguageAlpha3ByName on the default table.
func FindLanguageAlpha3ByName(re *regexp.Regexp) ([]*LanguageAlpha3, error) {
	return Default().FindLanguageAlpha3ByName(re)
}

// FindCountriesByName calls Table.FindCountriesByName on the default table.
func FindCountriesByName(re *regexp.Regexp) ([]*Country, error) {
	return Default().FindCountriesByName(re)
}

// FindCurrenciesByName calls Table.FindCurrenciesByName on the default table.
func FindCurrenciesByName(re *regexp.Regexp) ([]*Currency, error) {
	return Default().FindCurrenciesByName(re)
}

// FindScriptsByName calls Table.FindScriptsByName on the default table.
func FindScriptsByName(re *regexp.Regexp) ([]*Script, error) {
	return Default().FindScriptsByName(re)
}

// LanguageByTag calls Table.LanguageByTag on the default table.
func LanguageByTag(tag language.Tag) *Language { return Default().LanguageByTag(tag) }

// CountryByTag calls Table.CountryByTag on the default table.
func CountryByTag(tag language.Tag) *Country { return Default().CountryByTag(tag) }

// LocaleByTag calls Table.LocaleByTag on the default table.
func LocaleByTag(tag language.Tag) *Locale { return Default().LocaleByTag(tag) }

// Negotiate calls Table.Negotiate on the default table.
func Negotiate(header string, supported []*Locale) *Locale {
	return Default().Negotiate(header, supported)
}
