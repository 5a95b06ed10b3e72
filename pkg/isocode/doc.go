// Package isocode canonicalizes and cross-references ISO identifier codes:
// ISO 639-1 and ISO 639-2 languages, ISO 3166-1 countries, ISO 4217
// currencies, ISO 15924 scripts, international dialing prefixes and the
// locales formed by a language and a country.
//
// All data lives in an immutable Table. Default returns the table built from
// the embedded YAML documents; Load builds one from any fs.FS with the same
// layout. Lookups return pointers into the table, so entries compare with ==,
// and report misses as nil rather than as errors.
//
// Every string lookup takes a caseSensitive flag. When it is false, input is
// folded to the canonical case of its space first (lower case for languages,
// upper case for countries and currencies, title case for scripts):
//
//	isocode.LookupCurrency("JPY", true)  // Yen
//	isocode.LookupCurrency("jpy", true)  // nil
//	isocode.LookupCurrency("jpy", false) // Yen
//
// Withdrawn and shared codes resolve deterministically. Language aliases map
// iw, ji and in to he, yi and id. A numeric country code shared by a current
// and a withdrawn element resolves to the current one (826 is GB, not UK).
// ISO 639-2 synonym pairs are linked both ways:
//
//	ger := isocode.LookupLanguageAlpha3("ger", true)
//	ger.Alpha3T() // deu
//	ger.Alpha2()  // de
//
// Locales are parsed from "language", "language-COUNTRY" or
// "language_COUNTRY" and rendered with a hyphen:
//
//	loc := isocode.ParseLocale("pt_BR", true)
//	loc.String() // "pt-BR"
//
// The package converts to and from golang.org/x/text types and negotiates
// Accept-Language headers. Resolver bundles a case policy, a logger and
// locale defaults, and can be configured from ISOCODE_* environment variables.
package isocode
