package isocode

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentinel keys of the undefined entries.
const (
	undefinedLanguage = "undefined"
	undefinedCountry  = "UNDEFINED"
	undefinedCurrency = "UNDEFINED"
	undefinedScript   = "Undefined"
)

// CanonicalLanguage maps raw to the canonical ISO 639-1 key space. Withdrawn
// codes (iw, ji, in) are replaced by their successors. When caseSensitive is
// false the result is lower-cased. The second result is false for empty input.
func (t *Table) CanonicalLanguage(raw string, caseSensitive bool) (string, bool) {
	if raw == "" {
		return "", false
	}
	if target, ok := t.languageAliases[foldIf(raw, caseSensitive, strings.ToLower)]; ok {
		return target, true
	}
	return foldIf(raw, caseSensitive, strings.ToLower), true
}

// CanonicalLanguageAlpha3 maps raw to the ISO 639-2 key space. Irregular
// spellings registered in the table (such as "New" for Newari) are accepted in
// both case modes.
func (t *Table) CanonicalLanguageAlpha3(raw string, caseSensitive bool) (string, bool) {
	if raw == "" {
		return "", false
	}
	if target, ok := t.alpha3Aliases[raw]; ok {
		return target, true
	}
	return foldIf(raw, caseSensitive, strings.ToLower), true
}

// CanonicalCountry maps raw to the ISO 3166-1 key space.
func (t *Table) CanonicalCountry(raw string, caseSensitive bool) (string, bool) {
	if raw == "" {
		return "", false
	}
	return foldIf(raw, caseSensitive, strings.ToUpper), true
}

// CanonicalCurrency maps raw to the ISO 4217 key space.
func (t *Table) CanonicalCurrency(raw string, caseSensitive bool) (string, bool) {
	if raw == "" {
		return "", false
	}
	return foldIf(raw, caseSensitive, strings.ToUpper), true
}

// CanonicalScript maps raw to the ISO 15924 key space (title case, "Jpan").
func (t *Table) CanonicalScript(raw string, caseSensitive bool) (string, bool) {
	if raw == "" {
		return "", false
	}
	return foldIf(raw, caseSensitive, titleCase), true
}

func foldIf(s string, caseSensitive bool, fold func(string) string) string {
	if caseSensitive {
		return s
	}
	return fold(s)
}

// titleCase turns "JPAN" into "Jpan". A Caser keeps state, so each call
// gets its own.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
