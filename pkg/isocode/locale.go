package isocode

// Locale is a supported combination of a language and an optional country.
type Locale struct {
	language *Language
	country  *Country
}

// Language returns the language part.
func (l *Locale) Language() *Language { return l.language }

// Country returns nil for language-only locales such as "ja".
func (l *Locale) Country() *Country { return l.country }

// IsUndefined reports whether l is the undefined locale.
func (l *Locale) IsUndefined() bool {
	return l.language.IsUndefined() && (l.country == nil || l.country.IsUndefined())
}

// String returns the canonical form "language" or "language-COUNTRY".
func (l *Locale) String() string { return Compose(l.language, l.country) }

type localeKey struct {
	language *Language
	country  *Country
}

const localeSeparators = "-_"

// ParseLocale resolves a locale identifier such as "pt-BR", "pt_BR" or "ja".
// The separator must follow the language part directly: at offset 2, 3 or
// after the "undefined" sentinel. The country part is an alpha-2 code or the
// "UNDEFINED" sentinel. Each part is resolved independently and the pair must
// exist in the locale table. Returns nil otherwise.
func (t *Table) ParseLocale(code string, caseSensitive bool) *Locale {
	lang, country, ok := splitLocale(code)
	if !ok {
		return nil
	}
	return t.LookupLocale(lang, country, caseSensitive)
}

func splitLocale(code string) (lang, country string, ok bool) {
	switch len(code) {
	case 0:
		return "", "", false
	case 2, 3, len(undefinedLanguage):
		return code, "", true
	}
	for _, off := range []int{2, 3, len(undefinedLanguage)} {
		if len(code) <= off+1 || !isLocaleSeparator(code[off]) {
			continue
		}
		if rest := code[off+1:]; validCountryPart(rest) {
			return code[:off], rest, true
		}
	}
	return "", "", false
}

// validCountryPart reports whether s has the length of an alpha-2 code or
// of the undefined sentinel.
func validCountryPart(s string) bool {
	return len(s) == 2 || len(s) == len(undefinedCountry)
}

func isLocaleSeparator(b byte) bool {
	return b == localeSeparators[0] || b == localeSeparators[1]
}

// LookupLocale resolves a (language, country) pair given as separate codes.
// An empty country means a language-only locale; otherwise country must be an
// alpha-2 code, so "JPN" is not found. The undefined language combined with
// no country or the undefined country yields the undefined locale.
func (t *Table) LookupLocale(language, country string, caseSensitive bool) *Locale {
	langKey, ok := t.CanonicalLanguage(language, caseSensitive)
	if !ok {
		return nil
	}
	if langKey == undefinedLanguage {
		if country == "" {
			return t.undefinedLocale
		}
		if key, _ := t.CanonicalCountry(country, caseSensitive); key == undefinedCountry {
			return t.undefinedLocale
		}
	}

	if country != "" && !validCountryPart(country) {
		return nil
	}

	l := t.LookupLanguage(language, caseSensitive)
	if l == nil {
		return nil
	}
	var c *Country
	if country != "" {
		if c = t.LookupCountry(country, caseSensitive); c == nil {
			return nil
		}
	}
	return t.localeByPair[localeKey{language: l, country: c}]
}

// LocaleOf returns the table entry for an already resolved pair, or nil.
func (t *Table) LocaleOf(l *Language, c *Country) *Locale {
	if l == nil {
		return nil
	}
	if l.IsUndefined() && (c == nil || c.IsUndefined()) {
		return t.undefinedLocale
	}
	return t.localeByPair[localeKey{language: l, country: c}]
}

// Compose renders a language and optional country as "language" or
// "language-COUNTRY". The undefined pair renders as "undefined". A nil
// language yields "".
func Compose(l *Language, c *Country) string {
	if l == nil {
		return ""
	}
	if c == nil || (l.IsUndefined() && c.IsUndefined()) {
		return l.code
	}
	return l.code + "-" + c.alpha2
}

// LocalesByLanguage lists the locales of l in table order.
func (t *Table) LocalesByLanguage(l *Language) []*Locale {
	out := []*Locale{}
	if l == nil {
		return out
	}
	for _, loc := range t.locales {
		if loc.language == l {
			out = append(out, loc)
		}
	}
	return out
}

// LocalesByCountry lists the locales of c in table order.
func (t *Table) LocalesByCountry(c *Country) []*Locale {
	out := []*Locale{}
	if c == nil {
		return out
	}
	for _, loc := range t.locales {
		if loc.country == c {
			out = append(out, loc)
		}
	}
	return out
}

// LocalesByLanguageCode resolves code with LookupLanguage and lists its locales.
func (t *Table) LocalesByLanguageCode(code string, caseSensitive bool) []*Locale {
	return t.LocalesByLanguage(t.LookupLanguage(code, caseSensitive))
}

// LocalesByCountryCode resolves code with LookupCountry and lists its locales.
func (t *Table) LocalesByCountryCode(code string, caseSensitive bool) []*Locale {
	return t.LocalesByCountry(t.LookupCountry(code, caseSensitive))
}

// Locales returns every locale entry in table order.
func (t *Table) Locales() []*Locale { return cloneSlice(t.locales) }
