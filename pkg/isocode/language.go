package isocode

// Language is an ISO 639-1 two-letter language code.
type Language struct {
	code   string
	alpha3 *LanguageAlpha3
}

// Code returns the canonical key, e.g. "de".
func (l *Language) Code() string { return l.code }

// Name returns the English name of the linked ISO 639-2 entry.
func (l *Language) Name() string { return l.alpha3.name }

// Alpha3 returns the ISO 639-2 entry this code maps to. It is the
// terminological form when the language has a T/B pair ("de" -> "deu").
func (l *Language) Alpha3() *LanguageAlpha3 { return l.alpha3 }

// IsUndefined reports whether l is the "undefined" sentinel.
func (l *Language) IsUndefined() bool { return l.code == undefinedLanguage }

// String returns the code.
func (l *Language) String() string { return l.code }

// LookupLanguage resolves code to an ISO 639-1 entry. Two-letter codes and the
// sentinel are matched directly; three-letter codes go through ISO 639-2 and
// its two-letter link, so both "deu" and "ger" yield "de". Returns nil when
// nothing matches.
func (t *Table) LookupLanguage(code string, caseSensitive bool) *Language {
	key, ok := t.CanonicalLanguage(code, caseSensitive)
	if !ok {
		return nil
	}

	switch len(key) {
	case 2, len(undefinedLanguage):
		return t.languageByCode[key]
	case 3:
		a3 := t.LookupLanguageAlpha3(key, caseSensitive)
		if a3 == nil {
			return nil
		}
		return a3.alpha2
	default:
		return nil
	}
}

// Languages returns every ISO 639-1 entry in table order.
func (t *Table) Languages() []*Language { return cloneSlice(t.languages) }
