package isocode

import "fmt"

// Usage tells which member of an ISO 639-2 synonym pair an entry is.
type Usage int

const (
	// UsageCommon marks codes that have a single form.
	UsageCommon Usage = iota
	// UsageTerminology marks the ISO 639-2/T form ("deu").
	UsageTerminology
	// UsageBibliography marks the ISO 639-2/B form ("ger").
	UsageBibliography
)

// String returns "common", "terminology" or "bibliography".
func (u Usage) String() string {
	switch u {
	case UsageTerminology:
		return "terminology"
	case UsageBibliography:
		return "bibliography"
	default:
		return "common"
	}
}

func parseUsage(s string) (Usage, error) {
	switch s {
	case "", "common":
		return UsageCommon, nil
	case "terminology":
		return UsageTerminology, nil
	case "bibliography":
		return UsageBibliography, nil
	default:
		return UsageCommon, fmt.Errorf("%w: usage %q", ErrInvalidValue, s)
	}
}

// LanguageAlpha3 is an ISO 639-2 three-letter language code.
type LanguageAlpha3 struct {
	code    string
	name    string
	alpha2  *Language
	usage   Usage
	synonym *LanguageAlpha3
}

// Code returns the canonical lower-case key, e.g. "jpn".
func (a *LanguageAlpha3) Code() string { return a.code }

// Name returns the English name.
func (a *LanguageAlpha3) Name() string { return a.name }

// Alpha2 returns the ISO 639-1 counterpart, or nil when there is none.
func (a *LanguageAlpha3) Alpha2() *Language { return a.alpha2 }

// Usage tells whether a is the T or B member of a pair, or a common code.
func (a *LanguageAlpha3) Usage() Usage { return a.usage }

// Synonym returns the other member of a T/B pair, or a itself for common codes.
func (a *LanguageAlpha3) Synonym() *LanguageAlpha3 {
	if a.synonym == nil {
		return a
	}
	return a.synonym
}

// Alpha3T returns the terminological form of this language.
func (a *LanguageAlpha3) Alpha3T() *LanguageAlpha3 {
	if a.usage == UsageTerminology {
		return a
	}
	return a.Synonym()
}

// Alpha3B returns the bibliographic form of this language.
func (a *LanguageAlpha3) Alpha3B() *LanguageAlpha3 {
	if a.usage == UsageBibliography {
		return a
	}
	return a.Synonym()
}

// IsUndefined reports whether a is the "undefined" sentinel.
func (a *LanguageAlpha3) IsUndefined() bool { return a.code == undefinedLanguage }

// String returns the code.
func (a *LanguageAlpha3) String() string { return a.code }

// LookupLanguageAlpha3 resolves code to an ISO 639-2 entry. Two-letter input
// is resolved as an ISO 639-1 code first (legacy aliases included) and yields
// its terminological form.
func (t *Table) LookupLanguageAlpha3(code string, caseSensitive bool) *LanguageAlpha3 {
	switch len(code) {
	case 3, len(undefinedLanguage):
		key, ok := t.CanonicalLanguageAlpha3(code, caseSensitive)
		if !ok {
			return nil
		}
		return t.alpha3ByCode[key]
	case 2:
		l := t.LookupLanguage(code, caseSensitive)
		if l == nil {
			return nil
		}
		return l.alpha3
	default:
		return nil
	}
}

// LanguagesAlpha3 returns every ISO 639-2 entry in table order.
func (t *Table) LanguagesAlpha3() []*LanguageAlpha3 { return cloneSlice(t.alpha3) }
