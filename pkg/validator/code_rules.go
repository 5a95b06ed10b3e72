package validator

import (
	"github.com/dmitrymomot/isocode/pkg/isocode"
)

// codeRule builds a rule that passes when lookup finds a defined entry.
// Lookups are case-insensitive and the undefined sentinels are rejected.
func codeRule(field, value, kind, message string, defined func(string) bool) Rule {
	return Rule{
		Check: func() bool {
			return value != "" && defined(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation." + kind,
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
			Err: ErrUnknownCode,
		},
	}
}

// ValidLanguageCode accepts ISO 639-1 codes and the ISO 639-2 codes that
// have an ISO 639-1 equivalent ("ja", "jpn", "JA").
func ValidLanguageCode(field, value string) Rule {
	return codeRule(field, value, "language_code", "must be a valid ISO 639 language code",
		func(v string) bool {
			l := isocode.LookupLanguage(v, false)
			return l != nil && !l.IsUndefined()
		})
}

// ValidLanguageAlpha3Code accepts any ISO 639-2 code, with or without an
// ISO 639-1 equivalent.
func ValidLanguageAlpha3Code(field, value string) Rule {
	return codeRule(field, value, "language_alpha3_code", "must be a valid ISO 639-2 language code",
		func(v string) bool {
			l := isocode.LookupLanguageAlpha3(v, false)
			return l != nil && !l.IsUndefined()
		})
}

// ValidCountryCode accepts ISO 3166-1 alpha-2 and alpha-3 codes and ISO
// 3166-3 alpha-4 codes.
func ValidCountryCode(field, value string) Rule {
	return codeRule(field, value, "country_code", "must be a valid ISO 3166 country code",
		func(v string) bool {
			c := isocode.LookupCountry(v, false)
			return c != nil && !c.IsUndefined()
		})
}

// ValidCurrencyCode validates that a string is a valid ISO 4217 currency code.
func ValidCurrencyCode(field, value string) Rule {
	return codeRule(field, value, "currency_code", "must be a valid ISO 4217 currency code",
		func(v string) bool {
			c := isocode.LookupCurrency(v, false)
			return c != nil && !c.IsUndefined()
		})
}

// ValidScriptCode validates an ISO 15924 script code such as "Latn".
func ValidScriptCode(field, value string) Rule {
	return codeRule(field, value, "script_code", "must be a valid ISO 15924 script code",
		func(v string) bool {
			s := isocode.LookupScript(v, false)
			return s != nil && !s.IsUndefined()
		})
}

// ValidLocaleCode accepts "language" or "language-COUNTRY" with either "-"
// or "_" as separator, as long as the pair is a known locale. The country
// part must be an alpha-2 code.
func ValidLocaleCode(field, value string) Rule {
	return codeRule(field, value, "locale_code", "must be a supported locale",
		func(v string) bool {
			l := isocode.ParseLocale(v, false)
			return l != nil && !l.IsUndefined()
		})
}

// ValidPhoneDialCode validates that an international phone number starts
// with "+" and a known dialing prefix.
func ValidPhoneDialCode(field, value string) Rule {
	return codeRule(field, value, "phone_dial_code", "must start with a valid international dialing code",
		func(v string) bool {
			return isocode.DialCodeByPhone(v) != nil
		})
}
