// Package validator provides rule-based validation for request and record
// fields that carry ISO code values, together with a few generic helpers.
//
// Every exported function returns a Rule: a Check func paired with the
// ValidationError to report when the check fails. Apply evaluates rules and
// collects failures into ValidationErrors, which implements error.
//
// Code rules resolve values through the embedded isocode table. They are
// case-insensitive and never accept the undefined entries:
//
//	err := validator.Apply(
//		validator.ValidCountryCode("country", req.Country),
//		validator.ValidLocaleCode("locale", req.Locale),
//		validator.ValidCurrencyCode("currency", req.Currency),
//		validator.CurrencyPrecision("amount", req.Amount, req.Currency),
//	)
//	if errors.Is(err, validator.ErrUnknownCode) {
//		// at least one field names an unknown code
//	}
//
// ValidationErrors matches ErrValidationFailed and the Err cause of each
// contained ValidationError under errors.Is. Field-level details are
// available through Has, Get, GetErrors and Fields, and TranslationKey with
// TranslationValues carry what a message catalog needs.
package validator
