package validator

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/isocode/pkg/isocode"
)

// PositiveAmount validates that value is greater than zero.
func PositiveAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount must be positive",
			TranslationKey: "validation.positive_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
			Err: ErrInvalidValue,
		},
	}
}

// NonNegativeAmount validates that value is zero or more.
func NonNegativeAmount[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return value >= 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "amount cannot be negative",
			TranslationKey: "validation.non_negative_amount",
			TranslationValues: map[string]any{
				"field": field,
			},
			Err: ErrInvalidValue,
		},
	}
}

// hasDecimals reports whether value fits in maxDecimals fractional digits.
// Binary rounding noise below 1e-9 of a minor unit is ignored.
func hasDecimals(value float64, maxDecimals int) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) || maxDecimals < 0 {
		return false
	}
	scaled := value * math.Pow(10, float64(maxDecimals))
	return math.Abs(scaled-math.Round(scaled)) <= 1e-9*math.Max(1, math.Abs(scaled))
}

// DecimalPrecision validates that value has at most maxDecimals fractional digits.
func DecimalPrecision(field string, value float64, maxDecimals int) Rule {
	return Rule{
		Check: func() bool {
			return hasDecimals(value, maxDecimals)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("value cannot have more than %d decimal places", maxDecimals),
			TranslationKey: "validation.decimal_precision",
			TranslationValues: map[string]any{
				"field":        field,
				"max_decimals": maxDecimals,
			},
			Err: ErrInvalidValue,
		},
	}
}

// CurrencyPrecision checks value against the minor unit of currencyCode
// (JPY=0, USD=2, BHD=3). Currencies without a minor unit, such as XAU,
// accept any precision. Unknown codes fail.
func CurrencyPrecision(field string, value float64, currencyCode string) Rule {
	cur := isocode.LookupCurrency(currencyCode, false)
	if cur == nil || cur.IsUndefined() {
		r := ValidCurrencyCode(field, currencyCode)
		r.Check = func() bool { return false }
		return r
	}

	decimals := cur.MinorUnit()
	return Rule{
		Check: func() bool {
			if decimals < 0 {
				return !math.IsNaN(value) && !math.IsInf(value, 0)
			}
			return hasDecimals(value, decimals)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s amounts cannot have more than %d decimal places", cur.Code(), decimals),
			TranslationKey: "validation.currency_precision",
			TranslationValues: map[string]any{
				"field":        field,
				"currency":     cur.Code(),
				"max_decimals": decimals,
			},
			Err: ErrInvalidValue,
		},
	}
}
