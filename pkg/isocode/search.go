package isocode

import "regexp"

type named interface {
	Name() string
}

// findByName returns the entries whose whole name matches re, in table order.
func findByName[E named](entries []E, re *regexp.Regexp) ([]E, error) {
	if re == nil {
		return nil, ErrNilPattern
	}
	full, err := fullMatch(re.String())
	if err != nil {
		return nil, err
	}
	out := []E{}
	for _, e := range entries {
		if full.MatchString(e.Name()) {
			out = append(out, e)
		}
	}
	return out, nil
}

// fullMatch compiles expr so that it has to match a whole name.
func fullMatch(expr string) (*regexp.Regexp, error) {
	return regexp.Compile("^(?:" + expr + ")$")
}

func findByNameString[E named](entries []E, expr string) ([]E, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return findByName(entries, re)
}

// FindLanguagesByName returns the ISO 639-1 entries whose English name matches
// re as a whole: "German" finds de, "Germ" finds nothing, ".*German.*" finds
// every name containing the word.
func (t *Table) FindLanguagesByName(re *regexp.Regexp) ([]*Language, error) {
	return findByName(t.languages, re)
}

// FindLanguagesByNameString compiles expr and calls FindLanguagesByName.
func (t *Table) FindLanguagesByNameString(expr string) ([]*Language, error) {
	return findByNameString(t.languages, expr)
}

// FindLanguageAlpha3ByName is FindLanguagesByName for ISO 639-2 entries,
// including those without an ISO 639-1 code.
func (t *Table) FindLanguageAlpha3ByName(re *regexp.Regexp) ([]*LanguageAlpha3, error) {
	return findByName(t.alpha3, re)
}

// FindLanguageAlpha3ByNameString compiles expr and calls FindLanguageAlpha3ByName.
func (t *Table) FindLanguageAlpha3ByNameString(expr string) ([]*LanguageAlpha3, error) {
	return findByNameString(t.alpha3, expr)
}

// FindCountriesByName returns the countries whose whole name matches re.
func (t *Table) FindCountriesByName(re *regexp.Regexp) ([]*Country, error) {
	return findByName(t.countries, re)
}

// FindCountriesByNameString compiles expr and calls FindCountriesByName.
func (t *Table) FindCountriesByNameString(expr string) ([]*Country, error) {
	return findByNameString(t.countries, expr)
}

// FindCurrenciesByName returns the currencies whose whole name matches re.
func (t *Table) FindCurrenciesByName(re *regexp.Regexp) ([]*Currency, error) {
	return findByName(t.currencies, re)
}

// FindCurrenciesByNameString compiles expr and calls FindCurrenciesByName.
func (t *Table) FindCurrenciesByNameString(expr string) ([]*Currency, error) {
	return findByNameString(t.currencies, expr)
}

// FindScriptsByName returns the scripts whose whole name matches re.
func (t *Table) FindScriptsByName(re *regexp.Regexp) ([]*Script, error) {
	return findByName(t.scripts, re)
}

// FindScriptsByNameString compiles expr and calls FindScriptsByName.
func (t *Table) FindScriptsByNameString(expr string) ([]*Script, error) {
	return findByNameString(t.scripts, expr)
}
