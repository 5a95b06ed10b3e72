package isocode

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Document names read by Load.
const (
	languagesFile  = "languages.yaml"
	countriesFile  = "countries.yaml"
	currenciesFile = "currencies.yaml"
	localesFile    = "locales.yaml"
	scriptsFile    = "scripts.yaml"
	dialCodesFile  = "dialcodes.yaml"
)

// Table is an immutable set of cross-referenced code entries. All lookups
// return pointers into the table, so entries can be compared with ==.
// A Table is safe for concurrent use.
type Table struct {
	languages       []*Language
	languageByCode  map[string]*Language
	languageAliases map[string]string

	alpha3        []*LanguageAlpha3
	alpha3ByCode  map[string]*LanguageAlpha3
	alpha3Aliases map[string]string

	countries        []*Country
	countryByAlpha2  map[string]*Country
	countryByAlpha3  map[string]*Country
	countryByAlpha4  map[string]*Country
	countryByNumeric map[int]*Country

	currencies          []*Currency
	currencyByCode      map[string]*Currency
	currencyByNumeric   map[int]*Currency
	currenciesByCountry map[*Country][]*Currency

	locales         []*Locale
	localeByPair    map[localeKey]*Locale
	undefinedLocale *Locale

	scripts         []*Script
	scriptByCode    map[string]*Script
	scriptByNumeric map[int]*Script

	dialCodes     []*DialCode
	dialByPrefix  map[string]*DialCode
	maxDialPrefix int
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the embedded ISO data. It is loaded on
// first use and shared afterwards. Corrupt embedded data panics.
func Default() *Table {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			panic(fmt.Sprintf("isocode: embedded data: %v", err))
		}
		t, err := Load(sub)
		if err != nil {
			panic(fmt.Sprintf("isocode: embedded data: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

type languagesDoc struct {
	Alpha3 []struct {
		Code    string `yaml:"code"`
		Name    string `yaml:"name"`
		Alpha2  string `yaml:"alpha2"`
		Usage   string `yaml:"usage"`
		Synonym string `yaml:"synonym"`
	} `yaml:"alpha3"`
	Alpha2 []struct {
		Code   string `yaml:"code"`
		Alpha3 string `yaml:"alpha3"`
	} `yaml:"alpha2"`
	Aliases       map[string]string `yaml:"aliases"`
	Alpha3Aliases map[string]string `yaml:"alpha3_aliases"`
}

type countriesDoc struct {
	Countries []struct {
		Alpha2     string `yaml:"alpha2"`
		Alpha3     string `yaml:"alpha3"`
		Alpha4     string `yaml:"alpha4"`
		Numeric    int    `yaml:"numeric"`
		Name       string `yaml:"name"`
		Assignment string `yaml:"assignment"`
	} `yaml:"countries"`
	Preferred struct {
		Alpha3  map[string]string `yaml:"alpha3"`
		Numeric map[int]string    `yaml:"numeric"`
	} `yaml:"preferred"`
	NumericAliases map[int]string `yaml:"numeric_aliases"`
}

type currenciesDoc struct {
	Currencies []struct {
		Code          string   `yaml:"code"`
		Name          string   `yaml:"name"`
		Numeric       int      `yaml:"numeric"`
		MinorUnit     int      `yaml:"minor_unit"`
		Countries     []string `yaml:"countries"`
		Fund          bool     `yaml:"fund"`
		PreciousMetal bool     `yaml:"precious_metal"`
	} `yaml:"currencies"`
	Preferred struct {
		Numeric map[int]string `yaml:"numeric"`
	} `yaml:"preferred"`
}

type localesDoc struct {
	Locales []struct {
		Language string `yaml:"language"`
		Country  string `yaml:"country"`
	} `yaml:"locales"`
}

type scriptsDoc struct {
	Scripts []struct {
		Code    string `yaml:"code"`
		Name    string `yaml:"name"`
		Numeric int    `yaml:"numeric"`
	} `yaml:"scripts"`
	Preferred struct {
		Numeric map[int]string `yaml:"numeric"`
	} `yaml:"preferred"`
}

type dialCodesDoc struct {
	DialCodes []struct {
		Prefix  string `yaml:"prefix"`
		Country string `yaml:"country"`
	} `yaml:"dial_codes"`
	Preferred map[string]string `yaml:"preferred"`
}

// Load reads and validates the code table documents in fsys. It fails when a
// document is missing or malformed, when keys repeat, when a reference points
// nowhere, or when a shared numeric, alpha-3 or dialing code has no preferred
// entry.
func Load(fsys fs.FS) (*Table, error) {
	var (
		langs  languagesDoc
		ctrs   countriesDoc
		curs   currenciesDoc
		locs   localesDoc
		scrs   scriptsDoc
		dials  dialCodesDoc
		reader = documentReader{fsys: fsys}
	)
	reader.read(languagesFile, &langs)
	reader.read(countriesFile, &ctrs)
	reader.read(currenciesFile, &curs)
	reader.read(localesFile, &locs)
	reader.read(scriptsFile, &scrs)
	reader.read(dialCodesFile, &dials)
	if reader.err != nil {
		return nil, reader.err
	}

	t := &Table{}
	steps := []func() error{
		func() error { return t.buildLanguages(&langs) },
		func() error { return t.buildCountries(&ctrs) },
		func() error { return t.buildCurrencies(&curs) },
		func() error { return t.buildLocales(&locs) },
		func() error { return t.buildScripts(&scrs) },
		func() error { return t.buildDialCodes(&dials) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// documentReader keeps the first error so documents can be read in sequence.
type documentReader struct {
	fsys fs.FS
	err  error
}

func (r *documentReader) read(name string, v any) {
	if r.err != nil {
		return
	}
	data, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		r.err = errors.Join(ErrFailedToReadData, err)
		return
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		r.err = errors.Join(ErrFailedToParseYAML, fmt.Errorf("%s: %w", name, err))
	}
}

func (t *Table) buildLanguages(doc *languagesDoc) error {
	t.alpha3 = make([]*LanguageAlpha3, 0, len(doc.Alpha3))
	t.alpha3ByCode = make(map[string]*LanguageAlpha3, len(doc.Alpha3))
	for _, rec := range doc.Alpha3 {
		if _, dup := t.alpha3ByCode[rec.Code]; dup || rec.Code == "" {
			return fmt.Errorf("%w: language alpha-3 %q", ErrDuplicateKey, rec.Code)
		}
		usage, err := parseUsage(rec.Usage)
		if err != nil {
			return fmt.Errorf("language alpha-3 %q: %w", rec.Code, err)
		}
		a := &LanguageAlpha3{code: rec.Code, name: rec.Name, usage: usage}
		t.alpha3 = append(t.alpha3, a)
		t.alpha3ByCode[a.code] = a
	}

	t.languages = make([]*Language, 0, len(doc.Alpha2))
	t.languageByCode = make(map[string]*Language, len(doc.Alpha2))
	for _, rec := range doc.Alpha2 {
		if _, dup := t.languageByCode[rec.Code]; dup || rec.Code == "" {
			return fmt.Errorf("%w: language %q", ErrDuplicateKey, rec.Code)
		}
		a, ok := t.alpha3ByCode[rec.Alpha3]
		if !ok {
			return fmt.Errorf("%w: language %q links alpha-3 %q", ErrUnknownReference, rec.Code, rec.Alpha3)
		}
		if a.usage == UsageBibliography {
			return fmt.Errorf("%w: language %q links bibliographic code %q", ErrInconsistentLink, rec.Code, a.code)
		}
		l := &Language{code: rec.Code, alpha3: a}
		t.languages = append(t.languages, l)
		t.languageByCode[l.code] = l
	}

	for i, rec := range doc.Alpha3 {
		a := t.alpha3[i]
		if rec.Alpha2 != "" {
			l, ok := t.languageByCode[rec.Alpha2]
			if !ok {
				return fmt.Errorf("%w: alpha-3 %q links language %q", ErrUnknownReference, a.code, rec.Alpha2)
			}
			a.alpha2 = l
		}
		if rec.Synonym != "" {
			syn, ok := t.alpha3ByCode[rec.Synonym]
			if !ok {
				return fmt.Errorf("%w: alpha-3 %q synonym %q", ErrUnknownReference, a.code, rec.Synonym)
			}
			a.synonym = syn
		}
	}

	for _, l := range t.languages {
		if l.alpha3.alpha2 != l {
			return fmt.Errorf("%w: language %q and alpha-3 %q", ErrInconsistentLink, l.code, l.alpha3.code)
		}
	}
	for _, a := range t.alpha3 {
		if err := validateSynonym(a); err != nil {
			return err
		}
	}

	if _, ok := t.languageByCode[undefinedLanguage]; !ok {
		return fmt.Errorf("%w: language %q missing", ErrInvalidSentinel, undefinedLanguage)
	}

	t.languageAliases = make(map[string]string, len(doc.Aliases))
	for from, to := range doc.Aliases {
		if from != strings.ToLower(from) {
			return fmt.Errorf("%w: language alias %q must be lower case", ErrInvalidValue, from)
		}
		if _, ok := t.languageByCode[to]; !ok {
			return fmt.Errorf("%w: language alias %q -> %q", ErrUnknownReference, from, to)
		}
		t.languageAliases[from] = to
	}
	t.alpha3Aliases = make(map[string]string, len(doc.Alpha3Aliases))
	for from, to := range doc.Alpha3Aliases {
		if _, ok := t.alpha3ByCode[to]; !ok {
			return fmt.Errorf("%w: alpha-3 alias %q -> %q", ErrUnknownReference, from, to)
		}
		t.alpha3Aliases[from] = to
	}
	return nil
}

// validateSynonym checks that a T/B pair is reciprocal and carries one member
// of each usage, and that common codes have no synonym.
func validateSynonym(a *LanguageAlpha3) error {
	if a.usage == UsageCommon {
		if a.synonym != nil {
			return fmt.Errorf("%w: common code %q has synonym %q", ErrInvalidSynonym, a.code, a.synonym.code)
		}
		return nil
	}
	s := a.synonym
	switch {
	case s == nil || s == a:
		return fmt.Errorf("%w: %s code %q has no synonym", ErrInvalidSynonym, a.usage, a.code)
	case s.synonym != a:
		return fmt.Errorf("%w: %q -> %q is not reciprocal", ErrInvalidSynonym, a.code, s.code)
	case s.usage == a.usage || s.usage == UsageCommon:
		return fmt.Errorf("%w: %q and %q are both %s", ErrInvalidSynonym, a.code, s.code, s.usage)
	}
	return nil
}

func (t *Table) buildCountries(doc *countriesDoc) error {
	t.countries = make([]*Country, 0, len(doc.Countries))
	t.countryByAlpha2 = make(map[string]*Country, len(doc.Countries))
	t.countryByAlpha4 = make(map[string]*Country)
	for _, rec := range doc.Countries {
		if _, dup := t.countryByAlpha2[rec.Alpha2]; dup || rec.Alpha2 == "" {
			return fmt.Errorf("%w: country %q", ErrDuplicateKey, rec.Alpha2)
		}
		assignment, err := parseAssignment(rec.Assignment)
		if err != nil {
			return fmt.Errorf("country %q: %w", rec.Alpha2, err)
		}
		c := &Country{
			alpha2:     rec.Alpha2,
			alpha3:     rec.Alpha3,
			alpha4:     rec.Alpha4,
			numeric:    rec.Numeric,
			name:       rec.Name,
			assignment: assignment,
		}
		if c.alpha4 != "" {
			if _, dup := t.countryByAlpha4[c.alpha4]; dup {
				return fmt.Errorf("%w: country alpha-4 %q", ErrDuplicateKey, c.alpha4)
			}
			t.countryByAlpha4[c.alpha4] = c
		}
		t.countries = append(t.countries, c)
		t.countryByAlpha2[c.alpha2] = c
	}

	sentinel, ok := t.countryByAlpha2[undefinedCountry]
	if !ok || sentinel.numeric > 0 {
		return fmt.Errorf("%w: country %q", ErrInvalidSentinel, undefinedCountry)
	}

	var err error
	t.countryByAlpha3, err = resolveShared(t.countries, t.countryByAlpha2, doc.Preferred.Alpha3,
		func(c *Country) (string, bool) { return c.alpha3, c.alpha3 != "" })
	if err != nil {
		return fmt.Errorf("country alpha-3: %w", err)
	}
	t.countryByNumeric, err = resolveShared(t.countries, t.countryByAlpha2, doc.Preferred.Numeric,
		func(c *Country) (int, bool) { return c.numeric, c.numeric > 0 })
	if err != nil {
		return fmt.Errorf("country numeric: %w", err)
	}

	for n, code := range doc.NumericAliases {
		c, ok := t.countryByAlpha2[code]
		if !ok {
			return fmt.Errorf("%w: country numeric alias %d -> %q", ErrUnknownReference, n, code)
		}
		if _, taken := t.countryByNumeric[n]; taken || n <= 0 {
			return fmt.Errorf("%w: country numeric alias %d", ErrDuplicateKey, n)
		}
		t.countryByNumeric[n] = c
	}
	return nil
}

func (t *Table) buildCurrencies(doc *currenciesDoc) error {
	t.currencies = make([]*Currency, 0, len(doc.Currencies))
	t.currencyByCode = make(map[string]*Currency, len(doc.Currencies))
	t.currenciesByCountry = make(map[*Country][]*Currency)
	for _, rec := range doc.Currencies {
		if _, dup := t.currencyByCode[rec.Code]; dup || rec.Code == "" {
			return fmt.Errorf("%w: currency %q", ErrDuplicateKey, rec.Code)
		}
		c := &Currency{
			code:          rec.Code,
			name:          rec.Name,
			numeric:       rec.Numeric,
			minorUnit:     rec.MinorUnit,
			fund:          rec.Fund,
			preciousMetal: rec.PreciousMetal,
		}
		for _, code := range rec.Countries {
			country, ok := t.countryByAlpha2[code]
			if !ok {
				return fmt.Errorf("%w: currency %q lists country %q", ErrUnknownReference, rec.Code, code)
			}
			c.countries = append(c.countries, country)
			t.currenciesByCountry[country] = append(t.currenciesByCountry[country], c)
		}
		t.currencies = append(t.currencies, c)
		t.currencyByCode[c.code] = c
	}

	sentinel, ok := t.currencyByCode[undefinedCurrency]
	if !ok || sentinel.numeric > 0 {
		return fmt.Errorf("%w: currency %q", ErrInvalidSentinel, undefinedCurrency)
	}

	var err error
	t.currencyByNumeric, err = resolveShared(t.currencies, t.currencyByCode, doc.Preferred.Numeric,
		func(c *Currency) (int, bool) { return c.numeric, c.numeric > 0 })
	if err != nil {
		return fmt.Errorf("currency numeric: %w", err)
	}
	return nil
}

func (t *Table) buildLocales(doc *localesDoc) error {
	t.locales = make([]*Locale, 0, len(doc.Locales))
	t.localeByPair = make(map[localeKey]*Locale, len(doc.Locales))
	for _, rec := range doc.Locales {
		l, ok := t.languageByCode[rec.Language]
		if !ok {
			return fmt.Errorf("%w: locale language %q", ErrUnknownReference, rec.Language)
		}
		var c *Country
		if rec.Country != "" {
			if c, ok = t.countryByAlpha2[rec.Country]; !ok {
				return fmt.Errorf("%w: locale country %q", ErrUnknownReference, rec.Country)
			}
		}
		key := localeKey{language: l, country: c}
		if _, dup := t.localeByPair[key]; dup {
			return fmt.Errorf("%w: locale %s", ErrDuplicateKey, Compose(l, c))
		}
		loc := &Locale{language: l, country: c}
		if loc.IsUndefined() {
			if t.undefinedLocale != nil {
				return fmt.Errorf("%w: locale %q listed twice", ErrInvalidSentinel, undefinedLanguage)
			}
			t.undefinedLocale = loc
		}
		t.locales = append(t.locales, loc)
		t.localeByPair[key] = loc
	}
	if t.undefinedLocale == nil {
		return fmt.Errorf("%w: locale %q missing", ErrInvalidSentinel, undefinedLanguage)
	}
	return nil
}

func (t *Table) buildScripts(doc *scriptsDoc) error {
	t.scripts = make([]*Script, 0, len(doc.Scripts))
	t.scriptByCode = make(map[string]*Script, len(doc.Scripts))
	for _, rec := range doc.Scripts {
		if _, dup := t.scriptByCode[rec.Code]; dup || rec.Code == "" {
			return fmt.Errorf("%w: script %q", ErrDuplicateKey, rec.Code)
		}
		s := &Script{code: rec.Code, name: rec.Name, numeric: rec.Numeric}
		t.scripts = append(t.scripts, s)
		t.scriptByCode[s.code] = s
	}

	sentinel, ok := t.scriptByCode[undefinedScript]
	if !ok || sentinel.numeric > 0 {
		return fmt.Errorf("%w: script %q", ErrInvalidSentinel, undefinedScript)
	}

	var err error
	t.scriptByNumeric, err = resolveShared(t.scripts, t.scriptByCode, doc.Preferred.Numeric,
		func(s *Script) (int, bool) { return s.numeric, s.numeric > 0 })
	if err != nil {
		return fmt.Errorf("script numeric: %w", err)
	}
	return nil
}

func (t *Table) buildDialCodes(doc *dialCodesDoc) error {
	t.dialCodes = make([]*DialCode, 0, len(doc.DialCodes))
	byCountry := make(map[string]*DialCode, len(doc.DialCodes))
	for _, rec := range doc.DialCodes {
		if rec.Prefix == "" || strings.Trim(rec.Prefix, "0123456789") != "" {
			return fmt.Errorf("%w: dial prefix %q", ErrInvalidValue, rec.Prefix)
		}
		c, ok := t.countryByAlpha2[rec.Country]
		if !ok {
			return fmt.Errorf("%w: dial code +%s country %q", ErrUnknownReference, rec.Prefix, rec.Country)
		}
		if _, dup := byCountry[c.alpha2]; dup {
			return fmt.Errorf("%w: dial code for %q", ErrDuplicateKey, c.alpha2)
		}
		d := &DialCode{prefix: rec.Prefix, country: c}
		t.dialCodes = append(t.dialCodes, d)
		byCountry[c.alpha2] = d
		t.maxDialPrefix = max(t.maxDialPrefix, len(d.prefix))
	}

	var err error
	t.dialByPrefix, err = resolveShared(t.dialCodes, byCountry, doc.Preferred,
		func(d *DialCode) (string, bool) { return d.prefix, true })
	if err != nil {
		return fmt.Errorf("dial prefix: %w", err)
	}
	return nil
}

// resolveShared indexes entries by a secondary code. When several entries
// share a code, preferred must name the one to return, by its canonical key.
// Every preferred entry must carry the code it is preferred for.
func resolveShared[K, E comparable](
	entries []E,
	byKey map[string]E,
	preferred map[K]string,
	codeOf func(E) (K, bool),
) (map[K]E, error) {
	groups := make(map[K][]E)
	var order []K
	for _, e := range entries {
		code, ok := codeOf(e)
		if !ok {
			continue
		}
		if _, seen := groups[code]; !seen {
			order = append(order, code)
		}
		groups[code] = append(groups[code], e)
	}

	index := make(map[K]E, len(groups))
	for _, code := range order {
		group := groups[code]
		if len(group) == 1 {
			index[code] = group[0]
			continue
		}
		if _, ok := preferred[code]; !ok {
			return nil, fmt.Errorf("%w: %v shared by %d entries", ErrUnresolvedCollision, code, len(group))
		}
	}

	for code, name := range preferred {
		e, ok := byKey[name]
		if !ok {
			return nil, fmt.Errorf("%w: preferred entry %q for %v", ErrUnknownReference, name, code)
		}
		if !slices.Contains(groups[code], e) {
			return nil, fmt.Errorf("%w: preferred entry %q does not carry %v", ErrUnresolvedCollision, name, code)
		}
		index[code] = e
	}
	return index, nil
}
