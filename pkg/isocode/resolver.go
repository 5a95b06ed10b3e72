package isocode

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/isocode/pkg/config"
	"github.com/dmitrymomot/isocode/pkg/logger"
)

// Resolver applies a fixed case policy to lookups against a Table and can
// report misses to a logger.
type Resolver struct {
	table         *Table
	caseSensitive bool
	logger        *slog.Logger
	logMisses     bool

	defaultCode    string
	supportedCodes []string
	defaultLocale  *Locale
	supported      []*Locale
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithTable sets the table to resolve against. Defaults to Default().
func WithTable(t *Table) Option {
	return func(r *Resolver) {
		if t != nil {
			r.table = t
		}
	}
}

// WithCaseSensitive makes lookups require canonical case.
func WithCaseSensitive(v bool) Option {
	return func(r *Resolver) { r.caseSensitive = v }
}

// WithLogger sets the logger for miss logging and locale warnings. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMissLogging logs every failed lookup at debug level.
func WithMissLogging(v bool) Option {
	return func(r *Resolver) { r.logMisses = v }
}

// WithDefaultLocale sets the locale Negotiate falls back to.
func WithDefaultLocale(code string) Option {
	return func(r *Resolver) { r.defaultCode = code }
}

// WithSupportedLocales restricts Negotiate to the given locale codes.
func WithSupportedLocales(codes ...string) Option {
	return func(r *Resolver) { r.supportedCodes = append(r.supportedCodes, codes...) }
}

// NewResolver creates a Resolver. Locale codes given through options are
// parsed case-insensitively; unknown ones are logged at warn level and skipped.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{logger: logger.Discard()}
	for _, opt := range opts {
		opt(r)
	}
	if r.table == nil {
		r.table = Default()
	}
	r.logger = r.logger.With(logger.Component("isocode"))

	if r.defaultCode != "" {
		if r.defaultLocale = r.table.ParseLocale(r.defaultCode, false); r.defaultLocale == nil {
			r.logger.Warn("unknown default locale", logger.Query(r.defaultCode))
		}
	}
	for _, code := range r.supportedCodes {
		loc := r.table.ParseLocale(code, false)
		if loc == nil {
			r.logger.Warn("unknown supported locale", logger.Query(code))
			continue
		}
		r.supported = append(r.supported, loc)
	}
	return r
}

// Config holds Resolver settings read from the environment with the
// ISOCODE_ prefix.
type Config struct {
	CaseSensitive    bool     `env:"CASE_SENSITIVE" envDefault:"false"`
	DefaultLocale    string   `env:"DEFAULT_LOCALE" envDefault:"en"`
	SupportedLocales []string `env:"SUPPORTED_LOCALES" envSeparator:","`
	LogMisses        bool     `env:"LOG_MISSES" envDefault:"false"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string   `env:"LOG_FORMAT" envDefault:"json"`
}

// EnvPrefix is prepended to every Config variable name.
const EnvPrefix = "ISOCODE_"

// Validate checks the log settings. Locale codes are not checked here:
// unknown ones are skipped with a warning when the Resolver is built.
func (c Config) Validate() error {
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig reads Config from the process environment and an optional .env
// file and validates it.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewResolverFromConfig builds a Resolver from cfg. A logger is created from
// the log settings when miss logging is enabled; invalid log settings fall
// back to JSON at info level, so call Validate first for strict checking.
// Extra options are applied last.
func NewResolverFromConfig(cfg Config, opts ...Option) *Resolver {
	base := []Option{
		WithCaseSensitive(cfg.CaseSensitive),
		WithDefaultLocale(cfg.DefaultLocale),
		WithSupportedLocales(cfg.SupportedLocales...),
		WithMissLogging(cfg.LogMisses),
	}
	if cfg.LogMisses {
		var logOpts []logger.Option
		if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			logOpts = append(logOpts, logger.WithLevel(level))
		}
		if format, err := logger.ParseFormat(cfg.LogFormat); err == nil {
			logOpts = append(logOpts, logger.WithFormat(format))
		}
		base = append(base, WithLogger(logger.New(logOpts...)))
	}
	return NewResolver(append(base, opts...)...)
}

// NewResolverFromEnv is LoadConfig followed by NewResolverFromConfig. Invalid
// settings are reported as an error wrapping ErrInvalidConfig.
func NewResolverFromEnv(opts ...Option) (*Resolver, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewResolverFromConfig(cfg, opts...), nil
}

// Table returns the table lookups run against.
func (r *Resolver) Table() *Table { return r.table }

// CaseSensitive reports the case policy applied to every lookup.
func (r *Resolver) CaseSensitive() bool { return r.caseSensitive }

// DefaultLocale returns the Negotiate fallback, or nil when none is set.
func (r *Resolver) DefaultLocale() *Locale { return r.defaultLocale }

// SupportedLocales returns the locales Negotiate chooses from. Empty means
// every table locale.
func (r *Resolver) SupportedLocales() []*Locale { return cloneSlice(r.supported) }

// Language looks up an ISO 639-1 (or linked ISO 639-2) code.
func (r *Resolver) Language(code string) *Language {
	return logMiss(r, "language", code, r.table.LookupLanguage(code, r.caseSensitive))
}

// LanguageAlpha3 looks up an ISO 639-2 code.
func (r *Resolver) LanguageAlpha3(code string) *LanguageAlpha3 {
	return logMiss(r, "language_alpha3", code, r.table.LookupLanguageAlpha3(code, r.caseSensitive))
}

// Country looks up an alpha-2, alpha-3 or alpha-4 country code.
func (r *Resolver) Country(code string) *Country {
	return logMiss(r, "country", code, r.table.LookupCountry(code, r.caseSensitive))
}

// Currency looks up an ISO 4217 code.
func (r *Resolver) Currency(code string) *Currency {
	return logMiss(r, "currency", code, r.table.LookupCurrency(code, r.caseSensitive))
}

// Script looks up an ISO 15924 code.
func (r *Resolver) Script(code string) *Script {
	return logMiss(r, "script", code, r.table.LookupScript(code, r.caseSensitive))
}

// Locale parses a locale identifier such as "pt_BR".
func (r *Resolver) Locale(code string) *Locale {
	return logMiss(r, "locale", code, r.table.ParseLocale(code, r.caseSensitive))
}

// Negotiate returns the best supported locale for an Accept-Language header,
// falling back to the default locale (which may be nil).
func (r *Resolver) Negotiate(header string) *Locale {
	if loc := r.table.Negotiate(header, r.supported); loc != nil {
		return loc
	}
	return r.defaultLocale
}

func logMiss[E any](r *Resolver, space, query string, e *E) *E {
	if e == nil && r.logMisses {
		r.logger.Debug("code lookup miss",
			logger.CodeSpace(space),
			logger.Query(query),
			logger.CaseSensitive(r.caseSensitive),
		)
	}
	return e
}
