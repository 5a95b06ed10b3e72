package isocode

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength caps how much of an Accept-Language header is read.
const maxAcceptLanguageLength = 4096

type weightedTag struct {
	tag language.Tag
	q   float32
}

// parseAcceptLanguage splits an Accept-Language header into tags ordered by
// quality. Entries are parsed one by one with language.ParseAcceptLanguage so
// that a malformed entry drops only itself. Entries with q=0 are skipped.
func parseAcceptLanguage(header string) []weightedTag {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" || strings.HasPrefix(part, "*") {
			continue
		}
		parsed, q, err := language.ParseAcceptLanguage(part)
		if err != nil {
			continue
		}
		for i, tag := range parsed {
			tags = append(tags, weightedTag{tag: tag, q: q[i]})
		}
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.q, a.q)
	})
	return tags
}

// Negotiate picks the locale that best satisfies an Accept-Language header.
// Exact language-region matches are tried first in quality order, then
// language-only matches. When supported is empty every table locale is a
// candidate. Returns nil when nothing matches.
func (t *Table) Negotiate(header string, supported []*Locale) *Locale {
	tags := parseAcceptLanguage(header)
	if len(tags) == 0 {
		return nil
	}

	accept := func(loc *Locale) bool {
		if loc == nil || loc.IsUndefined() {
			return false
		}
		return len(supported) == 0 || slices.Contains(supported, loc)
	}

	for _, wt := range tags {
		if loc := t.LocaleByTag(wt.tag); accept(loc) {
			return loc
		}
	}

	for _, wt := range tags {
		l := t.LanguageByTag(wt.tag)
		if l == nil {
			continue
		}
		if loc := t.LocaleOf(l, nil); accept(loc) {
			return loc
		}
		// the requested region is unsupported; take the first supported
		// locale of the same language in table order
		for _, loc := range t.LocalesByLanguage(l) {
			if accept(loc) {
				return loc
			}
		}
	}

	return nil
}
