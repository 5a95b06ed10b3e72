package isocode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/isocode/pkg/isocode"
)

func TestLookupLanguageAlpha3(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		code          string
		caseSensitive bool
		want          string
	}{
		{name: "exact", code: "jpn", caseSensitive: true, want: "jpn"},
		{name: "upper strict", code: "JPN", caseSensitive: true, want: ""},
		{name: "upper folded", code: "JPN", caseSensitive: false, want: "jpn"},
		{name: "empty", code: "", caseSensitive: true, want: ""},
		{name: "one char", code: "?", caseSensitive: true, want: ""},
		{name: "four chars", code: "????", caseSensitive: true, want: ""},
		{name: "alpha-2 input", code: "he", caseSensitive: true, want: "heb"},
		{name: "legacy iw", code: "iw", caseSensitive: true, want: "heb"},
		{name: "legacy ji", code: "ji", caseSensitive: true, want: "yid"},
		{name: "legacy in", code: "in", caseSensitive: true, want: "ind"},
		{name: "alpha-2 yields terminological form", code: "de", caseSensitive: true, want: "deu"},
		{name: "alpha-2 folded", code: "DE", caseSensitive: false, want: "deu"},
		{name: "newari", code: "new", caseSensitive: true, want: "new"},
		{name: "newari capitalized strict", code: "New", caseSensitive: true, want: "new"},
		{name: "newari capitalized folded", code: "New", caseSensitive: false, want: "new"},
		{name: "newari upper strict", code: "NEW", caseSensitive: true, want: ""},
		{name: "newari upper folded", code: "NEW", caseSensitive: false, want: "new"},
		{name: "sentinel", code: "undefined", caseSensitive: true, want: "undefined"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := isocode.LookupLanguageAlpha3(tt.code, tt.caseSensitive)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Code())
		})
	}
}

func TestLanguageAlpha3_Synonyms(t *testing.T) {
	t.Parallel()

	pairs := []struct{ t, b string }{
		{t: "bod", b: "tib"},
		{t: "eus", b: "baq"},
		{t: "ces", b: "cze"},
		{t: "cym", b: "wel"},
		{t: "deu", b: "ger"},
		{t: "ell", b: "gre"},
		{t: "fas", b: "per"},
		{t: "fra", b: "fre"},
		{t: "hye", b: "arm"},
		{t: "sqi", b: "alb"},
	}

	for _, p := range pairs {
		p := p
		t.Run(p.t, func(t *testing.T) {
			t.Parallel()
			term := isocode.LookupLanguageAlpha3(p.t, true)
			bib := isocode.LookupLanguageAlpha3(p.b, true)
			require.NotNil(t, term)
			require.NotNil(t, bib)

			assert.Equal(t, isocode.UsageTerminology, term.Usage())
			assert.Equal(t, isocode.UsageBibliography, bib.Usage())

			assert.Same(t, bib, term.Synonym())
			assert.Same(t, term, bib.Synonym())

			assert.Same(t, term, term.Alpha3T())
			assert.Same(t, term, bib.Alpha3T())
			assert.Same(t, bib, term.Alpha3B())
			assert.Same(t, bib, bib.Alpha3B())

			assert.Same(t, term.Alpha2(), bib.Alpha2())
			assert.Equal(t, term.Name(), bib.Name())
		})
	}
}

func TestLanguageAlpha3_CommonCode(t *testing.T) {
	t.Parallel()

	jpn := isocode.LookupLanguageAlpha3("jpn", true)
	require.NotNil(t, jpn)
	assert.Equal(t, isocode.UsageCommon, jpn.Usage())
	assert.Same(t, jpn, jpn.Synonym())
	assert.Same(t, jpn, jpn.Alpha3T())
	assert.Same(t, jpn, jpn.Alpha3B())
	assert.Equal(t, "ja", jpn.Alpha2().Code())

	ang := isocode.LookupLanguageAlpha3("ang", true)
	require.NotNil(t, ang)
	assert.Nil(t, ang.Alpha2())
	assert.Equal(t, "Old English", ang.Name())
}

func TestLanguageAlpha3_SynonymProperties(t *testing.T) {
	t.Parallel()

	for _, a := range isocode.Default().LanguagesAlpha3() {
		assert.Same(t, a, a.Synonym().Synonym(), "synonym of %s is an involution", a.Code())
		assert.NotEqual(t, isocode.UsageBibliography, a.Alpha3T().Usage(), a.Code())
		assert.NotEqual(t, isocode.UsageTerminology, a.Alpha3B().Usage(), a.Code())
	}
}

func TestUsage_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "common", isocode.UsageCommon.String())
	assert.Equal(t, "terminology", isocode.UsageTerminology.String())
	assert.Equal(t, "bibliography", isocode.UsageBibliography.String())
}
