package isocode

// Script is an ISO 15924 script code.
type Script struct {
	code    string
	name    string
	numeric int
}

// Code returns the four-letter title-case code, e.g. "Latn".
func (s *Script) Code() string { return s.code }

// Name returns the English name.
func (s *Script) Name() string { return s.name }

// Numeric returns the ISO 15924 number, or -1 for the sentinel.
func (s *Script) Numeric() int { return s.numeric }

// IsUndefined reports whether s is the "Undefined" sentinel.
func (s *Script) IsUndefined() bool { return s.code == undefinedScript }

// String returns the code.
func (s *Script) String() string { return s.code }

// LookupScript resolves a script code. Case-sensitive lookups require the
// canonical title case ("Jpan").
func (t *Table) LookupScript(code string, caseSensitive bool) *Script {
	key, ok := t.CanonicalScript(code, caseSensitive)
	if !ok {
		return nil
	}
	return t.scriptByCode[key]
}

// ScriptByNumeric resolves a numeric script code. Values <= 0 never match.
func (t *Table) ScriptByNumeric(n int) *Script {
	if n <= 0 {
		return nil
	}
	return t.scriptByNumeric[n]
}

// Scripts returns every script entry in table order.
func (t *Table) Scripts() []*Script { return cloneSlice(t.scripts) }
