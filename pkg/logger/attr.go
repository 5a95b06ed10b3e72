package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error returns an attribute with key "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// CodeSpace names the identifier space a lookup ran against, e.g. "country".
func CodeSpace(space string) slog.Attr {
	return slog.String("code_space", space)
}

// Query holds the raw input of a lookup.
func Query(q string) slog.Attr {
	return slog.String("query", q)
}

// CaseSensitive records the case policy a lookup ran with.
func CaseSensitive(v bool) slog.Attr {
	return slog.Bool("case_sensitive", v)
}
