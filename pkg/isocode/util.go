package isocode

// cloneSlice returns a copy that callers may modify; nil becomes empty.
func cloneSlice[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	copy(out, s)
	return out
}
