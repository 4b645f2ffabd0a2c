// Package patch resolves optional request values against defaults.
package patch

// Coalesce returns *v, or fallback when v is nil.
func Coalesce[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

// Bounds resolves an optional [from, to] pair, falling back to lo and hi for
// the missing ends.
func Bounds[T any](from, to *T, lo, hi T) (T, T) {
	return Coalesce(from, lo), Coalesce(to, hi)
}
