// Package valid holds small total predicates used at input boundaries.
package valid

// IsBool reports whether v is exactly a bool.
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsValueOf reports whether v is one of values. v must have the same dynamic
// type as the values; a string never matches a named string type.
func IsValueOf[T comparable](v any, values ...T) bool {
	t, ok := v.(T)
	if !ok {
		return false
	}
	for _, candidate := range values {
		if candidate == t {
			return true
		}
	}
	return false
}
