package utils

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// DerefOr returns the pointed value, or fallback when p is nil
func DerefOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
