package converting

// Unwrap returns the pointed-to value, or the type's zero value for nil.
func Unwrap[T any](x *T) (r T) {
	if x != nil {
		r = *x
	}

	return
}
