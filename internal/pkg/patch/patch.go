package patch

// CoalesceString treats blank strings like nil, which is how form fields arrive when left untouched.
func CoalesceString(ptr *string, fallback string) string {
	if ptr != nil && *ptr != "" {
		return *ptr
	}
	return fallback
}
