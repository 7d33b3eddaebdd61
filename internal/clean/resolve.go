package clean

// resolveOrDefault redirects a foreign key to a sentinel default when it is
// non-positive or not present in the cleaned dimension. This is the one
// fallback operation every cleaner with a sentinel row uses.
func resolveOrDefault(key int, valid map[int]struct{}, def int) int {
	if key <= 0 {
		return def
	}
	if _, ok := valid[key]; !ok {
		return def
	}
	return key
}

// intOrZero dereferences an optional numeric fragment, treating missing as 0.
func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// strOrEmpty dereferences an optional text column.
func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
