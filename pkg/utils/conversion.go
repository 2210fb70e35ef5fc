package utils

import "strconv"

// StringToUint64 parses an ID from a URL parameter. Returns 0 on bad input.
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}

// StringToInt parses a query param with a fallback for empty/bad input.
func StringToInt(str string, fallback int) int {
	if str == "" {
		return fallback
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}
	return val
}
