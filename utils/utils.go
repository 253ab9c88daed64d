package utils

import "strconv"

// Atoi64OrDefault parses a query parameter that must be a positive integer.
// Absent or non-numeric values fall back to the default, matching the
// pagination behavior of the portal frontend.
func Atoi64OrDefault(value string, def int64) int64 {
	if value == "" {
		return def
	}
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil || i < 1 {
		return def
	}
	return i
}

// ToInt64 converts the numeric types the bson decoder may produce for a
// counter field. Anything else counts as zero.
func ToInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}
