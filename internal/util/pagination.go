package util

import "strconv"

const DefaultPageSize = 20

// Calculate turns a 1-based page and size into an offset/limit pair, clamping
// out-of-range values.
func Calculate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = DefaultPageSize
	}
	offset = (page - 1) * size
	return offset, size
}

// ParseIntDefault parses s, falling back to def on empty or bad input.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
