package domain

import "strings"

// FilterByName returns all blocks whose header name matches the query,
// compared case-insensitively. Storage keeps the original casing; only the
// comparison folds. Results preserve input order.
func FilterByName(blocks []Block, name string) []Block {
	var matched []Block
	for _, b := range blocks {
		if strings.EqualFold(b.Header.Name, name) {
			matched = append(matched, b)
		}
	}
	return matched
}

// FilterByYear returns all blocks whose start date begins with the given
// year string (YYYY). Results preserve input order.
func FilterByYear(blocks []Block, year string) []Block {
	var matched []Block
	for _, b := range blocks {
		if strings.HasPrefix(b.Header.StartDate, year) {
			matched = append(matched, b)
		}
	}
	return matched
}
