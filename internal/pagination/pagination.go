// Package pagination slices ordered result lists into fixed-size pages.
package pagination

// PageSize is the fixed number of items per page
const PageSize = 10

// Page returns the 1-based page of items. Page numbers below 1 are treated as
// page 1, and out-of-range pages yield an empty slice.
func Page[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}

	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
