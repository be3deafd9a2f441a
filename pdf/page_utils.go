package pdf

import (
	"fmt"
	"sort"
	"strconv"
)

// FormatPageSelection compresses 1-based page numbers into pdfcpu page
// selections, collapsing consecutive runs into ranges.
// Example: [1 2 3 7 9 10] -> ["1-3", "7", "9-10"]
func FormatPageSelection(pages []int) []string {
	if len(pages) == 0 {
		return nil
	}

	sorted := append([]int(nil), pages...)
	sort.Ints(sorted)

	var selection []string
	start, prev := sorted[0], sorted[0]
	flush := func() {
		if start == prev {
			selection = append(selection, strconv.Itoa(start))
		} else {
			selection = append(selection, fmt.Sprintf("%d-%d", start, prev))
		}
	}

	for _, p := range sorted[1:] {
		if p == prev || p == prev+1 {
			prev = p
			continue
		}
		flush()
		start, prev = p, p
	}
	flush()

	return selection
}

// ValidatePageNumbers checks if all page numbers are valid for a given total number of pages
func ValidatePageNumbers(pages []int, totalPages int) error {
	for _, page := range pages {
		if page < 1 {
			return fmt.Errorf("page numbers must be positive, got %d", page)
		}
		if page > totalPages {
			return fmt.Errorf("page %d exceeds total pages (%d)", page, totalPages)
		}
	}
	return nil
}
