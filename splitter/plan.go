package splitter

import "fmt"

// Chunk is a half-open, zero-based page range [Start, End).
type Chunk struct {
	Start int
	End   int
}

// Size returns the number of pages in the chunk.
func (c Chunk) Size() int {
	return c.End - c.Start
}

// String renders the chunk as the 1-based inclusive range shown to users.
func (c Chunk) String() string {
	return fmt.Sprintf("pages %d-%d", c.Start+1, c.End)
}

// Plan partitions [0, totalPages) into contiguous chunks of at most
// maxPages pages each. Only the last chunk may be shorter.
func Plan(totalPages, maxPages int) ([]Chunk, error) {
	if maxPages < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageLimit, maxPages)
	}
	if totalPages <= 0 {
		return nil, nil
	}

	chunks := make([]Chunk, 0, (totalPages+maxPages-1)/maxPages)
	for start := 0; start < totalPages; start += maxPages {
		chunks = append(chunks, Chunk{Start: start, End: min(start+maxPages, totalPages)})
	}
	return chunks, nil
}

// complement returns the 1-based page numbers of a totalPages document that
// fall outside the chunk, ascending.
func (c Chunk) complement(totalPages int) []int {
	pages := make([]int, 0, totalPages-c.Size())
	for i := 0; i < c.Start; i++ {
		pages = append(pages, i+1)
	}
	for i := c.End; i < totalPages; i++ {
		pages = append(pages, i+1)
	}
	return pages
}
