package domain

import (
	"sort"
	"strconv"
	"strings"
)

// ParsePageSelection parses a user-facing page range string such as
// "1,3-5,8" into sorted, deduplicated zero-based page indices. Page numbers
// in the input are 1-based, matching what a viewer displays.
//
// Returns ErrInvalidSelection for empty input, non-numeric tokens, page
// numbers below 1 and reversed ranges. Indices beyond the document's page
// count are not validated here; the extraction policy is to drop them.
func ParsePageSelection(s string) ([]int, error) {
	seen := make(map[int]bool)

	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, ErrInvalidSelection
		}

		if lo, hi, ok := strings.Cut(token, "-"); ok {
			from, err := parsePageNumber(lo)
			if err != nil {
				return nil, err
			}
			to, err := parsePageNumber(hi)
			if err != nil {
				return nil, err
			}
			if to < from {
				return nil, ErrInvalidSelection
			}
			for p := from; p <= to; p++ {
				seen[p-1] = true
			}
			continue
		}

		p, err := parsePageNumber(token)
		if err != nil {
			return nil, err
		}
		seen[p-1] = true
	}

	if len(seen) == 0 {
		return nil, ErrInvalidSelection
	}

	indices := make([]int, 0, len(seen))
	for i := range seen {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices, nil
}

func parsePageNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, ErrInvalidSelection
	}
	return n, nil
}
