package repo

import (
	"cmp"
	"slices"
)

// SortByPopularity returns a new slice ordered by stargazer count, highest
// first. Records with equal counts keep their relative order.
func SortByPopularity(records []*Record) []*Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b *Record) int {
		return cmp.Compare(b.stargazerCount, a.stargazerCount)
	})
	return sorted
}
