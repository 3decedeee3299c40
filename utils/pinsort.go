// utils/pinsort.go
package utils

import (
	"sort"
	"time"
)

// PinSortable is any record carrying a pin flag and a creation time.
type PinSortable interface {
	PinSortKey() (pinned bool, createdAt time.Time)
}

// SortPinnedNewest orders records in place: pinned before unpinned, then
// newest-first within each group. The sort is stable, so records with equal
// keys keep their relative order.
func SortPinnedNewest[T PinSortable](records []T) {
	sort.SliceStable(records, func(i, j int) bool {
		iPinned, iCreated := records[i].PinSortKey()
		jPinned, jCreated := records[j].PinSortKey()
		if iPinned != jPinned {
			return iPinned
		}
		return iCreated.After(jCreated)
	})
}
