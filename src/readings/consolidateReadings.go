package readings

import (
	"fmt"
	"sort"

	"heating-temp-receiver/src/types"
)

// Consolidate sorts readings ascending by timestamp (stable) and drops
// every reading whose timestamp equals the previously retained one, so
// the first element of a run of equal timestamps after the stable sort
// wins regardless of its temperature. The input must be non-empty.
func Consolidate(rs []types.Reading) ([]types.Reading, error) {
	if len(rs) == 0 {
		return nil, fmt.Errorf("consolidate called with no readings")
	}

	sorted := append([]types.Reading(nil), rs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	unique := sorted[:1]
	for _, r := range sorted[1:] {
		if r.Timestamp != unique[len(unique)-1].Timestamp {
			unique = append(unique, r)
		}
	}
	return unique, nil
}
