package readings

import (
	"time"

	"heating-temp-receiver/src/types"
)

// SplitByDate groups readings by the UTC calendar date of their
// timestamp. Keys are formatted as YYYYMMDD.
func SplitByDate(rs []types.Reading) map[string][]types.Reading {
	byDate := make(map[string][]types.Reading)
	for _, r := range rs {
		day := time.Unix(int64(r.Timestamp), 0).UTC().Format("20060102")
		byDate[day] = append(byDate[day], r)
	}
	return byDate
}
