package readings

import (
	"encoding/json"
	"fmt"
	"sort"

	"heating-temp-receiver/src/store"
	"heating-temp-receiver/src/types"
)

// ArchiveKey derives the per-day archive object key from a YYYYMMDD day.
func ArchiveKey(day string) string {
	return "allreadings/day" + day + ".json"
}

// WriteReadings merges each date's readings into its archive object via
// whole-object read-modify-write: existing entries first, new readings
// appended, stable-sorted by timestamp, written back wholesale. A
// missing archive counts as empty. Nothing is deduplicated against the
// existing archive, so a reading delivered in two invocations appears
// twice. The read-modify-write is not atomic; concurrent invocations
// touching the same date will race, last writer wins — callers must
// serialize invocations.
func WriteReadings(s store.ObjectStore, bucket string, byDate map[string][]types.Reading) error {
	for day, newReadings := range byDate {
		key := ArchiveKey(day)

		var archived []types.Reading
		data, err := s.Get(bucket, key)
		switch {
		case store.IsNotFound(err):
			// first readings for this date
		case err != nil:
			return fmt.Errorf("read archive %s: %w", key, err)
		default:
			if err := json.Unmarshal(data, &archived); err != nil {
				return fmt.Errorf("decode archive %s: %w", key, err)
			}
		}

		merged := append(archived, newReadings...)
		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].Timestamp < merged[j].Timestamp
		})

		body, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("encode archive %s: %w", key, err)
		}
		if err := s.Put(bucket, key, body); err != nil {
			return fmt.Errorf("write archive %s: %w", key, err)
		}
	}
	return nil
}
