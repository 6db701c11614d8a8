package reconciler

import (
	"encoding/json"
	"fmt"

	"heating-temp-receiver/src/store"
	"heating-temp-receiver/src/types"
)

// StatusKey is the well-known object holding the persisted status.
const StatusKey = "lambda_internal/receiver_status.json"

// readStatus loads the previous status. A missing status object maps to
// the zero-valued Status; any other store failure is fatal.
func readStatus(s store.ObjectStore, bucket string) (types.Status, error) {
	data, err := s.Get(bucket, StatusKey)
	if store.IsNotFound(err) {
		return types.Status{}, nil
	}
	if err != nil {
		return types.Status{}, fmt.Errorf("read status: %w", err)
	}

	var st types.Status
	if err := json.Unmarshal(data, &st); err != nil {
		return types.Status{}, fmt.Errorf("malformed status: %w", err)
	}
	return st, nil
}

func writeStatus(s store.ObjectStore, bucket string, st types.Status) error {
	body, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode status: %w", err)
	}
	if err := s.Put(bucket, StatusKey, body); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	return nil
}
