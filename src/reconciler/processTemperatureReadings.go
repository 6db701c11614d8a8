package reconciler

import (
	"encoding/json"
	"fmt"

	"heating-temp-receiver/src/alert"
	"heating-temp-receiver/src/config"
	"heating-temp-receiver/src/readings"
	"heating-temp-receiver/src/store"
	"heating-temp-receiver/src/types"
	"heating-temp-receiver/src/utils"

	"go.uber.org/zap"
)

// processTemperatureReadings handles a batch of uploaded reading files:
// fetch each referenced object (skipping missing or empty ones),
// consolidate the pooled readings, merge them into the per-day
// archives, and derive the next status from the latest reading.
func processTemperatureReadings(env Env, cfg config.Config, prev types.Status, records []ObjectRef) (types.Status, error) {
	now := unixSeconds(env.Now())

	var pool []types.Reading
	var bucket string
	for _, rec := range records {
		bucket = rec.Bucket

		data, err := env.Store.Get(rec.Bucket, rec.Key)
		if store.IsNotFound(err) {
			env.Log.Warn("event references a missing object",
				zap.String("bucket", rec.Bucket), zap.String("key", rec.Key))
			continue
		}
		if err != nil {
			return types.Status{}, err
		}
		if len(data) == 0 {
			env.Log.Warn("the file in the event is empty",
				zap.String("bucket", rec.Bucket), zap.String("key", rec.Key))
			continue
		}

		var batch []types.Reading
		if err := json.Unmarshal(data, &batch); err != nil {
			return types.Status{}, fmt.Errorf("decode readings s3://%s/%s: %w", rec.Bucket, rec.Key, err)
		}
		for i := range batch {
			batch[i].Received = now
		}
		pool = append(pool, batch...)
	}

	if len(pool) == 0 {
		// admission failure, reported out of band: bypasses the
		// suppression window
		err := alert.Send(env.Notifier, cfg, now,
			"Lambda event handler was invoked, but no temperature readings were processed.", env.Log)
		if err != nil {
			return types.Status{}, err
		}
		return types.Status{LastAlertTS: now}, nil
	}

	consolidated, err := readings.Consolidate(pool)
	if err != nil {
		return types.Status{}, err
	}

	// Archives are written to the bucket of the last record seen, even
	// when the batch mixed buckets.
	if err := readings.WriteReadings(env.Store, bucket, readings.SplitByDate(consolidated)); err != nil {
		return types.Status{}, err
	}

	latest := consolidated[len(consolidated)-1]

	if latest.Temperature < cfg.MinimumTemperature && latest.Received == now {
		msg := fmt.Sprintf("The latest temperature reading of %v (as of %s) has fallen below the threshold of %v",
			latest.Temperature, utils.FormatTimestamp(latest.Timestamp), cfg.MinimumTemperature)
		if err := raiseAlert(env, cfg, prev, now, msg); err != nil {
			return types.Status{}, err
		}
		return types.Status{TempReading: latest.Temperature, LastReadingTS: latest.Timestamp, LastAlertTS: now}, nil
	}

	if delay := now - latest.Timestamp; delay > cfg.MaxDelay {
		msg := fmt.Sprintf("Warning, received a delayed temperature reading. Delay is %s", utils.FormatDelay(delay))
		if err := raiseAlert(env, cfg, prev, now, msg); err != nil {
			return types.Status{}, err
		}
		return types.Status{TempReading: latest.Temperature, LastReadingTS: latest.Timestamp, LastAlertTS: now}, nil
	}

	return types.Status{TempReading: latest.Temperature, LastReadingTS: latest.Timestamp, LastAlertTS: prev.LastAlertTS}, nil
}
