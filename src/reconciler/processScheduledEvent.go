package reconciler

import (
	"fmt"

	"heating-temp-receiver/src/config"
	"heating-temp-receiver/src/types"
	"heating-temp-receiver/src/utils"
)

// processScheduledEvent handles the heartbeat tick: if readings have
// gone silent for longer than the configured delay, raise an alert.
// Before the first reading ever arrives there is no baseline to measure
// silence from, so the tick is a no-op.
func processScheduledEvent(env Env, cfg config.Config, prev types.Status) (types.Status, error) {
	if prev.LastReadingTS == 0 {
		return prev, nil
	}

	now := unixSeconds(env.Now())
	delay := now - prev.LastReadingTS
	if delay > cfg.MaxDelay {
		msg := fmt.Sprintf("Failed to receive temperature readings for %s", utils.FormatDelay(delay))
		if err := raiseAlert(env, cfg, prev, now, msg); err != nil {
			return types.Status{}, err
		}
		return types.Status{TempReading: prev.TempReading, LastReadingTS: prev.LastReadingTS, LastAlertTS: now}, nil
	}

	return prev, nil
}
