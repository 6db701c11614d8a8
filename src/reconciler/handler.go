package reconciler

import (
	"heating-temp-receiver/src/alert"
	"heating-temp-receiver/src/config"
	"heating-temp-receiver/src/types"

	"go.uber.org/zap"
)

// Reconcile runs one full invocation: load config and previous status,
// apply the event's transition, persist the new status. Each invocation
// is a pure function of (persisted status, config, event) apart from
// the store and notifier calls; callers must serialize invocations,
// there is no cross-invocation locking.
func Reconcile(env Env, event Event) error {
	cfg, err := config.Read(env.Store, env.LambdaBucket)
	if err != nil {
		return err
	}
	prev, err := readStatus(env.Store, env.LambdaBucket)
	if err != nil {
		return err
	}

	var next types.Status
	switch event.Kind {
	case ReadingBatch:
		next, err = processTemperatureReadings(env, cfg, prev, event.Records)
	case Heartbeat:
		next, err = processScheduledEvent(env, cfg, prev)
	default:
		now := unixSeconds(env.Now())
		env.Log.Warn("received an unexpected event")
		// out-of-band signal, not subject to the suppression window
		err = alert.Send(env.Notifier, cfg, now, "Lambda function received an unexpected event.", env.Log)
		next = types.Status{
			TempReading:   prev.TempReading,
			LastReadingTS: prev.LastReadingTS,
			LastAlertTS:   now,
		}
	}
	if err != nil {
		return err
	}

	return writeStatus(env.Store, env.LambdaBucket, next)
}

// raiseAlert sends msg unless the suppression window since the previous
// alert is still open.
func raiseAlert(env Env, cfg config.Config, prev types.Status, now float64, msg string) error {
	if !alert.ShouldAlert(prev, cfg, now) {
		env.Log.Info("not sending alert", zap.String("message", msg))
		return nil
	}
	return alert.Send(env.Notifier, cfg, now, msg, env.Log)
}
