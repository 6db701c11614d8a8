package alert

import (
	"heating-temp-receiver/src/config"
	"heating-temp-receiver/src/notify"
	"heating-temp-receiver/src/types"
	"heating-temp-receiver/src/utils"

	"go.uber.org/zap"
)

// ShouldAlert reports whether an alert at time now falls outside the
// repeat-suppression window that started at the previous alert.
func ShouldAlert(prev types.Status, cfg config.Config, now float64) bool {
	return now > prev.LastAlertTS+3600*float64(cfg.RepeatAlertHours)
}

// Send prefixes msg with the UTC send time and publishes it to the
// configured phone number. Exactly one Publish call per Send.
func Send(n notify.Notifier, cfg config.Config, now float64, msg string, log *zap.Logger) error {
	final := utils.FormatTimestamp(now) + " UTC: " + msg
	log.Info("sending alert", zap.String("message", final))
	return n.Publish(cfg.PhoneNumber, final)
}
