package notify

import "go.uber.org/zap"

// LogNotifier writes alerts to the log instead of sending SMS. Used in
// tests and local runs where no SNS credentials are available.
type LogNotifier struct {
	Log *zap.Logger
}

func (n *LogNotifier) Publish(phoneNumber, message string) error {
	n.Log.Info("SNS message",
		zap.String("phone_number", phoneNumber),
		zap.String("message", message))
	return nil
}
