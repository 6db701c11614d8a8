package config

import (
	"encoding/json"
	"fmt"

	"heating-temp-receiver/src/store"
)

// ConfigKey is the well-known object holding the receiver configuration.
const ConfigKey = "lambda_internal/receiver_config.json"

// Config is the per-invocation receiver configuration. MaxDelay is kept
// in seconds; the stored value is in minutes.
type Config struct {
	MinimumTemperature float64
	RepeatAlertHours   int
	PhoneNumber        string
	MaxDelay           float64
}

// rawConfig mirrors the stored JSON object. Pointer fields so that
// missing required keys are detectable.
type rawConfig struct {
	MinimumTemperature *float64 `json:"minimum_temperature"`
	RepeatAlertHours   *int     `json:"repeat_alert_hours"`
	PhoneNumber        *string  `json:"phonenumber"`
	MaxDelayMinutes    *int     `json:"max_delay"`
}

// Parse validates a raw configuration object and converts max_delay
// from minutes to seconds.
func Parse(data []byte) (Config, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("malformed config: %w", err)
	}
	if raw.MinimumTemperature == nil {
		return Config{}, fmt.Errorf("config is missing required key %q", "minimum_temperature")
	}
	if raw.RepeatAlertHours == nil {
		return Config{}, fmt.Errorf("config is missing required key %q", "repeat_alert_hours")
	}
	if raw.PhoneNumber == nil {
		return Config{}, fmt.Errorf("config is missing required key %q", "phonenumber")
	}
	if raw.MaxDelayMinutes == nil {
		return Config{}, fmt.Errorf("config is missing required key %q", "max_delay")
	}
	return Config{
		MinimumTemperature: *raw.MinimumTemperature,
		RepeatAlertHours:   *raw.RepeatAlertHours,
		PhoneNumber:        *raw.PhoneNumber,
		MaxDelay:           float64(*raw.MaxDelayMinutes) * 60,
	}, nil
}

// Read loads and validates the configuration from the given bucket.
// Any failure here is fatal for the invocation.
func Read(s store.ObjectStore, bucket string) (Config, error) {
	data, err := s.Get(bucket, ConfigKey)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}
