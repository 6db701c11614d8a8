package types

// Reading is one timestamped temperature sample. Received is stamped by
// the reconciler when the sample is first ingested; it is absent on
// readings loaded back out of an archive. Two readings are duplicates
// iff their Timestamp fields are equal; Temperature is not part of the
// identity.
type Reading struct {
	Timestamp   float64 `json:"timestamp"`
	Temperature float64 `json:"temperature"`
	Received    float64 `json:"received,omitempty"`
}

// Status is the rolling state persisted between invocations: the most
// recently accepted temperature, the timestamp of the most recent
// reading, and the timestamp of the most recently sent alert.
// LastAlertTS never decreases.
type Status struct {
	TempReading   float64 `json:"temperature_reading"`
	LastReadingTS float64 `json:"last_reading_timestamp"`
	LastAlertTS   float64 `json:"last_alert_timestamp"`
}
