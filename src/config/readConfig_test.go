package config

import (
	"testing"

	"heating-temp-receiver/src/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`{"minimum_temperature": 42, "repeat_alert_hours": 3, "phonenumber": "lololo", "max_delay": 10}`))
	require.NoError(t, err)
	assert.Equal(t, 42.0, cfg.MinimumTemperature)
	assert.Equal(t, 3, cfg.RepeatAlertHours)
	assert.Equal(t, "lololo", cfg.PhoneNumber)
	assert.Equal(t, 600.0, cfg.MaxDelay) // stored in minutes
}

func TestParse_MissingKeys(t *testing.T) {
	for _, raw := range []string{
		`{"repeat_alert_hours": 3, "phonenumber": "x", "max_delay": 10}`,
		`{"minimum_temperature": 42, "phonenumber": "x", "max_delay": 10}`,
		`{"minimum_temperature": 42, "repeat_alert_hours": 3, "max_delay": 10}`,
		`{"minimum_temperature": 42, "repeat_alert_hours": 3, "phonenumber": "x"}`,
	} {
		_, err := Parse([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"minimum_temperature":`))
	require.Error(t, err)
}

func TestRead(t *testing.T) {
	s := store.NewMemStore()
	require.NoError(t, s.Put("lambda-bucket", ConfigKey,
		[]byte(`{"minimum_temperature": 10, "repeat_alert_hours": 1, "phonenumber": "+49170", "max_delay": 60}`)))

	cfg, err := Read(s, "lambda-bucket")
	require.NoError(t, err)
	assert.Equal(t, 3600.0, cfg.MaxDelay)
}

func TestRead_MissingObjectIsFatal(t *testing.T) {
	_, err := Read(store.NewMemStore(), "lambda-bucket")
	require.Error(t, err)
}
