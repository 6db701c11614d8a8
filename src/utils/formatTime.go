package utils

import (
	"fmt"
	"time"
)

// FormatTimestamp renders epoch seconds as "YYYY.MM.DD HH:MM:SS" in UTC.
func FormatTimestamp(ts float64) string {
	return time.Unix(int64(ts), 0).UTC().Format("2006.01.02 15:04:05")
}

// FormatDelay renders a duration in seconds as "H:MM:SS", hours
// uncapped. Fractional seconds are truncated.
func FormatDelay(seconds float64) string {
	total := int64(seconds)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
