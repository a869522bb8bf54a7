package timeutil

import (
	"fmt"
	"time"
)

// ParseDuration returns human readable format of the given duration.
// Durations below one second are shown in milliseconds.
func ParseDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	totalSeconds := uint64(d / time.Second)

	var hours, minutes, seconds uint64

	if totalSeconds >= 3600 {
		hours = totalSeconds / 3600
		totalSeconds -= hours * 3600
	}
	if totalSeconds >= 60 {
		minutes = totalSeconds / 60
		totalSeconds -= minutes * 60
	}
	seconds = totalSeconds

	if hours > 0 {
		return fmt.Sprintf("%02dh %02dm %02ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%02dm %02ds", minutes, seconds)
	}

	return fmt.Sprintf("%02ds", seconds)
}
