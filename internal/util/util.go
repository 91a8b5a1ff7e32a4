// Package util holds small display helpers shared by the view builders.
package util

import (
	"fmt"
	"math"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "45m", "30s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		return fmt.Sprintf("%dm", int(duration.Minutes()))
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatDistanceKm formats a distance in kilometers, switching to meters below one kilometer.
func FormatDistanceKm(km float64) string {
	if km < 0 || math.IsNaN(km) {
		return ""
	}

	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}

	return fmt.Sprintf("%.1f km", km)
}
