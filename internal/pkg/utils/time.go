package utils

import (
	"fmt"
	"medvault-client/internal/pkg/constvars"
	"time"
)

func FormatEmergencyTimestamp(t time.Time) string {
	return t.UTC().Format(constvars.EmergencyTimestampLayout)
}

// TimeAgo renders the coarse age used on the triage board.
func TimeAgo(now, then time.Time) string {
	minutes := int(now.Sub(then) / time.Minute)
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}

// TriageWindow maps a triage time filter to its look-back duration. The
// second return is false for ALL and unknown filters.
func TriageWindow(filter string) (time.Duration, bool) {
	switch filter {
	case constvars.TriageTimeLastHour:
		return time.Hour, true
	case constvars.TriageTimeLast6Hours:
		return 6 * time.Hour, true
	case constvars.TriageTimeToday:
		return 24 * time.Hour, true
	case constvars.TriageTimeLast3Days:
		return 72 * time.Hour, true
	default:
		return 0, false
	}
}

var backendTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseBackendTime accepts RFC 3339 instants and zone-less date-times, which
// are interpreted in loc.
func ParseBackendTime(value string, loc *time.Location) (time.Time, error) {
	var lastErr error
	for _, layout := range backendTimeLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
