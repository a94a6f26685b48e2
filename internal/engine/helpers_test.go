package engine

import (
	"time"

	"example.com/attention/internal/domain"
)

// Base day used across engine tests: a Monday.
var testDay = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func session(category domain.Category, start time.Time, minutes int) domain.Activity {
	return domain.Activity{
		ID:        "act-" + start.Format("0102-1504"),
		UserID:    "user-1",
		Category:  category,
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
	}
}

func interruption(typ domain.InterruptionType, at time.Time, durationMin int) domain.Interruption {
	d := durationMin
	return domain.Interruption{
		ID:          "int-" + at.Format("0102-1504"),
		UserID:      "user-1",
		Time:        at,
		DurationMin: &d,
		Type:        typ,
	}
}

func untimedInterruption(typ domain.InterruptionType, at time.Time) domain.Interruption {
	return domain.Interruption{
		ID:     "int-" + at.Format("0102-1504"),
		UserID: "user-1",
		Time:   at,
		Type:   typ,
	}
}
