package engine

import (
	"time"

	"example.com/attention/internal/domain"
)

// DailyMetrics summarises one calendar day of interruptions.
type DailyMetrics struct {
	Date           time.Time
	Count          int
	TotalMinutes   float64
	AvgMinutes     float64
	LongestMinutes float64
	// TopType is the most frequent interruption type that day, nil when the
	// day has none. Ties break deterministically: the first type in
	// domain.InterruptionTypes order to reach the maximum count wins;
	// unknown types are considered after the canonical set, in input order.
	TopType          *domain.InterruptionType
	InterruptionRate float64
}

// ComputeDailyMetrics aggregates the interruptions falling on the given
// calendar day (local to the day's location; zero day means today). The
// interruption rate is interruptions per focus-category hour logged that day.
func ComputeDailyMetrics(cfg Config, interruptions []domain.Interruption, activities []domain.Activity, day time.Time) DailyMetrics {
	if day.IsZero() {
		day = time.Now()
	}
	dayStart := startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	metrics := DailyMetrics{Date: dayStart}

	var total float64
	var longest float64
	counts := make(map[domain.InterruptionType]int)
	order := make([]domain.InterruptionType, 0, len(domain.InterruptionTypes))
	order = append(order, domain.InterruptionTypes...)

	for _, i := range interruptions {
		if i.Time.Before(dayStart) || !i.Time.Before(dayEnd) {
			continue
		}
		duration := cfg.durationMinutes(i)
		metrics.Count++
		total += duration
		if duration > longest {
			longest = duration
		}
		if _, seen := counts[i.Type]; !seen && !i.Type.Valid() {
			order = append(order, i.Type)
		}
		counts[i.Type]++
	}

	if metrics.Count == 0 {
		return metrics
	}

	metrics.TotalMinutes = total
	metrics.AvgMinutes = round1(total / float64(metrics.Count))
	metrics.LongestMinutes = longest

	best := 0
	for _, typ := range order {
		if counts[typ] > best {
			best = counts[typ]
			top := typ
			metrics.TopType = &top
		}
	}

	var focusHours float64
	for _, a := range activities {
		if !cfg.isFocus(a.Category) {
			continue
		}
		if a.StartTime.Before(dayStart) || !a.StartTime.Before(dayEnd) {
			continue
		}
		focusHours += a.DurationMinutes() / 60
	}
	if focusHours > 0 {
		metrics.InterruptionRate = float64(metrics.Count) / focusHours
	}

	return metrics
}
