package engine

import (
	"sort"
	"time"

	"example.com/attention/internal/domain"
)

// DurationBucket counts interruptions whose duration falls in one band of the
// fixed distribution.
type DurationBucket struct {
	Label string
	Count int
}

// WeeklyMetrics aggregates interruptions over a rolling seven-day window.
type WeeklyMetrics struct {
	Start time.Time
	End   time.Time
	Count int
	// HourlyMinutes sums interruption minutes per hour of day.
	HourlyMinutes [24]float64
	// DailyMinutes sums interruption minutes per calendar day ("2006-01-02").
	DailyMinutes map[string]float64
	// DurationBuckets partitions every interruption into exactly one of the
	// fixed bands 0-5, 5-15, 15-30, 30-60, 60+.
	DurationBuckets []DurationBucket
	// AvgRecoveryMin is the mean gap between an interruption's effective end
	// and the next focus session's start, over interruptions that were
	// meaningfully resumed. Zero when no sample qualifies.
	AvgRecoveryMin  float64
	RecoverySamples int
}

var bucketEdges = []struct {
	label string
	max   float64
}{
	{"0-5", 5},
	{"5-15", 15},
	{"15-30", 30},
	{"30-60", 60},
}

// ComputeWeeklyMetrics aggregates the interruptions of the seven calendar
// days ending on end (zero end means now).
func ComputeWeeklyMetrics(cfg Config, interruptions []domain.Interruption, activities []domain.Activity, end time.Time) WeeklyMetrics {
	if end.IsZero() {
		end = time.Now()
	}
	start := startOfDay(end.AddDate(0, 0, -6))

	metrics := WeeklyMetrics{
		Start:        start,
		End:          end,
		DailyMinutes: make(map[string]float64),
	}
	buckets := make([]DurationBucket, 0, len(bucketEdges)+1)
	for _, edge := range bucketEdges {
		buckets = append(buckets, DurationBucket{Label: edge.label})
	}
	buckets = append(buckets, DurationBucket{Label: "60+"})

	// Focus session starts, sorted, for recovery sampling.
	focusStarts := make([]time.Time, 0, len(activities))
	for _, a := range activities {
		if cfg.isFocus(a.Category) {
			focusStarts = append(focusStarts, a.StartTime)
		}
	}
	sort.Slice(focusStarts, func(i, j int) bool { return focusStarts[i].Before(focusStarts[j]) })

	var recoveryTotal float64

	for _, i := range interruptions {
		if i.Time.Before(start) || i.Time.After(end) {
			continue
		}
		duration := cfg.durationMinutes(i)
		metrics.Count++
		metrics.HourlyMinutes[i.Time.Hour()] += duration
		metrics.DailyMinutes[i.Time.Format("2006-01-02")] += duration

		placed := false
		for idx, edge := range bucketEdges {
			if duration <= edge.max {
				buckets[idx].Count++
				placed = true
				break
			}
		}
		if !placed {
			buckets[len(buckets)-1].Count++
		}

		if gap, ok := recoveryGap(cfg, i, focusStarts); ok {
			recoveryTotal += gap
			metrics.RecoverySamples++
		}
	}

	metrics.DurationBuckets = buckets
	if metrics.RecoverySamples > 0 {
		metrics.AvgRecoveryMin = round1(recoveryTotal / float64(metrics.RecoverySamples))
	}
	return metrics
}

// recoveryGap finds the minutes between the interruption's effective end and
// the earliest focus session starting strictly after it. Gaps outside
// (0, MaxRecoveryGapMin) mean the user never meaningfully resumed and
// contribute no sample.
func recoveryGap(cfg Config, i domain.Interruption, sortedFocusStarts []time.Time) (float64, bool) {
	endAt := cfg.effectiveEnd(i)
	idx := sort.Search(len(sortedFocusStarts), func(n int) bool {
		return sortedFocusStarts[n].After(endAt)
	})
	if idx == len(sortedFocusStarts) {
		return 0, false
	}
	gap := sortedFocusStarts[idx].Sub(endAt).Minutes()
	if gap <= 0 || gap >= cfg.MaxRecoveryGapMin {
		return 0, false
	}
	return gap, true
}
