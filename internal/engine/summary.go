package engine

import (
	"sort"
	"time"

	"example.com/attention/internal/domain"
)

// CategoryBreakdown reports time spent in one category.
type CategoryBreakdown struct {
	Category     domain.Category
	TotalMinutes float64
	SessionCount int
	AvgDuration  float64
	Percentage   float64
}

// Streaks counts consecutive calendar days with any logged activity.
type Streaks struct {
	Current          int
	Longest          int
	DaysWithActivity int
}

// AnalyticsSummary is the comprehensive period overview.
type AnalyticsSummary struct {
	TotalFocusHours          float64
	TotalInterruptionMinutes float64
	AvgDailyFocusHours       float64
	CategoryBreakdown        []CategoryBreakdown
	Streaks                  Streaks
	QualityScore             float64
}

// Summarize builds the period overview: focus totals, per-category breakdown
// sorted by minutes, activity-day streaks anchored on now's calendar day, and
// a quality score derived from schedule consistency.
func Summarize(cfg Config, activities []domain.Activity, interruptions []domain.Interruption, now time.Time) AnalyticsSummary {
	if now.IsZero() {
		now = time.Now()
	}

	var summary AnalyticsSummary

	var totalFocusMinutes float64
	byCategory := make(map[domain.Category]*CategoryBreakdown)
	categoryOrder := make([]domain.Category, 0, len(domain.Categories))
	days := make(map[string]bool)

	var totalAllMinutes float64
	for _, a := range activities {
		minutes := a.DurationMinutes()
		if cfg.isFocus(a.Category) {
			totalFocusMinutes += minutes
		}
		entry, ok := byCategory[a.Category]
		if !ok {
			entry = &CategoryBreakdown{Category: a.Category}
			byCategory[a.Category] = entry
			categoryOrder = append(categoryOrder, a.Category)
		}
		entry.TotalMinutes += minutes
		entry.SessionCount++
		totalAllMinutes += minutes
		days[a.StartTime.Format("2006-01-02")] = true
	}

	for _, i := range interruptions {
		summary.TotalInterruptionMinutes += cfg.durationMinutes(i)
	}
	summary.TotalInterruptionMinutes = round1(summary.TotalInterruptionMinutes)

	summary.TotalFocusHours = round1(totalFocusMinutes / 60)
	if len(days) > 0 {
		summary.AvgDailyFocusHours = round1(totalFocusMinutes / float64(len(days)) / 60)
	}

	breakdown := make([]CategoryBreakdown, 0, len(byCategory))
	for _, cat := range categoryOrder {
		entry := byCategory[cat]
		entry.AvgDuration = round1(entry.TotalMinutes / float64(entry.SessionCount))
		if totalAllMinutes > 0 {
			entry.Percentage = round1(entry.TotalMinutes / totalAllMinutes * 100)
		}
		entry.TotalMinutes = round1(entry.TotalMinutes)
		breakdown = append(breakdown, *entry)
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].TotalMinutes > breakdown[j].TotalMinutes
	})
	summary.CategoryBreakdown = breakdown

	summary.Streaks = computeStreaks(days, now)

	narrative := GenerateInsights(cfg, activities, interruptions)
	if len(activities) > 0 {
		summary.QualityScore = round1(narrative.ConsistencyScore * 100)
	}

	return summary
}

// computeStreaks derives current and longest runs of consecutive activity
// days. The current streak counts back from today.
func computeStreaks(days map[string]bool, now time.Time) Streaks {
	if len(days) == 0 {
		return Streaks{}
	}

	sorted := make([]time.Time, 0, len(days))
	for key := range days {
		day, err := time.ParseInLocation("2006-01-02", key, now.Location())
		if err != nil {
			continue
		}
		sorted = append(sorted, day)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	streaks := Streaks{DaysWithActivity: len(sorted)}

	today := startOfDay(now)
	for i, day := range sorted {
		if day.Equal(today.AddDate(0, 0, -i)) {
			streaks.Current++
		} else {
			break
		}
	}

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Sub(sorted[i]) == 24*time.Hour {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}
	streaks.Longest = longest

	return streaks
}
