package engine

import (
	"fmt"
	"sort"
	"time"

	"example.com/attention/internal/domain"
)

// InsightsReport composes the productivity curve, pattern battery, and a set
// of correlation/prediction heuristics into one summary.
type InsightsReport struct {
	PeakHour  string
	WorstHour string
	PeakDay   string
	WorstDay  string
	// InterruptionImpact is interruptions per 100 focus minutes.
	InterruptionImpact float64
	// AvgRecoveryMin approximates recovery from the mean interruption
	// duration.
	AvgRecoveryMin float64
	// Trend is improving, declining, or stable, from a recent-versus-older
	// comparison of focus minutes.
	Trend string
	// OptimalFocusWindow spans the first and last of the top-3 hours ranked
	// by focus minutes descending. Because the ranking is by minutes, not
	// clock order, the window is not guaranteed contiguous; that quirk is
	// kept on purpose.
	OptimalFocusWindow string
	// RiskPeriods are hour labels collecting three or more interruptions.
	RiskPeriods     []string
	Patterns        []Pattern
	Recommendations []string
}

// AdvancedInsights builds the composed summary over one snapshot window.
func AdvancedInsights(cfg Config, activities []domain.Activity, interruptions []domain.Interruption) InsightsReport {
	curve := ProductivityCurve(cfg, activities, interruptions)

	report := InsightsReport{
		Trend:    focusTrend(cfg, activities),
		Patterns: DetectPatterns(cfg, activities, interruptions),
	}

	report.PeakHour, report.WorstHour = peakAndWorstHours(curve)
	report.PeakDay, report.WorstDay = peakAndWorstDays(cfg, activities)

	var totalFocus float64
	for _, a := range activities {
		if cfg.isFocus(a.Category) {
			totalFocus += a.DurationMinutes()
		}
	}
	if totalFocus > 0 {
		report.InterruptionImpact = float64(len(interruptions)) / totalFocus * 100
	}

	if len(interruptions) > 0 {
		var totalDuration float64
		for _, i := range interruptions {
			totalDuration += cfg.durationMinutes(i)
		}
		report.AvgRecoveryMin = round1(totalDuration / float64(len(interruptions)))
	}

	report.OptimalFocusWindow = optimalFocusWindow(curve)

	for _, p := range curve {
		if p.Interruptions >= 3 {
			report.RiskPeriods = append(report.RiskPeriods, p.Label)
		}
	}

	report.Recommendations = recommendations(report, totalFocus)
	return report
}

// peakAndWorstHours picks the hour with the most focus minutes and, among
// hours that saw sessions, the one with the lowest quality index.
func peakAndWorstHours(curve []CurvePoint) (peak, worst string) {
	peakIdx, worstIdx := -1, -1
	for h, p := range curve {
		if p.FocusMinutes <= 0 {
			continue
		}
		if peakIdx < 0 || p.FocusMinutes > curve[peakIdx].FocusMinutes {
			peakIdx = h
		}
		if worstIdx < 0 || p.Quality < curve[worstIdx].Quality {
			worstIdx = h
		}
	}
	if peakIdx >= 0 {
		peak = curve[peakIdx].Label
	}
	if worstIdx >= 0 {
		worst = curve[worstIdx].Label
	}
	return peak, worst
}

// peakAndWorstDays ranks days of week by focus minutes, skipping days with
// none logged.
func peakAndWorstDays(cfg Config, activities []domain.Activity) (peak, worst string) {
	var byDay [7]float64
	for _, a := range activities {
		if cfg.isFocus(a.Category) {
			byDay[a.StartTime.Weekday()] += a.DurationMinutes()
		}
	}

	peakIdx, worstIdx := -1, -1
	for d := 0; d < 7; d++ {
		if byDay[d] <= 0 {
			continue
		}
		if peakIdx < 0 || byDay[d] > byDay[peakIdx] {
			peakIdx = d
		}
		if worstIdx < 0 || byDay[d] < byDay[worstIdx] {
			worstIdx = d
		}
	}
	if peakIdx >= 0 {
		peak = time.Weekday(peakIdx).String()
	}
	if worstIdx >= 0 {
		worst = time.Weekday(worstIdx).String()
	}
	return peak, worst
}

// focusTrend compares focus minutes in the more recent half of the sessions
// against the older half, with a 10% dead band.
func focusTrend(cfg Config, activities []domain.Activity) string {
	focus := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if cfg.isFocus(a.Category) {
			focus = append(focus, a)
		}
	}
	if len(focus) < 2 {
		return "stable"
	}
	sort.Slice(focus, func(i, j int) bool { return focus[i].StartTime.Before(focus[j].StartTime) })

	mid := len(focus) / 2
	var older, recent float64
	for _, a := range focus[:mid] {
		older += a.DurationMinutes()
	}
	for _, a := range focus[mid:] {
		recent += a.DurationMinutes()
	}

	switch {
	case recent > older*1.1:
		return "improving"
	case recent < older*0.9:
		return "declining"
	default:
		return "stable"
	}
}

func optimalFocusWindow(curve []CurvePoint) string {
	ranked := make([]CurvePoint, 0, len(curve))
	for _, p := range curve {
		if p.FocusMinutes > 0 {
			ranked = append(ranked, p)
		}
	}
	if len(ranked) == 0 {
		return ""
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].FocusMinutes != ranked[j].FocusMinutes {
			return ranked[i].FocusMinutes > ranked[j].FocusMinutes
		}
		return ranked[i].Interruptions < ranked[j].Interruptions
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return fmt.Sprintf("%s - %s", ranked[0].Label, ranked[len(ranked)-1].Label)
}

func recommendations(report InsightsReport, totalFocus float64) []string {
	var recs []string
	if report.InterruptionImpact > 5 {
		recs = append(recs, "Interruptions are eating into your focus; try a do-not-disturb block.")
	}
	if report.AvgRecoveryMin > 15 {
		recs = append(recs, "Recovery from interruptions is slow; time-box distractions instead of absorbing them.")
	}
	if totalFocus < 120 {
		recs = append(recs, "Less than two hours of focus logged this window; schedule more focus time.")
	}
	return recs
}
