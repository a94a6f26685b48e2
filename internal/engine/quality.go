package engine

import (
	"fmt"

	"example.com/attention/internal/domain"
)

// FocusQualityResult scores how uninterrupted a single session was, 0-100.
type FocusQualityResult struct {
	ActivityID           string
	Score                float64
	TotalMinutes         float64
	UninterruptedMinutes float64
	InterruptionsCount   int
	LongSessionBonus     float64
	Explanation          string
}

// FocusQualitySummary rolls the per-session score up across a period.
type FocusQualitySummary struct {
	AvgQuality          float64
	TotalSessions       int
	HighQualitySessions int
}

// FocusQuality scores one session from the share of its minutes that
// survived interruption, a penalty per interruption, and a bonus for long
// sessions. Interruptions are matched by start time falling inside the
// session interval; the engine filters internally, so the full interruption
// list may be passed.
func FocusQuality(cfg Config, activity domain.Activity, interruptions []domain.Interruption) FocusQualityResult {
	total := activity.EndTime.Sub(activity.StartTime).Minutes()

	var interruptedMinutes float64
	count := 0
	for _, i := range interruptions {
		if i.Time.Before(activity.StartTime) || i.Time.After(activity.EndTime) {
			continue
		}
		interruptedMinutes += cfg.durationMinutes(i)
		count++
	}

	uninterrupted := total - interruptedMinutes
	if uninterrupted < 0 {
		uninterrupted = 0
	}

	baseQuality := 0.0
	if total > 0 {
		baseQuality = uninterrupted / total
	}

	penalty := 0.1 * float64(count)
	if penalty > 0.3 {
		penalty = 0.3
	}

	bonus := 0.0
	if total > 45 {
		bonus = (total - 45) / 60 * 0.1
		if bonus > 0.2 {
			bonus = 0.2
		}
	}

	score := (baseQuality - penalty + bonus) * 100
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	score = round1(score)

	explanation := fmt.Sprintf("%.1f of %.1f min uninterrupted, %d interruption(s) (penalty %.2f), long-session bonus %.2f -> %.1f",
		uninterrupted, total, count, penalty, bonus, score)

	return FocusQualityResult{
		ActivityID:           activity.ID,
		Score:                score,
		TotalMinutes:         total,
		UninterruptedMinutes: uninterrupted,
		InterruptionsCount:   count,
		LongSessionBonus:     bonus,
		Explanation:          explanation,
	}
}

// AverageFocusQuality scores every focus-category session in the snapshot and
// averages the results. High-quality sessions are those at or above the
// configured threshold.
func AverageFocusQuality(cfg Config, activities []domain.Activity, interruptions []domain.Interruption) FocusQualitySummary {
	var summary FocusQualitySummary
	var total float64

	for _, a := range activities {
		if !cfg.isFocus(a.Category) {
			continue
		}
		result := FocusQuality(cfg, a, interruptions)
		summary.TotalSessions++
		total += result.Score
		if result.Score >= cfg.HighQualityScore {
			summary.HighQualitySessions++
		}
	}

	if summary.TotalSessions > 0 {
		summary.AvgQuality = round1(total / float64(summary.TotalSessions))
	}
	return summary
}
