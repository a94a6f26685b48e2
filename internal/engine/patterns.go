package engine

import (
	"fmt"
	"math"
	"time"

	"example.com/attention/internal/domain"
)

// PatternType marks whether an observed pattern helps or hurts.
type PatternType string

const (
	PatternPositive PatternType = "positive"
	PatternNegative PatternType = "negative"
	PatternNeutral  PatternType = "neutral"
)

// Pattern is a qualitative, rule-derived behavioral observation.
type Pattern struct {
	Type        PatternType
	Name        string
	Description string
	Confidence  int
	Suggestion  string
}

// DetectPatterns runs the fixed rule battery over the lookback window. Each
// rule contributes at most one pattern; rules whose preconditions fail
// contribute none, so sparse data simply yields a short (possibly empty)
// list.
func DetectPatterns(cfg Config, activities []domain.Activity, interruptions []domain.Interruption) []Pattern {
	patterns := make([]Pattern, 0, 5)

	if p, ok := timePreferencePattern(cfg, activities); ok {
		patterns = append(patterns, p)
	}
	if p, ok := hotspotPattern(cfg, interruptions); ok {
		patterns = append(patterns, p)
	}
	if p, ok := sessionLengthPattern(cfg, activities); ok {
		patterns = append(patterns, p)
	}
	if p, ok := peakDayPattern(cfg, activities); ok {
		patterns = append(patterns, p)
	}
	if p, ok := consistencyPattern(cfg, activities); ok {
		patterns = append(patterns, p)
	}

	return patterns
}

// timePreferencePattern compares morning [6,12) against evening [18,24)
// focus minutes; a 1.5x lead either way marks the user a morning or evening
// performer.
func timePreferencePattern(cfg Config, activities []domain.Activity) (Pattern, bool) {
	var morning, evening float64
	for _, a := range activities {
		if !cfg.isFocus(a.Category) {
			continue
		}
		switch h := a.StartTime.Hour(); {
		case h >= 6 && h < 12:
			morning += a.DurationMinutes()
		case h >= 18:
			evening += a.DurationMinutes()
		}
	}

	ratio := cfg.Patterns.TimePreferenceRatio
	switch {
	case morning > 0 && morning >= evening*ratio:
		return Pattern{
			Type:        PatternPositive,
			Name:        "Morning performer",
			Description: fmt.Sprintf("You log %.0f focus minutes in the morning versus %.0f in the evening.", morning, evening),
			Confidence:  cfg.Patterns.TimePreferenceConfidence,
			Suggestion:  "Protect your mornings for the work that matters most.",
		}, true
	case evening > 0 && evening >= morning*ratio:
		return Pattern{
			Type:        PatternPositive,
			Name:        "Evening performer",
			Description: fmt.Sprintf("You log %.0f focus minutes in the evening versus %.0f in the morning.", evening, morning),
			Confidence:  cfg.Patterns.TimePreferenceConfidence,
			Suggestion:  "Schedule demanding work in your productive evening hours.",
		}, true
	}
	return Pattern{}, false
}

// hotspotPattern flags the hour collecting the most interruptions once it
// reaches the minimum count.
func hotspotPattern(cfg Config, interruptions []domain.Interruption) (Pattern, bool) {
	var counts [24]int
	for _, i := range interruptions {
		counts[i.Time.Hour()]++
	}

	peakHour, peakCount := 0, 0
	for h, c := range counts {
		if c > peakCount {
			peakHour, peakCount = h, c
		}
	}
	if peakCount < cfg.Patterns.HotspotMinCount {
		return Pattern{}, false
	}

	return Pattern{
		Type:        PatternNegative,
		Name:        "Interruption hotspot",
		Description: fmt.Sprintf("%d interruptions cluster around %s.", peakCount, hourLabel(peakHour)),
		Confidence:  cfg.Patterns.HotspotConfidence,
		Suggestion:  fmt.Sprintf("Silence notifications around %s or move focus work elsewhere.", hourLabel(peakHour)),
	}, true
}

// sessionLengthPattern classifies the mean focus-session length.
func sessionLengthPattern(cfg Config, activities []domain.Activity) (Pattern, bool) {
	var total float64
	count := 0
	for _, a := range activities {
		if !cfg.isFocus(a.Category) {
			continue
		}
		total += a.DurationMinutes()
		count++
	}
	if count == 0 {
		return Pattern{}, false
	}

	mean := total / float64(count)
	switch {
	case mean < cfg.Patterns.ShortSessionMin:
		return Pattern{
			Type:        PatternNegative,
			Name:        "Short sessions",
			Description: fmt.Sprintf("Your focus sessions average %.0f minutes, too short to reach depth.", mean),
			Confidence:  cfg.Patterns.ShortSessionConfidence,
			Suggestion:  "Try stretching sessions toward 45-60 minutes.",
		}, true
	case mean > cfg.Patterns.LongSessionMin:
		return Pattern{
			Type:        PatternNeutral,
			Name:        "Long sessions",
			Description: fmt.Sprintf("Your focus sessions average %.0f minutes.", mean),
			Confidence:  cfg.Patterns.LongSessionConfidence,
			Suggestion:  "Long blocks work for some; add breaks if fatigue creeps in.",
		}, true
	default:
		return Pattern{
			Type:        PatternPositive,
			Name:        "Optimal session length",
			Description: fmt.Sprintf("Your focus sessions average %.0f minutes, a sustainable depth.", mean),
			Confidence:  cfg.Patterns.OptimalSessionConfidence,
			Suggestion:  "Keep this rhythm going.",
		}, true
	}
}

// peakDayPattern names the day of week collecting the most focus minutes.
func peakDayPattern(cfg Config, activities []domain.Activity) (Pattern, bool) {
	var byDay [7]float64
	for _, a := range activities {
		if !cfg.isFocus(a.Category) {
			continue
		}
		byDay[a.StartTime.Weekday()] += a.DurationMinutes()
	}

	best := time.Sunday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if byDay[d] > byDay[best] {
			best = d
		}
	}
	if byDay[best] <= 0 {
		return Pattern{}, false
	}

	return Pattern{
		Type:        PatternPositive,
		Name:        "Weekly peak day",
		Description: fmt.Sprintf("%s is your strongest day with %.0f focus minutes.", best, byDay[best]),
		Confidence:  cfg.Patterns.PeakDayConfidence,
		Suggestion:  fmt.Sprintf("Reserve %ss for your hardest work.", best),
	}, true
}

// consistencyPattern measures how even daily focus minutes are, via the
// coefficient of variation. Requires more than ConsistencyMinDays distinct
// days of focus data; midfield values emit nothing.
func consistencyPattern(cfg Config, activities []domain.Activity) (Pattern, bool) {
	daily := make(map[string]float64)
	for _, a := range activities {
		if !cfg.isFocus(a.Category) {
			continue
		}
		daily[a.StartTime.Format("2006-01-02")] += a.DurationMinutes()
	}
	if len(daily) <= cfg.Patterns.ConsistencyMinDays {
		return Pattern{}, false
	}

	var sum float64
	for _, v := range daily {
		sum += v
	}
	mean := sum / float64(len(daily))
	if mean <= 0 {
		return Pattern{}, false
	}

	var variance float64
	for _, v := range daily {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(daily))
	cv := math.Sqrt(variance) / mean

	switch {
	case cv < cfg.Patterns.ConsistentCV:
		return Pattern{
			Type:        PatternPositive,
			Name:        "Highly consistent",
			Description: fmt.Sprintf("Your daily focus time varies little (CV %.2f).", cv),
			Confidence:  cfg.Patterns.ConsistentConfidence,
			Suggestion:  "Consistency compounds; keep the routine.",
		}, true
	case cv > cfg.Patterns.InconsistentCV:
		return Pattern{
			Type:        PatternNegative,
			Name:        "Inconsistent schedule",
			Description: fmt.Sprintf("Your daily focus time swings widely (CV %.2f).", cv),
			Confidence:  cfg.Patterns.InconsistentConfidence,
			Suggestion:  "Anchor a fixed daily focus block to even things out.",
		}, true
	}
	return Pattern{}, false
}
