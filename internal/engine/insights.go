package engine

import (
	"fmt"
	"math"
	"strings"

	"example.com/attention/internal/domain"
)

// Narrative is the plain-language insight set shown on the dashboard.
type Narrative struct {
	PeakFocusWindow    string
	DistractionHotspot string
	ConsistencyScore   float64
	BalanceRatio       float64
	Suggestion         string
}

// GenerateInsights produces the explainable narrative: when focus peaks,
// where distraction clusters, how even the schedule is, and how focus and
// rest balance out.
func GenerateInsights(cfg Config, activities []domain.Activity, interruptions []domain.Interruption) Narrative {
	if len(activities) == 0 {
		return Narrative{
			PeakFocusWindow:    "Not enough data yet",
			DistractionHotspot: "Not enough data yet",
			ConsistencyScore:   0,
			BalanceRatio:       0.5,
			Suggestion:         "Start logging your activities to see insights.",
		}
	}

	var hourFocus [24]float64
	daily := make(map[string]float64)
	var totalFocus, totalRest float64

	for _, a := range activities {
		minutes := a.DurationMinutes()
		switch {
		case cfg.isFocus(a.Category):
			hourFocus[a.StartTime.Hour()] += minutes
			daily[a.StartTime.Format("2006-01-02")] += minutes
			totalFocus += minutes
		case a.Category == domain.CategoryRest:
			totalRest += minutes
		}
	}

	peakWindow := "No focus time logged yet"
	if totalFocus > 0 {
		peakHour := 0
		for h := range hourFocus {
			if hourFocus[h] > hourFocus[peakHour] {
				peakHour = h
			}
		}
		peakWindow = fmt.Sprintf("Your focus is strongest between %s - %s", hourLabel(peakHour), hourLabel((peakHour+1)%24))
	}

	var hourInterruptions [24]int
	maxInterruptions := 0
	hotspotHour := 0
	for _, i := range interruptions {
		h := i.Time.Hour()
		hourInterruptions[h]++
		if hourInterruptions[h] > maxInterruptions {
			maxInterruptions = hourInterruptions[h]
			hotspotHour = h
		}
	}
	hotspot := "No interruptions logged"
	if maxInterruptions > 0 {
		hotspot = fmt.Sprintf("Most interruptions around %s", hourLabel(hotspotHour))
	}

	// Consistency: 1 minus stddev relative to mean daily focus, floored at
	// zero. A single day of data scores a neutral 0.5.
	consistency := 0.5
	if len(daily) > 1 {
		var sum float64
		for _, v := range daily {
			sum += v
		}
		mean := sum / float64(len(daily))
		var variance float64
		for _, v := range daily {
			variance += (v - mean) * (v - mean)
		}
		variance /= float64(len(daily))
		consistency = 1 - math.Sqrt(variance)/(mean+1)
		if consistency < 0 {
			consistency = 0
		}
	}

	balance := 0.5
	if totalFocus+totalRest > 0 {
		balance = totalFocus / (totalFocus + totalRest)
	}

	var suggestions []string
	if balance > 0.8 {
		suggestions = append(suggestions, "Consider adding more rest time to your schedule.")
	} else if balance < 0.3 {
		suggestions = append(suggestions, "You might benefit from more focused work blocks.")
	}
	if maxInterruptions > 3 {
		suggestions = append(suggestions, "Try scheduling deep work during hours with fewer interruptions.")
	}
	if consistency < 0.5 {
		suggestions = append(suggestions, "A more consistent schedule might help you find better focus.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Keep tracking to discover more patterns.")
	}

	return Narrative{
		PeakFocusWindow:    peakWindow,
		DistractionHotspot: hotspot,
		ConsistencyScore:   round2(consistency),
		BalanceRatio:       round2(balance),
		Suggestion:         strings.Join(suggestions, " "),
	}
}
