// Package engine derives attention analytics from raw activity and
// interruption records. Every function is a pure computation over immutable
// snapshots: no I/O, no shared state, safe to call concurrently. Degenerate
// input (empty slices, inverted intervals, zero denominators) yields
// zero-valued results, never an error.
package engine

import (
	"math"
	"time"

	"example.com/attention/internal/domain"
)

// Config carries the constant tables the engine computes with. Callers
// normally use DefaultConfig; tests and tuning experiments inject variants
// without code changes.
type Config struct {
	// TypeWeights scores how disruptive each interruption type is.
	// Unknown types fall back to DefaultTypeWeight.
	TypeWeights       map[domain.InterruptionType]float64
	DefaultTypeWeight float64

	// FocusCategories marks the categories treated as deep-work-eligible.
	FocusCategories map[domain.Category]bool

	// DeepWorkHours are hours-of-day treated as historically high-value
	// focus time.
	DeepWorkHours map[int]bool

	// DefaultDurationMin substitutes for interruptions logged without a
	// duration.
	DefaultDurationMin int

	// EarlyFocusWindowMin is how far into a session an interruption still
	// counts as hitting "early in focus".
	EarlyFocusWindowMin float64
	EarlyFocusWeight    float64
	DeepWorkWeight      float64

	// HighQualityScore is the threshold above which a session counts as
	// high quality.
	HighQualityScore float64

	// MaxRecoveryGapMin bounds how long after an interruption a focus
	// session may start and still count as recovery.
	MaxRecoveryGapMin float64

	Patterns PatternConfig
}

// PatternConfig holds the thresholds and confidence constants of the fixed
// pattern rule battery.
type PatternConfig struct {
	TimePreferenceRatio      float64
	TimePreferenceConfidence int

	HotspotMinCount   int
	HotspotConfidence int

	ShortSessionMin          float64
	LongSessionMin           float64
	ShortSessionConfidence   int
	LongSessionConfidence    int
	OptimalSessionConfidence int

	PeakDayConfidence int

	ConsistencyMinDays     int
	ConsistentCV           float64
	InconsistentCV         float64
	ConsistentConfidence   int
	InconsistentConfidence int
}

// DefaultConfig returns the canonical constant tables.
func DefaultConfig() Config {
	return Config{
		TypeWeights: map[domain.InterruptionType]float64{
			domain.InterruptionPhone:       1.2,
			domain.InterruptionSocialMedia: 1.4,
			domain.InterruptionNoise:       1.0,
			domain.InterruptionOther:       1.1,
		},
		DefaultTypeWeight: 1.1,
		FocusCategories: map[domain.Category]bool{
			domain.CategoryStudy:   true,
			domain.CategoryCoding:  true,
			domain.CategoryWork:    true,
			domain.CategoryReading: true,
		},
		DeepWorkHours:       map[int]bool{9: true, 10: true, 11: true, 14: true, 15: true},
		DefaultDurationMin:  5,
		EarlyFocusWindowMin: 20,
		EarlyFocusWeight:    1.3,
		DeepWorkWeight:      1.2,
		HighQualityScore:    70,
		MaxRecoveryGapMin:   480,
		Patterns: PatternConfig{
			TimePreferenceRatio:      1.5,
			TimePreferenceConfidence: 85,
			HotspotMinCount:          3,
			HotspotConfidence:        90,
			ShortSessionMin:          30,
			LongSessionMin:           90,
			ShortSessionConfidence:   75,
			LongSessionConfidence:    75,
			OptimalSessionConfidence: 80,
			PeakDayConfidence:        80,
			ConsistencyMinDays:       3,
			ConsistentCV:             0.3,
			InconsistentCV:           0.7,
			ConsistentConfidence:     90,
			InconsistentConfidence:   85,
		},
	}
}

// WithDeepWorkHours returns a copy of the config with the deep-work hour set
// replaced. An empty override leaves the config unchanged.
func (c Config) WithDeepWorkHours(hours []int) Config {
	if len(hours) == 0 {
		return c
	}
	set := make(map[int]bool, len(hours))
	for _, h := range hours {
		if h >= 0 && h < 24 {
			set[h] = true
		}
	}
	c.DeepWorkHours = set
	return c
}

func (c Config) isFocus(category domain.Category) bool {
	return c.FocusCategories[category]
}

// durationMinutes resolves an interruption's logged duration, substituting
// the default when absent.
func (c Config) durationMinutes(i domain.Interruption) float64 {
	if i.DurationMin != nil {
		return float64(*i.DurationMin)
	}
	return float64(c.DefaultDurationMin)
}

// effectiveEnd is when the interruption is considered over: the explicit end
// time when logged, otherwise start plus duration.
func (c Config) effectiveEnd(i domain.Interruption) time.Time {
	if i.EndTime != nil {
		return *i.EndTime
	}
	return i.Time.Add(time.Duration(c.durationMinutes(i) * float64(time.Minute)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func hourLabel(hour int) string {
	return time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("15:00")
}
