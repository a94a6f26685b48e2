package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/attention/internal/domain"
)

func findPattern(patterns []Pattern, name string) (Pattern, bool) {
	for _, p := range patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

func TestDetectPatternsToleratesSparseInput(t *testing.T) {
	require.NotPanics(t, func() {
		patterns := DetectPatterns(DefaultConfig(), nil, nil)
		require.Empty(t, patterns)
	})

	// A single activity must not fail either.
	patterns := DetectPatterns(DefaultConfig(), []domain.Activity{
		session(domain.CategoryWork, at(testDay, 9, 0), 60),
	}, nil)
	require.NotNil(t, patterns)
}

func TestMorningPerformerPattern(t *testing.T) {
	activities := []domain.Activity{
		session(domain.CategoryWork, at(testDay, 7, 0), 90),
		session(domain.CategoryStudy, at(testDay, 9, 0), 60),
		session(domain.CategoryCoding, at(testDay, 19, 0), 60),
	}

	p, ok := findPattern(DetectPatterns(DefaultConfig(), activities, nil), "Morning performer")
	require.True(t, ok)
	require.Equal(t, PatternPositive, p.Type)
	require.Equal(t, 85, p.Confidence)
}

func TestEveningPerformerPattern(t *testing.T) {
	activities := []domain.Activity{
		session(domain.CategoryCoding, at(testDay, 20, 0), 120),
		session(domain.CategoryWork, at(testDay, 8, 0), 60),
	}

	p, ok := findPattern(DetectPatterns(DefaultConfig(), activities, nil), "Evening performer")
	require.True(t, ok)
	require.Equal(t, 85, p.Confidence)
}

func TestNoTimePreferenceWithoutFocusMinutes(t *testing.T) {
	patterns := DetectPatterns(DefaultConfig(), []domain.Activity{
		session(domain.CategoryRest, at(testDay, 7, 0), 60),
	}, nil)

	_, morning := findPattern(patterns, "Morning performer")
	_, evening := findPattern(patterns, "Evening performer")
	require.False(t, morning)
	require.False(t, evening)
}

func TestInterruptionHotspotPattern(t *testing.T) {
	interruptions := []domain.Interruption{
		interruption(domain.InterruptionPhone, at(testDay, 14, 0), 5),
		interruption(domain.InterruptionNoise, at(testDay, 14, 20), 5),
		interruption(domain.InterruptionPhone, at(testDay, 14, 40), 5),
		interruption(domain.InterruptionOther, at(testDay, 9, 0), 5),
	}

	p, ok := findPattern(DetectPatterns(DefaultConfig(), nil, interruptions), "Interruption hotspot")
	require.True(t, ok)
	require.Equal(t, PatternNegative, p.Type)
	require.Equal(t, 90, p.Confidence)
	require.Contains(t, p.Description, "14:00")
}

func TestHotspotRequiresThreeInOneHour(t *testing.T) {
	interruptions := []domain.Interruption{
		interruption(domain.InterruptionPhone, at(testDay, 14, 0), 5),
		interruption(domain.InterruptionPhone, at(testDay, 15, 0), 5),
	}

	_, ok := findPattern(DetectPatterns(DefaultConfig(), nil, interruptions), "Interruption hotspot")
	require.False(t, ok)
}

func TestSessionLengthClassification(t *testing.T) {
	cases := []struct {
		name     string
		minutes  int
		expected string
		ptype    PatternType
		conf     int
	}{
		{"short", 20, "Short sessions", PatternNegative, 75},
		{"optimal", 60, "Optimal session length", PatternPositive, 80},
		{"long", 120, "Long sessions", PatternNeutral, 75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			activities := []domain.Activity{
				session(domain.CategoryWork, at(testDay, 9, 0), tc.minutes),
				session(domain.CategoryWork, at(testDay, 13, 0), tc.minutes),
			}
			p, ok := findPattern(DetectPatterns(DefaultConfig(), activities, nil), tc.expected)
			require.True(t, ok)
			require.Equal(t, tc.ptype, p.Type)
			require.Equal(t, tc.conf, p.Confidence)
		})
	}
}

func TestWeeklyPeakDayPattern(t *testing.T) {
	// testDay is a Monday; Tuesday gets more focus minutes.
	activities := []domain.Activity{
		session(domain.CategoryWork, at(testDay, 9, 0), 60),
		session(domain.CategoryWork, at(testDay.AddDate(0, 0, 1), 9, 0), 120),
	}

	p, ok := findPattern(DetectPatterns(DefaultConfig(), activities, nil), "Weekly peak day")
	require.True(t, ok)
	require.Equal(t, 80, p.Confidence)
	require.Contains(t, p.Description, "Tuesday")
}

func TestConsistencyPatternHighlyConsistent(t *testing.T) {
	activities := make([]domain.Activity, 0, 4)
	for i := 0; i < 4; i++ {
		activities = append(activities, session(domain.CategoryStudy, at(testDay.AddDate(0, 0, i), 9, 0), 60))
	}

	p, ok := findPattern(DetectPatterns(DefaultConfig(), activities, nil), "Highly consistent")
	require.True(t, ok)
	require.Equal(t, PatternPositive, p.Type)
	require.Equal(t, 90, p.Confidence)
}

func TestConsistencyPatternInconsistent(t *testing.T) {
	minutes := []int{10, 200, 10, 200}
	activities := make([]domain.Activity, 0, len(minutes))
	for i, m := range minutes {
		activities = append(activities, session(domain.CategoryStudy, at(testDay.AddDate(0, 0, i), 9, 0), m))
	}

	p, ok := findPattern(DetectPatterns(DefaultConfig(), activities, nil), "Inconsistent schedule")
	require.True(t, ok)
	require.Equal(t, 85, p.Confidence)
}

func TestConsistencyRequiresFourDistinctDays(t *testing.T) {
	activities := make([]domain.Activity, 0, 3)
	for i := 0; i < 3; i++ {
		activities = append(activities, session(domain.CategoryStudy, at(testDay.AddDate(0, 0, i), 9, 0), 60))
	}

	patterns := DetectPatterns(DefaultConfig(), activities, nil)
	_, consistent := findPattern(patterns, "Highly consistent")
	_, inconsistent := findPattern(patterns, "Inconsistent schedule")
	require.False(t, consistent)
	require.False(t, inconsistent)
}

func TestMidfieldConsistencyEmitsNothing(t *testing.T) {
	minutes := []int{60, 100, 40, 90}
	activities := make([]domain.Activity, 0, len(minutes))
	for i, m := range minutes {
		activities = append(activities, session(domain.CategoryStudy, at(testDay.AddDate(0, 0, i), 9, 0), m))
	}

	patterns := DetectPatterns(DefaultConfig(), activities, nil)
	_, consistent := findPattern(patterns, "Highly consistent")
	_, inconsistent := findPattern(patterns, "Inconsistent schedule")
	require.False(t, consistent)
	require.False(t, inconsistent)
}
