package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/attention/internal/domain"
)

func TestFocusQualityUninterruptedHourClampsAt100(t *testing.T) {
	activity := session(domain.CategoryStudy, at(testDay, 9, 0), 60)

	result := FocusQuality(DefaultConfig(), activity, nil)

	require.Equal(t, 100.0, result.Score)
	require.Positive(t, result.LongSessionBonus)
	require.Equal(t, 60.0, result.TotalMinutes)
	require.Equal(t, 60.0, result.UninterruptedMinutes)
	require.Zero(t, result.InterruptionsCount)
}

func TestFocusQualityPenaltyAndBonus(t *testing.T) {
	activity := session(domain.CategoryWork, at(testDay, 9, 0), 90)
	interruptions := []domain.Interruption{
		interruption(domain.InterruptionPhone, at(testDay, 9, 30), 10),
		interruption(domain.InterruptionNoise, at(testDay, 10, 0), 5),
		// Outside the session, must be ignored.
		interruption(domain.InterruptionOther, at(testDay, 12, 0), 30),
	}

	result := FocusQuality(DefaultConfig(), activity, interruptions)

	require.Equal(t, 2, result.InterruptionsCount)
	require.Equal(t, 75.0, result.UninterruptedMinutes)
	// base 75/90, penalty 0.2, bonus (90-45)/60*0.1 = 0.075
	require.Equal(t, 70.8, result.Score)
	require.InDelta(t, 0.075, result.LongSessionBonus, 1e-9)
}

func TestFocusQualityUninterruptedNeverNegative(t *testing.T) {
	activity := session(domain.CategoryCoding, at(testDay, 9, 0), 20)
	interruptions := []domain.Interruption{
		interruption(domain.InterruptionPhone, at(testDay, 9, 5), 30),
	}

	result := FocusQuality(DefaultConfig(), activity, interruptions)

	require.Zero(t, result.UninterruptedMinutes)
	require.GreaterOrEqual(t, result.Score, 0.0)
}

func TestFocusQualityInvalidIntervalScoresZero(t *testing.T) {
	activity := domain.Activity{
		ID:        "act-backwards",
		Category:  domain.CategoryWork,
		StartTime: at(testDay, 10, 0),
		EndTime:   at(testDay, 9, 0),
	}

	result := FocusQuality(DefaultConfig(), activity, nil)

	require.Zero(t, result.Score)
	require.Zero(t, result.UninterruptedMinutes)
}

func TestFocusQualityPenaltyCapsAtThirtyPercent(t *testing.T) {
	activity := session(domain.CategoryWork, at(testDay, 9, 0), 45)
	interruptions := make([]domain.Interruption, 0, 5)
	for i := 0; i < 5; i++ {
		interruptions = append(interruptions, interruption(domain.InterruptionNoise, at(testDay, 9, 1+i), 1))
	}

	result := FocusQuality(DefaultConfig(), activity, interruptions)

	// base 40/45, penalty capped at 0.3, no bonus at 45 min.
	require.Equal(t, round1((40.0/45-0.3)*100), result.Score)
}

func TestAverageFocusQualityWithoutFocusSessions(t *testing.T) {
	activities := []domain.Activity{
		session(domain.CategoryRest, at(testDay, 9, 0), 60),
		session(domain.CategorySocial, at(testDay, 11, 0), 60),
	}

	summary := AverageFocusQuality(DefaultConfig(), activities, nil)

	require.Zero(t, summary.AvgQuality)
	require.Zero(t, summary.TotalSessions)
	require.Zero(t, summary.HighQualitySessions)
}

func TestAverageFocusQualityCountsHighQualitySessions(t *testing.T) {
	activities := []domain.Activity{
		session(domain.CategoryStudy, at(testDay, 9, 0), 60),  // 100
		session(domain.CategoryCoding, at(testDay, 14, 0), 30), // interrupted below
		session(domain.CategoryRest, at(testDay, 20, 0), 60),  // ignored
	}
	interruptions := []domain.Interruption{
		interruption(domain.InterruptionSocialMedia, at(testDay, 14, 5), 15),
		interruption(domain.InterruptionPhone, at(testDay, 14, 10), 10),
	}

	summary := AverageFocusQuality(DefaultConfig(), activities, interruptions)

	require.Equal(t, 2, summary.TotalSessions)
	require.Equal(t, 1, summary.HighQualitySessions)
	// Session two: base 5/30, penalty 0.2, no bonus -> max(0, ...) -> 0 after
	// clamping negatives; average of 100 and that score.
	second := FocusQuality(DefaultConfig(), activities[1], interruptions)
	require.Equal(t, round1((100+second.Score)/2), summary.AvgQuality)
}
