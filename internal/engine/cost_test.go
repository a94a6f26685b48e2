package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/attention/internal/domain"
)

func TestCostScoreIsDurationTimesWeights(t *testing.T) {
	cfg := DefaultConfig()

	for typ, weight := range map[domain.InterruptionType]float64{
		domain.InterruptionPhone:       1.2,
		domain.InterruptionSocialMedia: 1.4,
		domain.InterruptionNoise:       1.0,
		domain.InterruptionOther:       1.1,
	} {
		// 03:00 is outside deep work and no session encloses it.
		cost := Cost(cfg, interruption(typ, at(testDay, 3, 0), 10), nil)
		require.InDelta(t, 10*weight*1.0, cost.Score, 1e-9, "type %s", typ)
		require.Equal(t, weight, cost.TypeWeight)
		require.Equal(t, 1.0, cost.ContextWeight)
	}
}

func TestCostDeepWorkHourRaisesContextWeight(t *testing.T) {
	cfg := DefaultConfig()
	activities := []domain.Activity{session(domain.CategoryWork, at(testDay, 9, 0), 120)}

	// 60 minutes into the session: not early, but hour 10 is deep work.
	cost := Cost(cfg, interruption(domain.InterruptionPhone, at(testDay, 10, 0), 15), activities)

	require.Equal(t, 1.2, cost.TypeWeight)
	require.Equal(t, 1.2, cost.ContextWeight)
	require.InDelta(t, 21.6, cost.Score, 1e-9)
	require.Contains(t, cost.Explanation, "deep work window")
}

func TestCostEarlyFocusOutweighsDeepWork(t *testing.T) {
	cfg := DefaultConfig()
	activities := []domain.Activity{session(domain.CategoryCoding, at(testDay, 9, 0), 120)}

	cost := Cost(cfg, interruption(domain.InterruptionNoise, at(testDay, 9, 10), 10), activities)

	require.Equal(t, 1.3, cost.ContextWeight)
	require.InDelta(t, 10*1.0*1.3, cost.Score, 1e-9)
	require.Contains(t, cost.Explanation, "early in focus session")
}

func TestCostIgnoresNonFocusSessions(t *testing.T) {
	cfg := DefaultConfig()
	activities := []domain.Activity{session(domain.CategoryRest, at(testDay, 13, 0), 120)}

	cost := Cost(cfg, interruption(domain.InterruptionPhone, at(testDay, 13, 30), 10), activities)

	require.Equal(t, 1.0, cost.ContextWeight)
	require.Contains(t, cost.Explanation, "no enclosing focus session")
}

func TestCostDefaultsDurationAndUnknownType(t *testing.T) {
	cfg := DefaultConfig()

	cost := Cost(cfg, untimedInterruption("Doorbell", at(testDay, 3, 0)), nil)

	require.Equal(t, 5.0, cost.DurationMin)
	require.Equal(t, cfg.DefaultTypeWeight, cost.TypeWeight)
	require.InDelta(t, 5*1.1, cost.Score, 1e-9)
}

func TestCostExplanationReproducesArithmetic(t *testing.T) {
	cfg := DefaultConfig()
	activities := []domain.Activity{session(domain.CategoryWork, at(testDay, 9, 0), 120)}

	cost := Cost(cfg, interruption(domain.InterruptionPhone, at(testDay, 10, 0), 15), activities)

	require.Equal(t, "15 min * 1.2 (Phone) * 1.2 (in focus session, during deep work window) = 21.6", cost.Explanation)
}
