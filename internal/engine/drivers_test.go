package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/attention/internal/domain"
)

func TestTopCostDriversRankedByTotalCost(t *testing.T) {
	// Outside deep work / focus context so weights stay at the type table.
	interruptions := []domain.Interruption{
		interruption(domain.InterruptionNoise, at(testDay, 3, 0), 60),       // 60.0
		interruption(domain.InterruptionPhone, at(testDay, 3, 10), 10),      // 12.0
		interruption(domain.InterruptionPhone, at(testDay, 3, 20), 10),      // 12.0
		interruption(domain.InterruptionSocialMedia, at(testDay, 3, 30), 5), // 7.0
	}

	drivers := TopCostDrivers(DefaultConfig(), interruptions, nil, 10)

	require.Len(t, drivers, 3)
	require.Equal(t, domain.InterruptionNoise, drivers[0].Type)
	require.Equal(t, domain.InterruptionPhone, drivers[1].Type)
	require.Equal(t, domain.InterruptionSocialMedia, drivers[2].Type)

	require.InDelta(t, 60.0, drivers[0].TotalCost, 1e-9)
	require.Equal(t, 2, drivers[1].Count)
	require.InDelta(t, 24.0, drivers[1].TotalCost, 1e-9)
	require.InDelta(t, 12.0, drivers[1].AvgCost, 1e-9)

	for i := 1; i < len(drivers); i++ {
		require.GreaterOrEqual(t, drivers[i-1].TotalCost, drivers[i].TotalCost)
	}
}

func TestTopCostDriversTruncatesToTopN(t *testing.T) {
	interruptions := []domain.Interruption{
		interruption(domain.InterruptionNoise, at(testDay, 3, 0), 30),
		interruption(domain.InterruptionPhone, at(testDay, 3, 10), 10),
		interruption(domain.InterruptionOther, at(testDay, 3, 20), 10),
	}

	drivers := TopCostDrivers(DefaultConfig(), interruptions, nil, 2)
	require.Len(t, drivers, 2)

	require.Empty(t, TopCostDrivers(DefaultConfig(), interruptions, nil, 0))
	require.Empty(t, TopCostDrivers(DefaultConfig(), nil, nil, 5))
}
