package engine

import (
	"sort"

	"example.com/attention/internal/domain"
)

// CostDriver aggregates interruption cost by type.
type CostDriver struct {
	Type      domain.InterruptionType
	TotalCost float64
	Count     int
	AvgCost   float64
}

// TopCostDrivers scores every interruption, groups by type, and ranks the
// groups by total cost descending, truncated to topN. Ties keep the
// canonical type order.
func TopCostDrivers(cfg Config, interruptions []domain.Interruption, activities []domain.Activity, topN int) []CostDriver {
	byType := make(map[domain.InterruptionType]*CostDriver)
	order := make([]domain.InterruptionType, 0, len(domain.InterruptionTypes))
	order = append(order, domain.InterruptionTypes...)

	for _, i := range interruptions {
		cost := Cost(cfg, i, activities)
		driver, ok := byType[i.Type]
		if !ok {
			driver = &CostDriver{Type: i.Type}
			byType[i.Type] = driver
			if !i.Type.Valid() {
				order = append(order, i.Type)
			}
		}
		driver.TotalCost += cost.Score
		driver.Count++
	}

	drivers := make([]CostDriver, 0, len(byType))
	for _, typ := range order {
		driver, ok := byType[typ]
		if !ok {
			continue
		}
		driver.AvgCost = driver.TotalCost / float64(driver.Count)
		drivers = append(drivers, *driver)
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].TotalCost > drivers[j].TotalCost
	})

	if topN < 0 {
		topN = 0
	}
	if len(drivers) > topN {
		drivers = drivers[:topN]
	}
	return drivers
}
