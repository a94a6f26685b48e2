package engine

import "example.com/attention/internal/domain"

// CurvePoint is one hour of the productivity curve.
type CurvePoint struct {
	Hour          int
	Label         string
	FocusMinutes  float64
	Sessions      int
	Interruptions int
	Quality       float64
}

// ProductivityCurve buckets the window into 24 hour-of-day points. A
// session's whole duration is attributed to its start hour; this deliberately
// ignores minute-level overlap so an hour reads as "time started here".
func ProductivityCurve(cfg Config, activities []domain.Activity, interruptions []domain.Interruption) []CurvePoint {
	points := make([]CurvePoint, 24)
	for h := range points {
		points[h].Hour = h
		points[h].Label = hourLabel(h)
	}

	for _, a := range activities {
		if !cfg.isFocus(a.Category) {
			continue
		}
		h := a.StartTime.Hour()
		points[h].FocusMinutes += a.DurationMinutes()
		points[h].Sessions++
	}

	for _, i := range interruptions {
		points[i.Time.Hour()].Interruptions++
	}

	for h := range points {
		if points[h].Sessions == 0 {
			continue
		}
		quality := 100 - float64(points[h].Interruptions)/float64(points[h].Sessions)*20
		if quality < 0 {
			quality = 0
		}
		points[h].Quality = quality
	}

	return points
}
