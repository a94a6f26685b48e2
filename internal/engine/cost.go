package engine

import (
	"fmt"

	"example.com/attention/internal/domain"
)

// InterruptionCost scores how disruptive a single interruption was. The
// explanation reproduces the arithmetic and the qualitative reasons so the
// score is always auditable.
type InterruptionCost struct {
	InterruptionID string
	Type           domain.InterruptionType
	DurationMin    float64
	TypeWeight     float64
	ContextWeight  float64
	Score          float64
	Explanation    string
}

// Cost scores one interruption against the sessions that give it context.
// The score is duration * type weight * context weight: interruptions landing
// in the first minutes of a focus session or inside a deep-work hour weigh
// heavier.
func Cost(cfg Config, interruption domain.Interruption, activities []domain.Activity) InterruptionCost {
	duration := cfg.durationMinutes(interruption)

	typeWeight, ok := cfg.TypeWeights[interruption.Type]
	if !ok {
		typeWeight = cfg.DefaultTypeWeight
	}

	contextWeight := 1.0
	reason := "no enclosing focus session"
	if enclosing := enclosingFocusActivity(cfg, interruption, activities); enclosing != nil {
		reason = "in focus session"
		if interruption.Time.Sub(enclosing.StartTime).Minutes() < cfg.EarlyFocusWindowMin {
			contextWeight = cfg.EarlyFocusWeight
			reason = "early in focus session"
		}
	}
	if cfg.DeepWorkHours[interruption.Time.Hour()] && cfg.DeepWorkWeight > contextWeight {
		contextWeight = cfg.DeepWorkWeight
		reason += ", during deep work window"
	}

	score := duration * typeWeight * contextWeight
	explanation := fmt.Sprintf("%.0f min * %.1f (%s) * %.1f (%s) = %.1f",
		duration, typeWeight, interruption.Type, contextWeight, reason, score)

	return InterruptionCost{
		InterruptionID: interruption.ID,
		Type:           interruption.Type,
		DurationMin:    duration,
		TypeWeight:     typeWeight,
		ContextWeight:  contextWeight,
		Score:          score,
		Explanation:    explanation,
	}
}

// enclosingFocusActivity returns the first focus-category activity whose
// interval contains the interruption's start time, or nil.
func enclosingFocusActivity(cfg Config, interruption domain.Interruption, activities []domain.Activity) *domain.Activity {
	for idx := range activities {
		a := &activities[idx]
		if !cfg.isFocus(a.Category) {
			continue
		}
		if !interruption.Time.Before(a.StartTime) && !interruption.Time.After(a.EndTime) {
			return a
		}
	}
	return nil
}
