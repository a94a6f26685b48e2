package api

import (
	"errors"
	"strings"
	"time"

	"example.com/attention/internal/domain"
	"example.com/attention/internal/engine"
)

// CreateActivityRequest is the payload for POST /v1/activities.
type CreateActivityRequest struct {
	UserID    string    `json:"user_id"`
	Category  string    `json:"category"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Note      string    `json:"note,omitempty"`
}

// Validate ensures request correctness.
func (r CreateActivityRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(r.Category) == "" {
		return errors.New("category is required")
	}
	if r.StartTime.IsZero() {
		return errors.New("start_time is required")
	}
	if r.EndTime.IsZero() {
		return errors.New("end_time is required")
	}
	if r.EndTime.Before(r.StartTime) {
		return errors.New("end_time must be after start_time")
	}
	if r.EndTime.Sub(r.StartTime) > 24*time.Hour {
		return errors.New("activity duration cannot exceed 24 hours")
	}
	if len(strings.TrimSpace(r.Note)) > 1000 {
		return errors.New("note must be 1000 characters or less")
	}
	return nil
}

// CreateInterruptionRequest is the payload for POST /v1/interruptions.
type CreateInterruptionRequest struct {
	UserID      string     `json:"user_id"`
	ActivityID  *string    `json:"activity_id,omitempty"`
	Time        time.Time  `json:"time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	DurationMin *int       `json:"duration_minutes,omitempty"`
	Type        string     `json:"type"`
	Note        string     `json:"note,omitempty"`
}

// Validate ensures request correctness.
func (r CreateInterruptionRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if r.Time.IsZero() {
		return errors.New("time is required")
	}
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("type is required")
	}
	if r.DurationMin != nil && (*r.DurationMin < 1 || *r.DurationMin > 480) {
		return errors.New("duration_minutes must be between 1 and 480")
	}
	if len(strings.TrimSpace(r.Note)) > 500 {
		return errors.New("note must be 500 characters or less")
	}
	return nil
}

// ActivityView exposes full details about an activity record.
type ActivityView struct {
	ActivityID string    `json:"activity_id"`
	UserID     string    `json:"user_id"`
	Category   string    `json:"category"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// InterruptionView exposes full details about an interruption record.
type InterruptionView struct {
	InterruptionID string     `json:"interruption_id"`
	UserID         string     `json:"user_id"`
	ActivityID     *string    `json:"activity_id,omitempty"`
	Time           time.Time  `json:"time"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	DurationMin    *int       `json:"duration_minutes,omitempty"`
	Type           string     `json:"type"`
	Note           string     `json:"note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ListActivitiesResponse packages list results.
type ListActivitiesResponse struct {
	Items      []ActivityView `json:"items"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// DailyMetricsResponse summarises one day of interruptions.
type DailyMetricsResponse struct {
	Date                string  `json:"date"`
	Count               int     `json:"count"`
	TotalMinutes        float64 `json:"total_minutes"`
	AvgMinutes          float64 `json:"avg_minutes"`
	LongestMinutes      float64 `json:"longest_minutes"`
	TopInterruptionType *string `json:"top_interruption_type"`
	InterruptionRate    float64 `json:"interruption_rate"`
}

// DurationBucketView is one band of the weekly duration distribution.
type DurationBucketView struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// WeeklyMetricsResponse summarises the rolling seven-day window.
type WeeklyMetricsResponse struct {
	Start              time.Time            `json:"start"`
	End                time.Time            `json:"end"`
	Count              int                  `json:"count"`
	HourlyMinutes      []float64            `json:"hourly_minutes"`
	DailyMinutes       map[string]float64   `json:"daily_minutes"`
	DurationBuckets    []DurationBucketView `json:"duration_buckets"`
	AvgRecoveryMinutes float64              `json:"avg_recovery_minutes"`
	RecoverySamples    int                  `json:"recovery_samples"`
}

// FocusQualitySummaryResponse rolls session quality up across a period.
type FocusQualitySummaryResponse struct {
	AvgQuality          float64 `json:"avg_quality"`
	TotalSessions       int     `json:"total_sessions"`
	HighQualitySessions int     `json:"high_quality_sessions"`
}

// CostDriverView is one ranked interruption-type cost group.
type CostDriverView struct {
	Type      string  `json:"type"`
	TotalCost float64 `json:"total_cost"`
	Count     int     `json:"count"`
	AvgCost   float64 `json:"avg_cost"`
}

// CurvePointView is one hour of the productivity curve.
type CurvePointView struct {
	Hour          int     `json:"hour"`
	Label         string  `json:"label"`
	FocusMinutes  float64 `json:"focus_minutes"`
	Sessions      int     `json:"sessions"`
	Interruptions int     `json:"interruptions"`
	Quality       float64 `json:"quality"`
}

// PatternView is one detected behavioral pattern.
type PatternView struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence"`
	Suggestion  string `json:"suggestion"`
}

// AdvancedInsightsResponse is the composed analytics summary.
type AdvancedInsightsResponse struct {
	PeakHour           string        `json:"peak_hour"`
	WorstHour          string        `json:"worst_hour"`
	PeakDay            string        `json:"peak_day"`
	WorstDay           string        `json:"worst_day"`
	InterruptionImpact float64       `json:"interruption_impact"`
	AvgRecoveryMinutes float64       `json:"avg_recovery_minutes"`
	Trend              string        `json:"trend"`
	OptimalFocusWindow string        `json:"optimal_focus_window"`
	RiskPeriods        []string      `json:"risk_periods"`
	Patterns           []PatternView `json:"patterns"`
	Recommendations    []string      `json:"recommendations"`
}

// InsightResponse is the plain-language narrative.
type InsightResponse struct {
	PeakFocusWindow    string  `json:"peak_focus_window"`
	DistractionHotspot string  `json:"distraction_hotspot"`
	ConsistencyScore   float64 `json:"consistency_score"`
	BalanceRatio       float64 `json:"balance_ratio"`
	Suggestion         string  `json:"suggestion"`
}

// CategoryBreakdownView reports time spent in one category.
type CategoryBreakdownView struct {
	Category     string  `json:"category"`
	TotalMinutes float64 `json:"total_minutes"`
	SessionCount int     `json:"session_count"`
	AvgDuration  float64 `json:"avg_duration"`
	Percentage   float64 `json:"percentage"`
}

// StreakView reports consecutive activity days.
type StreakView struct {
	CurrentStreak    int `json:"current_streak"`
	LongestStreak    int `json:"longest_streak"`
	DaysWithActivity int `json:"days_with_activity"`
}

// AnalyticsSummaryResponse is the comprehensive period overview.
type AnalyticsSummaryResponse struct {
	TotalFocusHours          float64                 `json:"total_focus_hours"`
	TotalInterruptionMinutes float64                 `json:"total_interruption_minutes"`
	AvgDailyFocus            float64                 `json:"avg_daily_focus"`
	CategoryBreakdown        []CategoryBreakdownView `json:"category_breakdown"`
	Streaks                  StreakView              `json:"streaks"`
	QualityScore             float64                 `json:"quality_score"`
}

func toActivityView(a domain.Activity) ActivityView {
	return ActivityView{
		ActivityID: a.ID,
		UserID:     a.UserID,
		Category:   string(a.Category),
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		Note:       a.Note,
		CreatedAt:  a.CreatedAt,
	}
}

func toInterruptionView(i domain.Interruption) InterruptionView {
	return InterruptionView{
		InterruptionID: i.ID,
		UserID:         i.UserID,
		ActivityID:     i.ActivityID,
		Time:           i.Time,
		EndTime:        i.EndTime,
		DurationMin:    i.DurationMin,
		Type:           string(i.Type),
		Note:           i.Note,
		CreatedAt:      i.CreatedAt,
	}
}

func toDailyMetricsResponse(m engine.DailyMetrics) DailyMetricsResponse {
	resp := DailyMetricsResponse{
		Date:             m.Date.Format("2006-01-02"),
		Count:            m.Count,
		TotalMinutes:     m.TotalMinutes,
		AvgMinutes:       m.AvgMinutes,
		LongestMinutes:   m.LongestMinutes,
		InterruptionRate: m.InterruptionRate,
	}
	if m.TopType != nil {
		top := string(*m.TopType)
		resp.TopInterruptionType = &top
	}
	return resp
}

func toWeeklyMetricsResponse(m engine.WeeklyMetrics) WeeklyMetricsResponse {
	buckets := make([]DurationBucketView, 0, len(m.DurationBuckets))
	for _, b := range m.DurationBuckets {
		buckets = append(buckets, DurationBucketView{Label: b.Label, Count: b.Count})
	}
	return WeeklyMetricsResponse{
		Start:              m.Start,
		End:                m.End,
		Count:              m.Count,
		HourlyMinutes:      m.HourlyMinutes[:],
		DailyMinutes:       m.DailyMinutes,
		DurationBuckets:    buckets,
		AvgRecoveryMinutes: m.AvgRecoveryMin,
		RecoverySamples:    m.RecoverySamples,
	}
}

func toCurvePointView(p engine.CurvePoint) CurvePointView {
	return CurvePointView{
		Hour:          p.Hour,
		Label:         p.Label,
		FocusMinutes:  p.FocusMinutes,
		Sessions:      p.Sessions,
		Interruptions: p.Interruptions,
		Quality:       p.Quality,
	}
}

func toPatternView(p engine.Pattern) PatternView {
	return PatternView{
		Type:        string(p.Type),
		Name:        p.Name,
		Description: p.Description,
		Confidence:  p.Confidence,
		Suggestion:  p.Suggestion,
	}
}

func toAdvancedInsightsResponse(r engine.InsightsReport) AdvancedInsightsResponse {
	patterns := make([]PatternView, 0, len(r.Patterns))
	for _, p := range r.Patterns {
		patterns = append(patterns, toPatternView(p))
	}
	return AdvancedInsightsResponse{
		PeakHour:           r.PeakHour,
		WorstHour:          r.WorstHour,
		PeakDay:            r.PeakDay,
		WorstDay:           r.WorstDay,
		InterruptionImpact: r.InterruptionImpact,
		AvgRecoveryMinutes: r.AvgRecoveryMin,
		Trend:              r.Trend,
		OptimalFocusWindow: r.OptimalFocusWindow,
		RiskPeriods:        r.RiskPeriods,
		Patterns:           patterns,
		Recommendations:    r.Recommendations,
	}
}

func toAnalyticsSummaryResponse(s engine.AnalyticsSummary) AnalyticsSummaryResponse {
	breakdown := make([]CategoryBreakdownView, 0, len(s.CategoryBreakdown))
	for _, c := range s.CategoryBreakdown {
		breakdown = append(breakdown, CategoryBreakdownView{
			Category:     string(c.Category),
			TotalMinutes: c.TotalMinutes,
			SessionCount: c.SessionCount,
			AvgDuration:  c.AvgDuration,
			Percentage:   c.Percentage,
		})
	}
	return AnalyticsSummaryResponse{
		TotalFocusHours:          s.TotalFocusHours,
		TotalInterruptionMinutes: s.TotalInterruptionMinutes,
		AvgDailyFocus:            s.AvgDailyFocusHours,
		CategoryBreakdown:        breakdown,
		Streaks: StreakView{
			CurrentStreak:    s.Streaks.Current,
			LongestStreak:    s.Streaks.Longest,
			DaysWithActivity: s.Streaks.DaysWithActivity,
		},
		QualityScore: s.QualityScore,
	}
}
