// Package api exposes HTTP handlers for the attention service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"example.com/attention/internal/domain"
	"example.com/attention/internal/engine"
	"example.com/attention/internal/observability"
	"example.com/attention/internal/persistence"
)

// Handler coordinates HTTP requests with the domain service and the
// analytics engine.
type Handler struct {
	service   *domain.Service
	engineCfg engine.Config
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service, engineCfg engine.Config) *Handler {
	return &Handler{service: service, engineCfg: engineCfg}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/activities", h.activities)
	mux.HandleFunc("/v1/interruptions", h.interruptions)
	mux.HandleFunc("/v1/metrics/daily", h.dailyMetrics)
	mux.HandleFunc("/v1/metrics/weekly", h.weeklyMetrics)
	mux.HandleFunc("/v1/metrics/focus-quality", h.focusQuality)
	mux.HandleFunc("/v1/metrics/cost-drivers", h.costDrivers)
	mux.HandleFunc("/v1/analytics/productivity-curve", h.productivityCurve)
	mux.HandleFunc("/v1/analytics/patterns", h.patterns)
	mux.HandleFunc("/v1/analytics/advanced", h.advancedInsights)
	mux.HandleFunc("/v1/analytics/summary", h.analyticsSummary)
	mux.HandleFunc("/v1/insights", h.insights)
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createActivity(w, r)
	case http.MethodGet:
		h.listActivities(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) interruptions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createInterruption(w, r)
	case http.MethodGet:
		h.listInterruptions(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	}
}

func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	var req CreateActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	activity, err := h.service.CreateActivity(r.Context(), domain.CreateActivityInput{
		UserID:    req.UserID,
		Category:  domain.Category(req.Category),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Note:      strings.TrimSpace(req.Note),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) || errors.Is(err, domain.ErrInvalidInterval) {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toActivityView(*activity))
}

func (h *Handler) createInterruption(w http.ResponseWriter, r *http.Request) {
	var req CreateInterruptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	interruption, err := h.service.CreateInterruption(r.Context(), domain.CreateInterruptionInput{
		UserID:      req.UserID,
		ActivityID:  req.ActivityID,
		Time:        req.Time,
		EndTime:     req.EndTime,
		DurationMin: req.DurationMin,
		Type:        domain.InterruptionType(req.Type),
		Note:        strings.TrimSpace(req.Note),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInterruptionType) {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toInterruptionView(*interruption))
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	cursor, err := persistence.DecodeCursor(r.URL.Query().Get("cursor"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "invalid cursor")
		return
	}

	activities, next, err := h.service.ListActivities(r.Context(), userID, cursor, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	items := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		items = append(items, toActivityView(a))
	}
	writeJSON(w, http.StatusOK, ListActivitiesResponse{Items: items, NextCursor: persistence.EncodeCursor(next)})
}

func (h *Handler) listInterruptions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -7)
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", "invalid from timestamp")
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", "invalid to timestamp")
			return
		}
		to = parsed
	}

	interruptions, err := h.service.ListInterruptions(r.Context(), userID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	items := make([]InterruptionView, 0, len(interruptions))
	for _, i := range interruptions {
		items = append(items, toInterruptionView(i))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) dailyMetrics(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAnalyticsGet(w, r)
	if !ok {
		return
	}

	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	activities, interruptions, err := h.service.Snapshot(r.Context(), userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	start := time.Now()
	metrics := engine.ComputeDailyMetrics(h.engineCfg, interruptions, activities, day)
	observability.ObserveCompute("daily_metrics", time.Since(start))

	writeJSON(w, http.StatusOK, toDailyMetricsResponse(metrics))
}

func (h *Handler) weeklyMetrics(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAnalyticsGet(w, r)
	if !ok {
		return
	}

	end := time.Now().UTC()
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", "invalid end timestamp")
			return
		}
		end = parsed
	}

	windowStart := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, -6)
	activities, interruptions, err := h.service.Snapshot(r.Context(), userID, windowStart, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	start := time.Now()
	metrics := engine.ComputeWeeklyMetrics(h.engineCfg, interruptions, activities, end)
	observability.ObserveCompute("weekly_metrics", time.Since(start))

	writeJSON(w, http.StatusOK, toWeeklyMetricsResponse(metrics))
}

func (h *Handler) focusQuality(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAnalyticsGet(w, r)
	if !ok {
		return
	}

	activities, interruptions, err := h.snapshotDays(r, userID, 7)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	start := time.Now()
	summary := engine.AverageFocusQuality(h.engineCfg, activities, interruptions)
	observability.ObserveCompute("focus_quality", time.Since(start))

	writeJSON(w, http.StatusOK, FocusQualitySummaryResponse{
		AvgQuality:          summary.AvgQuality,
		TotalSessions:       summary.TotalSessions,
		HighQualitySessions: summary.HighQualitySessions,
	})
}

func (h *Handler) costDrivers(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAnalyticsGet(w, r)
	if !ok {
		return
	}

	topN := 5
	if raw := r.URL.Query().Get("top"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			topN = parsed
		}
	}

	activities, interruptions, err := h.snapshotDays(r, userID, 7)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	start := time.Now()
	drivers := engine.TopCostDrivers(h.engineCfg, interruptions, activities, topN)
	observability.ObserveCompute("cost_drivers", time.Since(start))

	views := make([]CostDriverView, 0, len(drivers))
	for _, d := range drivers {
		views = append(views, CostDriverView{
			Type:      string(d.Type),
			TotalCost: d.TotalCost,
			Count:     d.Count,
			AvgCost:   d.AvgCost,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) productivityCurve(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAnalyticsGet(w, r)
	if !ok {
		return
	}

	activities, interruptions, err := h.snapshotDays(r, userID, 7)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	start := time.Now()
	curve := engine.ProductivityCurve(h.engineCfg, activities, interruptions)
	observability.ObserveCompute("productivity_curve", time.Since(start))

	views := make([]CurvePointView, 0, len(curve))
	for _, p := range curve {
		views = append(views, toCurvePointView(p))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) patterns(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAnalyticsGet(w, r)
	if !ok {
		return
	}

	activities, interruptions, err := h.snapshotDays(r, userID, 14)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	start := time.Now()
	detected := engine.DetectPatterns(h.engineCfg, activities, interruptions)
	observability.ObserveCompute("patterns", time.Since(start))

	views := make([]PatternView, 0, len(detected))
	for _, p := range detected {
		views = append(views, toPatternView(p))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) advancedInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAnalyticsGet(w, r)
	if !ok {
		return
	}

	activities, interruptions, err := h.snapshotDays(r, userID, 7)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	start := time.Now()
	report := engine.AdvancedInsights(h.engineCfg, activities, interruptions)
	observability.ObserveCompute("advanced_insights", time.Since(start))

	writeJSON(w, http.StatusOK, toAdvancedInsightsResponse(report))
}

func (h *Handler) analyticsSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAnalyticsGet(w, r)
	if !ok {
		return
	}

	activities, interruptions, err := h.snapshotDays(r, userID, 30)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	start := time.Now()
	summary := engine.Summarize(h.engineCfg, activities, interruptions, time.Now().UTC())
	observability.ObserveCompute("analytics_summary", time.Since(start))

	writeJSON(w, http.StatusOK, toAnalyticsSummaryResponse(summary))
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAnalyticsGet(w, r)
	if !ok {
		return
	}

	now := time.Now().UTC()
	activities, interruptions, err := h.service.Snapshot(r.Context(), userID, now.AddDate(0, 0, -7), now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	start := time.Now()
	narrative := engine.GenerateInsights(h.engineCfg, activities, interruptions)
	observability.ObserveCompute("insights", time.Since(start))

	writeJSON(w, http.StatusOK, InsightResponse{
		PeakFocusWindow:    narrative.PeakFocusWindow,
		DistractionHotspot: narrative.DistractionHotspot,
		ConsistencyScore:   narrative.ConsistencyScore,
		BalanceRatio:       narrative.BalanceRatio,
		Suggestion:         narrative.Suggestion,
	})
}

// snapshotDays loads the trailing n-day window, honoring a positive "days"
// query override.
func (h *Handler) snapshotDays(r *http.Request, userID string, defaultDays int) ([]domain.Activity, []domain.Interruption, error) {
	days := defaultDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}
	now := time.Now().UTC()
	return h.service.Snapshot(r.Context(), userID, now.AddDate(0, 0, -days), now)
}

func requireAnalyticsGet(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return "", false
	}
	return requireUserID(w, r)
}

func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "missing user_id parameter")
		return "", false
	}
	return userID, true
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
