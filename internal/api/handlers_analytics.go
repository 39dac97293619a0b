// Package api is the HTTP transport for the planner services.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PickleRicc/deep-work-sub001/internal/api/respond"
	"github.com/PickleRicc/deep-work-sub001/internal/api/validate"
	"github.com/PickleRicc/deep-work-sub001/internal/services"
)

// AnalyticsHandler serves the read-only analytics endpoints.
type AnalyticsHandler struct {
	svc *services.AnalyticsService
}

func NewAnalyticsHandler(svc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func userIDVar(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := mux.Vars(r)["userId"]
	if err := validate.UserID(userID); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return "", false
	}
	return userID, true
}

// Summary GET /api/users/{userId}/analytics
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	sum, err := h.svc.Summary(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, sum)
}

// Daily GET /api/users/{userId}/analytics/daily
func (h *AnalyticsHandler) Daily(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	series, err := h.svc.Daily(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"days": series})
}

// Distribution GET /api/users/{userId}/analytics/distribution
func (h *AnalyticsHandler) Distribution(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	shares, err := h.svc.Distribution(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"distribution": shares})
}

// Heatmap GET /api/users/{userId}/analytics/heatmap
func (h *AnalyticsHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	grid, err := h.svc.Heatmap(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"heatmap": grid})
}

// PeakHours GET /api/users/{userId}/analytics/peak-hours
func (h *AnalyticsHandler) PeakHours(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	hours, err := h.svc.PeakHours(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"hours": hours})
}

// Reviews GET /api/users/{userId}/analytics/reviews
func (h *AnalyticsHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	rep, err := h.svc.Reviews(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, rep)
}
