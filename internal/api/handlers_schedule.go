package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PickleRicc/deep-work-sub001/internal/api/respond"
	"github.com/PickleRicc/deep-work-sub001/internal/api/validate"
	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/services"
)

// ScheduleHandler serves day schedules, block CRUD, and the optimizer
// compare/apply endpoints.
type ScheduleHandler struct {
	svc *services.ScheduleService
}

func NewScheduleHandler(svc *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func scheduleVars(w http.ResponseWriter, r *http.Request) (userID, date string, ok bool) {
	vars := mux.Vars(r)
	if err := validate.UserID(vars["userId"]); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return "", "", false
	}
	if err := validate.Date(vars["date"]); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return "", "", false
	}
	return vars["userId"], vars["date"], true
}

// Day GET /api/users/{userId}/schedule/{date}
func (h *ScheduleHandler) Day(w http.ResponseWriter, r *http.Request) {
	userID, date, ok := scheduleVars(w, r)
	if !ok {
		return
	}
	blocks, err := h.svc.Day(r.Context(), userID, date)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"blocks": blocks, "count": len(blocks)})
}

// CreateBlock POST /api/users/{userId}/blocks
func (h *ScheduleHandler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	var b model.TimeBlock
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	b.UserID = userID
	if err := validate.Block(&b); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.svc.CreateBlock(r.Context(), &b)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// DeleteBlock DELETE /api/users/{userId}/blocks/{blockId}
func (h *ScheduleHandler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteBlock(r.Context(), userID, mux.Vars(r)["blockId"]); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Compare POST /api/users/{userId}/schedule/{date}/compare
func (h *ScheduleHandler) Compare(w http.ResponseWriter, r *http.Request) {
	userID, date, ok := scheduleVars(w, r)
	if !ok {
		return
	}
	var req services.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	cmp, err := h.svc.Compare(r.Context(), userID, date, req)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"comparison":     cmp.ScheduleComparison,
		"improvement":    cmp.Improvement(),
		"changedIndexes": cmp.ChangedIndexes(),
	})
}

// Apply PUT /api/users/{userId}/schedule/{date}
func (h *ScheduleHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, date, ok := scheduleVars(w, r)
	if !ok {
		return
	}
	var req struct {
		Blocks []model.TimeBlock `json:"blocks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	for i := range req.Blocks {
		req.Blocks[i].UserID = userID
		req.Blocks[i].Date = date
		if err := validate.Block(&req.Blocks[i]); err != nil {
			respond.WriteBadRequest(w, err.Error())
			return
		}
	}
	if err := h.svc.Apply(r.Context(), userID, date, req.Blocks); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
