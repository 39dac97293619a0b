package api

import (
	"encoding/json"
	"net/http"

	"github.com/PickleRicc/deep-work-sub001/internal/api/respond"
	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/services"
)

// PrefsHandler serves notification preference endpoints.
type PrefsHandler struct {
	svc *services.PrefsService
}

func NewPrefsHandler(svc *services.PrefsService) *PrefsHandler {
	return &PrefsHandler{svc: svc}
}

// Get GET /api/users/{userId}/notification-prefs
func (h *PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	prefs, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, prefs)
}

// Put PUT /api/users/{userId}/notification-prefs
func (h *PrefsHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	var req model.NotificationPrefs
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	req.UserID = userID
	out, err := h.svc.Put(r.Context(), &req)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
