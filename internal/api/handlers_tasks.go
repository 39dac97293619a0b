package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/PickleRicc/deep-work-sub001/internal/api/respond"
	"github.com/PickleRicc/deep-work-sub001/internal/api/validate"
	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
)

// TaskHandler serves task and task-review endpoints.
type TaskHandler struct {
	store store.Store
}

func NewTaskHandler(st store.Store) *TaskHandler { return &TaskHandler{store: st} }

// CreateTask POST /api/users/{userId}/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	var req struct {
		Title string   `json:"title"`
		Tags  []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.Title == "" {
		respond.WriteBadRequest(w, "title is required")
		return
	}
	out, err := h.store.Tasks().Create(r.Context(), &model.Task{UserID: userID, Title: req.Title, Tags: req.Tags})
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListTasks GET /api/users/{userId}/tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	tasks, err := h.store.Tasks().List(r.Context(), userID)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks, "count": len(tasks)})
}

// UpdateTaskStatus PATCH /api/users/{userId}/tasks/{taskId}/status
func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.TaskStatus(req.Status); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	out, err := h.store.Tasks().UpdateStatus(r.Context(), userID, mux.Vars(r)["taskId"], req.Status)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// CreateReview POST /api/users/{userId}/reviews
func (h *TaskHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDVar(w, r)
	if !ok {
		return
	}
	var req model.TaskReview
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.TaskID == "" {
		respond.WriteBadRequest(w, "taskId is required")
		return
	}
	if err := validate.Rating("enjoymentRating", req.EnjoymentRating); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.Rating("overallRating", req.OverallRating); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	if err := validate.EnergyRequired(req.EnergyRequired); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}
	req.UserID = userID
	out, err := h.store.Reviews().Create(r.Context(), &req)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}
