package api

import (
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PickleRicc/deep-work-sub001/internal/api/recovery"
	"github.com/PickleRicc/deep-work-sub001/internal/services"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
)

// NewRouter wires every API route over the given store. isHealthy is
// the service-level health aggregate backing /api/health.
func NewRouter(st store.Store, loc *time.Location, isHealthy func() bool) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	analyticsSvc := services.NewAnalyticsService(st, loc)
	scheduleSvc := services.NewScheduleService(st)
	prefsSvc := services.NewPrefsService(st)

	healthHandler := NewHealthHandler(isHealthy)
	analyticsHandler := NewAnalyticsHandler(analyticsSvc)
	scheduleHandler := NewScheduleHandler(scheduleSvc)
	taskHandler := NewTaskHandler(st)
	prefsHandler := NewPrefsHandler(prefsSvc)

	// Health and metrics
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Analytics endpoints
	router.HandleFunc("/api/users/{userId}/analytics", analyticsHandler.Summary).Methods("GET")
	router.HandleFunc("/api/users/{userId}/analytics/daily", analyticsHandler.Daily).Methods("GET")
	router.HandleFunc("/api/users/{userId}/analytics/distribution", analyticsHandler.Distribution).Methods("GET")
	router.HandleFunc("/api/users/{userId}/analytics/heatmap", analyticsHandler.Heatmap).Methods("GET")
	router.HandleFunc("/api/users/{userId}/analytics/peak-hours", analyticsHandler.PeakHours).Methods("GET")
	router.HandleFunc("/api/users/{userId}/analytics/reviews", analyticsHandler.Reviews).Methods("GET")

	// Schedule endpoints
	router.HandleFunc("/api/users/{userId}/schedule/{date}", scheduleHandler.Day).Methods("GET")
	router.HandleFunc("/api/users/{userId}/schedule/{date}", scheduleHandler.Apply).Methods("PUT")
	router.HandleFunc("/api/users/{userId}/schedule/{date}/compare", scheduleHandler.Compare).Methods("POST")
	router.HandleFunc("/api/users/{userId}/blocks", scheduleHandler.CreateBlock).Methods("POST")
	router.HandleFunc("/api/users/{userId}/blocks/{blockId}", scheduleHandler.DeleteBlock).Methods("DELETE")

	// Task and review endpoints
	router.HandleFunc("/api/users/{userId}/tasks", taskHandler.CreateTask).Methods("POST")
	router.HandleFunc("/api/users/{userId}/tasks", taskHandler.ListTasks).Methods("GET")
	router.HandleFunc("/api/users/{userId}/tasks/{taskId}/status", taskHandler.UpdateTaskStatus).Methods("PATCH")
	router.HandleFunc("/api/users/{userId}/reviews", taskHandler.CreateReview).Methods("POST")

	// Notification preference endpoints
	router.HandleFunc("/api/users/{userId}/notification-prefs", prefsHandler.Get).Methods("GET")
	router.HandleFunc("/api/users/{userId}/notification-prefs", prefsHandler.Put).Methods("PUT")

	return router
}
