package routes

import (
	"log"
	"net/http"
	"time"

	"studytasks/app/controllers"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, taskController *controllers.TaskController) {
	router.HandleFunc("/tasks", taskController.GetTasks).Methods(http.MethodGet)
	router.HandleFunc("/tasks", taskController.CreateTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{taskID}", taskController.GetTaskByID).Methods(http.MethodGet)
	router.HandleFunc("/tasks/{taskID}", taskController.DeleteTask).Methods(http.MethodDelete)
	router.HandleFunc("/tasks/{taskID}/toggle", taskController.ToggleTask).Methods(http.MethodPost)
	router.HandleFunc("/tasks/{taskID}/reorder", taskController.ReorderTask).Methods(http.MethodPost)
	router.HandleFunc("/progress", taskController.GetProgress).Methods(http.MethodGet)
	router.HandleFunc("/meta", taskController.GetMeta).Methods(http.MethodGet)
}

// NewRouter returns a router with all routes and request logging installed.
func NewRouter(taskController *controllers.TaskController, logger *log.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(Logging(logger))
	RegisterRoutes(router, taskController)
	return router
}

// Logging logs one line per request: method, path, status and duration.
func Logging(logger *log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
