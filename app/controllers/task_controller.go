package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"studytasks/app/models"
	"studytasks/app/services"

	"github.com/gorilla/mux"
)

// TaskController handles HTTP requests for tasks.
type TaskController struct {
	Store *services.TaskStore
}

// NewTaskController creates a new TaskController.
func NewTaskController(store *services.TaskStore) *TaskController {
	return &TaskController{Store: store}
}

type createTaskRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date"`
}

type reorderRequest struct {
	TargetID string `json:"target_id"`
}

type progressResponse struct {
	services.Stats
	Rounded int `json:"rounded"`
}

type metaResponse struct {
	Categories   []models.Category                       `json:"categories"`
	Priorities   []models.Priority                       `json:"priorities"`
	PriorityInfo map[models.Priority]models.PriorityInfo `json:"priority_info"`
	Statuses     []models.Status                         `json:"statuses"`
}

// GetTasks handles GET /tasks.
func (c *TaskController) GetTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c.Store.FilteredView(filter))
}

// CreateTask handles POST /tasks.
func (c *TaskController) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category := models.CategoryMath
	if req.Category != "" {
		parsed, err := models.ParseCategory(req.Category)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		category = parsed
	}
	priority := models.PriorityMedium
	if req.Priority != "" {
		parsed, err := models.ParsePriority(req.Priority)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		priority = parsed
	}

	task, err := c.Store.AddTask(req.Text, category, priority, req.DueDate)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

// GetTaskByID handles GET /tasks/{taskID}.
func (c *TaskController) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	task, err := c.Store.Task(mux.Vars(r)["taskID"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// ToggleTask handles POST /tasks/{taskID}/toggle.
func (c *TaskController) ToggleTask(w http.ResponseWriter, r *http.Request) {
	task, err := c.Store.ToggleTask(mux.Vars(r)["taskID"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/{taskID}.
func (c *TaskController) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := c.Store.DeleteTask(mux.Vars(r)["taskID"]); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderTask handles POST /tasks/{taskID}/reorder.
func (c *TaskController) ReorderTask(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TargetID == "" {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := c.Store.ReorderTask(mux.Vars(r)["taskID"], req.TargetID); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.Store.Tasks())
}

// GetProgress handles GET /progress.
func (c *TaskController) GetProgress(w http.ResponseWriter, r *http.Request) {
	stats := c.Store.Stats()
	writeJSON(w, http.StatusOK, progressResponse{Stats: stats, Rounded: stats.Rounded()})
}

// GetMeta handles GET /meta.
func (c *TaskController) GetMeta(w http.ResponseWriter, r *http.Request) {
	info := make(map[models.Priority]models.PriorityInfo, len(models.Priorities))
	for _, p := range models.Priorities {
		info[p] = p.Info()
	}
	writeJSON(w, http.StatusOK, metaResponse{
		Categories:   models.Categories,
		Priorities:   models.Priorities,
		PriorityInfo: info,
		Statuses:     models.Statuses,
	})
}

func filterFromQuery(r *http.Request) (models.Filter, error) {
	q := r.URL.Query()
	f := models.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Priority: q.Get("priority"),
	}
	if f.Category != "" && f.Category != models.All && !models.Category(f.Category).Valid() {
		return models.Filter{}, models.ErrInvalidCategory
	}
	if f.Priority != "" && f.Priority != models.All && !models.Priority(f.Priority).Valid() {
		return models.Filter{}, models.ErrInvalidPriority
	}
	status, err := models.ParseStatus(q.Get("status"))
	if err != nil {
		return models.Filter{}, err
	}
	f.Status = status
	return f, nil
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, services.ErrEmptyText),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrSelfReorder):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
