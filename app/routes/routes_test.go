package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studytasks/app/controllers"
	"studytasks/app/models"
	"studytasks/app/services"

	"github.com/gorilla/mux"
)

func newTestRouter(t *testing.T, tasks ...models.Task) (*mux.Router, *services.TaskStore, *bytes.Buffer) {
	t.Helper()
	n := 0
	store := services.NewTaskStore(services.WithTasks(tasks), services.WithIDGenerator(func() string {
		n++
		return "new-" + string(rune('0'+n))
	}))
	var logs bytes.Buffer
	router := NewRouter(controllers.NewTaskController(store), log.New(&logs, "", 0))
	return router, store, &logs
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeTasks(t *testing.T, rec *httptest.ResponseRecorder) []models.Task {
	t.Helper()
	var tasks []models.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return tasks
}

func taskIDs(tasks []models.Task) string {
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return strings.Join(ids, ",")
}

var (
	mathTask    = models.Task{ID: "a", Text: "Algebra homework", Category: models.CategoryMath, Priority: models.PriorityHigh}
	historyTask = models.Task{ID: "b", Text: "Renaissance essay", Category: models.CategoryHistory, Priority: models.PriorityMedium, Completed: true}
	scienceTask = models.Task{ID: "c", Text: "Biology midterm", Category: models.CategoryScience, Priority: models.PriorityLow}
)

func TestGetTasksFilters(t *testing.T) {
	router, _, _ := newTestRouter(t, mathTask, historyTask, scienceTask)

	tests := []struct {
		query string
		want  string
	}{
		{"", "a,b,c"},
		{"?category=All&priority=All&status=All", "a,b,c"},
		{"?status=Active", "a,c"},
		{"?status=completed", "b"},
		{"?search=ESSAY", "b"},
		{"?category=Science", "c"},
		{"?priority=High&status=Active", "a"},
		{"?search=zzz", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, "/tasks"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", rec.Code, rec.Body)
			}
			if got := taskIDs(decodeTasks(t, rec)); got != tt.want {
				t.Errorf("ids = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetTasksRejectsBadFilters(t *testing.T) {
	router, _, _ := newTestRouter(t, mathTask)
	for _, q := range []string{"?status=done", "?category=Music", "?priority=urgent"} {
		if rec := do(t, router, http.MethodGet, "/tasks"+q, ""); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, rec.Code)
		}
	}
}

func TestCreateTask(t *testing.T) {
	router, store, logs := newTestRouter(t, mathTask)

	rec := do(t, router, http.MethodPost, "/tasks", `{"text":"  Finish lab ","category":"lab report","priority":"Low","due_date":"2024-01-01"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	var task models.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatal(err)
	}
	want := models.Task{ID: "new-1", Text: "Finish lab", Category: models.CategoryLabReport, Priority: models.PriorityLow, DueDate: "2024-01-01"}
	if task != want {
		t.Errorf("task = %+v, want %+v", task, want)
	}
	if got := taskIDs(store.Tasks()); got != "new-1,a" {
		t.Errorf("store order = %s", got)
	}
	if !strings.Contains(logs.String(), "POST /tasks 201") {
		t.Errorf("request not logged: %q", logs.String())
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/tasks", `{"text":"Read"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	var task models.Task
	json.Unmarshal(rec.Body.Bytes(), &task)
	if task.Category != models.CategoryMath || task.Priority != models.PriorityMedium {
		t.Errorf("defaults = %s/%s, want Math/Medium", task.Category, task.Priority)
	}
}

func TestCreateTaskRejects(t *testing.T) {
	router, store, _ := newTestRouter(t, mathTask)

	for _, body := range []string{
		`{"text":"   "}`,
		`{"text":""}`,
		`{"text":"x","category":"Music"}`,
		`{"text":"x","priority":"Urgent"}`,
		`not json`,
	} {
		if rec := do(t, router, http.MethodPost, "/tasks", body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", body, rec.Code)
		}
	}
	if store.Len() != 1 {
		t.Errorf("len = %d, want 1", store.Len())
	}
}

func TestGetTaskByID(t *testing.T) {
	router, _, _ := newTestRouter(t, mathTask)

	rec := do(t, router, http.MethodGet, "/tasks/a", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec := do(t, router, http.MethodGet, "/tasks/zzz", ""); rec.Code != http.StatusNotFound {
		t.Errorf("missing: status = %d, want 404", rec.Code)
	}
}

func TestToggleTask(t *testing.T) {
	router, store, _ := newTestRouter(t, mathTask)

	rec := do(t, router, http.MethodPost, "/tasks/a/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if task, _ := store.Task("a"); !task.Completed {
		t.Error("task not toggled")
	}
	if rec := do(t, router, http.MethodPost, "/tasks/zzz/toggle", ""); rec.Code != http.StatusNotFound {
		t.Errorf("missing: status = %d, want 404", rec.Code)
	}
}

func TestDeleteTask(t *testing.T) {
	router, store, _ := newTestRouter(t, mathTask, historyTask)

	if rec := do(t, router, http.MethodDelete, "/tasks/a", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec := do(t, router, http.MethodDelete, "/tasks/a", ""); rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", rec.Code)
	}
	if got := taskIDs(store.Tasks()); got != "b" {
		t.Errorf("remaining = %s", got)
	}
}

func TestReorderTask(t *testing.T) {
	router, _, _ := newTestRouter(t, mathTask, historyTask, scienceTask)

	rec := do(t, router, http.MethodPost, "/tasks/a/reorder", `{"target_id":"c"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if got := taskIDs(decodeTasks(t, rec)); got != "b,c,a" {
		t.Errorf("order = %s, want b,c,a", got)
	}

	tests := []struct {
		target, body string
		want         int
	}{
		{"/tasks/a/reorder", `{"target_id":"a"}`, http.StatusBadRequest},
		{"/tasks/a/reorder", `{"target_id":"zzz"}`, http.StatusNotFound},
		{"/tasks/zzz/reorder", `{"target_id":"a"}`, http.StatusNotFound},
		{"/tasks/a/reorder", `{}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		if rec := do(t, router, http.MethodPost, tt.target, tt.body); rec.Code != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.target, tt.body, rec.Code, tt.want)
		}
	}
}

func TestGetProgress(t *testing.T) {
	router, _, _ := newTestRouter(t, mathTask, historyTask, scienceTask)

	rec := do(t, router, http.MethodGet, "/progress", "")
	var got struct {
		Total     int     `json:"total"`
		Completed int     `json:"completed"`
		Active    int     `json:"active"`
		Percent   float64 `json:"percent"`
		Rounded   int     `json:"rounded"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Total != 3 || got.Completed != 1 || got.Active != 2 || got.Rounded != 33 {
		t.Errorf("progress = %+v", got)
	}
}

func TestGetMeta(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/meta", "")
	var got struct {
		Categories   []string                       `json:"categories"`
		PriorityInfo map[string]models.PriorityInfo `json:"priority_info"`
		Statuses     []string                       `json:"statuses"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Categories) != 6 || got.Categories[5] != "Lab Report" {
		t.Errorf("categories = %v", got.Categories)
	}
	if got.PriorityInfo["High"].Color != "rose" {
		t.Errorf("priority info = %v", got.PriorityInfo)
	}
	if strings.Join(got.Statuses, ",") != "All,Active,Completed" {
		t.Errorf("statuses = %v", got.Statuses)
	}
}

func TestUnknownRouteMethod(t *testing.T) {
	router, _, _ := newTestRouter(t)
	if rec := do(t, router, http.MethodPut, "/tasks/a", "{}"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
