package services

import (
	"errors"
	"io"
	"log"
	"strings"
	"sync"

	"studytasks/app/models"

	"github.com/google/uuid"
)

var (
	// ErrEmptyText is returned when a task's text is blank after trimming.
	ErrEmptyText = errors.New("task text is empty")
	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("task not found")
	// ErrSelfReorder is returned when a task is dropped onto itself.
	ErrSelfReorder = errors.New("task cannot be reordered onto itself")
	// ErrDuplicateID is returned when no fresh id could be generated.
	ErrDuplicateID = errors.New("duplicate task id")

	ErrInvalidCategory = models.ErrInvalidCategory
	ErrInvalidPriority = models.ErrInvalidPriority
)

// maxIDAttempts bounds id regeneration when the generator collides.
const maxIDAttempts = 8

// TaskStore owns the ordered task list. Every failed operation leaves the
// list untouched, so callers that ignore errors get a silent no-op.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  []models.Task
	newID  func() string
	logger *log.Logger
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithTasks seeds the store with a copy of tasks, keeping their order.
func WithTasks(tasks []models.Task) Option {
	return func(s *TaskStore) {
		s.tasks = append([]models.Task(nil), tasks...)
	}
}

// WithIDGenerator replaces the default uuid v7 id generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *TaskStore) {
		s.newID = gen
	}
}

// WithLogger sets the logger that receives one line per mutation.
func WithLogger(logger *log.Logger) Option {
	return func(s *TaskStore) {
		s.logger = logger
	}
}

// NewTaskStore creates a new TaskStore.
func NewTaskStore(opts ...Option) *TaskStore {
	s := &TaskStore{
		newID:  NewID,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID returns a time-ordered uuid, falling back to a random one.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// AddTask creates a task and puts it at the front of the list.
func (s *TaskStore) AddTask(text string, category models.Category, priority models.Priority, dueDate string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, ErrEmptyText
	}
	if !category.Valid() {
		return models.Task{}, ErrInvalidCategory
	}
	if !priority.Valid() {
		return models.Task{}, ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.freshID()
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:       id,
		Text:     text,
		Category: category,
		Priority: priority,
		DueDate:  strings.TrimSpace(dueDate),
	}

	tasks := make([]models.Task, 0, len(s.tasks)+1)
	tasks = append(tasks, task)
	s.tasks = append(tasks, s.tasks...)

	s.logger.Printf("add %s %q", task.ID, task.Text)
	return task, nil
}

// freshID must be called with the write lock held.
func (s *TaskStore) freshID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", ErrDuplicateID
}

// ToggleTask flips the completed flag and returns the updated task.
func (s *TaskStore) ToggleTask(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}
	s.tasks[i].Completed = !s.tasks[i].Completed

	s.logger.Printf("toggle %s completed=%t", id, s.tasks[i].Completed)
	return s.tasks[i], nil
}

// DeleteTask removes the task with the given id.
func (s *TaskStore) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)

	s.logger.Printf("delete %s", id)
	return nil
}

// ReorderTask moves movedID into the slot targetID occupies.
func (s *TaskStore) ReorderTask(movedID, targetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := Move(s.tasks, movedID, targetID)
	if err != nil {
		return err
	}
	s.tasks = tasks

	s.logger.Printf("reorder %s onto %s", movedID, targetID)
	return nil
}

// Task returns the task with the given id.
func (s *TaskStore) Task(id string) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, ErrNotFound
	}
	return s.tasks[i], nil
}

// Tasks returns a snapshot of the full list in display order.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Task{}, s.tasks...)
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks)
}

// FilteredView returns the tasks matching f, in list order.
func (s *TaskStore) FilteredView(f models.Filter) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Filter(s.tasks, f)
}

// Progress returns the completed percentage in [0, 100].
func (s *TaskStore) Progress() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Progress(s.tasks)
}

// Stats summarizes the list from a single snapshot.
func (s *TaskStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return ComputeStats(s.tasks)
}

func (s *TaskStore) indexOf(id string) int {
	return indexOf(s.tasks, id)
}
