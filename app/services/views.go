package services

import (
	"math"

	"studytasks/app/models"
)

// Stats is the progress summary shown above the task list.
type Stats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Active    int     `json:"active"`
	Percent   float64 `json:"percent"`
}

// Rounded returns Percent rounded to the nearest whole number.
func (s Stats) Rounded() int {
	return int(math.Round(s.Percent))
}

// ComputeStats counts tasks by completion.
func ComputeStats(tasks []models.Task) Stats {
	st := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Active = st.Total - st.Completed
	if st.Total > 0 {
		st.Percent = float64(st.Completed) / float64(st.Total) * 100
	}
	return st
}

// Progress returns 0 for an empty list, else 100 * completed / total.
func Progress(tasks []models.Task) float64 {
	return ComputeStats(tasks).Percent
}

// Filter returns the tasks matching f, preserving order. Never nil.
func Filter(tasks []models.Task, f models.Filter) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Move returns a new slice with movedID spliced into targetID's index.
// The target and the tasks between the two slots shift one place toward
// the slot movedID vacated. tasks itself is not modified.
func Move(tasks []models.Task, movedID, targetID string) ([]models.Task, error) {
	if movedID == targetID {
		return nil, ErrSelfReorder
	}
	from := indexOf(tasks, movedID)
	to := indexOf(tasks, targetID)
	if from < 0 || to < 0 {
		return nil, ErrNotFound
	}

	out := make([]models.Task, 0, len(tasks))
	out = append(out, tasks[:from]...)
	out = append(out, tasks[from+1:]...)

	moved := tasks[from]
	out = append(out, models.Task{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out, nil
}

func indexOf(tasks []models.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
