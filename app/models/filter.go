package models

import "strings"

// Status narrows tasks by completion.
type Status string

const (
	StatusAll       Status = "All"
	StatusActive    Status = "Active"
	StatusCompleted Status = "Completed"
)

// Statuses lists the status filters in display order.
var Statuses = []Status{StatusAll, StatusActive, StatusCompleted}

// ParseStatus resolves a status name. An empty string means StatusAll.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusAll, nil
	}
	for _, st := range Statuses {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

// Filter selects the tasks shown to the user.
// Empty fields behave like "All", so the zero Filter matches every task.
type Filter struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Status   Status `json:"status"`
}

// IsZero reports whether f lets every task through.
func (f Filter) IsZero() bool {
	return f.Search == "" && isAll(f.Category) && isAll(f.Priority) && isAll(string(f.Status))
}

// Matches reports whether t passes all four predicates.
func (f Filter) Matches(t Task) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(t.Text), strings.ToLower(f.Search)) {
		return false
	}
	if !isAll(f.Category) && string(t.Category) != f.Category {
		return false
	}
	if !isAll(f.Priority) && string(t.Priority) != f.Priority {
		return false
	}
	switch f.Status {
	case StatusActive:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	}
	return true
}

func isAll(v string) bool {
	return v == "" || v == All
}
