package models

import (
	"errors"
	"strings"
)

// All is the wildcard value for category and priority filters.
const All = "All"

var (
	// ErrInvalidCategory is returned for a category outside Categories.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidPriority is returned for a priority outside Priorities.
	ErrInvalidPriority = errors.New("invalid priority")
	// ErrInvalidStatus is returned for an unknown status filter.
	ErrInvalidStatus = errors.New("invalid status")
)

// Task represents a single homework assignment.
type Task struct {
	ID        string   `json:"id" yaml:"id"`
	Text      string   `json:"text" yaml:"text"`
	Category  Category `json:"category" yaml:"category"`
	Priority  Priority `json:"priority" yaml:"priority"`
	Completed bool     `json:"completed" yaml:"completed"`
	DueDate   string   `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// Category is the subject a task belongs to.
type Category string

const (
	CategoryMath      Category = "Math"
	CategoryScience   Category = "Science"
	CategoryHistory   Category = "History"
	CategoryEnglish   Category = "English"
	CategoryArt       Category = "Art"
	CategoryLabReport Category = "Lab Report"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryMath,
	CategoryScience,
	CategoryHistory,
	CategoryEnglish,
	CategoryArt,
	CategoryLabReport,
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category name, ignoring case and surrounding space.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

// Priority is how urgent a task is.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists every priority from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// PriorityInfo is presentation metadata for a priority.
type PriorityInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var priorityInfo = map[Priority]PriorityInfo{
	PriorityHigh:   {Label: "High", Color: "rose", Icon: "⇈"},
	PriorityMedium: {Label: "Medium", Color: "amber", Icon: "↑"},
	PriorityLow:    {Label: "Low", Color: "emerald", Icon: "–"},
}

// Valid reports whether p is one of Priorities.
func (p Priority) Valid() bool {
	_, ok := priorityInfo[p]
	return ok
}

// Info returns the display label, color and icon for p.
// Unknown priorities get their own name as label and no color or icon.
func (p Priority) Info() PriorityInfo {
	if info, ok := priorityInfo[p]; ok {
		return info
	}
	return PriorityInfo{Label: string(p)}
}

// ParsePriority resolves a priority name, ignoring case and surrounding space.
func ParsePriority(s string) (Priority, error) {
	s = strings.TrimSpace(s)
	for _, p := range Priorities {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", ErrInvalidPriority
}
