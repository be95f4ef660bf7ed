package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"studytasks/app/models"

	"gopkg.in/yaml.v3"
)

// DefaultSeed returns the sample assignments a fresh list starts with.
func DefaultSeed(newID func() string) []models.Task {
	return []models.Task{
		{ID: newID(), Text: "Complete Algebra II homework", Category: models.CategoryMath, Priority: models.PriorityHigh, DueDate: "2023-10-27"},
		{ID: newID(), Text: "Study for Biology midterm", Category: models.CategoryScience, Priority: models.PriorityHigh, DueDate: "2023-10-29"},
		{ID: newID(), Text: "Write essay on the Renaissance", Category: models.CategoryHistory, Priority: models.PriorityMedium, Completed: true, DueDate: "2023-10-25"},
		{ID: newID(), Text: "Read 'The Great Gatsby' Chapter 3", Category: models.CategoryEnglish, Priority: models.PriorityLow, DueDate: "2023-10-26"},
	}
}

// seedFile is the on-disk layout of a seed file.
type seedFile struct {
	Tasks []seedTask `yaml:"tasks"`
}

type seedTask struct {
	ID        string `yaml:"id"`
	Text      string `yaml:"text"`
	Category  string `yaml:"category"`
	Priority  string `yaml:"priority"`
	Completed bool   `yaml:"completed"`
	DueDate   string `yaml:"due_date"`
}

// ResolveSeed returns the initial task list for a Config.Seed value.
func ResolveSeed(seed string, newID func() string) ([]models.Task, error) {
	switch seed {
	case "", SeedDefault:
		return DefaultSeed(newID), nil
	case SeedNone:
		return nil, nil
	}
	return LoadSeed(seed, newID)
}

// LoadSeed reads tasks from a YAML seed file. Missing ids are generated.
func LoadSeed(path string, newID func() string) ([]models.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return ParseSeed(data, newID)
}

// ParseSeed decodes and validates seed file contents.
func ParseSeed(data []byte, newID func() string) ([]models.Task, error) {
	var f seedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	tasks := make([]models.Task, 0, len(f.Tasks))
	seen := make(map[string]bool, len(f.Tasks))
	for i, st := range f.Tasks {
		task, err := st.toTask(newID)
		if err != nil {
			return nil, fmt.Errorf("seed task %d: %w", i+1, err)
		}
		if seen[task.ID] {
			return nil, fmt.Errorf("seed task %d: duplicate id %q", i+1, task.ID)
		}
		seen[task.ID] = true
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (st seedTask) toTask(newID func() string) (models.Task, error) {
	text := strings.TrimSpace(st.Text)
	if text == "" {
		return models.Task{}, errors.New("text is empty")
	}
	category, err := models.ParseCategory(st.Category)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %q", err, st.Category)
	}
	priority := models.PriorityMedium
	if st.Priority != "" {
		if priority, err = models.ParsePriority(st.Priority); err != nil {
			return models.Task{}, fmt.Errorf("%w: %q", err, st.Priority)
		}
	}
	id := strings.TrimSpace(st.ID)
	if id == "" {
		id = newID()
	}
	return models.Task{
		ID:        id,
		Text:      text,
		Category:  category,
		Priority:  priority,
		Completed: st.Completed,
		DueDate:   strings.TrimSpace(st.DueDate),
	}, nil
}
