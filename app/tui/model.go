// Package tui is the terminal front end for the task store.
package tui

import (
	"errors"
	"fmt"

	"studytasks/app/models"
	"studytasks/app/services"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeSearch
)

type formField int

const (
	fieldText formField = iota
	fieldCategory
	fieldPriority
	fieldDue
	fieldCount
)

// addForm mirrors the "Add New Task" form. Category and priority keep
// their selection between adds; text and due date are cleared.
type addForm struct {
	text     textinput.Model
	due      textinput.Model
	category int
	priority int
	focus    formField
}

func newAddForm() addForm {
	text := textinput.New()
	text.Placeholder = "e.g., Finish chemistry lab report"
	text.CharLimit = 256
	text.Width = 48

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = 10
	due.Width = 12

	return addForm{
		text:     text,
		due:      due,
		priority: indexOfPriority(models.PriorityMedium),
	}
}

func indexOfPriority(p models.Priority) int {
	for i, known := range models.Priorities {
		if known == p {
			return i
		}
	}
	return 0
}

// Model is the Bubble Tea model for the task list.
type Model struct {
	store *services.TaskStore
	keys  keyMap
	help  help.Model

	// tasks is the filtered view currently on screen.
	tasks  []models.Task
	filter models.Filter
	cursor int

	mode    mode
	form    addForm
	search  textinput.Model
	grabbed string
	status  string
}

// New creates a Model over store with every filter set to All.
func New(store *services.TaskStore) Model {
	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.Prompt = "/ "
	search.CharLimit = 128

	m := Model{
		store:  store,
		keys:   defaultKeyMap(),
		help:   help.New(),
		filter: models.Filter{Category: models.All, Priority: models.All, Status: models.StatusAll},
		form:   newAddForm(),
		search: search,
	}
	m.refresh()
	return m
}

// Run starts the terminal UI and blocks until the user quits.
func Run(store *services.TaskStore) error {
	_, err := tea.NewProgram(New(store), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		if m.grabbed != "" {
			m.grabbed = ""
			m.status = "Move cancelled"
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.form.focus = fieldText
		m.status = ""
		cmd := m.focusForm()
		return m, cmd
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Category):
		m.filter.Category = nextFilterValue(m.filter.Category, categoryNames())
		m.refresh()
	case key.Matches(msg, m.keys.Priority):
		m.filter.Priority = nextFilterValue(m.filter.Priority, priorityNames())
		m.refresh()
	case key.Matches(msg, m.keys.Status):
		m.filter.Status = nextStatus(m.filter.Status)
		m.refresh()
	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.current(); ok {
			updated, err := m.store.ToggleTask(task.ID)
			m.report(err, fmt.Sprintf("Marked %q %s", updated.Text, doneWord(updated.Completed)))
			m.refresh()
		}
	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.current(); ok {
			err := m.store.DeleteTask(task.ID)
			m.report(err, fmt.Sprintf("Deleted %q", task.Text))
			m.refresh()
		}
	case key.Matches(msg, m.keys.Grab):
		m.grabOrDrop()
	case key.Matches(msg, m.keys.MoveUp):
		m.moveBy(-1)
	case key.Matches(msg, m.keys.MoveDown):
		m.moveBy(1)
	}
	return m, nil
}

// grabOrDrop picks up the task under the cursor, or drops the held task
// onto it.
func (m *Model) grabOrDrop() {
	task, ok := m.current()
	if !ok {
		return
	}
	if m.grabbed == "" {
		m.grabbed = task.ID
		m.status = fmt.Sprintf("Moving %q: pick a slot and press g", task.Text)
		return
	}
	moved := m.grabbed
	m.grabbed = ""
	if moved == task.ID {
		m.status = "Move cancelled"
		return
	}
	m.reorder(moved, task.ID)
}

// moveBy reorders the task under the cursor onto its visible neighbor.
func (m *Model) moveBy(delta int) {
	task, ok := m.current()
	if !ok {
		return
	}
	target := m.cursor + delta
	if target < 0 || target >= len(m.tasks) {
		return
	}
	m.reorder(task.ID, m.tasks[target].ID)
}

func (m *Model) reorder(movedID, targetID string) {
	if err := m.store.ReorderTask(movedID, targetID); err != nil {
		m.report(err, "")
		m.refresh()
		return
	}
	m.status = "Task moved"
	m.refresh()
	for i, t := range m.tasks {
		if t.ID == movedID {
			m.cursor = i
			break
		}
	}
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.blurForm()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		return m.submitForm()
	case "tab", "down":
		m.form.focus = (m.form.focus + 1) % fieldCount
		cmd := m.focusForm()
		return m, cmd
	case "shift+tab", "up":
		m.form.focus = (m.form.focus + fieldCount - 1) % fieldCount
		cmd := m.focusForm()
		return m, cmd
	case "left", "right":
		step := 1
		if msg.String() == "left" {
			step = -1
		}
		switch m.form.focus {
		case fieldCategory:
			m.form.category = wrap(m.form.category+step, len(models.Categories))
			return m, nil
		case fieldPriority:
			m.form.priority = wrap(m.form.priority+step, len(models.Priorities))
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldText:
		m.form.text, cmd = m.form.text.Update(msg)
	case fieldDue:
		m.form.due, cmd = m.form.due.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	task, err := m.store.AddTask(
		m.form.text.Value(),
		models.Categories[m.form.category],
		models.Priorities[m.form.priority],
		m.form.due.Value(),
	)
	if err != nil {
		m.report(err, "")
		return m, nil
	}
	m.form.text.SetValue("")
	m.form.due.SetValue("")
	m.blurForm()
	m.mode = modeList
	m.status = fmt.Sprintf("Added %q", task.Text)
	m.refresh()
	m.cursor = 0
	return m, nil
}

func (m *Model) focusForm() tea.Cmd {
	m.blurForm()
	switch m.form.focus {
	case fieldText:
		return m.form.text.Focus()
	case fieldDue:
		return m.form.due.Focus()
	}
	return nil
}

func (m *Model) blurForm() {
	m.form.text.Blur()
	m.form.due.Blur()
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.mode = modeList
		m.filter.Search = ""
		m.refresh()
		return m, nil
	case "enter":
		m.search.Blur()
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter.Search = m.search.Value()
	m.refresh()
	return m, cmd
}

// refresh recomputes the visible tasks from the store.
func (m *Model) refresh() {
	m.tasks = m.store.FilteredView(m.filter)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.grabbed != "" {
		if _, err := m.store.Task(m.grabbed); err != nil {
			m.grabbed = ""
		}
	}
}

func (m Model) current() (models.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *Model) report(err error, ok string) {
	switch {
	case err == nil:
		m.status = ok
	case errors.Is(err, services.ErrEmptyText):
		m.status = "Task text cannot be empty"
	case errors.Is(err, services.ErrNotFound):
		m.status = "That task no longer exists"
	default:
		m.status = "Error: " + err.Error()
	}
}

func categoryNames() []string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return names
}

func priorityNames() []string {
	names := make([]string, len(models.Priorities))
	for i, p := range models.Priorities {
		names[i] = string(p)
	}
	return names
}

// nextFilterValue cycles All -> values[0] -> ... -> values[n-1] -> All.
func nextFilterValue(current string, values []string) string {
	for i, v := range values {
		if v == current {
			if i == len(values)-1 {
				return models.All
			}
			return values[i+1]
		}
	}
	return values[0]
}

func nextStatus(current models.Status) models.Status {
	for i, s := range models.Statuses {
		if s == current {
			return models.Statuses[(i+1)%len(models.Statuses)]
		}
	}
	return models.StatusActive
}

func wrap(i, n int) int {
	return (i%n + n) % n
}

func doneWord(completed bool) string {
	if completed {
		return "done"
	}
	return "not done"
}
