package tui

import (
	"fmt"
	"strings"
	"time"

	"studytasks/app/models"
	"studytasks/app/services"

	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 30

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e293b"))
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#334155"))
	barFullStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	barRestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e2e8f0"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#94a3b8"))
	cursorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4f46e5"))
	activeTab    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4f46e5"))
	statusStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#475569"))
	emptyBox     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#cbd5e1")).Padding(1, 4)

	// priorityColors maps PriorityInfo.Color names to terminal colors.
	priorityColors = map[string]lipgloss.Color{
		"rose":    lipgloss.Color("#f43f5e"),
		"amber":   lipgloss.Color("#f59e0b"),
		"emerald": lipgloss.Color("#10b981"),
	}
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("My Assignments"))
	b.WriteString("\n")
	b.WriteString(taglineStyle.Render("Stay organized and ace your classes."))
	b.WriteString("\n\n")

	b.WriteString(renderProgress(m.store.Stats()))
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdd:
		b.WriteString(m.renderForm())
		b.WriteString("\n")
	case modeSearch:
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.mode == modeList {
		b.WriteString(m.help.ShortHelpView(m.keys.listHelp()))
		b.WriteString("\n")
	}
	return b.String()
}

func renderProgress(st services.Stats) string {
	filled := int(float64(progressWidth)*st.Percent/100 + 0.5)
	bar := barFullStyle.Render(strings.Repeat("█", filled)) +
		barRestStyle.Render(strings.Repeat("░", progressWidth-filled))
	label := mutedStyle.Render(fmt.Sprintf("%d%% Complete", st.Rounded()))
	return headingStyle.Render("Progress") + "\n" + bar + " " + label
}

func (m Model) renderForm() string {
	f := m.form
	field := func(which formField, label, value string) string {
		marker := "  "
		if f.focus == which {
			marker = cursorStyle.Render("> ")
		}
		return marker + mutedStyle.Render(label) + " " + value + "\n"
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Add New Task"))
	b.WriteString("\n")
	b.WriteString(field(fieldText, "Task:    ", f.text.View()))
	b.WriteString(field(fieldCategory, "Subject: ", "‹ "+string(models.Categories[f.category])+" ›"))
	b.WriteString(field(fieldPriority, "Priority:", "‹ "+priorityBadge(models.Priorities[f.priority])+" ›"))
	b.WriteString(field(fieldDue, "Due date:", f.due.View()))
	b.WriteString(mutedStyle.Render("tab: next field • ←/→: change • enter: add task • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFilters() string {
	status := make([]string, len(models.Statuses))
	for i, s := range models.Statuses {
		if s == m.filter.Status {
			status[i] = activeTab.Render("[" + string(s) + "]")
		} else {
			status[i] = mutedStyle.Render(" " + string(s) + " ")
		}
	}
	parts := []string{
		"Subject: " + filterLabel(m.filter.Category, "All Subjects"),
		"Priority: " + filterLabel(m.filter.Priority, "All Priorities"),
		strings.Join(status, ""),
	}
	if m.filter.Search != "" && m.mode != modeSearch {
		parts = append(parts, fmt.Sprintf("Search: %q", m.filter.Search))
	}
	return strings.Join(parts, "   ")
}

func filterLabel(v, all string) string {
	if v == "" || v == models.All {
		return all
	}
	return v
}

func (m Model) renderTasks() string {
	if len(m.tasks) == 0 {
		hint := "Try adjusting your filters to find what you're looking for."
		if m.store.Len() == 0 {
			hint = "You haven't added any tasks yet. Get started above!"
		}
		return emptyBox.Render(headingStyle.Render("No tasks found") + "\n" + mutedStyle.Render(hint))
	}

	rows := make([]string, len(m.tasks))
	for i, t := range m.tasks {
		rows[i] = m.renderRow(i, t)
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(i int, t models.Task) string {
	pointer := "  "
	if i == m.cursor {
		pointer = cursorStyle.Render("> ")
	}
	if t.ID == m.grabbed {
		pointer = cursorStyle.Render("⇅ ")
	}

	check := "[ ]"
	text := t.Text
	if t.Completed {
		check = "[x]"
		text = doneStyle.Render(text)
	}

	meta := string(t.Category)
	if t.HasDueDate() {
		meta += " • Due: " + formatDue(t.DueDate)
	}

	return fmt.Sprintf("%s%s %s  %s  %s", pointer, check, text, mutedStyle.Render(meta), priorityBadge(t.Priority))
}

func priorityBadge(p models.Priority) string {
	info := p.Info()
	badge := strings.TrimSpace(info.Icon + " " + info.Label)
	if c, ok := priorityColors[info.Color]; ok {
		return lipgloss.NewStyle().Foreground(c).Render(badge)
	}
	return badge
}

// formatDue renders a YYYY-MM-DD date for display, or the raw value if it
// does not parse.
func formatDue(s string) string {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return d.Format("Jan 2, 2006")
}
