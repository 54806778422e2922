package ui

import (
	"fmt"
	"strings"

	"mindful/media-admin/internal/manager"
)

func (m Model) renderTabs() string {
	exercises := m.styles.Tab.Render("Exercises")
	music := m.styles.Tab.Render("Music")
	if m.tab == TabExercises {
		exercises = m.styles.TabOn.Render("Exercises")
	} else {
		music = m.styles.TabOn.Render("Music")
	}
	title := m.styles.Title.Render("Mindful Media Admin")
	return title + "  " + exercises + music
}

func (m Model) renderFilterBar() string {
	var categories []string
	var selected string
	if m.tab == TabExercises {
		categories = m.exercises.Categories()
		selected = m.exercises.Selected()
	} else {
		categories = m.music.Categories()
		selected = m.music.Selected()
	}

	parts := make([]string, 0, len(categories))
	for _, c := range categories {
		if strings.EqualFold(c, selected) {
			parts = append(parts, m.styles.Accent.Render("["+c+"]"))
		} else {
			parts = append(parts, m.styles.Muted.Render(c))
		}
	}
	return m.styles.Muted.Render("Filter: ") + strings.Join(parts, " ")
}

func (m Model) renderList() string {
	var b strings.Builder
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	if m.tab == TabExercises {
		b.WriteString(m.renderExerciseRows())
	} else {
		b.WriteString(m.renderMusicRows())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("j/k move · tab switch · f filter · n new · e edit · d delete · r reload · q quit"))
	return b.String()
}

func (m Model) renderExerciseRows() string {
	visible := m.exercises.Visible()
	if len(visible) == 0 {
		if !m.exercises.Loaded() {
			return m.styles.Muted.Render("Loading exercises...")
		}
		return m.styles.Muted.Render("No exercises in this category.")
	}

	var b strings.Builder
	header := fmt.Sprintf("%-30s %-16s %-10s %-14s", "NAME", "CATEGORY", "DURATION", "DIFFICULTY")
	b.WriteString(m.styles.Muted.Render(header))
	b.WriteString("\n")
	for i, e := range visible {
		row := fmt.Sprintf("%-30s %-16s %-10s %-14s",
			truncate(e.Name, 30), truncate(e.Category, 16), truncate(e.Duration, 10), e.Difficulty)
		if i == m.row {
			b.WriteString(m.styles.Selected.Render(row))
		} else {
			b.WriteString(m.styles.Text.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderMusicRows() string {
	visible := m.music.Visible()
	if len(visible) == 0 {
		if !m.music.Loaded() {
			return m.styles.Muted.Render("Loading music...")
		}
		return m.styles.Muted.Render("No tracks in this category.")
	}

	var b strings.Builder
	header := fmt.Sprintf("%-30s %-24s %-16s", "NAME", "AUTHOR", "CATEGORY")
	b.WriteString(m.styles.Muted.Render(header))
	b.WriteString("\n")
	for i, t := range visible {
		row := fmt.Sprintf("%-30s %-24s %-16s",
			truncate(t.Name, 30), truncate(t.Author, 24), truncate(t.Category, 16))
		if i == m.row {
			b.WriteString(m.styles.Selected.Render(row))
		} else {
			b.WriteString(m.styles.Text.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderConfirm() string {
	name := ""
	if m.tab == TabExercises {
		if id, ok := m.exercises.PendingDelete(); ok {
			for _, e := range m.exercises.Entities() {
				if e.EntityID() == id {
					name = e.Name
				}
			}
		}
	} else {
		if id, ok := m.music.PendingDelete(); ok {
			for _, t := range m.music.Entities() {
				if t.EntityID() == id {
					name = t.Name
				}
			}
		}
	}

	prompt := fmt.Sprintf("Delete %q? This also removes its media file.", name)
	return m.styles.Box.Render(
		m.styles.Danger.Render(prompt) + "\n\n" +
			m.styles.Help.Render("y confirm · n cancel"))
}

func (m Model) renderStatus() string {
	if m.busy {
		return m.styles.Muted.Render("Working...")
	}
	if m.status.Message == "" {
		return ""
	}
	if m.status.Severity == manager.SeverityError {
		return m.styles.Danger.Render(m.status.Message)
	}
	return m.styles.Success.Render(m.status.Message)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
