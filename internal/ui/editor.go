package ui

import (
	"fmt"
	"strings"
	"time"

	"itin/internal/grid"
	"itin/internal/parser"
	"itin/internal/trip"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	fieldTitle = iota
	fieldLocation
	fieldDescription
	fieldStart
	fieldEnd
	fieldCount
)

type editorState struct {
	eventID   string
	allDay    bool
	category  trip.Category
	prevStart time.Time
	prevEnd   time.Time
	inputs    []textinput.Model
	focus     int
}

func (m *Model) openEditor(ev trip.Event) {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 120
	}
	inputs[fieldTitle].SetValue(ev.Title)
	inputs[fieldLocation].SetValue(ev.Location)
	inputs[fieldDescription].SetValue(ev.Description)
	inputs[fieldStart].SetValue(parser.FormatClock(grid.MinutesOfDay(ev.StartTime)))
	inputs[fieldEnd].SetValue(parser.FormatClock(grid.MinutesOfDay(ev.EndTime)))
	inputs[fieldTitle].Focus()

	m.editor = editorState{
		eventID:   ev.ID,
		allDay:    ev.AllDay,
		category:  ev.Category,
		prevStart: ev.StartTime,
		prevEnd:   ev.EndTime,
		inputs:    inputs,
	}
	m.mode = ViewEditor
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ViewWeek
		return m, nil

	case "enter":
		m.saveEditor()
		return m, nil

	case "tab", "down":
		m.setEditorFocus((m.editor.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setEditorFocus((m.editor.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "ctrl+t":
		m.editor.category = nextCategory(m.editor.category)
		return m, nil

	case "ctrl+a":
		m.editor.allDay = !m.editor.allDay
		return m, nil

	case "ctrl+d":
		if err := m.store.Delete(m.editor.eventID); err != nil {
			m.showMessage(fmt.Sprintf("Error: %v", err))
			return m, nil
		}
		m.reloadEvents()
		m.mode = ViewWeek
		m.showMessage("Event deleted")
		return m, nil
	}

	var cmd tea.Cmd
	m.editor.inputs[m.editor.focus], cmd = m.editor.inputs[m.editor.focus].Update(msg)
	return m, cmd
}

func (m *Model) setEditorFocus(focus int) {
	m.editor.inputs[m.editor.focus].Blur()
	m.editor.focus = focus
	m.editor.inputs[focus].Focus()
}

func (m *Model) saveEditor() {
	e := &m.editor

	// Free-form clock fields keep the previous time when they don't
	// parse as a clock.
	start := e.prevStart
	if minutes, ok := parser.ParseClock(e.inputs[fieldStart].Value()); ok {
		start = grid.WithMinutesOfDay(e.prevStart, minutes)
	}
	end := e.prevEnd
	if minutes, ok := parser.ParseClock(e.inputs[fieldEnd].Value()); ok {
		end = grid.WithMinutesOfDay(e.prevEnd, minutes)
	}

	title := e.inputs[fieldTitle].Value()
	location := e.inputs[fieldLocation].Value()
	description := e.inputs[fieldDescription].Value()

	_, err := m.store.Update(e.eventID, trip.Patch{
		Title:       &title,
		Location:    &location,
		Description: &description,
		StartTime:   &start,
		EndTime:     &end,
		Category:    &e.category,
		AllDay:      &e.allDay,
	})
	if err != nil {
		m.showMessage(fmt.Sprintf("Error: %v", err))
		return
	}

	m.reloadEvents()
	m.mode = ViewWeek
	m.showMessage("Event saved")
}

func (m *Model) viewEditor() string {
	e := &m.editor
	labels := []string{"Title", "Location", "Description", "Start", "End"}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Edit Event"))
	b.WriteString("\n\n")
	for i, input := range e.inputs {
		label := fmt.Sprintf("%-12s", labels[i])
		if i == e.focus {
			b.WriteString(m.styles.Selected.Render(label))
		} else {
			b.WriteString(m.styles.Gutter.Render(label))
		}
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Gutter.Render(fmt.Sprintf("%-12s", "Category")))
	b.WriteString(m.styles.Category[e.category].Render(" " + string(e.category) + " "))
	if e.allDay {
		b.WriteString("  ")
		b.WriteString(m.styles.AllDay.Render(" all-day "))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("tab:next field ctrl+t:category ctrl+a:all-day ctrl+d:delete enter:save esc:cancel"))

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Message.Render(m.message))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m *Model) handleQuickAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ViewWeek
		m.quickAdd.Blur()
		return m, nil

	case "enter":
		input := m.quickAdd.Value()
		m.mode = ViewWeek
		m.quickAdd.Blur()
		if strings.TrimSpace(input) == "" {
			return m, nil
		}

		// Dates in the quick-add line resolve against the selected column
		if m.selectedDay < len(m.days) {
			m.parser.SetNow(m.days[m.selectedDay])
		}
		parsed, err := m.parser.Parse(input)
		if err != nil {
			m.showMessage(fmt.Sprintf("Parse error: %v", err))
			return m, nil
		}
		if _, err := m.store.Create(parsed.Event(trip.CategoryOther)); err != nil {
			m.showMessage(fmt.Sprintf("Error: %v", err))
			return m, nil
		}
		m.reloadEvents()
		m.showMessage("Event added")
		return m, nil
	}

	var cmd tea.Cmd
	m.quickAdd, cmd = m.quickAdd.Update(msg)
	return m, cmd
}
