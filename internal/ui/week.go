package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"itin/internal/grid"
	"itin/internal/parser"
	"itin/internal/trip"
)

const (
	// Rows above the schedule grid: title, tab bar, day headers, all-day
	// lane. Mouse hit testing depends on these staying in sync with
	// viewWeek.
	headerRows  = 4
	allDayLaneY = 3
	gutterWidth = 6
)

// gridRows returns how many slot rows fit on screen.
func (m *Model) gridRows() int {
	rows := m.height - headerRows - 1
	if rows < 5 {
		rows = 5
	}
	return rows
}

func (m *Model) colWidth() int {
	if len(m.days) == 0 {
		return m.width - gutterWidth
	}
	w := (m.width - gutterWidth) / len(m.days)
	if w < 8 {
		w = 8
	}
	return w
}

func (m *Model) viewWeek() string {
	var lines []string

	lines = append(lines, m.renderTitle())
	lines = append(lines, m.renderTabs())
	lines = append(lines, m.renderDayHeaders())
	lines = append(lines, m.renderAllDayLane())

	colWidth := m.colWidth()
	rows := m.gridRows()
	maxRow := 24*m.rowsPerHour - 1

	for i := 0; i < rows; i++ {
		row := m.topRow + i
		if row > maxRow {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, m.renderSlotRow(row, colWidth))
	}

	lines = append(lines, m.renderStatusBar())
	return strings.Join(lines, "\n")
}

func (m *Model) renderTitle() string {
	title := fmt.Sprintf("%s  %s  %s - %s",
		m.config.Name,
		m.config.Destination,
		m.config.StartDate.Format("Jan 2"),
		m.config.EndDate.Format("Jan 2, 2006"))
	line := m.styles.Header.Render(title)
	if m.message != "" {
		line += "  " + m.styles.Message.Render(m.message)
	}
	return line
}

func (m *Model) renderTabs() string {
	tabs := []struct {
		mode  ViewMode
		label string
	}{
		{ViewWeek, "1:Schedule"},
		{ViewChat, "2:Chat"},
		{ViewChecklist, "3:Checklist"},
		{ViewIdeas, "4:Ideas"},
		{ViewParticipants, "5:People"},
	}

	var parts []string
	for _, tab := range tabs {
		active := tab.mode == m.mode || (tab.mode == ViewWeek && m.mode == ViewQuickAdd)
		if active {
			parts = append(parts, m.styles.Selected.Render(" "+tab.label+" "))
		} else {
			parts = append(parts, m.styles.Help.Render(" "+tab.label+" "))
		}
	}
	return strings.Join(parts, "")
}

func (m *Model) renderDayHeaders() string {
	colWidth := m.colWidth()
	line := strings.Repeat(" ", gutterWidth)
	for i, day := range m.days {
		label := fit(day.Format("Mon Jan 2"), colWidth)
		if i == m.selectedDay {
			line += m.styles.DayHeader.Render(label)
		} else {
			line += m.styles.Gutter.Render(label)
		}
	}
	return line
}

func (m *Model) renderAllDayLane() string {
	colWidth := m.colWidth()
	line := m.styles.Gutter.Render(fit("all", gutterWidth))
	for i := range m.days {
		cell := ""
		if i < len(m.columns) {
			var titles []string
			for _, ev := range m.columns[i].AllDay {
				titles = append(titles, ev.Title)
			}
			cell = strings.Join(titles, ", ")
		}
		if cell != "" {
			line += m.styles.AllDay.Render(fit(" "+cell, colWidth))
		} else {
			line += strings.Repeat(" ", colWidth)
		}
	}
	return line
}

func (m *Model) renderSlotRow(row, colWidth int) string {
	minute := m.mapper.ToMinutes(row)

	label := "     "
	if minute%60 == 0 {
		label = fmt.Sprintf("%02d:00", minute/60)
	}
	line := m.styles.Gutter.Render(fit(label, gutterWidth))

	dragStart, dragEnd, dragging := m.drag.Tentative()

	for day := range m.days {
		line += m.renderCell(day, row, minute, colWidth, dragStart, dragEnd, dragging)
	}
	return line
}

func (m *Model) renderCell(day, row, minute, colWidth, dragStart, dragEnd int, dragging bool) string {
	selected := m.mode == ViewWeek && day == m.selectedDay && row == m.selectedRow

	// Tentative drag geometry overrides the stored events in its column
	if dragging && day == m.dragDay() && minute >= dragStart && minute < dragEnd {
		text := ""
		if minute == dragStart || m.mapper.ToPixels(dragStart) == row {
			text = " " + parser.FormatClock(dragStart) + " - " + parser.FormatClock(dragEnd)
		}
		return m.styles.Tentative.Render(fit(text, colWidth))
	}

	var col grid.DayColumn
	if day < len(m.columns) {
		col = m.columns[day]
	}

	lanes, laneCount := grid.AssignLanes(col.Timed)
	hits := grid.EventsAt(col.Timed, lanes, minute)
	if len(hits) == 0 {
		if selected {
			return m.styles.Selected.Render(strings.Repeat(" ", colWidth))
		}
		return strings.Repeat(" ", colWidth)
	}

	// Overlapping events share the column side by side
	laneWidth := colWidth
	if laneCount > 1 {
		laneWidth = colWidth / laneCount
	}

	cell := ""
	used := 0
	for _, ev := range hits {
		// Skip the event being dragged; its tentative position renders
		// instead.
		if dragging && ev.ID == m.drag.EventID() {
			continue
		}
		text := ""
		if m.mapper.ToPixels(grid.MinutesOfDay(ev.StartTime)) == row {
			text = " " + ev.Title
		}
		style := m.styles.Category[ev.Category]
		if selected {
			style = m.styles.Selected
		}
		cell += style.Render(fit(text, laneWidth))
		used += laneWidth
	}
	if used < colWidth {
		pad := strings.Repeat(" ", colWidth-used)
		if selected {
			pad = m.styles.Selected.Render(pad)
		}
		cell += pad
	}
	return cell
}

func (m *Model) renderStatusBar() string {
	if m.mode == ViewQuickAdd {
		return m.styles.Header.Render("add: ") + m.quickAdd.View()
	}

	sel, ok := m.selectedEvent()
	left := "j/k:slot h/l:day z:zoom n:add e:edit d:delete a:all-day c:category ?:help q:quit"
	if ok {
		left = fmt.Sprintf("%s  %s - %s  %s",
			sel.Title,
			parser.FormatClock(grid.MinutesOfDay(sel.StartTime)),
			parser.FormatClock(grid.MinutesOfDay(sel.EndTime)),
			sel.Location)
	}
	return m.styles.Help.Render(fit(left, m.width))
}

// dragDay returns the day column index the active drag belongs to.
func (m *Model) dragDay() int {
	for i, day := range m.days {
		if trip.SameDay(day, m.drag.Day()) {
			return i
		}
	}
	return -1
}

// hitDay maps a screen column to a day index.
func (m *Model) hitDay(x int) (int, bool) {
	if x < gutterWidth || len(m.days) == 0 {
		return 0, false
	}
	day := (x - gutterWidth) / m.colWidth()
	if day >= len(m.days) {
		day = len(m.days) - 1
	}
	return day, true
}

// hitRow maps a screen line to a grid row.
func (m *Model) hitRow(y int) (int, bool) {
	gy := y - headerRows
	if gy < 0 || gy >= m.gridRows() {
		return 0, false
	}
	row := m.topRow + gy
	if row > 24*m.rowsPerHour-1 {
		return 0, false
	}
	return row, true
}

// eventAt returns the topmost timed event covering the grid row in a day
// column.
func (m *Model) eventAt(day, row int) (trip.Event, bool) {
	if day >= len(m.columns) {
		return trip.Event{}, false
	}
	col := m.columns[day]
	minute := m.mapper.ToMinutes(row)
	lanes, _ := grid.AssignLanes(col.Timed)
	hits := grid.EventsAt(col.Timed, lanes, minute)
	if len(hits) == 0 {
		return trip.Event{}, false
	}
	return hits[0], true
}

// fit pads or truncates s to exactly width display cells, so wide runes
// keep the columns aligned.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(s)
	if w > width {
		s = runewidth.Truncate(s, width, "…")
		w = runewidth.StringWidth(s)
	}
	return s + strings.Repeat(" ", width-w)
}
