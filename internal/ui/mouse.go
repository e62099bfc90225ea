package ui

import (
	"fmt"
	"time"

	"itin/internal/grid"
	"itin/internal/trip"

	tea "github.com/charmbracelet/bubbletea"
)

// doubleClickWindow is how close two presses must be to count as a
// double click.
const doubleClickWindow = 500 * time.Millisecond

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ViewWeek {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.topRow -= 3
		if m.topRow < 0 {
			m.topRow = 0
		}
		return m, nil

	case tea.MouseButtonWheelDown:
		maxTop := 24*m.rowsPerHour - m.gridRows()
		if maxTop < 0 {
			maxTop = 0
		}
		m.topRow += 3
		if m.topRow > maxTop {
			m.topRow = maxTop
		}
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handleMousePress(msg)

	case tea.MouseActionMotion:
		if m.drag.Active() {
			m.drag.Update(m.dragRow(msg.Y))
		}
		return m, nil

	case tea.MouseActionRelease:
		if !m.drag.Active() {
			return m, nil
		}
		ev, committed, err := m.drag.Release(m.dragRow(msg.Y), m.store)
		if err != nil {
			m.showMessage(fmt.Sprintf("Error: %v", err))
		} else if committed {
			m.reloadEvents()
			m.showMessage(ev.Title)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleMousePress(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	double := time.Since(m.lastClickTime) < doubleClickWindow &&
		msg.X == m.lastClickX && msg.Y == m.lastClickY
	m.lastClickTime = time.Now()
	m.lastClickX = msg.X
	m.lastClickY = msg.Y

	day, okDay := m.hitDay(msg.X)
	if !okDay {
		return m, nil
	}

	// Double click on the all-day lane creates an all-day event
	if msg.Y == allDayLaneY {
		if double {
			ev := trip.NewAllDayEvent("New Event", m.days[day], trip.CategoryOther)
			if _, err := m.store.Create(ev); err != nil {
				m.showMessage(fmt.Sprintf("Error: %v", err))
			} else {
				m.reloadEvents()
			}
		}
		m.selectedDay = day
		return m, nil
	}

	row, okRow := m.hitRow(msg.Y)
	if !okRow {
		return m, nil
	}

	m.selectedDay = day
	m.selectedRow = row

	if ev, ok := m.eventAt(day, row); ok {
		if double {
			m.openEditor(ev)
			return m, nil
		}

		startRow := m.mapper.ToPixels(grid.MinutesOfDay(ev.StartTime))
		endRow := m.mapper.ToPixels(grid.MinutesOfDay(ev.EndTime))
		span := endRow - startRow

		// Edge rows act as resize handles once the block is tall enough
		// to leave a middle to grab.
		switch {
		case span >= 3 && row == startRow:
			m.drag.BeginResizeTop(m.mapper, ev, row)
		case span >= 3 && row == endRow-1:
			m.drag.BeginResizeBottom(m.mapper, ev, row)
		default:
			m.drag.BeginMove(m.mapper, ev, row)
		}
		return m, nil
	}

	if double {
		// Double click on empty space creates a half-hour event. Near the
		// bottom of the day the start shifts back to the last slot that
		// leaves room, with the end clamped like every drag path.
		start := grid.Clamp(grid.Snap(m.mapper.ToMinutes(row)))
		end := start + 30
		if end > grid.MinutesPerDay-1 {
			start = grid.MinutesPerDay - 2*grid.SlotMinutes
			end = grid.MinutesPerDay - 1
		}
		ev := trip.NewEvent("New Event",
			grid.WithMinutesOfDay(m.days[day], start),
			grid.WithMinutesOfDay(m.days[day], end),
			trip.CategoryOther)
		if _, err := m.store.Create(ev); err != nil {
			m.showMessage(fmt.Sprintf("Error: %v", err))
		} else {
			m.reloadEvents()
		}
		return m, nil
	}

	m.drag.BeginCreate(m.mapper, m.days[day], row)
	return m, nil
}

// dragRow converts a screen line to a grid row for an in-progress drag,
// clamping to the visible grid so dragging past the edges keeps working.
func (m *Model) dragRow(y int) int {
	gy := y - headerRows
	if gy < 0 {
		gy = 0
	}
	if gy >= m.gridRows() {
		gy = m.gridRows() - 1
	}
	row := m.topRow + gy
	if maxRow := 24*m.rowsPerHour - 1; row > maxRow {
		row = maxRow
	}
	return row
}
