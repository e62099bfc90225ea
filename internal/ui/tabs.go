package ui

import (
	"fmt"
	"strings"
	"time"

	"itin/internal/trip"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

func (m *Model) viewChat() string {
	var lines []string
	lines = append(lines, m.renderTitle())
	lines = append(lines, m.renderTabs())
	lines = append(lines, "")

	wrapWidth := m.width - 4
	if wrapWidth < 20 {
		wrapWidth = 20
	}

	now := time.Now()
	groups := trip.GroupMessages(m.chat.Messages())
	for _, group := range groups {
		sender := m.roster.Lookup(group.SenderID)
		head := fmt.Sprintf("%s  %s", sender.Name, messageTime(group.SentAt, now))
		lines = append(lines, m.styles.Header.Render(head))
		for _, msg := range group.Messages {
			wrapped := wordwrap.String(msg.Content, wrapWidth)
			for _, l := range strings.Split(wrapped, "\n") {
				lines = append(lines, "  "+m.styles.Normal.Render(l))
			}
		}
		lines = append(lines, "")
	}

	// Keep the newest messages and the input on screen. The floor keeps
	// the header slice plus at least one tail line at tiny heights.
	body := lines
	maxBody := m.height - 2
	if maxBody < 4 {
		maxBody = 4
	}
	if len(body) > maxBody {
		head := body[:3]
		tail := body[len(body)-(maxBody-3):]
		body = append(append([]string{}, head...), tail...)
	}

	input := m.styles.Header.Render("> ") + m.chatInput.View()
	return strings.Join(body, "\n") + "\n" + input
}

// messageTime shows just the clock for messages from the last day and
// the date otherwise.
func messageTime(t, now time.Time) string {
	if now.Sub(t) < 24*time.Hour {
		return t.Format("3:04 PM")
	}
	return t.Format("Jan 2 3:04 PM")
}

func (m *Model) handleChatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.mode = ViewWeek
		m.chatInput.Blur()
		return m, nil

	case "enter":
		content := strings.TrimSpace(m.chatInput.Value())
		if content != "" {
			m.chat.Append(m.config.CurrentUser, content, time.Now())
			m.chatInput.SetValue("")
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m *Model) viewChecklist() string {
	var lines []string
	lines = append(lines, m.renderTitle())
	lines = append(lines, m.renderTabs())

	now := time.Now()
	summary := fmt.Sprintf("%d/%d done", m.lists.CompletedItems(), m.lists.TotalItems())
	if overdue := m.lists.OverdueItems(now); overdue > 0 {
		summary += fmt.Sprintf("  %d overdue", overdue)
	}
	lines = append(lines, m.styles.Gutter.Render(summary))
	lines = append(lines, "")

	index := 0
	for _, list := range m.lists {
		lines = append(lines, m.styles.Header.Render(fmt.Sprintf("%s (%d/%d)", list.Title, list.Completed(), len(list.Items))))
		for _, item := range list.Items {
			mark := "[ ]"
			if item.Completed {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s", mark, item.Text)
			if item.AssignedTo != "" {
				line += m.styles.Gutter.Render("  @" + m.roster.Lookup(item.AssignedTo).Name)
			}
			if item.Overdue(now) {
				line += m.styles.Message.Render(" overdue")
			}
			if index == m.listIndex {
				line = m.styles.Selected.Render("> ") + line
			} else {
				line = "  " + line
			}
			lines = append(lines, line)
			index++
		}
		lines = append(lines, "")
	}

	lines = append(lines, m.styles.Help.Render("j/k:move space:toggle 1:schedule q:quit"))
	return strings.Join(lines, "\n")
}

func (m *Model) handleChecklistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := m.lists.TotalItems()

	switch msg.String() {
	case "j", "down":
		if m.listIndex < total-1 {
			m.listIndex++
		}

	case "k", "up":
		if m.listIndex > 0 {
			m.listIndex--
		}

	case " ", "x", "enter":
		if listID, itemID, ok := m.checklistItemAt(m.listIndex); ok {
			m.lists.Toggle(listID, itemID, m.config.CurrentUser, time.Now())
		}
	}

	return m, nil
}

// checklistItemAt resolves a flat selection index to checklist and item
// ids.
func (m *Model) checklistItemAt(index int) (string, string, bool) {
	i := 0
	for _, list := range m.lists {
		for _, item := range list.Items {
			if i == index {
				return list.ID, item.ID, true
			}
			i++
		}
	}
	return "", "", false
}

func (m *Model) viewIdeas() string {
	var lines []string
	lines = append(lines, m.renderTitle())
	lines = append(lines, m.renderTabs())
	lines = append(lines, "")

	colWidth := m.width/len(trip.IdeaStatuses) - 2
	if colWidth < 16 {
		colWidth = 16
	}

	headers := map[trip.IdeaStatus]string{
		trip.IdeaProposed: "Ideas",
		trip.IdeaPlanned:  "Planned",
		trip.IdeaBooked:   "Booked",
	}

	var columns []string
	all := m.ideas.All()
	for _, status := range trip.IdeaStatuses {
		var col []string
		col = append(col, m.styles.DayHeader.Render(fit(headers[status], colWidth)))
		for i, idea := range all {
			if idea.Status != status {
				continue
			}
			title := fit(" "+idea.Title, colWidth)
			if i == m.ideaIndex {
				col = append(col, m.styles.Selected.Render(title))
			} else {
				col = append(col, m.styles.Category[trip.CategoryActivity].Render(title))
			}
			if idea.Description != "" {
				col = append(col, m.styles.Gutter.Render(fit(" "+idea.Description, colWidth)))
			}
			col = append(col, m.styles.Gutter.Render(fit(" by "+m.roster.Lookup(idea.CreatedBy).Name, colWidth)))
			col = append(col, "")
		}
		columns = append(columns, strings.Join(col, "\n"))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	help := m.styles.Help.Render("j/k:move h/l:change column 1:schedule q:quit")
	return strings.Join(lines, "\n") + board + "\n" + help
}

func (m *Model) handleIdeasKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	all := m.ideas.All()
	if len(all) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.ideaIndex < len(all)-1 {
			m.ideaIndex++
		}

	case "k", "up":
		if m.ideaIndex > 0 {
			m.ideaIndex--
		}

	case "l", "right":
		idea := all[m.ideaIndex]
		if next, ok := adjacentStatus(idea.Status, 1); ok {
			m.ideas.Move(idea.ID, next)
		}

	case "h", "left":
		idea := all[m.ideaIndex]
		if next, ok := adjacentStatus(idea.Status, -1); ok {
			m.ideas.Move(idea.ID, next)
		}
	}

	return m, nil
}

func adjacentStatus(s trip.IdeaStatus, step int) (trip.IdeaStatus, bool) {
	for i, status := range trip.IdeaStatuses {
		if status == s {
			j := i + step
			if j < 0 || j >= len(trip.IdeaStatuses) {
				return s, false
			}
			return trip.IdeaStatuses[j], true
		}
	}
	return s, false
}

func (m *Model) viewParticipants() string {
	var lines []string
	lines = append(lines, m.renderTitle())
	lines = append(lines, m.renderTabs())
	lines = append(lines, "")

	accepted := m.roster.CountByStatus(trip.StatusAccepted)
	lines = append(lines, m.styles.Gutter.Render(fmt.Sprintf("%d travelers, %d accepted", m.roster.Len(), accepted)))
	lines = append(lines, "")

	for _, p := range m.roster.All() {
		name := m.styles.Normal.Render(p.Name)
		if p.ID == m.config.CurrentUser {
			name += m.styles.Gutter.Render(" (you)")
		}
		role := m.styles.Gutter.Render(p.Role)
		status := m.styles.Help.Render(p.Status)
		if p.Status == trip.StatusAccepted {
			status = m.styles.Category[trip.CategoryActivity].Render(" " + p.Status + " ")
		}
		lines = append(lines, fmt.Sprintf("  %s  %s  %s", name, role, status))
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.Help.Render("1:schedule q:quit"))
	return strings.Join(lines, "\n")
}
