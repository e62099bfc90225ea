// Package ui implements the terminal interface: the week schedule grid
// with mouse-driven event editing, the event editor, and the
// collaboration tabs.
package ui

import (
	"fmt"
	"time"

	"itin/internal/config"
	"itin/internal/grid"
	"itin/internal/parser"
	"itin/internal/store"
	"itin/internal/trip"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ViewMode int

const (
	ViewWeek ViewMode = iota
	ViewChat
	ViewChecklist
	ViewIdeas
	ViewParticipants
	ViewEditor
	ViewQuickAdd
	ViewHelp
)

type Model struct {
	// Core components
	config *config.Config
	store  *store.EventStore
	parser *parser.Parser

	// Trip state
	days   []time.Time
	roster *trip.Roster
	chat   *trip.ChatLog
	lists  trip.Checklists
	ideas  *trip.Board

	// Week view state
	events      []trip.Event
	columns     []grid.DayColumn
	mapper      grid.Mapper
	rowsPerHour int
	selectedDay int
	selectedRow int // grid row, one slot per row
	topRow      int
	drag        grid.Drag

	// Double-click tracking
	lastClickTime time.Time
	lastClickX    int
	lastClickY    int

	// UI state
	mode         ViewMode
	width        int
	height       int
	message      string
	confirmingID string

	// Editor state
	editor editorState

	// Quick-add state
	quickAdd textinput.Model

	// Chat state
	chatInput textinput.Model

	// Checklist / ideas selection
	listIndex int
	ideaIndex int

	// Styles
	styles Styles
}

type Styles struct {
	Normal    lipgloss.Style
	Selected  lipgloss.Style
	Tentative lipgloss.Style
	Header    lipgloss.Style
	DayHeader lipgloss.Style
	Gutter    lipgloss.Style
	AllDay    lipgloss.Style
	Help      lipgloss.Style
	Message   lipgloss.Style
	Border    lipgloss.Style
	Category  map[trip.Category]lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		Tentative: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("75")).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		DayHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Gutter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		AllDay: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("141")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
		Category: map[trip.Category]lipgloss.Style{
			trip.CategoryActivity:      lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("40")),
			trip.CategoryTransport:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("39")),
			trip.CategoryAccommodation: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("141")),
			trip.CategoryMeal:          lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("214")),
			trip.CategoryOther:         lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("250")),
		},
	}
}

func NewModel(cfg *config.Config, eventStore *store.EventStore) *Model {
	p := parser.New()
	p.SetNow(cfg.StartDate)

	quickAdd := textinput.New()
	quickAdd.Placeholder = "tomorrow 2pm-4pm Snorkeling at Blue Lagoon"
	quickAdd.CharLimit = 120

	chatInput := textinput.New()
	chatInput.Placeholder = "Type a message..."
	chatInput.CharLimit = 500

	m := &Model{
		config:      cfg,
		store:       eventStore,
		parser:      p,
		days:        cfg.Days(),
		roster:      cfg.Roster(),
		chat:        trip.NewChatLog(trip.SeedMessages(cfg.StartDate)),
		lists:       trip.SeedChecklists(cfg.StartDate),
		ideas:       trip.NewBoard(trip.SeedIdeas(cfg.StartDate)),
		mapper:      grid.NewMapper(cfg.RowsPerHour),
		rowsPerHour: cfg.RowsPerHour,
		mode:        ViewWeek,
		selectedRow: 9 * cfg.RowsPerHour, // start the day at 09:00
		topRow:      7 * cfg.RowsPerHour,
		quickAdd:    quickAdd,
		chatInput:   chatInput,
		styles:      DefaultStyles(),
	}

	m.reloadEvents()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.tickCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tickMsg:
		m.reloadEvents()
		m.message = ""
		return m, m.tickCmd()

	case TripReloaded:
		m.config = msg.Config
		m.days = msg.Config.Days()
		m.roster = msg.Config.Roster()
		m.clampSelection()
		m.showMessage("Trip file reloaded")
		return m, nil

	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ViewWeek, ViewQuickAdd:
		return m.viewWeek()
	case ViewChat:
		return m.viewChat()
	case ViewChecklist:
		return m.viewChecklist()
	case ViewIdeas:
		return m.viewIdeas()
	case ViewParticipants:
		return m.viewParticipants()
	case ViewEditor:
		return m.viewEditor()
	case ViewHelp:
		return m.viewHelp()
	default:
		return m.viewWeek()
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text-entry modes get every key
	switch m.mode {
	case ViewEditor:
		return m.handleEditorKeys(msg)
	case ViewQuickAdd:
		return m.handleQuickAddKeys(msg)
	case ViewChat:
		return m.handleChatKeys(msg)
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "?":
		if m.mode == ViewHelp {
			m.mode = ViewWeek
		} else {
			m.mode = ViewHelp
		}
		return m, nil

	case "1":
		m.mode = ViewWeek
		return m, nil
	case "2":
		m.mode = ViewChat
		m.chatInput.Focus()
		return m, nil
	case "3":
		m.mode = ViewChecklist
		return m, nil
	case "4":
		m.mode = ViewIdeas
		return m, nil
	case "5":
		m.mode = ViewParticipants
		return m, nil

	case "r":
		m.reloadEvents()
		m.showMessage("Refreshed")
		return m, nil
	}

	switch m.mode {
	case ViewWeek:
		return m.handleWeekKeys(msg)
	case ViewChecklist:
		return m.handleChecklistKeys(msg)
	case ViewIdeas:
		return m.handleIdeasKeys(msg)
	case ViewHelp:
		m.mode = ViewWeek
	}

	return m, nil
}

func (m *Model) handleWeekKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Pending delete confirmation
	if m.confirmingID != "" {
		switch msg.String() {
		case "y", "Y", "d":
			if err := m.store.Delete(m.confirmingID); err != nil {
				m.showMessage(fmt.Sprintf("Error: %v", err))
			} else {
				m.reloadEvents()
				m.showMessage("Event deleted")
			}
		default:
			m.showMessage("Delete cancelled")
		}
		m.confirmingID = ""
		return m, nil
	}

	maxRow := 24*m.rowsPerHour - 1
	visibleRows := m.gridRows()

	switch msg.String() {
	case "j", "down":
		if m.selectedRow < maxRow {
			m.selectedRow++
			if m.selectedRow >= m.topRow+visibleRows {
				m.topRow++
			}
		}

	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
			if m.selectedRow < m.topRow {
				m.topRow--
			}
		}

	case "l", "right":
		if m.selectedDay < len(m.days)-1 {
			m.selectedDay++
		}

	case "h", "left":
		if m.selectedDay > 0 {
			m.selectedDay--
		}

	case "g":
		m.selectedRow = 0
		m.topRow = 0

	case "G":
		m.selectedRow = maxRow
		m.topRow = maxRow - visibleRows + 1
		if m.topRow < 0 {
			m.topRow = 0
		}

	case "z":
		m.cycleZoom()

	case "n":
		m.mode = ViewQuickAdd
		m.quickAdd.SetValue("")
		m.quickAdd.Focus()
		return m, textinput.Blink

	case "e", "enter":
		if ev, ok := m.selectedEvent(); ok {
			m.openEditor(ev)
			return m, textinput.Blink
		}

	case "d":
		if ev, ok := m.selectedEvent(); ok {
			if m.config.ConfirmDelete {
				m.confirmingID = ev.ID
				m.showMessage(fmt.Sprintf("Delete %q? (y/n)", ev.Title))
			} else {
				m.store.Delete(ev.ID)
				m.reloadEvents()
				m.showMessage("Event deleted")
			}
		}

	case "a":
		if ev, ok := m.selectedEvent(); ok {
			allDay := !ev.AllDay
			if _, err := m.store.Update(ev.ID, trip.Patch{AllDay: &allDay}); err != nil {
				m.showMessage(fmt.Sprintf("Error: %v", err))
			} else {
				m.reloadEvents()
			}
		}

	case "c":
		if ev, ok := m.selectedEvent(); ok {
			next := nextCategory(ev.Category)
			if _, err := m.store.Update(ev.ID, trip.Patch{Category: &next}); err != nil {
				m.showMessage(fmt.Sprintf("Error: %v", err))
			} else {
				m.reloadEvents()
				m.showMessage(string(next))
			}
		}

	case "o":
		// Jump to the trip's first morning
		m.selectedDay = 0
		m.selectedRow = 9 * m.rowsPerHour
		m.topRow = 7 * m.rowsPerHour
	}

	return m, nil
}

// cycleZoom switches the grid density, keeping the selected time stable.
func (m *Model) cycleZoom() {
	minutes := m.mapper.ToMinutes(m.selectedRow)
	topMinutes := m.mapper.ToMinutes(m.topRow)

	switch m.rowsPerHour {
	case 4:
		m.rowsPerHour = 2
	case 2:
		m.rowsPerHour = 1
	default:
		m.rowsPerHour = 4
	}

	m.mapper = grid.NewMapper(m.rowsPerHour)
	m.selectedRow = m.mapper.ToPixels(minutes)
	m.topRow = m.mapper.ToPixels(topMinutes)
}

func (m *Model) reloadEvents() {
	m.events = m.store.List()
	m.columns = grid.BuildColumns(m.days, m.events)
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if len(m.days) == 0 {
		m.selectedDay = 0
		return
	}
	if m.selectedDay >= len(m.days) {
		m.selectedDay = len(m.days) - 1
	}
	if maxRow := 24*m.rowsPerHour - 1; m.selectedRow > maxRow {
		m.selectedRow = maxRow
	}
	if m.topRow < 0 {
		m.topRow = 0
	}
}

// selectedEvent returns the timed event under the keyboard cursor.
func (m *Model) selectedEvent() (trip.Event, bool) {
	if m.selectedDay >= len(m.columns) {
		return trip.Event{}, false
	}
	col := m.columns[m.selectedDay]
	minute := m.mapper.ToMinutes(m.selectedRow)
	lanes, _ := grid.AssignLanes(col.Timed)
	hits := grid.EventsAt(col.Timed, lanes, minute)
	if len(hits) == 0 {
		return trip.Event{}, false
	}
	return hits[0], true
}

func nextCategory(c trip.Category) trip.Category {
	for i, cat := range trip.Categories {
		if cat == c {
			return trip.Categories[(i+1)%len(trip.Categories)]
		}
	}
	return trip.Categories[0]
}

func (m *Model) showMessage(msg string) {
	m.message = msg
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.config.RefreshRate(), func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Message types
type tickMsg struct{}

// TripReloaded is sent from outside the program when the trip file
// changes on disk.
type TripReloaded struct {
	Config *config.Config
}
