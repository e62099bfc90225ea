package ui

import (
	"strings"
)

func (m *Model) viewHelp() string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Schedule", [][2]string{
			{"j/k", "previous/next slot"},
			{"h/l", "previous/next day"},
			{"g/G", "start/end of day"},
			{"z", "cycle zoom (15/30/60 min rows)"},
			{"o", "jump to first morning"},
			{"n", "quick-add event"},
			{"e/enter", "edit selected event"},
			{"d", "delete selected event"},
			{"a", "toggle all-day"},
			{"c", "cycle category"},
			{"r", "reload events"},
		}},
		{"Mouse", [][2]string{
			{"drag empty space", "draw a new event"},
			{"drag event body", "move event"},
			{"drag event edge", "resize event"},
			{"double-click empty", "new 30-minute event"},
			{"double-click event", "open editor"},
			{"double-click all-day lane", "new all-day event"},
			{"wheel", "scroll"},
		}},
		{"Tabs", [][2]string{
			{"1", "schedule"},
			{"2", "chat"},
			{"3", "checklist"},
			{"4", "idea board"},
			{"5", "participants"},
		}},
		{"General", [][2]string{
			{"?", "toggle help"},
			{"q", "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Help"))
	b.WriteString("\n\n")
	for _, section := range sections {
		b.WriteString(m.styles.DayHeader.Render(section.title))
		b.WriteString("\n")
		for _, k := range section.keys {
			b.WriteString("  ")
			b.WriteString(m.styles.Selected.Render(" " + k[0] + " "))
			b.WriteString("  ")
			b.WriteString(m.styles.Normal.Render(k[1]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("press any key to return"))
	return b.String()
}
