package cmd

import (
	"fmt"
	"sort"
	"time"

	"itin/internal/grid"
	"itin/internal/parser"
	"itin/internal/trip"

	"github.com/spf13/cobra"
)

var listDate string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the trip's events and exit",
	Long:  `List scheduled events in a simple text format and exit.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "Only show one day (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}

	db, events, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	days := cfg.Days()
	if listDate != "" {
		day, err := time.ParseInLocation("2006-01-02", listDate, cfg.StartDate.Location())
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", listDate, err)
		}
		days = []time.Time{day}
	}

	fmt.Printf("%s - %s\n", cfg.Name, cfg.Destination)

	columns := grid.BuildColumns(days, events.List())
	for _, col := range columns {
		day := append(append([]trip.Event{}, col.AllDay...), col.Timed...)
		if len(day) == 0 {
			continue
		}
		sort.SliceStable(day, func(a, b int) bool {
			return day[a].StartTime.Before(day[b].StartTime)
		})

		fmt.Printf("\n%s\n", col.Date.Format("Mon Jan 2"))
		for _, ev := range day {
			when := "all day           "
			if !ev.AllDay {
				when = fmt.Sprintf("%8s - %8s",
					parser.FormatClock(grid.MinutesOfDay(ev.StartTime)),
					parser.FormatClock(grid.MinutesOfDay(ev.EndTime)))
			}
			line := fmt.Sprintf("  %s  %-13s %s", when, ev.Category, ev.Title)
			if ev.Location != "" {
				line += " @ " + ev.Location
			}
			fmt.Println(line)
		}
	}

	return nil
}
