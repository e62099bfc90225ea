package cmd

import (
	"fmt"
	"os"

	"itin/internal/config"
	"itin/internal/store"
	"itin/internal/trip"
	"itin/internal/ui"

	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	tripFile string
	dataDir  string
	inMemory bool
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "itin",
	Short: "A collaborative trip planner for the terminal",
	Long: `Itin is a terminal trip planner built around a drag-and-drop week
schedule, with shared checklists, an idea board, and group chat.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&tripFile, "trip", "t", "", "Trip file to use (default: search the usual locations)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Event database directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVar(&inMemory, "in-memory", false, "Keep events in memory only, discard on exit")
}

func initConfig() {
	var err error
	if tripFile != "" {
		cfg, err = config.LoadFile(tripFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load trip: %v\n", err)
		os.Exit(1)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
}

func openStore() (*store.DB, *store.EventStore, error) {
	path := cfg.DatabasePath()
	if path == "" && !inMemory {
		path = store.DefaultPath()
	}

	db, err := store.Open(store.Options{Path: path, InMemory: inMemory})
	if err != nil {
		return nil, nil, fmt.Errorf("error opening database: %w", err)
	}

	events, err := store.NewEventStore(db, cfg.TripID, cfg.StartDate)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("error loading events: %w", err)
	}
	return db, events, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	db, events, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	model := ui.NewModel(cfg, events)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Reload the trip when its file changes on disk
	if cfg.Path != "" {
		watcher, err := trip.NewWatcher(cfg.Path, func(path string) {
			reloaded, err := config.LoadFile(path)
			if err != nil {
				return
			}
			p.Send(ui.TripReloaded{Config: reloaded})
		})
		if err == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
