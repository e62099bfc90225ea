// Package config loads the trip definition and UI settings from a YAML
// file, falling back to a built-in demo trip when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"itin/internal/trip"
)

type Config struct {
	// Trip settings
	TripID       string             `yaml:"trip_id"`
	Name         string             `yaml:"name"`
	Destination  string             `yaml:"destination"`
	StartDate    time.Time          `yaml:"start_date"`
	EndDate      time.Time          `yaml:"end_date"`
	Participants []trip.Participant `yaml:"participants"`

	// CurrentUser is the participant id local edits are attributed to.
	CurrentUser string `yaml:"current_user"`

	// Display settings
	RowsPerHour int `yaml:"rows_per_hour"`

	// Behavior settings
	ConfirmDelete  bool `yaml:"confirm_delete"`
	RefreshSeconds int  `yaml:"refresh_seconds"`

	// DataDir overrides the event database location. Empty uses the XDG
	// data directory.
	DataDir string `yaml:"data_dir"`

	// Path is the file the config was loaded from, empty for the
	// built-in default.
	Path string `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		TripID:      "bali-2024",
		Name:        "Bali Adventure",
		Destination: "Bali, Indonesia",
		StartDate:   time.Date(2024, 8, 15, 0, 0, 0, 0, time.Local),
		EndDate:     time.Date(2024, 8, 21, 0, 0, 0, 0, time.Local),
		Participants: []trip.Participant{
			{ID: "user1", Name: "Alex Chen", Role: trip.RoleOrganizer, Status: trip.StatusAccepted},
			{ID: "user2", Name: "Sarah Miller", Role: trip.RoleMember, Status: trip.StatusAccepted},
		},
		CurrentUser:    "user1",
		RowsPerHour:    4,
		ConfirmDelete:  true,
		RefreshSeconds: 30,
	}
}

// LoadConfig reads the first trip file found in the usual locations. With
// no file present the demo trip is returned.
func LoadConfig() (*Config, error) {
	configPaths := []string{
		os.Getenv("ITIN_TRIP"),
		filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "itin", "trip.yaml"),
		filepath.Join(os.Getenv("HOME"), ".config", "itin", "trip.yaml"),
		"trip.yaml",
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	return DefaultConfig(), nil
}

// LoadFile reads one trip file, filling unset fields from the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	config.Participants = nil
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error loading trip from %s: %w", path, err)
	}
	if len(config.Participants) == 0 {
		config.Participants = DefaultConfig().Participants
	}
	config.Path = path

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid trip file %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.TripID == "" {
		return fmt.Errorf("trip_id is required")
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("end_date %s before start_date %s",
			c.EndDate.Format("2006-01-02"), c.StartDate.Format("2006-01-02"))
	}
	if c.RowsPerHour <= 0 {
		c.RowsPerHour = 4
	}
	return nil
}

// Days returns the trip's dates, first through last inclusive.
func (c *Config) Days() []time.Time {
	return trip.DateRange(c.StartDate, c.EndDate)
}

// Roster builds the participant roster.
func (c *Config) Roster() *trip.Roster {
	return trip.NewRoster(c.Participants)
}

// RefreshRate returns the UI tick interval.
func (c *Config) RefreshRate() time.Duration {
	if c.RefreshSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.RefreshSeconds) * time.Second
}

// DatabasePath returns where the event database lives.
func (c *Config) DatabasePath() string {
	return c.DataDir
}
