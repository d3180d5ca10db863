package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"transit-mixer-scheduler/internal/domain"
)

// LoadEnv loads a .env file when present. It reports whether one was found.
func LoadEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Defaults holds the values used for any schedule input a caller leaves out.
type Defaults struct {
	Schedule ScheduleDefaults `toml:"schedule"`
}

// ScheduleDefaults mirrors domain.ScheduleConfig. StartTime accepts "HH:MM"
// or a minute count.
type ScheduleDefaults struct {
	StartTime       string `toml:"start_time"`
	TotalQuantity   int    `toml:"total_quantity"`
	LoadDuration    int    `toml:"load_duration"`
	TravelDuration  int    `toml:"travel_duration"`
	UnloadDuration  int    `toml:"unload_duration"`
	BufferDuration  int    `toml:"buffer_duration"`
	QuantityPerTrip int    `toml:"quantity_per_trip"`
	VehicleCount    int    `toml:"vehicle_count"`
}

// Default returns the built-in defaults: a 05:00 start, one mixer, one unit per trip.
func Default() *Defaults {
	return &Defaults{
		Schedule: ScheduleDefaults{
			StartTime:       "05:00",
			QuantityPerTrip: 1,
			VehicleCount:    1,
		},
	}
}

// LoadDefaults reads a TOML defaults file, falling back to Default when
// path is empty or the file does not exist.
func LoadDefaults(path string) (*Defaults, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load defaults: read %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("load defaults: parse %q: %w", path, err)
	}

	if _, err := cfg.ScheduleConfig(); err != nil {
		return nil, fmt.Errorf("load defaults: %q: %w", path, err)
	}

	return cfg, nil
}

// ScheduleConfig converts the defaults into a domain config. The result is
// not validated as a whole: a zero TotalQuantity is a legal default that
// callers are expected to override.
func (d *Defaults) ScheduleConfig() (domain.ScheduleConfig, error) {
	s := d.Schedule

	start := 0
	if strings.TrimSpace(s.StartTime) != "" {
		m, err := domain.ParseClock(s.StartTime)
		if err != nil {
			return domain.ScheduleConfig{}, fmt.Errorf("defaults start_time: %w", err)
		}
		start = m
	}

	return domain.ScheduleConfig{
		StartTime:       start,
		TotalQuantity:   s.TotalQuantity,
		LoadDuration:    s.LoadDuration,
		TravelDuration:  s.TravelDuration,
		UnloadDuration:  s.UnloadDuration,
		BufferDuration:  s.BufferDuration,
		QuantityPerTrip: s.QuantityPerTrip,
		VehicleCount:    s.VehicleCount,
	}, nil
}
