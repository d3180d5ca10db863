package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity     = errors.New("total quantity and quantity per trip must be greater than zero")
	ErrInvalidVehicleCount = errors.New("vehicle count must be between 1 and 1000")
	ErrInvalidDuration     = errors.New("start time and durations must be between 0 and one year of minutes")
	ErrTooManyTrips        = errors.New("schedule exceeds the maximum number of trips")
)

// Upper bounds keep every timestamp of a valid schedule far below the int
// range: MaxMinutes + MaxTrips*6*MaxMinutes fits in 64 bits.
const (
	MaxMinutes  = 525_600
	MaxTrips    = 100_000
	MaxVehicles = 1_000
)

// Input for a single scheduling run. All values are whole minutes or
// whole material units; the config is never mutated by the scheduler.
type ScheduleConfig struct {
	StartTime       int
	TotalQuantity   int
	LoadDuration    int
	TravelDuration  int
	UnloadDuration  int
	BufferDuration  int
	QuantityPerTrip int
	VehicleCount    int
}

// Validate reports the first precondition the config violates.
func (c ScheduleConfig) Validate() error {
	if c.TotalQuantity <= 0 || c.QuantityPerTrip <= 0 {
		return fmt.Errorf(
			"validate config: total_quantity=%d quantity_per_trip=%d: %w",
			c.TotalQuantity, c.QuantityPerTrip, ErrInvalidQuantity,
		)
	}

	if c.VehicleCount < 1 || c.VehicleCount > MaxVehicles {
		return fmt.Errorf("validate config: vehicle_count=%d: %w", c.VehicleCount, ErrInvalidVehicleCount)
	}

	if n := c.TripCount(); n > MaxTrips {
		return fmt.Errorf("validate config: %d trips (max %d): %w", n, MaxTrips, ErrTooManyTrips)
	}

	durations := []struct {
		name  string
		value int
	}{
		{"start_time", c.StartTime},
		{"load_duration", c.LoadDuration},
		{"travel_duration", c.TravelDuration},
		{"unload_duration", c.UnloadDuration},
		{"buffer_duration", c.BufferDuration},
	}
	for _, d := range durations {
		if d.value < 0 || d.value > MaxMinutes {
			return fmt.Errorf("validate config: %s=%d: %w", d.name, d.value, ErrInvalidDuration)
		}
	}

	return nil
}

// TripCount is the number of whole trips the config produces.
// A remainder smaller than one trip load is not planned.
func (c ScheduleConfig) TripCount() int {
	if c.QuantityPerTrip <= 0 || c.TotalQuantity <= 0 {
		return 0
	}
	return c.TotalQuantity / c.QuantityPerTrip
}

// CycleDuration is the fixed length of one trip from work start to plant reach.
func (c ScheduleConfig) CycleDuration() int {
	return c.LoadDuration + 2*c.TravelDuration + c.BufferDuration + c.UnloadDuration
}
