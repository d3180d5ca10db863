package domain

import (
	"errors"
	"testing"
)

func TestFleetRoundRobin(t *testing.T) {
	fleet, err := NewFleet(3, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 2, 3, 1, 2, 3, 1}
	for i, w := range want {
		if got := fleet.VehicleFor(i); got != w {
			t.Errorf("VehicleFor(%d) = %d, want %d", i, got, w)
		}
	}

	for v := 1; v <= fleet.Size(); v++ {
		if got := fleet.NextAvailable(v); got != 300 {
			t.Errorf("vehicle %d next available = %d, want 300", v, got)
		}
	}

	fleet.Release(2, 480)
	if got := fleet.NextAvailable(2); got != 480 {
		t.Fatalf("vehicle 2 next available = %d, want 480", got)
	}
	if got := fleet.NextAvailable(1); got != 300 {
		t.Fatalf("vehicle 1 changed to %d", got)
	}
}

func TestNewFleetRejectsEmptyFleet(t *testing.T) {
	if _, err := NewFleet(0, 0); !errors.Is(err, ErrInvalidVehicleCount) {
		t.Fatalf("err = %v, want ErrInvalidVehicleCount", err)
	}
	if _, err := NewFleet(MaxVehicles+1, 0); !errors.Is(err, ErrInvalidVehicleCount) {
		t.Fatalf("err = %v, want ErrInvalidVehicleCount", err)
	}
}

func TestScheduleConfigValidate(t *testing.T) {
	cfg := ScheduleConfig{
		StartTime:       0,
		TotalQuantity:   1,
		QuantityPerTrip: 1,
		VehicleCount:    1,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("minimal config rejected: %v", err)
	}

	cfg.UnloadDuration = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("err = %v, want ErrInvalidDuration", err)
	}
}

func TestScheduleConfigTripCount(t *testing.T) {
	cfg := ScheduleConfig{TotalQuantity: 47, QuantityPerTrip: 6, VehicleCount: 1}
	if got := cfg.TripCount(); got != 7 {
		t.Fatalf("TripCount = %d, want 7", got)
	}

	cfg.QuantityPerTrip = 0
	if got := cfg.TripCount(); got != 0 {
		t.Fatalf("TripCount = %d, want 0", got)
	}
}
