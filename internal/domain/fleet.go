package domain

import "fmt"

// Fleet tracks when each vehicle may begin its next work cycle.
// A Fleet belongs to exactly one scheduling run and is never shared.
type Fleet struct {
	nextAvailable []int
}

// NewFleet returns a fleet with every vehicle available at startTime.
func NewFleet(vehicleCount int, startTime int) (*Fleet, error) {
	if vehicleCount < 1 || vehicleCount > MaxVehicles {
		return nil, fmt.Errorf("new fleet: vehicle_count=%d: %w", vehicleCount, ErrInvalidVehicleCount)
	}

	next := make([]int, vehicleCount)
	for i := range next {
		next[i] = startTime
	}

	return &Fleet{nextAvailable: next}, nil
}

// Size returns the number of vehicles in the fleet.
func (f *Fleet) Size() int { return len(f.nextAvailable) }

// VehicleFor returns the 1-based vehicle id assigned to the 0-based trip index.
func (f *Fleet) VehicleFor(tripIndex int) int {
	return tripIndex%len(f.nextAvailable) + 1
}

// NextAvailable returns the earliest start time of the given 1-based vehicle.
func (f *Fleet) NextAvailable(vehicleID int) int {
	return f.nextAvailable[vehicleID-1]
}

// Release marks the vehicle as available again at the given time.
func (f *Fleet) Release(vehicleID int, at int) {
	f.nextAvailable[vehicleID-1] = at
}
