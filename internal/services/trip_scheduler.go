package services

import (
	"fmt"

	"transit-mixer-scheduler/internal/domain"
)

// ScheduleTrips builds the dispatch timetable for one configuration.
//
// Trips are assigned to vehicles round-robin. A trip starts when its vehicle
// is back at the plant; every vehicle other than vehicle 1 additionally waits
// until the previous trip (in global order) has reached the plant again.
// The function is pure: each call owns a fresh Fleet and the result is fully
// built before it is returned.
func ScheduleTrips(cfg domain.ScheduleConfig) ([]domain.Trip, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("schedule trips: %w", err)
	}

	fleet, err := domain.NewFleet(cfg.VehicleCount, cfg.StartTime)
	if err != nil {
		return nil, fmt.Errorf("schedule trips: %w", err)
	}

	tripCount := cfg.TripCount()
	trips := make([]domain.Trip, 0, tripCount)
	cumulative := 0

	for i := 0; i < tripCount; i++ {
		vehicleID := fleet.VehicleFor(i)

		workStart := fleet.NextAvailable(vehicleID)
		// Vehicle 1 is never held back by the previous trip's plant return.
		if vehicleID != 1 {
			workStart = max(workStart, trips[i-1].PlantReachTime)
		}

		plantStart := workStart + cfg.LoadDuration
		siteReach := plantStart + cfg.TravelDuration
		pumpStart := siteReach + cfg.BufferDuration
		siteLeft := pumpStart + cfg.UnloadDuration
		plantReach := siteLeft + cfg.TravelDuration

		fleet.Release(vehicleID, plantReach)
		cumulative += cfg.QuantityPerTrip

		trips = append(trips, domain.Trip{
			TripNumber:         i + 1,
			VehicleID:          vehicleID,
			WorkStartTime:      workStart,
			PlantStartTime:     plantStart,
			SiteReachTime:      siteReach,
			PumpStartTime:      pumpStart,
			SiteLeftTime:       siteLeft,
			PlantReachTime:     plantReach,
			BufferDuration:     cfg.BufferDuration,
			RoundTripDuration:  plantReach - workStart,
			QuantityThisTrip:   cfg.QuantityPerTrip,
			CumulativeQuantity: cumulative,
		})
	}

	return trips, nil
}

// SummarizeSchedule derives aggregate figures from a config and the trips
// ScheduleTrips produced for it.
func SummarizeSchedule(cfg domain.ScheduleConfig, trips []domain.Trip) domain.ScheduleSummary {
	summary := domain.ScheduleSummary{
		TripCount:         len(trips),
		FirstDispatch:     cfg.StartTime,
		LastReturn:        cfg.StartTime,
		RoundTripDuration: cfg.CycleDuration(),
	}
	if cfg.VehicleCount > 0 {
		summary.TripsPerVehicle = make([]int, cfg.VehicleCount)
	}

	for i, t := range trips {
		if i == 0 || t.WorkStartTime < summary.FirstDispatch {
			summary.FirstDispatch = t.WorkStartTime
		}
		if t.PlantReachTime > summary.LastReturn {
			summary.LastReturn = t.PlantReachTime
		}
		if t.VehicleID >= 1 && t.VehicleID <= len(summary.TripsPerVehicle) {
			summary.TripsPerVehicle[t.VehicleID-1]++
		}
	}

	if n := len(trips); n > 0 {
		summary.ScheduledQuantity = trips[n-1].CumulativeQuantity
	}
	if cfg.TotalQuantity > summary.ScheduledQuantity {
		summary.UnscheduledQuantity = cfg.TotalQuantity - summary.ScheduledQuantity
	}

	return summary
}
