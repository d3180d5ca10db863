package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"transit-mixer-scheduler/internal/domain"
)

// ClockValue accepts either a minute count (300) or an "HH:MM" string ("05:00").
type ClockValue int

func (c *ClockValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		m, err := domain.ParseClock(s)
		if err != nil {
			return err
		}
		*c = ClockValue(m)
		return nil
	}

	m, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("clock value must be minutes or \"HH:MM\": %s", b)
	}
	*c = ClockValue(m)
	return nil
}

// ScheduleRequest fields are optional. Missing values come from the named
// scenario when one is given, otherwise from the server defaults.
type ScheduleRequest struct {
	Scenario        string      `json:"scenario"`
	StartTime       *ClockValue `json:"start_time"`
	TotalQuantity   *int        `json:"total_quantity"`
	LoadDuration    *int        `json:"load_duration"`
	TravelDuration  *int        `json:"travel_duration"`
	UnloadDuration  *int        `json:"unload_duration"`
	BufferDuration  *int        `json:"buffer_duration"`
	QuantityPerTrip *int        `json:"quantity_per_trip"`
	VehicleCount    *int        `json:"vehicle_count"`
}

// ApplyTo overlays the explicitly set request fields on base.
func (r ScheduleRequest) ApplyTo(base domain.ScheduleConfig) domain.ScheduleConfig {
	cfg := base
	if r.StartTime != nil {
		cfg.StartTime = int(*r.StartTime)
	}
	setInt(&cfg.TotalQuantity, r.TotalQuantity)
	setInt(&cfg.LoadDuration, r.LoadDuration)
	setInt(&cfg.TravelDuration, r.TravelDuration)
	setInt(&cfg.UnloadDuration, r.UnloadDuration)
	setInt(&cfg.BufferDuration, r.BufferDuration)
	setInt(&cfg.QuantityPerTrip, r.QuantityPerTrip)
	setInt(&cfg.VehicleCount, r.VehicleCount)
	return cfg
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

type ConfigResponse struct {
	StartTime       string `json:"start_time"`
	TotalQuantity   int    `json:"total_quantity"`
	LoadDuration    int    `json:"load_duration"`
	TravelDuration  int    `json:"travel_duration"`
	UnloadDuration  int    `json:"unload_duration"`
	BufferDuration  int    `json:"buffer_duration"`
	QuantityPerTrip int    `json:"quantity_per_trip"`
	VehicleCount    int    `json:"vehicle_count"`
}

type TripResponse struct {
	TripNumber         int    `json:"trip_number"`
	VehicleID          int    `json:"vehicle_id"`
	WorkStartTime      string `json:"work_start_time"`
	PlantStartTime     string `json:"plant_start_time"`
	SiteReachTime      string `json:"site_reach_time"`
	PumpStartTime      string `json:"pump_start_time"`
	SiteLeftTime       string `json:"site_left_time"`
	PlantReachTime     string `json:"plant_reach_time"`
	BufferDuration     int    `json:"buffer_duration"`
	RoundTripDuration  int    `json:"round_trip_duration"`
	QuantityThisTrip   int    `json:"quantity_this_trip"`
	CumulativeQuantity int    `json:"cumulative_quantity"`
}

type SummaryResponse struct {
	TripCount           int    `json:"trip_count"`
	ScheduledQuantity   int    `json:"scheduled_quantity"`
	UnscheduledQuantity int    `json:"unscheduled_quantity"`
	FirstDispatch       string `json:"first_dispatch"`
	LastReturn          string `json:"last_return"`
	RoundTripDuration   int    `json:"round_trip_duration"`
	TripsPerVehicle     []int  `json:"trips_per_vehicle"`
}

type ScheduleResponse struct {
	Config  ConfigResponse  `json:"config"`
	Summary SummaryResponse `json:"summary"`
	Trips   []TripResponse  `json:"trips"`
}

func NewConfigResponse(c domain.ScheduleConfig) ConfigResponse {
	return ConfigResponse{
		StartTime:       domain.FormatClock(c.StartTime),
		TotalQuantity:   c.TotalQuantity,
		LoadDuration:    c.LoadDuration,
		TravelDuration:  c.TravelDuration,
		UnloadDuration:  c.UnloadDuration,
		BufferDuration:  c.BufferDuration,
		QuantityPerTrip: c.QuantityPerTrip,
		VehicleCount:    c.VehicleCount,
	}
}

func NewScheduleResponse(cfg domain.ScheduleConfig, trips []domain.Trip, s domain.ScheduleSummary) ScheduleResponse {
	res := ScheduleResponse{
		Config: NewConfigResponse(cfg),
		Summary: SummaryResponse{
			TripCount:           s.TripCount,
			ScheduledQuantity:   s.ScheduledQuantity,
			UnscheduledQuantity: s.UnscheduledQuantity,
			FirstDispatch:       domain.FormatClock(s.FirstDispatch),
			LastReturn:          domain.FormatClock(s.LastReturn),
			RoundTripDuration:   s.RoundTripDuration,
			TripsPerVehicle:     s.TripsPerVehicle,
		},
		Trips: make([]TripResponse, 0, len(trips)),
	}

	for _, t := range trips {
		res.Trips = append(res.Trips, TripResponse{
			TripNumber:         t.TripNumber,
			VehicleID:          t.VehicleID,
			WorkStartTime:      domain.FormatClock(t.WorkStartTime),
			PlantStartTime:     domain.FormatClock(t.PlantStartTime),
			SiteReachTime:      domain.FormatClock(t.SiteReachTime),
			PumpStartTime:      domain.FormatClock(t.PumpStartTime),
			SiteLeftTime:       domain.FormatClock(t.SiteLeftTime),
			PlantReachTime:     domain.FormatClock(t.PlantReachTime),
			BufferDuration:     t.BufferDuration,
			RoundTripDuration:  t.RoundTripDuration,
			QuantityThisTrip:   t.QuantityThisTrip,
			CumulativeQuantity: t.CumulativeQuantity,
		})
	}

	return res
}
