package domain

// Represents one complete cycle of a transit mixer:
// load at plant, travel to site, buffer wait, unload, travel back.
// Timestamps are whole minutes since the same origin as ScheduleConfig.StartTime.
// Field order matches the exported column order.
type Trip struct {
	TripNumber         int
	VehicleID          int
	WorkStartTime      int
	PlantStartTime     int
	SiteReachTime      int
	PumpStartTime      int
	SiteLeftTime       int
	PlantReachTime     int
	BufferDuration     int
	RoundTripDuration  int
	QuantityThisTrip   int
	CumulativeQuantity int
}

// Aggregate figures for a computed schedule.
type ScheduleSummary struct {
	TripCount           int
	ScheduledQuantity   int
	UnscheduledQuantity int
	FirstDispatch       int
	LastReturn          int
	RoundTripDuration   int
	TripsPerVehicle     []int
}
