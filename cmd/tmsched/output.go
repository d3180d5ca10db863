package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"transit-mixer-scheduler/internal/adapters/export"
	"transit-mixer-scheduler/internal/api/dto"
	"transit-mixer-scheduler/internal/domain"
)

func writeTable(w io.Writer, trips []domain.Trip, s domain.ScheduleSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, strings.Join(export.Header(), "\t"))
	for _, row := range export.Rows(trips) {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprint(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Trips: %d  Scheduled qty: %d  Unscheduled qty: %d\n",
		s.TripCount, s.ScheduledQuantity, s.UnscheduledQuantity)
	fmt.Fprintf(w, "First dispatch: %s  Last return: %s  Round trip: %d min\n",
		domain.FormatClock(s.FirstDispatch), domain.FormatClock(s.LastReturn), s.RoundTripDuration)

	perVehicle := make([]string, len(s.TripsPerVehicle))
	for i, n := range s.TripsPerVehicle {
		perVehicle[i] = fmt.Sprintf("TM%d=%d", i+1, n)
	}
	_, err := fmt.Fprintf(w, "Trips per vehicle: %s\n", strings.Join(perVehicle, " "))
	return err
}

func writeJSON(w io.Writer, cfg domain.ScheduleConfig, trips []domain.Trip, s domain.ScheduleSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(dto.NewScheduleResponse(cfg, trips, s))
}
