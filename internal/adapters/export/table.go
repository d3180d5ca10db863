package export

import (
	"fmt"
	"strconv"

	"transit-mixer-scheduler/internal/domain"
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

const baseFileName = "transit_mixer_trip_schedule"

// Column labels in Trip field order. Downstream spreadsheets rely on this layout.
var header = []string{
	"Trip No.",
	"Vehicle No.",
	"Work Start Time",
	"Plant Start Time",
	"Site Reach Time",
	"Pump Start Time",
	"Site Left Time After Pumping",
	"Plant Reach Time",
	"Buffer Time",
	"Round Trip Time",
	"Batch Qty per Trip",
	"Cumulative Qty",
}

// Header returns a copy of the export column labels.
func Header() []string {
	return append([]string(nil), header...)
}

// Rows converts trips into export rows. Timestamp cells are "HH:MM" strings,
// every other cell is an int.
func Rows(trips []domain.Trip) [][]any {
	rows := make([][]any, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, []any{
			t.TripNumber,
			t.VehicleID,
			domain.FormatClock(t.WorkStartTime),
			domain.FormatClock(t.PlantStartTime),
			domain.FormatClock(t.SiteReachTime),
			domain.FormatClock(t.PumpStartTime),
			domain.FormatClock(t.SiteLeftTime),
			domain.FormatClock(t.PlantReachTime),
			t.BufferDuration,
			t.RoundTripDuration,
			t.QuantityThisTrip,
			t.CumulativeQuantity,
		})
	}
	return rows
}

// ParseFormat maps a user supplied format name to a Format. Empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("parse export format: unsupported format %q", s)
	}
}

func FileName(f Format) string {
	return baseFileName + "." + string(f)
}

func ContentType(f Format) string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func cellString(v any) string {
	switch x := v.(type) {
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
