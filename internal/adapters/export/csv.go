package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"transit-mixer-scheduler/internal/domain"
)

// WriteCSV writes the header and one record per trip.
func WriteCSV(w io.Writer, trips []domain.Trip) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv: header: %w", err)
	}

	record := make([]string, len(header))
	for i, row := range Rows(trips) {
		for c, v := range row {
			record[c] = cellString(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv: trip %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write csv: flush: %w", err)
	}

	return nil
}
