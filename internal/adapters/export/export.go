package export

import (
	"io"

	"transit-mixer-scheduler/internal/domain"
)

// Write dispatches to the writer for the given format.
func Write(w io.Writer, f Format, trips []domain.Trip) error {
	if f == FormatCSV {
		return WriteCSV(w, trips)
	}
	return WriteXLSX(w, trips)
}
