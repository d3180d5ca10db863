package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"transit-mixer-scheduler/internal/domain"
)

const SheetName = "Trip Schedule"

// WriteXLSX renders the trips as a single-sheet workbook.
// The workbook is built in memory and only written once complete.
func WriteXLSX(w io.Writer, trips []domain.Trip) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("write xlsx: rename sheet: %w", err)
	}

	if err := setRow(f, 1, toAny(header)); err != nil {
		return fmt.Errorf("write xlsx: header: %w", err)
	}

	for i, row := range Rows(trips) {
		if err := setRow(f, i+2, row); err != nil {
			return fmt.Errorf("write xlsx: trip %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}

	return nil
}

func setRow(f *excelize.File, rowNum int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SheetName, cell, &values)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
