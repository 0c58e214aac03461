package output

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"imdb-top100/internal/movie"
)

const (
	sheetName    = "Sheet1"
	widthPadding = 6
)

// WriteExcel writes a header row and one row per record, then re-opens the
// workbook and widens every column to its longest cell plus padding.
func WriteExcel(movies []movie.Record, filename string) error {
	if err := writeRows(movies, filename); err != nil {
		return err
	}
	if err := autosizeColumns(filename); err != nil {
		return err
	}
	return nil
}

func writeRows(movies []movie.Record, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := movie.Header()
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header to %s: %w", filename, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", last+"1", bold); err != nil {
		return fmt.Errorf("style header in %s: %w", filename, err)
	}

	for i, m := range movies {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := m.Values()
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d to %s: %w", i+2, filename, err)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

func autosizeColumns(filename string) error {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return fmt.Errorf("reopen %s: %w", filename, err)
	}
	defer f.Close()

	cols, err := f.GetCols(sheetName)
	if err != nil {
		return fmt.Errorf("read columns of %s: %w", filename, err)
	}

	for i, cells := range cols {
		longest := 0
		for _, v := range cells {
			longest = max(longest, utf8.RuneCountInString(v))
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, name, name, float64(longest+widthPadding)); err != nil {
			return fmt.Errorf("set width of column %s in %s: %w", name, filename, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}
