package dataset

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// headerScanRows is how deep into each worksheet the loader looks for the
// header row. Exported workbooks sometimes carry a title or note above the
// real header.
const headerScanRows = 10

// LoadXLSX reads the dataset from an Excel workbook. Each worksheet is
// scanned for a header row containing the required columns; data rows beneath
// it are parsed exactly like the CSV loader parses records. Fully blank rows,
// common at the tail of exported workbooks, are skipped; partially blank rows
// are ParseErrors like any other malformed row.
func LoadXLSX(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	// Remember the closest header we saw so a near-miss schema produces a
	// useful error instead of "everything is missing".
	bestMissing := append([]string(nil), RequiredColumns...)

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, &FileError{Path: path, Err: err}
		}

		scan := len(rows)
		if scan > headerScanRows {
			scan = headerScanRows
		}
		for i := 0; i < scan; i++ {
			cols, missing := mapHeader(rows[i])
			if len(missing) == 0 {
				return parseSheetRows(path, cols, rows[i+1:])
			}
			if len(missing) < len(bestMissing) {
				bestMissing = missing
			}
		}
	}

	return nil, &SchemaError{Path: path, Missing: bestMissing}
}

// parseSheetRows parses the worksheet rows below the header. Row numbers in
// errors count non-blank data rows, matching the CSV loader's contract.
func parseSheetRows(path string, cols columnIndex, rows [][]string) (Table, error) {
	var table Table
	row := 0
	for _, rec := range rows {
		if isBlankRow(rec) {
			continue
		}
		row++
		obs, err := parseRow(path, cols, rec, row)
		if err != nil {
			return nil, err
		}
		table = append(table, obs)
	}
	return table, nil
}

func isBlankRow(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
