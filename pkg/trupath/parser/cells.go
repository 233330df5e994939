package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/trupath-go/pkg/trupath/models"
	"github.com/xuri/excelize/v2"
)

// SheetNames returns the worksheet names in workbook order.
func SheetNames(f *excelize.File) []string {
	return f.GetSheetList()
}

// ReadSheet reads one worksheet as a grid of numeric-or-blank cells.
// Raw cell values are used so number formats do not round the data.
// Boolean cells are blank even though their raw values are "1" and "0".
func ReadSheet(f *excelize.File, sheetName string, index int) (*models.RawSheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	cells := make([][]models.Value, len(rows))
	for rowIdx, row := range rows {
		values := make([]models.Value, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "0" || cellValue == "1" {
				isBool, err := isBoolCell(f, sheetName, colIdx+1, rowIdx+1)
				if err != nil {
					return nil, err
				}
				if isBool {
					continue
				}
			}
			values[colIdx] = parseValue(cellValue)
		}
		cells[rowIdx] = values
	}

	return &models.RawSheet{
		Name:  sheetName,
		Index: index,
		Cells: cells,
	}, nil
}

// isBoolCell reports whether the cell at 1-based (col, row) is typed boolean.
func isBoolCell(f *excelize.File, sheetName string, col, row int) (bool, error) {
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, err
	}
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return false, err
	}
	return cellType == excelize.CellTypeBool, nil
}

// parseValue parses a cell as a number. Empty and non-numeric cells are blank.
func parseValue(s string) models.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Blank()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Blank()
	}
	return models.Num(f)
}
