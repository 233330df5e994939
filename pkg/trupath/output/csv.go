// Package output serializes converted sheets to CSV artifacts.
package output

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/ukaji3/trupath-go/pkg/trupath/models"
)

// WriteCSV writes grid as comma-separated text without header or index.
// Blank cells are empty fields.
func WriteCSV(w io.Writer, grid *models.OutputGrid) error {
	cw := csv.NewWriter(w)
	width := grid.Width()
	record := make([]string, width)
	for _, row := range grid.Rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = row[i].String()
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalCSV returns the CSV bytes of grid.
func MarshalCSV(grid *models.OutputGrid) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, grid); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
