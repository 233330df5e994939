package trupath

import (
	"github.com/ukaji3/trupath-go/pkg/trupath/models"
)

// ExtractRatio slices the measurement range out of raw and divides each
// numerator row (even offsets) by the denominator row that follows it.
// Cells that cannot be divided are blank in the result.
func (l *Layout) ExtractRatio(raw *models.RawSheet) (*models.RatioTable, error) {
	rect, err := l.Region()
	if err != nil {
		return nil, err
	}

	rows, cols := raw.Extent()
	if rows < rect.Row1 || cols < rect.Col1 {
		return nil, &ShapeError{
			What:     "measurement range " + l.MeasurementRange,
			WantRows: rect.Row1,
			WantCols: rect.Col1,
			GotRows:  rows,
			GotCols:  cols,
		}
	}

	values := make([][]models.Value, l.Replicates)
	for i := range values {
		num := rect.Row0 + 2*i
		den := num + 1
		row := make([]models.Value, l.Channels)
		for c := range row {
			col := rect.Col0 + c
			row[c] = raw.Cell(num, col).Div(raw.Cell(den, col))
		}
		values[i] = row
	}

	return &models.RatioTable{
		Channels: models.ChannelLabels(l.Channels),
		Values:   values,
	}, nil
}
