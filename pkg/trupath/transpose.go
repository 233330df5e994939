package trupath

import (
	"github.com/ukaji3/trupath-go/pkg/trupath/models"
)

// Transpose swaps the axes of a ratio table: channels become rows labelled
// A..P and replicates become columns in their original order.
func (l *Layout) Transpose(t *models.RatioTable) (*models.TransposedPlate, error) {
	if err := l.checkRatioShape(t); err != nil {
		return nil, err
	}

	values := make([][]models.Value, l.Channels)
	for c := range values {
		row := make([]models.Value, l.Replicates)
		for r := range row {
			row[r] = t.Values[r][c]
		}
		values[c] = row
	}

	return &models.TransposedPlate{
		RowLabels: models.ChannelLabels(l.Channels),
		Values:    values,
	}, nil
}

func (l *Layout) checkRatioShape(t *models.RatioTable) error {
	cols := 0
	if len(t.Values) > 0 {
		cols = len(t.Values[0])
	}
	bad := t.Replicates() != l.Replicates
	for _, row := range t.Values {
		if len(row) != l.Channels {
			bad = true
		}
	}
	if bad {
		return &ShapeError{
			What:     "ratio table",
			WantRows: l.Replicates,
			WantCols: l.Channels,
			GotRows:  t.Replicates(),
			GotCols:  cols,
			Exact:    true,
		}
	}
	return nil
}
