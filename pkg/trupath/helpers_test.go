package trupath

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/trupath-go/pkg/trupath/models"
	"github.com/xuri/excelize/v2"
)

// cellFunc returns the numerator and denominator for a replicate pair
// (0-based) and channel (0-based).
type cellFunc func(pair, channel int) (num, den models.Value)

// plateValue encodes replicate and channel so every ratio is distinct.
func plateValue(pair, channel int) float64 {
	return float64((pair+1)*100 + channel)
}

func identityCells(pair, channel int) (models.Value, models.Value) {
	return models.Num(plateValue(pair, channel)), models.Num(1)
}

// plateSheet builds a sheet of the minimum extent with the measurement
// range filled by fill.
func plateSheet(name string, fill cellFunc) *models.RawSheet {
	cells := make([][]models.Value, 199)
	for r := range cells {
		cells[r] = make([]models.Value, 19)
	}
	for pair := 0; pair < PlateReplicates; pair++ {
		for c := 0; c < PlateChannels; c++ {
			num, den := fill(pair, c)
			cells[7+2*pair][3+c] = num
			cells[8+2*pair][3+c] = den
		}
	}
	return &models.RawSheet{Name: name, Cells: cells}
}

// writePlate fills the measurement range of sheet in f.
func writePlate(t *testing.T, f *excelize.File, sheet string, fill cellFunc) {
	t.Helper()
	for pair := 0; pair < PlateReplicates; pair++ {
		for c := 0; c < PlateChannels; c++ {
			num, den := fill(pair, c)
			for i, v := range []models.Value{num, den} {
				if !v.Valid {
					continue
				}
				cell, err := excelize.CoordinatesToCellName(4+c, 8+2*pair+i)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(sheet, cell, v.Float))
			}
		}
	}
}

// saveWorkbook writes f to a temporary .xlsx and returns its path.
func saveWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plates.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
