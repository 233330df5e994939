package trupath

import (
	"github.com/ukaji3/trupath-go/pkg/trupath/models"
)

// Reshape splits the plate into blocks, interleaves each block's columns
// and stacks the blocks with blank separator rows.
func (l *Layout) Reshape(p *models.TransposedPlate) (*models.OutputGrid, error) {
	if err := l.checkPlateShape(p); err != nil {
		return nil, err
	}

	blocks := l.SplitBlocks(p)
	for i := range blocks {
		blocks[i] = l.ReorderBlock(blocks[i])
	}
	return l.Stack(blocks), nil
}

// SplitBlocks partitions the plate columns into Blocks consecutive,
// non-overlapping slices of BlockWidth columns.
func (l *Layout) SplitBlocks(p *models.TransposedPlate) []models.Block {
	blocks := make([]models.Block, l.Blocks)
	for b := range blocks {
		start := b * l.BlockWidth
		values := make([][]models.Value, len(p.Values))
		for r, row := range p.Values {
			values[r] = append([]models.Value(nil), row[start:start+l.BlockWidth]...)
		}
		blocks[b] = models.Block{
			Index:     b,
			RowLabels: p.RowLabels,
			Values:    values,
		}
	}
	return blocks
}

// ReorderBlock returns a copy of b whose column k is column Interleave[k]
// of b. Row labels are kept.
func (l *Layout) ReorderBlock(b models.Block) models.Block {
	values := make([][]models.Value, len(b.Values))
	for r, row := range b.Values {
		out := make([]models.Value, len(l.Interleave))
		for k, src := range l.Interleave {
			out[k] = row[src]
		}
		values[r] = out
	}
	return models.Block{
		Index:     b.Index,
		RowLabels: b.RowLabels,
		Values:    values,
	}
}

// Stack concatenates blocks vertically in order, with SeparatorRows blank
// rows between consecutive blocks and none before the first or after the last.
func (l *Layout) Stack(blocks []models.Block) *models.OutputGrid {
	var rows [][]models.Value
	for i, b := range blocks {
		if i > 0 {
			for s := 0; s < l.SeparatorRows; s++ {
				rows = append(rows, make([]models.Value, l.BlockWidth))
			}
		}
		rows = append(rows, b.Values...)
	}
	return &models.OutputGrid{Rows: rows}
}

func (l *Layout) checkPlateShape(p *models.TransposedPlate) error {
	bad := len(p.Values) != l.Channels
	for _, row := range p.Values {
		if len(row) != l.Replicates {
			bad = true
		}
	}
	if bad {
		return &ShapeError{
			What:     "transposed plate",
			WantRows: l.Channels,
			WantCols: l.Replicates,
			GotRows:  len(p.Values),
			GotCols:  p.Columns(),
			Exact:    true,
		}
	}
	return nil
}
