package models

// ChannelLabels returns the first n channel letters starting at "A".
func ChannelLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = string(rune('A' + i))
	}
	return labels
}

// RatioTable holds one numerator/denominator ratio per (replicate, channel).
type RatioTable struct {
	// Channels labels the columns (A..P).
	Channels []string
	// Values is indexed [replicate-1][channel].
	Values [][]Value
}

// Replicates returns the number of replicate rows.
func (t *RatioTable) Replicates() int {
	return len(t.Values)
}

// TransposedPlate is a RatioTable with axes swapped: one row per channel,
// one column per replicate.
type TransposedPlate struct {
	// RowLabels labels the rows (A..P).
	RowLabels []string
	// Values is indexed [channel][replicate-1].
	Values [][]Value
}

// Columns returns the number of replicate columns.
func (p *TransposedPlate) Columns() int {
	if len(p.Values) == 0 {
		return 0
	}
	return len(p.Values[0])
}

// Block is a contiguous column slice of a TransposedPlate. After reordering,
// its columns are identified only by position.
type Block struct {
	// Index is the block position within the plate (0-based).
	Index int
	// RowLabels carries the channel labels of the plate rows.
	RowLabels []string
	// Values is indexed [row][column].
	Values [][]Value
}

// OutputGrid is the stacked, headerless result for one sheet.
type OutputGrid struct {
	// Rows is indexed [row][column]; separator rows are entirely blank.
	Rows [][]Value
}

// Width returns the number of columns of the grid.
func (g *OutputGrid) Width() int {
	if len(g.Rows) == 0 {
		return 0
	}
	return len(g.Rows[0])
}

// IsBlankRow reports whether every cell of row i is blank.
func (g *OutputGrid) IsBlankRow(i int) bool {
	for _, v := range g.Rows[i] {
		if v.Valid {
			return false
		}
	}
	return true
}
