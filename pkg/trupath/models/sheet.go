package models

// RawSheet is one worksheet as a grid of numeric-or-empty cells.
// Rows may be ragged; missing cells are blank.
type RawSheet struct {
	// Name is the worksheet name.
	Name string
	// Index is the zero-based position of the sheet in its workbook.
	Index int
	// Cells holds the sheet content addressed by zero-based (row, column).
	Cells [][]Value
}

// Cell returns the value at (row, col), or a blank Value outside the grid.
func (s *RawSheet) Cell(row, col int) Value {
	if row < 0 || row >= len(s.Cells) || col < 0 || col >= len(s.Cells[row]) {
		return Value{}
	}
	return s.Cells[row][col]
}

// Extent returns the number of rows and the width of the widest row.
func (s *RawSheet) Extent() (rows, cols int) {
	rows = len(s.Cells)
	for _, r := range s.Cells {
		if len(r) > cols {
			cols = len(r)
		}
	}
	return rows, cols
}
