// Package parser reads workbook sheets into the raw grids the converter works on.
package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Rect is a zero-based, half-open cell rectangle [Row0,Row1) x [Col0,Col1).
type Rect struct {
	Row0 int
	Col0 int
	Row1 int
	Col1 int
}

// Rows returns the number of rows in the rectangle.
func (r Rect) Rows() int { return r.Row1 - r.Row0 }

// Cols returns the number of columns in the rectangle.
func (r Rect) Cols() int { return r.Col1 - r.Col0 }

// ParseRange parses a range string like $D$8:$S$199 into a Rect.
// An optional sheet prefix ('Sheet 1'!D8:S199) is ignored.
func ParseRange(rangeStr string) (Rect, error) {
	ref := rangeStr
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return Rect{}, fmt.Errorf("invalid range %q", rangeStr)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Rect{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Rect{}, fmt.Errorf("invalid range %q: %w", rangeStr, err)
	}
	if endCol < startCol || endRow < startRow {
		return Rect{}, fmt.Errorf("invalid range %q: end before start", rangeStr)
	}

	return Rect{
		Row0: startRow - 1,
		Col0: startCol - 1,
		Row1: endRow,
		Col1: endCol,
	}, nil
}
