// Package trupath converts microplate-reader sheets into the stacked
// 16-column block layout used for downstream assay analysis.
package trupath

import (
	"fmt"

	"github.com/ukaji3/trupath-go/pkg/trupath/parser"
)

// Geometry of the supported reader export.
const (
	// MeasurementRange is the sheet rectangle holding interleaved
	// numerator/denominator rows.
	MeasurementRange = "D8:S199"
	// PlateChannels is the number of measurement columns (A..P).
	PlateChannels = 16
	// PlateReplicates is the number of numerator/denominator row pairs.
	PlateReplicates = 96
	// BlockWidth is the number of plate columns per output block.
	BlockWidth = 16
	// BlockCount is the number of blocks stacked in the output.
	BlockCount = 6
	// SeparatorRows is the number of blank rows between stacked blocks.
	SeparatorRows = 5
)

// Layout describes where a reader places its measurements and how the
// converted blocks are arranged. Swapping the layout changes the geometry
// without touching the transform code.
type Layout struct {
	// MeasurementRange is an A1-style range such as "D8:S199".
	MeasurementRange string
	// Channels is the number of measurement columns in the range.
	Channels int
	// Replicates is the number of numerator/denominator row pairs.
	Replicates int
	// BlockWidth is the number of replicate columns per block.
	BlockWidth int
	// Blocks is the number of blocks per sheet.
	Blocks int
	// SeparatorRows is the number of blank rows between consecutive blocks.
	SeparatorRows int
	// Interleave maps output position k to block column Interleave[k].
	Interleave []int
}

// DefaultLayout returns the layout of the supported reader export.
func DefaultLayout() *Layout {
	return &Layout{
		MeasurementRange: MeasurementRange,
		Channels:         PlateChannels,
		Replicates:       PlateReplicates,
		BlockWidth:       BlockWidth,
		Blocks:           BlockCount,
		SeparatorRows:    SeparatorRows,
		Interleave:       InterleaveHalves(BlockWidth),
	}
}

// InterleaveHalves returns the permutation alternating the first and second
// halves of width columns: 0, h, 1, h+1, ... For width 16 this is
// 0,8,1,9,2,10,3,11,4,12,5,13,6,14,7,15.
func InterleaveHalves(width int) []int {
	half := width / 2
	order := make([]int, 0, width)
	for i := 0; i < half; i++ {
		order = append(order, i, half+i)
	}
	if width%2 == 1 {
		order = append(order, width-1)
	}
	return order
}

// Region returns the zero-based measurement rectangle.
func (l *Layout) Region() (parser.Rect, error) {
	rect, err := parser.ParseRange(l.MeasurementRange)
	if err != nil {
		return parser.Rect{}, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	return rect, nil
}

// OutputRows returns the row count of a converted sheet.
func (l *Layout) OutputRows() int {
	if l.Blocks == 0 {
		return 0
	}
	return l.Blocks*l.Channels + (l.Blocks-1)*l.SeparatorRows
}

// Validate checks that the layout constants agree with each other.
func (l *Layout) Validate() error {
	rect, err := l.Region()
	if err != nil {
		return err
	}
	switch {
	case l.Channels <= 0 || l.Channels > 26:
		return fmt.Errorf("%w: channels must be in 1..26, got %d", ErrInvalidLayout, l.Channels)
	case l.Blocks <= 0 || l.BlockWidth <= 0:
		return fmt.Errorf("%w: need at least one block of positive width", ErrInvalidLayout)
	case l.SeparatorRows < 0:
		return fmt.Errorf("%w: negative separator rows", ErrInvalidLayout)
	case rect.Rows() != 2*l.Replicates:
		return fmt.Errorf("%w: range %s has %d rows, want %d", ErrInvalidLayout, l.MeasurementRange, rect.Rows(), 2*l.Replicates)
	case rect.Cols() != l.Channels:
		return fmt.Errorf("%w: range %s has %d columns, want %d", ErrInvalidLayout, l.MeasurementRange, rect.Cols(), l.Channels)
	case l.Replicates != l.Blocks*l.BlockWidth:
		return fmt.Errorf("%w: %d replicates do not split into %d blocks of %d", ErrInvalidLayout, l.Replicates, l.Blocks, l.BlockWidth)
	case len(l.Interleave) != l.BlockWidth:
		return fmt.Errorf("%w: interleave has %d entries, want %d", ErrInvalidLayout, len(l.Interleave), l.BlockWidth)
	}
	seen := make([]bool, l.BlockWidth)
	for _, c := range l.Interleave {
		if c < 0 || c >= l.BlockWidth || seen[c] {
			return fmt.Errorf("%w: interleave %v is not a permutation", ErrInvalidLayout, l.Interleave)
		}
		seen[c] = true
	}
	return nil
}
