package trupath

import (
	"fmt"
	"runtime"
)

// Orientation is the order in which the reader wrote the plate.
type Orientation string

const (
	// OrientationColumns is the supported export order.
	OrientationColumns Orientation = "columns"
	// OrientationRows is recognised but not implemented.
	OrientationRows Orientation = "rows"
)

// ParseOrientation parses a user-supplied orientation name.
func ParseOrientation(s string) (Orientation, error) {
	switch o := Orientation(s); o {
	case OrientationColumns, OrientationRows:
		return o, nil
	default:
		return "", fmt.Errorf("invalid orientation: %s (must be columns or rows)", s)
	}
}

// Options configures workbook conversion.
type Options struct {
	// Orientation selects the input layout. Empty means columns.
	Orientation Orientation
	// Workers bounds how many sheets convert in parallel.
	// Zero or negative uses runtime.NumCPU().
	Workers int
	// Layout overrides the reader geometry. Nil uses DefaultLayout().
	Layout *Layout
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Orientation: OrientationColumns,
	}
}

func (o Options) orientation() Orientation {
	if o.Orientation == "" {
		return OrientationColumns
	}
	return o.Orientation
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) layout() *Layout {
	if o.Layout != nil {
		return o.Layout
	}
	return DefaultLayout()
}
