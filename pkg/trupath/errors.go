package trupath

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates a workbook format that cannot be read,
// such as legacy binary .xls.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrShapeMismatch indicates a sheet or table is too small for the layout.
var ErrShapeMismatch = errors.New("shape mismatch")

// ErrOrientationUnsupported indicates a layout orientation other than columns.
var ErrOrientationUnsupported = errors.New("orientation unsupported")

// ErrInvalidLayout indicates inconsistent layout geometry.
var ErrInvalidLayout = errors.New("invalid layout")

// ShapeError reports the extent a stage needed and the extent it got.
type ShapeError struct {
	What     string
	WantRows int
	WantCols int
	GotRows  int
	GotCols  int
	// Exact is set when the extent must match rather than be a minimum.
	Exact bool
}

func (e *ShapeError) Error() string {
	qual := "at least "
	if e.Exact {
		qual = ""
	}
	return fmt.Sprintf("%s: %s needs %s%d rows x %d columns, got %d x %d",
		ErrShapeMismatch, e.What, qual, e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}

// Is makes errors.Is(err, ErrShapeMismatch) match.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// Stage names the part of the conversion that failed.
type Stage string

const (
	StageRead        Stage = "read"
	StageOrientation Stage = "orientation"
	StageExtract     Stage = "extract"
	StageTranspose   Stage = "transpose"
	StageReshape     Stage = "reshape"
)

// SheetError represents a failure converting one sheet.
type SheetError struct {
	SheetName string
	Stage     Stage
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName string, stage Stage, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
