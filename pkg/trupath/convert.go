package trupath

import (
	"fmt"

	"github.com/ukaji3/trupath-go/pkg/trupath/models"
)

// Convert runs the default layout over one sheet.
func Convert(raw *models.RawSheet) (*models.OutputGrid, error) {
	return DefaultLayout().Convert(raw)
}

// Convert extracts, transposes and reshapes one sheet. Failures are
// returned as *SheetError naming the sheet and the failing stage.
func (l *Layout) Convert(raw *models.RawSheet) (*models.OutputGrid, error) {
	if err := l.Validate(); err != nil {
		return nil, NewSheetError(raw.Name, StageExtract, err)
	}

	ratio, err := l.ExtractRatio(raw)
	if err != nil {
		return nil, NewSheetError(raw.Name, StageExtract, err)
	}

	plate, err := l.Transpose(ratio)
	if err != nil {
		return nil, NewSheetError(raw.Name, StageTranspose, err)
	}

	grid, err := l.Reshape(plate)
	if err != nil {
		return nil, NewSheetError(raw.Name, StageReshape, err)
	}
	return grid, nil
}

// ConvertSheet checks the requested orientation before converting raw with
// the layout from opts.
func ConvertSheet(raw *models.RawSheet, opts Options) (*models.OutputGrid, error) {
	if err := checkOrientation(raw.Name, opts); err != nil {
		return nil, err
	}
	return opts.layout().Convert(raw)
}

// checkOrientation returns a *SheetError for sheetName unless opts selects
// the columns orientation.
func checkOrientation(sheetName string, opts Options) error {
	if o := opts.orientation(); o != OrientationColumns {
		return NewSheetError(sheetName, StageOrientation, fmt.Errorf("%w: %s", ErrOrientationUnsupported, o))
	}
	return nil
}
