package trupath

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/trupath-go/pkg/trupath/models"
	"github.com/ukaji3/trupath-go/pkg/trupath/output"
	"github.com/ukaji3/trupath-go/pkg/trupath/parser"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// SheetResult is the outcome of converting one sheet.
type SheetResult struct {
	// Name is the worksheet name.
	Name string
	// Index is the zero-based sheet position in the workbook.
	Index int
	// FileName is the artifact name, unique within the workbook.
	FileName string
	// Grid is the converted sheet; nil when Err is set.
	Grid *models.OutputGrid
	// Err is the *SheetError that stopped this sheet, if any.
	Err error
}

// WorkbookResult holds per-sheet results in workbook order.
type WorkbookResult struct {
	// BookName is the workbook file name (no path).
	BookName string
	Sheets   []SheetResult
}

// Artifacts returns the successfully converted sheets.
func (w *WorkbookResult) Artifacts() []output.Artifact {
	var artifacts []output.Artifact
	for _, s := range w.Sheets {
		if s.Err == nil {
			artifacts = append(artifacts, output.Artifact{Name: s.FileName, Grid: s.Grid})
		}
	}
	return artifacts
}

// Failed returns the sheets whose conversion failed.
func (w *WorkbookResult) Failed() []SheetResult {
	var failed []SheetResult
	for _, s := range w.Sheets {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Err joins the errors of all failed sheets, or returns nil.
func (w *WorkbookResult) Err() error {
	var errs []error
	for _, s := range w.Failed() {
		errs = append(errs, s.Err)
	}
	return errors.Join(errs...)
}

// ConvertFile converts every sheet of the workbook at path.
func ConvertFile(ctx context.Context, path string, opts Options) (*WorkbookResult, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return nil, fmt.Errorf("%w: legacy .xls is not supported, save the workbook as .xlsx", ErrUnsupportedFormat)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ConvertWorkbook(ctx, f, filepath.Base(path), opts)
}

// ConvertReader converts every sheet of a workbook held in r.
func ConvertReader(ctx context.Context, r io.Reader, bookName string, opts Options) (*WorkbookResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ConvertWorkbook(ctx, f, bookName, opts)
}

// ConvertWorkbook converts every sheet of f. Sheets are independent: a
// sheet that fails is recorded in its SheetResult and the others still
// convert. Up to opts.Workers sheets convert in parallel; results keep
// workbook order. The returned error is non-nil only for workbook-level
// problems such as an invalid layout or a cancelled context.
func ConvertWorkbook(ctx context.Context, f *excelize.File, bookName string, opts Options) (*WorkbookResult, error) {
	if err := opts.layout().Validate(); err != nil {
		return nil, err
	}
	log := zerolog.Ctx(ctx)

	names := parser.SheetNames(f)
	fileNames := output.UniqueFileNames(names)
	results := make([]SheetResult, len(names))

	for i, name := range names {
		results[i] = SheetResult{Name: name, Index: i, FileName: fileNames[i]}
	}

	// An unsupported orientation fails every sheet before anything is read.
	if opts.orientation() != OrientationColumns {
		for i := range results {
			results[i].Err = checkOrientation(results[i].Name, opts)
			log.Warn().Err(results[i].Err).Str("sheet", results[i].Name).Msg("sheet conversion failed")
		}
		return &WorkbookResult{
			BookName: bookName,
			Sheets:   results,
		}, nil
	}

	// Reading stays sequential; only the in-memory transforms fan out.
	raws := make([]*models.RawSheet, len(names))
	for i, name := range names {
		raw, err := parser.ReadSheet(f, name, i)
		if err != nil {
			results[i].Err = NewSheetError(name, StageRead, err)
			continue
		}
		raws[i] = raw
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, raw := range raws {
		if raw == nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log.Debug().Str("sheet", raw.Name).Int("index", i).Msg("converting sheet")
			grid, err := ConvertSheet(raw, opts)
			results[i].Grid = grid
			results[i].Err = err
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, s := range results {
		if s.Err != nil {
			log.Warn().Err(s.Err).Str("sheet", s.Name).Msg("sheet conversion failed")
		} else {
			log.Debug().Str("sheet", s.Name).Str("file", s.FileName).Int("rows", len(s.Grid.Rows)).Msg("sheet converted")
		}
	}

	return &WorkbookResult{
		BookName: bookName,
		Sheets:   results,
	}, nil
}
