// Package main provides the CLI entry point for trupath-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/trupath-go/pkg/trupath"
	"github.com/ukaji3/trupath-go/pkg/trupath/output"
	"github.com/ukaji3/trupath-go/pkg/trupath/parser"
	"github.com/xuri/excelize/v2"
)

const defaultFolder = "converted"

var (
	outDir      string
	location    string
	zipPath     string
	orientation string
	workers     int
	verbose     bool
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trupath [input.xlsx]",
		Short: "Convert plate-reader workbooks to block-layout CSV",
		Long: `trupath converts every sheet of a plate-reader export into a
121x16 CSV: ratios of the interleaved D8:S199 rows, transposed and stacked
as six interleaved 16-column blocks.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log per-sheet progress")
	rootCmd.Flags().StringVarP(&outDir, "out-dir", "o", defaultFolder, "Output folder name")
	rootCmd.Flags().StringVar(&location, "location", "", "Directory to create the output folder in (default: next to the input)")
	rootCmd.Flags().StringVar(&zipPath, "zip", "", "Write one zip archive instead of a folder (\"-\" for stdout, \"auto\" for <input>_csv.zip)")
	rootCmd.Flags().StringVar(&orientation, "orientation", string(trupath.OrientationColumns), "Data order: columns or rows")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Sheets converted in parallel (default: number of CPUs)")

	rootCmd.AddCommand(newSheetsCmd())
	return rootCmd
}

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List sheets with their extent and output file name",
		Args:  cobra.ExactArgs(1),
		RunE:  listSheets,
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := newLogger(cmd.ErrOrStderr())
	ctx := logger.WithContext(cmd.Context())

	o, err := trupath.ParseOrientation(orientation)
	if err != nil {
		return err
	}
	opts := trupath.Options{
		Orientation: o,
		Workers:     workers,
	}

	wb, err := trupath.ConvertFile(ctx, inputPath, opts)
	if err != nil {
		logger.Error().Err(err).Str("input", inputPath).Msg("conversion failed")
		return fmt.Errorf("conversion failed: %w", err)
	}

	artifacts := wb.Artifacts()
	if err := writeArtifacts(ctx, cmd.OutOrStdout(), inputPath, artifacts); err != nil {
		logger.Error().Err(err).Msg("write failed")
		return fmt.Errorf("failed to write output: %w", err)
	}

	failed := wb.Failed()
	for _, s := range failed {
		logger.Error().Str("sheet", s.Name).Err(s.Err).Msg("sheet not converted")
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d sheet(s) failed: %w", len(failed), len(wb.Sheets), wb.Err())
	}
	return nil
}

func writeArtifacts(ctx context.Context, stdout io.Writer, inputPath string, artifacts []output.Artifact) error {
	logger := zerolog.Ctx(ctx)

	switch zipPath {
	case "":
		dir := filepath.Join(baseDir(inputPath), outDir)
		paths, err := output.WriteDir(dir, artifacts)
		if err != nil {
			return err
		}
		logger.Info().Int("files", len(paths)).Str("dir", dir).Msg("saved")
		return nil
	case "-":
		return output.WriteZip(stdout, artifacts)
	case "auto":
		path := filepath.Join(baseDir(inputPath), output.ArchiveName(inputPath))
		if err := output.WriteZipFile(path, artifacts); err != nil {
			return err
		}
		logger.Info().Int("files", len(artifacts)).Str("archive", path).Msg("saved")
		return nil
	default:
		if err := output.WriteZipFile(zipPath, artifacts); err != nil {
			return err
		}
		logger.Info().Int("files", len(artifacts)).Str("archive", zipPath).Msg("saved")
		return nil
	}
}

func baseDir(inputPath string) string {
	if location != "" {
		return location
	}
	return filepath.Dir(inputPath)
}

func listSheets(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	names := parser.SheetNames(f)
	fileNames := output.UniqueFileNames(names)
	w := cmd.OutOrStdout()
	var errs []error
	for i, name := range names {
		raw, err := parser.ReadSheet(f, name, i)
		if err != nil {
			errs = append(errs, trupath.NewSheetError(name, trupath.StageRead, err))
			continue
		}
		rows, cols := raw.Extent()
		fmt.Fprintf(w, "%d\t%s\t%dx%d\t%s\n", i+1, name, rows, cols, fileNames[i])
	}
	return errors.Join(errs...)
}
