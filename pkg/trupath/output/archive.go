package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"github.com/ukaji3/trupath-go/pkg/trupath/models"
)

// Artifact is one converted sheet ready to be written.
type Artifact struct {
	// Name is the file name inside the archive or directory.
	Name string
	// Grid is the converted sheet.
	Grid *models.OutputGrid
}

// WriteZip deflates every artifact into a single zip archive on w.
func WriteZip(w io.Writer, artifacts []Artifact) error {
	zw := zip.NewWriter(w)
	for _, a := range artifacts {
		data, err := MarshalCSV(a.Grid)
		if err != nil {
			return fmt.Errorf("serialize %s: %w", a.Name, err)
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:   a.Name,
			Method: zip.Deflate,
		})
		if err != nil {
			return fmt.Errorf("add %s: %w", a.Name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("write %s: %w", a.Name, err)
		}
	}
	return zw.Close()
}

// WriteZipFile writes the archive to path.
func WriteZipFile(path string, artifacts []Artifact) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteZip(f, artifacts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteDir writes each artifact as a file in dir, creating dir if needed.
// It returns the written paths in artifact order.
func WriteDir(dir string, artifacts []Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		data, err := MarshalCSV(a.Grid)
		if err != nil {
			return paths, fmt.Errorf("serialize %s: %w", a.Name, err)
		}
		path := filepath.Join(dir, a.Name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
