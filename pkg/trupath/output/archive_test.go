package output

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArtifacts() []Artifact {
	return []Artifact{
		{Name: "Plate1.csv", Grid: sampleGrid()},
		{Name: "Plate2.csv", Grid: sampleGrid()},
	}
}

func TestWriteZip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteZip(&buf, sampleArtifacts()))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	want, err := MarshalCSV(sampleGrid())
	require.NoError(t, err)
	for i, name := range []string{"Plate1.csv", "Plate2.csv"} {
		zf := zr.File[i]
		assert.Equal(t, name, zf.Name)
		assert.Equal(t, zip.Deflate, zf.Method)

		rc, err := zf.Open()
		require.NoError(t, err)
		got, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestWriteZipDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, WriteZip(&a, sampleArtifacts()))
	require.NoError(t, WriteZip(&b, sampleArtifacts()))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestWriteZipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out_csv.zip")
	require.NoError(t, WriteZipFile(path, sampleArtifacts()))

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()
	assert.Len(t, zr.File, 2)
}

func TestWriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "converted")

	paths, err := WriteDir(dir, sampleArtifacts())
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "Plate1.csv"),
		filepath.Join(dir, "Plate2.csv"),
	}, paths)

	want, err := MarshalCSV(sampleGrid())
	require.NoError(t, err)
	for _, p := range paths {
		got, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// Writing again into an existing directory overwrites in place.
	_, err = WriteDir(dir, sampleArtifacts()[:1])
	require.NoError(t, err)
}
