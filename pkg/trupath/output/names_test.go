package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Plate 1:Run*2", "Plate1_Run_2"},
		{"Sheet1", "Sheet1"},
		{`a\b/c`, "a_b_c"},
		{`x<>|"?y`, "x_y"},
		{"  spaced  out ", "spacedout"},
		{"", ""},
	}

	for _, tt := range tests {
		result := SanitizeSheetName(tt.input)
		if result != tt.expected {
			t.Errorf("SanitizeSheetName(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Plate1_Run_2.csv", FileName("Plate 1:Run*2"))
	assert.Equal(t, "Sheet.csv", FileName("   "))
}

func TestUniqueFileNames(t *testing.T) {
	names := UniqueFileNames([]string{"Run 1", "Run1", "run1", "Other", "Run:1", "Run_1"})
	assert.Equal(t, []string{"Run1.csv", "Run1_2.csv", "run1_3.csv", "Other.csv", "Run_1.csv", "Run_1_2.csv"}, names)
}

func TestArchiveName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"run.xlsx", "run_csv.zip"},
		{"/data/Run.XLSX", "Run_csv.zip"},
		{"legacy.xls", "legacy_csv.zip"},
		{"macro.xlsm", "macro_csv.zip"},
		{"plain", "plain_csv.zip"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ArchiveName(tt.input), tt.input)
	}
}
