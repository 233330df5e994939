package output

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Extension is appended to every per-sheet artifact.
const Extension = ".csv"

// fallbackName is used when a sheet name sanitizes to nothing.
const fallbackName = "Sheet"

var (
	unsafeChars   = regexp.MustCompile(`[\\/:"*?<>|]+`)
	workbookExtRe = regexp.MustCompile(`(?i)\.(xlsx|xlsm|xls)$`)
)

// SanitizeSheetName turns a sheet name into a safe file base name.
// Runs of path-unsafe characters become a single "_" and spaces are dropped,
// so "Plate 1:Run*2" becomes "Plate1_Run_2".
func SanitizeSheetName(name string) string {
	safe := unsafeChars.ReplaceAllString(name, "_")
	return strings.ReplaceAll(safe, " ", "")
}

// FileName returns the artifact name for a sheet.
func FileName(sheetName string) string {
	base := SanitizeSheetName(sheetName)
	if base == "" {
		base = fallbackName
	}
	return base + Extension
}

// UniqueFileNames returns one artifact name per sheet, in order. When two
// sheets sanitize to the same name (ignoring case) the later ones get a
// numeric suffix: "A.csv", "A_2.csv", "A_3.csv".
func UniqueFileNames(sheetNames []string) []string {
	used := make(map[string]bool, len(sheetNames))
	names := make([]string, len(sheetNames))
	for i, sheet := range sheetNames {
		name := FileName(sheet)
		base := strings.TrimSuffix(name, Extension)
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s_%d%s", base, n, Extension)
		}
		used[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

// ArchiveName derives the zip name for a workbook: "run.xlsx" becomes
// "run_csv.zip".
func ArchiveName(workbookPath string) string {
	base := filepath.Base(workbookPath)
	if workbookExtRe.MatchString(base) {
		return workbookExtRe.ReplaceAllString(base, "_csv.zip")
	}
	return base + "_csv.zip"
}
