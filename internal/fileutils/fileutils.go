// Package fileutils provides the file path helpers used by the converter.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputSuffix is appended to the input file stem when no output path is given.
const OutputSuffix = "_cointracker"

// FileExists checks if a file exists and is not a directory.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DeriveOutputPath builds the default destination for inputPath: the same
// directory, the input stem with OutputSuffix appended, and a .csv extension.
//
//	/data/nexo_export.csv -> /data/nexo_export_cointracker.csv
//	report.txt            -> report_cointracker.csv
func DeriveOutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(filepath.Dir(inputPath), stem+OutputSuffix+".csv")
}

// ReadFile reads the whole input file. A missing file yields an error that
// satisfies errors.Is(err, os.ErrNotExist).
func ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return data, nil
}
