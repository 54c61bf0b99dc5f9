// Package common provides the CSV plumbing shared by the loader and the writer.
package common

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/nexo-cointracker/internal/logging"

	"github.com/gocarina/gocsv"
)

const (
	// PermissionDirectory is used for output directories created on demand.
	PermissionDirectory = 0750
	// PermissionReportFile is the mode of written CSV files.
	PermissionReportFile = 0644
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrNoHeader is returned when a CSV document has no header row.
var ErrNoHeader = errors.New("CSV document has no header row")

// StripBOM removes a leading UTF-8 byte order mark, which some spreadsheet
// exports prepend to the header.
func StripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// ReadHeader returns the first record of a CSV document.
func ReadHeader(data []byte) ([]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	return header, nil
}

// MissingColumns returns the entries of required that do not appear in header,
// in the order they were required.
func MissingColumns(header, required []string) []string {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// UnmarshalRows decodes a header-driven CSV document into a slice of structs
// whose fields carry `csv` tags. Columns without a matching tag are ignored.
func UnmarshalRows[TCSVRow any](data []byte, logger logging.Logger) ([]TCSVRow, error) {
	var rows []TCSVRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		logger.WithError(err).Error("Failed to decode CSV rows")
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}

	logger.Debug("Decoded CSV rows", logging.F(logging.FieldCount, len(rows)))
	return rows, nil
}

// WriteCSVFile writes rows to csvFile with a header taken from the `csv` tags
// of TCSVRow. The document is written to a temporary file in the destination
// directory and renamed into place, so a failed write never leaves a partial
// file at csvFile.
func WriteCSVFile[TCSVRow any](rows []TCSVRow, csvFile string, logger logging.Logger) error {
	if rows == nil {
		rows = []TCSVRow{}
	}

	logger.Info("Writing CSV file",
		logging.F(logging.FieldOutputFile, csvFile),
		logging.F(logging.FieldCount, len(rows)))

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, PermissionDirectory); err != nil {
		logger.WithError(err).Error("Failed to create output directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(csvFile)+".*.tmp")
	if err != nil {
		logger.WithError(err).Error("Failed to create temporary CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	csvWriter := csv.NewWriter(tmp)
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal rows to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	if err := tmp.Chmod(PermissionReportFile); err != nil {
		return fmt.Errorf("error setting CSV file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing CSV file: %w", err)
	}
	if err := os.Rename(tmpName, csvFile); err != nil {
		return fmt.Errorf("error moving CSV file into place: %w", err)
	}
	committed = true

	logger.Debug("CSV file written", logging.F(logging.FieldOutputFile, csvFile))
	return nil
}
