// Package nexoparser loads Nexo transaction exports into source records.
// The export exists in several column layouts; the caller picks one through
// models.Schema and the parser never guesses.
package nexoparser

import (
	"errors"
	"fmt"
	"io"
	"time"

	"fjacquet/nexo-cointracker/internal/common"
	"fjacquet/nexo-cointracker/internal/dateutils"
	"fjacquet/nexo-cointracker/internal/fileutils"
	"fjacquet/nexo-cointracker/internal/logging"
	"fjacquet/nexo-cointracker/internal/models"
	"fjacquet/nexo-cointracker/internal/parser"
	"fjacquet/nexo-cointracker/internal/parsererror"
)

const parserName = "nexo"

// readerPath is reported in errors when parsing from an io.Reader.
const readerPath = "(from reader)"

// SplitCSVRow is a row of the split layout.
type SplitCSVRow struct {
	DateTime       string `csv:"Date / Time"`
	Type           string `csv:"Type"`
	InputCurrency  string `csv:"Input Currency"`
	InputAmount    string `csv:"Input Amount"`
	OutputCurrency string `csv:"Output Currency"`
	OutputAmount   string `csv:"Output Amount"`
	USDEquivalent  string `csv:"USD Equivalent"`
}

// CombinedCSVRow is a row of the combined layout.
type CombinedCSVRow struct {
	DateTime      string `csv:"Date / Time"`
	Type          string `csv:"Type"`
	Currency      string `csv:"Currency"`
	Amount        string `csv:"Amount"`
	USDEquivalent string `csv:"USD Equivalent"`
}

// Parser reads one schema of Nexo export.
type Parser struct {
	parser.BaseParser
	schema models.Schema
}

var _ parser.FullParser = (*Parser)(nil)

// NewParser returns a parser for schema. A nil logger falls back to a default
// logrus-backed one.
func NewParser(schema models.Schema, logger logging.Logger) (*Parser, error) {
	if schema.RequiredColumns() == nil {
		return nil, fmt.Errorf("unsupported schema %q", schema)
	}
	base := parser.NewBaseParser(logger)
	base.SetLogger(base.GetLogger().WithField(logging.FieldSchema, schema.String()))
	return &Parser{BaseParser: base, schema: schema}, nil
}

// Schema returns the schema this parser reads.
func (p *Parser) Schema() models.Schema {
	return p.schema
}

// SetLogger replaces the parser's logger.
func (p *Parser) SetLogger(logger logging.Logger) {
	if logger != nil {
		p.BaseParser.SetLogger(logger.WithField(logging.FieldSchema, p.schema.String()))
	}
}

// ParseFile loads filePath. The file is read in full and closed before rows
// are interpreted.
func (p *Parser) ParseFile(filePath string) ([]models.SourceRecord, error) {
	p.GetLogger().Info("Parsing Nexo CSV file", logging.F(logging.FieldInputFile, filePath))

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		p.GetLogger().WithError(err).Error("Failed to read Nexo CSV file")
		return nil, err
	}
	return p.parse(data, filePath)
}

// Parse loads a Nexo export from r.
func (p *Parser) Parse(r io.Reader) ([]models.SourceRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return p.parse(data, readerPath)
}

// ValidateFormat reports whether filePath has every column of the parser's
// schema. A file that cannot be read is an error; a mismatch is not.
func (p *Parser) ValidateFormat(filePath string) (bool, error) {
	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		return false, err
	}

	err = p.checkHeader(common.StripBOM(data), filePath)
	var mismatch *parsererror.SchemaMismatchError
	var invalid *parsererror.InvalidFormatError
	switch {
	case err == nil:
		return true, nil
	case errors.As(err, &mismatch), errors.As(err, &invalid):
		p.GetLogger().Info("File does not match schema", logging.F(logging.FieldReason, err.Error()))
		return false, nil
	default:
		return false, err
	}
}

func (p *Parser) parse(data []byte, filePath string) ([]models.SourceRecord, error) {
	data = common.StripBOM(data)
	if err := p.checkHeader(data, filePath); err != nil {
		p.GetLogger().WithError(err).Error("Nexo CSV header check failed")
		return nil, err
	}

	var (
		records []models.SourceRecord
		err     error
	)
	switch p.schema {
	case models.SchemaSplit:
		records, err = parseSplit(data, p.GetLogger())
	case models.SchemaCombined:
		records, err = parseCombined(data, p.GetLogger())
	}
	if err != nil {
		p.GetLogger().WithError(err).Error("Failed to parse Nexo CSV rows")
		return nil, err
	}

	p.GetLogger().Info("Parsed Nexo CSV rows", logging.F(logging.FieldCount, len(records)))
	return records, nil
}

func (p *Parser) checkHeader(data []byte, filePath string) error {
	header, err := common.ReadHeader(data)
	if errors.Is(err, common.ErrNoHeader) {
		return &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "Nexo CSV export (" + p.schema.String() + " schema)",
			Msg:            "file has no header row",
		}
	}
	if err != nil {
		return err
	}

	if missing := common.MissingColumns(header, p.schema.RequiredColumns()); len(missing) > 0 {
		return &parsererror.SchemaMismatchError{
			FilePath: filePath,
			Schema:   p.schema.String(),
			Missing:  missing,
		}
	}
	return nil
}

func parseSplit(data []byte, logger logging.Logger) ([]models.SourceRecord, error) {
	rows, err := common.UnmarshalRows[SplitCSVRow](data, logger)
	if err != nil {
		return nil, err
	}

	records := make([]models.SourceRecord, 0, len(rows))
	for i, row := range rows {
		ts, err := parseTimestamp(i+1, row.DateTime)
		if err != nil {
			return nil, err
		}
		records = append(records, models.SourceRecord{
			Row:            i + 1,
			Timestamp:      ts,
			Type:           models.TransactionType(row.Type),
			InputCurrency:  row.InputCurrency,
			InputAmount:    row.InputAmount,
			OutputCurrency: row.OutputCurrency,
			OutputAmount:   row.OutputAmount,
			USDEquivalent:  row.USDEquivalent,
		})
	}
	return records, nil
}

func parseCombined(data []byte, logger logging.Logger) ([]models.SourceRecord, error) {
	rows, err := common.UnmarshalRows[CombinedCSVRow](data, logger)
	if err != nil {
		return nil, err
	}

	records := make([]models.SourceRecord, 0, len(rows))
	for i, row := range rows {
		ts, err := parseTimestamp(i+1, row.DateTime)
		if err != nil {
			return nil, err
		}
		records = append(records, models.SourceRecord{
			Row:           i + 1,
			Timestamp:     ts,
			Type:          models.TransactionType(row.Type),
			Currency:      row.Currency,
			Amount:        row.Amount,
			USDEquivalent: row.USDEquivalent,
		})
	}
	return records, nil
}

func parseTimestamp(row int, value string) (time.Time, error) {
	t, err := dateutils.ParseLedgerTimestamp(value)
	if err != nil {
		return time.Time{}, &parsererror.ParseError{
			Parser: parserName,
			Row:    row,
			Field:  models.ColumnDateTime,
			Value:  value,
			Err:    err,
		}
	}
	return t, nil
}
