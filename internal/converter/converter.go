// Package converter runs the Nexo to CoinTracker pipeline for one file:
// load, sort, classify, write.
package converter

import (
	"fmt"
	"time"

	"fjacquet/nexo-cointracker/internal/classifier"
	"fjacquet/nexo-cointracker/internal/common"
	"fjacquet/nexo-cointracker/internal/fileutils"
	"fjacquet/nexo-cointracker/internal/logging"
	"fjacquet/nexo-cointracker/internal/models"
	"fjacquet/nexo-cointracker/internal/nexoparser"

	"github.com/google/uuid"
)

// Result summarises one conversion.
type Result struct {
	RunID      string
	InputPath  string
	OutputPath string
	InputRows  int
	OutputRows int
	Suppressed int
}

// Converter converts Nexo exports of one schema.
type Converter struct {
	parser     *nexoparser.Parser
	classifier *classifier.Classifier
	logger     logging.Logger
}

// New builds a Converter for opts.Schema.
func New(opts classifier.Options, logger logging.Logger) (*Converter, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	c, err := classifier.New(opts, logger)
	if err != nil {
		return nil, err
	}
	p, err := nexoparser.NewParser(opts.Schema, logger)
	if err != nil {
		return nil, err
	}

	return &Converter{parser: p, classifier: c, logger: logger}, nil
}

// Schema returns the input schema handled by the converter.
func (c *Converter) Schema() models.Schema {
	return c.parser.Schema()
}

// Options returns the mapping options of the converter.
func (c *Converter) Options() classifier.Options {
	return c.classifier.Options()
}

// ValidateFormat reports whether inputPath carries every column of the
// converter's schema.
func (c *Converter) ValidateFormat(inputPath string) (bool, error) {
	return c.parser.ValidateFormat(inputPath)
}

// Convert reads inputPath and writes the CoinTracker file to outputPath, or to
// fileutils.DeriveOutputPath(inputPath) when outputPath is empty. Nothing is
// written unless every row loads and classifies.
func (c *Converter) Convert(inputPath, outputPath string) (Result, error) {
	started := time.Now()
	if outputPath == "" {
		outputPath = fileutils.DeriveOutputPath(inputPath)
	}

	result := Result{
		RunID:      uuid.NewString(),
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
	log := c.logger.WithFields(
		logging.F(logging.FieldRunID, result.RunID),
		logging.F(logging.FieldSchema, c.Schema().String()),
		logging.F(logging.FieldInputFile, inputPath),
		logging.F(logging.FieldOutputFile, outputPath),
	)
	log.Info("Converting Nexo export to CoinTracker format")

	records, err := c.parser.ParseFile(inputPath)
	if err != nil {
		return result, fmt.Errorf("error loading %s: %w", inputPath, err)
	}
	result.InputRows = len(records)

	sorted := models.SortChronologically(records)

	rows, err := c.classifier.ClassifyAll(sorted)
	if err != nil {
		return result, fmt.Errorf("error converting %s: %w", inputPath, err)
	}
	result.OutputRows = len(rows)
	result.Suppressed = result.InputRows - result.OutputRows

	if err := common.WriteCSVFile(rows, outputPath, log); err != nil {
		return result, fmt.Errorf("error writing %s: %w", outputPath, err)
	}

	log.Info("Conversion completed",
		logging.F(logging.FieldCount, result.OutputRows),
		logging.F(logging.FieldSuppressed, result.Suppressed),
		logging.F(logging.FieldDuration, time.Since(started).Milliseconds()))
	return result, nil
}
