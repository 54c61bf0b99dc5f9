// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/nexo-cointracker/internal/converter"
	"fjacquet/nexo-cointracker/internal/logging"
)

// ErrInvalidFormat is returned when --validate rejects the input file.
var ErrInvalidFormat = errors.New("file is not a valid Nexo export for this schema")

// FileConverter is the part of converter.Converter the commands depend on.
type FileConverter interface {
	ValidateFormat(inputFile string) (bool, error)
	Convert(inputFile, outputFile string) (converter.Result, error)
}

// ProcessFile optionally validates inputFile, converts it and reports the
// written path on out.
func ProcessFile(conv FileConverter, inputFile, outputFile string, validate bool, out io.Writer, log logging.Logger) (converter.Result, error) {
	if validate {
		log.Info("Validating format...", logging.F(logging.FieldInputFile, inputFile))
		valid, err := conv.ValidateFormat(inputFile)
		if err != nil {
			return converter.Result{}, fmt.Errorf("error validating %s: %w", inputFile, err)
		}
		if !valid {
			return converter.Result{}, fmt.Errorf("%s: %w", inputFile, ErrInvalidFormat)
		}
		log.Info("Validation successful.")
	}

	result, err := conv.Convert(inputFile, outputFile)
	if err != nil {
		return result, err
	}

	log.Info("Cointracker compatible file written",
		logging.F(logging.FieldRunID, result.RunID),
		logging.F(logging.FieldOutputFile, result.OutputPath))
	if _, err := fmt.Fprintf(out, "Cointracker compatible file written to: %s.\n", result.OutputPath); err != nil {
		return result, fmt.Errorf("error reporting result: %w", err)
	}
	return result, nil
}
