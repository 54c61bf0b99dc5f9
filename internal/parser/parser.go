// Package parser defines the segregated interfaces implemented by input
// parsers and a BaseParser to embed in them.
package parser

import (
	"io"

	"fjacquet/nexo-cointracker/internal/logging"
	"fjacquet/nexo-cointracker/internal/models"
)

// Parser reads source records from a stream.
type Parser interface {
	// Parse reads the whole stream and returns its records in file order.
	// Layout problems are reported with the typed errors of parsererror.
	Parse(r io.Reader) ([]models.SourceRecord, error)
}

// FileParser reads source records from a file on disk.
type FileParser interface {
	ParseFile(filePath string) ([]models.SourceRecord, error)
}

// Validator checks whether a file has the layout a parser expects.
type Validator interface {
	ValidateFormat(filePath string) (bool, error)
}

// LoggerConfigurable is implemented by components whose logger can be replaced.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser combines every parser capability.
type FullParser interface {
	Parser
	FileParser
	Validator
	LoggerConfigurable
}
