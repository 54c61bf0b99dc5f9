// Package container provides dependency injection for the nexo-cointracker
// application. It centralizes the creation and wiring of the logger and the
// per-schema converters, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/nexo-cointracker/internal/classifier"
	"fjacquet/nexo-cointracker/internal/config"
	"fjacquet/nexo-cointracker/internal/converter"
	"fjacquet/nexo-cointracker/internal/logging"
	"fjacquet/nexo-cointracker/internal/models"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; fields are private and only reachable
// through getter methods.
type Container struct {
	logger logging.Logger
	config *config.Config

	// Converter registry, one entry per input schema
	converters map[models.Schema]*converter.Converter
}

// NewContainer creates and wires all application dependencies.
//
// The combined converter inherits conversion.mined_deposits from cfg; the split
// schema does not support mined deposits and always gets the plain rules.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := config.ConfigureLoggingFromConfig(cfg)

	return newContainer(cfg, logger)
}

// NewContainerWithLogger wires the container around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	return newContainer(cfg, logger)
}

func newContainer(cfg *config.Config, logger logging.Logger) (*Container, error) {
	converters := make(map[models.Schema]*converter.Converter, len(models.Schemas()))
	for _, schema := range models.Schemas() {
		opts := classifier.Options{Schema: schema}
		if schema.SupportsMinedDeposits() {
			opts.MinedDeposits = cfg.Conversion.MinedDeposits
		}

		conv, err := converter.New(opts, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s converter: %w", schema, err)
		}
		converters[schema] = conv
	}

	logger.Debug("Container initialized successfully",
		logging.F("converters_count", len(converters)),
		logging.F("mined_deposits", cfg.Conversion.MinedDeposits))

	return &Container{
		logger:     logger,
		config:     cfg,
		converters: converters,
	}, nil
}

// GetConverter returns the configured converter for schema.
func (c *Container) GetConverter(schema models.Schema) (*converter.Converter, error) {
	conv, ok := c.converters[schema]
	if !ok {
		return nil, fmt.Errorf("unknown schema: %s", schema)
	}
	return conv, nil
}

// NewConverter builds a converter for options that differ from the configured
// defaults, such as a --mined flag given on the command line.
func (c *Container) NewConverter(opts classifier.Options) (*converter.Converter, error) {
	return converter.New(opts, c.logger)
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	// No resources need explicit cleanup
	c.logger.Debug("Container closed")
	return nil
}
