// Package logging builds the zap logger used by the binaries.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a production JSON logger at the given level (debug, info,
// warn, error). The logger is also installed as the zap global, which the
// shared inventory registry logs through.
func New(level, service string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	logger = logger.With(zap.String("service", service))

	zap.ReplaceGlobals(logger)
	return logger, nil
}
