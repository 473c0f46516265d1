// ABOUTME: Operation instrumentation for the scoring pipeline.
// ABOUTME: Injected collaborator; measures named operations instead of a process-wide singleton.
package telemetry

import (
	"time"

	"go.uber.org/zap"
)

// Instrumenter times a named operation and records its outcome.
// The error from fn is always returned unchanged.
type Instrumenter interface {
	MeasureOperation(name string, metadata map[string]string, fn func() error) error
}

// ZapInstrumenter records operation timing and outcome with zap.
type ZapInstrumenter struct {
	logger *zap.Logger
}

// NewZapInstrumenter creates an instrumenter backed by the given logger.
func NewZapInstrumenter(logger *zap.Logger) *ZapInstrumenter {
	return &ZapInstrumenter{logger: logger}
}

// MeasureOperation runs fn, logging its duration and any failure.
func (z *ZapInstrumenter) MeasureOperation(name string, metadata map[string]string, fn func() error) error {
	start := time.Now()
	err := fn()

	fields := make([]zap.Field, 0, len(metadata)+3)
	fields = append(fields,
		zap.String("operation", name),
		zap.Duration("duration", time.Since(start)),
	)
	for k, v := range metadata {
		fields = append(fields, zap.String(k, v))
	}

	if err != nil {
		z.logger.Warn("operation failed", append(fields, zap.Error(err))...)
	} else {
		z.logger.Debug("operation completed", fields...)
	}
	return err
}

// Nop is an Instrumenter that runs operations without recording anything.
type Nop struct{}

// MeasureOperation runs fn and returns its error.
func (Nop) MeasureOperation(name string, metadata map[string]string, fn func() error) error {
	return fn()
}
