// ABOUTME: Range validation for raw metric values before scoring.
// ABOUTME: Rejects unknown metric types and out-of-range values with typed errors.
package scoring

import (
	"fmt"

	"github.com/harperreed/stride/internal/models"
)

// ValidationError reports a value outside its metric's allowed domain.
// It is always local and never retried.
type ValidationError struct {
	MetricType models.MetricType
	Value      float64
	Allowed    models.Range
}

func (e *ValidationError) Error() string {
	if !models.IsValidMetricType(string(e.MetricType)) {
		return fmt.Sprintf("unknown metric type %q", e.MetricType)
	}
	return fmt.Sprintf("invalid %s value %g: allowed range [%g, %g]",
		e.MetricType, e.Value, e.Allowed.Min, e.Allowed.Max)
}

// Validate checks a raw value against its metric type's inclusive range.
// No side effects; must run before every write that touches scoring.
func Validate(metricType models.MetricType, value float64) error {
	r, ok := models.MetricRanges[metricType]
	if !ok {
		return &ValidationError{MetricType: metricType, Value: value}
	}
	if !r.Contains(value) {
		return &ValidationError{MetricType: metricType, Value: value, Allowed: r}
	}
	return nil
}
