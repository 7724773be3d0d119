// Package series loads and prepares univariate numeric time series.
//
// Missing or unparseable samples are represented as NaN. Derived change
// series are sanitized so that downstream processing only sees finite
// values.
package series

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sonify/dsp/core"
)

// ErrNoValidSamples indicates a series without a single finite sample.
var ErrNoValidSamples = errors.New("series contains no valid samples")

// Validate returns an error when the series holds no finite sample at all.
func Validate(values []float64) error {
	for _, v := range values {
		if core.IsFinite(v) {
			return nil
		}
	}

	return fmt.Errorf("series of length %d: %w", len(values), ErrNoValidSamples)
}

// PctChange returns the relative change between consecutive samples.
//
// Element 0 has no prior value and is defined as 0. Non-finite results,
// including division by zero and changes computed from missing samples,
// are replaced with 0.
func PctChange(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		change := values[i]/values[i-1] - 1
		if core.IsFinite(change) {
			out[i] = change
		}
	}

	return out
}
