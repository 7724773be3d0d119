package sonify

import (
	"github.com/cwbudde/algo-sonify/dsp/core"
	"github.com/cwbudde/algo-sonify/dsp/window"
)

// NormalizeChanges converts raw relative changes into a modulation signal
// in [0, 1].
//
// A centered Gaussian-weighted moving average (window 5, sigma 1.5) smooths
// the changes; edge windows truncate to the available neighbors instead of
// producing missing values. The smoothed series is clamped to the asymmetric
// band [-0.08, 0.12], which leaves more headroom for increases, and
// linearly rescaled to [0, 1]. A run of zero changes therefore maps to 0.4.
func (s *Sonifier) NormalizeChanges(changes []float64) []float64 {
	kernel := window.Generate(window.TypeGauss, smoothingWindow, window.WithSigma(smoothingSigma))
	half := smoothingWindow / 2

	out := make([]float64, len(changes))
	for i := range changes {
		sum := 0.0
		weight := 0.0

		for j := -half; j <= half; j++ {
			k := i + j
			if k < 0 || k >= len(changes) {
				continue
			}

			if !core.IsFinite(changes[k]) {
				continue
			}

			w := kernel[j+half]
			sum += w * changes[k]
			weight += w
		}

		smoothed := 0.0
		if weight > 0 {
			smoothed = sum / weight
		}

		if !core.IsFinite(smoothed) {
			smoothed = 0
		}

		out[i] = (core.Clamp(smoothed, clampLow, clampHigh) - clampLow) / (clampHigh - clampLow)
	}

	return out
}
