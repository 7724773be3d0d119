package sonify

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-sonify/dsp/core"
	"github.com/cwbudde/algo-sonify/dsp/spectrum"
	"github.com/cwbudde/algo-sonify/dsp/window"
)

// FundamentalFrequency extracts the base pitch of a series from its power
// spectrum.
//
// The series is Hann-windowed to reduce spectral leakage, transformed with
// a zero-padded FFT, and reduced to the non-negative-frequency power
// spectrum. Among all bins strictly above 15% of the peak power, the one
// with the lowest frequency wins; this deliberately favors a low fundamental
// over stronger harmonics. The result is clamped to [80, 2000] Hz.
//
// When no bin clears the threshold (empty, constant-zero, or
// missing-value-contaminated spectra) a warning is logged and the 440 Hz
// default is returned. An error is returned only for FFT backend failures.
func (s *Sonifier) FundamentalFrequency(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		s.cfg.Logger.Warnf("spectral: empty series, using default %.1f Hz", defaultFundamentalHz)
		return defaultFundamentalHz, nil
	}

	windowed := window.Apply(window.TypeHann, values)

	fftSize := nextPowerOf2(n)
	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("spectral: fft plan size %d: %w", fftSize, err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("spectral: fft forward: %w", err)
	}

	// Non-negative frequencies only. Bin k sits at k/fftSize cycles per
	// sample; with the source's unit sample spacing this is reported as Hz.
	power := spectrum.Power(out[:fftSize/2])

	maxPower := 0.0
	for _, p := range power {
		if !core.IsFinite(p) {
			maxPower = math.NaN()
			break
		}

		if p > maxPower {
			maxPower = p
		}
	}

	if !(maxPower > 0) {
		s.cfg.Logger.Warnf("spectral: no significant peaks in %d bins, using default %.1f Hz", len(power), defaultFundamentalHz)
		return defaultFundamentalHz, nil
	}

	threshold := peakThresholdFraction * maxPower
	for k, p := range power {
		if p > threshold {
			freq := float64(k) / float64(fftSize)
			return core.Clamp(math.Abs(freq), minFundamentalHz, maxFundamentalHz), nil
		}
	}

	s.cfg.Logger.Warnf("spectral: no bin above %.0f%% of peak power, using default %.1f Hz", peakThresholdFraction*100, defaultFundamentalHz)

	return defaultFundamentalHz, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
