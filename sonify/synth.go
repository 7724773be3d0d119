package sonify

import "github.com/cwbudde/algo-sonify/dsp/core"

// SynthesizeFrequencies combines the fundamental, the harmonic ratio table,
// and the modulation signal into one frequency per sample.
//
// f[i] = fundamental * HarmonicRatios[i mod 6] * (0.6 + 0.4*modulation[i]),
// clamped to [20, 5000] Hz and rounded to 2 decimals. The 0.6..1.0 envelope
// bounds the dynamic range so modulation never produces silence or extreme
// pitches.
func (s *Sonifier) SynthesizeFrequencies(fundamental float64, modulation []float64) []float64 {
	out := make([]float64, len(modulation))
	for i, m := range modulation {
		ratio := HarmonicRatios[i%len(HarmonicRatios)]
		hz := fundamental * ratio * (envelopeFloor + envelopeSpan*m)
		out[i] = core.RoundTo(core.Clamp(hz, minFrequencyHz, maxFrequencyHz), 2)
	}

	return out
}
