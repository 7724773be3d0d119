package sonify

import (
	"math"

	"github.com/cwbudde/algo-sonify/dsp/core"
)

// ToneSamples returns the per-tone sample count for the configured sample
// rate and tone duration.
func (s *Sonifier) ToneSamples() int {
	return int(s.cfg.SampleRate * s.cfg.ToneDuration)
}

// RenderTones synthesizes one fixed-duration sine tone per frequency and
// concatenates them in sequence order.
//
// Frequencies below 20 Hz are inaudible and skipped entirely, without
// inserting silence, so the waveform is shorter than len(freqs) tones
// whenever skips occur. A non-finite frequency is logged and skipped; it
// never aborts the render.
func (s *Sonifier) RenderTones(freqs []float64) []float64 {
	samplesPerTone := s.ToneSamples()
	out := make([]float64, 0, samplesPerTone*len(freqs))

	for i, hz := range freqs {
		if !core.IsFinite(hz) {
			s.cfg.Logger.Errorf("tone: skipping invalid frequency %v at index %d", hz, i)
			continue
		}

		if hz < minFrequencyHz {
			continue
		}

		step := 2 * math.Pi * hz / s.cfg.SampleRate
		for j := 0; j < samplesPerTone; j++ {
			out = append(out, s.cfg.Amplitude*math.Sin(step*float64(j)))
		}
	}

	return out
}
