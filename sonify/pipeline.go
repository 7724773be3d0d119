package sonify

import (
	"github.com/cwbudde/algo-sonify/series"
)

// Row is one table entry of the sonification result.
type Row struct {
	Index       int
	Change      float64
	FrequencyHz float64
	Note        string
}

// Result holds the outputs of one pipeline run. Rows always has one entry
// per input sample; Waveform only covers frequencies at or above 20 Hz.
type Result struct {
	FundamentalHz float64
	Rows          []Row
	Waveform      []float64
}

// Run sonifies one series end to end.
//
// A series without a single valid sample fails before any stage runs.
// Element-level conversion failures are recovered per element and logged;
// only FFT backend failures abort the invocation.
func (s *Sonifier) Run(values []float64) (*Result, error) {
	if err := series.Validate(values); err != nil {
		return nil, err
	}

	changes := series.PctChange(values)

	fundamental, err := s.FundamentalFrequency(values)
	if err != nil {
		return nil, err
	}

	s.cfg.Logger.Infof("fundamental frequency: %.2f Hz", fundamental)

	modulation := s.NormalizeChanges(changes)
	freqs := s.SynthesizeFrequencies(fundamental, modulation)
	notes := s.QuantizePitches(freqs)
	waveform := s.RenderTones(freqs)

	rows := make([]Row, len(values))
	for i := range rows {
		rows[i] = Row{
			Index:       i,
			Change:      changes[i],
			FrequencyHz: freqs[i],
			Note:        notes[i],
		}
	}

	return &Result{
		FundamentalHz: fundamental,
		Rows:          rows,
		Waveform:      waveform,
	}, nil
}

// Run is a one-shot sonification of a series with the given options.
func Run(values []float64, opts ...Option) (*Result, error) {
	return New(opts...).Run(values)
}
