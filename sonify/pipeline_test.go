package sonify

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sonify/internal/testutil"
	"github.com/cwbudde/algo-sonify/series"
)

func TestRunEndToEnd(t *testing.T) {
	s := New(WithLogger(NopLogger()))

	res, err := s.Run([]float64{100, 101, 99, 99, 105})
	require.NoError(t, err)

	require.Len(t, res.Rows, 5, "one table row per input sample")
	require.Equal(t, 80.0, res.FundamentalHz)

	require.Equal(t, 0.0, res.Rows[0].Change)
	require.InDelta(t, 0.01, res.Rows[1].Change, 1e-12)
	require.InDelta(t, 0.060606, res.Rows[4].Change, 1e-6)

	for i, row := range res.Rows {
		require.Equal(t, i, row.Index)
		require.GreaterOrEqual(t, row.FrequencyHz, 20.0)
		require.LessOrEqual(t, row.FrequencyHz, 5000.0)
		require.NotEmpty(t, row.Note)
	}

	// All five frequencies are audible, so the waveform covers five tones.
	require.Len(t, res.Waveform, 5*s.ToneSamples())
}

func TestRunRowsMatchStageOutputs(t *testing.T) {
	s := New(WithLogger(NopLogger()))

	values := testutil.Ramp(50, 1.5, 24)

	res, err := s.Run(values)
	require.NoError(t, err)

	changes := series.PctChange(values)
	mod := s.NormalizeChanges(changes)
	freqs := s.SynthesizeFrequencies(res.FundamentalHz, mod)
	notes := s.QuantizePitches(freqs)

	for i, row := range res.Rows {
		require.Equal(t, changes[i], row.Change)
		require.Equal(t, freqs[i], row.FrequencyHz)
		require.Equal(t, notes[i], row.Note)
	}
}

func TestRunSingleSample(t *testing.T) {
	s := New(WithLogger(NopLogger()))

	res, err := s.Run([]float64{42})
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	require.Equal(t, 440.0, res.FundamentalHz, "degenerate spectrum falls back to 440 Hz")

	// Zero change maps to the 0.4 band midpoint: 440 * 1.0 * 0.76.
	require.Equal(t, 334.40, res.Rows[0].FrequencyHz)
	require.Equal(t, "E4", res.Rows[0].Note)
	require.Len(t, res.Waveform, s.ToneSamples())
}

func TestRunRejectsInvalidSeries(t *testing.T) {
	s := New(WithLogger(NopLogger()))

	_, err := s.Run(nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, series.ErrNoValidSamples))

	_, err = s.Run([]float64{math.NaN(), math.NaN()})
	require.True(t, errors.Is(err, series.ErrNoValidSamples))
}

func TestRunZeroSeriesUsesDefaultFundamental(t *testing.T) {
	logger := &captureLogger{}
	s := New(WithLogger(logger))

	res, err := s.Run(testutil.DC(0, 8))
	require.NoError(t, err)
	require.Equal(t, 440.0, res.FundamentalHz)
	require.NotEmpty(t, logger.warns, "degenerate spectrum must be logged")
}

func TestRunWaveformSkipRule(t *testing.T) {
	s := New(WithLogger(NopLogger()))

	// Sub-audible entries stay in the table but not in the waveform.
	freqs := []float64{19.99, 440, 19.99, 880}
	notes := s.QuantizePitches(freqs)
	wave := s.RenderTones(freqs)

	require.Len(t, notes, 4)
	require.Len(t, wave, 2*s.ToneSamples())
}

func TestRunOneShot(t *testing.T) {
	res, err := Run(testutil.Ramp(10, 0.1, 12), WithLogger(NopLogger()), WithSampleRate(8000))
	require.NoError(t, err)
	require.Len(t, res.Rows, 12)
	require.Equal(t, 12*1200, len(res.Waveform)) // 8000 * 0.15 per tone
}
