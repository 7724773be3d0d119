package wavio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-sonify/internal/testutil"
)

func TestStreamerDrains(t *testing.T) {
	samples := testutil.DeterministicSine(440, 44100, 1, 1000)
	s := Streamer(samples)

	buf := make([][2]float64, 512)

	n, ok := s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 512, n)
	require.Equal(t, samples[0], buf[0][0])
	require.Equal(t, buf[0][0], buf[0][1], "mono samples feed both channels")

	n, ok = s.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 488, n)

	n, ok = s.Stream(buf)
	require.False(t, ok, "drained streamer reports completion")
	require.Zero(t, n)

	require.NoError(t, s.Err())
}

func TestStreamerEmpty(t *testing.T) {
	s := Streamer(nil)

	n, ok := s.Stream(make([][2]float64, 8))
	require.False(t, ok)
	require.Zero(t, n)
}

func TestEncodeWritesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	samples := testutil.DeterministicSine(440, 8000, 0.8, 800)

	require.NoError(t, Encode(path, samples, 8000))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 44, "WAV header plus sample data")
	require.Equal(t, "RIFF", string(data[0:4]))
	require.Equal(t, "WAVE", string(data[8:12]))
}

func TestEncodeInvalidRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")

	require.Error(t, Encode(path, []float64{0}, 0))
}

func TestEncodeBadPath(t *testing.T) {
	require.Error(t, Encode(filepath.Join(t.TempDir(), "missing", "out.wav"), []float64{0}, 8000))
}
