// Package wavio persists and plays mono float64 waveforms.
//
// Waveforms are adapted onto beep streamers, so encoding and playback reuse
// the beep/oto audio stack instead of a hand-rolled WAV writer.
package wavio

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const bytesPerSample = 2 // 16-bit PCM

// Streamer adapts a mono sample slice as a finite beep.Streamer.
func Streamer(samples []float64) beep.Streamer {
	return &sliceStreamer{samples: samples}
}

type sliceStreamer struct {
	samples []float64
	pos     int
}

func (s *sliceStreamer) Stream(out [][2]float64) (int, bool) {
	if s.pos >= len(s.samples) {
		return 0, false
	}

	n := 0
	for i := range out {
		if s.pos >= len(s.samples) {
			break
		}

		v := s.samples[s.pos]
		out[i][0] = v
		out[i][1] = v
		s.pos++
		n++
	}

	return n, true
}

func (s *sliceStreamer) Err() error { return nil }

// Encode writes samples as a 16-bit mono WAV file at the given sample rate.
func Encode(path string, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("wav encode: sample rate must be > 0: %d", sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav encode: %w", err)
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   bytesPerSample,
	}

	if err := wav.Encode(f, Streamer(samples), format); err != nil {
		f.Close()
		return fmt.Errorf("wav encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("wav encode %s: %w", path, err)
	}

	return nil
}

// Play renders samples through the default speaker and blocks until done.
func Play(samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("playback: sample rate must be > 0: %d", sampleRate)
	}

	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("playback init: %w", err)
	}
	defer speaker.Close()

	done := make(chan struct{})
	speaker.Play(beep.Seq(Streamer(samples), beep.Callback(func() {
		close(done)
	})))
	<-done

	return nil
}
