package sonify

import (
	"math"
	"testing"
)

func TestHzToMIDI(t *testing.T) {
	if got := HzToMIDI(440); math.Abs(got-69) > 1e-12 {
		t.Fatalf("HzToMIDI(440)=%f want=69", got)
	}

	if got := HzToMIDI(880); math.Abs(got-81) > 1e-12 {
		t.Fatalf("HzToMIDI(880)=%f want=81", got)
	}

	if got := HzToMIDI(220); math.Abs(got-57) > 1e-12 {
		t.Fatalf("HzToMIDI(220)=%f want=57", got)
	}
}

func TestNoteName(t *testing.T) {
	cases := []struct {
		midi int
		want string
	}{
		{21, "A0"},
		{60, "C4"},
		{61, "C♯4"},
		{69, "A4"},
		{108, "C8"},
	}

	for _, c := range cases {
		if got := NoteName(c.midi); got != c.want {
			t.Fatalf("NoteName(%d)=%q want=%q", c.midi, got, c.want)
		}
	}
}

func TestQuantizePitches(t *testing.T) {
	s := New(WithLogger(NopLogger()))

	got := s.QuantizePitches([]float64{440, 334.40, 261.63})
	want := []string{"A4", "E4", "C4"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("note[%d]=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestQuantizePitchesTruncatesAtRange(t *testing.T) {
	s := New(WithLogger(NopLogger()))

	// 4500 Hz is MIDI ~109.3: clamped to 108, then truncated, never above C8.
	high := s.QuantizePitches([]float64{4500})
	if high[0] != "C8" {
		t.Fatalf("high note=%q want=C8", high[0])
	}

	// 20 Hz is MIDI ~15.5: clamped up to the A0 piano floor.
	low := s.QuantizePitches([]float64{20})
	if low[0] != "A0" {
		t.Fatalf("low note=%q want=A0", low[0])
	}
}

func TestQuantizePitchesTruncatesNotRounds(t *testing.T) {
	s := New(WithLogger(NopLogger()))

	// 445 Hz is MIDI 69.2, 460 Hz is MIDI 69.77: both truncate to A4.
	got := s.QuantizePitches([]float64{445, 460})
	for i, note := range got {
		if note != "A4" {
			t.Fatalf("note[%d]=%q want=A4", i, note)
		}
	}
}

func TestQuantizePitchesPerElementFallback(t *testing.T) {
	logger := &captureLogger{}
	s := New(WithLogger(logger))

	got := s.QuantizePitches([]float64{440, math.NaN(), 0, -5, 880})
	want := []string{"A4", "A4", "A4", "A4", "A5"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("note[%d]=%q want=%q", i, got[i], want[i])
		}
	}

	if len(logger.errors) != 3 {
		t.Fatalf("expected 3 conversion errors, got %d: %v", len(logger.errors), logger.errors)
	}
}

func TestQuantizePitchesLengthPreserved(t *testing.T) {
	s := New(WithLogger(NopLogger()))

	freqs := make([]float64, 17)
	for i := range freqs {
		freqs[i] = 100 + float64(i)*50
	}

	if got := s.QuantizePitches(freqs); len(got) != len(freqs) {
		t.Fatalf("length %d want %d", len(got), len(freqs))
	}
}
