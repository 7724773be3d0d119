package sonify

import (
	"math"
	"strconv"

	"github.com/cwbudde/algo-sonify/dsp/core"
)

var noteNames = [12]string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}

// HzToMIDI converts a frequency to a continuous MIDI number, referenced to
// A4 = 440 Hz = MIDI 69.
func HzToMIDI(hz float64) float64 {
	return 69 + 12*math.Log2(hz/440)
}

// NoteName returns the 12-tone equal temperament name of a non-negative
// integer MIDI number, with C-1 = MIDI 0 (so 69 is "A4").
func NoteName(midi int) string {
	return noteNames[midi%12] + strconv.Itoa(midi/12-1)
}

// QuantizePitches maps each frequency to the name of the nearest-below
// piano pitch.
//
// MIDI numbers are clamped to the piano range [21, 108] and truncated, not
// rounded. A frequency that cannot be converted (zero, negative, or
// non-finite) is logged and substituted with "A4"; the rest of the sequence
// is unaffected.
func (s *Sonifier) QuantizePitches(freqs []float64) []string {
	notes := make([]string, len(freqs))
	for i, hz := range freqs {
		midi := HzToMIDI(hz)
		if !core.IsFinite(midi) {
			s.cfg.Logger.Errorf("pitch: cannot convert %v Hz at index %d, substituting %s", hz, i, fallbackNote)
			notes[i] = fallbackNote
			continue
		}

		n := int(math.Trunc(core.Clamp(midi, minMIDINote, maxMIDINote)))
		notes[i] = NoteName(n)
	}

	return notes
}
