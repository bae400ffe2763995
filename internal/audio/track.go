// Package audio plays procedural chapter music with gopxl/beep.
//
// Each chapter theme maps to a looping track synthesized on the fly. The
// Jukebox listens to session events and crossfades between tracks on
// chapter changes, pauses with the game and fades out at game over.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape of a track's lead voice.
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSquare
)

// Track is a looping melody: one note per step, MIDI note numbers, 0 is a rest.
type Track struct {
	Notes []int
	Step  time.Duration
	Wave  Wave
	Bass  int // MIDI drone note under the melody, 0 for none
}

// Tracks per chapter theme.
var Tracks = map[string]Track{
	"meadow": {
		Notes: []int{67, 71, 74, 71, 72, 76, 74, 0, 67, 69, 71, 74, 72, 71, 69, 0},
		Step:  220 * time.Millisecond,
		Wave:  WaveSine,
		Bass:  43,
	},
	"frost": {
		Notes: []int{76, 0, 79, 83, 81, 0, 76, 74, 76, 0, 72, 74, 71, 0, 0, 0},
		Step:  260 * time.Millisecond,
		Wave:  WaveTriangle,
		Bass:  40,
	},
	"ember": {
		Notes: []int{57, 60, 64, 60, 62, 65, 69, 65, 64, 67, 71, 67, 69, 0, 64, 0},
		Step:  170 * time.Millisecond,
		Wave:  WaveSquare,
		Bass:  33,
	},
	"void": {
		Notes: []int{50, 0, 0, 53, 0, 0, 49, 0, 50, 0, 0, 56, 0, 0, 0, 0},
		Step:  320 * time.Millisecond,
		Wave:  WaveTriangle,
		Bass:  26,
	},
	"classic": {
		Notes: []int{72, 76, 79, 76, 74, 77, 81, 77},
		Step:  180 * time.Millisecond,
		Wave:  WaveSquare,
	},
}

// TrackFor returns the track of a theme, falling back to the meadow track.
func TrackFor(theme string) Track {
	if t, ok := Tracks[theme]; ok {
		return t
	}
	return Tracks["meadow"]
}

// NoteFreq returns the frequency in Hz of a MIDI note, A4 (69) = 440Hz.
func NoteFreq(midi int) float64 {
	if midi <= 0 || midi >= 128 {
		return 0
	}
	return 440 * math.Pow(2, float64(midi-69)/12)
}

// trackStreamer synthesizes a Track forever. It never drains.
type trackStreamer struct {
	track     Track
	rate      beep.SampleRate
	stepLen   int
	pos       int
	phase     float64
	bassPhase float64
}

// NewTrackStreamer returns an endless streamer playing t at rate.
func NewTrackStreamer(t Track, rate beep.SampleRate) beep.Streamer {
	return &trackStreamer{
		track:   t,
		rate:    rate,
		stepLen: max(1, rate.N(t.Step)),
	}
}

func (s *trackStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if len(s.track.Notes) == 0 {
		clear(samples)
		return len(samples), true
	}
	bassFreq := NoteFreq(s.track.Bass)
	for i := range samples {
		step := s.pos / s.stepLen
		within := s.pos % s.stepLen
		freq := NoteFreq(s.track.Notes[step%len(s.track.Notes)])

		// Short attack and a linear decay over the step avoid clicks.
		env := math.Min(float64(within)/float64(s.rate.N(5*time.Millisecond)+1), 1)
		env *= 1 - 0.7*float64(within)/float64(s.stepLen)

		var val float64
		if freq > 0 {
			val = 0.5 * env * oscillate(s.track.Wave, s.phase)
			s.phase = advance(s.phase, freq, s.rate)
		}
		if bassFreq > 0 {
			val += 0.2 * math.Sin(2*math.Pi*s.bassPhase)
			s.bassPhase = advance(s.bassPhase, bassFreq, s.rate)
		}

		samples[i][0] = val
		samples[i][1] = val
		s.pos++
	}
	return len(samples), true
}

func (s *trackStreamer) Err() error { return nil }

func oscillate(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 0.6
		}
		return -0.6
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func advance(phase, freq float64, rate beep.SampleRate) float64 {
	phase += freq / float64(rate)
	return phase - math.Floor(phase)
}
