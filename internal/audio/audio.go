package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveSine
)

// sample returns the raw oscillator value at phase, measured in cycles.
func (w Waveform) sample(phase float64) float64 {
	switch w {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	default:
		// Square wave: positive or negative half of each cycle
		if math.Mod(phase, 1.0) > 0.5 {
			return -1
		}
		return 1
	}
}

// Envelope shapes a note's loudness over its lifetime: linear attack up
// to full level, linear decay down to the sustain level, sustain, then a
// linear release to silence at the end of the note.
type Envelope struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64
	Release time.Duration
}

// amplitude is the envelope level t into a note of total length d, in
// [0, 1] before the note volume is applied.
func (e Envelope) amplitude(t, d time.Duration) float64 {
	switch {
	case t < 0 || t >= d:
		return 0
	case t < e.Attack:
		return float64(t) / float64(e.Attack)
	case t < e.Attack+e.Decay:
		f := float64(t-e.Attack) / float64(e.Decay)
		return 1 - (1-e.Sustain)*f
	case t < d-e.Release:
		return e.Sustain
	default:
		return e.Sustain * float64(d-t) / float64(e.Release)
	}
}

// Synth plays notes with a fixed waveform and envelope.
type Synth struct {
	Waveform Waveform
	Envelope Envelope
}

// NewSynth returns the game's bounce voice: a plucky square blip.
func NewSynth() *Synth {
	return &Synth{
		Waveform: WaveSquare,
		Envelope: Envelope{
			Attack: 5 * time.Millisecond,
			Decay:  50 * time.Millisecond,
		},
	}
}

// PlayNote plays freq at the given volume for d. It is a no-op until
// Init succeeds, so a muted game skips audio setup entirely.
func (s *Synth) PlayNote(freq, volume float64, d time.Duration) {
	if !initialized {
		return
	}
	speaker.Play(s.note(freq, volume, d))
}

// note builds the streamer for one enveloped note.
func (s *Synth) note(freq, volume float64, d time.Duration) beep.Streamer {
	total := sampleRate.N(d)
	remaining := total
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, false
			}
			t := sampleRate.D(total - remaining)
			val := s.Waveform.sample(phase) * s.Envelope.amplitude(t, d) * volume
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			remaining--
		}
		return len(samples), true
	})
}
