// Package audio plays short feedback tones for editor events
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate used for every cue
const SampleRate = beep.SampleRate(44100)

// Cue timings
const (
	savedNoteDuration = 70 * time.Millisecond
	errorDuration     = 180 * time.Millisecond
	attack            = 5 * time.Millisecond
	release           = 40 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of freq Hz lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * o.phase)
		if o.wave == WaveSquare {
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration
func NewEnvelope(s beep.Streamer, duration, att, rel time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(att),
		release:  rate.N(rel),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note is a shaped sine of freq Hz
func note(freq float64, d time.Duration) beep.Streamer {
	var src beep.Streamer
	if sine, err := generators.SineTone(SampleRate, freq); err == nil {
		src = beep.Take(SampleRate.N(d), sine)
	} else {
		src = NewOscillator(freq, d, WaveSine, SampleRate)
	}
	return NewEnvelope(src, d, attack, release, SampleRate)
}

// CreateSavedSound is a rising two-note chime for a successful export
func CreateSavedSound(volume float64) beep.Streamer {
	return newVolume(beep.Seq(
		note(660, savedNoteDuration),
		note(990, savedNoteDuration),
	), volume)
}

// CreateErrorSound is a low square buzz for a failed export
func CreateErrorSound(volume float64) beep.Streamer {
	osc := NewOscillator(110, errorDuration, WaveSquare, SampleRate)
	shaped := NewEnvelope(osc, errorDuration, attack, release, SampleRate)
	return newVolume(shaped, volume*0.5)
}

// Length returns the sample count of a cue; it drains s
func Length(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}
