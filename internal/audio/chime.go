// Package audio synthesizes and plays the end-of-period chime.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	noteDuration = 220 * time.Millisecond
	noteAttack   = 10 * time.Millisecond
	noteRelease  = 160 * time.Millisecond
)

// chimeNotes is an A major arpeggio (A5, C#6, E6).
var chimeNotes = []float64{880.0, 1108.73, 1318.51}

// ChimeLength returns the playing time of the chime.
func ChimeLength() time.Duration {
	return time.Duration(len(chimeNotes)) * noteDuration
}

// Chime returns the alarm streamer: a bell-like arpeggio scaled by volume (0..1).
func Chime(rate beep.SampleRate, volume float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for _, freq := range chimeNotes {
		notes = append(notes, bell(rate, freq))
	}
	return withVolume(beep.Seq(notes...), volume)
}

func bell(rate beep.SampleRate, freq float64) beep.Streamer {
	return newEnvelope(newBellTone(freq, noteDuration, rate), noteDuration, noteAttack, noteRelease, rate)
}

// bellTone is a sine with an octave overtone mixed in at 30%.
type bellTone struct {
	freq     float64
	phase    float64
	samples  int
	position int
	rate     beep.SampleRate
}

func newBellTone(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &bellTone{
		freq:    freq,
		samples: rate.N(duration),
		rate:    rate,
	}
}

func (s *bellTone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.samples {
			return i, i > 0
		}
		value := 0.7*math.Sin(2*math.Pi*s.phase) + 0.3*math.Sin(4*math.Pi*s.phase)
		samples[i][0] = value
		samples[i][1] = value

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *bellTone) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		gain := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			gain = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			gain = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	if volume > 1 {
		volume = 1
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
