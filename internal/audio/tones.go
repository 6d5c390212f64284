package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// waveType defines oscillator wave shapes.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

// oscillator generates a raw waveform of fixed length with a linear
// fade-out to avoid clicks, optionally sweeping frequency.
type oscillator struct {
	freq     float64
	sweep    float64 // Hz change per second, negative for falling pitch
	phase    float64
	duration int
	position int
	volume   float64
	wave     waveType
}

func newTone(freq, sweep float64, d time.Duration, wave waveType, volume float64) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: sampleRate.N(d),
		volume:   volume,
		wave:     wave,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		// Linear fade-out over the last quarter.
		fade := 1.0
		if rem := o.duration - o.position; rem < o.duration/4 {
			fade = float64(rem) / float64(o.duration/4)
		}
		val *= o.volume * fade

		samples[i][0] = val
		samples[i][1] = val

		o.freq += o.sweep / float64(sampleRate)
		o.phase += o.freq / float64(sampleRate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// loopStreamer replays a cue forever by rebuilding it each time it
// drains. Generated tones are plain Streamers with no Seek, so looping
// is done by construction rather than with beep.Loop.
type loopStreamer struct {
	build func() beep.Streamer
	cur   beep.Streamer
	fresh bool
}

func newLoop(build func() beep.Streamer) beep.Streamer {
	return &loopStreamer{build: build, cur: build(), fresh: true}
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		sn, sok := l.cur.Stream(samples[n:])
		n += sn
		if sok {
			l.fresh = false
			continue
		}
		if sn == 0 && l.fresh {
			// A cue that yields no samples must end, not spin.
			return n, n > 0
		}
		l.cur = l.build()
		l.fresh = true
	}
	return n, true
}

func (l *loopStreamer) Err() error { return nil }

// cueStreamer builds the waveform for a cue. New streamers are built
// per play; they are cheap and carry their own playback position.
func cueStreamer(c Cue) beep.Streamer {
	switch c {
	case CueShot:
		return newTone(880, -4000, 60*time.Millisecond, waveSquare, 0.25)
	case CueDamaged:
		return newTone(220, -300, 180*time.Millisecond, waveSquare, 0.35)
	case CueExplosion:
		return newTone(0, 0, 350*time.Millisecond, waveNoise, 0.5)
	case CueRedAlert:
		return beep.Seq(
			newTone(600, 0, 250*time.Millisecond, waveSine, 0.4),
			newTone(450, 0, 250*time.Millisecond, waveSine, 0.4),
		)
	}
	return beep.Silence(0)
}
