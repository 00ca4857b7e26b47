package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/humblebee/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one frequency to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	sweep := 0.0
	if duration > 0 {
		sweep = (to - from) / duration.Seconds()
	}
	return &oscillator{
		freq:     from,
		sweep:    sweep,
		duration: samples,
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(samples))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound generators

// CreateFlapSound generates a short upward chirp for a jump
func CreateFlapSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(520, 980, constants.FlapSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.FlapSoundDuration, constants.FlapSoundAttack, constants.FlapSoundRelease, rate)
	return newVolume(shaped, 0.35)
}

// CreateCrashSound generates a falling buzz over noise for the game over
func CreateCrashSound(rate beep.SampleRate) beep.Streamer {
	buzz := NewSweep(220, 55, constants.CrashSoundDuration, WaveSaw, rate)
	buzzShaped := NewEnvelope(buzz, constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease, rate)

	noise := NewOscillator(0, constants.CrashSoundDuration/2, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.CrashSoundDuration/2, constants.CrashSoundAttack, constants.CrashSoundDuration/3, rate)

	mixed := beep.Mix(
		newVolume(buzzShaped, 0.55),
		newVolume(noiseShaped, 0.35),
	)
	return beep.Take(rate.N(constants.CrashSoundDuration), mixed)
}

// GrooveGenerator generates a kick and bass loop at 100 BPM
type GrooveGenerator struct {
	sr      beep.SampleRate
	pos     int
	beat    int
	kick    int
	samples int
}

// NewGrooveGenerator creates a groove generator lasting GrooveBars beats
func NewGrooveGenerator(sr beep.SampleRate) *GrooveGenerator {
	beat := sr.N(constants.GrooveBeat)
	return &GrooveGenerator{
		sr:      sr,
		beat:    beat,
		kick:    sr.N(constants.GrooveKick),
		samples: beat * constants.GrooveBars,
	}
}

// bassLine is the root note per beat, in Hz
var bassLine = [constants.GrooveBars]float64{110, 110, 146.83, 130.81, 110, 110, 164.81, 146.83}

func (g *GrooveGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		beatIdx := g.pos / g.beat
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.sr)

		// Kick drum on every beat
		kick := 0.0
		if beatPos < g.kick {
			kickEnv := 1.0 - float64(beatPos)/float64(g.kick)
			kickFreq := 60 * (1 + 2*kickEnv)
			kick = 0.4 * kickEnv * math.Sin(2*math.Pi*kickFreq*t)
		}

		// Plucked bass decaying over the beat
		bassEnv := math.Exp(-t * 4)
		bass := 0.2 * bassEnv * math.Sin(2*math.Pi*bassLine[beatIdx]*t)

		// Off-beat hat
		hat := 0.0
		half := g.beat / 2
		if beatPos >= half && beatPos < half+g.kick/4 {
			hat = 0.05 * math.Sin(2*math.Pi*7000*t)
		}

		sample := kick + bass + hat
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *GrooveGenerator) Err() error {
	return nil
}

// Synth renders the built-in sounds by generator name for the asset store
func Synth(name string, format beep.Format) (beep.Streamer, error) {
	rate := format.SampleRate
	switch name {
	case "flap":
		return CreateFlapSound(rate), nil
	case "crash":
		return CreateCrashSound(rate), nil
	case "groove":
		return NewGrooveGenerator(rate), nil
	default:
		return nil, fmt.Errorf("unknown synth %q", name)
	}
}
