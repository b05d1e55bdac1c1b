package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/parameter"
)

// sweep is a sine oscillator gliding exponentially from one frequency to another
type sweep struct {
	from, to float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewSweep creates a sine glide from `from` Hz to `to` Hz; equal endpoints give a plain tone
func NewSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.duration)
		freq := s.from * math.Pow(s.to/s.from, progress)

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error {
	return nil
}

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps inside duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
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

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error {
	return e.streamer.Err()
}

// newVolume scales s linearly; zero or negative volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateChime generates the rising arpeggio played when a board is dealt
func CreateChime(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5

	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		osc := NewSweep(f, f, parameter.ChimeNoteDuration, rate)
		parts[i] = NewEnvelope(osc, parameter.ChimeNoteDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate)
	}
	return newVolume(beep.Seq(parts...), cfg.EffectVolumes[core.SoundRegenerate]*cfg.MasterVolume)
}

// CreateSlide generates a glide down for snakes or up for ladders
func CreateSlide(cfg *Config, down bool) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	from, to := parameter.SlideLowFreq, parameter.SlideHighFreq
	st := core.SoundLadder
	if down {
		from, to = to, from
		st = core.SoundSnake
	}

	osc := NewSweep(from, to, parameter.SlideDuration, rate)
	shaped := NewEnvelope(osc, parameter.SlideDuration, parameter.SlideAttack, parameter.SlideRelease, rate)
	return newVolume(shaped, cfg.EffectVolumes[st]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for st, or nil for unknown types
func GetSoundEffect(st core.SoundType, cfg *Config) beep.Streamer {
	switch st {
	case core.SoundRegenerate:
		return CreateChime(cfg)
	case core.SoundSnake:
		return CreateSlide(cfg, true)
	case core.SoundLadder:
		return CreateSlide(cfg, false)
	default:
		return nil
	}
}
