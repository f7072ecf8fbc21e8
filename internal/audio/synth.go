package audio

import (
	"math"
	"math/rand"
	"sync"
)

const SampleRate = 44100

// Cue is one of the procedurally generated combat sounds.
type Cue int

const (
	CueHit Cue = iota
	CueHeavyHit
	CueKnockout
	CueThrow
	CueThud
	CueBoost
	CueWake
	cueCount
)

var cueNames = [...]string{"hit", "heavy-hit", "knockout", "throw", "thud", "boost", "wake"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// voice describes a cue as a decaying tone with a pitch sweep and a noise
// burst layered on top.
type voice struct {
	duration  float64 // seconds
	startFreq float64
	endFreq   float64
	decay     float64 // amplitude e-folds per second
	noise     float64 // noise mix 0..1
	gain      float64
}

var voices = [cueCount]voice{
	CueHit:      {duration: 0.12, startFreq: 220, endFreq: 90, decay: 35, noise: 0.6, gain: 0.8},
	CueHeavyHit: {duration: 0.22, startFreq: 160, endFreq: 50, decay: 20, noise: 0.7, gain: 1.0},
	CueKnockout: {duration: 0.6, startFreq: 440, endFreq: 110, decay: 5, noise: 0.1, gain: 0.7},
	CueThrow:    {duration: 0.35, startFreq: 300, endFreq: 700, decay: 8, noise: 0.5, gain: 0.5},
	CueThud:     {duration: 0.15, startFreq: 80, endFreq: 40, decay: 30, noise: 0.4, gain: 0.6},
	CueBoost:    {duration: 0.5, startFreq: 330, endFreq: 990, decay: 4, noise: 0, gain: 0.5},
	CueWake:     {duration: 0.25, startFreq: 260, endFreq: 520, decay: 10, noise: 0, gain: 0.4},
}

// Synthesize renders cue as mono samples in [-1, 1]. The output is the same
// for every call with the same cue.
func Synthesize(c Cue) []float32 {
	if c < 0 || c >= cueCount {
		return nil
	}
	v := voices[c]
	n := int(v.duration * SampleRate)
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(int64(c) + 1))

	phase := 0.0
	for i := range out {
		t := float64(i) / SampleRate
		frac := t / v.duration
		freq := v.startFreq + (v.endFreq-v.startFreq)*frac
		phase += 2 * math.Pi * freq / SampleRate

		tone := math.Sin(phase)
		noise := rng.Float64()*2 - 1
		env := math.Exp(-v.decay * t)
		// Short attack ramp to avoid a click.
		if attack := 0.004; t < attack {
			env *= t / attack
		}
		s := ((1-v.noise)*tone + v.noise*noise) * env * v.gain
		out[i] = float32(math.Max(-1, math.Min(1, s)))
	}
	return out
}

var (
	bank     [cueCount][]float32
	bankOnce [cueCount]sync.Once
)

// samples returns the cached rendering of c.
func samples(c Cue) []float32 {
	bankOnce[c].Do(func() { bank[c] = Synthesize(c) })
	return bank[c]
}
