package audio

import (
	"brawler/internal/character"
)

// heavyDamage is the hit damage at which the heavier hit cue plays.
const heavyDamage = 28

// CueFor maps a combat event to a cue and an intensity. ok is false for
// events that make no sound.
func CueFor(e character.Event) (c Cue, intensity float32, ok bool) {
	switch e.Kind {
	case character.EventHit:
		if e.Amount >= heavyDamage {
			return CueHeavyHit, 1, true
		}
		return CueHit, min(0.4+e.Amount/40, 1), true
	case character.EventKnockedOut:
		return CueKnockout, 1, true
	case character.EventWokeUp:
		return CueWake, 0.8, true
	case character.EventThrown:
		return CueThrow, 1, true
	case character.EventBoosted:
		return CueBoost, 1, true
	}
	return 0, 0, false
}

// ThudIntensity scales a body-on-platform impact speed into a thud
// intensity. Soft contacts return 0.
func ThudIntensity(speed float32) float32 {
	const soft, hard = 3, 12
	if speed < soft {
		return 0
	}
	return min((speed-soft)/(hard-soft), 1)
}
