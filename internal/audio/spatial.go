package audio

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	headShadow  = 0.7 // far ear loses up to this fraction
	refDistance = 2.0 // full volume inside this radius
)

// Listener represents the audio listener position and orientation
type Listener struct {
	Position rl.Vector3
	Forward  rl.Vector3
	Right    rl.Vector3
}

// NewListener builds a listener from a camera-style position, forward and up.
func NewListener(pos, forward, up rl.Vector3) Listener {
	l := Listener{Position: pos, Forward: rl.Vector3{Z: -1}, Right: rl.Vector3{X: 1}}
	if n := rl.Vector3Length(forward); n > 0.001 {
		l.Forward = rl.Vector3Scale(forward, 1/n)
	}
	// Right = forward × up
	right := rl.Vector3CrossProduct(l.Forward, up)
	if n := rl.Vector3Length(right); n > 0.001 {
		l.Right = rl.Vector3Scale(right, 1/n)
	}
	return l
}

// Spatialize returns left and right gains for a sound at pos. Distance
// falls off with the inverse square past refDistance and fades to zero over
// the last fifth of maxDistance. Panning attenuates the far ear.
func Spatialize(l Listener, pos rl.Vector3, maxDistance float32) (left, right float32) {
	to := rl.Vector3Subtract(pos, l.Position)
	dist := rl.Vector3Length(to)

	att := float32(1)
	if dist > refDistance {
		r := refDistance / dist
		att = r * r
	}
	if fadeStart := maxDistance * 0.8; dist > fadeStart {
		att *= max(0, 1-(dist-fadeStart)/(maxDistance*0.2))
	}

	var pan float32
	if dist > 0.001 {
		pan = rl.Vector3DotProduct(rl.Vector3Scale(to, 1/dist), l.Right)
		// Sounds behind are slightly quieter.
		if front := rl.Vector3DotProduct(rl.Vector3Scale(to, 1/dist), l.Forward); front < 0 {
			att *= 0.7 + 0.3*float32(math.Abs(float64(front)))
		}
	}

	left, right = att, att
	if pan > 0 {
		left *= 1 - headShadow*pan
	} else {
		right *= 1 + headShadow*pan
	}
	return left, right
}
