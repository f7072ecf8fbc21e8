package character

import (
	"math"

	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	strideRate  = 3.2 // phase radians per unit travelled
	strideSpeed = 4.0 // speed at which the swing is fully open
	maxSwing    = 0.45
	hipWidth    = 0.18
	hipDrop     = 0.3
)

// Gait animates the visual legs of a rig whose legs are not simulated. It is
// advanced from the torso's horizontal speed.
type Gait struct {
	Phase float32
	Swing float32
}

func (g *Gait) Advance(velocity rl.Vector3, dt float32) {
	speed := float32(math.Hypot(float64(velocity.X), float64(velocity.Z)))
	g.Phase = float32(math.Mod(float64(g.Phase+speed*dt*strideRate), 2*math.Pi))
	target := min(speed/strideSpeed, 1) * maxSwing
	g.Swing += (target - g.Swing) * 0.2
}

// Leg holds world-space joint positions for drawing.
type Leg struct {
	Hip, Knee, Foot rl.Vector3
}

// Legs returns the left and right leg under torso. The legs hang in the
// heading frame so they stay vertical while the torso wobbles.
func (g *Gait) Legs(torso *physics.Body, standHeight float32) [2]Leg {
	heading := physics.YawRotation(physics.Yaw(torso.Orientation))
	var legs [2]Leg
	for i, side := range [2]float32{1, -1} {
		step := float32(math.Sin(float64(g.Phase) + float64(i)*math.Pi))
		lift := max(0, float32(math.Cos(float64(g.Phase)+float64(i)*math.Pi))) * g.Swing * 0.3

		hip := rl.Vector3{X: side * hipWidth, Y: -hipDrop}
		foot := rl.Vector3{X: side * hipWidth, Y: -standHeight + lift, Z: step * g.Swing}
		knee := rl.Vector3Lerp(hip, foot, 0.5)
		knee.Z += 0.12 + lift

		legs[i] = Leg{
			Hip:  rl.Vector3Add(torso.Position, rl.Vector3RotateByQuaternion(hip, heading)),
			Knee: rl.Vector3Add(torso.Position, rl.Vector3RotateByQuaternion(knee, heading)),
			Foot: rl.Vector3Add(torso.Position, rl.Vector3RotateByQuaternion(foot, heading)),
		}
	}
	return legs
}
