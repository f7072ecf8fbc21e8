package character

import (
	"math"

	"brawler/internal/config"
	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var down = rl.Vector3{Y: -1}

// Balance keeps an active character standing: it holds the main body at
// standing height over the surface below, keeps jointed upright parts in
// their pose around it, pulls upright parts back to vertical and settles idle
// limbs into their rest pose.
type Balance struct {
	tuning *config.BalanceTuning
}

func (b *Balance) Apply(c *Character) {
	if c.posture != PostureActive || !c.alive {
		return
	}
	airborne := c.attack != nil && c.attack.kind.airborne()

	if !airborne {
		b.holdHeight(c)
	}
	b.holdPose(c.rig, b.tuning.PoseHold)
	b.keepUpright(c.rig, airborne)
	if c.attack == nil {
		b.settleLimbs(c.rig)
	}
	b.steadyHead(c.rig)
}

// holdHeight probes for the surface under the main body. Off the platform
// nothing is applied so the character falls.
func (b *Balance) holdHeight(c *Character) {
	t := b.tuning
	main := c.rig.Main()
	hit, ok := c.world.Raycast(main.Position, down, t.ProbeDistance, (*physics.Body).IsStatic)
	if !ok {
		return
	}
	target := hit.Point.Y + c.rig.StandHeight()
	if main.Position.Y >= target+t.GroundBand {
		return
	}

	diff := target - main.Position.Y
	mass := c.rig.TotalMass()
	switch {
	case diff > t.Deadband:
		main.ApplyCentralForce(rl.Vector3{Y: diff * t.UpGain * c.Speed * mass})
	case diff < -t.Deadband:
		main.ApplyCentralForce(rl.Vector3{Y: diff * t.DownGain * mass})
	}
	main.Velocity.Y = clamp(main.Velocity.Y, t.MinVerticalVel, t.MaxVerticalVel)
}

// holdPose moves each posed part a fraction k of the way back to its rest
// offset from the main body and removes the same share of its velocity
// relative to the main body.
func (b *Balance) holdPose(r Rig, k float32) {
	if k <= 0 {
		return
	}
	main := r.Main()
	heading := physics.YawRotation(physics.Yaw(main.Orientation))
	for p, rest := range r.PoseRests() {
		body := r.Part(p)
		if body == nil || body == main {
			continue
		}
		target := rl.Vector3Add(main.Position, rl.Vector3RotateByQuaternion(rest, heading))
		body.Position = rl.Vector3Lerp(body.Position, target, k)
		rel := rl.Vector3Subtract(body.Velocity, main.Velocity)
		body.Velocity = rl.Vector3Add(main.Velocity, rl.Vector3Scale(rel, 1-k))
	}
}

// stand lifts a downed rig so its main body is back at standing height over
// the surface below and snaps the posed parts into place.
func (b *Balance) stand(c *Character) {
	main := c.rig.Main()
	origin := rl.Vector3Add(main.Position, rl.Vector3{Y: 1})
	if hit, ok := c.world.Raycast(origin, down, b.tuning.ProbeDistance+1, (*physics.Body).IsStatic); ok {
		if lift := hit.Point.Y + c.rig.StandHeight() - main.Position.Y; lift > 0 {
			c.rig.Translate(rl.Vector3{Y: lift})
		}
	}
	b.holdPose(c.rig, 1)
}

func (b *Balance) keepUpright(r Rig, airborne bool) {
	t := b.tuning
	critical := t.CriticalTilt * math.Pi / 180
	for _, p := range r.UprightParts() {
		body := r.Part(p)
		if body == nil {
			continue
		}
		av := body.AngularVelocity
		av.X *= t.AngularDamp
		av.Z *= t.AngularDamp
		av.Y *= t.YawDamp

		q := body.Orientation
		if !airborne {
			q.X -= q.X * t.Blend
			q.Z -= q.Z * t.Blend
			q = rl.QuaternionNormalize(q)
		}
		if physics.TiltAngle(q) > critical {
			q = physics.YawRotation(physics.Yaw(q))
			av.X, av.Z = 0, 0
		}
		body.Orientation = q
		body.AngularVelocity = av
	}
}

// settleLimbs damps each limb relative to the main body and springs it toward
// its rest offset in the heading frame.
func (b *Balance) settleLimbs(r Rig) {
	t := b.tuning
	main := r.Main()
	heading := physics.YawRotation(physics.Yaw(main.Orientation))
	for p, rest := range r.LimbRests() {
		body := r.Part(p)
		if body == nil {
			continue
		}
		rel := rl.Vector3Subtract(body.Velocity, main.Velocity)
		body.Velocity = rl.Vector3Add(main.Velocity, rl.Vector3Scale(rel, t.LimbLinearDamp))
		body.AngularVelocity = rl.Vector3Scale(body.AngularVelocity, t.LimbAngularDamp)

		target := rl.Vector3Add(main.Position, rl.Vector3RotateByQuaternion(rest, heading))
		pull := rl.Vector3Subtract(target, body.Position)
		body.ApplyCentralForce(rl.Vector3Scale(pull, t.LimbReturnGain*body.Mass))
	}
}

func (b *Balance) steadyHead(r Rig) {
	head := r.Part(PartHead)
	main := r.Main()
	if head == nil || head == main {
		return
	}
	t := b.tuning
	head.AngularVelocity = rl.Vector3Scale(head.AngularVelocity, t.HeadAngularDamp)
	rel := rl.Vector3Subtract(head.Velocity, main.Velocity)
	head.Velocity = rl.Vector3Add(main.Velocity, rl.Vector3Scale(rel, t.HeadLinearDamp))
}

func clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
