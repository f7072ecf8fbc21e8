package character

import (
	"math"

	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// think re-evaluates the AI state. Holding a grab wins over everything, then
// downed enemies, then the nearest standing enemy.
func (c *Character) think() {
	if c.grabbing != nil {
		c.state = StateGrabbing
		c.target = c.grabbing
		return
	}

	var nearestDown, nearest *Character
	downDist, dist := float32(math.MaxFloat32), float32(math.MaxFloat32)
	for _, o := range c.roster.Opponents(c) {
		if !o.alive {
			continue
		}
		d := c.distanceTo(o)
		if o.IsKnockedOut() {
			if o.grabbedBy == nil && d < downDist {
				nearestDown, downDist = o, d
			}
			continue
		}
		if d < dist {
			nearest, dist = o, d
		}
	}

	switch {
	case nearestDown != nil:
		c.state = StateGrabbing
		c.target = nearestDown
	case nearest != nil:
		c.target = nearest
		if dist <= c.tuning.AI.AttackRange {
			c.state = StateAttacking
		} else {
			c.state = StateSeeking
		}
	default:
		c.state = StateIdle
		c.target = nil
	}
}

// canFight reports whether t is still a valid attack target.
func (c *Character) canFight(t *Character) bool {
	return t != nil && t != c && t.alive && t.Team != c.Team && !t.IsKnockedOut()
}

func (c *Character) seek() {
	t := c.target
	if !c.canFight(t) {
		c.state = StateIdle
		c.target = nil
		c.drive(rl.Vector3{})
		return
	}
	dir, d := c.horizontalTo(t.Position())
	c.face(dir)
	if d <= c.tuning.AI.StrikeRange {
		c.drive(rl.Vector3{})
		return
	}
	c.drive(rl.Vector3Scale(dir, c.tuning.AI.MoveAccel*c.Speed))
}

func (c *Character) fight() {
	ai := &c.tuning.AI
	t := c.target
	if !c.canFight(t) {
		c.state = StateSeeking
		return
	}
	d := c.distanceTo(t)
	if d > ai.LeaveRange && c.attack == nil {
		c.state = StateSeeking
		return
	}

	dir, _ := c.horizontalTo(t.Position())
	c.face(dir)
	if c.attack != nil {
		return
	}
	if c.cooldown > 0 {
		c.circle(dir, d)
		return
	}
	if d > ai.StrikeRange {
		c.drive(rl.Vector3Scale(dir, ai.ApproachAccel*c.Speed))
		return
	}

	c.startAttack(c.chooseAttack(), dir)
	c.cooldown = ai.CooldownMin
	if ai.CooldownSpread > 0 {
		c.cooldown += c.rng.Intn(ai.CooldownSpread + 1)
	}
}

// circle strafes around the target while the attack cooldown runs, keeping
// the distance inside the circling band.
func (c *Character) circle(dir rl.Vector3, d float32) {
	ai := &c.tuning.AI
	side := rl.Vector3CrossProduct(dir, rl.Vector3{Y: 1})
	accel := rl.Vector3Scale(side, c.circleSide*ai.CircleAccel)
	switch {
	case d < ai.CircleMin:
		accel = rl.Vector3Add(accel, rl.Vector3Scale(dir, -ai.RetreatAccel))
	case d > ai.CircleMax:
		accel = rl.Vector3Add(accel, rl.Vector3Scale(dir, ai.ApproachAccel))
	}
	c.drive(rl.Vector3Scale(accel, c.Speed))
}

// drive pushes the rig horizontally with accel, blended with edge avoidance,
// and clamps horizontal speed.
func (c *Character) drive(accel rl.Vector3) {
	ai := &c.tuning.AI
	main := c.rig.Main()
	pos := main.Position
	r := radius(pos)
	toCenter, _ := flatten(rl.Vector3Negate(pos))

	switch {
	case r > ai.SafeRadius:
		accel = rl.Vector3Scale(toCenter, ai.EdgePushAccel)
		if out := -rl.Vector3DotProduct(main.Velocity, toCenter); out > 0 {
			main.Velocity = rl.Vector3Add(main.Velocity, rl.Vector3Scale(toCenter, out*(1-ai.EdgeVelDamp)))
		}
	case r > ai.EdgeBlendRadius:
		w := (r - ai.EdgeBlendRadius) / (ai.SafeRadius - ai.EdgeBlendRadius)
		accel = rl.Vector3Lerp(accel, rl.Vector3Scale(toCenter, ai.EdgePushAccel), w)
	}

	c.move(accel, ai.MaxSpeed*c.Speed)
}

// move applies a horizontal acceleration to the whole rig through the main
// body and caps the main body's horizontal speed.
func (c *Character) move(accel rl.Vector3, maxSpeed float32) {
	main := c.rig.Main()
	accel.Y = 0
	if accel != (rl.Vector3{}) {
		main.ApplyCentralForce(rl.Vector3Scale(accel, c.rig.TotalMass()))
	}
	v := main.Velocity
	if h := float32(math.Hypot(float64(v.X), float64(v.Z))); h > maxSpeed && h > 0 {
		s := maxSpeed / h
		main.Velocity.X *= s
		main.Velocity.Z *= s
	}
}

// face turns every upright part a fraction of the way toward dir, keeping
// whatever tilt it has.
func (c *Character) face(dir rl.Vector3) {
	if dir == (rl.Vector3{}) {
		return
	}
	main := c.rig.Main()
	desired := float32(math.Atan2(float64(dir.X), float64(dir.Z)))
	delta := wrapAngle(desired-physics.Yaw(main.Orientation)) * c.tuning.AI.TurnRate
	if delta == 0 {
		return
	}
	turn := physics.YawRotation(delta)
	for _, p := range c.rig.UprightParts() {
		if b := c.rig.Part(p); b != nil {
			b.Orientation = rl.QuaternionNormalize(rl.QuaternionMultiply(turn, b.Orientation))
		}
	}
}

func wrapAngle(a float32) float32 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
