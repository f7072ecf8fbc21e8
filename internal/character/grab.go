package character

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// grab links c to t. Both sides of the link are set together, and a
// character can only hold one target and be held by one grabber.
func (c *Character) grab(t *Character) bool {
	if t == nil || t == c || !c.alive || c.IsKnockedOut() || c.grabbing != nil {
		return false
	}
	if !t.alive || !t.IsKnockedOut() || t.grabbedBy != nil || t.Team == c.Team {
		return false
	}
	c.grabbing = t
	t.grabbedBy = c
	c.emit(Event{Kind: EventGrabbed, Source: c, Target: t, Position: t.Position()})
	return true
}

// ReleaseGrab drops whatever c is holding. Both sides of the link clear
// together.
func (c *Character) ReleaseGrab() {
	t := c.grabbing
	if t == nil {
		return
	}
	c.grabbing = nil
	if t.grabbedBy == c {
		t.grabbedBy = nil
	}
}

// carry runs the Grabbing state: walk to the downed target, pick it up, haul
// it to the nearest edge and throw it off.
func (c *Character) carry() {
	g := &c.tuning.Grab
	t := c.target
	if c.grabbing != nil {
		t = c.grabbing
	}
	if t == nil || !t.alive || !t.IsKnockedOut() || (t.grabbedBy != nil && t.grabbedBy != c) {
		c.ReleaseGrab()
		c.state = StateSeeking
		c.target = nil
		return
	}

	if c.grabbing == nil {
		dir, _ := c.horizontalTo(t.Position())
		if c.distanceTo(t) > g.Range {
			c.face(dir)
			c.drive(rl.Vector3Scale(dir, g.ApproachAccel*c.Speed))
			return
		}
		if !c.grab(t) {
			c.state = StateSeeking
			c.target = nil
			return
		}
	}

	pos := c.Position()
	out := edgeDirection(pos)
	if radius(pos) > g.ThrowRadius {
		c.throw(out)
		return
	}

	c.face(out)
	c.move(rl.Vector3Scale(out, g.CarryAccel*c.Speed), g.CarrySpeed*c.Speed)
	c.holdTarget()
}

// holdTarget puts the held character at the carry offset toward the nearest
// edge and matches its velocity to c. It runs every tick c is holding, even
// while c is stunned.
func (c *Character) holdTarget() {
	t := c.grabbing
	if t == nil {
		return
	}
	g := &c.tuning.Grab
	pos := c.Position()
	out := edgeDirection(pos)
	hold := rl.Vector3Add(pos, rl.Vector3Add(rl.Vector3Scale(out, g.CarryOffset), rl.Vector3{Y: g.CarryLift}))
	t.rig.Translate(rl.Vector3Subtract(hold, t.Position()))
	t.rig.SetVelocity(c.rig.Main().Velocity)
}

// edgeDirection points from pos toward the nearest platform edge along the
// dominant horizontal axis.
func edgeDirection(pos rl.Vector3) rl.Vector3 {
	if abs(pos.X) >= abs(pos.Z) {
		if pos.X < 0 {
			return rl.Vector3{X: -1}
		}
		return rl.Vector3{X: 1}
	}
	if pos.Z < 0 {
		return rl.Vector3{Z: -1}
	}
	return rl.Vector3{Z: 1}
}

// throw releases the held target with an outward and downward launch and a
// random tumble.
func (c *Character) throw(out rl.Vector3) {
	g := &c.tuning.Grab
	t := c.grabbing
	if t == nil {
		return
	}
	c.ReleaseGrab()

	t.launch(rl.Vector3Add(rl.Vector3Scale(out, g.ThrowSpeed*c.Strength), rl.Vector3{Y: -g.ThrowDrop}))
	main := t.rig.Main()
	main.AngularVelocity = rl.Vector3Add(main.AngularVelocity, c.randomSpin(g.ThrowSpin))

	c.state = StateSeeking
	c.target = nil
	c.emit(Event{Kind: EventThrown, Source: c, Target: t, Position: t.Position()})
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
