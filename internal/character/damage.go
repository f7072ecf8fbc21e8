package character

import (
	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CheckHit damages every opponent whose main body is closer than rng to
// point and knocks it back. Opponents that are already down only take the
// knockback. It returns the number of characters hit.
func (c *Character) CheckHit(point rl.Vector3, rng, damage float32) int {
	hits := 0
	for _, t := range c.roster.Opponents(c) {
		if t == c || !t.alive || t.Team == c.Team {
			continue
		}
		if rl.Vector3Distance(point, t.Position()) >= rng {
			continue
		}
		dealt := damage
		if t.IsKnockedOut() {
			dealt = 0
		} else {
			t.TakeDamage(damage)
		}
		c.knockback(t, point, damage)
		hits++
		c.emit(Event{Kind: EventHit, Source: c, Target: t, Position: point, Amount: dealt})
	}
	return hits
}

// knockback pushes t away from the attacker. Both components are capped so
// a hit never launches a character off the map.
func (c *Character) knockback(t *Character, point rl.Vector3, damage float32) {
	cb := &c.tuning.Combat
	dir, _ := c.horizontalTo(t.Position())
	if dir == (rl.Vector3{}) {
		dir, _ = flatten(rl.Vector3Subtract(t.Position(), point))
	}
	if dir == (rl.Vector3{}) {
		dir, _ = flatten(c.rig.Main().Forward())
	}
	h := min(cb.KnockbackPerDamage*damage*c.Strength, cb.MaxKnockbackSpeed)
	v := min(cb.LiftPerDamage*damage, cb.MaxKnockbackSpeed)
	t.launch(rl.Vector3Add(rl.Vector3Scale(dir, h), rl.Vector3{Y: v}))
}

// TakeDamage is a no-op while knocked out. Damage that empties health knocks
// the character out; anything less stuns it briefly.
func (c *Character) TakeDamage(amount float32) {
	if !c.alive || c.IsKnockedOut() || amount <= 0 {
		return
	}
	c.Health -= amount
	if c.Health <= 0 {
		c.knockout()
		return
	}

	cb := &c.tuning.Combat
	if cb.StunTicks > 0 {
		c.posture = PostureStunned
		c.stunTicks = cb.StunTicks
	}
	if c.rng.Float32() < cb.SlipChance {
		side := rl.Vector3CrossProduct(c.rig.Main().Forward(), rl.Vector3{Y: 1})
		if c.rng.Intn(2) == 0 {
			side = rl.Vector3Negate(side)
		}
		head := c.rig.Part(PartHead)
		if head == nil {
			head = c.rig.Main()
		}
		c.rig.ApplyImpulseTo(PartHead, rl.Vector3Scale(side, cb.SlipSpeed*head.Mass))
	}
}

func (c *Character) knockout() {
	if c.IsKnockedOut() {
		return
	}
	k := &c.tuning.Knockout
	c.Health = 0
	c.posture = PostureKnockedOut
	c.stunTicks = 0
	c.koTicks = k.MinTicks
	if span := k.MaxTicks - k.MinTicks; span > 0 {
		c.koTicks += c.rng.Intn(span + 1)
	}
	c.wakeProgress = 0
	c.attack = nil
	c.ReleaseGrab()
	c.state = StateIdle
	c.target = nil

	main := c.rig.Main()
	main.AngularVelocity = rl.Vector3Add(main.AngularVelocity, c.randomSpin(k.SpinSpeed))

	c.emit(Event{Kind: EventKnockedOut, Source: c, Position: main.Position})
}

// updateKnockout counts down and races the wake progress against it. Being
// held fills the progress faster.
func (c *Character) updateKnockout() {
	k := &c.tuning.Knockout
	c.koTicks--
	rate := k.FreeWakeRate
	if c.grabbedBy != nil {
		rate = k.GrabbedWakeRate
	}
	c.wakeProgress += rate
	if c.koTicks <= 0 || c.wakeProgress >= float32(c.koTicks) {
		c.wake()
	}
}

func (c *Character) wake() {
	k := &c.tuning.Knockout
	c.posture = PostureActive
	c.Health = k.WakeHealth
	c.wakeProgress = 0
	c.koTicks = 0
	c.state = StateIdle
	c.thinkTimer = 1

	yaw := physics.Yaw(c.rig.Main().Orientation)
	for _, p := range c.rig.UprightParts() {
		if b := c.rig.Part(p); b != nil {
			b.Orientation = physics.YawRotation(yaw)
			b.AngularVelocity = rl.Vector3{}
		}
	}
	c.balance.stand(c)

	if g := c.grabbedBy; g != nil {
		g.ReleaseGrab()
		away, _ := flatten(rl.Vector3Subtract(c.Position(), g.Position()))
		if away == (rl.Vector3{}) {
			away, _ = flatten(rl.Vector3{X: c.rng.Float32()*2 - 1, Z: c.rng.Float32()*2 - 1})
		}
		c.launch(rl.Vector3Add(rl.Vector3{Y: k.EscapeUpSpeed}, rl.Vector3Scale(away, k.EscapeSideSpeed)))
		g.launch(rl.Vector3Scale(away, -k.GrabberPush))
	} else {
		c.launch(rl.Vector3{Y: k.HopSpeed})
	}

	c.emit(Event{Kind: EventWokeUp, Source: c, Position: c.Position()})
}

// ApplyPowerBoost raises strength and speed, heals, and (re)starts the boost
// timer.
func (c *Character) ApplyPowerBoost() {
	if !c.alive {
		return
	}
	b := &c.tuning.Boost
	c.Strength = b.Strength
	c.Speed = b.Speed
	if !c.IsKnockedOut() {
		c.Health = min(c.Health+b.Heal, c.tuning.Combat.MaxHealth)
	}
	c.boostTicks = b.Ticks
	c.emit(Event{Kind: EventBoosted, Source: c, Position: c.Position()})
}

func (c *Character) updateBoost() {
	if c.boostTicks <= 0 {
		return
	}
	c.boostTicks--
	if c.boostTicks == 0 {
		c.Strength = 1
		c.Speed = 1
	}
}
