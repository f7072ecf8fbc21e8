package character

import (
	"brawler/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Punches thrown by a rig without arms land this far above the main body.
const chestHeight = 0.4

type AttackKind int

const (
	AttackJab AttackKind = iota
	AttackCross
	AttackHook
	AttackUppercut
	AttackHeadbutt
	AttackJumpAttack
	AttackDropkick
)

func (k AttackKind) String() string {
	switch k {
	case AttackJab:
		return "jab"
	case AttackCross:
		return "cross"
	case AttackHook:
		return "hook"
	case AttackUppercut:
		return "uppercut"
	case AttackHeadbutt:
		return "headbutt"
	case AttackJumpAttack:
		return "jump-attack"
	case AttackDropkick:
		return "dropkick"
	}
	return "unknown"
}

// airborne attacks launch the whole body and suspend height holding.
func (k AttackKind) airborne() bool {
	return k == AttackJumpAttack || k == AttackDropkick
}

// limb is the part that strikes. The main body strikes for airborne attacks.
func (k AttackKind) limb() (Part, float32) {
	switch k {
	case AttackJab:
		return PartHandL, 1
	case AttackCross, AttackHook, AttackUppercut:
		return PartHandR, -1
	case AttackHeadbutt:
		return PartHead, 0
	}
	return -1, 0
}

func (c *Character) profile(k AttackKind) config.AttackTuning {
	a := &c.tuning.Attacks
	switch k {
	case AttackCross:
		return a.Cross
	case AttackHook:
		return a.Hook
	case AttackUppercut:
		return a.Uppercut
	case AttackHeadbutt:
		return a.Headbutt
	case AttackJumpAttack:
		return a.JumpAttack
	case AttackDropkick:
		return a.Dropkick
	}
	return a.Jab
}

// pendingAttack is an attack in flight. It counts down one tick per update:
// wind-up for the first half, strike for the second, and the hit check when
// it reaches zero.
type pendingAttack struct {
	kind      AttackKind
	profile   config.AttackTuning
	remaining int
	dir       rl.Vector3 // horizontal, toward the target at launch
	side      float32    // +1 for the character's left, -1 for its right
	limb      Part
	struck    bool
	hitPoint  rl.Vector3
	extension float32
}

func (a *pendingAttack) striking() bool {
	return a.remaining <= a.profile.Ticks/2
}

// chooseAttack picks an attack family by weight, then a punch within the
// punch family.
func (c *Character) chooseAttack() AttackKind {
	w := &c.tuning.Combat
	roll := c.rng.Float32() * (w.PunchWeight + w.DropkickWeight + w.JumpAttackWeight + w.HeadbuttWeight)
	switch {
	case roll < w.PunchWeight:
		return c.choosePunch()
	case roll < w.PunchWeight+w.DropkickWeight:
		return AttackDropkick
	case roll < w.PunchWeight+w.DropkickWeight+w.JumpAttackWeight:
		return AttackJumpAttack
	}
	return AttackHeadbutt
}

// choosePunch alternates jab and cross while a combo is running, otherwise
// draws by punch weight.
func (c *Character) choosePunch() AttackKind {
	ai := &c.tuning.AI
	if c.tick-c.lastPunchTick > ai.ComboWindow || c.combo >= ai.MaxCombo {
		c.combo = 0
	}

	var k AttackKind
	if c.combo > 0 {
		k = AttackJab
		if c.lastPunch == AttackJab {
			k = AttackCross
		}
	} else {
		a := &c.tuning.Attacks
		punches := []struct {
			kind   AttackKind
			weight float32
		}{
			{AttackJab, a.Jab.Weight},
			{AttackCross, a.Cross.Weight},
			{AttackHook, a.Hook.Weight},
			{AttackUppercut, a.Uppercut.Weight},
		}
		var total float32
		for _, p := range punches {
			total += p.weight
		}
		roll := c.rng.Float32() * total
		k = AttackUppercut
		for _, p := range punches {
			if roll < p.weight {
				k = p.kind
				break
			}
			roll -= p.weight
		}
	}

	c.combo++
	c.lastPunch = k
	c.lastPunchTick = c.tick
	return k
}

func (c *Character) startAttack(k AttackKind, dir rl.Vector3) {
	if dir == (rl.Vector3{}) {
		dir, _ = flatten(c.rig.Main().Forward())
	}
	limb, side := k.limb()
	p := c.profile(k)
	c.attack = &pendingAttack{
		kind:      k,
		profile:   p,
		remaining: p.Ticks,
		dir:       dir,
		side:      side,
		limb:      limb,
		hitPoint:  c.reachPoint(dir, p.Reach),
	}
	c.circleSide = 1
	if c.rng.Intn(2) == 0 {
		c.circleSide = -1
	}

	if k.airborne() {
		c.launch(rl.Vector3{Y: p.LiftSpeed})
	}
}

// advanceAttack runs one tick of the pending attack. The hit check fires
// only if the attacker is still up when the countdown ends.
func (c *Character) advanceAttack() {
	a := c.attack
	if a == nil {
		return
	}
	if !c.alive || c.IsKnockedOut() {
		c.attack = nil
		return
	}

	if a.striking() {
		if !a.struck {
			a.struck = true
			c.beginStrike(a)
		}
		c.strike(a)
	} else {
		c.windUp(a)
	}

	a.remaining--
	if a.remaining > 0 {
		return
	}
	c.attack = nil
	c.CheckHit(a.hitPoint, a.profile.Range, a.profile.Damage)
	if c.state == StateAttacking {
		c.state = StateSeeking
	}
}

// windUp pulls the striking limb back and coils the body.
func (c *Character) windUp(a *pendingAttack) {
	if a.kind.airborne() {
		return
	}
	if body := c.rig.Part(a.limb); body != nil {
		body.ApplyCentralForce(rl.Vector3Scale(a.dir, -a.profile.WindupAccel*body.Mass))
	}
	if a.profile.Spin != 0 {
		main := c.rig.Main()
		main.AngularVelocity.Y = a.side * a.profile.Spin
	}
}

func (c *Character) beginStrike(a *pendingAttack) {
	p := a.profile
	main := c.rig.Main()
	lunge := rl.Vector3Scale(a.dir, p.LungeSpeed*c.Strength)
	if a.kind.airborne() {
		c.launch(lunge)
		// Pitch forward about the axis across the heading.
		axis := rl.Vector3CrossProduct(rl.Vector3{Y: 1}, a.dir)
		main.AngularVelocity = rl.Vector3Add(main.AngularVelocity, rl.Vector3Scale(axis, p.Spin))
		return
	}
	if c.rig.Part(a.limb) == nil {
		// No limb to throw: the body lunges instead.
		lunge = rl.Vector3Scale(lunge, 2)
	}
	main.ApplyCentralImpulse(rl.Vector3Scale(lunge, main.Mass))
	if p.Spin != 0 {
		main.AngularVelocity.Y = -a.side * p.Spin
	}
}

// strike drives the limb along the attack's path and records the hit point
// at the limb's furthest extension.
func (c *Character) strike(a *pendingAttack) {
	p := a.profile
	main := c.rig.Main()
	body := c.rig.Part(a.limb)
	if a.kind.airborne() {
		a.hitPoint = c.reachPoint(a.dir, p.Reach)
		return
	}
	if body == nil {
		a.hitPoint = rl.Vector3Add(c.reachPoint(a.dir, p.Reach), rl.Vector3{Y: chestHeight})
		return
	}

	path := a.dir
	switch a.kind {
	case AttackHook:
		// Swing across from the punching side.
		across := rl.Vector3CrossProduct(a.dir, rl.Vector3{Y: 1})
		path = rl.Vector3Normalize(rl.Vector3Add(path, rl.Vector3Scale(across, 0.7*a.side)))
	case AttackUppercut:
		path = rl.Vector3Normalize(rl.Vector3Add(path, rl.Vector3{Y: p.LiftSpeed}))
	}
	body.ApplyCentralForce(rl.Vector3Scale(path, p.StrikeAccel*c.Strength*body.Mass))

	ext := rl.Vector3DotProduct(rl.Vector3Subtract(body.Position, main.Position), a.dir)
	if a.firstStrikeTick() || ext >= a.extension {
		a.extension = ext
		a.hitPoint = body.Position
	}
}

func (a *pendingAttack) firstStrikeTick() bool {
	return a.remaining == a.profile.Ticks/2
}

// reachPoint is where a strike lands when no limb carries it.
func (c *Character) reachPoint(dir rl.Vector3, reach float32) rl.Vector3 {
	return rl.Vector3Add(c.rig.Main().Position, rl.Vector3Scale(dir, reach))
}
