package character

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"brawler/internal/config"
	"brawler/internal/engine"
	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configures a new character. World is required; the rest default to
// an empty registry, the default tuning and a fixed seed.
type Options struct {
	ID       int
	Team     Team
	Kind     RigKind
	Spawn    rl.Vector3 // surface point under the character
	Yaw      float32
	World    *physics.World
	Registry Registry
	Tuning   *config.Tuning
	Rand     *rand.Rand
	Events   *engine.EventWithArg[Event]

	// ThinkOffset staggers think ticks between characters.
	ThinkOffset int
}

// Character is one fighter: a rig plus its posture, combat AI, health and
// grab links. It is driven entirely by Update on the simulation goroutine.
type Character struct {
	ID       int
	Team     Team
	Health   float32
	Strength float32
	Speed    float32

	rig     Rig
	world   *physics.World
	roster  Registry
	tuning  *config.Tuning
	rng     *rand.Rand
	events  *engine.EventWithArg[Event]
	balance Balance

	alive        bool
	destroyed    bool
	posture      Posture
	stunTicks    int
	koTicks      int
	wakeProgress float32
	boostTicks   int

	state      AIState
	target     *Character
	cooldown   int
	thinkTimer int
	circleSide float32

	attack        *pendingAttack
	combo         int
	lastPunch     AttackKind
	lastPunchTick int
	tick          int

	grabbing  *Character
	grabbedBy *Character
}

func New(opts Options) *Character {
	if opts.Tuning == nil {
		opts.Tuning = config.Default()
	}
	if opts.Registry == nil {
		opts.Registry = noRegistry{}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.Events == nil {
		opts.Events = &engine.EventWithArg[Event]{}
	}

	c := &Character{
		ID:         opts.ID,
		Team:       opts.Team,
		Health:     opts.Tuning.Combat.MaxHealth,
		Strength:   1,
		Speed:      1,
		world:      opts.World,
		roster:     opts.Registry,
		tuning:     opts.Tuning,
		rng:        opts.Rand,
		events:     opts.Events,
		balance:    Balance{tuning: &opts.Tuning.Balance},
		alive:      true,
		state:      StateIdle,
		thinkTimer: opts.ThinkOffset,
		circleSide: 1,
	}

	l := layoutFor(opts.Kind)
	main := rl.Vector3Add(opts.Spawn, rl.Vector3{Y: l.standHeight})
	c.rig = buildRig(l, opts.World, c.String(), main, opts.Yaw)
	return c
}

func (c *Character) String() string {
	return fmt.Sprintf("%s#%d", c.Team, c.ID)
}

// Update advances the character by one fixed tick. The world must already
// have been stepped for this tick.
func (c *Character) Update(dt float32) {
	if !c.alive {
		return
	}
	c.tick++

	main := c.rig.Main()
	if main.Position.Y < c.tuning.World.FloorY {
		c.die()
		return
	}

	c.updateBoost()

	if c.posture == PostureKnockedOut {
		c.updateKnockout()
		return
	}

	if c.stunTicks > 0 {
		c.stunTicks--
		if c.stunTicks == 0 {
			c.posture = PostureActive
		}
	}

	c.updateAI()
	c.balance.Apply(c)

	if g := c.rig.Gait(); g != nil {
		g.Advance(main.Velocity, dt)
	}
}

func (c *Character) updateAI() {
	c.thinkTimer--
	if c.thinkTimer <= 0 {
		c.think()
		c.thinkTimer = c.tuning.AI.ThinkInterval
	}
	if c.cooldown > 0 {
		c.cooldown--
	}

	c.advanceAttack()

	if c.posture == PostureStunned {
		c.holdTarget()
		return
	}
	switch c.state {
	case StateIdle:
		c.drive(rl.Vector3{})
	case StateSeeking:
		c.seek()
	case StateAttacking:
		c.fight()
	case StateGrabbing:
		c.carry()
	}
}

// die marks the character fallen. The arena removes it on the same tick.
func (c *Character) die() {
	if !c.alive {
		return
	}
	c.alive = false
	c.attack = nil
	c.ReleaseGrab()
	if g := c.grabbedBy; g != nil {
		g.ReleaseGrab()
	}
	c.emit(Event{Kind: EventFell, Source: c, Position: c.Position()})
}

// Destroy detaches the rig from the world. Safe to call more than once.
func (c *Character) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.alive = false
	c.attack = nil
	c.ReleaseGrab()
	if g := c.grabbedBy; g != nil {
		g.ReleaseGrab()
	}
	c.rig.Teardown()
}

func (c *Character) emit(e Event) {
	if c.tuning.Debug.LogEvents {
		log.Printf("Character: %s", e)
	}
	c.events.Invoke(e)
}

// launch adds a velocity change to every body of the rig.
func (c *Character) launch(dv rl.Vector3) {
	c.rig.ForEachBody(func(_ Part, b *physics.Body) {
		b.ApplyCentralImpulse(rl.Vector3Scale(dv, b.Mass))
	})
}

// randomSpin returns an angular velocity with each component in
// [-speed, speed].
func (c *Character) randomSpin(speed float32) rl.Vector3 {
	return rl.Vector3{
		X: (c.rng.Float32()*2 - 1) * speed,
		Y: (c.rng.Float32()*2 - 1) * speed,
		Z: (c.rng.Float32()*2 - 1) * speed,
	}
}

func (c *Character) Rig() Rig { return c.rig }
func (c *Character) Main() *physics.Body { return c.rig.Main() }
func (c *Character) Position() rl.Vector3 { return c.rig.Main().Position }
func (c *Character) IsAlive() bool { return c.alive }
func (c *Character) State() AIState { return c.state }
func (c *Character) Posture() Posture { return c.posture }
func (c *Character) Target() *Character { return c.target }
func (c *Character) IsKnockedOut() bool { return c.posture == PostureKnockedOut }
func (c *Character) IsStunned() bool { return c.posture == PostureStunned }
func (c *Character) IsBoosted() bool { return c.boostTicks > 0 }
func (c *Character) BoostTicks() int { return c.boostTicks }
func (c *Character) KnockoutTicks() int { return c.koTicks }
func (c *Character) WakeProgress() float32 { return c.wakeProgress }
func (c *Character) IsGrabbed() bool { return c.grabbedBy != nil }
func (c *Character) GrabbedTarget() *Character { return c.grabbing }
func (c *Character) GrabbedBy() *Character { return c.grabbedBy }

// Opacity is the render alpha: characters that are down fade.
func (c *Character) Opacity() float32 {
	if c.IsKnockedOut() {
		return 0.5
	}
	return 1
}

// Attack reports the attack in flight, if any.
func (c *Character) Attack() (AttackKind, bool) {
	if c.attack == nil {
		return 0, false
	}
	return c.attack.kind, true
}

// horizontalTo returns the flattened unit direction from c to p and the
// horizontal distance.
func (c *Character) horizontalTo(p rl.Vector3) (rl.Vector3, float32) {
	return flatten(rl.Vector3Subtract(p, c.Position()))
}

func flatten(v rl.Vector3) (rl.Vector3, float32) {
	v.Y = 0
	l := rl.Vector3Length(v)
	if l < 1e-5 {
		return rl.Vector3{}, 0
	}
	return rl.Vector3Scale(v, 1/l), l
}

func (c *Character) distanceTo(o *Character) float32 {
	return rl.Vector3Distance(c.Position(), o.Position())
}

// radius is the horizontal distance from the platform center.
func radius(p rl.Vector3) float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Z)))
}
