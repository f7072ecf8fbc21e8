package physics

import (
	"log"
	"math"

	"brawler/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.05 // units/sec
	SleepAngularThreshold  = 0.05 // rad/sec
	SleepTimeThreshold     = 0.5  // seconds of low velocity before sleeping
)

// Default speed clamps keep stacked impulses from blowing up the solver.
const (
	DefaultMaxSpeed        = 60
	DefaultMaxAngularSpeed = 30
)

// Body is a rigid body. Mass 0 makes it static. Damping values are the
// fraction of velocity lost per second.
type Body struct {
	ID   uint64
	Name string

	Shape           Shape
	Position        rl.Vector3
	Orientation     rl.Quaternion
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // rad/s, world frame

	Mass           float32
	LinearDamping  float32
	AngularDamping float32
	Friction       float32
	Restitution    float32
	UseGravity     bool

	// Bodies sharing a non-zero group never collide with each other.
	Group uint32

	MaxSpeed        float32
	MaxAngularSpeed float32

	IsSleeping bool
	CanSleep   bool
	sleepTimer float32

	OnCollisionEnter engine.EventWithArg[*Body]
	OnCollisionExit  engine.EventWithArg[*Body]

	force      rl.Vector3
	torque     rl.Vector3
	invMass    float32
	invInertia float32
	world      *World
	warned     bool
}

func NewBody(name string, shape Shape, mass float32) *Body {
	return &Body{
		Name:            name,
		Shape:           shape,
		Orientation:     rl.QuaternionIdentity(),
		Mass:            mass,
		Friction:        0.5,
		UseGravity:      true,
		MaxSpeed:        DefaultMaxSpeed,
		MaxAngularSpeed: DefaultMaxAngularSpeed,
		CanSleep:        true,
	}
}

// NewStaticBox creates an immovable box centered at center.
func NewStaticBox(name string, center, halfSize rl.Vector3) *Body {
	b := NewBody(name, Box(halfSize), 0)
	b.Position = center
	b.UseGravity = false
	b.CanSleep = false
	return b
}

func (b *Body) IsStatic() bool {
	return b.Mass <= 0
}

// InWorld reports whether the body is currently simulated.
func (b *Body) InWorld() bool {
	return b.world != nil
}

func (b *Body) updateMassProperties() {
	if b.IsStatic() {
		b.invMass, b.invInertia = 0, 0
		return
	}
	b.invMass = 1 / b.Mass
	if i := b.Shape.inertia(b.Mass); i > 0 {
		b.invInertia = 1 / i
	}
}

// ApplyForce accumulates a force at a world point until the next step.
func (b *Body) ApplyForce(force, point rl.Vector3) {
	if !b.canReceive() {
		return
	}
	b.force = rl.Vector3Add(b.force, force)
	r := rl.Vector3Subtract(point, b.Position)
	b.torque = rl.Vector3Add(b.torque, rl.Vector3CrossProduct(r, force))
	b.wakeIfSignificant(rl.Vector3Length(force) * b.invMass)
}

func (b *Body) ApplyCentralForce(force rl.Vector3) {
	if !b.canReceive() {
		return
	}
	b.force = rl.Vector3Add(b.force, force)
	b.wakeIfSignificant(rl.Vector3Length(force) * b.invMass)
}

// ApplyImpulse changes velocity immediately, with the angular part taken
// from the lever arm to point.
func (b *Body) ApplyImpulse(impulse, point rl.Vector3) {
	if !b.canReceive() {
		return
	}
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, b.invMass))
	r := rl.Vector3Subtract(point, b.Position)
	b.AngularVelocity = rl.Vector3Add(b.AngularVelocity,
		rl.Vector3Scale(rl.Vector3CrossProduct(r, impulse), b.invInertia))
	b.Wake()
}

func (b *Body) ApplyCentralImpulse(impulse rl.Vector3) {
	if !b.canReceive() {
		return
	}
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, b.invMass))
	b.Wake()
}

func (b *Body) canReceive() bool {
	if b.world == nil {
		if !b.warned {
			log.Printf("Physics: ignoring force on %q, body is not in a world", b.Name)
			b.warned = true
		}
		return false
	}
	return !b.IsStatic()
}

func (b *Body) wakeIfSignificant(accel float32) {
	if b.IsSleeping && accel > SleepVelocityThreshold {
		b.Wake()
	}
}

// PointToWorld converts a point in the body's local frame to world space.
func (b *Body) PointToWorld(local rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(b.Position, rl.Vector3RotateByQuaternion(local, b.Orientation))
}

// VectorToWorld rotates a local direction into world space.
func (b *Body) VectorToWorld(local rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(local, b.Orientation)
}

// Forward is the body's local +Z in world space.
func (b *Body) Forward() rl.Vector3 {
	return b.VectorToWorld(rl.Vector3{Z: 1})
}

// VelocityAt returns the velocity of a world point attached to the body.
func (b *Body) VelocityAt(point rl.Vector3) rl.Vector3 {
	r := rl.Vector3Subtract(point, b.Position)
	return rl.Vector3Add(b.Velocity, rl.Vector3CrossProduct(b.AngularVelocity, r))
}

// Segment returns the world endpoints and radius of the swept sphere that
// approximates the body for contacts.
func (b *Body) Segment() (start, end rl.Vector3, radius float32) {
	axis, half, r := b.Shape.sweep()
	d := rl.Vector3Scale(b.VectorToWorld(axis), half)
	return rl.Vector3Subtract(b.Position, d), rl.Vector3Add(b.Position, d), r
}

// Bounds returns a world-space box containing the body.
func (b *Body) Bounds() AABB {
	r := b.Shape.boundingRadius()
	return NewAABBFromCenter(b.Position, rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r})
}

// Wake forces the body out of sleep state
func (b *Body) Wake() {
	b.IsSleeping = false
	b.sleepTimer = 0
}

// TrySleep puts the body to sleep after it has been still long enough.
func (b *Body) TrySleep(deltaTime float32) {
	if !b.CanSleep || b.IsSleeping || b.IsStatic() {
		return
	}

	speed := rl.Vector3Length(b.Velocity)
	angSpeed := rl.Vector3Length(b.AngularVelocity)

	if speed < SleepVelocityThreshold && angSpeed < SleepAngularThreshold {
		b.sleepTimer += deltaTime
		if b.sleepTimer >= SleepTimeThreshold {
			b.IsSleeping = true
			b.Velocity = rl.Vector3{}
			b.AngularVelocity = rl.Vector3{}
		}
	} else {
		b.sleepTimer = 0
	}
}

// integrateVelocity applies gravity, accumulated forces and damping, then
// clears the accumulators.
func (b *Body) integrateVelocity(gravity rl.Vector3, dt float32) {
	accel := rl.Vector3Scale(b.force, b.invMass)
	if b.UseGravity {
		accel = rl.Vector3Add(accel, gravity)
	}
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(accel, dt))
	b.AngularVelocity = rl.Vector3Add(b.AngularVelocity, rl.Vector3Scale(b.torque, b.invInertia*dt))

	b.Velocity = rl.Vector3Scale(b.Velocity, dampingFactor(b.LinearDamping, dt))
	b.AngularVelocity = rl.Vector3Scale(b.AngularVelocity, dampingFactor(b.AngularDamping, dt))

	b.Velocity = clampLength(b.Velocity, b.MaxSpeed)
	b.AngularVelocity = clampLength(b.AngularVelocity, b.MaxAngularSpeed)

	b.force = rl.Vector3{}
	b.torque = rl.Vector3{}
}

func (b *Body) integratePosition(dt float32) {
	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
	b.Orientation = rotateBy(b.Orientation, rl.Vector3Scale(b.AngularVelocity, dt))
}

func dampingFactor(damping, dt float32) float32 {
	if damping <= 0 {
		return 1
	}
	if damping >= 1 {
		return 0
	}
	return float32(math.Pow(float64(1-damping), float64(dt)))
}
