package character

import (
	"fmt"
	"slices"
	"sync/atomic"

	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rig is the physical representation of one character. Every variant exposes
// the same surface so balance and combat code never branch on the kind.
type Rig interface {
	Kind() RigKind
	Main() *physics.Body
	MainPart() Part
	// Part returns nil when the variant does not simulate p.
	Part(p Part) *physics.Body
	// ApplyForceTo and ApplyImpulseTo fall back to the main body when p is
	// not simulated.
	ApplyForceTo(p Part, force rl.Vector3)
	ApplyImpulseTo(p Part, impulse rl.Vector3)
	ForEachBody(fn func(Part, *physics.Body))
	Constraints() []physics.Constraint

	// StandHeight is the main body's resting height above the surface.
	StandHeight() float32
	TotalMass() float32
	// UprightParts are kept vertical by the balance controller.
	UprightParts() []Part
	// LimbRests maps limb parts to their rest offsets from the main body in
	// the heading frame.
	LimbRests() map[Part]rl.Vector3
	// PoseRests maps the upright parts other than the main body to their
	// rest offsets, in the same frame as LimbRests.
	PoseRests() map[Part]rl.Vector3
	// Gait is nil for variants that simulate their legs.
	Gait() *Gait

	Translate(delta rl.Vector3)
	SetVelocity(v rl.Vector3)
	// Teardown detaches every joint and body from the world. Calling it again
	// does nothing.
	Teardown()
}

type material struct {
	linearDamping  float32
	angularDamping float32
	friction       float32
	restitution    float32
}

type partSpec struct {
	part   Part
	shape  physics.Shape
	mass   float32
	offset rl.Vector3    // from the main body, heading frame
	rot    rl.Quaternion // zero value is identity
	mat    *material     // nil uses the layout default
}

type jointSpec struct {
	a, b  Part
	pivot rl.Vector3 // heading frame, relative to the main body
	axis  rl.Vector3 // hinge axis; zero makes a ball joint
}

type layout struct {
	kind        RigKind
	main        Part
	standHeight float32
	mat         material
	parts       []partSpec
	joints      []jointSpec
	upright     []Part
	limbs       []Part
	gait        bool
}

var groupSeq atomic.Uint32

type bodyRig struct {
	kind        RigKind
	world       *physics.World
	main        Part
	parts       [partCount]*physics.Body
	order       []Part
	joints      []physics.Constraint
	standHeight float32
	totalMass   float32
	upright     []Part
	rests       map[Part]rl.Vector3
	poses       map[Part]rl.Vector3
	gait        *Gait
}

// NewRig builds a rig of the given kind with its main body at position,
// facing yaw, and adds it to w.
func NewRig(kind RigKind, w *physics.World, name string, position rl.Vector3, yaw float32) Rig {
	return buildRig(layoutFor(kind), w, name, position, yaw)
}

func layoutFor(kind RigKind) layout {
	switch kind {
	case RigFullRagdoll:
		return ragdollLayout()
	case RigHybrid:
		return hybridLayout()
	}
	return proxyLayout()
}

func buildRig(l layout, w *physics.World, name string, position rl.Vector3, yaw float32) *bodyRig {
	heading := physics.YawRotation(yaw)
	group := groupSeq.Add(1)
	r := &bodyRig{
		kind:        l.kind,
		world:       w,
		main:        l.main,
		standHeight: l.standHeight,
		upright:     l.upright,
		rests:       make(map[Part]rl.Vector3, len(l.limbs)),
		poses:       make(map[Part]rl.Vector3),
	}

	for _, s := range l.parts {
		b := physics.NewBody(fmt.Sprintf("%s/%s", name, s.part), s.shape, s.mass)
		b.Position = rl.Vector3Add(position, rl.Vector3RotateByQuaternion(s.offset, heading))
		rot := s.rot
		if rot == (rl.Quaternion{}) {
			rot = rl.QuaternionIdentity()
		}
		b.Orientation = rl.QuaternionNormalize(rl.QuaternionMultiply(heading, rot))
		m := l.mat
		if s.mat != nil {
			m = *s.mat
		}
		b.LinearDamping = m.linearDamping
		b.AngularDamping = m.angularDamping
		b.Friction = m.friction
		b.Restitution = m.restitution
		b.Group = group
		b.CanSleep = false

		w.AddBody(b)
		r.parts[s.part] = b
		r.order = append(r.order, s.part)
		r.totalMass += s.mass
	}

	for _, s := range l.parts {
		if slices.Contains(l.limbs, s.part) {
			r.rests[s.part] = s.offset
		}
		if s.part != l.main && slices.Contains(l.upright, s.part) {
			r.poses[s.part] = s.offset
		}
	}

	for _, j := range l.joints {
		a, b := r.parts[j.a], r.parts[j.b]
		if a == nil || b == nil {
			continue
		}
		pivot := rl.Vector3Add(position, rl.Vector3RotateByQuaternion(j.pivot, heading))
		var c physics.Constraint
		if j.axis == (rl.Vector3{}) {
			c = physics.NewPointConstraint(a, localPoint(a, pivot), b, localPoint(b, pivot))
		} else {
			axis := rl.Vector3RotateByQuaternion(j.axis, heading)
			c = physics.NewHingeConstraint(a, localPoint(a, pivot), localDir(a, axis), b, localPoint(b, pivot), localDir(b, axis))
		}
		w.AddConstraint(c)
		r.joints = append(r.joints, c)
	}

	if l.gait {
		r.gait = &Gait{}
	}
	return r
}

func localPoint(b *physics.Body, world rl.Vector3) rl.Vector3 {
	return localDir(b, rl.Vector3Subtract(world, b.Position))
}

func localDir(b *physics.Body, world rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(world, rl.QuaternionInvert(b.Orientation))
}

func (r *bodyRig) Kind() RigKind { return r.kind }

func (r *bodyRig) Main() *physics.Body { return r.parts[r.main] }

func (r *bodyRig) MainPart() Part { return r.main }

func (r *bodyRig) Part(p Part) *physics.Body {
	if p < 0 || p >= partCount {
		return nil
	}
	return r.parts[p]
}

func (r *bodyRig) bodyOrMain(p Part) *physics.Body {
	if b := r.Part(p); b != nil {
		return b
	}
	return r.Main()
}

func (r *bodyRig) ApplyForceTo(p Part, force rl.Vector3) {
	r.bodyOrMain(p).ApplyCentralForce(force)
}

func (r *bodyRig) ApplyImpulseTo(p Part, impulse rl.Vector3) {
	r.bodyOrMain(p).ApplyCentralImpulse(impulse)
}

func (r *bodyRig) ForEachBody(fn func(Part, *physics.Body)) {
	for _, p := range r.order {
		if b := r.parts[p]; b != nil {
			fn(p, b)
		}
	}
}

func (r *bodyRig) Constraints() []physics.Constraint {
	return append([]physics.Constraint(nil), r.joints...)
}

func (r *bodyRig) StandHeight() float32 { return r.standHeight }

func (r *bodyRig) TotalMass() float32 { return r.totalMass }

func (r *bodyRig) UprightParts() []Part { return r.upright }

func (r *bodyRig) LimbRests() map[Part]rl.Vector3 { return r.rests }

func (r *bodyRig) PoseRests() map[Part]rl.Vector3 { return r.poses }

func (r *bodyRig) Gait() *Gait { return r.gait }

func (r *bodyRig) Translate(delta rl.Vector3) {
	r.ForEachBody(func(_ Part, b *physics.Body) {
		b.Position = rl.Vector3Add(b.Position, delta)
	})
}

func (r *bodyRig) SetVelocity(v rl.Vector3) {
	r.ForEachBody(func(_ Part, b *physics.Body) {
		b.Velocity = v
	})
}

func (r *bodyRig) Teardown() {
	if r.world == nil {
		return
	}
	for _, c := range r.joints {
		if c != nil {
			r.world.RemoveConstraint(c)
		}
	}
	r.joints = nil
	r.ForEachBody(func(_ Part, b *physics.Body) {
		r.world.RemoveBody(b)
	})
	r.world = nil
}
