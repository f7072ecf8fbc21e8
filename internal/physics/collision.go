package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// Penetration allowed before positional correction kicks in
	penetrationSlop = 0.005
	// Closing speeds below this never bounce
	restitutionThreshold = 1.0
)

// collideStatic resolves a dynamic body against a static box. The body's
// swept sphere is sampled at both ends and the middle so a body lying flat
// gets support along its length.
func (w *World) collideStatic(b, s *Body) {
	if b.IsSleeping || s.Shape.Kind != ShapeBox {
		return
	}
	box := s.obb()
	start, end, radius := b.Segment()

	for _, t := range [3]float32{0, 1, 0.5} {
		// Recompute from the current pose: earlier samples may have moved it.
		start, end, _ = b.Segment()
		p := rl.Vector3Lerp(start, end, t)

		closest := ClosestPointOnOBB(box, p)
		d := rl.Vector3Subtract(p, closest)
		dist := rl.Vector3Length(d)

		var normal rl.Vector3
		var pen float32
		if dist > 1e-5 {
			if dist >= radius {
				continue
			}
			normal = rl.Vector3Scale(d, 1/dist)
			pen = radius - dist
		} else {
			var depth float32
			normal, depth = box.exitFace(p)
			pen = radius + depth
		}

		point := rl.Vector3Subtract(p, rl.Vector3Scale(normal, radius))
		w.resolveContact(b, s, point, normal, pen)

		if start == end {
			break
		}
	}
}

// collidePair resolves two dynamic bodies as swept spheres.
func (w *World) collidePair(a, b *Body) {
	a0, a1, ra := a.Segment()
	b0, b1, rb := b.Segment()
	pa, pb := closestPointsOnSegments(a0, a1, b0, b1)

	d := rl.Vector3Subtract(pa, pb)
	dist := rl.Vector3Length(d)
	minDist := ra + rb
	if dist >= minDist {
		return
	}

	var normal rl.Vector3
	if dist > 1e-5 {
		normal = rl.Vector3Scale(d, 1/dist)
	} else {
		normal = rl.Vector3{Y: 1}
	}
	point := rl.Vector3Add(pb, rl.Vector3Scale(normal, rb))
	w.resolveContact(a, b, point, normal, minDist-dist)
}

// resolveContact pushes a out of b along normal (pointing from b to a) and
// applies a restitution impulse plus Coulomb friction at point.
func (w *World) resolveContact(a, b *Body, point, normal rl.Vector3, pen float32) {
	wSum := a.invMass + b.invMass
	if wSum <= 0 {
		return
	}

	if corr := pen - penetrationSlop; corr > 0 {
		a.Position = rl.Vector3Add(a.Position, rl.Vector3Scale(normal, corr*a.invMass/wSum))
		b.Position = rl.Vector3Subtract(b.Position, rl.Vector3Scale(normal, corr*b.invMass/wSum))
	}

	rA := rl.Vector3Subtract(point, a.Position)
	rB := rl.Vector3Subtract(point, b.Position)
	rel := rl.Vector3Subtract(a.VelocityAt(point), b.VelocityAt(point))
	vn := rl.Vector3DotProduct(rel, normal)

	w.recordContact(a, b, point, normal, -vn)

	if vn >= 0 {
		return
	}
	if a.IsSleeping || b.IsSleeping {
		if -vn > SleepVelocityThreshold*2 {
			a.Wake()
			b.Wake()
		}
	}

	e := (a.Restitution + b.Restitution) / 2
	if -vn < restitutionThreshold {
		e = 0
	}
	kn := a.invMass + b.invMass +
		a.invInertia*lengthSq(cross(rA, normal)) +
		b.invInertia*lengthSq(cross(rB, normal))
	jn := -(1 + e) * vn / kn
	applyPairImpulse(a, b, rl.Vector3Scale(normal, jn), rA, rB)

	// Friction against the tangential slip that remains.
	rel = rl.Vector3Subtract(a.VelocityAt(point), b.VelocityAt(point))
	vt := rl.Vector3Subtract(rel, rl.Vector3Scale(normal, rl.Vector3DotProduct(rel, normal)))
	slip := rl.Vector3Length(vt)
	if slip < 1e-5 {
		return
	}
	tangent := rl.Vector3Scale(vt, 1/slip)
	kt := a.invMass + b.invMass +
		a.invInertia*lengthSq(cross(rA, tangent)) +
		b.invInertia*lengthSq(cross(rB, tangent))
	jt := slip / kt
	mu := (a.Friction + b.Friction) / 2
	if limit := mu * jn; jt > limit {
		jt = limit
	}
	applyPairImpulse(a, b, rl.Vector3Scale(tangent, -jt), rA, rB)
}
