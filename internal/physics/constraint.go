package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Constraint links two bodies. The solver is internal, so the interface
// cannot be implemented outside this package.
type Constraint interface {
	Bodies() (*Body, *Body)
	// CollideConnected reports whether the linked bodies still collide.
	CollideConnected() bool
	solve(dt float32)
}

// PointConstraint is a ball joint: PivotA on A and PivotB on B (each in its
// body's local frame) are kept together.
type PointConstraint struct {
	A, B           *Body
	PivotA, PivotB rl.Vector3
	Collide        bool

	// Fraction of positional error removed per solver iteration.
	Stiffness float32
}

func NewPointConstraint(a *Body, pivotA rl.Vector3, b *Body, pivotB rl.Vector3) *PointConstraint {
	return &PointConstraint{A: a, B: b, PivotA: pivotA, PivotB: pivotB, Stiffness: 0.5}
}

func (c *PointConstraint) Bodies() (*Body, *Body) { return c.A, c.B }

func (c *PointConstraint) CollideConnected() bool { return c.Collide }

func (c *PointConstraint) solve(dt float32) {
	solvePoint(c.A, c.PivotA, c.B, c.PivotB, c.Stiffness)
}

// HingeConstraint is a ball joint that also keeps AxisA on A aligned with
// AxisB on B, leaving one rotational degree of freedom.
type HingeConstraint struct {
	PointConstraint
	AxisA, AxisB rl.Vector3
}

func NewHingeConstraint(a *Body, pivotA, axisA rl.Vector3, b *Body, pivotB, axisB rl.Vector3) *HingeConstraint {
	return &HingeConstraint{
		PointConstraint: *NewPointConstraint(a, pivotA, b, pivotB),
		AxisA:           rl.Vector3Normalize(axisA),
		AxisB:           rl.Vector3Normalize(axisB),
	}
}

func (c *HingeConstraint) solve(dt float32) {
	c.PointConstraint.solve(dt)
	solveAxis(c.A, c.AxisA, c.B, c.AxisB, c.Stiffness)
}

// solvePoint removes a share of the separation between the two pivots and
// cancels their relative velocity.
func solvePoint(a *Body, pivotA rl.Vector3, b *Body, pivotB rl.Vector3, stiffness float32) {
	pa := a.PointToWorld(pivotA)
	pb := b.PointToWorld(pivotB)
	ra := rl.Vector3Subtract(pa, a.Position)
	rb := rl.Vector3Subtract(pb, b.Position)

	delta := rl.Vector3Subtract(pb, pa)
	if dist := rl.Vector3Length(delta); dist > 1e-6 {
		n := rl.Vector3Scale(delta, 1/dist)
		wa := a.invMass + a.invInertia*lengthSq(cross(ra, n))
		wb := b.invMass + b.invInertia*lengthSq(cross(rb, n))
		if w := wa + wb; w > 0 {
			corr := rl.Vector3Scale(n, dist/w*stiffness)
			a.Position = rl.Vector3Add(a.Position, rl.Vector3Scale(corr, a.invMass))
			a.Orientation = rotateBy(a.Orientation, rl.Vector3Scale(cross(ra, corr), a.invInertia))
			b.Position = rl.Vector3Subtract(b.Position, rl.Vector3Scale(corr, b.invMass))
			b.Orientation = rotateBy(b.Orientation, rl.Vector3Scale(cross(rb, corr), -b.invInertia))
		}
	}

	// Velocity pass along each world axis.
	for _, n := range [3]rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}} {
		rel := rl.Vector3Subtract(b.VelocityAt(pb), a.VelocityAt(pa))
		vn := rl.Vector3DotProduct(rel, n)
		wa := a.invMass + a.invInertia*lengthSq(cross(ra, n))
		wb := b.invMass + b.invInertia*lengthSq(cross(rb, n))
		w := wa + wb
		if w <= 0 {
			return
		}
		j := rl.Vector3Scale(n, vn/w)
		applyPairImpulse(a, b, j, ra, rb)
	}
}

// solveAxis rotates both bodies so their hinge axes line up and removes
// relative spin about any other axis.
func solveAxis(a *Body, axisA rl.Vector3, b *Body, axisB rl.Vector3, stiffness float32) {
	wa, wb := a.invInertia, b.invInertia
	w := wa + wb
	if w <= 0 {
		return
	}

	ha := a.VectorToWorld(axisA)
	hb := b.VectorToWorld(axisB)
	err := cross(ha, hb)
	a.Orientation = rotateBy(a.Orientation, rl.Vector3Scale(err, stiffness*wa/w))
	b.Orientation = rotateBy(b.Orientation, rl.Vector3Scale(err, -stiffness*wb/w))

	rel := rl.Vector3Subtract(b.AngularVelocity, a.AngularVelocity)
	perp := rl.Vector3Subtract(rel, rl.Vector3Scale(ha, rl.Vector3DotProduct(rel, ha)))
	a.AngularVelocity = rl.Vector3Add(a.AngularVelocity, rl.Vector3Scale(perp, wa/w))
	b.AngularVelocity = rl.Vector3Subtract(b.AngularVelocity, rl.Vector3Scale(perp, wb/w))
}

// applyPairImpulse applies +j to a at ra and -j to b at rb.
func applyPairImpulse(a, b *Body, j, ra, rb rl.Vector3) {
	a.Velocity = rl.Vector3Add(a.Velocity, rl.Vector3Scale(j, a.invMass))
	a.AngularVelocity = rl.Vector3Add(a.AngularVelocity, rl.Vector3Scale(cross(ra, j), a.invInertia))
	b.Velocity = rl.Vector3Subtract(b.Velocity, rl.Vector3Scale(j, b.invMass))
	b.AngularVelocity = rl.Vector3Subtract(b.AngularVelocity, rl.Vector3Scale(cross(rb, j), b.invInertia))
}
