package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const testDT = float32(1.0 / 60.0)

func newTestWorld() (*World, *Body) {
	w := NewWorld(rl.Vector3{Y: -25})
	platform := NewStaticBox("platform", rl.Vector3{Y: -5}, rl.Vector3{X: 15, Y: 1, Z: 15})
	w.AddBody(platform)
	return w, platform
}

func TestGravityIntegration(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -25})
	b := NewBody("ball", Sphere(0.5), 1)
	b.CanSleep = false
	w.AddBody(b)

	for i := 0; i < 60; i++ {
		w.Step(testDT)
	}

	if math.Abs(float64(b.Velocity.Y+25)) > 0.5 {
		t.Errorf("Expected vertical velocity near -25 after 1s, got %v", b.Velocity.Y)
	}
	if b.Position.Y > -12 {
		t.Errorf("Expected body to have fallen at least 12 units, got y=%v", b.Position.Y)
	}
}

func TestCapsuleRestsOnPlatform(t *testing.T) {
	w, _ := newTestWorld()
	b := NewBody("torso", Cylinder(0.4, 1.8), 10)
	b.Position = rl.Vector3{Y: -2.5}
	b.LinearDamping = 0.3
	b.AngularDamping = 0.9
	w.AddBody(b)

	for i := 0; i < 240; i++ {
		w.Step(testDT)
	}

	if math.Abs(float64(b.Position.Y+3.1)) > 0.05 {
		t.Errorf("Expected torso center at -3.1, got %v", b.Position.Y)
	}
	if rl.Vector3Length(b.Velocity) > 0.1 {
		t.Errorf("Expected torso at rest, got velocity %v", b.Velocity)
	}
}

func TestFrictionStopsSliding(t *testing.T) {
	w, _ := newTestWorld()
	b := NewBody("crate", Box(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}), 2)
	b.Position = rl.Vector3{Y: -3.5}
	b.Friction = 0.6
	b.AngularDamping = 1 // slide instead of rolling
	w.AddBody(b)
	b.Velocity = rl.Vector3{X: 4}

	for i := 0; i < 120; i++ {
		w.Step(testDT)
	}

	if absf(b.Velocity.X) > 0.05 {
		t.Errorf("Expected friction to stop the crate, got vx=%v", b.Velocity.X)
	}
	if b.Position.X <= 0 {
		t.Errorf("Expected crate to slide forward before stopping, got x=%v", b.Position.X)
	}
}

func TestPointConstraintHoldsPivot(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -25})
	anchor := NewStaticBox("anchor", rl.Vector3{Y: 5}, rl.Vector3{X: 0.1, Y: 0.1, Z: 0.1})
	bob := NewBody("bob", Sphere(0.2), 1)
	bob.Position = rl.Vector3{X: 1, Y: 5}
	bob.CanSleep = false
	w.AddBody(anchor)
	w.AddBody(bob)

	c := NewPointConstraint(anchor, rl.Vector3{}, bob, rl.Vector3{X: -1})
	w.AddConstraint(c)

	lowest := bob.Position.Y
	for i := 0; i < 120; i++ {
		w.Step(testDT)
		lowest = min(lowest, bob.Position.Y)
		pa := anchor.PointToWorld(c.PivotA)
		pb := bob.PointToWorld(c.PivotB)
		if d := rl.Vector3Distance(pa, pb); d > 0.1 {
			t.Fatalf("Tick %d: pivot separation %v exceeds tolerance", i, d)
		}
	}

	if lowest > 4.5 {
		t.Errorf("Expected bob to swing down, lowest y=%v", lowest)
	}
}

func TestHingeKeepsAxesAligned(t *testing.T) {
	w := NewWorld(rl.Vector3{Y: -25})
	upper := NewBody("upper", Box(rl.Vector3{X: 0.1, Y: 0.4, Z: 0.1}), 1)
	upper.Position = rl.Vector3{Y: 2}
	upper.UseGravity = false
	lower := NewBody("lower", Box(rl.Vector3{X: 0.1, Y: 0.35, Z: 0.1}), 0.5)
	lower.Position = rl.Vector3{Y: 1.25}
	w.AddBody(upper)
	w.AddBody(lower)

	h := NewHingeConstraint(upper, rl.Vector3{Y: -0.4}, rl.Vector3{X: 1}, lower, rl.Vector3{Y: 0.35}, rl.Vector3{X: 1})
	w.AddConstraint(h)

	// Twist the lower body around the forbidden axis.
	lower.AngularVelocity = rl.Vector3{Z: 6}
	for i := 0; i < 60; i++ {
		w.Step(testDT)
	}

	ha := upper.VectorToWorld(h.AxisA)
	hb := lower.VectorToWorld(h.AxisB)
	if dot := rl.Vector3DotProduct(ha, hb); dot < 0.95 {
		t.Errorf("Expected hinge axes to stay aligned, dot=%v", dot)
	}
}

func TestConstraintDisablesConnectedCollision(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	a := NewBody("a", Sphere(0.5), 1)
	b := NewBody("b", Sphere(0.5), 1)
	b.Position = rl.Vector3{X: 0.6}
	w.AddBody(a)
	w.AddBody(b)
	w.AddConstraint(NewPointConstraint(a, rl.Vector3{X: 0.3}, b, rl.Vector3{X: -0.3}))

	contacts := 0
	w.ContactBegan.AddListener(func(Contact) { contacts++ })
	w.Step(testDT)

	if contacts != 0 {
		t.Errorf("Expected no contact between connected bodies, got %d", contacts)
	}
}

func TestUnconnectedOverlapCollides(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	a := NewBody("a", Sphere(0.5), 1)
	b := NewBody("b", Sphere(0.5), 1)
	b.Position = rl.Vector3{X: 0.6}
	w.AddBody(a)
	w.AddBody(b)

	contacts := 0
	w.ContactBegan.AddListener(func(Contact) { contacts++ })
	w.Step(testDT)

	if contacts != 1 {
		t.Errorf("Expected 1 contact, got %d", contacts)
	}
	if d := rl.Vector3Distance(a.Position, b.Position); d < 0.99 {
		t.Errorf("Expected overlap to be resolved, distance %v", d)
	}
}

func TestGroupSkipsSelfCollision(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	a := NewBody("a", Sphere(0.5), 1)
	b := NewBody("b", Sphere(0.5), 1)
	a.Group, b.Group = 7, 7
	b.Position = rl.Vector3{X: 0.6}
	w.AddBody(a)
	w.AddBody(b)

	w.Step(testDT)

	if d := rl.Vector3Distance(a.Position, b.Position); absf(d-0.6) > 1e-4 {
		t.Errorf("Expected grouped bodies to pass through each other, distance %v", d)
	}
}

func TestCollisionCallbacks(t *testing.T) {
	w, platform := newTestWorld()
	ball := NewBody("ball", Sphere(0.5), 1)
	ball.Position = rl.Vector3{Y: -3.6}
	w.AddBody(ball)

	entered := 0
	ball.OnCollisionEnter.AddListener(func(other *Body) {
		if other == platform {
			entered++
		}
	})

	for i := 0; i < 30; i++ {
		w.Step(testDT)
	}
	if entered != 1 {
		t.Errorf("Expected one enter callback while resting, got %d", entered)
	}
}

func TestRaycastHitsPlatformTop(t *testing.T) {
	w, platform := newTestWorld()

	hit, ok := w.Raycast(rl.Vector3{X: 3, Y: 10, Z: -2}, rl.Vector3{Y: -1}, 50, func(b *Body) bool { return b.IsStatic() })
	if !ok {
		t.Fatal("Expected ray to hit the platform")
	}
	if hit.Body != platform {
		t.Errorf("Expected platform hit, got %v", hit.Body.Name)
	}
	if absf(hit.Point.Y+4) > 1e-4 {
		t.Errorf("Expected hit at y=-4, got %v", hit.Point.Y)
	}
	if hit.Normal.Y < 0.99 {
		t.Errorf("Expected upward normal, got %v", hit.Normal)
	}

	if _, ok := w.Raycast(rl.Vector3{X: 20, Y: 10}, rl.Vector3{Y: -1}, 50, nil); ok {
		t.Error("Expected ray beyond the edge to miss")
	}
}

func TestRaycastFilter(t *testing.T) {
	w, _ := newTestWorld()
	ball := NewBody("ball", Sphere(0.5), 1)
	ball.Position = rl.Vector3{Y: 0}
	w.AddBody(ball)

	hit, ok := w.Raycast(rl.Vector3{Y: 10}, rl.Vector3{Y: -1}, 50, nil)
	if !ok || hit.Body != ball {
		t.Fatal("Expected unfiltered ray to hit the ball first")
	}
	if absf(hit.Point.Y-0.5) > 1e-3 {
		t.Errorf("Expected hit at top of ball, got %v", hit.Point.Y)
	}

	hit, ok = w.Raycast(rl.Vector3{Y: 10}, rl.Vector3{Y: -1}, 50, func(b *Body) bool { return b != ball })
	if !ok || hit.Body == ball {
		t.Error("Expected filtered ray to skip the ball")
	}
}

func TestRemoveBodyDetachesConstraints(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	a := NewBody("a", Sphere(0.2), 1)
	b := NewBody("b", Sphere(0.2), 1)
	b.Position = rl.Vector3{X: 1}
	w.AddBody(a)
	w.AddBody(b)
	w.AddConstraint(NewPointConstraint(a, rl.Vector3{X: 0.5}, b, rl.Vector3{X: -0.5}))

	w.RemoveBody(a)

	if len(w.Constraints()) != 0 {
		t.Errorf("Expected 0 constraints after removing a linked body, got %d", len(w.Constraints()))
	}
	if len(w.Bodies()) != 1 {
		t.Errorf("Expected 1 body left, got %d", len(w.Bodies()))
	}
	if a.InWorld() {
		t.Error("Removed body still reports being in the world")
	}
}

func TestForceBeforeAddIsIgnored(t *testing.T) {
	b := NewBody("loose", Sphere(0.5), 1)
	b.ApplyCentralImpulse(rl.Vector3{X: 10})
	b.ApplyForce(rl.Vector3{X: 10}, rl.Vector3{Y: 1})

	if b.Velocity.X != 0 {
		t.Errorf("Expected impulse on a detached body to be ignored, got %v", b.Velocity)
	}
}

func TestConstraintNeedsBodiesInWorld(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	a := NewBody("a", Sphere(0.2), 1)
	b := NewBody("b", Sphere(0.2), 1)
	w.AddBody(a)

	w.AddConstraint(NewPointConstraint(a, rl.Vector3{}, b, rl.Vector3{}))
	if len(w.Constraints()) != 0 {
		t.Error("Constraint with a detached body should not be added")
	}
}

func TestImpulseAtPointSpins(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	b := NewBody("box", Box(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}), 1)
	w.AddBody(b)

	b.ApplyImpulse(rl.Vector3{Z: 1}, rl.Vector3{X: 0.5})

	if b.Velocity.Z <= 0 {
		t.Errorf("Expected linear velocity along +Z, got %v", b.Velocity)
	}
	if b.AngularVelocity.Y >= 0 {
		t.Errorf("Expected negative yaw spin from an off-center push, got %v", b.AngularVelocity)
	}
}

func TestSpeedClamp(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	b := NewBody("fast", Sphere(0.2), 1)
	b.MaxSpeed = 10
	w.AddBody(b)
	b.ApplyCentralImpulse(rl.Vector3{X: 100})

	w.Step(testDT)

	if s := rl.Vector3Length(b.Velocity); s > 10.001 {
		t.Errorf("Expected speed clamped to 10, got %v", s)
	}
}

func TestSleepAndWake(t *testing.T) {
	w := NewWorld(rl.Vector3{})
	b := NewBody("idle", Sphere(0.2), 1)
	w.AddBody(b)

	for i := 0; i < 60; i++ {
		w.Step(testDT)
	}
	if !b.IsSleeping {
		t.Fatal("Expected still body to fall asleep")
	}

	b.ApplyCentralImpulse(rl.Vector3{Y: 1})
	if b.IsSleeping {
		t.Error("Expected impulse to wake the body")
	}
}

func TestClosestPointsOnSegments(t *testing.T) {
	p, q := closestPointsOnSegments(
		rl.Vector3{X: -1}, rl.Vector3{X: 1},
		rl.Vector3{Y: 1, Z: -1}, rl.Vector3{Y: 1, Z: 1},
	)
	if rl.Vector3Length(p) > 1e-5 {
		t.Errorf("Expected closest point on first segment at origin, got %v", p)
	}
	if rl.Vector3Distance(q, rl.Vector3{Y: 1}) > 1e-5 {
		t.Errorf("Expected closest point on second segment at (0,1,0), got %v", q)
	}
}

func TestYawAndTilt(t *testing.T) {
	q := YawRotation(math.Pi / 2)
	if absf(Yaw(q)-math.Pi/2) > 1e-4 {
		t.Errorf("Expected yaw π/2, got %v", Yaw(q))
	}
	if TiltAngle(q) > 1e-3 {
		t.Errorf("Expected no tilt for a pure yaw, got %v", TiltAngle(q))
	}

	tilted := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, 0.5)
	if absf(TiltAngle(tilted)-0.5) > 1e-3 {
		t.Errorf("Expected tilt 0.5, got %v", TiltAngle(tilted))
	}
}
