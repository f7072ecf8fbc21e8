package game

import (
	"math"

	"brawler/internal/character"
	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPlatform = rl.NewColor(70, 72, 86, 255)
	colorEdge     = rl.NewColor(200, 80, 60, 255)
	colorBlue     = rl.NewColor(70, 130, 230, 255)
	colorRed      = rl.NewColor(220, 70, 70, 255)
	colorBoost    = rl.NewColor(250, 210, 60, 255)
)

func teamColor(t character.Team) rl.Color {
	if t == character.TeamRed {
		return colorRed
	}
	return colorBlue
}

func (g *Game) drawArena() {
	p := g.Arena.Platform()
	size := rl.Vector3Scale(p.Shape.HalfSize, 2)
	rl.DrawCubeV(p.Position, size, colorPlatform)
	rl.DrawCubeWiresV(p.Position, size, colorEdge)

	for _, c := range g.Arena.Characters() {
		g.drawCharacter(c)
	}

	if g.DebugMode {
		r := g.Arena.Tuning().AI.SafeRadius
		top := g.Arena.Tuning().Platform.Top + 0.02
		rl.DrawCubeWiresV(rl.Vector3{Y: top}, rl.Vector3{X: 2 * r, Y: 0.01, Z: 2 * r}, rl.Yellow)
	}
}

func (g *Game) drawCharacter(c *character.Character) {
	color := teamColor(c.Team)
	if c.IsStunned() {
		color = rl.ColorBrightness(color, 0.4)
	}
	color = rl.Fade(color, c.Opacity())

	rig := c.Rig()
	rig.ForEachBody(func(part character.Part, b *physics.Body) {
		col := color
		if part == character.PartHead {
			col = rl.Fade(rl.NewColor(235, 200, 170, 255), c.Opacity())
		}
		drawBody(b, col)
	})

	if gait := rig.Gait(); gait != nil {
		legColor := rl.ColorBrightness(color, -0.3)
		for _, leg := range gait.Legs(rig.Main(), rig.StandHeight()) {
			rl.DrawCylinderEx(leg.Hip, leg.Knee, 0.12, 0.1, 8, legColor)
			rl.DrawCylinderEx(leg.Knee, leg.Foot, 0.1, 0.08, 8, legColor)
			rl.DrawSphere(leg.Foot, 0.12, legColor)
		}
	}

	top := rl.Vector3Add(c.Position(), rl.Vector3{Y: rig.StandHeight() + 0.4})
	if c.IsBoosted() {
		rl.DrawSphereWires(top, 0.25, 6, 6, colorBoost)
	}
	if g.DebugMode {
		if t := c.Target(); t != nil {
			rl.DrawLine3D(c.Position(), t.Position(), rl.Fade(color, 0.5))
		}
		if h := c.GrabbedTarget(); h != nil {
			rl.DrawLine3D(c.Position(), h.Position(), rl.Orange)
		}
	}
}

// drawBody draws one body in its own frame.
func drawBody(b *physics.Body, color rl.Color) {
	axis, angle := axisAngle(b.Orientation)

	rl.PushMatrix()
	rl.Translatef(b.Position.X, b.Position.Y, b.Position.Z)
	rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)

	s := b.Shape
	switch s.Kind {
	case physics.ShapeSphere:
		rl.DrawSphere(rl.Vector3{}, s.Radius, color)
	case physics.ShapeBox:
		rl.DrawCubeV(rl.Vector3{}, rl.Vector3Scale(s.HalfSize, 2), color)
	case physics.ShapeCylinder:
		half := rl.Vector3{Y: s.Height / 2}
		rl.DrawCylinderEx(rl.Vector3Negate(half), half, s.Radius, s.Radius, 12, color)
	case physics.ShapeCapsule:
		half := rl.Vector3{Y: s.Height/2 - s.Radius}
		rl.DrawCapsule(rl.Vector3Negate(half), half, s.Radius, 8, 6, color)
	}
	rl.PopMatrix()
}

// axisAngle splits a unit quaternion into a rotation axis and angle in
// radians. Near-identity rotations return the Y axis.
func axisAngle(q rl.Quaternion) (rl.Vector3, float32) {
	q = rl.QuaternionNormalize(q)
	if q.W < 0 {
		q = rl.Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
	}
	angle := 2 * float32(math.Acos(float64(min(q.W, 1))))
	s := float32(math.Sqrt(float64(1 - q.W*q.W)))
	if s < 1e-4 {
		return rl.Vector3{Y: 1}, 0
	}
	return rl.Vector3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}, angle
}
