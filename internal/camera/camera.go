package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Right mouse drag orbits, the wheel
// zooms, and WASD pans the target on the ground plane.
type OrbitCamera struct {
	Target    rl.Vector3
	Distance  float32
	Yaw       float32 // degrees
	Pitch     float32 // degrees
	MoveSpeed float32
	LookSpeed float32
	ZoomSpeed float32

	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    38,
		Yaw:         -90,
		Pitch:       40,
		MoveSpeed:   12, // units per second
		LookSpeed:   0.25,
		ZoomSpeed:   2,
		MinDistance: 5,
		MaxDistance: 120,
	}
}

func (c *OrbitCamera) Update(deltaTime float32) {
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		c.Yaw += d.X * c.LookSpeed
		c.Pitch += d.Y * c.LookSpeed
	}
	c.Zoom(-rl.GetMouseWheelMove() * c.ZoomSpeed)

	forward, right := c.directions()
	var move rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		move = rl.Vector3Add(move, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = rl.Vector3Subtract(move, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = rl.Vector3Add(move, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = rl.Vector3Subtract(move, right)
	}
	if n := rl.Vector3Length(move); n > 0 {
		c.Target = rl.Vector3Add(c.Target, rl.Vector3Scale(move, c.MoveSpeed*deltaTime/n))
	}
	c.clamp()
}

// Zoom changes the orbit distance by delta within the allowed range.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance += delta
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	c.Pitch = min(max(c.Pitch, 5), 89)
	c.Distance = min(max(c.Distance, c.MinDistance), c.MaxDistance)
}

// directions returns the horizontal forward and right vectors of the view.
func (c *OrbitCamera) directions() (forward, right rl.Vector3) {
	yawRad := float64(c.Yaw) * math.Pi / 180
	forward = rl.Vector3{X: float32(math.Cos(yawRad)), Z: float32(math.Sin(yawRad))}
	right = rl.Vector3{X: float32(-math.Sin(yawRad)), Z: float32(math.Cos(yawRad))}
	return
}

// Position is the eye point on the orbit sphere.
func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	back := rl.Vector3{
		X: -float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: -float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	return rl.Vector3Add(c.Target, rl.Vector3Scale(back, c.Distance))
}

// Forward is the unit view direction.
func (c *OrbitCamera) Forward() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3Subtract(c.Target, c.Position()))
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}
