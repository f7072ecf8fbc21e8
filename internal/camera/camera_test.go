package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestPositionOrbitsTarget(t *testing.T) {
	c := New(rl.Vector3{Y: -4})
	d := rl.Vector3Distance(c.Position(), c.Target)
	if math.Abs(float64(d-c.Distance)) > 1e-3 {
		t.Errorf("Expected eye %v from target, got %v", c.Distance, d)
	}
	if c.Position().Y <= c.Target.Y {
		t.Errorf("Expected eye above target, got %v", c.Position().Y)
	}
}

func TestForwardLooksAtTarget(t *testing.T) {
	c := New(rl.Vector3{})
	c.Yaw, c.Pitch = 0, 30
	f := c.Forward()
	if f.X <= 0 || f.Y >= 0 {
		t.Errorf("Expected forward along +X and downward, got %v", f)
	}
	cam := c.GetRaylibCamera()
	if cam.Target != c.Target {
		t.Errorf("Expected camera target %v, got %v", c.Target, cam.Target)
	}
}

func TestZoomClamps(t *testing.T) {
	c := New(rl.Vector3{})
	c.Zoom(-1000)
	if c.Distance != c.MinDistance {
		t.Errorf("Expected distance %v, got %v", c.MinDistance, c.Distance)
	}
	c.Zoom(1000)
	if c.Distance != c.MaxDistance {
		t.Errorf("Expected distance %v, got %v", c.MaxDistance, c.Distance)
	}
}

func TestDirectionsAreOrthogonal(t *testing.T) {
	c := New(rl.Vector3{})
	for _, yaw := range []float32{-90, 0, 45, 170} {
		c.Yaw = yaw
		f, r := c.directions()
		if dot := rl.Vector3DotProduct(f, r); math.Abs(float64(dot)) > 1e-5 {
			t.Errorf("Expected orthogonal directions at yaw %v, got dot %v", yaw, dot)
		}
	}
}
