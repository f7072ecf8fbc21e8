package game

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAxisAngleRoundTrip(t *testing.T) {
	axis := rl.Vector3Normalize(rl.Vector3{X: 1, Y: 2, Z: -1})
	q := rl.QuaternionFromAxisAngle(axis, 1.2)
	gotAxis, gotAngle := axisAngle(q)
	if math.Abs(float64(gotAngle-1.2)) > 1e-4 {
		t.Errorf("Expected angle 1.2, got %v", gotAngle)
	}
	if d := rl.Vector3Distance(gotAxis, axis); d > 1e-3 {
		t.Errorf("Expected axis %v, got %v", axis, gotAxis)
	}
}

func TestAxisAngleIdentity(t *testing.T) {
	axis, angle := axisAngle(rl.QuaternionIdentity())
	if angle != 0 || axis != (rl.Vector3{Y: 1}) {
		t.Errorf("Expected (Y, 0), got (%v, %v)", axis, angle)
	}
}
