package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3CrossProduct(a, b)
}

func lengthSq(v rl.Vector3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clampLength scales v down so its length does not exceed max. A
// non-positive max disables the clamp.
func clampLength(v rl.Vector3, max float32) rl.Vector3 {
	if max <= 0 {
		return v
	}
	l := rl.Vector3Length(v)
	if l <= max || l == 0 {
		return v
	}
	return rl.Vector3Scale(v, max/l)
}

// rotateBy applies a small world-space rotation vector to q.
func rotateBy(q rl.Quaternion, rot rl.Vector3) rl.Quaternion {
	if rot.X == 0 && rot.Y == 0 && rot.Z == 0 {
		return q
	}
	spin := rl.QuaternionMultiply(rl.Quaternion{X: rot.X, Y: rot.Y, Z: rot.Z, W: 0}, q)
	q.X += 0.5 * spin.X
	q.Y += 0.5 * spin.Y
	q.Z += 0.5 * spin.Z
	q.W += 0.5 * spin.W
	return rl.QuaternionNormalize(q)
}

// closestPointsOnSegments returns the closest pair of points between
// segments p1-q1 and p2-q2.
func closestPointsOnSegments(p1, q1, p2, q2 rl.Vector3) (rl.Vector3, rl.Vector3) {
	const eps = 1e-6
	d1 := rl.Vector3Subtract(q1, p1)
	d2 := rl.Vector3Subtract(q2, p2)
	r := rl.Vector3Subtract(p1, p2)
	a := rl.Vector3DotProduct(d1, d1)
	e := rl.Vector3DotProduct(d2, d2)
	f := rl.Vector3DotProduct(d2, r)

	var s, t float32
	switch {
	case a <= eps && e <= eps:
		return p1, p2
	case a <= eps:
		t = clampf(f/e, 0, 1)
	default:
		c := rl.Vector3DotProduct(d1, r)
		if e <= eps {
			s = clampf(-c/a, 0, 1)
		} else {
			b := rl.Vector3DotProduct(d1, d2)
			denom := a*e - b*b
			if denom != 0 {
				s = clampf((b*f-c*e)/denom, 0, 1)
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clampf(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = clampf((b-c)/a, 0, 1)
			}
		}
	}

	return rl.Vector3Add(p1, rl.Vector3Scale(d1, s)), rl.Vector3Add(p2, rl.Vector3Scale(d2, t))
}

// TiltAngle returns the angle in radians between the body-local up axis of q
// and world up.
func TiltAngle(q rl.Quaternion) float32 {
	up := rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, q)
	return float32(math.Acos(float64(clampf(up.Y, -1, 1))))
}

// Yaw returns the heading of q around world Y, measured so that a yaw of 0
// faces +Z and π/2 faces +X.
func Yaw(q rl.Quaternion) float32 {
	f := rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, q)
	if absf(f.X) < 1e-6 && absf(f.Z) < 1e-6 {
		// Facing straight up or down; fall back to the twist part.
		return 2 * float32(math.Atan2(float64(q.Y), float64(q.W)))
	}
	return float32(math.Atan2(float64(f.X), float64(f.Z)))
}

// YawRotation is the pure heading quaternion for yaw.
func YawRotation(yaw float32) rl.Quaternion {
	return rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, yaw)
}
