package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB builds an OBB from a center, half extents and orientation.
func NewOBB(center, halfSize rl.Vector3, q rl.Quaternion) OBB {
	return OBB{
		Center:   center,
		HalfSize: halfSize,
		Axes: [3]rl.Vector3{
			rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, q),
			rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, q),
			rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, q),
		},
	}
}

// obb returns the body's box as an OBB. Only meaningful for box shapes.
func (b *Body) obb() OBB {
	return NewOBB(b.Position, b.Shape.HalfSize, b.Orientation)
}

// toLocal projects a world point onto the box axes.
func (o OBB) toLocal(point rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(point, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

func (o OBB) toWorld(local rl.Vector3) rl.Vector3 {
	result := o.Center
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[0], local.X))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], local.Y))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], local.Z))
	return result
}

// ClosestPointOnOBB returns the closest point on or inside the OBB to the given point
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	local := o.toLocal(point)
	return o.toWorld(rl.Vector3{
		X: clampf(local.X, -o.HalfSize.X, o.HalfSize.X),
		Y: clampf(local.Y, -o.HalfSize.Y, o.HalfSize.Y),
		Z: clampf(local.Z, -o.HalfSize.Z, o.HalfSize.Z),
	})
}

// exitFace returns the outward normal of the face nearest to an interior
// point and the distance to that face.
func (o OBB) exitFace(point rl.Vector3) (rl.Vector3, float32) {
	l := o.toLocal(point)
	local := [3]float32{l.X, l.Y, l.Z}
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}

	best := -1
	var bestDepth float32
	var sign float32 = 1
	for i := 0; i < 3; i++ {
		depth := half[i] - absf(local[i])
		if best < 0 || depth < bestDepth {
			best = i
			bestDepth = depth
			sign = 1
			if local[i] < 0 {
				sign = -1
			}
		}
	}
	return rl.Vector3Scale(o.Axes[best], sign), bestDepth
}
