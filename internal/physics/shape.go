package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	ShapeCylinder
	ShapeCapsule
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCapsule:
		return "capsule"
	}
	return "unknown"
}

// Shape is a body's extent in its local frame. Cylinders and capsules run
// along local Y and Height is their full length.
type Shape struct {
	Kind     ShapeKind
	Radius   float32
	Height   float32
	HalfSize rl.Vector3
}

func Sphere(radius float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

func Box(halfSize rl.Vector3) Shape {
	return Shape{Kind: ShapeBox, HalfSize: halfSize}
}

func Cylinder(radius, height float32) Shape {
	return Shape{Kind: ShapeCylinder, Radius: radius, Height: height}
}

func Capsule(radius, height float32) Shape {
	return Shape{Kind: ShapeCapsule, Radius: radius, Height: height}
}

// sweep describes the shape as a sphere swept along a local segment, which is
// what every dynamic contact test works with. Boxes sweep along their longest
// axis with the larger of the remaining half extents as radius.
func (s Shape) sweep() (axis rl.Vector3, halfLen, radius float32) {
	switch s.Kind {
	case ShapeBox:
		h := s.HalfSize
		switch {
		case h.X >= h.Y && h.X >= h.Z:
			return rl.Vector3{X: 1}, maxf(h.X-maxf(h.Y, h.Z), 0), maxf(h.Y, h.Z)
		case h.Y >= h.Z:
			return rl.Vector3{Y: 1}, maxf(h.Y-maxf(h.X, h.Z), 0), maxf(h.X, h.Z)
		default:
			return rl.Vector3{Z: 1}, maxf(h.Z-maxf(h.X, h.Y), 0), maxf(h.X, h.Y)
		}
	case ShapeCylinder, ShapeCapsule:
		return rl.Vector3{Y: 1}, maxf(s.Height/2-s.Radius, 0), s.Radius
	}
	return rl.Vector3{Y: 1}, 0, s.Radius
}

// boundingRadius is the radius of a sphere around the body origin that
// contains the whole shape.
func (s Shape) boundingRadius() float32 {
	_, half, r := s.sweep()
	if s.Kind == ShapeBox {
		return rl.Vector3Length(s.HalfSize)
	}
	return half + r
}

// inertia returns a scalar moment of inertia: the mean of the diagonal of
// the shape's inertia tensor.
func (s Shape) inertia(mass float32) float32 {
	switch s.Kind {
	case ShapeBox:
		h := s.HalfSize
		x2, y2, z2 := h.X*h.X, h.Y*h.Y, h.Z*h.Z
		return mass / 3 * 2 * (x2 + y2 + z2) / 3
	case ShapeCylinder, ShapeCapsule:
		r2 := s.Radius * s.Radius
		axial := mass * r2 / 2
		perp := mass * (3*r2 + s.Height*s.Height) / 12
		return (axial + 2*perp) / 3
	}
	return 0.4 * mass * s.Radius * s.Radius
}
