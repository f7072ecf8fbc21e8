package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Body     *Body
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest body hit along direction within maxDistance.
// A nil filter accepts every body.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, filter func(*Body) bool) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closest RaycastHit
	closest.Distance = maxDistance
	hit := false

	for _, b := range w.Bodies() {
		if filter != nil && !filter(b) {
			continue
		}
		var h RaycastHit
		var ok bool
		switch b.Shape.Kind {
		case ShapeBox:
			h, ok = raycastBox(origin, direction, b.obb(), maxDistance)
		default:
			h, ok = raycastSwept(origin, direction, b, maxDistance)
		}
		if ok && h.Distance < closest.Distance {
			closest = h
			closest.Body = b
			hit = true
		}
	}
	return closest, hit
}

// raycastBox runs the slab test in the box's local frame.
func raycastBox(origin, direction rl.Vector3, box OBB, maxDistance float32) (RaycastHit, bool) {
	o := box.toLocal(origin)
	d := rl.Vector3{
		X: rl.Vector3DotProduct(direction, box.Axes[0]),
		Y: rl.Vector3DotProduct(direction, box.Axes[1]),
		Z: rl.Vector3DotProduct(direction, box.Axes[2]),
	}
	origins := [3]float32{o.X, o.Y, o.Z}
	dirs := [3]float32{d.X, d.Y, d.Z}
	half := [3]float32{box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z}

	tmin, tmax := float32(-1e30), float32(1e30)
	axis, sign := -1, float32(0)
	for i := 0; i < 3; i++ {
		if dirs[i] == 0 {
			if origins[i] < -half[i] || origins[i] > half[i] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (-half[i] - origins[i]) / dirs[i]
		t2 := (half[i] - origins[i]) / dirs[i]
		s := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			s = 1
		}
		if t1 > tmin {
			tmin = t1
			axis, sign = i, s
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}
	t := tmin
	if t < 0 {
		// Origin inside the box
		t = 0
		axis = -1
	}

	var normal rl.Vector3
	if axis >= 0 {
		normal = rl.Vector3Scale(box.Axes[axis], sign)
	} else {
		normal = rl.Vector3Negate(direction)
	}
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// raycastSwept tests the ray against spheres placed along the body's swept
// segment, which is exact for spheres and close enough for capsules.
func raycastSwept(origin, direction rl.Vector3, b *Body, maxDistance float32) (RaycastHit, bool) {
	start, end, radius := b.Segment()
	best := RaycastHit{Distance: maxDistance}
	found := false
	for _, t := range [3]float32{0, 0.5, 1} {
		center := rl.Vector3Lerp(start, end, t)
		if h, ok := raycastSphere(origin, direction, center, radius, maxDistance); ok && h.Distance < best.Distance {
			best = h
			found = true
		}
		if start == end {
			break
		}
	}
	return best, found
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	b := rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	sq := float32(math.Sqrt(float64(discriminant)))
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
