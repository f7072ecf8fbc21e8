package character

import (
	"math"

	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Local +X is the character's left when it faces +Z.

func proxyLayout() layout {
	return layout{
		kind:        RigSingleProxy,
		main:        PartTorso,
		standHeight: 0.95,
		mat:         material{linearDamping: 0.3, angularDamping: 0.9, friction: 0.6},
		parts: []partSpec{
			{part: PartTorso, shape: physics.Capsule(0.4, 1.8), mass: 10},
		},
		upright: []Part{PartTorso},
	}
}

func hybridLayout() layout {
	head := &material{linearDamping: 0.8, angularDamping: 0.95, friction: 0.6}
	arm := &material{linearDamping: 0.8, angularDamping: 0.85, friction: 0.5}
	forward := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, math.Pi/2)

	parts := []partSpec{
		{part: PartTorso, shape: physics.Cylinder(0.4, 1.8), mass: 10},
		{part: PartHead, shape: physics.Sphere(0.35), mass: 2.5, offset: rl.Vector3{Y: 1.2}, mat: head},
	}
	joints := []jointSpec{
		{a: PartTorso, b: PartHead, pivot: rl.Vector3{Y: 0.9}},
		{a: PartTorso, b: PartHead, pivot: rl.Vector3{Y: 0.9, Z: 0.25}},
	}

	for _, side := range []struct {
		x                    float32
		upper, forearm, hand Part
	}{
		{0.5, PartUpperArmL, PartForearmL, PartHandL},
		{-0.5, PartUpperArmR, PartForearmR, PartHandR},
	} {
		parts = append(parts,
			partSpec{part: side.upper, shape: physics.Box(rl.Vector3{X: 0.12, Y: 0.4, Z: 0.12}), mass: 0.6,
				offset: rl.Vector3{X: side.x, Y: 0.2}, mat: arm},
			partSpec{part: side.forearm, shape: physics.Box(rl.Vector3{X: 0.1, Y: 0.35, Z: 0.1}), mass: 0.5,
				offset: rl.Vector3{X: side.x, Y: -0.2, Z: 0.35}, rot: forward, mat: arm},
			partSpec{part: side.hand, shape: physics.Sphere(0.15), mass: 0.3,
				offset: rl.Vector3{X: side.x, Y: -0.2, Z: 0.85}, mat: arm},
		)
		joints = append(joints,
			jointSpec{a: PartTorso, b: side.upper, pivot: rl.Vector3{X: side.x, Y: 0.6}},
			jointSpec{a: side.upper, b: side.forearm, pivot: rl.Vector3{X: side.x, Y: -0.2}, axis: rl.Vector3{X: 1}},
			jointSpec{a: side.forearm, b: side.hand, pivot: rl.Vector3{X: side.x, Y: -0.2, Z: 0.7}},
		)
	}

	return layout{
		kind:        RigHybrid,
		main:        PartTorso,
		standHeight: 0.95,
		mat:         material{linearDamping: 0.3, angularDamping: 0.9, friction: 0.6},
		parts:       parts,
		joints:      joints,
		upright:     []Part{PartTorso},
		limbs: []Part{
			PartUpperArmL, PartForearmL, PartHandL,
			PartUpperArmR, PartForearmR, PartHandR,
		},
		gait: true,
	}
}

func ragdollLayout() layout {
	box := func(x, y, z float32) physics.Shape {
		return physics.Box(rl.Vector3{X: x, Y: y, Z: z})
	}

	parts := []partSpec{
		{part: PartHips, shape: box(0.25, 0.12, 0.15), mass: 3},
		{part: PartSpine, shape: box(0.22, 0.15, 0.13), mass: 2.5, offset: rl.Vector3{Y: 0.27}},
		{part: PartChest, shape: box(0.28, 0.15, 0.15), mass: 2.5, offset: rl.Vector3{Y: 0.57}},
		{part: PartNeck, shape: box(0.07, 0.07, 0.07), mass: 0.5, offset: rl.Vector3{Y: 0.79}},
		{part: PartHead, shape: physics.Sphere(0.15), mass: 1.5, offset: rl.Vector3{Y: 1.01}},
	}
	joints := []jointSpec{
		{a: PartHips, b: PartSpine, pivot: rl.Vector3{Y: 0.12}},
		{a: PartSpine, b: PartChest, pivot: rl.Vector3{Y: 0.42}},
		{a: PartChest, b: PartNeck, pivot: rl.Vector3{Y: 0.72}},
		{a: PartNeck, b: PartHead, pivot: rl.Vector3{Y: 0.86}},
	}

	hinge := rl.Vector3{X: 1}
	for _, side := range []struct {
		sign                                    float32
		upper, forearm, hand, thigh, shin, foot Part
	}{
		{1, PartUpperArmL, PartForearmL, PartHandL, PartThighL, PartShinL, PartFootL},
		{-1, PartUpperArmR, PartForearmR, PartHandR, PartThighR, PartShinR, PartFootR},
	} {
		ax, lx := 0.38*side.sign, 0.14*side.sign
		parts = append(parts,
			partSpec{part: side.upper, shape: box(0.08, 0.2, 0.08), mass: 0.8, offset: rl.Vector3{X: ax, Y: 0.52}},
			partSpec{part: side.forearm, shape: box(0.07, 0.18, 0.07), mass: 0.6, offset: rl.Vector3{X: ax, Y: 0.14}},
			partSpec{part: side.hand, shape: box(0.06, 0.06, 0.06), mass: 0.3, offset: rl.Vector3{X: ax, Y: -0.1}},
			partSpec{part: side.thigh, shape: box(0.1, 0.25, 0.1), mass: 1.2, offset: rl.Vector3{X: lx, Y: -0.37}},
			partSpec{part: side.shin, shape: box(0.09, 0.23, 0.09), mass: 0.9, offset: rl.Vector3{X: lx, Y: -0.85}},
			partSpec{part: side.foot, shape: box(0.08, 0.04, 0.14), mass: 0.5, offset: rl.Vector3{X: lx, Y: -1.08, Z: 0.05}},
		)
		joints = append(joints,
			jointSpec{a: PartChest, b: side.upper, pivot: rl.Vector3{X: ax, Y: 0.72}},
			jointSpec{a: side.upper, b: side.forearm, pivot: rl.Vector3{X: ax, Y: 0.32}, axis: hinge},
			jointSpec{a: side.forearm, b: side.hand, pivot: rl.Vector3{X: ax, Y: -0.04}},
			jointSpec{a: PartHips, b: side.thigh, pivot: rl.Vector3{X: lx, Y: -0.12}},
			jointSpec{a: side.thigh, b: side.shin, pivot: rl.Vector3{X: lx, Y: -0.62}, axis: hinge},
			jointSpec{a: side.shin, b: side.foot, pivot: rl.Vector3{X: lx, Y: -1.06}},
		)
	}

	return layout{
		kind:        RigFullRagdoll,
		main:        PartHips,
		standHeight: 1.16,
		mat:         material{linearDamping: 0.4, angularDamping: 0.7, friction: 0.8, restitution: 0.1},
		parts:       parts,
		joints:      joints,
		upright: []Part{
			PartHips, PartSpine, PartChest, PartNeck, PartHead,
			PartThighL, PartShinL, PartFootL,
			PartThighR, PartShinR, PartFootR,
		},
		limbs: []Part{
			PartUpperArmL, PartForearmL, PartHandL,
			PartUpperArmR, PartForearmR, PartHandR,
		},
	}
}
