package physics

import (
	"log"
	"math"

	"brawler/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - bodies within same or neighboring cells are checked
const CellSize = 5.0

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / CellSize))),
		Y: int(math.Floor(float64(pos.Y / CellSize))),
		Z: int(math.Floor(float64(pos.Z / CellSize))),
	}
}

// pairKey orders two body IDs so (a, b) and (b, a) share a key.
type pairKey struct {
	lo, hi uint64
}

func makePairKey(a, b *Body) pairKey {
	if a.ID > b.ID {
		return pairKey{b.ID, a.ID}
	}
	return pairKey{a.ID, b.ID}
}

type bodyPair struct {
	A, B *Body
}

// Contact describes the first tick two bodies touch.
type Contact struct {
	A, B   *Body
	Point  rl.Vector3
	Normal rl.Vector3 // points from B toward A
	Speed  float32    // closing speed along the normal
}

type World struct {
	Gravity    rl.Vector3
	Iterations int

	bodies      []*Body // dynamic
	statics     []*Body
	constraints []Constraint
	ignored     map[pairKey]int // pairs linked by non-colliding constraints
	grid        map[CellKey][]*Body
	nextID      uint64

	// Collision tracking for callbacks
	activeContacts  map[pairKey]bodyPair
	currentContacts map[pairKey]bodyPair

	ContactBegan engine.EventWithArg[Contact]
}

func NewWorld(gravity rl.Vector3) *World {
	return &World{
		Gravity:         gravity,
		Iterations:      10,
		ignored:         make(map[pairKey]int),
		grid:            make(map[CellKey][]*Body),
		activeContacts:  make(map[pairKey]bodyPair),
		currentContacts: make(map[pairKey]bodyPair),
	}
}

// AddBody registers b with the world. Mass properties are fixed here, so set
// Mass and Shape before adding.
func (w *World) AddBody(b *Body) {
	if b == nil || b.world == w {
		return
	}
	w.nextID++
	b.ID = w.nextID
	b.world = w
	b.warned = false
	b.updateMassProperties()
	if b.IsStatic() {
		w.statics = append(w.statics, b)
	} else {
		w.bodies = append(w.bodies, b)
	}
}

// RemoveBody detaches b along with any constraint still referencing it.
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.world != w {
		return
	}
	for i := len(w.constraints) - 1; i >= 0; i-- {
		ca, cb := w.constraints[i].Bodies()
		if ca == b || cb == b {
			w.RemoveConstraint(w.constraints[i])
		}
	}
	w.bodies = removeBody(w.bodies, b)
	w.statics = removeBody(w.statics, b)
	for k, p := range w.activeContacts {
		if p.A == b || p.B == b {
			delete(w.activeContacts, k)
		}
	}
	b.world = nil
	b.force = rl.Vector3{}
	b.torque = rl.Vector3{}
}

func removeBody(list []*Body, b *Body) []*Body {
	for i, other := range list {
		if other == b {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// AddConstraint links two bodies already in the world.
func (w *World) AddConstraint(c Constraint) {
	if c == nil {
		return
	}
	a, b := c.Bodies()
	if a == nil || b == nil || a.world != w || b.world != w {
		log.Printf("Physics: constraint skipped, both bodies must be in the world first")
		return
	}
	w.constraints = append(w.constraints, c)
	if !c.CollideConnected() {
		w.ignored[makePairKey(a, b)]++
	}
}

func (w *World) RemoveConstraint(c Constraint) {
	for i, other := range w.constraints {
		if other != c {
			continue
		}
		w.constraints = append(w.constraints[:i], w.constraints[i+1:]...)
		if !c.CollideConnected() {
			a, b := c.Bodies()
			key := makePairKey(a, b)
			if w.ignored[key]--; w.ignored[key] <= 0 {
				delete(w.ignored, key)
			}
		}
		return
	}
}

// Bodies returns every body in the world, dynamic first.
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.bodies)+len(w.statics))
	out = append(out, w.bodies...)
	return append(out, w.statics...)
}

func (w *World) Constraints() []Constraint {
	return append([]Constraint(nil), w.constraints...)
}

func (w *World) DynamicBodyCount() int {
	return len(w.bodies)
}

// Step advances the simulation by dt.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	w.currentContacts = make(map[pairKey]bodyPair)

	// 1. Forces, gravity and damping
	for _, b := range w.bodies {
		if b.IsSleeping {
			b.force, b.torque = rl.Vector3{}, rl.Vector3{}
			continue
		}
		b.integrateVelocity(w.Gravity, dt)
	}

	// 2. Positions and orientations
	for _, b := range w.bodies {
		if !b.IsSleeping {
			b.integratePosition(dt)
		}
	}

	// 3. Joints
	for i := 0; i < w.Iterations; i++ {
		for _, c := range w.constraints {
			c.solve(dt)
		}
	}

	// 4. Dynamic vs static
	for _, b := range w.bodies {
		for _, s := range w.statics {
			w.collideStatic(b, s)
		}
	}

	// 5. Dynamic pairs via spatial hashing
	w.rebuildGrid()
	checked := make(map[pairKey]bool)
	for _, b := range w.bodies {
		for _, other := range w.neighbors(b) {
			if other == b {
				continue
			}
			key := makePairKey(b, other)
			if checked[key] {
				continue
			}
			checked[key] = true
			if w.shouldCollide(b, other) {
				w.collidePair(b, other)
			}
		}
	}

	for _, b := range w.bodies {
		b.TrySleep(dt)
	}

	w.dispatchCollisionCallbacks()
}

func (w *World) shouldCollide(a, b *Body) bool {
	if a.Group != 0 && a.Group == b.Group {
		return false
	}
	if a.IsSleeping && b.IsSleeping {
		return false
	}
	if w.ignored[makePairKey(a, b)] > 0 {
		return false
	}
	return a.Bounds().Intersects(b.Bounds())
}

// rebuildGrid clears and repopulates the spatial hash grid
func (w *World) rebuildGrid() {
	for k := range w.grid {
		delete(w.grid, k)
	}
	for _, b := range w.bodies {
		cell := posToCell(b.Position)
		w.grid[cell] = append(w.grid[cell], b)
	}
}

// neighbors returns all bodies in the same cell and the 26 around it.
func (w *World) neighbors(b *Body) []*Body {
	cell := posToCell(b.Position)
	var out []*Body
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				out = append(out, w.grid[CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}]...)
			}
		}
	}
	return out
}

// recordContact marks a pair as touching this tick and fires ContactBegan on
// the first tick of a new contact.
func (w *World) recordContact(a, b *Body, point, normal rl.Vector3, speed float32) {
	key := makePairKey(a, b)
	if _, seen := w.currentContacts[key]; seen {
		return
	}
	w.currentContacts[key] = bodyPair{A: a, B: b}
	if _, active := w.activeContacts[key]; !active {
		w.ContactBegan.Invoke(Contact{A: a, B: b, Point: point, Normal: normal, Speed: speed})
	}
}

// dispatchCollisionCallbacks sends OnCollisionEnter/Exit to both bodies
func (w *World) dispatchCollisionCallbacks() {
	for key, p := range w.currentContacts {
		if _, ok := w.activeContacts[key]; !ok {
			p.A.OnCollisionEnter.Invoke(p.B)
			p.B.OnCollisionEnter.Invoke(p.A)
		}
	}
	for key, p := range w.activeContacts {
		if _, ok := w.currentContacts[key]; !ok {
			p.A.OnCollisionExit.Invoke(p.B)
			p.B.OnCollisionExit.Invoke(p.A)
		}
	}
	w.activeContacts = w.currentContacts
}
