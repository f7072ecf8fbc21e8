package arena

import (
	"fmt"
	"log"
	"math"
	"math/rand"

	"brawler/internal/character"
	"brawler/internal/config"
	"brawler/internal/engine"
	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Result describes how a round ended.
type Result struct {
	Round  int
	Winner character.Team
	Draw   bool
}

func (r Result) String() string {
	if r.Draw {
		return fmt.Sprintf("round %d: draw", r.Round)
	}
	return fmt.Sprintf("round %d: %s wins", r.Round, r.Winner)
}

// Arena owns the physics world, the platform and the roster, and runs the
// fixed tick: physics, characters, removal of the fallen, round bookkeeping.
type Arena struct {
	tuning   *config.Tuning
	rng      *rand.Rand
	kind     character.RigKind
	world    *physics.World
	platform *physics.Body
	roster   *character.Roster

	Events       engine.EventWithArg[character.Event]
	RoundOver    engine.EventWithArg[Result]
	RoundStarted engine.Event

	round      int
	tick       int
	nextID     int
	blueWins   int
	redWins    int
	draws      int
	roundOver  bool
	resetIn    int
	powerTimer int
}

func New(tuning *config.Tuning, rng *rand.Rand, kind character.RigKind) *Arena {
	if tuning == nil {
		tuning = config.Default()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	w := physics.NewWorld(rl.Vector3{Y: tuning.World.Gravity})
	w.Iterations = tuning.World.SolverIterations

	p := tuning.Platform
	half := p.HalfSize()
	platform := physics.NewStaticBox("platform",
		rl.Vector3{Y: p.Top - p.Thickness/2},
		rl.Vector3{X: half, Y: p.Thickness / 2, Z: half})
	w.AddBody(platform)

	return &Arena{
		tuning:   tuning,
		rng:      rng,
		kind:     kind,
		world:    w,
		platform: platform,
		roster:   character.NewRoster(),
	}
}

// StartRound spawns a fresh set of fighters for each team.
func (a *Arena) StartRound() {
	a.round++
	a.roundOver = false
	a.resetIn = 0
	for i := 0; i < a.tuning.Round.FightersPerTeam; i++ {
		a.SpawnCharacter(character.TeamBlue)
		a.SpawnCharacter(character.TeamRed)
	}
	log.Printf("Arena: round %d started (%s rig, %d per team)", a.round, a.kind, a.tuning.Round.FightersPerTeam)
	a.RoundStarted.Invoke()
}

// SpawnCharacter places a new fighter at its team's spawn line, facing the
// other team.
func (a *Arena) SpawnCharacter(team character.Team) *character.Character {
	r := a.tuning.Round
	x, yaw := r.BlueSpawnX, float32(math.Pi/2)
	if team == character.TeamRed {
		x, yaw = r.RedSpawnX, -math.Pi/2
	}

	// Fan teammates out along Z: 0, +s, -s, +2s, ...
	n := 0
	for _, c := range a.roster.Members() {
		if c.Team == team {
			n++
		}
	}
	z := float32((n+1)/2) * r.SpawnSpacing
	if n%2 == 0 {
		z = -z
	}

	a.nextID++
	c := character.New(character.Options{
		ID:          a.nextID,
		Team:        team,
		Kind:        a.kind,
		Spawn:       rl.Vector3{X: x, Y: a.tuning.Platform.Top, Z: z},
		Yaw:         yaw,
		World:       a.world,
		Registry:    a.roster,
		Tuning:      a.tuning,
		Rand:        rand.New(rand.NewSource(a.rng.Int63())),
		Events:      &a.Events,
		ThinkOffset: 1 + a.nextID%max(a.tuning.AI.ThinkInterval, 1),
	})
	a.roster.Add(c)
	return c
}

// Step advances the arena by one fixed tick.
func (a *Arena) Step() {
	dt := a.tuning.World.TimeStep
	a.tick++

	a.world.Step(dt)

	members := a.roster.Members()
	for i := len(members) - 1; i >= 0; i-- {
		members[i].Update(dt)
	}

	for _, c := range members {
		if !c.IsAlive() {
			c.Destroy()
			a.roster.Remove(c)
		}
	}

	a.checkRound()
	a.updatePowerEvents()
}

func (a *Arena) checkRound() {
	if a.round == 0 {
		return
	}
	if a.roundOver {
		if a.resetIn--; a.resetIn <= 0 {
			a.Reset()
		}
		return
	}

	blue := a.roster.Living(character.TeamBlue)
	red := a.roster.Living(character.TeamRed)
	if blue > 0 && red > 0 {
		return
	}

	result := Result{Round: a.round}
	switch {
	case blue == 0 && red == 0:
		result.Draw = true
		a.draws++
	case blue == 0:
		result.Winner = character.TeamRed
		a.redWins++
	default:
		result.Winner = character.TeamBlue
		a.blueWins++
	}
	a.roundOver = true
	a.resetIn = a.tuning.Round.ResetDelay
	log.Printf("Arena: %s (blue %d - red %d, %d draws)", result, a.blueWins, a.redWins, a.draws)
	a.RoundOver.Invoke(result)

	if a.resetIn <= 0 {
		a.Reset()
	}
}

// Reset removes every fighter and starts the next round.
func (a *Arena) Reset() {
	for _, c := range a.roster.Members() {
		c.Destroy()
		a.roster.Remove(c)
	}
	if bodies, joints := a.Orphans(); bodies > 0 || joints > 0 {
		log.Printf("Arena: %d bodies and %d constraints left behind after reset", bodies, joints)
	}
	a.StartRound()
}

// Orphans counts dynamic bodies and constraints not owned by a living
// roster member.
func (a *Arena) Orphans() (bodies, constraints int) {
	owned := make(map[*physics.Body]bool)
	ownedJoints := 0
	for _, c := range a.roster.Members() {
		c.Rig().ForEachBody(func(_ character.Part, b *physics.Body) {
			owned[b] = true
		})
		ownedJoints += len(c.Rig().Constraints())
	}
	for _, b := range a.world.Bodies() {
		if !b.IsStatic() && !owned[b] {
			bodies++
		}
	}
	return bodies, len(a.world.Constraints()) - ownedJoints
}

// GiveRandomPower boosts one living fighter chosen uniformly. It returns nil
// when nobody is alive.
func (a *Arena) GiveRandomPower() *character.Character {
	var living []*character.Character
	for _, c := range a.roster.Members() {
		if c.IsAlive() {
			living = append(living, c)
		}
	}
	if len(living) == 0 {
		return nil
	}
	c := living[a.rng.Intn(len(living))]
	c.ApplyPowerBoost()
	return c
}

func (a *Arena) updatePowerEvents() {
	interval := a.tuning.Round.PowerEventInterval
	if interval <= 0 {
		return
	}
	if a.powerTimer++; a.powerTimer >= interval {
		a.powerTimer = 0
		a.GiveRandomPower()
	}
}

// SetRigKind selects the rig used from the next spawn on.
func (a *Arena) SetRigKind(kind character.RigKind) {
	a.kind = kind
}

func (a *Arena) RigKind() character.RigKind { return a.kind }

func (a *Arena) Characters() []*character.Character { return a.roster.Members() }

// Scores returns round wins per team and the number of drawn rounds.
func (a *Arena) Scores() (blue, red, draws int) { return a.blueWins, a.redWins, a.draws }

func (a *Arena) Round() int { return a.round }

func (a *Arena) Tick() int { return a.tick }

func (a *Arena) World() *physics.World { return a.world }

func (a *Arena) Platform() *physics.Body { return a.platform }

func (a *Arena) Tuning() *config.Tuning { return a.tuning }
