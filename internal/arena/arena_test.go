package arena

import (
	"math"
	"math/rand"
	"testing"

	"brawler/internal/character"
	"brawler/internal/config"
	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newTestArena(kind character.RigKind) *Arena {
	tun := config.Default()
	tun.Debug.LogEvents = false
	return New(tun, rand.New(rand.NewSource(7)), kind)
}

func team(a *Arena, tm character.Team) []*character.Character {
	var out []*character.Character
	for _, c := range a.Characters() {
		if c.Team == tm {
			out = append(out, c)
		}
	}
	return out
}

func TestStartRoundSpawnsBothTeams(t *testing.T) {
	a := newTestArena(character.RigSingleProxy)
	a.tuning.Round.FightersPerTeam = 3
	started := 0
	a.RoundStarted.AddListener(func() { started++ })
	a.StartRound()

	if a.Round() != 1 {
		t.Errorf("Expected round 1, got %d", a.Round())
	}
	if started != 1 {
		t.Errorf("Expected one RoundStarted event, got %d", started)
	}
	blue, red := team(a, character.TeamBlue), team(a, character.TeamRed)
	if len(blue) != 3 || len(red) != 3 {
		t.Fatalf("Expected 3 fighters per team, got %d blue and %d red", len(blue), len(red))
	}
	for _, c := range blue {
		if c.Position().X != a.tuning.Round.BlueSpawnX {
			t.Errorf("Expected blue spawn x %v, got %v", a.tuning.Round.BlueSpawnX, c.Position().X)
		}
	}
	seen := make(map[float32]bool)
	for _, c := range red {
		z := c.Position().Z
		if seen[z] {
			t.Errorf("Expected distinct spawn z for teammates, got %v twice", z)
		}
		seen[z] = true
	}
}

func TestKnockoutLifecycle(t *testing.T) {
	a := newTestArena(character.RigHybrid)
	a.StartRound()
	blue := team(a, character.TeamBlue)[0]
	red := team(a, character.TeamRed)[0]

	for i := 0; i < 3 && !blue.IsKnockedOut(); i++ {
		red.CheckHit(blue.Position(), 2, 100)
	}
	if !blue.IsKnockedOut() {
		t.Fatalf("Expected blue to be knocked out")
	}
	if blue.Health != 0 {
		t.Errorf("Expected health 0 while knocked out, got %v", blue.Health)
	}
	if blue.KnockoutTicks() <= 0 {
		t.Errorf("Expected a wake timer, got %d", blue.KnockoutTicks())
	}

	dt := a.tuning.World.TimeStep
	limit := a.tuning.Knockout.MaxTicks + 1
	ticks := 0
	for blue.IsKnockedOut() && ticks < limit {
		a.world.Step(dt)
		blue.Update(dt)
		ticks++
	}
	if blue.IsKnockedOut() {
		t.Fatalf("Expected blue to wake within %d ticks", limit)
	}
	if ticks < a.tuning.Knockout.MinTicks {
		t.Errorf("Expected at least %d knockout ticks, got %d", a.tuning.Knockout.MinTicks, ticks)
	}
	if blue.Health != a.tuning.Knockout.WakeHealth {
		t.Errorf("Expected wake health %v, got %v", a.tuning.Knockout.WakeHealth, blue.Health)
	}
	if blue.Posture() != character.PostureActive {
		t.Errorf("Expected active posture after waking, got %s", blue.Posture())
	}
}

func TestRoundEndsWhenTeamFalls(t *testing.T) {
	a := newTestArena(character.RigSingleProxy)
	a.tuning.Round.ResetDelay = 5
	a.StartRound()

	var results []Result
	a.RoundOver.AddListener(func(r Result) { results = append(results, r) })

	red := team(a, character.TeamRed)[0]
	red.Rig().Translate(rl.Vector3{Y: a.tuning.World.FloorY - 10})
	a.Step()

	if len(results) != 1 {
		t.Fatalf("Expected one round result, got %d", len(results))
	}
	if results[0].Draw || results[0].Winner != character.TeamBlue {
		t.Errorf("Expected blue to win, got %s", results[0])
	}
	if blue, _, _ := a.Scores(); blue != 1 {
		t.Errorf("Expected blue score 1, got %d", blue)
	}
	if len(team(a, character.TeamRed)) != 0 {
		t.Errorf("Expected fallen red to be removed from the roster")
	}

	for i := 0; i < 5; i++ {
		a.Step()
	}
	if a.Round() != 2 {
		t.Errorf("Expected round 2 after the reset delay, got %d", a.Round())
	}
	if got := a.world.DynamicBodyCount(); got != 2 {
		t.Errorf("Expected 2 bodies after reset, got %d", got)
	}
	if len(results) != 1 {
		t.Errorf("Expected no extra results during the reset delay, got %d", len(results))
	}
}

func TestRoundDraw(t *testing.T) {
	a := newTestArena(character.RigSingleProxy)
	a.tuning.Round.ResetDelay = 100
	a.StartRound()

	var result Result
	a.RoundOver.AddListener(func(r Result) { result = r })
	for _, c := range a.Characters() {
		c.Rig().Translate(rl.Vector3{Y: a.tuning.World.FloorY - 10})
	}
	a.Step()

	if !result.Draw {
		t.Errorf("Expected a draw, got %s", result)
	}
	if _, _, draws := a.Scores(); draws != 1 {
		t.Errorf("Expected 1 draw, got %d", draws)
	}
}

func TestResetLeavesNoOrphans(t *testing.T) {
	a := newTestArena(character.RigHybrid)
	a.tuning.Round.FightersPerTeam = 2
	a.StartRound()

	for i := 0; i < 5; i++ {
		for j := 0; j < 10; j++ {
			a.Step()
		}
		a.Reset()
		if bodies, joints := a.Orphans(); bodies != 0 || joints != 0 {
			t.Fatalf("Expected no orphans after reset %d, got %d bodies and %d constraints", i, bodies, joints)
		}
		if got := a.world.DynamicBodyCount(); got != 32 {
			t.Errorf("Expected 32 bodies, got %d", got)
		}
		if got := len(a.world.Constraints()); got != 32 {
			t.Errorf("Expected 32 constraints, got %d", got)
		}
	}
	if a.Round() != 6 {
		t.Errorf("Expected round 6, got %d", a.Round())
	}
}

func TestSetRigKindAppliesOnReset(t *testing.T) {
	a := newTestArena(character.RigSingleProxy)
	a.StartRound()
	a.SetRigKind(character.RigFullRagdoll)
	for _, c := range a.Characters() {
		if c.Rig().Kind() != character.RigSingleProxy {
			t.Errorf("Expected existing fighters to keep their rig, got %s", c.Rig().Kind())
		}
	}
	a.Reset()
	for _, c := range a.Characters() {
		if c.Rig().Kind() != character.RigFullRagdoll {
			t.Errorf("Expected ragdoll after reset, got %s", c.Rig().Kind())
		}
	}
}

func TestGiveRandomPower(t *testing.T) {
	a := newTestArena(character.RigSingleProxy)
	if c := a.GiveRandomPower(); c != nil {
		t.Errorf("Expected nil with an empty arena, got %s", c)
	}
	a.StartRound()
	c := a.GiveRandomPower()
	if c == nil {
		t.Fatalf("Expected a boosted character")
	}
	if !c.IsBoosted() || c.Strength != a.tuning.Boost.Strength {
		t.Errorf("Expected %s to be boosted with strength %v, got %v", c, a.tuning.Boost.Strength, c.Strength)
	}
}

func TestPowerEventInterval(t *testing.T) {
	a := newTestArena(character.RigSingleProxy)
	a.tuning.Round.PowerEventInterval = 10
	boosts := 0
	a.Events.AddListener(func(e character.Event) {
		if e.Kind == character.EventBoosted {
			boosts++
		}
	})
	a.StartRound()
	for i := 0; i < 35; i++ {
		a.Step()
	}
	if boosts != 3 {
		t.Errorf("Expected 3 power events, got %d", boosts)
	}
}

func TestLongSimulationStaysFinite(t *testing.T) {
	for _, kind := range []character.RigKind{character.RigSingleProxy, character.RigHybrid, character.RigFullRagdoll} {
		a := newTestArena(kind)
		a.tuning.Round.FightersPerTeam = 2
		a.tuning.Round.ResetDelay = 30
		a.StartRound()
		for i := 0; i < 1200; i++ {
			a.Step()
		}
		for _, c := range a.Characters() {
			c.Rig().ForEachBody(func(p character.Part, b *physics.Body) {
				v := b.Position
				if math.IsNaN(float64(v.X+v.Y+v.Z)) || math.IsInf(float64(v.X+v.Y+v.Z), 0) {
					t.Errorf("%s: expected finite position for %s/%s, got %v", kind, c, p, v)
				}
			})
			if c.Health < 0 || c.Health > a.tuning.Combat.MaxHealth {
				t.Errorf("%s: expected health in bounds for %s, got %v", kind, c, c.Health)
			}
		}
		if bodies, joints := a.Orphans(); bodies != 0 || joints != 0 {
			t.Errorf("%s: expected no orphans, got %d bodies and %d constraints", kind, bodies, joints)
		}
	}
}
