package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"brawler/internal/arena"
	"brawler/internal/audio"
	"brawler/internal/camera"
	"brawler/internal/character"
	"brawler/internal/config"
	"brawler/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// feedLen is how many combat lines the on-screen log keeps.
const feedLen = 6

type Game struct {
	Arena     *arena.Arena
	Camera    *camera.OrbitCamera
	Sound     *audio.Manager
	DebugMode bool
	Paused    bool

	clock   *FixedClock
	stepOne bool
	feed    []string

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(tuning *config.Tuning, kind character.RigKind, seed int64) *Game {
	a := arena.New(tuning, rand.New(rand.NewSource(seed)), kind)
	return &Game{
		Arena:  a,
		Camera: camera.New(rl.Vector3{Y: tuning.Platform.Top}),
		clock:  NewFixedClock(tuning.World.TimeStep),
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "Brawler")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	initPanelStyle()

	if m, err := audio.NewManager(); err != nil {
		log.Printf("Game: running without sound: %v", err)
	} else {
		g.Sound = m
		defer m.Close()
	}
	g.subscribe()

	g.Arena.StartRound()
	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

// subscribe routes arena and physics events to sound and the on-screen feed.
func (g *Game) subscribe() {
	g.Arena.Events.AddListener(func(e character.Event) {
		g.pushFeed(e.String())
		if g.Sound == nil {
			return
		}
		if cue, intensity, ok := audio.CueFor(e); ok {
			g.Sound.Play(cue, e.Position, intensity)
		}
	})
	g.Arena.RoundOver.AddListener(func(r arena.Result) {
		g.pushFeed(r.String())
	})
	platform := g.Arena.Platform()
	g.Arena.World().ContactBegan.AddListener(func(c physics.Contact) {
		if g.Sound == nil || (c.A != platform && c.B != platform) {
			return
		}
		if v := audio.ThudIntensity(c.Speed); v > 0 {
			g.Sound.Play(audio.CueThud, c.Point, v)
		}
	})
}

func (g *Game) pushFeed(line string) {
	g.feed = append(g.feed, line)
	if len(g.feed) > feedLen {
		g.feed = g.feed[len(g.feed)-feedLen:]
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.Camera.Update(deltaTime)
	g.handleKeys()

	switch {
	case g.stepOne:
		g.Arena.Step()
		g.stepOne = false
	case !g.Paused:
		for n := g.clock.Advance(deltaTime); n > 0; n-- {
			g.Arena.Step()
		}
	}

	if g.Sound != nil {
		g.Sound.SetListener(g.Camera.Position(), g.Camera.Forward(), rl.Vector3{Y: 1})
		g.Sound.Update()
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.togglePause()
	}
	if rl.IsKeyPressed(rl.KeyN) && g.Paused {
		g.stepOne = true
	}
	if rl.IsKeyPressed(rl.KeyB) {
		g.Arena.GiveRandomPower()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Arena.Reset()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.cycleRig()
	}
}

func (g *Game) togglePause() {
	g.Paused = !g.Paused
	g.clock.Reset()
}

// cycleRig switches to the next rig variant and restarts the round with it.
func (g *Game) cycleRig() {
	g.Arena.SetRigKind(g.Arena.RigKind().Next())
	g.Arena.Reset()
}

func (g *Game) Draw() {
	camera := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.drawArena()
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	blue, red, draws := g.Arena.Scores()
	rl.DrawText(fmt.Sprintf("Round %d   Blue %d - %d Red   Draws %d", g.Arena.Round(), blue, red, draws), 10, 10, 20, rl.RayWhite)
	rl.DrawText("RMB orbit, wheel zoom, WASD pan, P pause, N step, B boost, R reset, Tab rig, F1 debug", 10, 35, 16, rl.Gray)
	rl.DrawFPS(10, 60)

	for i, line := range g.feed {
		rl.DrawText(line, 10, int32(rl.GetScreenHeight())-24*int32(len(g.feed)-i)-10, 18, rl.LightGray)
	}

	g.drawPanel()

	if g.DebugMode {
		w := g.Arena.World()
		rl.DrawText(fmt.Sprintf("Rig: %s  Bodies: %d  Joints: %d  Tick: %d", g.Arena.RigKind(), w.DynamicBodyCount(), len(w.Constraints()), g.Arena.Tick()), 10, 85, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, 110, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, 130, 16, rl.Green)
		y := int32(155)
		for _, c := range g.Arena.Characters() {
			state := c.State().String()
			if k, ok := c.Attack(); ok {
				state += " " + k.String()
			}
			rl.DrawText(fmt.Sprintf("%s hp %.0f %s %s", c, c.Health, c.Posture(), state), 10, y, 16, teamColor(c.Team))
			y += 20
		}
	}
}
