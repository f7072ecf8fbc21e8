package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBgPanel   = rl.NewColor(18, 18, 24, 230)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
)

func initPanelStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// drawPanel draws the debug controls in the top right corner.
func (g *Game) drawPanel() {
	const width, row = 190, 30
	x := float32(rl.GetScreenWidth()) - width - 10
	y := float32(10)
	rl.DrawRectangleRec(rl.Rectangle{X: x - 8, Y: y - 6, Width: width + 16, Height: 7*row + 12}, colorBgPanel)

	next := func() rl.Rectangle {
		r := rl.Rectangle{X: x, Y: y, Width: width, Height: row - 6}
		y += row
		return r
	}
	box := func() rl.Rectangle {
		r := next()
		r.Width = r.Height
		return r
	}

	pauseLabel := "Pause"
	if g.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(next(), pauseLabel) {
		g.togglePause()
	}
	if gui.Button(next(), "Step") && g.Paused {
		g.stepOne = true
	}
	if gui.Button(next(), "Power boost") {
		g.Arena.GiveRandomPower()
	}
	if gui.Button(next(), "Reset round") {
		g.Arena.Reset()
	}
	if gui.Button(next(), fmt.Sprintf("Rig: %s", g.Arena.RigKind())) {
		g.cycleRig()
	}
	if g.Sound != nil {
		enabled := gui.CheckBox(box(), "Sound", g.Sound.Enabled())
		if enabled != g.Sound.Enabled() {
			g.Sound.SetEnabled(enabled)
		}
	}
	g.DebugMode = gui.CheckBox(box(), "Debug", g.DebugMode)
}
