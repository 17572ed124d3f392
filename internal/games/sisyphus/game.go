package sisyphus

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/sisyphus/internal/config"
	"github.com/vovakirdan/sisyphus/internal/core"
	"github.com/vovakirdan/sisyphus/internal/registry"
)

// Smallest terminal area the scene is drawn in.
const (
	minScreenW = 20
	minScreenH = 8
	hudHeight  = 1
)

var (
	// configPath stores the custom config path set via CLI
	configPath string
	// policyOverride replaces the configured terrain policy when set
	policyOverride config.Policy
)

// SetConfigPath sets the config file path used by subsequent Resets.
func SetConfigPath(path string) {
	configPath = path
}

// SetTerrainPolicy overrides the configured terrain policy for the
// default variant. An empty policy restores the configured one.
func SetTerrainPolicy(p config.Policy) {
	policyOverride = p
}

func init() {
	registry.Register("sisyphus", func() registry.Game {
		return New("sisyphus", "Sisyphus", "")
	})
	registry.Register("sisyphus_peak", func() registry.Game {
		return New("sisyphus_peak", "Sisyphus (Single Peak)", config.PolicyPeak)
	})
}

// Game wires the simulation to the registry interface.
type Game struct {
	id     string
	title  string
	policy config.Policy // Forced policy; empty means configured

	cfg      config.SisyphusConfig
	rng      *rand.Rand
	sim      *Sim
	controls Controls

	layout Layout
	canvas *core.Canvas
	path   []core.Vec2

	screenW int
	screenH int

	tick     uint64
	paused   bool
	tooSmall bool
}

// New creates a game variant. policy forces a terrain policy; pass ""
// to use the configured one.
func New(id, title string, policy config.Policy) *Game {
	return &Game{id: id, title: title, policy: policy}
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Title returns the display name.
func (g *Game) Title() string { return g.title }

// Reset loads the config and builds a fresh mountain.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadSisyphus(configPath)
	if err != nil {
		cfg = config.DefaultSisyphusConfig()
	}
	switch {
	case g.policy != "":
		config.ApplyPolicy(&cfg, g.policy)
	case policyOverride != "":
		config.ApplyPolicy(&cfg, policyOverride)
	}
	g.start(cfg, runtime)
}

// start builds the game from an already resolved config.
func (g *Game) start(cfg config.SisyphusConfig, runtime core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.paused = false
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	g.updateLayout()
	g.sim = NewSim(cfg, MountainBox(cfg.Viewport, g.layout.LogicalW, g.layout.LogicalH), g.rng)
	g.controls = NewControls(g.sim, cfg.Input.AssistPush)
}

// updateLayout fits the play area below the HUD line.
func (g *Game) updateLayout() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
	g.layout = ComputeLayout(g.cfg.Viewport, max(g.screenW, 1), max(g.screenH-hudHeight, 1))
	g.layout.OffsetRow += hudHeight

	if g.canvas == nil {
		g.canvas = core.NewCanvas(g.layout.CanvasCols, g.layout.CanvasRows, g.layout.LogicalW, g.layout.LogicalH)
		return
	}
	g.canvas.Resize(g.layout.CanvasCols, g.layout.CanvasRows, g.layout.LogicalW, g.layout.LogicalH)
}

// Resize refits the play area and regenerates the mountain in place.
func (g *Game) Resize(screenW, screenH int) {
	if screenW == g.screenW && screenH == g.screenH {
		return
	}
	g.screenW = screenW
	g.screenH = screenH
	g.updateLayout()
	if g.sim != nil {
		g.sim.Resize(MountainBox(g.cfg.Viewport, g.layout.LogicalW, g.layout.LogicalH))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) {
		g.start(g.cfg, core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Button edges apply even while paused so a key released during the
	// pause does not stay stuck afterwards.
	g.controls.Apply(input)

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.sim.Step()
	g.tick++
	return core.StepResult{State: g.State()}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.path = DrawScene(g.canvas, g.sim, g.cfg.Stone.CurveSegments, g.path)
	g.canvas.Blit(dst, g.layout.OffsetCol, g.layout.OffsetRow)

	g.renderHUD(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title and the stone's state on the top line.
func (g *Game) renderHUD(dst *core.Screen) {
	status := "pushing"
	if g.sim.Stone.RollingDown {
		status = "rolling"
	}
	dst.DrawTextColored(1, 0, g.title, core.ColorBrightWhite)
	line := fmt.Sprintf("stone: %s", status)
	dst.DrawTextColored(dst.Width()-len(line)-1, 0, line, core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:   g.tick,
		Paused: g.paused,
	}
}
