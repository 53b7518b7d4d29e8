// Package game composes the two background effects and drives their loop.
package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/hearth/config"
	"github.com/pthm-cable/hearth/renderer"
	"github.com/pthm-cable/hearth/systems"
	"github.com/pthm-cable/hearth/telemetry"
	"github.com/pthm-cable/hearth/ui"
)

// Options configures a Game instance.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete application state. The two effects never exchange
// data; the game only composes their loops onto one window.
type Game struct {
	opts Options

	smoke         *renderer.SmokeRenderer
	embers        *systems.EmberField
	emberRenderer *renderer.EmberRenderer
	hud           *ui.HUD

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *telemetry.PerfCollector

	// Reused draw buffer
	drawBuf []systems.EmberDraw

	// State
	tick           int64
	paused         bool
	debugMode      bool
	stepsPerUpdate int

	// Window dimensions
	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game instance. In graphical mode the raylib
// window must already exist.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		opts:           opts,
		stepsPerUpdate: opts.StepsPerUpdate,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
		collector:      telemetry.NewCollector(statsWindow, systems.StepSeconds),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
	}

	g.embers = systems.NewEmberField(g.screenWidth, g.screenHeight, opts.Seed, cfg.Embers)
	g.emberRenderer = renderer.NewEmberRenderer()
	g.hud = ui.NewHUD()

	if !opts.Headless && cfg.Smoke.Enabled {
		g.smoke = renderer.NewSmokeRenderer(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		g.smoke.Init()
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else {
		g.output = output
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Error("writing config snapshot", "error", err)
		}
	}

	return g
}

// Update runs input handling and one or more simulation steps.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs simulation steps without any windowing dependency.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick of the ember simulation and telemetry.
func (g *Game) simulationStep() {
	start := time.Now()
	g.embers.Update()
	g.tick++

	g.collector.RecordStep(time.Since(start))
	g.collector.RecordCycle(g.embers.TakeCounters())
	g.flushStats()
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int64 {
	return g.tick
}

// Unload releases resources.
func (g *Game) Unload() {
	if g.smoke != nil {
		g.smoke.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}
