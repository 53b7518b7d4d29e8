package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hearth/systems"
	"github.com/pthm-cable/hearth/telemetry"
	"github.com/pthm-cable/hearth/ui"
)

// Background clear color behind the smoke mask.
var backdrop = rl.NewColor(8, 6, 12, 255)

// Draw renders both effect passes and the HUD.
func (g *Game) Draw() {
	g.perf.StartTick()

	rl.BeginDrawing()
	rl.ClearBackground(backdrop)

	// Smoke pass. The shader clock follows the simulation so pausing
	// freezes the field.
	g.perf.StartPhase(telemetry.PhaseSmoke)
	if g.smoke != nil {
		g.smoke.Draw(float32(g.tick) * float32(systems.StepSeconds))
	}

	// Ember pass
	g.perf.StartPhase(telemetry.PhaseEmbers)
	g.drawBuf = g.embers.CollectDraws(g.drawBuf)
	g.emberRenderer.Draw(g.drawBuf)

	// Overlay
	g.perf.StartPhase(telemetry.PhaseHUD)
	g.hud.Draw(ui.HUDData{
		Title:      "Hearth",
		EmberCount: g.embers.Count(),
		Tick:       g.tick,
		Speed:      g.stepsPerUpdate,
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
		SmokeLive:  g.smoke != nil && g.smoke.Valid(),
	})
	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight),
		"SPACE pause | < > speed | D debug | F11 fullscreen")

	if g.debugMode {
		g.drawDebugOverlay()
	}

	// EndDrawing flushes the frame and waits for the swap, so time it
	// as its own phase.
	g.perf.StartPhase(telemetry.PhaseDraw)
	rl.EndDrawing()
	g.perf.EndTick()
}

// drawDebugOverlay renders per-phase frame timings.
func (g *Game) drawDebugOverlay() {
	y := int32(100)
	total := g.perf.Total()
	rl.DrawText(fmt.Sprintf("frame: %s", total.Round(time.Microsecond)), 10, y, 14, rl.SkyBlue)
	y += 18

	for _, name := range g.perf.SortedNames() {
		avg := g.perf.Avg(name)
		pct := float64(0)
		if total > 0 {
			pct = float64(avg) / float64(total) * 100
		}
		rl.DrawText(fmt.Sprintf("%-8s %8s %5.1f%%", name, avg.Round(time.Microsecond), pct), 10, y, 14, rl.SkyBlue)
		y += 18
	}
}
