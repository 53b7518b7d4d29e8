package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// flushStats emits and resets the current stats window when due.
func (g *Game) flushStats() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	fps := int32(0)
	if !g.opts.Headless {
		fps = rl.GetFPS()
	}
	stats := g.collector.Flush(g.tick, fps)

	if g.opts.LogStats {
		stats.LogStats()
	}
	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("writing telemetry", "error", err)
		}
	}
}
