package telemetry

import (
	"time"
)

// Collector accumulates per-step measurements and flushes them as WindowStats
// once per stats window.
type Collector struct {
	windowTicks int64
	stepSec     float64

	lastFlush   int64
	windowIndex int

	stepMs   []float64
	respawns uint64
	wraps    uint64
}

// NewCollector creates a collector flushing every windowDurationSec of
// simulated time, where one tick advances stepSec seconds.
func NewCollector(windowDurationSec, stepSec float64) *Collector {
	ticks := int64(windowDurationSec / stepSec)
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{
		windowTicks: ticks,
		stepSec:     stepSec,
		stepMs:      make([]float64, 0, ticks),
	}
}

// RecordStep records the wall-clock duration of one simulation step.
func (c *Collector) RecordStep(d time.Duration) {
	c.stepMs = append(c.stepMs, float64(d)/float64(time.Millisecond))
}

// RecordCycle adds respawn and wrap counts from the current step.
func (c *Collector) RecordCycle(respawns, wraps uint64) {
	c.respawns += respawns
	c.wraps += wraps
}

// ShouldFlush reports whether a full window has elapsed at the given tick.
func (c *Collector) ShouldFlush(tick int64) bool {
	return tick-c.lastFlush >= c.windowTicks
}

// Flush summarizes the window, resets the accumulators, and returns the
// stats record.
func (c *Collector) Flush(tick int64, fps int32) WindowStats {
	mean, p50, p90 := SummarizeDurations(c.stepMs)
	stats := WindowStats{
		WindowIndex: c.windowIndex,
		Tick:        tick,
		Seconds:     float64(tick) * c.stepSec,
		Respawns:    c.respawns,
		Wraps:       c.wraps,
		StepMeanMs:  mean,
		StepP50Ms:   p50,
		StepP90Ms:   p90,
		FPS:         fps,
	}

	c.windowIndex++
	c.lastFlush = tick
	c.stepMs = c.stepMs[:0]
	c.respawns = 0
	c.wraps = 0

	return stats
}

// WindowDurationTicks returns the flush interval in ticks.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowTicks
}
