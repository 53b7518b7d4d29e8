// Package telemetry collects frame statistics for the effects loop.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats summarizes one stats window.
type WindowStats struct {
	WindowIndex int     `csv:"window"`
	Tick        int64   `csv:"tick"`
	Seconds     float64 `csv:"seconds"`
	Respawns    uint64  `csv:"respawns"`
	Wraps       uint64  `csv:"wraps"`
	StepMeanMs  float64 `csv:"step_mean_ms"`
	StepP50Ms   float64 `csv:"step_p50_ms"`
	StepP90Ms   float64 `csv:"step_p90_ms"`
	FPS         int32   `csv:"fps"`
}

// SummarizeDurations computes mean and empirical percentiles of a sample of
// millisecond durations.
func SummarizeDurations(ms []float64) (mean, p50, p90 float64) {
	if len(ms) == 0 {
		return 0, 0, 0
	}
	sorted := append([]float64(nil), ms...)
	sort.Float64s(sorted)
	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, p50, p90
}

// LogValue implements slog.LogValuer for structured stats logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window", s.WindowIndex),
		slog.Int64("tick", s.Tick),
		slog.Float64("seconds", s.Seconds),
		slog.Uint64("respawns", s.Respawns),
		slog.Uint64("wraps", s.Wraps),
		slog.Float64("step_mean_ms", s.StepMeanMs),
		slog.Float64("step_p50_ms", s.StepP50Ms),
		slog.Float64("step_p90_ms", s.StepP90Ms),
		slog.Int("fps", int(s.FPS)),
	)
}

// LogStats emits the window via slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
