package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestSummarizeDurations(t *testing.T) {
	tests := []struct {
		name     string
		ms       []float64
		wantMean float64
		wantP50  float64
	}{
		{"empty", []float64{}, 0, 0},
		{"single", []float64{5}, 5, 5},
		{"uniform", []float64{1, 2, 3, 4, 5}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, p50, p90 := SummarizeDurations(tt.ms)
			if math.Abs(mean-tt.wantMean) > 0.001 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if math.Abs(p50-tt.wantP50) > 0.001 {
				t.Errorf("p50 = %v, want %v", p50, tt.wantP50)
			}
			if p90 < p50 {
				t.Errorf("p90 %v < p50 %v", p90, p50)
			}
		})
	}
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	ms := []float64{5, 1, 3}
	SummarizeDurations(ms)
	if ms[0] != 5 || ms[1] != 1 || ms[2] != 3 {
		t.Errorf("input mutated: %v", ms)
	}
}

func TestCollectorFlushCadence(t *testing.T) {
	// 1 second windows at 60 steps/sec
	c := NewCollector(1.0, 1.0/60.0)
	if c.WindowDurationTicks() != 60 {
		t.Fatalf("window ticks = %d, want 60", c.WindowDurationTicks())
	}

	for tick := int64(1); tick < 60; tick++ {
		if c.ShouldFlush(tick) {
			t.Fatalf("flush at tick %d, want none before 60", tick)
		}
	}
	if !c.ShouldFlush(60) {
		t.Fatal("no flush at tick 60")
	}

	c.Flush(60, 0)
	if c.ShouldFlush(61) {
		t.Error("flush immediately after flush")
	}
	if !c.ShouldFlush(120) {
		t.Error("no flush one window later")
	}
}

func TestCollectorFlushResets(t *testing.T) {
	c := NewCollector(1.0, 1.0/60.0)
	c.RecordStep(2 * time.Millisecond)
	c.RecordStep(4 * time.Millisecond)
	c.RecordCycle(3, 1)
	c.RecordCycle(2, 0)

	stats := c.Flush(60, 59)
	if stats.Respawns != 5 || stats.Wraps != 1 {
		t.Errorf("counters = %d/%d, want 5/1", stats.Respawns, stats.Wraps)
	}
	if math.Abs(stats.StepMeanMs-3) > 0.001 {
		t.Errorf("step mean = %v ms, want 3", stats.StepMeanMs)
	}
	if stats.WindowIndex != 0 || stats.Tick != 60 || stats.FPS != 59 {
		t.Errorf("unexpected window metadata: %+v", stats)
	}

	// Second window starts clean
	next := c.Flush(120, 60)
	if next.WindowIndex != 1 {
		t.Errorf("window index = %d, want 1", next.WindowIndex)
	}
	if next.Respawns != 0 || next.Wraps != 0 || next.StepMeanMs != 0 {
		t.Errorf("accumulators not reset: %+v", next)
	}
}

func TestPerfCollectorPhases(t *testing.T) {
	p := NewPerfCollector(4)

	for i := 0; i < 4; i++ {
		p.StartTick()
		p.StartPhase(PhaseEmbers)
		p.StartPhase(PhaseSmoke)
		p.EndTick()
	}

	names := p.SortedNames()
	if len(names) != 2 || names[0] != PhaseEmbers || names[1] != PhaseSmoke {
		t.Errorf("phase names = %v, want [embers smoke]", names)
	}
	if p.Total() < 0 {
		t.Error("negative total duration")
	}
}
