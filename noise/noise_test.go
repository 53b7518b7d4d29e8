package noise

import (
	"math"
	"testing"
)

func TestHash2Deterministic(t *testing.T) {
	coords := [][2]float32{
		{0, 0},
		{1, 1},
		{-3.5, 7.25},
		{127.1, 311.7},
		{1e3, -1e3},
	}
	for _, c := range coords {
		a := Hash2(c[0], c[1])
		b := Hash2(c[0], c[1])
		if a != b {
			t.Errorf("Hash2(%v, %v) not deterministic: %v != %v", c[0], c[1], a, b)
		}
	}
}

func TestHash2Range(t *testing.T) {
	for ix := -50; ix <= 50; ix++ {
		for iy := -50; iy <= 50; iy++ {
			x := float32(ix) * 0.73
			y := float32(iy) * 1.31
			v := Hash2(x, y)
			if v < 0 || v >= 1 {
				t.Fatalf("Hash2(%v, %v) = %v, want [0, 1)", x, y, v)
			}
		}
	}
}

func TestHash2Decorrelated(t *testing.T) {
	// Neighboring lattice points should not produce near-identical values
	// everywhere. Count collisions over a grid; a handful is fine.
	nearIdentical := 0
	const n = 100
	for i := 0; i < n; i++ {
		a := Hash2(float32(i), 0)
		b := Hash2(float32(i+1), 0)
		if math.Abs(float64(a-b)) < 0.01 {
			nearIdentical++
		}
	}
	if nearIdentical > n/10 {
		t.Errorf("%d/%d neighboring hashes nearly equal; hash is not decorrelating", nearIdentical, n)
	}
}

func TestValue2Range(t *testing.T) {
	for i := 0; i < 2000; i++ {
		x := float32(i)*0.137 - 100
		y := float32(i)*0.291 - 150
		v := Value2(x, y)
		if v < 0 || v >= 1 {
			t.Fatalf("Value2(%v, %v) = %v, want [0, 1)", x, y, v)
		}
	}
}

func TestValue2MatchesHashAtLattice(t *testing.T) {
	// At integer coordinates the blend weights are zero, so value noise
	// degenerates to the corner hash.
	for ix := -5; ix <= 5; ix++ {
		for iy := -5; iy <= 5; iy++ {
			x, y := float32(ix), float32(iy)
			got := Value2(x, y)
			want := Hash2(x, y)
			if got != want {
				t.Errorf("Value2(%v, %v) = %v, want lattice hash %v", x, y, got, want)
			}
		}
	}
}

func TestValue2ContinuousAtCellBoundary(t *testing.T) {
	// Sample just inside and just outside a cell boundary with shrinking
	// step; the difference must shrink with it.
	boundaries := [][2]float32{{3, 1.5}, {-2, 0.25}, {0, 0}, {7, -4.5}}
	for _, b := range boundaries {
		prevDiff := math.Inf(1)
		for _, eps := range []float32{1e-1, 1e-2, 1e-3, 1e-4} {
			lo := Value2(b[0]-eps, b[1])
			hi := Value2(b[0]+eps, b[1])
			diff := math.Abs(float64(hi - lo))
			if diff > prevDiff+1e-6 {
				t.Errorf("boundary (%v, %v): diff grew from %v to %v as eps shrank to %v",
					b[0], b[1], prevDiff, diff, eps)
			}
			prevDiff = diff
		}
		// At the smallest step the jump must be negligible.
		if prevDiff > 0.01 {
			t.Errorf("boundary (%v, %v): residual discontinuity %v", b[0], b[1], prevDiff)
		}
	}
}

func TestSmokeFBMBounded(t *testing.T) {
	bound := float64(FBMBound())

	// Geometric series 0.4 * (1 + 0.4 + 0.4^2 + 0.4^3 + 0.4^4)
	want := 0.0
	amp := 0.4
	for o := 0; o < 5; o++ {
		want += amp
		amp *= 0.4
	}
	if math.Abs(bound-want) > 1e-5 {
		t.Fatalf("FBMBound() = %v, want %v", bound, want)
	}

	for i := 0; i < 5000; i++ {
		x := float32(i)*0.0173 - 40
		y := float32(i)*0.0311 - 70
		v := float64(SmokeFBM(x, y))
		if v < 0 || v > bound {
			t.Fatalf("SmokeFBM(%v, %v) = %v, outside [0, %v]", x, y, v, bound)
		}
	}
}

func TestFBMOctavesAddDetail(t *testing.T) {
	// One octave of FBM with amplitude 1 is exactly value noise.
	x, y := float32(12.34), float32(-5.67)
	got := FBM(x, y, 1, SmokeLacunarity, SmokeGain, 1)
	want := Value2(x, y)
	if got != want {
		t.Errorf("single-octave FBM = %v, want Value2 = %v", got, want)
	}
}

func BenchmarkSmokeFBM(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SmokeFBM(float32(i)*0.001, float32(i)*0.002)
	}
}
