// Package noise implements the value-noise kernel used by the smoke shader.
//
// The functions here mirror the fragment shader source exactly so the numeric
// behavior can be verified without a GPU. Everything is a pure function of its
// inputs; there is no generator state.
package noise

import "math"

// Constants shared with the embedded smoke fragment shader.
const (
	// Hash scramble: fract(sin(dot(p, k)) * HashScale)
	HashKX      = 127.1
	HashKY      = 311.7
	HashScale   = 43758.5453123

	// Smoke FBM preset
	SmokeOctaves    = 5
	SmokeLacunarity = 2.0
	SmokeGain       = 0.4
	SmokeAmplitude  = 0.4
)

// Hash2 maps a 2D coordinate to a deterministic value in [0, 1).
// It is a visual scramble, not a statistical or cryptographic hash.
func Hash2(x, y float32) float32 {
	d := float64(x)*HashKX + float64(y)*HashKY
	return fract(math.Sin(d) * HashScale)
}

// Value2 samples smoothly interpolated value noise at a continuous 2D
// coordinate. Output is in [0, 1).
func Value2(x, y float32) float32 {
	ix := float32(math.Floor(float64(x)))
	iy := float32(math.Floor(float64(y)))
	fx := x - ix
	fy := y - iy

	a := Hash2(ix, iy)
	b := Hash2(ix+1, iy)
	c := Hash2(ix, iy+1)
	d := Hash2(ix+1, iy+1)

	// Hermite blend 3f^2 - 2f^3
	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	ab := a + (b-a)*ux
	cd := c + (d-c)*ux
	return ab + (cd-ab)*uy
}

// FBM sums octaves of value noise, doubling frequency by lacunarity and
// scaling amplitude by gain each octave.
func FBM(x, y float32, octaves int, lacunarity, gain, amplitude float32) float32 {
	sum := float32(0)
	amp := amplitude
	for o := 0; o < octaves; o++ {
		sum += amp * Value2(x, y)
		x *= lacunarity
		y *= lacunarity
		amp *= gain
	}
	return sum
}

// SmokeFBM evaluates the FBM preset baked into the smoke shader:
// 5 octaves, frequency x2, amplitude 0.4 decaying by 0.4.
func SmokeFBM(x, y float32) float32 {
	return FBM(x, y, SmokeOctaves, SmokeLacunarity, SmokeGain, SmokeAmplitude)
}

// FBMBound returns the maximum possible SmokeFBM value: the geometric series
// of octave amplitudes times the supremum of the noise range.
func FBMBound() float32 {
	bound := float32(0)
	amp := float32(SmokeAmplitude)
	for o := 0; o < SmokeOctaves; o++ {
		bound += amp
		amp *= SmokeGain
	}
	return bound
}

func fract(x float64) float32 {
	f := float32(x - math.Floor(x))
	// float32 rounding can land exactly on 1.0; keep the half-open range
	if f >= 1 {
		f = math.Nextafter32(1, 0)
	}
	return f
}
