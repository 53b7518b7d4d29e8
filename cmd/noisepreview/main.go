// Noise preview tool - interactive visualization of the CPU fBm mirror with
// sliders, for checking that the Go kernel matches the shader look.
//
// Usage: go run ./cmd/noisepreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hearth/noise"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// FBMParams holds the tunable noise parameters.
type FBMParams struct {
	Scale       float32
	Octaves     int
	Lacunarity  float32
	Gain        float32
	Amplitude   float32
	ScrollSpeed float32
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Smoke Noise Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	// Start at the shader's baked-in constants
	params := FBMParams{
		Scale:       3.0,
		Octaves:     noise.SmokeOctaves,
		Lacunarity:  noise.SmokeLacunarity,
		Gain:        noise.SmokeGain,
		Amplitude:   noise.SmokeAmplitude,
		ScrollSpeed: 0.35,
	}

	gridSize := 256
	grid := make([]float32, gridSize*gridSize)
	pixels := make([]color.RGBA, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var elapsed float32
	animating := false
	needsRegen := true

	for !rl.WindowShouldClose() {
		if animating {
			elapsed += rl.GetFrameTime()
			needsRegen = true
		}

		if needsRegen {
			generateField(grid, gridSize, params, elapsed)
			updateTexture(texture, grid, pixels)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Draw preview
		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		rl.DrawText(fmt.Sprintf("Time: %.1f  Bound: %.3f", elapsed, noise.FBMBound()), 15, previewSize+25, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Smoke fBm Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		newScale := paramSlider(panelX, &panelY, "Scale (base frequency)", "1.0", "10.0", params.Scale, 1, 10)
		if newScale != params.Scale {
			params.Scale = newScale
			needsRegen = true
		}

		newOctaves := paramSlider(panelX, &panelY, "Octaves (detail level)", "1", "6", float32(params.Octaves), 1, 6)
		if int(newOctaves) != params.Octaves {
			params.Octaves = int(newOctaves)
			needsRegen = true
		}

		newLacunarity := paramSlider(panelX, &panelY, "Lacunarity (frequency multiplier)", "1.5", "4.0", params.Lacunarity, 1.5, 4.0)
		if newLacunarity != params.Lacunarity {
			params.Lacunarity = newLacunarity
			needsRegen = true
		}

		newGain := paramSlider(panelX, &panelY, "Gain (amplitude multiplier)", "0.2", "0.9", params.Gain, 0.2, 0.9)
		if newGain != params.Gain {
			params.Gain = newGain
			needsRegen = true
		}

		newAmplitude := paramSlider(panelX, &panelY, "Amplitude (first octave)", "0.1", "1.0", params.Amplitude, 0.1, 1.0)
		if newAmplitude != params.Amplitude {
			params.Amplitude = newAmplitude
			needsRegen = true
		}

		newScroll := paramSlider(panelX, &panelY, "Scroll speed", "0", "1.0", params.ScrollSpeed, 0, 1.0)
		if newScroll != params.ScrollSpeed {
			params.ScrollSpeed = newScroll
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			elapsed = 0
			needsRegen = true
		}

		rl.EndDrawing()
	}
}

// paramSlider draws one labeled slider row and advances the panel cursor.
func paramSlider(x float32, y *float32, label, minText, maxText string, value, min, max float32) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		minText, maxText,
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v
}

// generateField samples the fBm kernel over the grid, scrolling vertically
// the way the shader does.
func generateField(grid []float32, size int, p FBMParams, elapsed float32) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			u := float32(x) / float32(size) * p.Scale
			v := float32(y)/float32(size)*p.Scale - elapsed*p.ScrollSpeed
			grid[y*size+x] = noise.FBM(u, v, p.Octaves, p.Lacunarity, p.Gain, p.Amplitude)
		}
	}
}

// updateTexture maps field values to greyscale pixels.
func updateTexture(texture rl.Texture2D, grid []float32, pixels []color.RGBA) {
	for i, v := range grid {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		c := uint8(v * 255)
		pixels[i] = color.RGBA{R: c, G: c, B: c, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}

func toggleText(on bool, whenOn, whenOff string) string {
	if on {
		return whenOn
	}
	return whenOff
}
