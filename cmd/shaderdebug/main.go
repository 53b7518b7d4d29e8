// Shader debug tool - renders one frame of the smoke effect to a PNG file
// for inspection, using the same renderer the app runs.
//
// Usage: go run ./cmd/shaderdebug -time 12.5 -out debug.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hearth/renderer"
)

func main() {
	timeValue := flag.Float64("time", 0, "Shader time uniform in seconds")
	outPath := flag.String("out", "debug.png", "Output PNG path")
	width := flag.Int("width", 1280, "Render width")
	height := flag.Int("height", 720, "Render height")
	flag.Parse()

	// A hidden window still gives us a GL context to compile against
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Smoke Shader Debug")
	defer rl.CloseWindow()

	smoke := renderer.NewSmokeRenderer(int32(*width), int32(*height))
	smoke.Init()
	if !smoke.Valid() {
		fmt.Fprintln(os.Stderr, "Smoke shader failed to compile")
		os.Exit(1)
	}
	defer smoke.Unload()

	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	smoke.Draw(float32(*timeValue))
	rl.EndTextureMode()

	// Render textures come back upside down under OpenGL
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)
	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if !success {
		fmt.Fprintln(os.Stderr, "Failed to export image")
		os.Exit(1)
	}
	fmt.Printf("Smoke frame rendered to: %s (%dx%d, t=%.2fs)\n", *outPath, *width, *height, *timeValue)
}
