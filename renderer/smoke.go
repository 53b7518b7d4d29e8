// Package renderer draws the smoke and ember passes.
package renderer

import (
	_ "embed"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed shaders/smoke.fs
var smokeFS string

// SmokeShaderSource returns the embedded smoke fragment shader source.
func SmokeShaderSource() string {
	return smokeFS
}

// SmokeRenderer renders the full-screen procedural smoke shader.
//
// Setup either fully succeeds or the renderer stays permanently inert: a
// compile or link failure is logged once and every later Draw is a no-op.
// There is no retry.
type SmokeRenderer struct {
	shader        rl.Shader
	timeLoc       int32
	resolutionLoc int32

	width, height float32
	valid         bool
	initialized   bool
}

// NewSmokeRenderer creates a new smoke renderer.
func NewSmokeRenderer(width, height int32) *SmokeRenderer {
	return &SmokeRenderer{
		width:  float32(width),
		height: float32(height),
	}
}

// Init compiles the shader (must be called after the window is created).
func (s *SmokeRenderer) Init() {
	if s.initialized {
		return
	}
	s.initialized = true

	s.shader = rl.LoadShaderFromMemory("", smokeFS)
	if s.shader.ID == 0 {
		slog.Error("smoke shader failed to compile, renderer disabled")
		return
	}

	s.timeLoc = rl.GetShaderLocation(s.shader, "time")
	s.resolutionLoc = rl.GetShaderLocation(s.shader, "resolution")

	resolution := []float32{s.width, s.height}
	rl.SetShaderValue(s.shader, s.resolutionLoc, resolution, rl.ShaderUniformVec2)

	s.valid = true
}

// Valid reports whether the shader compiled and the renderer is live.
func (s *SmokeRenderer) Valid() bool {
	return s.valid
}

// Draw renders the smoke field for the given elapsed time in seconds.
func (s *SmokeRenderer) Draw(elapsed float32) {
	if !s.initialized {
		s.Init()
	}
	if !s.valid {
		return
	}

	rl.SetShaderValue(s.shader, s.timeLoc, []float32{elapsed}, rl.ShaderUniformFloat)

	rl.BeginShaderMode(s.shader)
	rl.DrawRectangle(0, 0, int32(s.width), int32(s.height), rl.White)
	rl.EndShaderMode()
}

// Resize updates the surface dimensions and the resolution uniform.
func (s *SmokeRenderer) Resize(width, height float32) {
	s.width = width
	s.height = height
	if !s.valid {
		return
	}
	resolution := []float32{width, height}
	rl.SetShaderValue(s.shader, s.resolutionLoc, resolution, rl.ShaderUniformVec2)
}

// Unload releases the shader.
func (s *SmokeRenderer) Unload() {
	if s.valid {
		rl.UnloadShader(s.shader)
		s.valid = false
	}
}
