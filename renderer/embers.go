package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hearth/systems"
)

// Ember gradient stops: opaque warm-white core through semi-transparent
// orange to a fully transparent edge.
var (
	emberCore = rl.NewColor(255, 241, 207, 255)
	emberMid  = rl.NewColor(255, 140, 40, 180)
	emberEdge = rl.NewColor(255, 80, 0, 0)
)

// EmberRenderer renders embers as glowing radial-gradient discs.
type EmberRenderer struct{}

// NewEmberRenderer creates a new ember renderer.
func NewEmberRenderer() *EmberRenderer {
	return &EmberRenderer{}
}

// Draw renders all embers at their current flicker radius.
func (r *EmberRenderer) Draw(embers []systems.EmberDraw) {
	for i := range embers {
		e := &embers[i]
		x := int32(e.X)
		y := int32(e.Y)

		// Outer glow fades to transparent at the full radius
		rl.DrawCircleGradient(x, y, e.Radius, emberMid, emberEdge)
		// Core sits inside the glow
		rl.DrawCircleGradient(x, y, e.Radius*0.45, emberCore, emberMid)
	}
}
