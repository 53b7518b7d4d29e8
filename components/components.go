// Package components defines ECS components for the ember simulation.
package components

// Position is an ember's current screen position in pixels.
type Position struct {
	X, Y float32
}

// Glow holds an ember's radius state. Radius is recomputed every step as
// BaseRadius scaled by the flicker term; Phase offsets the flicker sine so
// embers pulse out of sync.
type Glow struct {
	BaseRadius float32
	Radius     float32
	Phase      float32 // radians
}

// Motion holds an ember's vertical rise and horizontal drift. AnchorX is the
// horizontal anchor that orbiting embers swing around; for linear embers it
// tracks Position.X.
type Motion struct {
	AnchorX   float32
	RiseSpeed float32 // pixels per step, subtracted from y
	Drift     float32 // pixels per step, applied to the anchor
}

// Orbit holds circular-looping parameters. Radius 0 means the ember drifts
// linearly; Radius > 0 means it orbits its drifting anchor.
type Orbit struct {
	Radius     float32
	Angle      float32 // radians
	AngularVel float32 // radians per step
}
