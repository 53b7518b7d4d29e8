// Package systems implements the ember particle simulation.
package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/hearth/components"
	"github.com/pthm-cable/hearth/config"
)

// StepSeconds is the simulated time one Update call advances.
const StepSeconds = 1.0 / 60.0

// EmberDraw is the per-ember data the renderer needs.
type EmberDraw struct {
	X, Y   float32
	Radius float32
}

// EmberField simulates a fixed population of rising embers. Entities are
// created once and mutated in place forever; "respawn" reinitializes a live
// entity's fields, it never deletes or creates entities.
type EmberField struct {
	world  *ecs.World
	embers *ecs.Map4[components.Position, components.Glow, components.Motion, components.Orbit]
	filter *ecs.Filter4[components.Position, components.Glow, components.Motion, components.Orbit]

	rng *rand.Rand
	cfg config.EmbersConfig

	width, height float32
	elapsed       float64
	tick          int64

	// Counters since the last TakeCounters call
	respawns uint64
	wraps    uint64
}

// NewEmberField creates a field of cfg.Count embers with independently
// randomized attributes, spread over the full surface.
// cfg is passed in rather than read from the global singleton so tests and
// parallel runs stay isolated.
func NewEmberField(width, height float32, seed int64, cfg config.EmbersConfig) *EmberField {
	f := &EmberField{
		world:  ecs.NewWorld(),
		rng:    rand.New(rand.NewSource(seed)),
		cfg:    cfg,
		width:  width,
		height: height,
	}
	f.embers = ecs.NewMap4[components.Position, components.Glow, components.Motion, components.Orbit](f.world)
	f.filter = ecs.NewFilter4[components.Position, components.Glow, components.Motion, components.Orbit](f.world)

	for i := 0; i < cfg.Count; i++ {
		pos, glow, mot, orb := f.rollEmber()
		// Initial population starts spread over the full height
		pos.Y = f.rng.Float32() * height
		f.embers.NewEntity(&pos, &glow, &mot, &orb)
	}

	return f
}

// rollEmber produces a fully randomized set of ember components positioned
// at the bottom edge.
func (f *EmberField) rollEmber() (components.Position, components.Glow, components.Motion, components.Orbit) {
	glow := components.Glow{
		BaseRadius: f.randRange(f.cfg.RadiusMin, f.cfg.RadiusMax),
		Phase:      f.rng.Float32() * 2 * math.Pi,
	}
	glow.Radius = glow.BaseRadius

	mot := components.Motion{
		AnchorX:   f.rng.Float32() * f.width,
		RiseSpeed: f.randRange(f.cfg.SpeedMin, f.cfg.SpeedMax),
		Drift:     (f.rng.Float32()*2 - 1) * float32(f.cfg.DriftMax),
	}

	orb := f.rollOrbit()

	pos := components.Position{
		X: mot.AnchorX + sin32(orb.Angle)*orb.Radius,
		Y: f.height + glow.BaseRadius,
	}

	return pos, glow, mot, orb
}

// rollOrbit draws loop parameters: LoopChance of an orbit radius uniform in
// [LoopRadiusMin, LoopRadiusMax), otherwise radius 0 (linear drift).
func (f *EmberField) rollOrbit() components.Orbit {
	orb := components.Orbit{
		Angle: f.rng.Float32() * 2 * math.Pi,
	}
	if f.rng.Float64() < f.cfg.LoopChance {
		orb.Radius = f.randRange(f.cfg.LoopRadiusMin, f.cfg.LoopRadiusMax)
		orb.AngularVel = f.randRange(f.cfg.AngularMin, f.cfg.AngularMax)
	}
	return orb
}

// Update advances every ember by one step: flicker, rise, drift or orbit,
// respawn on vertical exit, wrap on horizontal exit.
func (f *EmberField) Update() {
	f.tick++
	f.elapsed += StepSeconds

	t := f.elapsed
	margin := float32(f.cfg.WrapMargin)

	query := f.filter.Query()
	for query.Next() {
		pos, glow, mot, orb := query.Get()

		// Flicker stays strictly positive: base > amp by config invariant
		flicker := float32(f.cfg.FlickerBase) + float32(f.cfg.FlickerAmp)*sin32(float32(t*f.cfg.FlickerSpeed)+glow.Phase)
		glow.Radius = glow.BaseRadius * flicker

		// Rise
		pos.Y -= mot.RiseSpeed

		// Horizontal motion
		if orb.Radius > 0 {
			orb.Angle += orb.AngularVel
			mot.AnchorX += mot.Drift
			pos.X = mot.AnchorX + sin32(orb.Angle)*orb.Radius
		} else {
			pos.X += mot.Drift
			mot.AnchorX = pos.X
		}

		// Vertical exit: full in-place reinitialization
		if pos.Y < -glow.BaseRadius {
			f.respawn(pos, glow, mot, orb)
		}

		// Horizontal exit: wrap to the opposite edge, independent of respawn
		if pos.X < -margin {
			dx := (f.width + margin) - pos.X
			pos.X += dx
			mot.AnchorX += dx
			f.wraps++
		} else if pos.X > f.width+margin {
			dx := pos.X - (-margin)
			pos.X -= dx
			mot.AnchorX -= dx
			f.wraps++
		}
	}
}

// respawn reinitializes one ember at the bottom edge with a fresh anchor,
// phase and loop parameters. Base radius, rise speed and drift are kept; the
// ember is the same entity cycling forever.
func (f *EmberField) respawn(pos *components.Position, glow *components.Glow, mot *components.Motion, orb *components.Orbit) {
	pos.Y = f.height + glow.BaseRadius
	glow.Phase = f.rng.Float32() * 2 * math.Pi
	mot.AnchorX = f.rng.Float32() * f.width
	*orb = f.rollOrbit()
	pos.X = mot.AnchorX + sin32(orb.Angle)*orb.Radius
	f.respawns++
}

// CollectDraws appends draw data for every ember to buf and returns it.
// Pass the previous frame's slice to avoid allocation.
func (f *EmberField) CollectDraws(buf []EmberDraw) []EmberDraw {
	buf = buf[:0]
	query := f.filter.Query()
	for query.Next() {
		pos, glow, _, _ := query.Get()
		buf = append(buf, EmberDraw{X: pos.X, Y: pos.Y, Radius: glow.Radius})
	}
	return buf
}

// Resize updates the field bounds. Existing embers are not repositioned;
// they wrap and respawn into the new bounds naturally.
func (f *EmberField) Resize(width, height float32) {
	f.width = width
	f.height = height
}

// Count returns the (fixed) ember population size.
func (f *EmberField) Count() int {
	return f.cfg.Count
}

// Tick returns the number of completed update steps.
func (f *EmberField) Tick() int64 {
	return f.tick
}

// Elapsed returns simulated seconds since creation.
func (f *EmberField) Elapsed() float64 {
	return f.elapsed
}

// TakeCounters returns and resets the respawn and wrap counters.
func (f *EmberField) TakeCounters() (respawns, wraps uint64) {
	respawns, wraps = f.respawns, f.wraps
	f.respawns, f.wraps = 0, 0
	return respawns, wraps
}

func (f *EmberField) randRange(lo, hi float64) float32 {
	return float32(lo + f.rng.Float64()*(hi-lo))
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}
