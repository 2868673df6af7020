package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// EntityID identifies a simulated entity for as long as it lives.
type EntityID uint

// Entity is a newly spawned blob or food particle.
type Entity struct {
	ID       EntityID
	Position mgl32.Vec2
	Size     float32
	Color    mgl32.Vec4

	Velocity    mgl32.Vec2
	HasVelocity bool
}

// BlobState is the per tick state of a live entity.
type BlobState struct {
	ID       EntityID
	Position mgl32.Vec2
	Size     float32

	Acceleration    mgl32.Vec2
	HasAcceleration bool
}

// Renderable is the transform and appearance of one entity.
// Rotation is in degrees, only the z component is used.
type Renderable struct {
	ID       EntityID
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Color    mgl32.Vec4
	Size     float32
}

func newRenderable(e Entity) Renderable {
	// heading is not derived from velocity on spawn, the first update with an
	// acceleration sets it
	return Renderable{
		ID:       e.ID,
		Position: e.Position.Vec3(0),
		Rotation: mgl32.Vec3{0, 0, 0},
		Scale:    mgl32.Vec3{e.Size, e.Size, 1},
		Color:    e.Color,
		Size:     e.Size,
	}
}

func (r *Renderable) update(s BlobState) {
	r.Position = s.Position.Vec3(0)
	r.Scale = mgl32.Vec3{s.Size, s.Size, 1}
	r.Size = s.Size

	if s.HasAcceleration {
		r.Rotation[2] = float32(Heading(float64(s.Acceleration[0]), float64(s.Acceleration[1])))
	}
}

// ModelMatrix composes translation, rotation around z and scale.
func (r *Renderable) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(r.Position[0], r.Position[1], r.Position[2]).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(r.Rotation[2]))).
		Mul4(mgl32.Scale3D(r.Scale[0], r.Scale[1], r.Scale[2]))
}

// headingEpsilon replaces zero acceleration components so the slope stays
// defined.
const headingEpsilon = 1e-7

// Heading returns the heading in degrees for an acceleration vector.
// It folds a single argument arctangent into (90, 450) with a quadrant
// correction for negative x, zero components are replaced by headingEpsilon
// first.
func Heading(ax, ay float64) float64 {
	if ax == 0 {
		ax = headingEpsilon
	}
	if ay == 0 {
		ay = headingEpsilon
	}

	h := 180 + 180/math.Pi*math.Atan(ay/ax)
	if ax < 0 {
		h += 180
	}
	return h
}
