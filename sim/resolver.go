package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/blobs/engine"
)

// Resolver finds nearest neighbours among renderables. Relative vectors are
// returned in physics units.
type Resolver struct {
	Scale float32 // world units per physics unit
}

func (r Resolver) nearest(b *engine.Renderable, set []*engine.Renderable) (mgl32.Vec2, bool) {
	var (
		best  = float32(math.MaxFloat32)
		v     mgl32.Vec2
		found bool
	)

	origin := b.Position.Vec2()
	for _, o := range set {
		if o == nil || o.ID == b.ID {
			continue
		}
		d := o.Position.Vec2().Sub(origin)
		if l := d.Dot(d); l < best {
			best, v, found = l, d, true
		}
	}

	return v.Mul(1 / r.Scale), found
}

func (r Resolver) NearestFood(b *engine.Renderable, food []*engine.Renderable) (mgl32.Vec2, bool) {
	return r.nearest(b, food)
}

func (r Resolver) NearestBlob(b *engine.Renderable, blobs []*engine.Renderable) (mgl32.Vec2, bool) {
	return r.nearest(b, blobs)
}

// ToRenderSpace converts a physics vector to world units.
func (r Resolver) ToRenderSpace(v mgl32.Vec2) mgl32.Vec2 {
	return v.Mul(r.Scale)
}
