package engine

import (
	"fmt"
	"math"
)

// CircleSegments is the number of vertices of the unit circle fan.
const CircleSegments = 256

// UnitCircle returns CircleSegments (x, y) pairs on the unit circle at
// uniform angular steps, starting at angle 0.
func UnitCircle() []float32 {
	vertices := make([]float32, 0, CircleSegments*2)
	for i := 0; i < CircleSegments; i++ {
		s, c := math.Sincos(float64(i) / CircleSegments * 2 * math.Pi)
		vertices = append(vertices, float32(c), float32(s))
	}
	return vertices
}

// geometry is a static vertex buffer holding 2d positions.
type geometry struct {
	buffer   Buffer
	vertices []float32
}

func newCircleGeometry(d Device) (*geometry, error) {
	g := &geometry{
		buffer:   d.NewBuffer(),
		vertices: UnitCircle(),
	}

	d.BindBuffer(g.buffer)
	if err := d.BufferData(g.vertices, StaticDraw); err != nil {
		return nil, fmt.Errorf("upload circle geometry: %w", err)
	}

	Logger().Debug("circle geometry uploaded", "buffer", g.buffer, "vertices", g.Count())
	return g, nil
}

// Count returns the number of vertices.
func (g *geometry) Count() int {
	return len(g.vertices) / 2
}
