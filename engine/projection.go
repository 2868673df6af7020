package engine

import "github.com/go-gl/mathgl/mgl32"

const (
	projectionNear = 0
	projectionFar  = 100
)

// Projection maps world coordinates [0, width] x [0, height] with the origin
// in the top left corner to normalized device coordinates.
type Projection struct {
	Matrix mgl32.Mat4
}

func NewProjection(worldWidth, worldHeight float32) Projection {
	return Projection{
		Matrix: mgl32.Ortho(0, worldWidth, worldHeight, 0, projectionNear, projectionFar),
	}
}
