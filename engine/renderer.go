package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ProximityResolver answers nearest neighbour queries for the overlay.
// Relative vectors are in simulation units, ToRenderSpace converts them.
type ProximityResolver interface {
	NearestFood(blob *Renderable, food []*Renderable) (mgl32.Vec2, bool)
	NearestBlob(blob *Renderable, blobs []*Renderable) (mgl32.Vec2, bool)
	ToRenderSpace(v mgl32.Vec2) mgl32.Vec2
}

type FrameState int

const (
	Idle FrameState = iota
	Cleared
	FillPass
	LinePass
)

func (s FrameState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Cleared:
		return "cleared"
	case FillPass:
		return "fill pass"
	case LinePass:
		return "line pass"
	}
	return "unknown"
}

var (
	clearColor = mgl32.Vec4{0, 0, 0, 1}

	blobLineColor = mgl32.Vec4{0, 1, 0, 1}
	foodLineColor = mgl32.Vec4{1, 0, 0, 1}

	blobLineOffset = mgl32.Vec2{5, 5}
	foodLineOffset = mgl32.Vec2{-5, 5}
)

// BlobRenderer draws every registered blob and food particle as a filled
// circle and overlays lines to the nearest rival (green) and nearest food
// (red) of each blob.
//
// A frame runs Idle -> Cleared -> FillPass -> LinePass -> Idle. Each pass
// binds its program, buffer and attribute on entry and disables the
// attribute on exit, no binding is carried over between passes.
// The registry must not be modified while Render runs.
type BlobRenderer struct {
	device     Device
	config     Config
	projection Projection
	resolver   ProximityResolver

	fill, line *shaderProgram
	circle     *geometry

	lineBuffer   Buffer
	lineVertices []float32

	registry *Registry
	state    FrameState

	// reused partitions of the line pass
	food, blobs []*Renderable
}

// New builds both programs, uploads the circle geometry and registers the
// initial entities. Any shader, program or upload error is returned and
// leaves no usable renderer.
func New(d Device, cfg Config, resolver ProximityResolver, blobs, food []Entity) (*BlobRenderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fill, line, err := newPrograms(d)
	if err != nil {
		return nil, err
	}

	circle, err := newCircleGeometry(d)
	if err != nil {
		return nil, err
	}

	r := &BlobRenderer{
		device:     d,
		config:     cfg,
		projection: NewProjection(cfg.WorldWidth, cfg.WorldHeight),
		resolver:   resolver,

		fill:   fill,
		line:   line,
		circle: circle,

		lineBuffer:   d.NewBuffer(),
		lineVertices: make([]float32, 4),

		registry: NewRegistry(),
		state:    Idle,
	}

	d.Viewport(cfg.ViewportWidth, cfg.ViewportHeight)

	r.AddBlobsAndFood(blobs, food)

	Logger().Info("blob renderer ready",
		"world", mgl32.Vec2{cfg.WorldWidth, cfg.WorldHeight},
		"viewport", [2]int{cfg.ViewportWidth, cfg.ViewportHeight},
		"entities", r.registry.Len())

	return r, nil
}

func (r *BlobRenderer) Registry() *Registry { return r.registry }
func (r *BlobRenderer) State() FrameState   { return r.state }

func (r *BlobRenderer) AddRenderObject(e Entity) {
	r.registry.Add(e)
}

func (r *BlobRenderer) AddBlobsAndFood(blobs, food []Entity) {
	for _, e := range blobs {
		r.registry.Add(e)
	}
	for _, e := range food {
		r.registry.Add(e)
	}
}

func (r *BlobRenderer) UpdateBlobs(states []BlobState) {
	r.registry.Update(states)
}

func (r *BlobRenderer) RemoveBlob(id EntityID) {
	r.registry.Remove(id)
}

func (r *BlobRenderer) RemoveFood(id EntityID) {
	r.registry.Remove(id)
}

func (r *BlobRenderer) RemoveAllRenderObjects() {
	r.registry.Clear()
}

// Render draws one frame. totalTime is forwarded to the fill program.
func (r *BlobRenderer) Render(totalTime float32) {
	r.prepare()

	r.startFill(totalTime)
	r.registry.Each(func(b *Renderable) bool {
		r.device.UniformMatrix4(r.fill.model, b.ModelMatrix())
		r.device.Uniform4f(r.fill.color, b.Color)
		r.device.DrawArrays(TriangleFan, 0, r.circle.Count())
		return true
	})
	r.stopFill()

	r.startLines()
	r.renderLines()
	r.stopLines()

	r.state = Idle
}

func (r *BlobRenderer) prepare() {
	r.device.ClearColor(clearColor)
	r.device.Clear()
	r.state = Cleared
}

func (r *BlobRenderer) startFill(totalTime float32) {
	r.device.UseProgram(r.fill.program)
	r.device.BindBuffer(r.circle.buffer)
	r.device.EnableAttrib(r.fill.position)
	r.device.AttribPointer(r.fill.position, 2)
	r.device.Uniform1f(r.fill.time, totalTime)
	r.device.UniformMatrix4(r.fill.orthographic, r.projection.Matrix)
	r.state = FillPass
}

func (r *BlobRenderer) stopFill() {
	r.device.DisableAttrib(r.fill.position)
}

func (r *BlobRenderer) startLines() {
	r.device.UseProgram(r.line.program)
	r.device.BindBuffer(r.lineBuffer)
	r.device.EnableAttrib(r.line.position)
	r.device.AttribPointer(r.line.position, 2)
	r.device.UniformMatrix4(r.line.orthographic, r.projection.Matrix)
	r.device.UniformMatrix4(r.line.model, mgl32.Ident4())
	r.state = LinePass
}

func (r *BlobRenderer) stopLines() {
	r.device.DisableAttrib(r.line.position)
}

// partition splits the registry into food and blobs by size.
func (r *BlobRenderer) partition() (food, blobs []*Renderable) {
	r.food, r.blobs = r.food[:0], r.blobs[:0]
	r.registry.Each(func(b *Renderable) bool {
		if b.Size == r.config.FoodSize {
			r.food = append(r.food, b)
		} else {
			r.blobs = append(r.blobs, b)
		}
		return true
	})
	return r.food, r.blobs
}

func (r *BlobRenderer) renderLines() {
	if r.resolver == nil {
		return
	}

	food, blobs := r.partition()
	for _, b := range blobs {
		if b == nil {
			continue
		}
		origin := b.Position.Vec2()

		if v, ok := r.resolver.NearestBlob(b, blobs); ok {
			v = r.resolver.ToRenderSpace(v)
			r.renderLine(blobLineColor, origin.Add(blobLineOffset), origin.Add(v))
		}
		if v, ok := r.resolver.NearestFood(b, food); ok {
			v = r.resolver.ToRenderSpace(v)
			r.renderLine(foodLineColor, origin.Add(foodLineOffset), origin.Add(v))
		}
	}
}

func (r *BlobRenderer) renderLine(color mgl32.Vec4, from, to mgl32.Vec2) {
	r.lineVertices[0], r.lineVertices[1] = from[0], from[1]
	r.lineVertices[2], r.lineVertices[3] = to[0], to[1]

	if err := r.device.BufferData(r.lineVertices, StreamDraw); err != nil {
		Logger().Warn("skip proximity line", "err", err)
		return
	}
	r.device.Uniform4f(r.line.color, color)
	r.device.DrawArrays(Lines, 0, 2)
}
