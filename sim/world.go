package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/blobs/engine"
)

// Listener receives spawn and death events. *engine.BlobRenderer satisfies it.
type Listener interface {
	AddRenderObject(engine.Entity)
	RemoveBlob(engine.EntityID)
	RemoveFood(engine.EntityID)
}

// Decider returns the acceleration a blob wants to apply this tick.
type Decider interface {
	Decide(b *Blob, rng *rand.Rand) mgl32.Vec2
}

// DeciderFunc adapts a function to Decider.
type DeciderFunc func(b *Blob, rng *rand.Rand) mgl32.Vec2

func (f DeciderFunc) Decide(b *Blob, rng *rand.Rand) mgl32.Vec2 { return f(b, rng) }

type Blob struct {
	ID           engine.EntityID
	Position     mgl32.Vec2
	Velocity     mgl32.Vec2
	Acceleration mgl32.Vec2
	Size         float32
	Color        mgl32.Vec4
}

type Food struct {
	ID       engine.EntityID
	Position mgl32.Vec2
	Color    mgl32.Vec4
}

var foodColor = mgl32.Vec4{0.9, 0.8, 0.2, 1}

// World is a minimal population of wandering blobs eating food.
// Not safe for concurrent use.
type World struct {
	config   Config
	rng      *rand.Rand
	decider  Decider
	listener Listener

	nextID engine.EntityID
	blobs  []*Blob
	food   []*Food

	states []engine.BlobState
}

func NewWorld(cfg Config, decider Decider) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		config:  cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		decider: decider,
		nextID:  1,
	}
	if w.decider == nil {
		w.decider = Wander(cfg.MaxAcceleration)
	}

	for i := 0; i < cfg.Blobs; i++ {
		w.spawnBlob()
	}
	for i := 0; i < cfg.Food; i++ {
		w.spawnFood()
	}

	return w, nil
}

// Wander accelerates in a slowly drifting random direction.
func Wander(max float32) Decider {
	return DeciderFunc(func(b *Blob, rng *rand.Rand) mgl32.Vec2 {
		jitter := mgl32.Vec2{rng.Float32()*2 - 1, rng.Float32()*2 - 1}.Mul(max * 0.5)
		a := b.Acceleration.Mul(0.9).Add(jitter)
		if l := a.Len(); l > max {
			a = a.Mul(max / l)
		}
		return a
	})
}

// SetListener registers the receiver of spawn and death events.
func (w *World) SetListener(l Listener) {
	w.listener = l
}

func (w *World) Config() Config { return w.config }

// Entities returns the current blobs and food as spawn records.
func (w *World) Entities() (blobs, food []engine.Entity) {
	for _, b := range w.blobs {
		blobs = append(blobs, w.blobEntity(b))
	}
	for _, f := range w.food {
		food = append(food, w.foodEntity(f))
	}
	return blobs, food
}

func (w *World) BlobCount() int { return len(w.blobs) }
func (w *World) FoodCount() int { return len(w.food) }

// States returns the per tick state of every blob. The slice is reused by the
// next call.
func (w *World) States() []engine.BlobState {
	w.states = w.states[:0]
	for _, b := range w.blobs {
		w.states = append(w.states, engine.BlobState{
			ID:              b.ID,
			Position:        b.Position,
			Size:            b.Size,
			Acceleration:    b.Acceleration,
			HasAcceleration: true,
		})
	}
	return w.states
}

// Step advances the world by dt seconds.
func (w *World) Step(dt float32) {
	for _, b := range w.blobs {
		b.Acceleration = w.decider.Decide(b, w.rng)
		b.Velocity = b.Velocity.Add(b.Acceleration.Mul(dt))
		if l := b.Velocity.Len(); l > w.config.MaxSpeed {
			b.Velocity = b.Velocity.Mul(w.config.MaxSpeed / l)
		}
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
		w.bounce(b)

		b.Size -= w.config.Decay * dt
	}

	w.eat()
	w.starve()
}

func (w *World) bounce(b *Blob) {
	bounds := mgl32.Vec2{w.config.Width, w.config.Height}
	for i := 0; i < 2; i++ {
		if b.Position[i] < 0 {
			b.Position[i] = -b.Position[i]
			b.Velocity[i] = -b.Velocity[i]
		} else if b.Position[i] > bounds[i] {
			b.Position[i] = 2*bounds[i] - b.Position[i]
			b.Velocity[i] = -b.Velocity[i]
		}
	}
}

func (w *World) eat() {
	for _, b := range w.blobs {
		for i := 0; i < len(w.food); i++ {
			f := w.food[i]
			reach := b.Size + w.config.FoodSize
			d := f.Position.Sub(b.Position)
			if d.Dot(d) > reach*reach {
				continue
			}

			b.Size += w.config.Growth
			w.food[i] = w.food[len(w.food)-1]
			w.food = w.food[:len(w.food)-1]
			i--

			if w.listener != nil {
				w.listener.RemoveFood(f.ID)
			}
			w.spawnFood()
		}
	}
}

func (w *World) starve() {
	for i := 0; i < len(w.blobs); i++ {
		b := w.blobs[i]
		if b.Size >= w.config.MinBlobSize {
			continue
		}

		w.blobs[i] = w.blobs[len(w.blobs)-1]
		w.blobs = w.blobs[:len(w.blobs)-1]
		i--

		if w.listener != nil {
			w.listener.RemoveBlob(b.ID)
		}
		w.spawnBlob()
	}
}

func (w *World) randomPosition() mgl32.Vec2 {
	return mgl32.Vec2{w.rng.Float32() * w.config.Width, w.rng.Float32() * w.config.Height}
}

func (w *World) spawnBlob() {
	b := &Blob{
		ID:       w.nextID,
		Position: w.randomPosition(),
		Size:     w.config.BlobSize,
		Color:    mgl32.Vec4{0.2 + 0.8*w.rng.Float32(), 0.2 + 0.8*w.rng.Float32(), 0.2 + 0.8*w.rng.Float32(), 1},
	}
	w.nextID++
	w.blobs = append(w.blobs, b)

	if w.listener != nil {
		w.listener.AddRenderObject(w.blobEntity(b))
	}
}

func (w *World) spawnFood() {
	f := &Food{
		ID:       w.nextID,
		Position: w.randomPosition(),
		Color:    foodColor,
	}
	w.nextID++
	w.food = append(w.food, f)

	if w.listener != nil {
		w.listener.AddRenderObject(w.foodEntity(f))
	}
}

func (w *World) blobEntity(b *Blob) engine.Entity {
	return engine.Entity{
		ID:          b.ID,
		Position:    b.Position,
		Size:        b.Size,
		Color:       b.Color,
		Velocity:    b.Velocity,
		HasVelocity: true,
	}
}

func (w *World) foodEntity(f *Food) engine.Entity {
	return engine.Entity{
		ID:       f.ID,
		Position: f.Position,
		Size:     w.config.FoodSize,
		Color:    f.Color,
	}
}
