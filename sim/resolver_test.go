package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/der-antikeks/blobs/engine"
)

func renderable(id engine.EntityID, x, y float32) *engine.Renderable {
	return &engine.Renderable{ID: id, Position: mgl32.Vec3{x, y, 0}}
}

func TestResolver_Nearest(t *testing.T) {
	r := Resolver{Scale: 10}
	b := renderable(1, 100, 100)

	set := []*engine.Renderable{
		b,
		renderable(2, 200, 100),
		renderable(3, 100, 130),
		nil,
		renderable(4, 50, 150),
	}

	v, ok := r.NearestBlob(b, set)
	if !ok {
		t.Fatal("no nearest blob found")
	}
	if expected := (mgl32.Vec2{0, 3}); !v.ApproxEqual(expected) {
		t.Errorf("nearest blob vector %v instead of %v", v, expected)
	}
	if w := r.ToRenderSpace(v); !w.ApproxEqual(mgl32.Vec2{0, 30}) {
		t.Errorf("render space vector %v instead of (0, 30)", w)
	}
}

func TestResolver_None(t *testing.T) {
	r := Resolver{Scale: 1}
	b := renderable(1, 0, 0)

	if _, ok := r.NearestFood(b, nil); ok {
		t.Error("nearest food found in empty set")
	}
	if _, ok := r.NearestBlob(b, []*engine.Renderable{b}); ok {
		t.Error("blob found itself as nearest rival")
	}
}
