package sim

import "fmt"

type Config struct {
	Width, Height float32

	Blobs, Food int

	BlobSize    float32 // spawn size
	MinBlobSize float32 // blobs shrinking below die
	FoodSize    float32
	Growth      float32 // size gained per eaten food
	Decay       float32 // size lost per second

	MaxSpeed        float32
	MaxAcceleration float32

	// PhysicsScale is the number of world units per physics unit. Proximity
	// vectors are reported in physics units.
	PhysicsScale float32

	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Width:  1600,
		Height: 1200,

		Blobs: 20,
		Food:  60,

		BlobSize:    10,
		MinBlobSize: 5,
		FoodSize:    3,
		Growth:      1,
		Decay:       0.3,

		MaxSpeed:        120,
		MaxAcceleration: 200,

		PhysicsScale: 10,

		Seed: 1,
	}
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid world size %vx%v", c.Width, c.Height)
	}
	if c.Blobs < 0 || c.Food < 0 {
		return fmt.Errorf("invalid population %v blobs, %v food", c.Blobs, c.Food)
	}
	if c.FoodSize <= 0 {
		return fmt.Errorf("invalid food size %v", c.FoodSize)
	}
	// blobs are told apart from food by size
	if c.MinBlobSize <= c.FoodSize || c.BlobSize < c.MinBlobSize {
		return fmt.Errorf("blob sizes (%v, min %v) must exceed food size %v", c.BlobSize, c.MinBlobSize, c.FoodSize)
	}
	if c.PhysicsScale <= 0 {
		return fmt.Errorf("invalid physics scale %v", c.PhysicsScale)
	}
	return nil
}
