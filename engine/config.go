package engine

import "fmt"

// Config holds the static dimensions of the world and the output surface.
type Config struct {
	WorldWidth, WorldHeight       float32
	ViewportWidth, ViewportHeight int

	// FoodSize classifies renderables: an entry whose size equals FoodSize
	// is food, everything else is a blob.
	FoodSize float32
}

func DefaultConfig() Config {
	return Config{
		WorldWidth:     1600,
		WorldHeight:    1200,
		ViewportWidth:  1600,
		ViewportHeight: 1200,
		FoodSize:       3,
	}
}

func (c Config) Validate() error {
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("invalid world size %vx%v", c.WorldWidth, c.WorldHeight)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("invalid viewport size %vx%v", c.ViewportWidth, c.ViewportHeight)
	}
	if c.FoodSize <= 0 {
		return fmt.Errorf("invalid food size %v", c.FoodSize)
	}
	return nil
}
