package main

import (
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/der-antikeks/blobs/engine"
	"github.com/der-antikeks/blobs/sim"
)

func init() {
	// glContext.Serve runs on the main thread
	runtime.LockOSThread()
}

// maxStep bounds the simulation step after stalls.
const maxStep = 0.1

type options struct {
	blobs, food int
	fps         float64
	seed        int64
	debug       bool
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}
	defaults := sim.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "blobs",
		Short: "Render blobs, food and their nearest neighbour lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&opts.blobs, "blobs", defaults.Blobs, "number of blobs")
	cmd.Flags().IntVar(&opts.food, "food", defaults.Food, "number of food particles")
	cmd.Flags().Float64Var(&opts.fps, "fps", 60, "frames per second")
	cmd.Flags().Int64Var(&opts.seed, "seed", time.Now().Unix(), "random seed")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return cmd
}

func run(opts options) error {
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	engine.SetLogger(logger)

	if opts.fps <= 0 {
		return fmt.Errorf("invalid fps %v", opts.fps)
	}

	cfg := engine.DefaultConfig()

	simCfg := sim.DefaultConfig()
	simCfg.Width, simCfg.Height = cfg.WorldWidth, cfg.WorldHeight
	simCfg.FoodSize = cfg.FoodSize
	simCfg.Blobs, simCfg.Food = opts.blobs, opts.food
	simCfg.Seed = opts.seed

	world, err := sim.NewWorld(simCfg, nil)
	if err != nil {
		return err
	}

	ctx := newGLContext()
	errc := make(chan error, 1)
	go func() {
		defer ctx.Stop()
		errc <- loop(ctx, cfg, world, opts.fps)
	}()
	ctx.Serve()

	return <-errc
}

// loop drives the simulation and submits every window and GL call to the
// main thread.
func loop(ctx *glContext, cfg engine.Config, world *sim.World, targetFps float64) error {
	if err := ctx.Open("blobs", cfg.ViewportWidth, cfg.ViewportHeight); err != nil {
		return err
	}
	defer ctx.Cleanup()

	var (
		device   *engine.GLDevice
		renderer *engine.BlobRenderer
		err      error
	)
	ctx.MainThread(func() {
		device, err = engine.NewGLDevice()
	})
	if err != nil {
		return err
	}
	defer ctx.MainThread(device.Dispose)

	blobs, food := world.Entities()
	resolver := sim.Resolver{Scale: world.Config().PhysicsScale}
	ctx.MainThread(func() {
		renderer, err = engine.New(device, cfg, resolver, blobs, food)
	})
	if err != nil {
		return err
	}
	world.SetListener(renderer)

	var (
		start       = time.Now()
		lastTime    = start
		currentTime time.Time
		delta       time.Duration

		ratio     = 0.01
		fps       = targetFps
		nextPrint = lastTime

		renderTicker = time.NewTicker(time.Duration(float64(time.Second) / targetFps))
	)
	defer renderTicker.Stop()

	for ctx.isRunning() {
		<-renderTicker.C

		// calc delay
		currentTime = time.Now()
		delta = currentTime.Sub(lastTime)
		lastTime = currentTime

		fps = fps*(1-ratio) + (1.0/delta.Seconds())*ratio
		if math.IsInf(fps, 0) || math.IsNaN(fps) {
			fps = targetFps
		}
		if currentTime.After(nextPrint) {
			nextPrint = currentTime.Add(5 * time.Second)
			slog.Info("frame rate", "fps", math.Round(fps*10)/10, "blobs", world.BlobCount(), "food", world.FoodCount())
		}

		switch {
		case ctx.IsKeyDown(glfw.KeyEscape):
			ctx.Close()
		case ctx.IsKeyTyped(glfw.KeyR):
			// new population
			next := world.Config()
			next.Seed++
			if world, err = sim.NewWorld(next, nil); err != nil {
				return err
			}
			renderer.RemoveAllRenderObjects()
			renderer.AddBlobsAndFood(world.Entities())
			world.SetListener(renderer)
			slog.Info("scene reset", "seed", next.Seed)
		}

		world.Step(float32(math.Min(delta.Seconds(), maxStep)))
		renderer.UpdateBlobs(world.States())

		total := float32(currentTime.Sub(start).Seconds())
		ctx.MainThread(func() {
			renderer.Render(total)
		})

		ctx.Update()
	}

	return nil
}
