package main

import (
	"context"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/cgol/model"
	"github.com/sheikhrachel/cgol/utils"
)

// initializeGame builds the world and seeds it exactly once
func initializeGame(config utils.Config, seed int64) *model.World {
	world := model.NewWorld(config.Width, config.Height)
	world.Seed(model.NewRand(seed), config.Density)
	return world
}

// newRenderer returns the renderer selected in config
func newRenderer(config utils.Config, out io.Writer) (model.Renderer, error) {
	if config.Renderer != utils.RendererTcell {
		return model.NewTerminalRenderer(out), nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[newRenderer] failed to create screen")
	}
	r, err := model.NewScreenRenderer(screen)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// runGame renders, steps and waits until ctx is cancelled. It only returns an
// error when the display cannot be written.
func runGame(
	ctx context.Context,
	world *model.World,
	renderer model.Renderer,
	delay time.Duration,
	stats *utils.Stats,
	metrics *utils.Metrics,
) error {
	var (
		timer         = time.NewTimer(delay)
		lastFrameTime = time.Now()
	)
	defer timer.Stop()

	for {
		frameStart := time.Now()
		if err := renderer.Display(world.Current()); err != nil {
			return errors.Wrapf(err, "[runGame] failed to render generation %d", world.Generation())
		}

		stepStart := time.Now()
		world.Step()
		stepDuration := time.Since(stepStart)

		population := world.Current().CountLivingCells()
		metrics.Observe(population, stepDuration)
		stats.Update(world.Generation(), population, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		timer.Reset(delay)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		if err := renderer.Clear(); err != nil {
			return errors.Wrapf(err, "[runGame] failed to clear display after generation %d", world.Generation())
		}
	}
}
