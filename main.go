package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/cgol/model"
	"github.com/sheikhrachel/cgol/utils"
)

const configFile = "config.json"

// errQuit is returned by the key watcher when the user asks to leave
var errQuit = errors.New("quit requested")

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			log.Println("Using default configuration (config.json not found)")
		} else {
			log.Printf("Using default configuration: %v", err)
		}
		config = utils.DefaultConfig()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config); err != nil {
		stop()
		log.Fatalf("game stopped: %+v", err)
	}
}

func run(ctx context.Context, config utils.Config) error {
	world := initializeGame(config, time.Now().UnixNano())

	renderer, err := newRenderer(config, os.Stdout)
	if err != nil {
		return err
	}

	var (
		reg     = prometheus.NewRegistry()
		metrics = utils.NewMetrics(reg)
		stats   = utils.NewStats()
	)

	eg, ctx := errgroup.WithContext(ctx)
	gameDone := make(chan struct{})
	eg.Go(func() error {
		defer close(gameDone)
		return runGame(ctx, world, renderer, config.FrameDelay, stats, metrics)
	})

	if screen, ok := renderer.(*model.ScreenRenderer); ok {
		// the terminal is in raw mode, so Ctrl+C arrives as a key event rather than SIGINT
		eg.Go(func() error {
			screen.WaitForQuit()
			return errQuit
		})
		eg.Go(func() error {
			<-gameDone
			screen.Close()
			return nil
		})
	}

	if config.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              config.MetricsAddr,
			Handler:           utils.MetricsHandler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		eg.Go(func() error {
			log.Printf("metrics endpoint listening on %s/metrics", config.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return errors.Wrapf(err, "[run] metrics server failed on %s", config.MetricsAddr)
			}
			return nil
		})
		eg.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	err = eg.Wait()
	log.Printf("Final stats: %d generations in %.1f seconds, %.1f gen/sec, %.1f avg population",
		stats.TotalGenerations, stats.Runtime().Seconds(), stats.GenerationsPerSecond, stats.AveragePopulation)

	if errors.Cause(err) == errQuit {
		return nil
	}
	return err
}
