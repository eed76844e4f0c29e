// Package main is the orbit cube viewer: a windowed WebGPU demo drawing a
// static colored cube with a constrained orbit camera. Drag to orbit, hold
// shift to pan, scroll to zoom, ESC to quit.
package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/gfxdemo/orbitcube/engine"
	"github.com/gfxdemo/orbitcube/engine/camera"
	"github.com/gfxdemo/orbitcube/engine/renderer"
	"github.com/gfxdemo/orbitcube/engine/window"
	"github.com/gfxdemo/orbitcube/internal/config"
	"github.com/gfxdemo/orbitcube/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer func() { _ = log.Sync() }()

	log.Info("starting orbit cube viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("vsync", cfg.Graphics.VSync),
	)

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)

	presentMode := renderer.PresentModeVSync
	if !cfg.Graphics.VSync {
		presentMode = renderer.PresentModeUncapped
	}
	r := renderer.NewRenderer(win,
		renderer.WithPresentMode(presentMode),
		renderer.WithForceSoftwareRenderer(cfg.Graphics.SoftwareRenderer),
		renderer.WithLogger(log),
	)

	cam := camera.NewOrbitCamera(
		camera.WithDistance(cfg.Camera.Distance),
		camera.WithPitch(cfg.Camera.Pitch),
		camera.WithYaw(cfg.Camera.Yaw),
		camera.WithTarget(cfg.Camera.Target[0], cfg.Camera.Target[1], cfg.Camera.Target[2]),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithBounds(cameraBounds(cfg)),
	)

	e := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
		engine.WithControllerOptions(
			camera.WithRotateSpeed(cfg.Camera.RotateSpeed),
			camera.WithZoomSpeed(cfg.Camera.ZoomSpeed),
		),
		engine.WithProfiling(cfg.Profiler.Enabled),
		engine.WithLogger(log),
	)

	e.Run()
	log.Info("viewer shut down")
}

// cameraBounds builds the camera constraint set from config, starting from
// the defaults and overriding only the fields the config sets.
func cameraBounds(cfg *config.Config) camera.Bounds {
	b := camera.DefaultBounds()
	if cfg.Camera.MinDistance != nil {
		b.MinDistance = cfg.Camera.MinDistance
	}
	if cfg.Camera.MaxDistance != nil {
		b.MaxDistance = cfg.Camera.MaxDistance
	}
	if cfg.Camera.MinYaw != nil {
		b.MinYaw = cfg.Camera.MinYaw
	}
	if cfg.Camera.MaxYaw != nil {
		b.MaxYaw = cfg.Camera.MaxYaw
	}
	return b
}
