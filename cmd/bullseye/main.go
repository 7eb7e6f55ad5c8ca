package main

import (
	"flag"
	"fmt"
	"runtime"

	"bullseye/internal/config"
	"bullseye/internal/game"
	"bullseye/internal/input"
	"bullseye/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		closer.Fatalln(err)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Bind(func() { _ = logger.Sync() })

	if err := run(cfg, logger); err != nil {
		logger.Error("bullseye stopped", zap.Error(err))
		closer.Exit(1)
	}
}

// run owns the GLFW lifetime; it must stay on the main thread.
func run(cfg config.Config, logger *zap.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	app, err := game.NewApp(window, input.NewInputManager(), cfg, logger)
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}
	defer app.Dispose()

	game.SetupInputHandlers(app)
	app.Run()
	return nil
}
