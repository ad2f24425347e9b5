package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cubeview/internal/config"
	"cubeview/internal/viewer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(); err != nil {
		slog.Error("cubeview failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return err
	}
	defer window.Destroy()

	c, err := setupGraphics()
	if err != nil {
		return err
	}
	defer c.Dispose()

	loop := viewer.NewLoop(viewer.Components{
		Window:  window,
		Device:  c.Device,
		Program: c.Shader,
		Mesh:    c.Mesh,
		Overlay: c.Overlay,
		Pacer:   viewer.NewFrameLimiter(),
	})
	slog.Info("running", "fps_limit", config.FPSLimit(), "pacing", config.Pacing())
	return loop.Run()
}
