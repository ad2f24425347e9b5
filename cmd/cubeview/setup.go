package main

import (
	"fmt"
	"log/slog"

	"cubeview/internal/config"
	"cubeview/internal/gpu"
	"cubeview/internal/graphics"
	"cubeview/internal/overlay"
	"cubeview/internal/platform"
)

func setupWindow() (*platform.Window, error) {
	return platform.NewWindow(platform.WindowConfig{
		Title:    config.WinTitle,
		Width:    config.WinWidth,
		Height:   config.WinHeight,
		GLMajor:  config.GLMajor,
		GLMinor:  config.GLMinor,
		Centered: true,
	})
}

// GraphicsComponents holds every GPU resource the viewer owns
type GraphicsComponents struct {
	Device  *gpu.GLDevice
	Shader  *graphics.Shader
	Mesh    *graphics.MeshBuffer
	Painter *overlay.GLPainter
	Overlay *overlay.Overlay
}

// setupGraphics loads the OpenGL bindings on the current context and uploads
// the cube and overlay resources. On failure everything created so far is released.
func setupGraphics() (c *GraphicsComponents, err error) {
	dev, err := gpu.NewGLDevice()
	if err != nil {
		return nil, fmt.Errorf("init OpenGL: %w", err)
	}
	slog.Info("init OpenGL", "version", dev.Version, "renderer", dev.Renderer)

	c = &GraphicsComponents{Device: dev}
	defer func() {
		if err != nil {
			c.Dispose()
			c = nil
		}
	}()

	c.Shader, err = graphics.NewShader(dev,
		config.ShaderPath(config.CubeVertShader),
		config.ShaderPath(config.CubeFragShader),
		graphics.AttribPosition)
	if err != nil {
		return c, fmt.Errorf("cube shader: %w", err)
	}

	c.Mesh, err = graphics.NewMeshBuffer(dev, graphics.CubeVertices[:])
	if err != nil {
		return c, err
	}

	atlas, err := overlay.DefaultAtlas()
	if err != nil {
		return c, fmt.Errorf("overlay font: %w", err)
	}
	c.Painter, err = overlay.NewGLPainter(dev, atlas,
		config.ShaderPath(config.OverlayVertShader),
		config.ShaderPath(config.OverlayFragShader))
	if err != nil {
		return c, err
	}
	c.Overlay = overlay.New(c.Painter, config.WinWidth, config.WinHeight)
	return c, nil
}

// Dispose releases GPU resources in reverse creation order
func (c *GraphicsComponents) Dispose() {
	if c.Painter != nil {
		c.Painter.Dispose()
	}
	if c.Mesh != nil {
		c.Mesh.Dispose()
	}
	if c.Shader != nil {
		c.Shader.Dispose()
	}
}
